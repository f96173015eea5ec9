// Package search provides last-resort text search for the resolution
// cascade. Results are probabilistic, not authoritative: callers must verify
// anything returned here before trusting it.
package search

import (
	"context"
	"fmt"
)

// ErrNoResult is returned when a query completes but yields no usable link.
var ErrNoResult = fmt.Errorf("search: no result")

// Provider returns the first plausible external result URL for a free-text
// query. Implementations absorb provider-specific quirks; any failure is
// reported as an error and treated by callers as "this signal produced
// nothing".
type Provider interface {
	First(ctx context.Context, query string) (string, error)
}
