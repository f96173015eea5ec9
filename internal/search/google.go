package search

import (
	"context"
	"fmt"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// GoogleCSE queries the Google Custom Search API. Used instead of the HTML
// scraper when an API key and engine ID are configured.
type GoogleCSE struct {
	svc *customsearch.Service
	cx  string
}

// NewGoogleCSE creates a Custom Search provider.
func NewGoogleCSE(ctx context.Context, apiKey, cx string) (*GoogleCSE, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleCSE{svc: svc, cx: cx}, nil
}

// First returns the first result's link.
func (g *GoogleCSE) First(ctx context.Context, query string) (string, error) {
	resp, err := g.svc.Cse.List().Cx(g.cx).Q(query).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("search failed: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", ErrNoResult
	}
	return resp.Items[0].Link, nil
}
