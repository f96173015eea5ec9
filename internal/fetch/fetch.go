// Package fetch provides URL validation, reachability probing, and HTML
// fetching. This package centralizes the HTTP logic used by discovery,
// search, and the resolution cascade.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultProbeTimeout is the timeout for reachability checks.
const DefaultProbeTimeout = 10 * time.Second

// DefaultFetchTimeout is the timeout for full page fetches.
const DefaultFetchTimeout = 12 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "CareerAgent/1.0 (+https://github.com/bhavesh-kalluru/Carrer-Agent)"

// Result holds the raw content from a URL fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultFetchTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// ProbeOptions returns defaults for reachability probing.
func ProbeOptions() *Options {
	return &Options{
		Timeout:   DefaultProbeTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// IsValidURL reports whether s parses as an absolute http(s) URL with a
// non-empty host. Malformed input yields false, never an error.
func IsValidURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// IsReachable reports whether urlStr responds with a status in [200, 400)
// after following redirects. It issues a HEAD request first and retries with
// GET when the server rejects HEAD (error status or 405). Transport failures
// of any kind (DNS, TLS, timeout) count as unreachable; callers cannot
// distinguish "down" from "blocked".
func IsReachable(ctx context.Context, urlStr string, opts *Options) bool {
	if opts == nil {
		opts = ProbeOptions()
	}

	client := &http.Client{Timeout: opts.Timeout}

	status, err := requestStatus(ctx, client, http.MethodHead, urlStr, opts)
	if err != nil {
		return false
	}
	if status >= 400 || status == http.StatusMethodNotAllowed {
		status, err = requestStatus(ctx, client, http.MethodGet, urlStr, opts)
		if err != nil {
			return false
		}
	}

	return status >= 200 && status < 400
}

// requestStatus performs a single request and returns the final status code
// after redirects.
func requestStatus(ctx context.Context, client *http.Client, method, urlStr string, opts *Options) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, urlStr, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	// Drain so the connection can be reused for the GET retry.
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

// URL retrieves HTML content from a URL.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if !IsValidURL(urlStr) {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
		}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}
