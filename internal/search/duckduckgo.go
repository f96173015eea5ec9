package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/fetch"
)

// defaultDuckDuckGoURL is the server-rendered HTML results endpoint.
const defaultDuckDuckGoURL = "https://duckduckgo.com/html/"

// resultSelector matches result anchors on the DuckDuckGo HTML page. This is
// inherently fragile: it tracks the provider's current markup.
const resultSelector = ".result__a"

// DuckDuckGo scrapes the DuckDuckGo HTML results page. It needs no API key,
// which makes it the default provider.
type DuckDuckGo struct {
	// BaseURL overrides the results endpoint, mainly for tests.
	BaseURL string
	Options *fetch.Options
}

// NewDuckDuckGo returns a provider against the public endpoint.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{}
}

// First returns the href of the first result anchor that looks like an
// absolute external URL.
func (d *DuckDuckGo) First(ctx context.Context, query string) (string, error) {
	base := d.BaseURL
	if base == "" {
		base = defaultDuckDuckGoURL
	}

	queryURL := base + "?q=" + url.QueryEscape(query)
	result, err := fetch.URL(ctx, queryURL, d.Options)
	if err != nil {
		return "", fmt.Errorf("duckduckgo query failed: %w", err)
	}
	if result.StatusCode != http.StatusOK {
		return "", fmt.Errorf("duckduckgo returned status %d", result.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse results page: %w", err)
	}

	found := ""
	doc.Find(resultSelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, exists := s.Attr("href")
		if !exists {
			return true
		}
		if strings.Contains(href, "http://") || strings.Contains(href, "https://") {
			found = href
			return false
		}
		return true
	})

	if found == "" {
		return "", ErrNoResult
	}
	return found, nil
}
