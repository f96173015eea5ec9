// Package discovery locates a company's careers page under a known domain.
// It probes a fixed ordered list of common path suffixes first, then falls
// back to scanning the homepage's anchors for careers-related link text.
package discovery

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/fetch"
)

//go:embed career_paths.json
var careerPathsFile []byte

var (
	careerPaths     []string
	careerPathsOnce sync.Once
)

// anchorKeywords mark link text that points at a careers page.
var anchorKeywords = []string{"career", "job", "join"}

// CareerPaths returns the ordered list of common careers path suffixes.
func CareerPaths() []string {
	careerPathsOnce.Do(func() {
		if err := json.Unmarshal(careerPathsFile, &careerPaths); err != nil {
			panic("discovery: invalid career_paths.json: " + err.Error())
		}
	})
	return careerPaths
}

// FromDomain tries the common careers paths under domainURL and returns the
// first reachable candidate. If none succeed it fetches the homepage and
// returns the first careers-looking anchor whose target is independently
// reachable. Returns "" when every path fails or the homepage fetch fails;
// failures are absorbed, not surfaced.
func FromDomain(ctx context.Context, domainURL string) string {
	if !strings.HasSuffix(domainURL, "/") {
		domainURL += "/"
	}

	for _, path := range CareerPaths() {
		candidate := joinURL(domainURL, path)
		if candidate == "" {
			continue
		}
		if fetch.IsReachable(ctx, candidate, nil) {
			return candidate
		}
	}

	return fromHomepage(ctx, domainURL)
}

// fromHomepage scans homepage anchors for careers-related link text.
func fromHomepage(ctx context.Context, domainURL string) string {
	result, err := fetch.URL(ctx, domainURL, nil)
	if err != nil {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(result.HTML))
	if err != nil {
		return ""
	}

	found := ""
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return true
		}
		text := strings.ToLower(s.Text())
		if !containsAny(text, anchorKeywords) {
			return true
		}
		candidate := joinURL(domainURL, href)
		if candidate == "" {
			return true
		}
		if fetch.IsReachable(ctx, candidate, nil) {
			found = candidate
			return false
		}
		return true
	})

	return found
}

// joinURL resolves ref (relative or absolute) against base. Returns "" on a
// malformed base or ref.
func joinURL(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return baseURL.ResolveReference(refURL).String()
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
