// Package resolve combines the individual signal sources into the resolution
// cascade: direct URL, popular-domain shortcut, LLM suggestion, then text
// search. Every signal is best-effort; the cascade always produces a result,
// possibly with one or both fields absent.
package resolve

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/bhavesh-kalluru/Carrer-Agent/internal/discovery"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/fetch"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/llm"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/search"
)

// Prober checks whether a URL responds.
type Prober interface {
	IsReachable(ctx context.Context, urlStr string) bool
}

// Discoverer finds a careers page under a known domain. An empty string
// means nothing was found.
type Discoverer interface {
	FromDomain(ctx context.Context, domainURL string) string
}

// Result is the final best-effort pair plus a diagnostic trace. Immutable
// once produced.
type Result struct {
	OfficialWebsite string            `json:"official_website,omitempty"`
	CareersURL      string            `json:"careers_url,omitempty"`
	Trace           map[string]string `json:"trace"`
}

// Resolver runs the cascade. LLM and Searcher may be nil; the corresponding
// signals are then skipped.
type Resolver struct {
	Prober     Prober
	Discoverer Discoverer
	Searcher   search.Provider
	LLM        llm.Client
	Verbose    bool
}

// New returns a Resolver wired to the live prober, discoverer, and the given
// optional collaborators.
func New(llmClient llm.Client, searcher search.Provider) *Resolver {
	return &Resolver{
		Prober:     fetchProber{},
		Discoverer: pathDiscoverer{},
		Searcher:   searcher,
		LLM:        llmClient,
	}
}

// Resolve combines all signals into an (official, careers) pair. The first
// two branches short-circuit the cascade when they produce a result;
// branches three and four apply cumulatively. There is no fatal error path:
// every failure degrades to an absent field.
func (r *Resolver) Resolve(ctx context.Context, input string) *Result {
	input = strings.TrimSpace(input)
	trace := map[string]string{}

	// 1. Direct URL: treat the origin as the official site.
	if fetch.IsValidURL(input) {
		return r.resolveDirectURL(ctx, input, trace)
	}

	hint := NormalizeCompany(input)
	trace["hint"] = hint
	r.logf("hint: %q", hint)

	// 2. Popular-domain shortcut: official is the mapped homepage whether or
	// not it currently probes as reachable.
	if entry, ok := MatchPopularDomain(hint); ok {
		trace["mode"] = "popular_map"
		r.logf("popular map hit: %s -> %s", entry.Key, entry.Homepage)
		careers := r.discover(ctx, entry.Homepage)
		if careers == "" {
			careers = r.searchFirst(ctx, entry.Key+" careers site")
		}
		return &Result{OfficialWebsite: entry.Homepage, CareersURL: careers, Trace: trace}
	}

	// 3. LLM suggestion, re-verified before use.
	official, careers := r.resolveWithLLM(ctx, input, trace)

	// 4. Search fallback for whatever is still missing.
	if official == "" {
		if found := r.searchFirst(ctx, hint+" official site"); found != "" && r.Prober.IsReachable(ctx, found) {
			official = found
		}
	}
	if careers == "" {
		if found := r.searchFirst(ctx, hint+" careers site"); found != "" && r.Prober.IsReachable(ctx, found) {
			careers = found
		}
	}

	trace["mode"] = "llm_search"
	return &Result{OfficialWebsite: official, CareersURL: careers, Trace: trace}
}

// resolveDirectURL handles pasted URLs. When the path already names a
// careers page the input is used as-is; otherwise discovery runs against the
// origin, falling back to the original input.
func (r *Resolver) resolveDirectURL(ctx context.Context, input string, trace map[string]string) *Result {
	parsed, err := url.Parse(input)
	if err != nil {
		// IsValidURL already parsed it once; this cannot happen.
		return &Result{Trace: trace}
	}

	official := parsed.Scheme + "://" + parsed.Host
	trace["mode"] = "direct_url"

	pathLower := strings.ToLower(parsed.Path)
	if strings.Contains(pathLower, "career") || strings.Contains(pathLower, "job") {
		return &Result{OfficialWebsite: official, CareersURL: input, Trace: trace}
	}

	careers := r.discover(ctx, official)
	if careers == "" {
		careers = input
	}
	return &Result{OfficialWebsite: official, CareersURL: careers, Trace: trace}
}

// resolveWithLLM asks the model for the triple and verifies its claims. An
// official site that fails probing is discarded; a missing or unreachable
// careers URL is replaced by discovery when an official site survived.
func (r *Resolver) resolveWithLLM(ctx context.Context, input string, trace map[string]string) (official, careers string) {
	trace["llm_raw"] = ""
	if r.LLM == nil {
		return "", ""
	}

	guess, err := r.LLM.ResolveCompany(ctx, input)
	if err != nil {
		r.logf("llm resolver: %v", err)
	}
	if guess == nil {
		return "", ""
	}

	trace["llm_raw"] = guess.Raw
	official = guess.OfficialWebsite
	careers = guess.CareersURL

	if official != "" && !r.Prober.IsReachable(ctx, official) {
		r.logf("llm official %s unreachable, discarding", official)
		official = ""
	}

	if official != "" && (careers == "" || !r.Prober.IsReachable(ctx, careers)) {
		if discovered := r.discover(ctx, official); discovered != "" {
			careers = discovered
		}
	}

	return official, careers
}

func (r *Resolver) discover(ctx context.Context, domainURL string) string {
	if r.Discoverer == nil {
		return ""
	}
	return r.Discoverer.FromDomain(ctx, domainURL)
}

// searchFirst runs the query and absorbs every failure; search is a
// probabilistic signal, never an error source.
func (r *Resolver) searchFirst(ctx context.Context, query string) string {
	if r.Searcher == nil {
		return ""
	}
	found, err := r.Searcher.First(ctx, query)
	if err != nil {
		r.logf("search %q: %v", query, err)
		return ""
	}
	return found
}

func (r *Resolver) logf(format string, args ...any) {
	if r.Verbose {
		log.Printf("[VERBOSE] "+format, args...)
	}
}

// fetchProber probes with the live HTTP client.
type fetchProber struct{}

func (fetchProber) IsReachable(ctx context.Context, urlStr string) bool {
	return fetch.IsReachable(ctx, urlStr, nil)
}

// pathDiscoverer runs live careers-path discovery.
type pathDiscoverer struct{}

func (pathDiscoverer) FromDomain(ctx context.Context, domainURL string) string {
	return discovery.FromDomain(ctx, domainURL)
}
