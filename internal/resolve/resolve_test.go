package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhavesh-kalluru/Carrer-Agent/internal/llm"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/search"
)

type stubProber struct {
	reachable map[string]bool
}

func (s stubProber) IsReachable(_ context.Context, urlStr string) bool {
	return s.reachable[urlStr]
}

type stubDiscoverer struct {
	results map[string]string
}

func (s stubDiscoverer) FromDomain(_ context.Context, domainURL string) string {
	return s.results[domainURL]
}

type stubSearcher struct {
	results map[string]string
	queries []string
}

func (s *stubSearcher) First(_ context.Context, query string) (string, error) {
	s.queries = append(s.queries, query)
	if found, ok := s.results[query]; ok {
		return found, nil
	}
	return "", search.ErrNoResult
}

type stubLLM struct {
	guess *llm.CompanyGuess
	err   error
}

func (s stubLLM) ResolveCompany(_ context.Context, _ string) (*llm.CompanyGuess, error) {
	return s.guess, s.err
}

func newTestResolver() *Resolver {
	return &Resolver{
		Prober:     stubProber{},
		Discoverer: stubDiscoverer{},
		Searcher:   &stubSearcher{},
	}
}

func TestResolve_DirectURLWithCareersPath(t *testing.T) {
	r := newTestResolver()

	result := r.Resolve(context.Background(), "https://openai.com/careers")
	assert.Equal(t, "https://openai.com", result.OfficialWebsite)
	assert.Equal(t, "https://openai.com/careers", result.CareersURL)
	assert.Equal(t, "direct_url", result.Trace["mode"])
}

func TestResolve_DirectURLWithJobsPath(t *testing.T) {
	r := newTestResolver()

	result := r.Resolve(context.Background(), "https://example.com/join-our-jobs-team")
	assert.Equal(t, "https://example.com", result.OfficialWebsite)
	assert.Equal(t, "https://example.com/join-our-jobs-team", result.CareersURL)
}

func TestResolve_DirectURLRunsDiscovery(t *testing.T) {
	r := newTestResolver()
	r.Discoverer = stubDiscoverer{results: map[string]string{
		"https://example.com": "https://example.com/careers",
	}}

	result := r.Resolve(context.Background(), "https://example.com/about")
	assert.Equal(t, "https://example.com", result.OfficialWebsite)
	assert.Equal(t, "https://example.com/careers", result.CareersURL)
}

func TestResolve_DirectURLFallsBackToInput(t *testing.T) {
	// Discovery finds nothing; the pasted URL itself is the best careers
	// candidate we have.
	r := newTestResolver()

	result := r.Resolve(context.Background(), "https://example.com/about")
	assert.Equal(t, "https://example.com", result.OfficialWebsite)
	assert.Equal(t, "https://example.com/about", result.CareersURL)
}

func TestResolve_PopularDomainShortcut(t *testing.T) {
	r := newTestResolver()
	r.Discoverer = stubDiscoverer{results: map[string]string{
		"https://www.nvidia.com": "https://www.nvidia.com/careers",
	}}

	result := r.Resolve(context.Background(), "Nvidia")
	assert.Equal(t, "https://www.nvidia.com", result.OfficialWebsite)
	assert.Equal(t, "https://www.nvidia.com/careers", result.CareersURL)
	assert.Equal(t, "popular_map", result.Trace["mode"])
	assert.Equal(t, "nvidia", result.Trace["hint"])
}

func TestResolve_PopularDomainIndependentOfReachability(t *testing.T) {
	// The mapped homepage is used even when nothing probes as reachable and
	// discovery comes up empty.
	r := newTestResolver()

	result := r.Resolve(context.Background(), "Tesla Inc")
	assert.Equal(t, "https://www.tesla.com", result.OfficialWebsite)
	assert.Empty(t, result.CareersURL)
}

func TestResolve_PopularDomainSearchFallback(t *testing.T) {
	searcher := &stubSearcher{results: map[string]string{
		"nvidia careers site": "https://jobs.example.org/nvidia",
	}}
	r := newTestResolver()
	r.Searcher = searcher

	result := r.Resolve(context.Background(), "nvidia")
	assert.Equal(t, "https://www.nvidia.com", result.OfficialWebsite)
	assert.Equal(t, "https://jobs.example.org/nvidia", result.CareersURL)
	require.Len(t, searcher.queries, 1)
	assert.Equal(t, "nvidia careers site", searcher.queries[0])
}

func TestResolve_LLMGuessVerified(t *testing.T) {
	r := newTestResolver()
	r.LLM = stubLLM{guess: &llm.CompanyGuess{
		Company:         "Initech",
		OfficialWebsite: "https://www.initech.com",
		CareersURL:      "https://www.initech.com/careers",
		Raw:             `{"company": "Initech"}`,
	}}
	r.Prober = stubProber{reachable: map[string]bool{
		"https://www.initech.com":         true,
		"https://www.initech.com/careers": true,
	}}

	result := r.Resolve(context.Background(), "Initech")
	assert.Equal(t, "https://www.initech.com", result.OfficialWebsite)
	assert.Equal(t, "https://www.initech.com/careers", result.CareersURL)
	assert.Equal(t, `{"company": "Initech"}`, result.Trace["llm_raw"])
}

func TestResolve_LLMOfficialDiscardedWhenUnreachable(t *testing.T) {
	r := newTestResolver()
	r.LLM = stubLLM{guess: &llm.CompanyGuess{
		OfficialWebsite: "https://wrong.example.com",
	}}

	result := r.Resolve(context.Background(), "Initech")
	assert.Empty(t, result.OfficialWebsite)
}

func TestResolve_LLMCareersReplacedByDiscovery(t *testing.T) {
	// Official site is reachable but the suggested careers URL is not;
	// discovery against the official site wins.
	r := newTestResolver()
	r.LLM = stubLLM{guess: &llm.CompanyGuess{
		OfficialWebsite: "https://www.initech.com",
		CareersURL:      "https://www.initech.com/old-careers",
	}}
	r.Prober = stubProber{reachable: map[string]bool{
		"https://www.initech.com": true,
	}}
	r.Discoverer = stubDiscoverer{results: map[string]string{
		"https://www.initech.com": "https://www.initech.com/jobs",
	}}

	result := r.Resolve(context.Background(), "Initech")
	assert.Equal(t, "https://www.initech.com", result.OfficialWebsite)
	assert.Equal(t, "https://www.initech.com/jobs", result.CareersURL)
}

func TestResolve_SearchFallbackVerifiesReachability(t *testing.T) {
	searcher := &stubSearcher{results: map[string]string{
		"initech official site": "https://www.initech.com",
		"initech careers site":  "https://www.initech.com/careers",
	}}
	r := newTestResolver()
	r.Searcher = searcher
	r.Prober = stubProber{reachable: map[string]bool{
		"https://www.initech.com": true,
		// careers result not reachable: must be dropped
	}}

	result := r.Resolve(context.Background(), "Initech")
	assert.Equal(t, "https://www.initech.com", result.OfficialWebsite)
	assert.Empty(t, result.CareersURL)
}

func TestResolve_NothingFound(t *testing.T) {
	// No reachable LLM and no search results: both fields absent, trace
	// still records the hint and the (empty) raw LLM output.
	r := newTestResolver()
	r.LLM = stubLLM{guess: &llm.CompanyGuess{}, err: assert.AnError}

	result := r.Resolve(context.Background(), "some unlisted startup xyz")
	assert.Empty(t, result.OfficialWebsite)
	assert.Empty(t, result.CareersURL)
	assert.Equal(t, "some unlisted startup xyz", result.Trace["hint"])
	raw, present := result.Trace["llm_raw"]
	assert.True(t, present)
	assert.Empty(t, raw)
}

func TestResolve_NoCollaborators(t *testing.T) {
	r := &Resolver{Prober: stubProber{}}

	result := r.Resolve(context.Background(), "mystery startup")
	assert.Empty(t, result.OfficialWebsite)
	assert.Empty(t, result.CareersURL)
	assert.Equal(t, "mystery startup", result.Trace["hint"])
}
