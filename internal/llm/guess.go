package llm

import (
	"context"
	"encoding/json"
	"regexp"
)

// Client resolves free-form company text into a best-effort triple.
type Client interface {
	// ResolveCompany returns a partial triple; each field is independently
	// optional. A non-nil error means no strategy produced a usable field,
	// but the returned guess is still non-nil so callers can record the raw
	// model output.
	ResolveCompany(ctx context.Context, input string) (*CompanyGuess, error)
}

// CompanyGuess is the structured triple the model is asked to produce.
type CompanyGuess struct {
	Company         string `json:"company"`
	OfficialWebsite string `json:"official_website"`
	CareersURL      string `json:"careers_url"`

	// Raw is the raw model text the guess was parsed from, kept for the
	// diagnostic trace.
	Raw string `json:"-"`
}

// Empty reports whether no field carries a value.
func (g *CompanyGuess) Empty() bool {
	return g.Company == "" && g.OfficialWebsite == "" && g.CareersURL == ""
}

// tripleJSONPattern salvages a JSON object containing the three expected
// keys from surrounding prose. It assumes the keys appear in this order in
// the raw text; this is a best-effort salvage path, not a parsing guarantee.
var tripleJSONPattern = regexp.MustCompile(`(?s)\{.*"company"\s*:\s*".*?".*"official_website"\s*:\s*".*?".*"careers_url"\s*:\s*".*?".*\}`)

// ParseGuess extracts a CompanyGuess from raw model text. It first strips
// markdown code fences and tries a direct JSON parse, then falls back to the
// permissive regex extraction. Returns false when neither path yields an
// object.
func ParseGuess(text string) (*CompanyGuess, bool) {
	cleaned := CleanJSONBlock(text)

	var guess CompanyGuess
	if err := json.Unmarshal([]byte(cleaned), &guess); err == nil {
		return &guess, true
	}

	match := tripleJSONPattern.FindString(cleaned)
	if match == "" {
		return nil, false
	}

	guess = CompanyGuess{}
	if err := json.Unmarshal([]byte(match), &guess); err != nil {
		return nil, false
	}
	return &guess, true
}
