package resolve

import (
	"regexp"
	"strings"
)

var (
	legalSuffixPattern = regexp.MustCompile(`\b(inc|inc\.|llc|corp|co\.|company|ltd)\b`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// NormalizeCompany returns a cleaned company hint: lowercased, legal-entity
// suffixes stripped, whitespace collapsed. Used for the popular-domain
// lookup and search queries only; never persisted.
func NormalizeCompany(text string) string {
	hint := strings.ToLower(strings.TrimSpace(text))
	hint = legalSuffixPattern.ReplaceAllString(hint, "")
	hint = whitespacePattern.ReplaceAllString(hint, " ")
	return strings.TrimSpace(hint)
}
