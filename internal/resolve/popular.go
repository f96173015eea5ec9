package resolve

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed popular_domains.json
var popularDomainsFile []byte

// DomainEntry maps a popular company keyword to its homepage.
type DomainEntry struct {
	Key      string `json:"key"`
	Homepage string `json:"homepage"`
}

var (
	popularDomains     []DomainEntry
	popularDomainsOnce sync.Once
)

// PopularDomains returns the ordered popular-company lookup table. The order
// is part of the contract: the first key contained in a hint wins.
func PopularDomains() []DomainEntry {
	popularDomainsOnce.Do(func() {
		if err := json.Unmarshal(popularDomainsFile, &popularDomains); err != nil {
			panic("resolve: invalid popular_domains.json: " + err.Error())
		}
	})
	return popularDomains
}

// MatchPopularDomain returns the first table entry whose key is a substring
// of the hint.
func MatchPopularDomain(hint string) (DomainEntry, bool) {
	for _, entry := range PopularDomains() {
		if strings.Contains(hint, entry.Key) {
			return entry, true
		}
	}
	return DomainEntry{}, false
}
