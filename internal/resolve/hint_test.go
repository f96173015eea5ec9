package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompany(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Nvidia", "nvidia"},
		{"  NVIDIA  ", "nvidia"},
		{"Acme LLC", "acme"},
		{"Uber Technologies Inc", "uber technologies"},
		{"Initech   Corp", "initech"},
		{"Globex Company", "globex"},
		{"Hooli Ltd", "hooli"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCompany(tc.in), "input: %q", tc.in)
	}
}

func TestPopularDomains_Ordered(t *testing.T) {
	entries := PopularDomains()
	assert.NotEmpty(t, entries)
	assert.Equal(t, "google", entries[0].Key)
	assert.Equal(t, "https://about.google", entries[0].Homepage)
}

func TestMatchPopularDomain(t *testing.T) {
	entry, ok := MatchPopularDomain("nvidia")
	assert.True(t, ok)
	assert.Equal(t, "https://www.nvidia.com", entry.Homepage)

	// Substring match: extra words around the key still hit.
	entry, ok = MatchPopularDomain("the stripe payments team")
	assert.True(t, ok)
	assert.Equal(t, "https://stripe.com", entry.Homepage)

	_, ok = MatchPopularDomain("some unlisted startup xyz")
	assert.False(t, ok)
}
