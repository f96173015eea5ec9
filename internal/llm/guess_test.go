package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tripleJSON = `{"company": "Acme Corp", "official_website": "https://www.acme.com", "careers_url": "https://www.acme.com/careers"}`

func TestParseGuess_DirectJSON(t *testing.T) {
	guess, ok := ParseGuess(tripleJSON)
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", guess.Company)
	assert.Equal(t, "https://www.acme.com", guess.OfficialWebsite)
	assert.Equal(t, "https://www.acme.com/careers", guess.CareersURL)
}

func TestParseGuess_RegexSalvageMatchesDirectParse(t *testing.T) {
	// The same object wrapped in prose must yield identical field values via
	// the salvage path.
	direct, ok := ParseGuess(tripleJSON)
	require.True(t, ok)

	salvaged, ok := ParseGuess("Sure! Here is the JSON you asked for:\n" + tripleJSON + "\nLet me know if you need anything else.")
	require.True(t, ok)

	assert.Equal(t, direct.Company, salvaged.Company)
	assert.Equal(t, direct.OfficialWebsite, salvaged.OfficialWebsite)
	assert.Equal(t, direct.CareersURL, salvaged.CareersURL)
}

func TestParseGuess_CodeFence(t *testing.T) {
	guess, ok := ParseGuess("```json\n" + tripleJSON + "\n```")
	require.True(t, ok)
	assert.Equal(t, "Acme Corp", guess.Company)
}

func TestParseGuess_PartialFields(t *testing.T) {
	guess, ok := ParseGuess(`{"company": "Acme", "official_website": "", "careers_url": ""}`)
	require.True(t, ok)
	assert.False(t, guess.Empty())
	assert.Empty(t, guess.OfficialWebsite)
}

func TestParseGuess_Unparseable(t *testing.T) {
	_, ok := ParseGuess("I could not find that company, sorry.")
	assert.False(t, ok)
}

func TestCompanyGuess_Empty(t *testing.T) {
	assert.True(t, (&CompanyGuess{}).Empty())
	assert.True(t, (&CompanyGuess{Raw: "text without fields"}).Empty())
	assert.False(t, (&CompanyGuess{CareersURL: "https://acme.com/jobs"}).Empty())
}
