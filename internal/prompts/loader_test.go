package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ResolverSystemInstruction(t *testing.T) {
	prompt, err := Get("resolver.json", "system-instruction")
	require.NoError(t, err)
	assert.Contains(t, prompt, "precise URL resolver")
	assert.Contains(t, prompt, `"official_website"`)
	assert.Contains(t, prompt, `"careers_url"`)
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("resolver.json", "no-such-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "system-instruction")
	require.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("resolver.json", "no-such-key")
	})
}

func TestFormat(t *testing.T) {
	template := MustGet("resolver.json", "user-message")
	formatted := Format(template, map[string]string{"Input": "Nvidia"})
	assert.Contains(t, formatted, "Company input: Nvidia")
	assert.NotContains(t, formatted, "{{.Input}}")
}
