package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CAREER_AGENT_MODEL", "gpt-4o-mini")
	t.Setenv("PORT", "9090")
	t.Setenv("GOOGLE_SEARCH_API_KEY", "")
	t.Setenv("GOOGLE_SEARCH_CX", "")

	cfg := FromEnv()
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 9090, cfg.Port)
}

func TestFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 0, cfg.Port)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"model": "gpt-4.1", "port": 8081}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", cfg.Model)
	assert.Equal(t, 8081, cfg.Port)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Model: "gpt-4.1"}
	merged := cfg.MergeWithDefaults(Config{
		Model:        "gpt-4.1-mini",
		OpenAIAPIKey: "sk-env",
		Port:         8080,
	})

	assert.Equal(t, "gpt-4.1", merged.Model)
	assert.Equal(t, "sk-env", merged.OpenAIAPIKey)
	assert.Equal(t, 8080, merged.Port)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080}
	assert.NoError(t, cfg.Validate())

	cfg = &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{GoogleSearchAPIKey: "key"}
	assert.Error(t, cfg.Validate())

	cfg = &Config{GoogleSearchAPIKey: "key", GoogleSearchCX: "cx"}
	assert.NoError(t, cfg.Validate())
}
