// Package config provides configuration loading and validation for the CLI
// and server. Credentials and model selection are read here once and passed
// explicitly into the resolver components; no other package reads the
// environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is the HTTP API listen port when none is configured.
const DefaultPort = 8080

// Config represents the runtime configuration. It can be loaded from a JSON
// file, the environment, or both; all fields are optional.
type Config struct {
	// Credentials
	OpenAIAPIKey       string `json:"openai_api_key,omitempty"`
	GoogleSearchAPIKey string `json:"google_search_api_key,omitempty"`
	GoogleSearchCX     string `json:"google_search_cx,omitempty"`

	// Behavior
	Model   string `json:"model,omitempty"`   // LLM model name
	Port    int    `json:"port,omitempty"`    // HTTP API listen port
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// FromEnv builds a Config from process environment variables.
func FromEnv() *Config {
	cfg := &Config{
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		GoogleSearchAPIKey: os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchCX:     os.Getenv("GOOGLE_SEARCH_CX"),
		Model:              os.Getenv("CAREER_AGENT_MODEL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags win over file values, file values over env.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.OpenAIAPIKey == "" {
		result.OpenAIAPIKey = defaults.OpenAIAPIKey
	}
	if result.GoogleSearchAPIKey == "" {
		result.GoogleSearchAPIKey = defaults.GoogleSearchAPIKey
	}
	if result.GoogleSearchCX == "" {
		result.GoogleSearchCX = defaults.GoogleSearchCX
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if (c.GoogleSearchAPIKey == "") != (c.GoogleSearchCX == "") {
		return fmt.Errorf("config error: 'google_search_api_key' and 'google_search_cx' must be set together")
	}
	return nil
}
