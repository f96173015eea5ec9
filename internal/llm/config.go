// Package llm asks a language model to resolve free-form company text into
// an official website and careers URL. The calling API surface varies across
// SDK and server versions, so the resolver degrades gracefully across three
// request shapes instead of assuming any single one works.
package llm

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4.1-mini"

// Config holds the model selection and credentials for the resolver. Values
// are passed in explicitly by the caller; this package never reads the
// environment.
type Config struct {
	// Model is the model name (e.g. "gpt-4.1-mini").
	Model string
	// APIKey authenticates against the completion endpoint.
	APIKey string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string
}

// DefaultConfig returns the default model selection with no credentials.
func DefaultConfig() *Config {
	return &Config{Model: DefaultModel}
}
