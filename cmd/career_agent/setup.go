package main

import (
	"context"
	"fmt"
	"log"

	"github.com/bhavesh-kalluru/Carrer-Agent/internal/config"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/llm"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/resolve"
	"github.com/bhavesh-kalluru/Carrer-Agent/internal/search"
)

// loadConfig merges configuration sources: CLI flags win over the config
// file, the config file wins over the environment.
func loadConfig(configPath, model string, port int, verbose bool) (*config.Config, error) {
	cfg := *config.FromEnv()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	flagCfg := config.Config{Model: model, Port: port}
	cfg = flagCfg.MergeWithDefaults(cfg)
	cfg.Verbose = verbose || cfg.Verbose

	if cfg.Port == 0 {
		cfg.Port = config.DefaultPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// buildResolver wires the live collaborators. The LLM signal is skipped when
// no API key is configured; search falls back from Google Custom Search to
// the DuckDuckGo HTML scraper.
func buildResolver(ctx context.Context, cfg *config.Config) (*resolve.Resolver, error) {
	var llmClient llm.Client
	if cfg.OpenAIAPIKey != "" {
		client, err := llm.NewOpenAIClient(&llm.Config{
			Model:  cfg.Model,
			APIKey: cfg.OpenAIAPIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		llmClient = client
	} else if cfg.Verbose {
		log.Printf("[VERBOSE] OPENAI_API_KEY not set; skipping the LLM signal")
	}

	var searcher search.Provider
	if cfg.GoogleSearchAPIKey != "" && cfg.GoogleSearchCX != "" {
		google, err := search.NewGoogleCSE(ctx, cfg.GoogleSearchAPIKey, cfg.GoogleSearchCX)
		if err != nil {
			return nil, fmt.Errorf("failed to create search provider: %w", err)
		}
		searcher = google
	} else {
		searcher = search.NewDuckDuckGo()
	}

	resolver := resolve.New(llmClient, searcher)
	resolver.Verbose = cfg.Verbose
	return resolver, nil
}
