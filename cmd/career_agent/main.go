// Package main provides the entry point for the Career Agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Resolve a company name or URL to its official site and careers page",
	Long:  "Career Agent resolves a company name or pasted URL into the company's official homepage and careers/jobs page, combining a popular-company table, an LLM, live HTTP probing, and text search.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
