package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhavesh-kalluru/Carrer-Agent/internal/observability"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <company-or-url>",
	Short: "Resolve a company name or URL to its official site and careers page",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

var (
	configPath string
	model      string
	verbose    bool
	jsonOut    bool
)

func init() {
	resolveCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file")
	resolveCmd.Flags().StringVarP(&model, "model", "m", "", "LLM model name")
	resolveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	resolveCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the result as JSON")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath, model, 0, verbose)
	if err != nil {
		return err
	}

	resolver, err := buildResolver(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result := resolver.Resolve(cmd.Context(), args[0])

	if jsonOut {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResolution(result)
	if verbose {
		printer.PrintTrace(result.Trace)
	}
	if result.CareersURL == "" {
		fmt.Fprintln(os.Stdout, "No working careers page found. Try refining the company name.")
	}

	return nil
}
