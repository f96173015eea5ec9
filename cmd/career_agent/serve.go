package main

import (
	"github.com/spf13/cobra"

	"github.com/bhavesh-kalluru/Carrer-Agent/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP JSON API",
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath, "", servePort, serveVerbose)
	if err != nil {
		return err
	}

	resolver, err := buildResolver(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	s, err := server.New(server.Config{
		Port:     cfg.Port,
		Resolver: resolver,
	})
	if err != nil {
		return err
	}

	return s.Start()
}
