package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ai-website-builder/internal/config"
	"ai-website-builder/internal/logger"
)

// rootCmd runs the HTTP server when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:           "website-builder",
	Short:         "AI website builder API",
	Long:          `Generates, edits, publishes and serves websites assembled from AI-generated sections.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCommand())
	rootCmd.AddCommand(migrateCommand())
}

// loadConfig reads configuration and applies the log level before anything logs.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	logger.Init(cfg.LogLevel)
	return cfg, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
