// Package main is the entry point for the gw2-api server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/gw2-api/internal/config"
	"github.com/KirkDiggler/gw2-api/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = logger.DefaultVersion

// cfg is loaded before any subcommand runs
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "gw2-api",
	Short:         "Typed Guild Wars 2 item API",
	Long:          `gw2-api fetches Guild Wars 2 item records, converts them into typed items and serves them over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		cfg = loaded

		logCfg := logger.Config{
			Level:       cfg.Log.Level,
			Format:      cfg.Log.Format,
			ServiceName: logger.DefaultServiceName,
			Version:     version,
			AddSource:   cfg.Log.AddSource,
		}
		if err := logCfg.Validate(); err != nil {
			return err
		}
		logger.Setup(logCfg)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(itemCmd)
	rootCmd.AddCommand(chatlinkCmd)
}
