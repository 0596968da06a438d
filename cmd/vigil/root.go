package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stratus-ops/vigil/pkg/cli"
	"github.com/stratus-ops/vigil/pkg/config"
	"github.com/stratus-ops/vigil/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile      string
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "Assemble monitoring alert rules and autoscale policies",
	Long: `Vigil assembles monitoring documents from command-line expressions.

It turns compact condition and scale expressions into complete documents:
  - Metric alert rules with email and webhook actions
  - Autoscale rules, profiles, and settings
  - Action groups with typed receivers

Documents are rendered locally by default; --submit sends them to the
management API configured in the config file.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "vigil.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: json, yaml")
}

// loadRuntime loads configuration and builds the logger shared by all
// commands. The --output and --verbose flags override the config file.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWithEnvOverrides(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if outputFormat != "" {
		if _, err := cli.ParseFormat(outputFormat); err != nil {
			return nil, nil, err
		}
		cfg.Output.Format = outputFormat
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, Format: cfg.Logging.Format})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// renderDocument writes an assembled document to stdout in the configured
// format.
func renderDocument(cfg *config.Config, document interface{}) error {
	format, err := cli.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	return cli.NewFormatter(format).FormatTo(os.Stdout, document)
}
