package cmd

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taladar/dotnet-parser/application"
	"github.com/taladar/dotnet-parser/config"
	"github.com/taladar/dotnet-parser/domain"
	"github.com/taladar/dotnet-parser/infrastructure/reporter"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	// Global flags
	configPath        string
	verbose           bool
	outputFormat      string
	onlyUpgrades      bool
	excludeDeprecated bool
	minSeverity       string
	keepEmpty         bool

	// Exit status of the last successful pipeline run, picked up by Execute.
	exitStatus reporter.Status
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "dotnet-outdated-report",
	Short: "Parse and filter dotnet-outdated JSON reports",
	Long: `A converter for the JSON reports produced by the dotnet-outdated tool.

It decodes a report into a typed model with precise, path-qualified error
messages, filters the entries by upgrade availability, deprecation, or
severity, and re-renders the result as text or JSON.

The exit code tells CI callers what was found:
  0  clean, nothing to upgrade
  1  outdated packages found
  2  the input could not be read or decoded`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DebugLevel)
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return reporter.ExitDecodeError
	}
	return exitStatus.ExitCode()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "",
		"Output format: text or json (default: text)")
	rootCmd.PersistentFlags().BoolVar(&onlyUpgrades, "only-upgrades", false,
		"Keep only packages with an upgrade available")
	rootCmd.PersistentFlags().BoolVar(&excludeDeprecated, "exclude-deprecated", false,
		"Drop deprecated packages from the output")
	rootCmd.PersistentFlags().StringVar(&minSeverity, "min-severity", "",
		"Keep only upgrades of at least this severity (Major, Minor, Patch)")
	rootCmd.PersistentFlags().BoolVar(&keepEmpty, "keep-empty", false,
		"Retain projects and frameworks left empty by filtering")
}

// loadConfig resolves the effective configuration: an explicit --config
// path, an auto-detected file, or the built-in defaults.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}

	found, err := config.FindConfigFile()
	if err != nil {
		logger.Debugf("no config file found, using defaults")
		return config.Default(), nil
	}
	logger.Debugf("using config file %s", found)
	return config.Load(found)
}

// buildCheckOptions merges flags over the configuration defaults.
func buildCheckOptions(cmd *cobra.Command, cfg *config.Config) (application.CheckOptions, error) {
	opts := application.CheckOptions{
		OnlyUpgrades:      cfg.Filter.OnlyUpgrades,
		ExcludeDeprecated: cfg.Filter.ExcludeDeprecated,
		MinSeverity:       domain.Severity(cfg.Filter.MinSeverity),
		KeepEmpty:         cfg.Filter.KeepEmpty,
	}

	flags := cmd.Flags()
	if flags.Changed("only-upgrades") {
		opts.OnlyUpgrades = onlyUpgrades
	}
	if flags.Changed("exclude-deprecated") {
		opts.ExcludeDeprecated = excludeDeprecated
	}
	if flags.Changed("keep-empty") {
		opts.KeepEmpty = keepEmpty
	}
	if flags.Changed("min-severity") {
		severity := domain.Severity(minSeverity)
		if !severity.IsKnown() {
			return opts, fmt.Errorf("unknown severity %q (expected Major, Minor, Patch, None, or Unknown)",
				minSeverity)
		}
		opts.MinSeverity = severity
	}

	formatName := cfg.Format
	if flags.Changed("format") {
		formatName = outputFormat
	}
	format, err := reporter.ParseFormat(formatName)
	if err != nil {
		return opts, err
	}
	opts.Format = format

	return opts, nil
}
