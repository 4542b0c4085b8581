package cmd

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/taladar/dotnet-parser/application"
	"github.com/taladar/dotnet-parser/config"
	"github.com/taladar/dotnet-parser/domain"
	"github.com/taladar/dotnet-parser/infrastructure/runner"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	includeAutoReferences bool
	preRelease            string
	includePackages       []string
	excludePackages       []string
	transitive            bool
	transitiveDepth       int
	versionLock           string
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Run dotnet-outdated and report on its findings",
	Long: `Invoke "dotnet outdated" against the given directory (or the
current directory), then decode, filter, and render its JSON report.

Requires the dotnet-outdated tool to be installed
(dotnet tool install --global dotnet-outdated-tool).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	checkCmd.Flags().BoolVarP(&includeAutoReferences, "include-auto-references", "i", false,
		"Include auto-referenced packages")
	checkCmd.Flags().StringVar(&preRelease, "pre-release", "",
		"Look for pre-release versions: Never, Auto, or Always (default: Auto)")
	checkCmd.Flags().StringArrayVar(&includePackages, "include", nil,
		"Package to include in the consideration (repeatable)")
	checkCmd.Flags().StringArrayVar(&excludePackages, "exclude", nil,
		"Package to exclude from consideration (repeatable)")
	checkCmd.Flags().BoolVarP(&transitive, "transitive", "t", false,
		"Consider transitive dependencies")
	checkCmd.Flags().IntVar(&transitiveDepth, "transitive-depth", 1,
		"Depth in the dependency tree for transitive dependencies")
	checkCmd.Flags().StringVar(&versionLock, "version-lock", "",
		"Limit upgrades: None, Major, or Minor (default: None)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := buildCheckOptions(cmd, cfg)
	if err != nil {
		return err
	}

	runnerOpts, err := buildRunnerOptions(cmd, cfg, args)
	if err != nil {
		return err
	}

	result, err := runner.Run(context.Background(), runnerOpts)
	if err != nil {
		return err
	}
	logger.Debugf("dotnet outdated indicated: %s", result.Requirement)

	service := application.NewCheckService(cmd.OutOrStdout())
	status, err := service.Check(result.Output, opts)
	if err != nil {
		return err
	}

	// The tool's exit status and the decoded report can disagree when
	// filters drop everything actionable; the rendered report wins.
	if result.Requirement == domain.UpdateRequired && status.ExitCode() == 0 {
		logger.Debugf("tool indicated updates, but none matched the active filters")
	}

	exitStatus = status
	return nil
}

// buildRunnerOptions merges check flags over the configuration defaults.
func buildRunnerOptions(cmd *cobra.Command, cfg *config.Config, args []string) (runner.Options, error) {
	opts := runner.Options{
		IncludeAutoReferences: cfg.Outdated.IncludeAutoReferences,
		Include:               cfg.Outdated.Include,
		Exclude:               cfg.Outdated.Exclude,
		Transitive:            cfg.Outdated.Transitive,
		TransitiveDepth:       cfg.Outdated.TransitiveDepth,
		InputDir:              cfg.Outdated.InputDir,
	}

	preReleaseName := cfg.Outdated.PreRelease
	versionLockName := cfg.Outdated.VersionLock

	flags := cmd.Flags()
	if flags.Changed("include-auto-references") {
		opts.IncludeAutoReferences = includeAutoReferences
	}
	if flags.Changed("include") {
		opts.Include = includePackages
	}
	if flags.Changed("exclude") {
		opts.Exclude = excludePackages
	}
	if flags.Changed("transitive") {
		opts.Transitive = transitive
	}
	if flags.Changed("transitive-depth") {
		opts.TransitiveDepth = transitiveDepth
	}
	if flags.Changed("pre-release") {
		preReleaseName = preRelease
	}
	if flags.Changed("version-lock") {
		versionLockName = versionLock
	}
	if len(args) == 1 {
		opts.InputDir = args[0]
	}

	parsedPreRelease, err := runner.ParsePreRelease(preReleaseName)
	if err != nil {
		return opts, err
	}
	opts.PreRelease = parsedPreRelease

	parsedVersionLock, err := runner.ParseVersionLock(versionLockName)
	if err != nil {
		return opts, err
	}
	opts.VersionLock = parsedVersionLock

	return opts, nil
}
