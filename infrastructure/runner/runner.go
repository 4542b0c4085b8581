// Package runner invokes the dotnet-outdated tool and captures the JSON
// report it writes. The tool is asked to fail on updates, so its exit
// status already indicates whether anything is outdated; the JSON output
// carries the details.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/taladar/dotnet-parser/domain"
)

// PreRelease controls whether dotnet-outdated considers pre-release versions.
type PreRelease string

const (
	// PreReleaseNever never looks for pre-releases.
	PreReleaseNever PreRelease = "Never"
	// PreReleaseAuto lets dotnet-outdated decide per package.
	PreReleaseAuto PreRelease = "Auto"
	// PreReleaseAlways always looks for pre-releases.
	PreReleaseAlways PreRelease = "Always"
)

// ParsePreRelease validates a pre-release mode from flags or config.
func ParsePreRelease(name string) (PreRelease, error) {
	switch PreRelease(name) {
	case PreReleaseNever, PreReleaseAuto, PreReleaseAlways:
		return PreRelease(name), nil
	default:
		return "", fmt.Errorf("unknown pre-release mode %q (expected Never, Auto, or Always)", name)
	}
}

// VersionLock limits which upgrades dotnet-outdated considers.
type VersionLock string

const (
	// VersionLockNone considers all upgrades.
	VersionLockNone VersionLock = "None"
	// VersionLockMajor locks the major version, so only minor and patch
	// upgrades are considered.
	VersionLockMajor VersionLock = "Major"
	// VersionLockMinor locks the minor version, so only patch upgrades are
	// considered.
	VersionLockMinor VersionLock = "Minor"
)

// ParseVersionLock validates a version-lock mode from flags or config.
func ParseVersionLock(name string) (VersionLock, error) {
	switch VersionLock(name) {
	case VersionLockNone, VersionLockMajor, VersionLockMinor:
		return VersionLock(name), nil
	default:
		return "", fmt.Errorf("unknown version lock %q (expected None, Major, or Minor)", name)
	}
}

// Options modify the dotnet-outdated invocation.
type Options struct {
	IncludeAutoReferences bool        // Include auto-referenced packages
	PreRelease            PreRelease  // Pre-release handling, defaults to Auto
	Include               []string    // Packages to include in the consideration
	Exclude               []string    // Packages to exclude from consideration
	Transitive            bool        // Consider transitive dependencies
	TransitiveDepth       int         // Depth for transitive resolution, defaults to 1
	VersionLock           VersionLock // Upgrade scope limit, defaults to None
	InputDir              string      // Directory to analyze, defaults to the working directory
}

// Result carries the captured report and what the tool's exit status
// indicated.
type Result struct {
	Output      []byte                            // Raw JSON report as written by the tool
	Requirement domain.IndicatedUpdateRequirement // Derived from the tool's exit status
}

// Run executes dotnet outdated with the given options and returns the JSON
// report it produced. A non-zero exit status from the tool is expected when
// updates exist (--fail-on-updates) and is reported through the Result, not
// as an error.
func Run(ctx context.Context, opts Options) (*Result, error) {
	outputDir, err := os.MkdirTemp("", "dotnet-outdated-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}
	defer os.RemoveAll(outputDir)

	outputFile := filepath.Join(outputDir, "outdated.json")

	cmd := exec.CommandContext(ctx, "dotnet", buildArgs(opts, outputFile)...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	requirement := domain.UpToDate
	if runErr := cmd.Run(); runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return nil, fmt.Errorf("failed to run dotnet outdated: %w", runErr)
		}

		// --fail-on-updates makes a non-zero exit the signal that
		// something is outdated.
		requirement = domain.UpdateRequired
		logger.Warnf("dotnet outdated exited with %s", exitErr)
		logger.Debugf("stdout:\n%s", stdout.String())
		if stderr.Len() > 0 {
			logger.Warnf("stderr:\n%s", stderr.String())
		}
	}

	output, readErr := os.ReadFile(outputFile)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read dotnet outdated output: %w", readErr)
	}
	logger.Tracef("read output file content:\n%s", output)

	return &Result{Output: output, Requirement: requirement}, nil
}

// buildArgs assembles the dotnet outdated argument list.
func buildArgs(opts Options, outputFile string) []string {
	args := []string{
		"outdated",
		"--fail-on-updates",
		"--output", outputFile,
		"--output-format", "json",
	}

	if opts.IncludeAutoReferences {
		args = append(args, "--include-auto-references")
	}

	preRelease := opts.PreRelease
	if preRelease == "" {
		preRelease = PreReleaseAuto
	}
	args = append(args, "--pre-release", string(preRelease))

	for _, include := range opts.Include {
		args = append(args, "--include", include)
	}
	for _, exclude := range opts.Exclude {
		args = append(args, "--exclude", exclude)
	}

	if opts.Transitive {
		depth := opts.TransitiveDepth
		if depth <= 0 {
			depth = 1
		}
		args = append(args, "--transitive", "--transitive-depth", strconv.Itoa(depth))
	}

	versionLock := opts.VersionLock
	if versionLock == "" {
		versionLock = VersionLockNone
	}
	args = append(args, "--version-lock", string(versionLock))

	if opts.InputDir != "" {
		args = append(args, opts.InputDir)
	}

	return args
}
