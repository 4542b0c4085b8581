// Package config loads the optional YAML configuration supplying default
// filter and invocation settings. CLI flags override anything set here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/taladar/dotnet-parser/domain"
	"github.com/taladar/dotnet-parser/infrastructure/reporter"
	"github.com/taladar/dotnet-parser/infrastructure/runner"
)

// Config is the top-level configuration.
type Config struct {
	Format   string         `yaml:"format"`   // "text" or "json"
	Filter   FilterConfig   `yaml:"filter"`   // Default filter settings
	Outdated OutdatedConfig `yaml:"outdated"` // Defaults for invoking dotnet-outdated
}

// FilterConfig holds default filter settings.
type FilterConfig struct {
	OnlyUpgrades      bool   `yaml:"only_upgrades"`
	ExcludeDeprecated bool   `yaml:"exclude_deprecated"`
	MinSeverity       string `yaml:"min_severity"` // Empty means no minimum
	KeepEmpty         bool   `yaml:"keep_empty"`
}

// OutdatedConfig holds defaults for the dotnet-outdated invocation.
type OutdatedConfig struct {
	IncludeAutoReferences bool     `yaml:"include_auto_references"`
	PreRelease            string   `yaml:"pre_release"`
	Include               []string `yaml:"include"`
	Exclude               []string `yaml:"exclude"`
	Transitive            bool     `yaml:"transitive"`
	TransitiveDepth       int      `yaml:"transitive_depth"`
	VersionLock           string   `yaml:"version_lock"`
	InputDir              string   `yaml:"input_dir"` // Supports ${ENV_VAR} references
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Format: string(reporter.FormatText),
		Outdated: OutdatedConfig{
			PreRelease:      string(runner.PreReleaseAuto),
			TransitiveDepth: 1,
			VersionLock:     string(runner.VersionLockNone),
		},
	}
}

// Load reads and parses a configuration file, expanding environment
// variable references in path values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	cfg := Default()
	if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Outdated.InputDir = expandEnv(cfg.Outdated.InputDir)

	if validateErr := validate(cfg); validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".dotnet-outdated-report.yaml",
		".dotnet-outdated-report.yml",
		"dotnet-outdated-report.yaml",
		"dotnet-outdated-report.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func validate(cfg *Config) error {
	if _, err := reporter.ParseFormat(cfg.Format); err != nil {
		return err
	}
	if _, err := runner.ParsePreRelease(cfg.Outdated.PreRelease); err != nil {
		return err
	}
	if _, err := runner.ParseVersionLock(cfg.Outdated.VersionLock); err != nil {
		return err
	}
	if cfg.Filter.MinSeverity != "" && !domain.Severity(cfg.Filter.MinSeverity).IsKnown() {
		return fmt.Errorf("unknown min_severity %q (expected Major, Minor, Patch, None, or Unknown)",
			cfg.Filter.MinSeverity)
	}
	if cfg.Outdated.TransitiveDepth < 1 {
		return fmt.Errorf("transitive_depth must be at least 1, got %d", cfg.Outdated.TransitiveDepth)
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references in the given string.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
