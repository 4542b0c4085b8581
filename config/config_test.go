package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taladar/dotnet-parser/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestLoad(t *testing.T) {
	t.Run("should apply defaults for an empty file", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
		assert.Equal(t, "Auto", cfg.Outdated.PreRelease)
		assert.Equal(t, "None", cfg.Outdated.VersionLock)
		assert.Equal(t, 1, cfg.Outdated.TransitiveDepth)
		assert.False(t, cfg.Filter.OnlyUpgrades)
	})

	t.Run("should parse a full configuration", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, `
format: json
filter:
  only_upgrades: true
  exclude_deprecated: true
  min_severity: Minor
outdated:
  include_auto_references: true
  pre_release: Never
  include:
    - Serilog
  exclude:
    - Newtonsoft.Json
  transitive: true
  transitive_depth: 2
  version_lock: Major
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.True(t, cfg.Filter.OnlyUpgrades)
		assert.True(t, cfg.Filter.ExcludeDeprecated)
		assert.Equal(t, "Minor", cfg.Filter.MinSeverity)
		assert.True(t, cfg.Outdated.IncludeAutoReferences)
		assert.Equal(t, "Never", cfg.Outdated.PreRelease)
		assert.Equal(t, []string{"Serilog"}, cfg.Outdated.Include)
		assert.Equal(t, []string{"Newtonsoft.Json"}, cfg.Outdated.Exclude)
		assert.True(t, cfg.Outdated.Transitive)
		assert.Equal(t, 2, cfg.Outdated.TransitiveDepth)
		assert.Equal(t, "Major", cfg.Outdated.VersionLock)
	})

	t.Run("should expand environment variables in input_dir", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_SOLUTION_DIR", "/src/solution")
		path := writeConfig(t, "outdated:\n  input_dir: ${TEST_SOLUTION_DIR}/api\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/src/solution/api", cfg.Outdated.InputDir)
	})

	t.Run("should ignore unknown keys", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "format: text\nfuture_option: true\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
	})

	t.Run("should reject an unknown format", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "format: xml\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("should reject an unknown min_severity", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "filter:\n  min_severity: Critical\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Critical")
	})

	t.Run("should reject an invalid transitive depth", func(t *testing.T) {
		t.Parallel()

		// given
		path := writeConfig(t, "outdated:\n  transitive_depth: 0\n")

		// when
		_, err := config.Load(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transitive_depth")
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})
}
