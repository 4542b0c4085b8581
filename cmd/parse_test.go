package cmd //nolint:testpackage // exercises the package-level command wiring

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taladar/dotnet-parser/infrastructure/reporter"
)

// execute runs the root command with the given arguments and returns the
// captured output. Tests here are sequential: cobra flag state is shared
// package-level state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeReport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outdated.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseCommand(t *testing.T) {
	t.Run("should parse a clean report and signal a clean exit", func(t *testing.T) {
		// given
		path := writeReport(t, `{"Projects": [{"Name": "App", "FilePath": "app.csproj",
			"TargetFrameworks": [{"Name": "net6.0", "Dependencies": [
				{"Name": "Dapper", "ResolvedVersion": "2.1.35", "LatestVersion": "2.1.35", "UpgradeSeverity": "None"}
			]}]}]}`)

		// when
		output, err := execute(t, "parse", path)

		// then
		require.NoError(t, err)
		assert.Contains(t, output, "Dapper")
		assert.Equal(t, reporter.ExitClean, exitStatus.ExitCode())
	})

	t.Run("should signal outdated-found for a report with upgrades", func(t *testing.T) {
		// given
		path := writeReport(t, `{"Projects": [{"Name": "App", "FilePath": "app.csproj",
			"TargetFrameworks": [{"Name": "net6.0", "Dependencies": [
				{"Name": "Serilog", "ResolvedVersion": "2.10.0", "LatestVersion": "2.12.0", "UpgradeSeverity": "Minor"}
			]}]}]}`)

		// when
		output, err := execute(t, "parse", path)

		// then
		require.NoError(t, err)
		assert.Contains(t, output, "Serilog")
		assert.Equal(t, reporter.ExitOutdatedFound, exitStatus.ExitCode())
	})

	t.Run("should surface a path-qualified error for a malformed report", func(t *testing.T) {
		// given
		path := writeReport(t, `{"Projects": [{"Name": "App", "FilePath": "app.csproj"}]}`)

		// when
		_, err := execute(t, "parse", path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "$.Projects[0].TargetFrameworks")
	})

	t.Run("should fail for a missing input file", func(t *testing.T) {
		// when
		_, err := execute(t, "parse", filepath.Join(t.TempDir(), "missing.json"))

		// then
		require.Error(t, err)
	})

	t.Run("should reject an invalid min-severity flag", func(t *testing.T) {
		// given
		path := writeReport(t, `{"Projects": []}`)

		// when
		_, err := execute(t, "parse", "--min-severity", "Critical", path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Critical")
	})
}
