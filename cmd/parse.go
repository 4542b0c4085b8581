package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/taladar/dotnet-parser/application"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a dotnet-outdated JSON report from a file or stdin",
	Long: `Decode a JSON report previously produced by
"dotnet outdated --output-format json", apply the configured filters,
and render the result.

Reads from standard input when no file is given or the file is "-".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts, err := buildCheckOptions(cmd, cfg)
	if err != nil {
		return err
	}

	input, err := readInput(args)
	if err != nil {
		return err
	}

	service := application.NewCheckService(cmd.OutOrStdout())
	status, err := service.Check(input, opts)
	if err != nil {
		return err
	}

	exitStatus = status
	return nil
}

// readInput returns the report bytes from the named file or stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read report file: %w", err)
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read report from stdin: %w", err)
	}
	return data, nil
}
