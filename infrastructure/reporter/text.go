package reporter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/taladar/dotnet-parser/domain"
)

const (
	tabMinWidth = 2
	tabPadding  = 2
)

// TextRenderer writes a human-readable table, one row per package entry,
// followed by a summary line.
type TextRenderer struct{}

// Render implements Renderer.
func (r *TextRenderer) Render(w io.Writer, report *domain.Report) error {
	if report.PackageCount() == 0 {
		_, err := fmt.Fprintln(w, "No outdated packages.")
		return err
	}

	tw := tabwriter.NewWriter(w, tabMinWidth, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "PROJECT\tFRAMEWORK\tPACKAGE\tRESOLVED\tLATEST\tSEVERITY")

	for _, project := range report.Projects {
		for _, framework := range project.TargetFrameworks {
			for _, pkg := range framework.Dependencies {
				name := pkg.Name
				if pkg.Deprecated {
					name += " (deprecated)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					project.Name,
					framework.Name,
					name,
					pkg.ResolvedVersion,
					pkg.LatestVersion,
					pkg.UpgradeSeverity,
				)
			}
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	_, err := fmt.Fprintf(w, "\n%d outdated package(s) across %d project(s).\n",
		report.PackageCount(), len(report.Projects))
	return err
}
