// Package application wires the decode → filter → render pipeline together
// for the CLI commands.
package application

import (
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/taladar/dotnet-parser/domain"
	"github.com/taladar/dotnet-parser/infrastructure/decoder"
	"github.com/taladar/dotnet-parser/infrastructure/reporter"
)

// CheckOptions selects the filter predicates and output mode for one run.
type CheckOptions struct {
	OnlyUpgrades      bool            // Keep only packages with an upgrade available
	ExcludeDeprecated bool            // Drop deprecated packages
	MinSeverity       domain.Severity // Minimum upgrade severity; empty means no minimum
	KeepEmpty         bool            // Retain projects/frameworks left empty by filtering
	Format            reporter.Format // Output representation
}

// CheckService runs the full pipeline over one report document.
type CheckService struct {
	out io.Writer
}

// NewCheckService creates a service writing rendered reports to out.
func NewCheckService(out io.Writer) *CheckService {
	return &CheckService{out: out}
}

// Check decodes the raw report, applies the configured filters, renders the
// result, and returns the exit status for the rendered report. The decode
// error, if any, is returned unrendered; nothing is written in that case.
func (s *CheckService) Check(input []byte, opts CheckOptions) (reporter.Status, error) {
	report, err := decoder.Decode(input)
	if err != nil {
		return reporter.StatusClean, fmt.Errorf("failed to decode report: %w", err)
	}
	logger.Debugf("decoded %d project(s), %d package entries",
		len(report.Projects), report.PackageCount())

	filtered := s.applyFilters(report, opts)

	format := opts.Format
	if format == "" {
		format = reporter.FormatText
	}
	if renderErr := reporter.New(format).Render(s.out, filtered); renderErr != nil {
		return reporter.StatusClean, renderErr
	}

	status := reporter.StatusOf(filtered)
	logger.Debugf("report status: %s", status)
	return status, nil
}

// applyFilters builds the predicate from the options. Without any filter
// option the decoded report passes through untouched, which keeps the JSON
// output a lossless re-serialization of the input.
func (s *CheckService) applyFilters(report *domain.Report, opts CheckOptions) *domain.Report {
	var predicates []domain.Predicate
	if opts.OnlyUpgrades {
		predicates = append(predicates, domain.HasUpgrade)
	}
	if opts.ExcludeDeprecated {
		predicates = append(predicates, domain.NotDeprecated)
	}
	if opts.MinSeverity != "" {
		predicates = append(predicates, domain.MinSeverity(opts.MinSeverity))
	}

	if len(predicates) == 0 {
		return report
	}

	filtered := domain.Filter(*report, domain.And(predicates...), domain.FilterOptions{
		KeepEmpty: opts.KeepEmpty,
	})
	return &filtered
}
