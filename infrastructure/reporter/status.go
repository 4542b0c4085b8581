// Package reporter renders a decoded report for humans and CI and maps the
// outcome to a process exit code.
package reporter

import "github.com/taladar/dotnet-parser/domain"

// Exit codes for consistent signaling to CI callers.
const (
	// ExitClean indicates no actionable outdated packages were found.
	ExitClean = 0

	// ExitOutdatedFound indicates at least one package has an upgrade available.
	ExitOutdatedFound = 1

	// ExitDecodeError indicates the input could not be read or decoded.
	ExitDecodeError = 2
)

// Status is the machine-readable outcome of a check.
type Status int

const (
	// StatusClean means no package in the report has an upgrade available.
	StatusClean Status = iota
	// StatusOutdatedFound means at least one package can be upgraded.
	StatusOutdatedFound
)

func (s Status) String() string {
	if s == StatusOutdatedFound {
		return "outdated-found"
	}
	return "clean"
}

// ExitCode maps the status to its process exit code.
func (s Status) ExitCode() int {
	if s == StatusOutdatedFound {
		return ExitOutdatedFound
	}
	return ExitClean
}

// StatusOf computes the exit status for a report: clean only when no package
// anywhere in the report has an upgrade available.
func StatusOf(report *domain.Report) Status {
	if report.UpdateRequirement() == domain.UpdateRequired {
		return StatusOutdatedFound
	}
	return StatusClean
}
