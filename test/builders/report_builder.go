// Package builders provides fluent builders for constructing report
// fixtures in tests.
package builders

import (
	"github.com/taladar/dotnet-parser/domain"
)

// PackageUpdateBuilder helps create test package entries with a fluent interface.
type PackageUpdateBuilder struct {
	name            string
	currentVersion  string
	resolvedVersion string
	latestVersion   string
	requestedRange  string
	deprecated      bool
	severity        domain.Severity
}

// NewPackageUpdateBuilder creates a new builder with sensible defaults.
func NewPackageUpdateBuilder() *PackageUpdateBuilder {
	return &PackageUpdateBuilder{
		name:            "Newtonsoft.Json",
		currentVersion:  "12.0.3",
		resolvedVersion: "12.0.3",
		latestVersion:   "13.0.1",
		severity:        domain.SeverityMajor,
	}
}

// WithName sets the package name.
func (b *PackageUpdateBuilder) WithName(name string) *PackageUpdateBuilder {
	b.name = name
	return b
}

// WithVersions sets current, resolved, and latest version in one call.
func (b *PackageUpdateBuilder) WithVersions(current, resolved, latest string) *PackageUpdateBuilder {
	b.currentVersion = current
	b.resolvedVersion = resolved
	b.latestVersion = latest
	return b
}

// UpToDate makes resolved and latest version identical.
func (b *PackageUpdateBuilder) UpToDate() *PackageUpdateBuilder {
	b.latestVersion = b.resolvedVersion
	b.severity = domain.SeverityNone
	return b
}

// WithRequestedRange sets the requested version range.
func (b *PackageUpdateBuilder) WithRequestedRange(r string) *PackageUpdateBuilder {
	b.requestedRange = r
	return b
}

// Deprecated marks the package as deprecated.
func (b *PackageUpdateBuilder) Deprecated() *PackageUpdateBuilder {
	b.deprecated = true
	return b
}

// WithSeverity sets the upgrade severity.
func (b *PackageUpdateBuilder) WithSeverity(s domain.Severity) *PackageUpdateBuilder {
	b.severity = s
	return b
}

// Build creates the package entry.
func (b *PackageUpdateBuilder) Build() domain.PackageUpdate {
	return domain.PackageUpdate{
		Name:            b.name,
		CurrentVersion:  b.currentVersion,
		ResolvedVersion: b.resolvedVersion,
		LatestVersion:   b.latestVersion,
		RequestedRange:  b.requestedRange,
		Deprecated:      b.deprecated,
		UpgradeSeverity: b.severity,
	}
}

// ReportBuilder helps create test reports with a fluent interface.
type ReportBuilder struct {
	projects []domain.Project
}

// NewReportBuilder creates an empty report builder.
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

// WithProject adds a project holding a single framework with the given
// packages, which covers the common single-target case.
func (b *ReportBuilder) WithProject(name, framework string, packages ...domain.PackageUpdate) *ReportBuilder {
	b.projects = append(b.projects, domain.Project{
		Name:     name,
		FilePath: "/src/" + name + "/" + name + ".csproj",
		TargetFrameworks: []domain.Framework{
			{Name: framework, Dependencies: packages},
		},
	})
	return b
}

// WithEmptyProject adds a project with no target frameworks.
func (b *ReportBuilder) WithEmptyProject(name string) *ReportBuilder {
	b.projects = append(b.projects, domain.Project{
		Name:             name,
		FilePath:         "/src/" + name + "/" + name + ".csproj",
		TargetFrameworks: []domain.Framework{},
	})
	return b
}

// WithFullProject adds a fully specified project.
func (b *ReportBuilder) WithFullProject(project domain.Project) *ReportBuilder {
	b.projects = append(b.projects, project)
	return b
}

// Build creates the report.
func (b *ReportBuilder) Build() domain.Report {
	return domain.Report{Projects: b.projects}
}
