package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taladar/dotnet-parser/domain"
	"github.com/taladar/dotnet-parser/test/builders"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("should keep only packages with an upgrade available", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("App", "net6.0",
				builders.NewPackageUpdateBuilder().WithName("Serilog").Build(),
				builders.NewPackageUpdateBuilder().WithName("Dapper").UpToDate().Build(),
			).
			Build()

		// when
		result := domain.Filter(report, domain.HasUpgrade, domain.FilterOptions{})

		// then
		require.Len(t, result.Projects, 1)
		require.Len(t, result.Projects[0].TargetFrameworks, 1)
		deps := result.Projects[0].TargetFrameworks[0].Dependencies
		require.Len(t, deps, 1)
		assert.Equal(t, "Serilog", deps[0].Name)
	})

	t.Run("should drop projects left without any matching packages", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("Current", "net6.0",
				builders.NewPackageUpdateBuilder().UpToDate().Build(),
			).
			WithProject("Stale", "net6.0",
				builders.NewPackageUpdateBuilder().Build(),
			).
			Build()

		// when
		result := domain.Filter(report, domain.HasUpgrade, domain.FilterOptions{})

		// then
		require.Len(t, result.Projects, 1)
		assert.Equal(t, "Stale", result.Projects[0].Name)
	})

	t.Run("should drop a project whose frameworks array is empty", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithEmptyProject("Empty").
			Build()

		// when
		result := domain.Filter(report, domain.HasUpgrade, domain.FilterOptions{})

		// then
		assert.Empty(t, result.Projects)
	})

	t.Run("should retain empty containers in keep-empty mode", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("App", "net6.0",
				builders.NewPackageUpdateBuilder().UpToDate().Build(),
			).
			Build()

		// when
		result := domain.Filter(report, domain.HasUpgrade, domain.FilterOptions{KeepEmpty: true})

		// then
		require.Len(t, result.Projects, 1)
		require.Len(t, result.Projects[0].TargetFrameworks, 1)
		assert.Empty(t, result.Projects[0].TargetFrameworks[0].Dependencies)
	})

	t.Run("should not modify the input report", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("App", "net6.0",
				builders.NewPackageUpdateBuilder().Build(),
				builders.NewPackageUpdateBuilder().WithName("Dapper").UpToDate().Build(),
			).
			Build()

		// when
		_ = domain.Filter(report, domain.HasUpgrade, domain.FilterOptions{})

		// then
		require.Len(t, report.Projects, 1)
		assert.Len(t, report.Projects[0].TargetFrameworks[0].Dependencies, 2)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("App", "net6.0",
				builders.NewPackageUpdateBuilder().Build(),
				builders.NewPackageUpdateBuilder().WithName("Dapper").UpToDate().Build(),
			).
			WithProject("Lib", "netstandard2.0",
				builders.NewPackageUpdateBuilder().WithName("Polly").Deprecated().Build(),
			).
			Build()
		predicate := domain.And(domain.HasUpgrade, domain.NotDeprecated)

		// when
		once := domain.Filter(report, predicate, domain.FilterOptions{})
		twice := domain.Filter(once, predicate, domain.FilterOptions{})

		// then
		assert.Equal(t, once, twice)
	})

	t.Run("should filter by minimum severity", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("App", "net6.0",
				builders.NewPackageUpdateBuilder().WithName("Big").
					WithVersions("1.0.0", "1.0.0", "2.0.0").
					WithSeverity(domain.SeverityMajor).Build(),
				builders.NewPackageUpdateBuilder().WithName("Small").
					WithVersions("1.0.0", "1.0.0", "1.0.1").
					WithSeverity(domain.SeverityPatch).Build(),
			).
			Build()

		// when
		result := domain.Filter(report, domain.MinSeverity(domain.SeverityMinor), domain.FilterOptions{})

		// then
		require.Len(t, result.Projects, 1)
		deps := result.Projects[0].TargetFrameworks[0].Dependencies
		require.Len(t, deps, 1)
		assert.Equal(t, "Big", deps[0].Name)
	})
}

func TestUpdateRequirement(t *testing.T) {
	t.Parallel()

	t.Run("should report up-to-date for a report without upgrades", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("App", "net6.0",
				builders.NewPackageUpdateBuilder().UpToDate().Build(),
			).
			Build()

		// when
		requirement := report.UpdateRequirement()

		// then
		assert.Equal(t, domain.UpToDate, requirement)
		assert.Equal(t, "up-to-date", requirement.String())
	})

	t.Run("should report update-required when any package has an upgrade", func(t *testing.T) {
		t.Parallel()

		// given
		report := builders.NewReportBuilder().
			WithProject("App", "net6.0",
				builders.NewPackageUpdateBuilder().UpToDate().Build(),
				builders.NewPackageUpdateBuilder().WithName("Serilog").Build(),
			).
			Build()

		// when
		requirement := report.UpdateRequirement()

		// then
		assert.Equal(t, domain.UpdateRequired, requirement)
		assert.Equal(t, "update-required", requirement.String())
	})

	t.Run("should report up-to-date for an empty report", func(t *testing.T) {
		t.Parallel()

		// given
		report := domain.Report{}

		// when / then
		assert.Equal(t, domain.UpToDate, report.UpdateRequirement())
		assert.Zero(t, report.PackageCount())
	})
}
