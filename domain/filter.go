package domain

// Predicate decides whether a package entry is kept by a filter pass.
type Predicate func(PackageUpdate) bool

// HasUpgrade keeps entries with a newer version available.
func HasUpgrade(p PackageUpdate) bool {
	return p.HasUpgradeAvailable()
}

// IsDeprecated keeps entries whose package is deprecated upstream.
func IsDeprecated(p PackageUpdate) bool {
	return p.Deprecated
}

// NotDeprecated keeps entries whose package is not deprecated.
func NotDeprecated(p PackageUpdate) bool {
	return !p.Deprecated
}

// MinSeverity keeps entries whose upgrade severity is at least the given
// level.
func MinSeverity(minimum Severity) Predicate {
	return func(p PackageUpdate) bool {
		return p.UpgradeSeverity.AtLeast(minimum)
	}
}

// And combines predicates; an entry is kept only if all of them match.
func And(predicates ...Predicate) Predicate {
	return func(p PackageUpdate) bool {
		for _, pred := range predicates {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// FilterOptions adjusts how a filter pass treats containers left empty
// after their packages were filtered out.
type FilterOptions struct {
	// KeepEmpty retains projects and frameworks with zero remaining
	// packages instead of pruning them from the result.
	KeepEmpty bool
}

// Filter returns a pruned copy of the report containing only the package
// entries matching the predicate. The input report is never modified. By
// default frameworks and projects left without any matching packages are
// dropped from the result; set FilterOptions.KeepEmpty to retain them.
func Filter(report Report, keep Predicate, opts FilterOptions) Report {
	result := Report{Projects: make([]Project, 0, len(report.Projects))}

	for _, project := range report.Projects {
		filtered := Project{
			Name:             project.Name,
			FilePath:         project.FilePath,
			TargetFrameworks: make([]Framework, 0, len(project.TargetFrameworks)),
		}

		for _, framework := range project.TargetFrameworks {
			kept := make([]PackageUpdate, 0, len(framework.Dependencies))
			for _, pkg := range framework.Dependencies {
				if keep(pkg) {
					kept = append(kept, pkg)
				}
			}

			if len(kept) == 0 && !opts.KeepEmpty {
				continue
			}
			filtered.TargetFrameworks = append(filtered.TargetFrameworks, Framework{
				Name:         framework.Name,
				Dependencies: kept,
			})
		}

		if len(filtered.TargetFrameworks) == 0 && !opts.KeepEmpty {
			continue
		}
		result.Projects = append(result.Projects, filtered)
	}

	return result
}
