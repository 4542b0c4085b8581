package domain

// Report is the top-level structure of a dotnet-outdated JSON report.
// Projects are kept in input order, which reflects build order.
type Report struct {
	Projects []Project `json:"Projects"`
}

// Project holds the outdated-dependency data for a single .csproj file
// (binaries, tests, libraries, ...).
type Project struct {
	Name             string      `json:"Name"`             // Project name
	FilePath         string      `json:"FilePath"`         // Absolute path to the .csproj file
	TargetFrameworks []Framework `json:"TargetFrameworks"` // One entry per targeted framework
}

// Framework groups outdated dependencies of a project for one target
// framework moniker (e.g. net6.0).
type Framework struct {
	Name         string          `json:"Name"`
	Dependencies []PackageUpdate `json:"Dependencies"`
}

// PackageUpdate describes one outdated package within a target framework.
type PackageUpdate struct {
	Name            string   `json:"Name"`                      // Package name, unique within its framework
	CurrentVersion  string   `json:"CurrentVersion"`            // Version recorded in the project file
	ResolvedVersion string   `json:"ResolvedVersion"`           // Version actually resolved by restore
	LatestVersion   string   `json:"LatestVersion"`             // Latest version within the version-lock limit
	RequestedRange  string   `json:"RequestedRange,omitempty"`  // Version range requested by the project, if any
	Deprecated      bool     `json:"Deprecated,omitempty"`      // Whether the package is deprecated upstream
	UpgradeSeverity Severity `json:"UpgradeSeverity,omitempty"` // How large the available upgrade is
}

// HasUpgradeAvailable reports whether a newer version than the resolved
// one is known for this package.
func (p PackageUpdate) HasUpgradeAvailable() bool {
	return p.ResolvedVersion != p.LatestVersion
}

// IndicatedUpdateRequirement summarizes whether a report contains any
// actionable upgrades. It is the machine-readable contract for CI callers.
type IndicatedUpdateRequirement int

const (
	// UpToDate means no dependency has a newer version available.
	UpToDate IndicatedUpdateRequirement = iota
	// UpdateRequired means at least one dependency can be upgraded.
	UpdateRequired
)

func (r IndicatedUpdateRequirement) String() string {
	if r == UpdateRequired {
		return "update-required"
	}
	return "up-to-date"
}

// UpdateRequirement walks the whole report and returns UpdateRequired as
// soon as any package has an upgrade available.
func (r *Report) UpdateRequirement() IndicatedUpdateRequirement {
	for _, project := range r.Projects {
		for _, framework := range project.TargetFrameworks {
			for _, pkg := range framework.Dependencies {
				if pkg.HasUpgradeAvailable() {
					return UpdateRequired
				}
			}
		}
	}
	return UpToDate
}

// PackageCount returns the total number of package entries across all
// projects and frameworks.
func (r *Report) PackageCount() int {
	count := 0
	for _, project := range r.Projects {
		for _, framework := range project.TargetFrameworks {
			count += len(framework.Dependencies)
		}
	}
	return count
}
