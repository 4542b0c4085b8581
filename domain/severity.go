package domain

import (
	"github.com/Masterminds/semver/v3"
)

// Severity classifies how large an available upgrade is.
type Severity string

const (
	// SeverityMajor is a major version upgrade.
	SeverityMajor Severity = "Major"
	// SeverityMinor is a minor version upgrade.
	SeverityMinor Severity = "Minor"
	// SeverityPatch is a patch level upgrade.
	SeverityPatch Severity = "Patch"
	// SeverityNone means the resolved version is already at or ahead of the
	// latest known version; no upgrade is suggested.
	SeverityNone Severity = "None"
	// SeverityUnknown means one of the versions could not be compared.
	SeverityUnknown Severity = "Unknown"
)

// KnownSeverities lists every valid severity value, used to validate
// UpgradeSeverity fields during decoding.
var KnownSeverities = []Severity{
	SeverityMajor,
	SeverityMinor,
	SeverityPatch,
	SeverityNone,
	SeverityUnknown,
}

// IsKnown reports whether s is one of the recognized severity values.
func (s Severity) IsKnown() bool {
	for _, known := range KnownSeverities {
		if s == known {
			return true
		}
	}
	return false
}

// AtLeast reports whether s is as severe as min or more. The ordering is
// Major > Minor > Patch > None; Unknown never satisfies any minimum except
// Unknown itself.
func (s Severity) AtLeast(minimum Severity) bool {
	if s == SeverityUnknown {
		return minimum == SeverityUnknown
	}
	return s.rank() >= minimum.rank()
}

func (s Severity) rank() int {
	switch s {
	case SeverityMajor:
		return 4
	case SeverityMinor:
		return 3
	case SeverityPatch:
		return 2
	case SeverityNone:
		return 1
	default:
		return 0
	}
}

// Classify compares the current and latest version strings and returns the
// severity of the available upgrade. Only plain numeric major.minor.patch
// versions are compared; anything else (pre-releases, build metadata,
// non-numeric strings) yields SeverityUnknown rather than a guess.
func Classify(current, latest string) Severity {
	currentVer, err := semver.StrictNewVersion(current)
	if err != nil {
		return SeverityUnknown
	}
	latestVer, err := semver.StrictNewVersion(latest)
	if err != nil {
		return SeverityUnknown
	}

	if currentVer.Prerelease() != "" || currentVer.Metadata() != "" ||
		latestVer.Prerelease() != "" || latestVer.Metadata() != "" {
		return SeverityUnknown
	}

	if !currentVer.LessThan(latestVer) {
		return SeverityNone
	}

	switch {
	case latestVer.Major() != currentVer.Major():
		return SeverityMajor
	case latestVer.Minor() != currentVer.Minor():
		return SeverityMinor
	default:
		return SeverityPatch
	}
}
