package manifest

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersion strips a leading "v" and parses the version string.
func ParseVersion(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", version, err)
	}
	return v, nil
}

// ValidateRange reports whether spec is a dependency range npm and semver
// agree on, such as "^1.2.0" or ">=3.22 <4".
func ValidateRange(spec string) error {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return fmt.Errorf("dependency range is empty")
	}
	if _, err := semver.NewConstraint(spec); err != nil {
		return fmt.Errorf("invalid dependency range %q: %w", spec, err)
	}
	return nil
}

// ValidateDependencies checks every range in deps and reports the first
// offending package.
func ValidateDependencies(deps map[string]string) error {
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		if err := ValidateRange(deps[name]); err != nil {
			return fmt.Errorf("dependency %s: %w", name, err)
		}
	}
	return nil
}
