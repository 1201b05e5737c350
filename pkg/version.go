package versync

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// versionPattern is the only accepted textual form of a version.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Version is a major.minor.patch triple. Pre-release and build metadata are
// not supported.
type Version struct {
	Major int
	Minor int
	Patch int
}

// BumpKind names the component a bump increments.
type BumpKind string

// Supported bump kinds.
const (
	BumpPatch BumpKind = "patch"
	BumpMinor BumpKind = "minor"
	BumpMajor BumpKind = "major"
)

// ParseBumpKind validates a bump directive.
func ParseBumpKind(s string) (BumpKind, error) {
	switch k := BumpKind(s); k {
	case BumpPatch, BumpMinor, BumpMajor:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBump, s)
}

// ParseVersion parses a strict X.Y.Z version string.
func ParseVersion(s string) (Version, error) {
	if !versionPattern.MatchString(s) {
		return Version{}, fmt.Errorf("%w: got %q", ErrInvalidVersion, s)
	}
	parts := strings.Split(s, ".")
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("%w: got %q", ErrInvalidVersion, s)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical "major.minor.patch" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bump returns the version produced by incrementing the component named by
// kind and zeroing every lower-order component.
func (v Version) Bump(kind BumpKind) (Version, error) {
	switch kind {
	case BumpMajor:
		if v.Major == math.MaxInt {
			return v, fmt.Errorf("%w: major in %s", ErrVersionOverflow, v)
		}
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		if v.Minor == math.MaxInt {
			return v, fmt.Errorf("%w: minor in %s", ErrVersionOverflow, v)
		}
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		if v.Patch == math.MaxInt {
			return v, fmt.Errorf("%w: patch in %s", ErrVersionOverflow, v)
		}
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return v, fmt.Errorf("%w: %q", ErrInvalidBump, kind)
	}
}

// Compare returns -1, 0, or +1 depending on whether v is lower than, equal
// to, or higher than other.
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+v.String(), "v"+other.String())
}
