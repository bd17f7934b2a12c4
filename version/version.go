// Package version parses LWJGL release strings and checks them against
// module minimum versions.
//
// LWJGL versions follow MAJOR.MINOR[.PATCH][-SNAPSHOT]. Anything else is
// rejected by [Parse] and never satisfies a minimum in [MeetsMinimum].
//
// Precedence is standard semantic versioning: numeric fields compare in
// order and a snapshot sorts before the release it leads up to. Segments
// are read as numbers, so "3.03.0" equals "3.3.0". A segment too large for
// uint64 makes the version invalid.
//
// A missing patch counts as 0 ("3.3" equals "3.3.0"). The Gradle plugin
// this grammar comes from rejects such versions instead; here they are
// accepted.
package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Masterminds/semver/v3"
)

// snapshotSuffix marks a pre-release build.
const snapshotSuffix = "-SNAPSHOT"

// versionRegex is the only accepted grammar. semver alone is too lenient
// (it takes "v3", "3" or arbitrary pre-release tags), so input is checked
// here before semver sees it.
var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?(-SNAPSHOT)?$`)

// Version is a parsed LWJGL version.
type Version struct {
	raw string
	v   *semver.Version
}

// Parse validates s and returns the parsed version.
func Parse(s string) (Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("invalid version %q: want MAJOR.MINOR[.PATCH][-SNAPSHOT]", s)
	}

	var segments [3]uint64
	for i, digits := range m[1:4] {
		if digits == "" {
			continue
		}
		n, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
		}
		segments[i] = n
	}

	var pre string
	if m[4] != "" {
		pre = m[4][1:]
	}
	return Version{raw: s, v: semver.New(segments[0], segments[1], segments[2], pre, "")}, nil
}

// MustParse is like Parse but panics on error. Use only for constants and tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as given to Parse.
func (v Version) String() string {
	return v.raw
}

// IsSnapshot reports whether v is a -SNAPSHOT build.
func (v Version) IsSnapshot() bool {
	return v.v != nil && "-"+v.v.Prerelease() == snapshotSuffix
}

// Compare returns -1, 0 or 1 as v sorts before, equal to, or after other.
// The zero Version sorts before everything else.
func (v Version) Compare(other Version) int {
	switch {
	case v.v == nil && other.v == nil:
		return 0
	case v.v == nil:
		return -1
	case other.v == nil:
		return 1
	}
	return v.v.Compare(other.v)
}

// AtLeast reports whether v >= minimum.
func (v Version) AtLeast(minimum Version) bool {
	return v.Compare(minimum) >= 0
}

// MeetsMinimum reports whether candidate is at least minVersion.
//
// Either string failing to parse yields false: a version that cannot be
// read is treated the same as one that is too old.
func MeetsMinimum(minVersion, candidate string) bool {
	minimum, err := Parse(minVersion)
	if err != nil {
		return false
	}
	c, err := Parse(candidate)
	if err != nil {
		return false
	}
	return c.AtLeast(minimum)
}
