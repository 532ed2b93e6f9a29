// Package version holds the library's numeric version encoding and the
// build-time identification stamped in by the linker.
package version

import "fmt"

// Build-time variables set by ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns version, commit and build date.
func Info() (string, string, string) {
	return Version, GitCommit, BuildDate
}

// Current library version components.
const (
	Major = 0
	Minor = 1
	Patch = 0
	Tweak = 0
)

// API is the numeric version of the current library.
var API = MakeVersion4(Major, Minor, Patch, Tweak)

// MakeVersion4 assembles a numeric version from four components.
// The encoding is major*1000000 + minor*10000 + patch*100 + tweak, so
// numeric versions compare with plain integer ordering.
func MakeVersion4(major, minor, patch, tweak int) uint32 {
	return uint32(major*1000000 + minor*10000 + patch*100 + tweak)
}

// MakeVersion3 assembles a numeric version with tweak = 0.
func MakeVersion3(major, minor, patch int) uint32 {
	return MakeVersion4(major, minor, patch, 0)
}

// MakeVersion2 assembles a numeric version with patch and tweak = 0.
func MakeVersion2(major, minor int) uint32 {
	return MakeVersion4(major, minor, 0, 0)
}

// MakeVersion1 assembles a numeric version with only a major component.
func MakeVersion1(major int) uint32 {
	return MakeVersion4(major, 0, 0, 0)
}

// MajorOf extracts the major component of a numeric version.
func MajorOf(v uint32) int { return int(v / 1000000) }

// MinorOf extracts the minor component of a numeric version.
func MinorOf(v uint32) int { return int(v % 1000000 / 10000) }

// PatchOf extracts the patch component of a numeric version.
func PatchOf(v uint32) int { return int(v % 10000 / 100) }

// TweakOf extracts the tweak component of a numeric version.
func TweakOf(v uint32) int { return int(v % 100) }

// String renders a numeric version as "major.minor.patch.tweak".
func String(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", MajorOf(v), MinorOf(v), PatchOf(v), TweakOf(v))
}
