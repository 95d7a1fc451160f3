package version

import (
	"strings"

	"github.com/blang/semver"
)

// Normalize strips exactly one leading "v" from a release tag.
func Normalize(tag string) string {
	return strings.TrimPrefix(tag, "v")
}

// IsSemver reports whether a normalized version parses as a semantic version.
// Releases are published regardless; callers only use this to warn.
func IsSemver(v string) bool {
	_, err := semver.Make(v)
	return err == nil
}
