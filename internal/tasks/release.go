// Package tasks classifies the build task names requested for an invocation.
package tasks

import (
	"strings"

	"golang.org/x/text/cases"
)

// ReleaseMarker is the substring that marks a task as producing a release artifact.
const ReleaseMarker = "release"

// IsReleaseRequested reports whether any task name contains ReleaseMarker,
// compared case-insensitively. assembleRelease, bundleRelease and
// :app:packageRELEASE all match; assembleDebug does not.
func IsReleaseRequested(names []string) bool {
	return len(ReleaseTasks(names)) > 0
}

// ReleaseTasks returns the subset of names that match ReleaseMarker, in input order.
func ReleaseTasks(names []string) []string {
	// Casers are stateful; one per call.
	fold := cases.Fold()
	marker := fold.String(ReleaseMarker)

	var matched []string
	for _, name := range names {
		if strings.Contains(fold.String(name), marker) {
			matched = append(matched, name)
		}
	}
	return matched
}

// Normalize splits comma-separated entries and drops blanks so that
// `check assembleRelease,bundleRelease` and `check assembleRelease bundleRelease`
// are equivalent.
func Normalize(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
