// Package version provides centralized version information for the s9s
// command line client. The version follows semantic versioning conventions
// and is overridable at link time for release builds.

package version

// S9sVersion holds the current s9s client version.
// Format: major.minor.patch[-prerelease][+build]
var S9sVersion = "1.9.0-dev"

// BuildDate is stamped by release builds with -ldflags "-X ...BuildDate=...".
var BuildDate = "unknown"

// GitCommit is stamped by release builds with -ldflags "-X ...GitCommit=...".
var GitCommit = "unknown"
