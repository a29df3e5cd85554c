// Package version exposes the numdelta build version.
package version

import "regexp"

// Version is set at build time via -ldflags. Development builds report "dev".
var Version = "dev"

// SemverRegex validates semantic version strings.
var SemverRegex = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(-([a-zA-Z0-9]+(\.[a-zA-Z0-9]+)*))?(\+([a-zA-Z0-9]+(\.[a-zA-Z0-9]+)*))?$`)

// IsRelease reports whether the current build carries a semver release
// version rather than a development placeholder.
func IsRelease() bool {
	return SemverRegex.MatchString(Version)
}

// String returns the full version line printed by the CLI.
func String() string {
	return "numdelta " + Version
}
