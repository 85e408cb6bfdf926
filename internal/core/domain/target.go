package domain

import (
	"strings"
	"time"
)

// Target is an opaque identifier in the external tool's addressing scheme
// (e.g. "path/to:name" or "path/to::"). Its internal structure is never
// parsed here.
type Target string

// IsWildcard reports whether the target addresses every target under a
// build-definition file.
func (t Target) IsWildcard() bool {
	return strings.HasSuffix(string(t), "::")
}

// BuildFileLocation identifies a directory known to contain a
// build-definition marker file. Immutable once returned by a locator.
type BuildFileLocation struct {
	// Dir is the absolute directory path, trailing-separator terminated.
	Dir string

	// ModTime is the marker file's modification time at locate time.
	ModTime time.Time
}

// WildcardTarget returns the synthetic "all targets under this build file"
// target for the location, addressed relative to the project root.
func (l BuildFileLocation) WildcardTarget(cfg Config) Target {
	return Target(cfg.RelativeToRoot(l.Dir) + "::")
}
