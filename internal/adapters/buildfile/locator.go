// Package buildfile locates the build-definition file owning a source path.
package buildfile

import (
	"os"
	"path/filepath"

	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Locator = (*Locator)(nil)

// Locator implements ports.Locator with a single-pass upward search. It
// keeps no state between calls; caching is the target resolver's job.
type Locator struct {
	cfg domain.Config
}

// NewLocator creates a new Locator.
func NewLocator(cfg domain.Config) *Locator {
	return &Locator{cfg: cfg}
}

// Locate walks from the directory containing startPath toward the
// filesystem root, returning the first directory holding the marker file.
// The search stops without a match at the root or at a directory containing
// a repository marker that itself has no build file.
func (l *Locator) Locate(startPath string) (domain.BuildFileLocation, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return domain.BuildFileLocation{}, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", startPath)
	}

	dir := abs
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	for {
		marker := filepath.Join(dir, l.cfg.BuildFileName)
		if info, err := os.Stat(marker); err == nil && !info.IsDir() {
			return domain.BuildFileLocation{
				Dir:     domain.NormalizeDir(dir),
				ModTime: info.ModTime(),
			}, nil
		}

		if l.atBoundary(dir) {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return domain.BuildFileLocation{}, zerr.With(domain.ErrBuildFileNotFound, "path", startPath)
}

// atBoundary reports whether dir is a repository root.
func (l *Locator) atBoundary(dir string) bool {
	for _, marker := range l.cfg.RepoMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
