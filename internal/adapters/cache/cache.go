// Package cache persists per-build-file target lists under the system temp
// root, keyed by a hash of the build file's directory.
package cache

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pave/internal/adapters/command"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.TargetResolver = (*TargetCache)(nil)

// TargetCache implements ports.TargetResolver. Entries are flat files of
// newline-separated target identifiers; an entry is fresh while its mtime is
// at least the build file's mtime. Regeneration per key runs under an
// in-process single-flight guard so concurrent resolves against one build
// file trigger at most one listing.
type TargetCache struct {
	cfg     domain.Config
	locator ports.Locator
	builder *command.Builder
	runner  ports.Runner
	logger  ports.Logger

	root  string
	group singleflight.Group
}

// New creates a TargetCache rooted at <system temp>/<cfg.CacheDirName>.
func New(cfg domain.Config, locator ports.Locator, builder *command.Builder, runner ports.Runner, logger ports.Logger) *TargetCache {
	return &TargetCache{
		cfg:     cfg,
		locator: locator,
		builder: builder,
		runner:  runner,
		logger:  logger,
		root:    filepath.Join(os.TempDir(), cfg.CacheDirName),
	}
}

// NewWithRoot is New with an explicit cache root. Used by tests.
func NewWithRoot(cfg domain.Config, locator ports.Locator, builder *command.Builder, runner ports.Runner, logger ports.Logger, root string) *TargetCache {
	c := New(cfg, locator, builder, runner, logger)
	c.root = root
	return c
}

// Key returns the cache entry name for a build-file directory. It is a pure
// function of the normalized path.
func Key(dir string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(domain.NormalizeDir(dir)))
}

// Resolve returns the ordered target list for the build file owning
// sourceFile, wildcard target first. Idempotent for an unchanged build file;
// self-healing after an edit.
func (c *TargetCache) Resolve(ctx context.Context, sourceFile string) ([]domain.Target, error) {
	return c.resolve(ctx, sourceFile, false)
}

// Refresh regenerates the entry unconditionally.
func (c *TargetCache) Refresh(ctx context.Context, sourceFile string) ([]domain.Target, error) {
	return c.resolve(ctx, sourceFile, true)
}

func (c *TargetCache) resolve(ctx context.Context, sourceFile string, force bool) ([]domain.Target, error) {
	loc, err := c.locator.Locate(sourceFile)
	if err != nil {
		return nil, err
	}

	c.sweep()

	key := Key(loc.Dir)
	path := filepath.Join(c.root, key)

	if force || c.stale(path, loc) {
		// Collapse concurrent regenerations of the same key.
		if _, err, _ := c.group.Do(key, func() (any, error) {
			return nil, c.regenerate(ctx, loc, path)
		}); err != nil {
			return nil, err
		}
	}

	targets, err := c.read(path)
	if err != nil {
		return nil, err
	}

	return append([]domain.Target{loc.WildcardTarget(c.cfg)}, targets...), nil
}

// stale reports whether the entry at path must be regenerated: it is missing
// or older than the build file.
func (c *TargetCache) stale(path string, loc domain.BuildFileLocation) bool {
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.ModTime().Before(loc.ModTime)
}

// regenerate lists targets for the build-file directory and overwrites the
// entry. A nonzero listing exit leaves any existing entry untouched; the
// stale data is served and the failure logged, matching the recoverable
// error policy.
func (c *TargetCache) regenerate(ctx context.Context, loc domain.BuildFileLocation, path string) error {
	if err := os.MkdirAll(c.root, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	if c.cfg.ListTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.ListTimeout)
		defer cancel()
	}

	inv := c.builder.Build(domain.SubList, c.cfg.RelativeToRoot(loc.Dir)+":")

	var stdout, stderr bytes.Buffer
	status, err := c.runner.RunSync(ctx, inv, &stdout, &stderr)
	if err != nil {
		return err
	}

	if status != 0 {
		failure := zerr.With(zerr.With(domain.ErrListingFailed, "exit_status", status), "stderr", tail(&stderr))
		if _, statErr := os.Stat(path); statErr == nil {
			// Keep serving the previous entry rather than failing the
			// resolve outright.
			c.logger.Error(failure)
			return nil
		}
		return failure
	}

	if err := os.WriteFile(path, stdout.Bytes(), 0o644); err != nil { //nolint:gosec // world-readable cache entry
		return zerr.Wrap(err, "failed to write cache entry")
	}

	return nil
}

// read loads the entry line by line, preserving order and skipping empty
// lines.
func (c *TargetCache) read(path string) ([]domain.Target, error) {
	f, err := os.Open(path) //nolint:gosec // path derived from hashed key
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read cache entry")
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	var targets []domain.Target
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		targets = append(targets, domain.Target(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan cache entry")
	}

	return targets, nil
}

// sweep removes entries older than the configured max age. Best effort; a
// failed sweep never fails a resolve.
func (c *TargetCache) sweep() {
	if c.cfg.CacheMaxAge <= 0 {
		return
	}

	entries, err := os.ReadDir(c.root)
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-c.cfg.CacheMaxAge)
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil || info.IsDir() {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.root, entry.Name()))
		}
	}
}

// tail returns the last raw line of a diagnostic buffer.
func tail(buf *bytes.Buffer) string {
	s := strings.TrimRight(buf.String(), "\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
