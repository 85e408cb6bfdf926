// Package domain holds the core value types shared by all adapters.
package domain

import (
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Default values applied by NewConfig when the corresponding field is unset.
const (
	DefaultBuildFileName = "BUILD"
	DefaultExecName      = "pants"
	DefaultStaticArgs    = "--no-colors"
	DefaultFormatterExec = "buildifier"
	DefaultCacheMaxAge   = 30 * 24 * time.Hour
	DefaultListTimeout   = 30 * time.Second
)

// DefaultRepoMarkers are the directory entries treated as the upward-search
// stop boundary.
var DefaultRepoMarkers = []string{".git", ".hg"}

// Config is the immutable configuration constructed once at startup and
// passed explicitly to every component constructor. Core logic never reads
// ambient state.
type Config struct {
	// ProjectRoot is the absolute project root directory, with a trailing
	// separator. Required.
	ProjectRoot string

	// BuildFileName is the build-definition marker filename.
	BuildFileName string

	// ExecName is the external tool executable, resolved relative to
	// ProjectRoot.
	ExecName string

	// ExtraArgs is a static argument string placed directly after the
	// executable.
	ExtraArgs string

	// IniFileName is the tool config file, resolved relative to ProjectRoot.
	IniFileName string

	// StaticArgs is a static argument string placed before the subcommand.
	StaticArgs string

	// AutoDismiss hides the results surface after a clean success.
	AutoDismiss bool

	// FormatterExec is the external build-file formatter executable.
	FormatterExec string

	// CacheDirName is the per-tool subdirectory under the system temp root
	// that holds target-list cache entries.
	CacheDirName string

	// CacheMaxAge is the age past which cache entries are swept.
	CacheMaxAge time.Duration

	// ListTimeout bounds synchronous listing invocations.
	ListTimeout time.Duration

	// RepoMarkers are directory entries that stop the upward build-file
	// search.
	RepoMarkers []string
}

// NewConfig validates root and fills in defaults for every unset field.
func NewConfig(projectRoot string) (Config, error) {
	if projectRoot == "" {
		return Config{}, zerr.New("project root is required")
	}
	if !filepath.IsAbs(projectRoot) {
		return Config{}, zerr.With(zerr.New("project root must be absolute"), "root", projectRoot)
	}

	cfg := Config{ProjectRoot: projectRoot}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills every unset field. ProjectRoot is normalized to a
// trailing-separator form so path concatenation stays uniform.
func (c *Config) ApplyDefaults() {
	c.ProjectRoot = NormalizeDir(c.ProjectRoot)
	if c.BuildFileName == "" {
		c.BuildFileName = DefaultBuildFileName
	}
	if c.ExecName == "" {
		c.ExecName = DefaultExecName
	}
	if c.IniFileName == "" {
		c.IniFileName = c.ExecName + ".ini"
	}
	if c.StaticArgs == "" {
		c.StaticArgs = DefaultStaticArgs
	}
	if c.FormatterExec == "" {
		c.FormatterExec = DefaultFormatterExec
	}
	if c.CacheDirName == "" {
		c.CacheDirName = c.ExecName + "-targets"
	}
	if c.CacheMaxAge == 0 {
		c.CacheMaxAge = DefaultCacheMaxAge
	}
	if c.ListTimeout == 0 {
		c.ListTimeout = DefaultListTimeout
	}
	if len(c.RepoMarkers) == 0 {
		c.RepoMarkers = DefaultRepoMarkers
	}
}

// ExecPath returns the tool executable path under the project root.
func (c Config) ExecPath() string {
	return c.ProjectRoot + c.ExecName
}

// IniPath returns the tool config-file path under the project root.
func (c Config) IniPath() string {
	return c.ProjectRoot + c.IniFileName
}

// RelativeToRoot rewrites an absolute directory path as project-root
// relative, without a trailing separator. Paths outside the root are
// returned unchanged.
func (c Config) RelativeToRoot(dir string) string {
	rel := strings.TrimPrefix(NormalizeDir(dir), c.ProjectRoot)
	return strings.TrimSuffix(rel, string(filepath.Separator))
}

// NormalizeDir cleans a directory path and guarantees a single trailing
// separator.
func NormalizeDir(dir string) string {
	if dir == "" {
		return dir
	}
	cleaned := filepath.Clean(dir)
	if cleaned == string(filepath.Separator) {
		return cleaned
	}
	return cleaned + string(filepath.Separator)
}
