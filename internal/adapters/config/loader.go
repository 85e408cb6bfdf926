// Package config loads the host configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the host configuration filename searched for upward from the
// working directory.
const FileName = "pave.yaml"

// Loader discovers and reads pave.yaml.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// pavefile is the on-disk schema.
type pavefile struct {
	ProjectRoot   string `yaml:"projectRoot"`
	BuildFileName string `yaml:"buildFileName"`
	ExecName      string `yaml:"execName"`
	ExtraArgs     string `yaml:"extraArgs"`
	IniFileName   string `yaml:"iniFileName"`
	StaticArgs    string `yaml:"staticArgs"`
	AutoDismiss   bool   `yaml:"autoDismiss"`
	FormatterExec string `yaml:"formatterExec"`
	CacheDirName  string `yaml:"cacheDirName"`
	CacheMaxAge   string `yaml:"cacheMaxAge"`
	ListTimeout   string `yaml:"listTimeout"`

	RepoMarkers []string `yaml:"repoMarkers"`
}

// Load finds the nearest pave.yaml at or above cwd and builds the immutable
// domain.Config from it. A relative or empty projectRoot resolves against
// the config file's directory.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	path, err := l.find(cwd)
	if err != nil {
		return domain.Config{}, err
	}
	return l.loadFile(path)
}

func (l *Loader) find(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) loadFile(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path discovered from user cwd
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to read config file")
	}

	var pf pavefile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to parse config file")
	}

	root := pf.ProjectRoot
	if root == "" {
		root = filepath.Dir(path)
	} else if !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(path), root)
	}

	cfg := domain.Config{
		ProjectRoot:   root,
		BuildFileName: pf.BuildFileName,
		ExecName:      pf.ExecName,
		ExtraArgs:     pf.ExtraArgs,
		IniFileName:   pf.IniFileName,
		StaticArgs:    pf.StaticArgs,
		AutoDismiss:   pf.AutoDismiss,
		FormatterExec: pf.FormatterExec,
		CacheDirName:  pf.CacheDirName,
		RepoMarkers:   pf.RepoMarkers,
	}

	if cfg.CacheMaxAge, err = parseDuration(pf.CacheMaxAge); err != nil {
		return domain.Config{}, zerr.With(err, "field", "cacheMaxAge")
	}
	if cfg.ListTimeout, err = parseDuration(pf.ListTimeout); err != nil {
		return domain.Config{}, zerr.With(err, "field", "listTimeout")
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, zerr.Wrap(err, "invalid duration")
	}
	return d, nil
}
