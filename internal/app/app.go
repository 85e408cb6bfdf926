// Package app implements the application layer for pave.
package app

import (
	"context"
	"os"

	"go.trai.ch/pave/internal/adapters/report"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/zerr"
)

// App wires target resolution, selection and execution together for the
// CLI.
type App struct {
	cfg      domain.Config
	resolver ports.TargetResolver
	reporter *report.Reporter
	selector ports.Selector
}

// New creates a new App instance.
func New(cfg domain.Config, resolver ports.TargetResolver, reporter *report.Reporter, selector ports.Selector) *App {
	return &App{
		cfg:      cfg,
		resolver: resolver,
		reporter: reporter,
		selector: selector,
	}
}

// Config returns the immutable configuration.
func (a *App) Config() domain.Config {
	return a.cfg
}

// Reporter exposes the result reporter, letting the CLI override the
// results surface before executing.
func (a *App) Reporter() *report.Reporter {
	return a.reporter
}

// Targets resolves the target list for a source file, regenerating the
// cache entry when refresh is set.
func (a *App) Targets(ctx context.Context, sourceFile string, refresh bool) ([]domain.Target, error) {
	if refresh {
		return a.resolver.Refresh(ctx, sourceFile)
	}
	return a.resolver.Resolve(ctx, sourceFile)
}

// Execute runs a subcommand against arg. An arg naming an existing file is
// resolved to its targets and one is picked through the selection
// capability; anything else is passed through as a target literal.
func (a *App) Execute(ctx context.Context, sub domain.Subcommand, arg string) error {
	target, err := a.pickTarget(ctx, sub, arg)
	if err != nil {
		return err
	}
	return a.reporter.Execute(ctx, sub, target)
}

// Format runs the build-file formatter against the file at path and writes
// the result back on success.
func (a *App) Format(ctx context.Context, path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // user supplied path
	if err != nil {
		return zerr.Wrap(err, "failed to read build file")
	}

	formatted, err := a.reporter.Format(ctx, path, content)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, formatted, 0o644); err != nil { //nolint:gosec // rewriting the user's file
		return zerr.Wrap(err, "failed to write formatted build file")
	}
	return nil
}

func (a *App) pickTarget(ctx context.Context, sub domain.Subcommand, arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil || info.IsDir() {
		// Not a source file; treat as a target address.
		return arg, nil
	}

	targets, err := a.resolver.Resolve(ctx, arg)
	if err != nil {
		return "", err
	}
	if len(targets) == 0 {
		return "", zerr.With(domain.ErrNoTargets, "file", arg)
	}

	choices := make([]string, len(targets))
	for i, t := range targets {
		choices[i] = string(t)
	}

	return a.selector.SelectOne("Select a target for "+string(sub)+":", choices)
}
