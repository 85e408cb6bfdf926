// Package command assembles external tool invocations.
package command

import (
	"strings"

	"go.trai.ch/pave/internal/core/domain"
)

// Builder composes invocations from configuration. Pure assembly with no
// side effects; identical inputs always yield an identical Invocation.
type Builder struct {
	cfg domain.Config
}

// NewBuilder creates a new Builder.
func NewBuilder(cfg domain.Config) *Builder {
	return &Builder{cfg: cfg}
}

// Build composes an invocation in fixed order: executable, extra args,
// --config-file flag, static args, subcommand, targets. The working
// directory is always the project root.
func (b *Builder) Build(sub domain.Subcommand, targets ...string) domain.Invocation {
	configFlag := "--config-file=" + b.cfg.IniPath()

	args := make([]string, 0, 4+len(targets))
	args = append(args, splitArgs(b.cfg.ExtraArgs)...)
	args = append(args, configFlag)
	args = append(args, splitArgs(b.cfg.StaticArgs)...)
	args = append(args, string(sub))
	args = append(args, targets...)

	// The rendered line keeps every slot, empty or not, matching the
	// tool's documented invocation shape.
	line := strings.Join(append([]string{
		b.cfg.ExecPath(),
		b.cfg.ExtraArgs,
		configFlag,
		b.cfg.StaticArgs,
		string(sub),
	}, targets...), " ")

	return domain.Invocation{
		Path:        b.cfg.ExecPath(),
		Args:        args,
		Dir:         b.cfg.ProjectRoot,
		Interactive: sub.Interactive(),
		Line:        line,
	}
}

// BuildFormat composes the formatter invocation for a build file written to
// scratchPath.
func (b *Builder) BuildFormat(scratchPath string) domain.Invocation {
	return domain.Invocation{
		Path: b.cfg.FormatterExec,
		Args: []string{scratchPath},
		Dir:  b.cfg.ProjectRoot,
		Line: b.cfg.FormatterExec + " " + scratchPath,
	}
}

// splitArgs breaks a static argument string on whitespace, dropping empty
// fields so they never become empty argv elements.
func splitArgs(s string) []string {
	return strings.Fields(s)
}
