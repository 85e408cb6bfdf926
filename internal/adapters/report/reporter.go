// Package report executes build/test/run/format invocations and relays
// their output and terminal status to the results surface.
package report

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"

	"go.trai.ch/pave/internal/adapters/command"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/zerr"
)

// Reporter runs composed invocations and applies the success/failure
// policy.
type Reporter struct {
	cfg     domain.Config
	builder *command.Builder
	runner  ports.Runner
	surface ports.Surface
	logger  ports.Logger
}

// NewReporter creates a new Reporter.
func NewReporter(cfg domain.Config, builder *command.Builder, runner ports.Runner, surface ports.Surface, logger ports.Logger) *Reporter {
	return &Reporter{
		cfg:     cfg,
		builder: builder,
		runner:  runner,
		surface: surface,
		logger:  logger,
	}
}

// SetSurface swaps the results surface. Called before any execution when
// the host overrides the detected surface.
func (r *Reporter) SetSurface(s ports.Surface) {
	r.surface = s
}

// Execute streams one invocation onto the results surface. Spawn failure is
// returned synchronously; a nonzero exit resolves to ErrExecutionFailed
// through the surface's terminal status. A clean exit dismisses the session
// when the auto-dismiss option is set.
func (r *Reporter) Execute(ctx context.Context, sub domain.Subcommand, targets ...string) error {
	inv := r.builder.Build(sub, targets...)
	sess := r.surface.Open(sessionName(sub, targets))

	h, err := r.runner.Start(ctx, inv, sess.Stdout())
	if err != nil {
		sess.Done(err)
		return err
	}

	// Cancellation kills the process and leaves partial output in place.
	waited := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = h.Kill()
		case <-waited:
		}
	}()

	status, err := h.Wait()
	close(waited)

	switch {
	case errors.Is(err, domain.ErrKilled):
		r.logger.Warn("killed " + sessionName(sub, targets))
		sess.Done(err)
		return err
	case err != nil:
		sess.Done(err)
		return err
	case status == 0:
		if r.cfg.AutoDismiss {
			sess.Dismiss()
		} else {
			sess.Done(nil)
		}
		return nil
	default:
		failure := zerr.With(zerr.With(domain.ErrExecutionFailed, "subcommand", string(sub)), "exit_status", status)
		sess.Done(failure)
		return failure
	}
}

// Format runs the external formatter against a snapshot of content written
// to a scratch file. On success it returns the formatted bytes; on failure
// it returns ErrFormatFailed carrying the formatter's diagnostics with the
// scratch path rewritten to docName.
func (r *Reporter) Format(ctx context.Context, docName string, content []byte) ([]byte, error) {
	scratch, err := os.CreateTemp("", "pave-fmt-*")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create scratch file")
	}
	scratchPath := scratch.Name()
	defer os.Remove(scratchPath) //nolint:errcheck // best effort cleanup

	if _, err := scratch.Write(content); err != nil {
		_ = scratch.Close()
		return nil, zerr.Wrap(err, "failed to write scratch file")
	}
	if err := scratch.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to close scratch file")
	}

	inv := r.builder.BuildFormat(scratchPath)

	var stdout, stderr bytes.Buffer
	status, err := r.runner.RunSync(ctx, inv, &stdout, &stderr)
	if err != nil {
		return nil, err
	}

	if status != 0 {
		diags := strings.ReplaceAll(stderr.String(), scratchPath, docName)
		sess := r.surface.Open("fmt " + docName)
		_, _ = sess.Stderr().Write([]byte(diags))
		failure := zerr.With(zerr.With(domain.ErrFormatFailed, "exit_status", status), "diagnostics", diags)
		sess.Done(failure)
		return nil, failure
	}

	formatted, err := os.ReadFile(scratchPath) //nolint:gosec // our own scratch file
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read formatted output")
	}
	return formatted, nil
}

func sessionName(sub domain.Subcommand, targets []string) string {
	if len(targets) == 0 {
		return string(sub)
	}
	return string(sub) + " " + strings.Join(targets, " ")
}
