// Package shell spawns external tool invocations via os/exec.
package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"sync/atomic"

	"github.com/creack/pty"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// RunSync spawns the invocation and blocks until it exits. Output streams
// into the sinks as it arrives. The exit status is data, not an error; only
// spawn failure produces an error.
func (r *Runner) RunSync(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) (int, error) {
	r.logger.Info("running " + inv.String())

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) //nolint:gosec // composed from trusted config
	cmd.Dir = inv.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "command", inv.String())
	}

	return 0, nil
}

// Start spawns the invocation without blocking. Interactive invocations run
// under a pty so the tool sees a terminal; otherwise stdout and stderr share
// one pipe, giving arrival-order interleaving on the sink.
func (r *Runner) Start(ctx context.Context, inv domain.Invocation, out io.Writer) (ports.Handle, error) {
	r.logger.Info("starting " + inv.String())

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...) //nolint:gosec // composed from trusted config
	cmd.Dir = inv.Dir

	h := &handle{cmd: cmd}
	h.state.Store(int32(domain.RunPending))

	// Context cancellation must classify as killed, not as a plain nonzero
	// exit, even when it beats an explicit Kill call.
	cmd.Cancel = func() error {
		h.killed.Store(true)
		h.state.Store(int32(domain.RunKilled))
		return cmd.Process.Kill()
	}

	if inv.Interactive {
		ptmx, err := pty.Start(cmd)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "command", inv.String())
		}
		h.ioDone = make(chan struct{})
		go func() {
			defer close(h.ioDone)
			// EIO on pty close is the normal end-of-stream signal.
			_, _ = io.Copy(out, ptmx)
			_ = ptmx.Close()
		}()
	} else {
		cmd.Stdout = out
		cmd.Stderr = out
		if err := cmd.Start(); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrSpawnFailed, err.Error()), "command", inv.String())
		}
	}

	h.state.Store(int32(domain.RunActive))
	return h, nil
}

// handle observes one streamed invocation.
type handle struct {
	cmd    *exec.Cmd
	ioDone chan struct{}

	state  atomic.Int32
	killed atomic.Bool
}

// Wait blocks until the process resolves. A process killed through Kill
// reports domain.ErrKilled regardless of the raw wait result, so a
// cancelled run can never masquerade as a clean exit.
func (h *handle) Wait() (int, error) {
	err := h.cmd.Wait()
	if h.ioDone != nil {
		<-h.ioDone
	}

	if h.killed.Load() {
		h.state.Store(int32(domain.RunKilled))
		return -1, domain.ErrKilled
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			h.state.Store(int32(domain.RunFailed))
			return exitErr.ExitCode(), nil
		}
		h.state.Store(int32(domain.RunFailed))
		return -1, zerr.Wrap(err, "wait failed")
	}

	h.state.Store(int32(domain.RunSucceeded))
	return 0, nil
}

// Kill terminates the process early. Output already written stays in the
// sink.
func (h *handle) Kill() error {
	h.killed.Store(true)
	h.state.Store(int32(domain.RunKilled))
	if h.cmd.Process == nil {
		return nil
	}
	if err := h.cmd.Process.Kill(); err != nil {
		return zerr.Wrap(err, "failed to kill process")
	}
	return nil
}

// State returns the current lifecycle state.
func (h *handle) State() domain.RunState {
	return domain.RunState(h.state.Load())
}
