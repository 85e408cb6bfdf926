package ports

import (
	"context"
	"io"

	"go.trai.ch/pave/internal/core/domain"
)

// Runner spawns composed invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// RunSync spawns the invocation and blocks until it exits, streaming
	// stdout and stderr into the supplied sinks as they arrive. The exit
	// status is returned as data; a nonzero status is not an error at this
	// layer. Spawn failure is domain.ErrSpawnFailed.
	RunSync(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) (int, error)

	// Start spawns the invocation without blocking, streaming its combined
	// output into out in arrival order. The returned handle observes
	// completion and supports early termination.
	Start(ctx context.Context, inv domain.Invocation, out io.Writer) (Handle, error)
}

// Handle observes one streamed invocation.
type Handle interface {
	// Wait blocks until the process resolves and returns its exit status.
	// A killed process returns domain.ErrKilled, never exit status zero.
	Wait() (int, error)

	// Kill terminates the process early. Partial output already written to
	// the sink is left in place.
	Kill() error

	// State returns the current lifecycle state.
	State() domain.RunState
}
