package surface

import (
	"io"

	"go.trai.ch/pave/internal/core/ports"
)

// NoOp is a results surface that swallows everything. Used by callers that
// capture output themselves.
type NoOp struct{}

// NewNoOp creates a NoOp surface.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Open returns a session that discards all writes.
func (n *NoOp) Open(_ string) ports.Session {
	return &noopSession{}
}

type noopSession struct{}

func (s *noopSession) Stdout() io.Writer { return io.Discard }
func (s *noopSession) Stderr() io.Writer { return io.Discard }
func (s *noopSession) Done(_ error)      {}
func (s *noopSession) Dismiss()          {}
