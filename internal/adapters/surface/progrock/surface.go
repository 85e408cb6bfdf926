// Package progrock renders the results surface as progrock vertices: one
// vertex per invocation, with its output streams and terminal status.
package progrock

import (
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pave/internal/core/ports"
)

var _ ports.Surface = (*Surface)(nil)

// Surface implements ports.Surface on a progrock recorder.
type Surface struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Surface rendering status updates through w.
func New(w progrock.Writer) *Surface {
	return &Surface{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Open records a new vertex for the named invocation.
func (s *Surface) Open(name string) ports.Session {
	v := s.rec.Vertex(digest.FromString(name), name)
	return &session{vertex: v}
}

// Close flushes and closes the underlying writer when it supports closing.
func (s *Surface) Close() error {
	if c, ok := s.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// session wraps one *progrock.VertexRecorder.
type session struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns the vertex's standard output stream.
func (s *session) Stdout() io.Writer {
	return s.vertex.Stdout()
}

// Stderr returns the vertex's error output stream.
func (s *session) Stderr() io.Writer {
	return s.vertex.Stderr()
}

// Done marks the vertex finished, successfully or with an error.
func (s *session) Done(err error) {
	s.vertex.Done(err)
}

// Dismiss completes the vertex as a non-event. Cached is the closest
// progrock notion to a dismissed clean run: completed, de-emphasized, no
// error.
func (s *session) Dismiss() {
	s.vertex.Cached()
	s.vertex.Done(nil)
}
