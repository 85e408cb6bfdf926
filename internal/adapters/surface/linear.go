// Package surface implements results surfaces: sinks that display streamed
// invocation output with a terminal status marker.
package surface

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/pave/internal/ui/style"
)

var _ ports.Surface = (*Linear)(nil)

// Linear is a synchronous, chronological results surface for plain
// terminals and CI. Output passes straight through; the terminal marker is
// a single styled line.
type Linear struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewLinear creates a Linear surface. Nil writers default to the process
// streams.
func NewLinear(stdout, stderr io.Writer) *Linear {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Linear{
		stdout: stdout,
		stderr: stderr,
		output: termenv.NewOutput(stderr, termenv.WithProfile(colorProfile())),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Open announces the session and returns it.
func (l *Linear) Open(name string) ports.Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.stderr, "%s %s\n", l.output.String(style.Dot).Faint(), name)
	return &linearSession{surface: l, name: name}
}

type linearSession struct {
	surface *Linear
	name    string
}

func (s *linearSession) Stdout() io.Writer { return s.surface.stdout }
func (s *linearSession) Stderr() io.Writer { return s.surface.stderr }

// Done prints the terminal status marker.
func (s *linearSession) Done(err error) {
	s.surface.mu.Lock()
	defer s.surface.mu.Unlock()

	out := s.surface.output
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(s.surface.stderr, "%s %s\n", out.String(style.Check).Foreground(termenv.ANSIGreen), s.name)
	case isKilled(err):
		_, _ = fmt.Fprintf(s.surface.stderr, "%s %s (killed)\n", out.String(style.Warning).Foreground(termenv.ANSIYellow), s.name)
	default:
		_, _ = fmt.Fprintf(s.surface.stderr, "%s %s: %v\n", out.String(style.Cross).Foreground(termenv.ANSIRed), s.name, err)
	}
}

// Dismiss collapses the session to nothing.
func (s *linearSession) Dismiss() {}

func isKilled(err error) bool {
	return errors.Is(err, domain.ErrKilled)
}
