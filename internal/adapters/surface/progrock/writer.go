package progrock

import (
	"fmt"
	"io"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/pave/internal/ui/style"
)

var _ progrock.Writer = (*ConsoleWriter)(nil)

// ConsoleWriter renders progrock status updates chronologically to a plain
// terminal: raw log bytes as they arrive, one styled line per completed
// vertex. It is the non-TUI display backend for Surface.
type ConsoleWriter struct {
	out io.Writer

	mu    sync.Mutex
	names map[string]string
	done  map[string]bool
}

// NewConsoleWriter creates a ConsoleWriter writing to out.
func NewConsoleWriter(out io.Writer) *ConsoleWriter {
	return &ConsoleWriter{
		out:   out,
		names: make(map[string]string),
		done:  make(map[string]bool),
	}
}

// WriteStatus renders one status update.
func (w *ConsoleWriter) WriteStatus(update *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, l := range update.Logs {
		if _, err := w.out.Write(l.Data); err != nil {
			return err
		}
	}

	for _, v := range update.Vertexes {
		w.names[v.Id] = v.Name
		if v.Completed == nil || w.done[v.Id] {
			continue
		}
		w.done[v.Id] = true

		switch {
		case v.Cached:
			// Dismissed clean run; stay quiet.
		case v.Error != nil:
			_, _ = fmt.Fprintf(w.out, "%s %s: %s\n", style.Failure.Render(style.Cross), v.Name, *v.Error)
		default:
			_, _ = fmt.Fprintf(w.out, "%s %s\n", style.Success.Render(style.Check), v.Name)
		}
	}

	return nil
}

// Close is a no-op; the writer owns no resources.
func (w *ConsoleWriter) Close() error {
	return nil
}
