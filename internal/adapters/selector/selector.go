// Package selector implements the host-provided choice capability for a
// plain terminal.
package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/pave/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.Selector = (*Terminal)(nil)

// Terminal presents choices as a numbered menu on out and reads the answer
// from in.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a Terminal selector.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// SelectOne prints the choices and returns the one picked. An empty answer
// or EOF aborts the selection.
func (t *Terminal) SelectOne(prompt string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", domain.ErrNoTargets
	}
	if len(choices) == 1 {
		return choices[0], nil
	}

	_, _ = fmt.Fprintln(t.out, prompt)
	for i, choice := range choices {
		_, _ = fmt.Fprintf(t.out, "  %s %s\n", style.Muted.Render(strconv.Itoa(i+1)+")"), choice)
	}
	_, _ = fmt.Fprintf(t.out, "> ")

	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", domain.ErrSelectionAborted
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", domain.ErrSelectionAborted
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(choices) {
		return "", zerr.With(zerr.New("invalid selection"), "answer", answer)
	}

	return choices[n-1], nil
}
