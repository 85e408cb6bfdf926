package progrock_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	surface "go.trai.ch/pave/internal/adapters/surface/progrock"
	"go.trai.ch/pave/internal/core/domain"
)

// syncBuffer keeps the assertions safe against recorder-side writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSurface_StreamsLogsAndStatus(t *testing.T) {
	out := &syncBuffer{}
	s := surface.New(surface.NewConsoleWriter(out))

	sess := s.Open("test svc:target")
	_, err := sess.Stdout().Write([]byte("tool output\n"))
	require.NoError(t, err)
	sess.Done(nil)
	require.NoError(t, s.Close())

	require.Contains(t, out.String(), "tool output\n")
	require.Contains(t, out.String(), "test svc:target")
}

func TestSurface_FailedSessionRendersError(t *testing.T) {
	out := &syncBuffer{}
	s := surface.New(surface.NewConsoleWriter(out))

	sess := s.Open("binary svc:bin")
	sess.Done(domain.ErrExecutionFailed)
	require.NoError(t, s.Close())

	require.Contains(t, out.String(), "binary svc:bin")
	require.Contains(t, out.String(), domain.ErrExecutionFailed.Error())
}

func TestSurface_DismissedSessionStaysQuiet(t *testing.T) {
	out := &syncBuffer{}
	s := surface.New(surface.NewConsoleWriter(out))

	sess := s.Open("test svc:target")
	sess.Dismiss()
	require.NoError(t, s.Close())

	require.NotContains(t, out.String(), "test svc:target")
}

func TestConsoleWriter_ReportsEachVertexOnce(t *testing.T) {
	out := &syncBuffer{}
	s := surface.New(surface.NewConsoleWriter(out))

	sess := s.Open("test svc:target")
	sess.Done(nil)
	// A second terminal call must not produce a second marker.
	sess.Done(nil)
	require.NoError(t, s.Close())

	require.Equal(t, 1, bytes.Count([]byte(out.String()), []byte("test svc:target")))
}
