package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pave/internal/adapters/command"
	"go.trai.ch/pave/internal/adapters/report"
	"go.trai.ch/pave/internal/adapters/surface"
	"go.trai.ch/pave/internal/app"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/pave/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app      *app.App
	resolver *mocks.MockTargetResolver
	selector *mocks.MockSelector
	runner   *mocks.MockRunner
	handle   *mocks.MockHandle
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := domain.NewConfig(t.TempDir())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	f := &fixture{
		resolver: mocks.NewMockTargetResolver(ctrl),
		selector: mocks.NewMockSelector(ctrl),
		runner:   mocks.NewMockRunner(ctrl),
		handle:   mocks.NewMockHandle(ctrl),
	}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	reporter := report.NewReporter(cfg, command.NewBuilder(cfg), f.runner, surface.NewNoOp(), logger)
	f.app = app.New(cfg, f.resolver, reporter, f.selector)
	return f
}

// expectStart captures the started invocation and resolves it cleanly.
func (f *fixture) expectStart(started *domain.Invocation) {
	f.runner.EXPECT().
		Start(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv domain.Invocation, _ io.Writer) (ports.Handle, error) {
			*started = inv
			return f.handle, nil
		})
	f.handle.EXPECT().Wait().Return(0, nil)
}

func TestTargets_UsesResolveByDefault(t *testing.T) {
	f := newFixture(t)
	want := []domain.Target{"svc::", "svc:a"}
	f.resolver.EXPECT().Resolve(gomock.Any(), "main.py").Return(want, nil)

	got, err := f.app.Targets(context.Background(), "main.py", false)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestTargets_RefreshBypassesCache(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().Refresh(gomock.Any(), "main.py").Return([]domain.Target{"svc::"}, nil)

	_, err := f.app.Targets(context.Background(), "main.py", true)
	require.NoError(t, err)
}

func TestExecute_TargetLiteralSkipsResolution(t *testing.T) {
	f := newFixture(t)

	var started domain.Invocation
	f.expectStart(&started)

	require.NoError(t, f.app.Execute(context.Background(), domain.SubTest, "svc:target"))
	require.Contains(t, started.Args, "svc:target")
	require.Contains(t, started.Args, "test")
}

func TestExecute_SourceFileGoesThroughSelection(t *testing.T) {
	f := newFixture(t)

	src := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(src, nil, 0o600))

	f.resolver.EXPECT().
		Resolve(gomock.Any(), src).
		Return([]domain.Target{"svc::", "svc:a", "svc:b"}, nil)
	f.selector.EXPECT().
		SelectOne(gomock.Any(), []string{"svc::", "svc:a", "svc:b"}).
		Return("svc:b", nil)

	var started domain.Invocation
	f.expectStart(&started)

	require.NoError(t, f.app.Execute(context.Background(), domain.SubTest, src))
	require.Contains(t, started.Args, "svc:b")
}

func TestExecute_SourceFileWithoutTargets(t *testing.T) {
	f := newFixture(t)

	src := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(src, nil, 0o600))

	f.resolver.EXPECT().Resolve(gomock.Any(), src).Return(nil, nil)

	err := f.app.Execute(context.Background(), domain.SubTest, src)
	require.True(t, errors.Is(err, domain.ErrNoTargets))
}

func TestExecute_AbortedSelection(t *testing.T) {
	f := newFixture(t)

	src := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(src, nil, 0o600))

	f.resolver.EXPECT().
		Resolve(gomock.Any(), src).
		Return([]domain.Target{"svc::", "svc:a"}, nil)
	f.selector.EXPECT().
		SelectOne(gomock.Any(), gomock.Any()).
		Return("", domain.ErrSelectionAborted)

	err := f.app.Execute(context.Background(), domain.SubTest, src)
	require.True(t, errors.Is(err, domain.ErrSelectionAborted))
}

func TestFormat_RewritesFileInPlace(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "BUILD")
	require.NoError(t, os.WriteFile(path, []byte("unformatted(  )\n"), 0o600))

	f.runner.EXPECT().
		RunSync(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv domain.Invocation, _, _ io.Writer) (int, error) {
			return 0, os.WriteFile(inv.Args[0], []byte("formatted()\n"), 0o600)
		})

	require.NoError(t, f.app.Format(context.Background(), path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "formatted()\n", string(got))
}

func TestFormat_FailureLeavesFileUntouched(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "BUILD")
	require.NoError(t, os.WriteFile(path, []byte("broken(\n"), 0o600))

	f.runner.EXPECT().
		RunSync(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(1, nil)

	err := f.app.Format(context.Background(), path)
	require.True(t, errors.Is(err, domain.ErrFormatFailed))

	got, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	require.Equal(t, "broken(\n", string(got))
}
