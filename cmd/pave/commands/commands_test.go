package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pave/cmd/pave/commands"
	"go.trai.ch/pave/internal/adapters/command"
	"go.trai.ch/pave/internal/adapters/report"
	"go.trai.ch/pave/internal/adapters/surface"
	"go.trai.ch/pave/internal/app"
	"go.trai.ch/pave/internal/build"
	"go.trai.ch/pave/internal/core/domain"
	"go.trai.ch/pave/internal/core/ports"
	"go.trai.ch/pave/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	cli      *commands.CLI
	resolver *mocks.MockTargetResolver
	runner   *mocks.MockRunner
	handle   *mocks.MockHandle

	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg, err := domain.NewConfig(t.TempDir())
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	f := &fixture{
		resolver: mocks.NewMockTargetResolver(ctrl),
		runner:   mocks.NewMockRunner(ctrl),
		handle:   mocks.NewMockHandle(ctrl),
	}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	selector := mocks.NewMockSelector(ctrl)

	reporter := report.NewReporter(cfg, command.NewBuilder(cfg), f.runner, surface.NewNoOp(), logger)
	f.cli = commands.New(app.New(cfg, f.resolver, reporter, selector))
	f.cli.SetOutput(&f.stdout, &f.stderr)
	return f
}

func (f *fixture) run(t *testing.T, args ...string) error {
	t.Helper()
	f.cli.SetArgs(args)
	return f.cli.Execute(context.Background())
}

func TestTargetsCommand(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().
		Resolve(gomock.Any(), "main.py").
		Return([]domain.Target{"svc::", "svc:a"}, nil)

	require.NoError(t, f.run(t, "targets", "main.py"))
	require.Equal(t, "svc::\nsvc:a\n", f.stdout.String())
}

func TestTargetsCommand_Refresh(t *testing.T) {
	f := newFixture(t)
	f.resolver.EXPECT().
		Refresh(gomock.Any(), "main.py").
		Return([]domain.Target{"svc::"}, nil)

	require.NoError(t, f.run(t, "targets", "--refresh", "main.py"))
	require.Equal(t, "svc::\n", f.stdout.String())
}

func TestExecCommands(t *testing.T) {
	tests := []struct {
		name string
		sub  string
	}{
		{"binary", "binary"},
		{"test", "test"},
		{"run", "run"},
		{"repl", "repl"},
		{"filedeps", "filedeps"},
		// The tool's fmt operation is exposed as "format"; plain "fmt"
		// belongs to the external build-file formatter.
		{"format", "fmt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			var started domain.Invocation
			f.runner.EXPECT().
				Start(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, inv domain.Invocation, _ io.Writer) (ports.Handle, error) {
					started = inv
					return f.handle, nil
				})
			f.handle.EXPECT().Wait().Return(0, nil)

			require.NoError(t, f.run(t, tt.name, "svc:target"))
			require.Contains(t, started.Args, tt.sub)
			require.Contains(t, started.Args, "svc:target")
		})
	}
}

func TestExecCommand_FailurePropagates(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().
		Start(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(f.handle, nil)
	f.handle.EXPECT().Wait().Return(2, nil)

	err := f.run(t, "test", "svc:target")
	require.True(t, errors.Is(err, domain.ErrExecutionFailed))
}

func TestFmtCommand(t *testing.T) {
	f := newFixture(t)

	path := filepath.Join(t.TempDir(), "BUILD")
	require.NoError(t, os.WriteFile(path, []byte("unformatted(  )\n"), 0o600))

	f.runner.EXPECT().
		RunSync(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv domain.Invocation, _, _ io.Writer) (int, error) {
			return 0, os.WriteFile(inv.Args[0], []byte("formatted()\n"), 0o600)
		})

	require.NoError(t, f.run(t, "fmt", path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "formatted()\n", string(got))
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.run(t, "version"))
	require.Contains(t, f.stdout.String(), "pave version "+build.Version)
}

func TestUnknownCommand(t *testing.T) {
	f := newFixture(t)

	require.Error(t, f.run(t, "bogus"))
}

func TestExecCommand_RequiresArgument(t *testing.T) {
	f := newFixture(t)

	require.Error(t, f.run(t, "test"))
}

func TestLinearFlag(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().
		Start(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(f.handle, nil)
	f.handle.EXPECT().Wait().Return(0, nil)

	// The flag swaps the surface before the command runs; execution still
	// succeeds end to end.
	require.NoError(t, f.run(t, "--linear", "test", "svc:target"))
}
