package command_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pave/internal/adapters/command"
	"go.trai.ch/pave/internal/core/domain"
)

func testConfig() domain.Config {
	cfg := domain.Config{
		ProjectRoot: "/repo",
		ExecName:    "bt",
		IniFileName: "c.ini",
		StaticArgs:  "--no-colors",
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestBuild_RendersDocumentedLine(t *testing.T) {
	inv := command.NewBuilder(testConfig()).Build(domain.SubTest, "svc:target")

	// Empty extra args keep their slot in the rendered line.
	require.Equal(t, "/repo/bt  --config-file=/repo/c.ini --no-colors test svc:target", inv.Line)
}

func TestBuild_ArgvHasNoEmptyElements(t *testing.T) {
	inv := command.NewBuilder(testConfig()).Build(domain.SubTest, "svc:target")

	require.Equal(t, []string{"--config-file=/repo/c.ini", "--no-colors", "test", "svc:target"}, inv.Args)
	require.Equal(t, "/repo/bt", inv.Path)
	require.Equal(t, "/repo/", inv.Dir)
}

func TestBuild_ExtraArgsPrecedeConfigFlag(t *testing.T) {
	cfg := testConfig()
	cfg.ExtraArgs = "-v --trace"
	inv := command.NewBuilder(cfg).Build(domain.SubBinary, "svc:bin")

	require.Equal(t, []string{"-v", "--trace", "--config-file=/repo/c.ini", "--no-colors", "binary", "svc:bin"}, inv.Args)
	require.Equal(t, "/repo/bt -v --trace --config-file=/repo/c.ini --no-colors binary svc:bin", inv.Line)
}

func TestBuild_IsDeterministic(t *testing.T) {
	builder := command.NewBuilder(testConfig())

	first := builder.Build(domain.SubList, "svc:")
	second := builder.Build(domain.SubList, "svc:")
	require.Equal(t, first, second)
}

func TestBuild_InteractiveSubcommands(t *testing.T) {
	builder := command.NewBuilder(testConfig())

	require.True(t, builder.Build(domain.SubRepl, "svc:lib").Interactive)
	require.True(t, builder.Build(domain.SubRun, "svc:bin").Interactive)
	require.False(t, builder.Build(domain.SubTest, "svc:target").Interactive)
}

func TestBuildFormat(t *testing.T) {
	cfg := testConfig()
	cfg.FormatterExec = "/usr/bin/buildifier"
	inv := command.NewBuilder(cfg).BuildFormat("/tmp/scratch/BUILD")

	require.Equal(t, "/usr/bin/buildifier", inv.Path)
	require.Equal(t, []string{"/tmp/scratch/BUILD"}, inv.Args)
	require.Equal(t, "/usr/bin/buildifier /tmp/scratch/BUILD", inv.Line)
	require.False(t, inv.Interactive)
}
