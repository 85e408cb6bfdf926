package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pave/internal/core/domain"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := domain.NewConfig("/repo")
	require.NoError(t, err)

	require.Equal(t, "/repo/", cfg.ProjectRoot)
	require.Equal(t, "BUILD", cfg.BuildFileName)
	require.Equal(t, "pants", cfg.ExecName)
	require.Equal(t, "pants.ini", cfg.IniFileName)
	require.Equal(t, "--no-colors", cfg.StaticArgs)
	require.Equal(t, "buildifier", cfg.FormatterExec)
	require.Equal(t, "pants-targets", cfg.CacheDirName)
	require.Equal(t, 30*24*time.Hour, cfg.CacheMaxAge)
	require.Equal(t, 30*time.Second, cfg.ListTimeout)
	require.Equal(t, []string{".git", ".hg"}, cfg.RepoMarkers)
	require.False(t, cfg.AutoDismiss)
}

func TestNewConfig_IniFollowsExecName(t *testing.T) {
	cfg := domain.Config{ProjectRoot: "/repo", ExecName: "bt"}
	cfg.ApplyDefaults()

	require.Equal(t, "bt.ini", cfg.IniFileName)
	require.Equal(t, "bt-targets", cfg.CacheDirName)
	require.Equal(t, "/repo/bt", cfg.ExecPath())
	require.Equal(t, "/repo/bt.ini", cfg.IniPath())
}

func TestNewConfig_Invalid(t *testing.T) {
	_, err := domain.NewConfig("")
	require.Error(t, err)

	_, err = domain.NewConfig("relative/path")
	require.Error(t, err)
}

func TestRelativeToRoot(t *testing.T) {
	cfg := domain.Config{ProjectRoot: "/repo"}
	cfg.ApplyDefaults()

	require.Equal(t, "svc/api", cfg.RelativeToRoot("/repo/svc/api"))
	require.Equal(t, "svc/api", cfg.RelativeToRoot("/repo/svc/api/"))
	require.Equal(t, "", cfg.RelativeToRoot("/repo"))
	// Paths outside the root are passed through unchanged.
	require.Equal(t, "/elsewhere", cfg.RelativeToRoot("/elsewhere"))
}

func TestNormalizeDir(t *testing.T) {
	require.Equal(t, "/a/b/", domain.NormalizeDir("/a/b"))
	require.Equal(t, "/a/b/", domain.NormalizeDir("/a/b/"))
	require.Equal(t, "/a/b/", domain.NormalizeDir("/a//b/c/.."))
	require.Equal(t, "/", domain.NormalizeDir("/"))
	require.Equal(t, "", domain.NormalizeDir(""))
}

func TestWildcardTarget(t *testing.T) {
	cfg := domain.Config{ProjectRoot: "/repo"}
	cfg.ApplyDefaults()

	loc := domain.BuildFileLocation{Dir: "/repo/svc/api/"}
	require.Equal(t, domain.Target("svc/api::"), loc.WildcardTarget(cfg))
	require.True(t, loc.WildcardTarget(cfg).IsWildcard())
	require.False(t, domain.Target("svc/api:api").IsWildcard())
}

func TestParseSubcommand(t *testing.T) {
	for _, name := range []string{"binary", "test", "run", "repl", "fmt", "list", "filedeps"} {
		sub, ok := domain.ParseSubcommand(name)
		require.True(t, ok, name)
		require.Equal(t, name, string(sub))
	}

	_, ok := domain.ParseSubcommand("deploy")
	require.False(t, ok)
}

func TestSubcommand_Interactive(t *testing.T) {
	require.True(t, domain.SubRepl.Interactive())
	require.True(t, domain.SubRun.Interactive())
	require.False(t, domain.SubTest.Interactive())
	require.False(t, domain.SubList.Interactive())
}

func TestRunState(t *testing.T) {
	require.Equal(t, "killed", domain.RunKilled.String())
	require.Equal(t, "succeeded", domain.RunSucceeded.String())
	require.True(t, domain.RunKilled.Terminal())
	require.False(t, domain.RunActive.Terminal())
}
