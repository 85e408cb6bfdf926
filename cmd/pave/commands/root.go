// Package commands implements the CLI commands for pave.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/pave/internal/adapters/surface"
	"go.trai.ch/pave/internal/app"
	"go.trai.ch/pave/internal/core/domain"
)

// CLI represents the command line interface for pave.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "pave",
		Short:         "A front-end for Pants-style build tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("linear", false, "Force the linear results surface")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if linear, _ := cmd.Flags().GetBool("linear"); linear {
			a.Reporter().SetSurface(surface.NewLinear(nil, nil))
		}
	}

	rootCmd.AddCommand(c.newTargetsCmd())
	for _, sub := range execSubcommands {
		rootCmd.AddCommand(c.newExecCmd(string(sub), sub))
	}
	// The tool's own fmt runs against a target; plain "fmt" stays with the
	// external build-file formatter.
	rootCmd.AddCommand(c.newExecCmd("format", domain.SubFmt))
	rootCmd.AddCommand(c.newFmtCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
