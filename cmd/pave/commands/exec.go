package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/pave/internal/core/domain"
)

// execSubcommands are the tool operations exposed directly as CLI commands.
var execSubcommands = []domain.Subcommand{
	domain.SubBinary,
	domain.SubTest,
	domain.SubRun,
	domain.SubRepl,
	domain.SubFiledeps,
}

func (c *CLI) newExecCmd(name string, sub domain.Subcommand) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <file|target>",
		Short: "Invoke the tool's " + string(sub) + " operation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Execute(cmd.Context(), sub, args[0])
		},
	}
}
