package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <buildfile>",
		Short: "Format a build file with the external formatter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Format(cmd.Context(), args[0])
		},
	}
}
