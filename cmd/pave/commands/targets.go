package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets <file>",
		Short: "List build targets owning a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresh, _ := cmd.Flags().GetBool("refresh")

			targets, err := c.app.Targets(cmd.Context(), args[0], refresh)
			if err != nil {
				return err
			}

			for _, t := range targets {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}

	cmd.Flags().Bool("refresh", false, "Regenerate the cache entry before listing")

	return cmd
}
