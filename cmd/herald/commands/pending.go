package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List queued agent invocations awaiting dispatch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Pending(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
