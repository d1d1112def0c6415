package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/herald/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	var root string
	var logMode string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the working tree and dispatch changes until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Root:    root,
				LogMode: logMode,
			})
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Watch root (defaults to the configured root)")
	cmd.Flags().StringVar(&logMode, "log", "auto", "Log output mode: auto, pretty, or json")

	return cmd
}
