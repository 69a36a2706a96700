package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Check for PyInstaller and install it when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Setup(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
