package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bump/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Version: %s\n", build.Version)
		},
	}
}
