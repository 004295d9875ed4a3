package commands

import (
	"github.com/spf13/cobra"

	nano "github.com/go-i2p/go-nano"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the library version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			printLine(cmd, nano.CurrentVersion)
		},
	}
}
