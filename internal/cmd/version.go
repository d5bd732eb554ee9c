package cmd

import (
	"github.com/spf13/cobra"

	"github.com/scaffoldkit/cli/internal/version"
)

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.GetInfo().String())
		},
	}
}
