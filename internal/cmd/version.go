package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uskit/cli/internal/output"
	"github.com/uskit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(c *cobra.Command, _ []string) {
			output.Println(version.GetInfo().String())
		},
	}
}
