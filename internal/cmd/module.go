package cmd

import (
	"github.com/spf13/cobra"
)

// NewModuleCmd creates the module command group.
func NewModuleCmd(cfg *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "module",
		Short: "Module operations",
		Long:  `Create and remove starter-kit feature modules.`,
	}

	cmd.AddCommand(NewModuleAddCmd(cfg))
	cmd.AddCommand(NewModuleRemoveCmd(cfg))
	cmd.AddCommand(NewModuleTemplatesCmd(cfg))

	return cmd
}

// resolveLocations expands the "both" location tag into the client and
// server locations.
func resolveLocations(location string) []string {
	if location == "both" {
		return []string{"client", "server"}
	}
	return []string{location}
}
