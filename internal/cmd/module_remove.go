package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/uskit/cli/internal/errors"
	"github.com/uskit/cli/internal/layout"
	"github.com/uskit/cli/internal/output"
	"github.com/uskit/cli/internal/scaffold"
	"github.com/uskit/cli/internal/templates"
)

// NewModuleRemoveCmd creates the module remove command.
func NewModuleRemoveCmd(cfg *GlobalConfig) *cobra.Command {
	var oldFlag bool

	c := &cobra.Command{
		Use:   "remove <name> [location]",
		Short: "Remove a generated module",
		Long: `Remove a generated module: its files, its aggregator entries, and, in
the new layout, its package registration. Removal is idempotent; pieces
that are already gone are skipped.

Examples:
  # Remove a module from both sides
  uskit module remove contactUs

  # Remove only the server part
  uskit module remove billing server`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			return runModuleRemove(cfg, args, oldFlag)
		},
	}

	c.Flags().BoolVar(&oldFlag, "old", false, "Use the legacy per-package layout")

	return c
}

func runModuleRemove(cfg *GlobalConfig, args []string, old bool) error {
	name := args[0]

	location := cfg.Config.DefaultLocation
	if len(args) > 1 {
		location = args[1]
	}

	opts := layout.Options{Old: old || cfg.Config.Legacy}
	s := scaffold.New(
		layout.New(cfg.Config.BasePath),
		templates.NewMaterializer(cfg.Config.TemplatesRoot(), false),
		opts,
	)

	for _, loc := range resolveLocations(location) {
		result, err := s.Remove(name, loc)
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		}

		for _, path := range result.Removed {
			output.FileStatus(output.StatusRemoved, path)
		}
	}

	output.Summary(fmt.Sprintf("Module %s removed", output.StyleNoun.Render(name)))
	return nil
}
