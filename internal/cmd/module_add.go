package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	oerrors "github.com/uskit/cli/internal/errors"
	"github.com/uskit/cli/internal/layout"
	"github.com/uskit/cli/internal/output"
	"github.com/uskit/cli/internal/scaffold"
	"github.com/uskit/cli/internal/templates"
)

// NewModuleAddCmd creates the module add command.
func NewModuleAddCmd(cfg *GlobalConfig) *cobra.Command {
	var (
		oldFlag       bool
		forceFlag     bool
		templatesFlag string
	)

	c := &cobra.Command{
		Use:   "add <name> [location]",
		Short: "Create a new module from a template",
		Long: `Create a new feature module from the template tree for a location.

Locations:
  client  Client-side module
  server  Server-side module
  both    Client and server modules (default)

Examples:
  # Scaffold a module on both sides
  uskit module add contactUs

  # Scaffold a server-only module
  uskit module add billing server

  # Use the legacy per-package layout
  uskit module add billing server --old`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(c *cobra.Command, args []string) error {
			return runModuleAdd(c.Context(), cfg, args, oldFlag, forceFlag, templatesFlag)
		},
	}

	c.Flags().BoolVar(&oldFlag, "old", false, "Use the legacy per-package layout")
	c.Flags().BoolVar(&forceFlag, "force", false, "Overwrite existing destination files")
	c.Flags().StringVarP(&templatesFlag, "templates", "t", "", "Templates root (defaults to <base>/tools/templates)")

	return c
}

func runModuleAdd(ctx context.Context, cfg *GlobalConfig, args []string, old, force bool, templatesRoot string) error {
	name := args[0]

	location := cfg.Config.DefaultLocation
	if len(args) > 1 {
		location = args[1]
	}

	if templatesRoot == "" {
		templatesRoot = cfg.Config.TemplatesRoot()
	}

	opts := layout.Options{Old: old || cfg.Config.Legacy}
	s := scaffold.New(
		layout.New(cfg.Config.BasePath),
		templates.NewMaterializer(templatesRoot, force),
		opts,
	)

	for _, loc := range resolveLocations(location) {
		var result *scaffold.AddResult

		err := output.RunWithSpinner(ctx, func() error {
			var addErr error
			result, addErr = s.Add(name, loc)
			return addErr
		}, output.WithTitle(fmt.Sprintf("Scaffolding %s (%s)...", name, loc)))
		if err != nil {
			return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
		}

		for _, f := range result.Files {
			output.FileStatus(output.StatusCreated, filepath.Join(result.Dest, f))
		}
		output.FileStatus(output.StatusPatched, result.Aggregator)
		output.Summary(fmt.Sprintf("Module %s created in %s",
			output.StyleNoun.Render(name), output.StyleNoun.Render(result.Dest)))
	}

	return nil
}
