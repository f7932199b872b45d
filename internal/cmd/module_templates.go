package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/uskit/cli/internal/errors"
	"github.com/uskit/cli/internal/output"
	"github.com/uskit/cli/internal/templates"
)

// NewModuleTemplatesCmd creates the module templates command.
func NewModuleTemplatesCmd(cfg *GlobalConfig) *cobra.Command {
	var templatesFlag string

	c := &cobra.Command{
		Use:   "templates",
		Short: "List available template locations",
		RunE: func(c *cobra.Command, _ []string) error {
			root := templatesFlag
			if root == "" {
				root = cfg.Config.TemplatesRoot()
			}

			locations, err := templates.ListLocations(root)
			if err != nil {
				return oerrors.NewExitError(err, oerrors.ExitNotFound)
			}

			if len(locations) == 0 {
				output.Println("No template locations found in " + root)
				return nil
			}

			for _, loc := range locations {
				line := output.StyleNoun.Render(loc.Location)
				if loc.Manifest.Description != "" {
					line += output.StyleDim.Render("  " + loc.Manifest.Description)
				}
				output.Println(line)
				if loc.Manifest.MinCLIVersion != "" {
					output.Println(output.StyleDim.Render(
						fmt.Sprintf("  requires CLI %s", loc.Manifest.MinCLIVersion)))
				}
			}
			return nil
		},
	}

	c.Flags().StringVarP(&templatesFlag, "templates", "t", "", "Templates root (defaults to <base>/tools/templates)")

	return c
}
