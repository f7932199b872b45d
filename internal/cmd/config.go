package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/uskit/cli/internal/config"
	oerrors "github.com/uskit/cli/internal/errors"
	"github.com/uskit/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(cfg *GlobalConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration operations",
	}

	cmd.AddCommand(newConfigShowCmd(cfg))
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// newConfigShowCmd prints the resolved configuration as YAML.
func newConfigShowCmd(cfg *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(c *cobra.Command, _ []string) error {
			content, err := yaml.Marshal(cfg.Config)
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			output.Print(string(content))
			return nil
		},
	}
}

// newConfigInitCmd writes a default config file.
func newConfigInitCmd() *cobra.Command {
	var pathFlag string

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(c *cobra.Command, _ []string) error {
			path := pathFlag
			if path == "" {
				var err error
				path, err = config.GetConfigFile()
				if err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil {
				return oerrors.NewExitError(
					oerrors.NewExistsError(
						fmt.Sprintf("config file %s already exists", path),
						path,
						"Remove it first or pass --path to write elsewhere.",
					),
					oerrors.ExitValidationError,
				)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
			}

			defaults := &config.Config{}
			defaults.ApplyDefaults()
			content, err := yaml.Marshal(defaults)
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}

			if err := os.WriteFile(path, content, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			output.Summary("Wrote " + output.StyleNoun.Render(path))
			return nil
		},
	}

	c.Flags().StringVar(&pathFlag, "path", "", "Config file path (defaults to ~/.uskit/config.yaml)")

	return c
}
