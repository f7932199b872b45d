// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uskit/cli/internal/config"
	"github.com/uskit/cli/internal/output"
)

// GlobalConfig holds CLI-wide configuration resolved during
// PersistentPreRunE. It is populated once at startup and passed explicitly
// into every sub-command constructor.
type GlobalConfig struct {
	// Config is the loaded configuration with defaults applied.
	Config *config.Config

	// ConfigPath is the --config flag value, if any.
	ConfigPath string

	// Verbose enables debug logging.
	Verbose bool
}

// NewRootCmd creates the root command for the uskit CLI.
func NewRootCmd() *cobra.Command {
	cfg := &GlobalConfig{}

	var (
		configFlag  string
		baseFlag    string
		verboseFlag bool
	)

	rootCmd := &cobra.Command{
		Use:   "uskit",
		Short: "Starter-kit module scaffolding",
		Long: `uskit scaffolds feature modules for a starter-kit monorepo.

It copies a template tree for the target location (client, server, or
both), renames files and placeholder tokens after the module name, and
wires the module into the package aggregator files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			output.SetupLogging(verboseFlag)

			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			if baseFlag != "" {
				loaded.BasePath = baseFlag
			}

			cfg.Config = loaded
			cfg.ConfigPath = configFlag
			cfg.Verbose = verboseFlag

			output.Debug("configuration resolved",
				"basePath", loaded.BasePath,
				"templatesDir", loaded.TemplatesDir,
				"defaultLocation", loaded.DefaultLocation,
				"legacy", loaded.Legacy,
			)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: USKIT_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&baseFlag, "base", "b", "", "Workspace base directory (env: USKIT_BASE_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewModuleCmd(cfg))
	rootCmd.AddCommand(NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
