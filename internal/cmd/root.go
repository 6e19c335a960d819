// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/create-zk-app/cza/internal/config"
	"github.com/create-zk-app/cza/internal/output"
	"github.com/create-zk-app/cza/internal/version"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the base command for the cza CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cza",
		Short: "Create zero-knowledge applications from templates",
		Long: `cza scaffolds zero-knowledge application projects from curated templates.

It provides commands to:
  - Generate a project from a template (new)
  - Browse the available templates (list)
  - Manage persistent settings (config)
  - Update the tool itself (update)`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: CZA_CONFIG)")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	// Add subcommands
	cmd.AddCommand(NewNewCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewConfigCmd())
	cmd.AddCommand(NewUpdateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// initializeGlobals sets up logging based on global flags.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	info := version.GetInfo()
	output.Debug("cza started", "version", info.Version, "platform", info.Platform)

	return nil
}

// newStore returns the settings store honoring the --config flag.
func newStore() *config.Store {
	if flagConfig != "" {
		return config.NewStoreAt(flagConfig)
	}
	return config.NewStore()
}

// loadConfig loads settings and applies their display and verbosity
// preferences to the process.
func loadConfig() (*config.Config, error) {
	cfg, err := newStore().Load()
	if err != nil {
		return nil, err
	}
	applyConfig(cfg)
	return cfg, nil
}

func applyConfig(cfg *config.Config) {
	if cfg.Development.Verbose && !flagVerbose {
		output.SetupLogging(true)
	}
	output.SetColor(cfg.Development.Color && output.IsTTY())
}
