package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/create-zk-app/cza/internal/config"
	oerrors "github.com/create-zk-app/cza/internal/errors"
	"github.com/create-zk-app/cza/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage persistent settings",
		Long: `Manage the persistent settings of cza.

Settings live in a TOML file (see 'cza config path') and are addressed
by dotted keys like user.author or post_generation.open_editor. Running
'cza config' without a subcommand lists every key.`,
		Args: cobra.NoArgs,
		RunE: runConfigList,
	}

	// Add subcommands
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigResetCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fatal(err)
			}

			key := args[0]
			if !slices.Contains(config.Keys(), key) {
				return fatal(unknownKeyError(key))
			}

			value, ok := cfg.Get(key)
			if !ok {
				value = config.NotSet
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set one configuration value",
		Long: `Set one configuration value and persist it.

Boolean keys accept exactly "true" or "false". The file is only
written after the value parsed successfully.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := newStore()
			cfg, err := store.Load()
			if err != nil {
				return fatal(err)
			}
			applyConfig(cfg)

			key, value := args[0], args[1]
			if err := cfg.Set(key, value); err != nil {
				if errors.Is(err, config.ErrUnknownKey) {
					return fatal(unknownKeyError(key))
				}
				return fatal(&oerrors.DetailError{
					Type:    "config error",
					Message: fmt.Sprintf("cannot set %s: %v", key, err),
					Cause:   err,
				})
			}

			if err := store.Save(cfg); err != nil {
				return fatal(err)
			}

			output.Success(fmt.Sprintf("Set %s = %s", key, value))
			return nil
		},
	}
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key and value",
		Args:  cobra.NoArgs,
		RunE:  runConfigList,
	}
}

func runConfigList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fatal(err)
	}

	output.Header("Configuration")
	for _, kv := range cfg.List() {
		output.KeyValue(kv.Key, kv.Value)
	}

	output.Println("")
	output.Hint("File: " + newStore().Path())
	return nil
}

func newConfigResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the configuration to defaults",
		Long: `Reset every configuration key to its default value.

The existing file is overwritten, so this also repairs a corrupt
configuration.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			store := newStore()
			if err := store.Save(config.DefaultConfig()); err != nil {
				return fatal(err)
			}

			output.Success("Configuration reset to defaults")
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), newStore().Path())
			return nil
		},
	}
}

func unknownKeyError(key string) error {
	return &oerrors.DetailError{
		Type:    "config error",
		Message: fmt.Sprintf("unknown configuration key %q", key),
		Hint:    "Use 'cza config list' to see available keys.",
		Cause:   config.ErrUnknownKey,
	}
}
