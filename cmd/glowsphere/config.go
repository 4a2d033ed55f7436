package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/glowsphere/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the glowsphere config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config",
	Long: `Writes the built-in defaults as YAML to the path given by --config,
or to the per-user config directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Default()
		path := flags.Config
		var err error
		if path == "" {
			path, err = cfg.Save()
		} else {
			err = cfg.SaveTo(path)
		}
		if err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the default config location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.DefaultPath())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd, configPathCmd)
}
