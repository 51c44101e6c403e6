package main

import (
	"github.com/spf13/cobra"
	"github.com/vaultline/backupsdk/config"
)

// registerConfig registers the config subcommand.
func registerConfig(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manages the config file",
	}
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Saves the current server and credentials into the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := globalOptions.resolve(env, true)
			if err != nil {
				return err
			}
			if cfg.Server == "" {
				return errNoServer
			}
			cfg.Version = config.ConfigVersion
			if err := cfg.Write(); err != nil {
				return err
			}
			newLogger(env, globalOptions.Verbose).Infof("written %s", cfg.Path())
			return nil
		},
	})
}
