package main

import (
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/vaultline/backupsdk/internal/version"
)

// registerVersion registers the version subcommand.
func registerVersion(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	subCmd := &cobra.Command{
		Use:   "version",
		Short: "Shows the version of the server",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			info, err := sess.client.AdminMetaVersion(sess.ctx)
			if err != nil {
				return err
			}
			sess.logger.WithFields(log.Fields{
				"type":        "table",
				"Server":      sess.client.ServerAddress(),
				"Version":     info.Version,
				"Codename":    info.VersionCodename,
				"CurrentTime": time.Unix(info.CurrentTime, 0).UTC().Format(time.RFC3339),
				"SDK":         version.Version,
			}).Info("")
			return printJSON(sess.env.stdout, info)
		}),
	}
	rootCmd.AddCommand(subCmd)
}
