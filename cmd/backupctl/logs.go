package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// registerLogs registers the logs subcommand.
func registerLogs(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Reads the server logs",
	}
	rootCmd.AddCommand(logsCmd)

	logsCmd.AddCommand(&cobra.Command{
		Use:   "days",
		Short: "Lists the days for which there are logs",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			days, err := sess.client.AdminMetaListAvailableLogDays(sess.ctx)
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, days)
		}),
	})

	logsCmd.AddCommand(&cobra.Command{
		Use:   "read DAY",
		Short: "Prints the logs of a day (e.g., 20240131)",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			day, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.Wrap(err, "logs read: invalid day")
			}
			text, err := sess.client.AdminMetaReadLogs(sess.ctx, day)
			if err != nil {
				return err
			}
			return printText(sess.env.stdout, text)
		}),
	})
}
