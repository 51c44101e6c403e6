package main

import "github.com/spf13/cobra"

// registerDevices registers the devices subcommand.
func registerDevices(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	devicesCmd := &cobra.Command{
		Use:   "devices",
		Short: "Inspects the devices connected to the server",
	}
	rootCmd.AddCommand(devicesCmd)

	var targetUser string
	onlineCmd := &cobra.Command{
		Use:   "online",
		Short: "Lists the devices connected right now",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			var filter *string
			if targetUser != "" {
				filter = &targetUser
			}
			connections, err := sess.client.AdminDispatcherListActive(sess.ctx, filter)
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, connections)
		}),
	}
	onlineCmd.Flags().StringVar(&targetUser, "user", "", "only list the devices of this user")
	devicesCmd.AddCommand(onlineCmd)
}
