package main

import (
	"github.com/spf13/cobra"
)

// registerUsers registers the users subcommand.
func registerUsers(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manages user accounts",
	}
	rootCmd.AddCommand(usersCmd)

	var full bool
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists the users",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			if full {
				users, err := sess.client.AdminListUsersFull(sess.ctx)
				if err != nil {
					return err
				}
				return printJSON(sess.env.stdout, users)
			}
			usernames, err := sess.client.AdminListUsers(sess.ctx)
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, usernames)
		}),
	}
	listCmd.Flags().BoolVar(&full, "full", false, "print the whole profile of each user")
	usersCmd.AddCommand(listCmd)

	usersCmd.AddCommand(&cobra.Command{
		Use:   "get NAME",
		Short: "Shows the profile of a user",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			profile, err := sess.client.AdminGetUserProfile(sess.ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, profile)
		}),
	})

	var requirePasswordChange bool
	addCmd := &cobra.Command{
		Use:   "add NAME PASSWORD",
		Short: "Creates a user",
		Args:  cobra.ExactArgs(2),
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			resp, err := sess.client.AdminAddUser(sess.ctx, args[0], args[1], nil, &requirePasswordChange)
			if err != nil {
				return err
			}
			sess.logger.Infof("created user %s", args[0])
			return printJSON(sess.env.stdout, resp)
		}),
	}
	addCmd.Flags().BoolVar(&requirePasswordChange, "require-password-change", false,
		"force the user to change password at the next login")
	usersCmd.AddCommand(addCmd)

	usersCmd.AddCommand(&cobra.Command{
		Use:   "delete NAME",
		Short: "Deletes a user",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			resp, err := sess.client.AdminDeleteUser(sess.ctx, args[0], nil)
			if err != nil {
				return err
			}
			sess.logger.Infof("deleted user %s", args[0])
			return printJSON(sess.env.stdout, resp)
		}),
	})
}
