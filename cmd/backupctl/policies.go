package main

import "github.com/spf13/cobra"

// registerPolicies registers the policies subcommand.
func registerPolicies(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	policiesCmd := &cobra.Command{
		Use:   "policies",
		Short: "Inspects the group policies",
	}
	rootCmd.AddCommand(policiesCmd)

	policiesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Lists the policy descriptions keyed by policy ID",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			policies, err := sess.client.AdminPoliciesList(sess.ctx)
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, policies)
		}),
	})
}
