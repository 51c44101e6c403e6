package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// searchOptions contains the options of jobs search.
type searchOptions struct {
	Count    bool
	Field    string
	Operator string
	Value    string
}

// clause returns the search clause. The field may omit the BackupJobDetail. prefix.
func (so *searchOptions) clause() (apimodel.SearchClause, error) {
	if so.Field == "" || so.Operator == "" {
		return apimodel.SearchClause{}, errors.New("jobs search: --field and --operator are mandatory")
	}
	field := so.Field
	if !strings.HasPrefix(field, jobFieldPrefix) {
		field = jobFieldPrefix + field
	}
	clause := apimodel.SearchClause{
		ClauseType:   apimodel.SearchClauseRule,
		RuleField:    field,
		RuleOperator: so.Operator,
		RuleValue:    so.Value,
	}
	return clause, nil
}

// jobFieldPrefix prefixes the fields of job search rules.
const jobFieldPrefix = "BackupJobDetail."

// registerJobs registers the jobs subcommand.
func registerJobs(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	jobsCmd := &cobra.Command{
		Use:   "jobs",
		Short: "Inspects backup jobs",
	}
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.AddCommand(&cobra.Command{
		Use:   "recent",
		Short: "Lists the running jobs and the jobs completed recently",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			jobs, err := sess.client.AdminGetJobsRecent(sess.ctx)
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, jobs)
		}),
	})

	jobsCmd.AddCommand(&cobra.Command{
		Use:   "for-user NAME",
		Short: "Lists the jobs of a user",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			jobs, err := sess.client.AdminGetJobsForUser(sess.ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, jobs)
		}),
	})

	jobsCmd.AddCommand(&cobra.Command{
		Use:   "get ID",
		Short: "Shows a job",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			job, err := sess.client.AdminGetJobProperties(sess.ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, job)
		}),
	})

	jobsCmd.AddCommand(&cobra.Command{
		Use:   "log ID",
		Short: "Prints the log of a job",
		Args:  cobra.ExactArgs(1),
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			text, err := sess.client.AdminGetJobLog(sess.ctx, args[0])
			if err != nil {
				return err
			}
			return printText(sess.env.stdout, text)
		}),
	})

	var search searchOptions
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Searches jobs matching a rule",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			clause, err := search.clause()
			if err != nil {
				return err
			}
			if search.Count {
				resp, err := sess.client.AdminCountJobsForCustomSearch(sess.ctx, clause)
				if err != nil {
					return err
				}
				return printJSON(sess.env.stdout, resp.Count)
			}
			jobs, err := sess.client.AdminGetJobsForCustomSearch(sess.ctx, clause)
			if err != nil {
				return err
			}
			return printJSON(sess.env.stdout, jobs)
		}),
	}
	flags := searchCmd.Flags()
	flags.BoolVar(&search.Count, "count", false, "only print the number of matching jobs")
	flags.StringVar(&search.Field, "field", "", "job field to match (e.g., Username)")
	flags.StringVar(&search.Operator, "operator", "", "rule operator (e.g., str_eq or int_gt)")
	flags.StringVar(&search.Value, "value", "", "value to compare with")
	jobsCmd.AddCommand(searchCmd)
}
