package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vaultline/backupsdk/internal/apijson"
	"github.com/vaultline/backupsdk/internal/must"
	"github.com/vaultline/backupsdk/pkg/backupapi/apimodel"
)

// registerEvents registers the events subcommand.
func registerEvents(rootCmd *cobra.Command, env *environment, globalOptions *Options) {
	var maxEvents int
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "Prints the live events as JSON lines until interrupted",
		Args:  cobra.NoArgs,
		RunE: withSession(env, globalOptions, func(sess *session, args []string) error {
			var count int
			err := sess.client.StreamEvents(sess.ctx, func(ev *apimodel.StreamableEvent) error {
				data, err := apijson.Marshal(ev)
				if err != nil {
					return err
				}
				must.Fprintf(sess.env.stdout, "%s\n", string(data))
				if count++; maxEvents > 0 && count >= maxEvents {
					return errEnoughEvents
				}
				return nil
			})
			if errors.Is(err, errEnoughEvents) || errors.Is(err, context.Canceled) {
				sess.logger.Debugf("backupctl: received %d events", count)
				return nil
			}
			return err
		}),
	}
	eventsCmd.Flags().IntVarP(&maxEvents, "max-events", "n", 0, "stop after receiving this number of events")
	rootCmd.AddCommand(eventsCmd)
}

// errEnoughEvents stops the event stream after --max-events events.
var errEnoughEvents = errors.New("enough events")
