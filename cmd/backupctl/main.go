// Command backupctl is a command line client for the backup server API.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vaultline/backupsdk/internal/must"
	"github.com/vaultline/backupsdk/internal/version"
	"github.com/vaultline/backupsdk/pkg/backupapi"
)

// Options contains the options you can set from the CLI.
type Options struct {
	ConfigFile string
	LogBody    bool
	Password   string
	Server     string
	Username   string
	Verbose    bool
}

// environment contains the process environment.
type environment struct {
	getenv func(key string) string
	stderr io.Writer
	stdout io.Writer
}

// main is the main function of backupctl.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	env := &environment{
		getenv: os.Getenv,
		stderr: os.Stderr,
		stdout: os.Stdout,
	}
	code := run(ctx, env, os.Args[1:])
	stop()
	os.Exit(code)
}

// run runs backupctl with the given arguments and returns the exit code.
func run(ctx context.Context, env *environment, args []string) int {
	rootCmd := newRootCommand(env)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(env.stdout)
	rootCmd.SetErr(env.stderr)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		reportError(env.stderr, err)
		return 1
	}
	return 0
}

// reportError prints err, using red for errors returned by the server.
func reportError(w io.Writer, err error) {
	var apiErr *backupapi.APIError
	if errors.As(err, &apiErr) {
		color.New(color.FgRed).Fprintf(w, "backupctl: server error %d: %s\n", apiErr.Status, apiErr.Message)
		return
	}
	must.Fprintf(w, "backupctl: %s\n", err.Error())
}

// newRootCommand creates the backupctl command and its subcommands.
func newRootCommand(env *environment) *cobra.Command {
	var globalOptions Options
	rootCmd := &cobra.Command{
		Use:           "backupctl",
		Short:         "backupctl manages a backup server",
		Args:          cobra.NoArgs,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetVersionTemplate("{{ .Version }}\n")
	flags := rootCmd.PersistentFlags()

	flags.StringVarP(
		&globalOptions.ConfigFile,
		"config",
		"c",
		"",
		"path of the config file (default: \"$HOME/.config/backupctl/config.hujson\")",
	)

	flags.BoolVar(
		&globalOptions.LogBody,
		"log-body",
		false,
		"log request and response bodies with secrets scrubbed (requires --verbose)",
	)

	flags.StringVar(
		&globalOptions.Password,
		"password",
		"",
		"password of the administrator (overrides BACKUPCTL_PASSWORD)",
	)

	flags.StringVarP(
		&globalOptions.Server,
		"server",
		"s",
		"",
		"URL of the backup server (overrides BACKUPCTL_SERVER)",
	)

	flags.StringVarP(
		&globalOptions.Username,
		"username",
		"u",
		"",
		"username of the administrator (overrides BACKUPCTL_USERNAME)",
	)

	flags.BoolVarP(
		&globalOptions.Verbose,
		"verbose",
		"v",
		false,
		"increase verbosity level",
	)

	registerConfig(rootCmd, env, &globalOptions)
	registerVersion(rootCmd, env, &globalOptions)
	registerUsers(rootCmd, env, &globalOptions)
	registerJobs(rootCmd, env, &globalOptions)
	registerDevices(rootCmd, env, &globalOptions)
	registerLogs(rootCmd, env, &globalOptions)
	registerPolicies(rootCmd, env, &globalOptions)
	registerEvents(rootCmd, env, &globalOptions)

	return rootCmd
}
