package main

//
// Settings and API client
//

import (
	"context"
	"io/fs"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vaultline/backupsdk/config"
	"github.com/vaultline/backupsdk/internal/log/handlers/cli"
	"github.com/vaultline/backupsdk/pkg/backupapi"
)

// Environment variables overriding the config file.
const (
	envServer   = "BACKUPCTL_SERVER"
	envUsername = "BACKUPCTL_USERNAME"
	envPassword = "BACKUPCTL_PASSWORD"
)

// errNoServer indicates that we don't know which server to use.
var errNoServer = errors.New("no server configured: use --server, " + envServer + ", or the config file")

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// configPath returns the config file path and whether the user chose it.
func (o *Options) configPath(env *environment) (string, bool) {
	if o.ConfigFile != "" {
		return o.ConfigFile, true
	}
	return config.DefaultPath(env.getenv("HOME")), false
}

// resolve merges flags, environment, and config file, in this order of precedence. A
// missing config file is fine when the user did not choose it or when mayCreate is true.
func (o *Options) resolve(env *environment, mayCreate bool) (*config.Config, error) {
	path, explicit := o.configPath(env)
	cfg, err := config.ReadConfig(path)
	switch {
	case err == nil:
	case (!explicit || mayCreate) && errors.Is(err, fs.ErrNotExist):
		cfg = config.New(path)
	default:
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	cfg.Server = firstNonEmpty(o.Server, env.getenv(envServer), cfg.Server)
	cfg.Username = firstNonEmpty(o.Username, env.getenv(envUsername), cfg.Username)
	cfg.Password = firstNonEmpty(o.Password, env.getenv(envPassword), cfg.Password)
	cfg.Advanced.LogBody = o.LogBody || cfg.Advanced.LogBody
	return cfg, nil
}

// session contains what subcommands need to call the server.
type session struct {
	client *backupapi.Client
	ctx    context.Context
	env    *environment
	logger *log.Logger
}

// newLogger creates the logger writing on the standard error.
func newLogger(env *environment, verbose bool) *log.Logger {
	logger := &log.Logger{Handler: cli.New(env.stderr), Level: log.InfoLevel}
	if verbose {
		logger.Level = log.DebugLevel
	}
	return logger
}

func newSession(ctx context.Context, env *environment, options *Options) (*session, error) {
	cfg, err := options.resolve(env, false)
	if err != nil {
		return nil, err
	}
	if cfg.Server == "" {
		return nil, errNoServer
	}
	logger := newLogger(env, options.Verbose)
	client, err := backupapi.NewClient(cfg.Server, cfg.Username, cfg.Password, &backupapi.Config{
		Logger:    logger,
		UserAgent: cfg.Advanced.UserAgent,
		LogBody:   cfg.Advanced.LogBody,
	})
	if err != nil {
		return nil, err
	}
	logger.Debugf("backupctl: using %s as %s", cfg.Server, cfg.Username)
	sess := &session{
		client: client,
		ctx:    ctx,
		env:    env,
		logger: logger,
	}
	return sess, nil
}

// withSession adapts fn to be the RunE of a subcommand.
func withSession(env *environment, options *Options,
	fn func(sess *session, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		sess, err := newSession(cmd.Context(), env, options)
		if err != nil {
			return err
		}
		return fn(sess, args)
	}
}
