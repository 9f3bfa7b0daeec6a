package cmd

import (
	"github.com/socfin/societyctl/internal/api"
	"github.com/socfin/societyctl/internal/capability"
	"github.com/socfin/societyctl/internal/config"
	"github.com/socfin/societyctl/internal/errors"
	"github.com/socfin/societyctl/internal/guard"
	"github.com/socfin/societyctl/internal/log"
	"github.com/socfin/societyctl/internal/session"
	"github.com/socfin/societyctl/internal/society"
)

// App wires the client stack for one command invocation: config, logger,
// API client, session service and society service, in that order. The
// session service must exist before the society service so the society
// service can subscribe to authentication transitions.
type App struct {
	Config  *config.Config
	Logger  *log.Logger
	Client  *api.Client
	Session *session.Service
	Society *society.Service
}

// newApp builds the application stack from the command context
func newApp(cmdCtx *CommandContext) (*App, error) {
	cfg, err := config.Load(cmdCtx.Home)
	if err != nil {
		return nil, err
	}
	if cmdCtx.APIURL != "" {
		cfg.APIURL = cmdCtx.APIURL
	}

	logCfg := log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	}
	if cmdCtx.Verbose {
		logCfg = log.VerboseConfig()
	}
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	client := api.NewClient(cfg.APIURL)
	sess := session.NewService(session.NewStore(cfg.CredentialsPath()), client, logger)
	soc := society.NewService(society.NewStore(cfg.SocietyPath()), client, sess, logger)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Client:  client,
		Session: sess,
		Society: soc,
	}, nil
}

// requireUser fails with a typed error when no one is logged in
func requireUser(app *App) error {
	if !app.Session.Authenticated() {
		return errors.NewNotLoggedInError()
	}
	return nil
}

// requireSociety resolves the guard state and returns the selected society,
// or a typed error naming the missing precondition
func requireSociety(app *App) (*api.Society, error) {
	switch guard.Resolve(app.Session, app.Society) {
	case guard.StateLogin:
		return nil, errors.NewNotLoggedInError()
	case guard.StateSelectSociety:
		return nil, errors.NewNoSocietyError()
	}
	return app.Society.Current(), nil
}

// requireCapability checks the caller's role before hitting the backend.
// The backend enforces authorization anyway; this just fails fast with a
// clearer message.
func requireCapability(app *App, c capability.Capability, action string) (*api.Society, error) {
	soc, err := requireSociety(app)
	if err != nil {
		return nil, err
	}
	if !capability.ForRole(soc.Role).Has(c) {
		return nil, errors.NewNotAllowedError(action, soc.Role)
	}
	return soc, nil
}
