package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/buildflow/client/internal/authctx"
	"github.com/buildflow/client/internal/core/domain"
	"github.com/buildflow/client/internal/core/ports"
	"github.com/buildflow/client/internal/core/session"
	"github.com/buildflow/client/internal/gateway"
	"github.com/buildflow/client/internal/pkg/config"
	"github.com/buildflow/client/internal/routing"
	"github.com/buildflow/client/internal/storage"
	"github.com/buildflow/client/pkg/logger"
)

// app holds the wired client: config, logger, durable storage, gateway,
// session store and navigator. Built once per invocation in bootstrap.
type app struct {
	cfg      *config.Config
	log      zerolog.Logger
	sessions *session.Store
	api      *gateway.Client
	nav      ports.Navigator
}

// bootstrap wires the client and, for every command except the stub
// server, runs the one startup auth check before any guard decision.
func (a *app) bootstrap(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: isatty.IsTerminal(os.Stderr.Fd()),
	})

	creds, err := storage.NewFileStore(cfg.SessionFile)
	if err != nil {
		return err
	}

	a.nav = &printNavigator{out: cmd.OutOrStdout()}
	a.api = gateway.New(gateway.Options{
		BaseURL: cfg.APIBaseURL,
		Store:   creds,
		Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		Logger:  a.log,
	})
	a.sessions = session.NewStore(a.api, creds, a.log)

	// Global 401 policy: one session reset, one redirect, no matter how
	// many calls were rejected.
	a.api.SetUnauthorizedHandler(func() {
		if a.sessions.HandleUnauthorized() {
			a.nav.NavigateTo(domain.LoginRoute)
		}
	})

	authctx.Init(a.sessions)

	if cmd.Name() != "stub" {
		authctx.Use().CheckAuth(cmd.Context())
	}
	return nil
}

func (a *app) teardown() {
	authctx.Teardown()
}

// requireRoute runs the route guard for the view a command renders.
func (a *app) requireRoute(route string) error {
	sess := authctx.Use().Current()
	access := routing.Decide(sess, route)
	switch access.Decision {
	case routing.DecisionAllow:
		return nil
	case routing.DecisionPending:
		return fmt.Errorf("authentication check still pending")
	case routing.DecisionRedirectLogin:
		a.nav.NavigateTo(access.Redirect)
		return fmt.Errorf("not logged in (run \"buildflow login\")")
	default:
		a.nav.NavigateTo(access.Redirect)
		return fmt.Errorf("your role has no access to %s", route)
	}
}

// dashboardRoute resolves the current user's landing route; commands like
// "dashboard" guard against it rather than a fixed path.
func (a *app) dashboardRoute() (string, error) {
	role, ok := authctx.Use().Current().Role()
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return role.DashboardRoute(), nil
}
