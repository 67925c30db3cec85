package main

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/nyayasetu/go-legalaid/apiclient"
	"github.com/nyayasetu/go-legalaid/internal/config"
	"github.com/nyayasetu/go-legalaid/refresh"
	"github.com/nyayasetu/go-legalaid/session"
	"github.com/nyayasetu/go-legalaid/tokenstore"
	"github.com/pkg/errors"
)

// appContext holds the wired-up client stack for one command
// invocation.
type appContext struct {
	cfg     config.Config
	api     *apiclient.Client
	manager *session.Manager
}

// newAppContext builds the full dependency chain: token store and
// session state on disk, refresh coordinator, interceptor HTTP client,
// and session manager. The manager is created last, so the client's
// session-expired hook closes over a late-bound pointer.
func newAppContext() (*appContext, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "error loading configuration")
	}

	tokens := tokenstore.NewFileStore(filepath.Join(cfg.GetDataFolder(), "tokens"))
	states := session.NewFileStateRepo(filepath.Join(cfg.GetDataFolder(), "session"))

	coordinator, err := refresh.NewCoordinator(
		tokens,
		apiclient.NewTokenExchanger(cfg.GetAPIAddress(), &http.Client{Timeout: cfg.GetRequestTimeout()}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "error creating refresh coordinator")
	}

	var manager *session.Manager
	api, err := apiclient.NewClient(
		cfg.GetAPIAddress(),
		tokens,
		apiclient.WithRefresher(coordinator),
		apiclient.WithHTTPClient(&http.Client{Timeout: cfg.GetRequestTimeout()}),
		apiclient.WithAllowInsecure(cfg.GetAllowInsecure()),
		apiclient.WithSessionExpiredHandler(func() {
			if manager != nil {
				manager.HandleSessionExpired()
			}
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "error creating API client")
	}

	manager, err = session.NewManager(
		api,
		tokens,
		states,
		session.WithLoginRedirect(func() {
			fmt.Println("Your session has expired. Please run `legalaid login` to continue.")
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "error creating session manager")
	}

	return &appContext{cfg: cfg, api: api, manager: manager}, nil
}

// requireAuth rehydrates the persisted session and fails when the
// user is not logged in.
func (a *appContext) requireAuth() error {
	ok, err := a.manager.CheckAuth()
	if err != nil {
		return errors.Wrap(err, "error checking authentication state")
	}
	if !ok {
		return errors.New("not logged in; please use `legalaid login` to continue")
	}
	return nil
}
