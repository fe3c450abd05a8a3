// Package app assembles the client: config, credential store, HTTP
// client and session controller, in that order.
package app

import (
	"context"

	"github.com/btechwala999/Ignitia-client/internal/api"
	"github.com/btechwala999/Ignitia-client/internal/config"
	"github.com/btechwala999/Ignitia-client/internal/logger"
	"github.com/btechwala999/Ignitia-client/internal/session"
	"github.com/btechwala999/Ignitia-client/internal/store"
)

type App struct {
	Config  config.Config
	Client  *api.Client
	Store   store.Store
	Session *session.Controller

	cleanup func() error
}

func New(cfg config.Config) (*App, error) {
	st, cleanup, err := setupStore(cfg)
	if err != nil {
		return nil, err
	}

	client := api.New(api.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.HTTPTimeout,
		// The 401 hook only ever clears the stored token, never sets
		// it; the controller decides what happens to session state.
		OnUnauthorized: func() {
			if err := st.SetToken(context.Background(), ""); err != nil {
				logger.Warn("failed to purge rejected token", map[string]any{
					"error": err.Error(),
				})
			}
		},
	})

	return &App{
		Config:  cfg,
		Client:  client,
		Store:   st,
		Session: session.New(client, st),
		cleanup: cleanup,
	}, nil
}

func (a *App) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}

func setupStore(cfg config.Config) (store.Store, func() error, error) {
	if cfg.RedisAddr != "" {
		client, err := store.DialRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using redis credential store", map[string]any{
			"addr": cfg.RedisAddr,
		})
		return store.NewRedisStore(client), client.Close, nil
	}

	st, err := store.NewFileStore(cfg.StateFile)
	if err != nil {
		return nil, nil, err
	}
	return st, nil, nil
}
