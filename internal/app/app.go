package app

import (
	"keywire/internal/domain"
	"keywire/internal/relay"
	sessionsvc "keywire/internal/services/session"
	"keywire/internal/store"
)

// App bundles the client's stores, services, and server client for the CLI.
type App struct {
	Store    domain.SessionStore
	Relay    domain.RelayClient
	Sessions domain.SessionService
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	sessionStore := store.NewSessionFileStore(cfg.Home)
	rc := relay.NewClient(cfg.RelayURL, cfg.HTTP)
	sessions := sessionsvc.New(sessionStore, rc, cfg.RelayURL)

	return &App{
		Store:    sessionStore,
		Relay:    rc,
		Sessions: sessions,
	}
}
