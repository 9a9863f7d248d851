package app

import (
	"log/slog"
	"net/http"
	"os"

	"anylist"
	"anylist/internal/store"
)

// Wire bundles the store, HTTP client and client options for the CLI.
type Wire struct {
	Config Config
	Tokens *store.TokenStore
	HTTP   *http.Client
	Logger *slog.Logger
}

// NewWire constructs the dependency graph from cfg, creating the home
// directory when needed.
func NewWire(cfg Config, logger *slog.Logger) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}
	return &Wire{
		Config: cfg,
		Tokens: store.NewTokenStore(cfg.Home),
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Logger: logger,
	}, nil
}

// ClientOptions returns the anylist options carrying this wiring.
func (w *Wire) ClientOptions() []anylist.Option {
	opts := []anylist.Option{
		anylist.WithHTTPClient(w.HTTP),
		anylist.WithLogger(w.Logger),
	}
	if w.Config.BaseURL != "" {
		opts = append(opts, anylist.WithBaseURL(w.Config.BaseURL))
	}
	return opts
}

// Restore rebuilds a client from the saved tokens. ok is false when no
// session has been saved yet; no network call is made either way.
func (w *Wire) Restore(passphrase string) (*anylist.Client, bool, error) {
	tokens, ok, err := w.Tokens.Load(passphrase)
	if err != nil || !ok {
		return nil, false, err
	}
	client, err := anylist.FromTokens(tokens, w.ClientOptions()...)
	if err != nil {
		return nil, false, err
	}
	return client, true, nil
}
