package app

import (
	"log/slog"
	"net/http"

	"github.com/trackmaster/trackmaster/internal/session"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	session    *session.Session
	httpClient *http.Client
	logger     *slog.Logger
}

// WithSession uses an existing session instead of building one from the config token
func WithSession(sess *session.Session) Option {
	return func(cfg *appConfig) {
		cfg.session = sess
	}
}

// WithHTTPClient sets the http.Client the gateway uses
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *appConfig) {
		cfg.httpClient = hc
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
