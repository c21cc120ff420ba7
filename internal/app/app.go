package app

import (
	"fmt"
	"log/slog"

	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/gateway"
	taskservice "github.com/trackmaster/trackmaster/internal/services/task"
	"github.com/trackmaster/trackmaster/internal/session"
)

// App holds all application services and provides dependency injection.
// The TUI and the CLI both start from one of these.
type App struct {
	Config  *config.Config
	Session *session.Session
	Logger  *slog.Logger

	// Gateway is the REST client; sprint and group reads go straight through it
	Gateway *gateway.Client

	// TaskService validates and forwards task writes to the gateway
	TaskService taskservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	sess := ac.session
	if sess == nil {
		var err error
		sess, err = session.New(cfg.API.BaseURL, cfg.API.Token, cfg.API.GroupID)
		if err != nil {
			return nil, fmt.Errorf("failed to create session: %w", err)
		}
	}

	gwOpts := []gateway.Option{
		gateway.WithTimeout(cfg.API.Timeout()),
		gateway.WithLogger(ac.logger),
	}
	if ac.httpClient != nil {
		gwOpts = append(gwOpts, gateway.WithHTTPClient(ac.httpClient))
	}
	gw := gateway.NewClient(sess, gwOpts...)

	return &App{
		Config:      cfg,
		Session:     sess,
		Logger:      ac.logger,
		Gateway:     gw,
		TaskService: taskservice.NewService(gw),
	}, nil
}

// NewStore creates an empty board configured with the retry budget
func (a *App) NewStore() *board.Store {
	return board.NewStore(board.WithMaxAttempts(a.Config.API.MaxAttempts))
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
