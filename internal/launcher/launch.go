package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/trackmaster/trackmaster/internal/app"
	"github.com/trackmaster/trackmaster/internal/tui"
)

// drainTimeout bounds how long the board waits for in-flight saves after a shutdown signal
const drainTimeout = 5 * time.Second

// Launch starts the board and blocks until the user quits or a shutdown signal arrives
func Launch(parent context.Context, a *app.App) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := a.NewStore()
	model := tui.InitialModel(ctx, tui.Deps{
		Config:  a.Config,
		Session: a.Session,
		Backend: a.Gateway,
		Tasks:   a.TaskService,
		Store:   store,
	})
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(drainTimeout):
			slog.Warn("board did not stop in time")
			return nil
		}
	}

	if pending := len(store.Pending()); pending > 0 {
		slog.Warn("board closed with unsaved changes", "pending", pending)
	}
	return nil
}
