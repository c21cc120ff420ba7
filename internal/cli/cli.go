package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/trackmaster/trackmaster/internal/app"
	"github.com/trackmaster/trackmaster/internal/board"
	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/models"
)

// retryBackoff is the wait before the second attempt; it doubles after each failure
const retryBackoff = 500 * time.Millisecond

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services

	// owned is false when the container was handed in and is closed by its creator
	owned bool
}

type contextKey struct{}

// NewCLI loads the config and builds a fresh application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// FromApp wraps an existing container. Close leaves it open.
func FromApp(a *app.App) *CLI {
	return &CLI{App: a}
}

// WithCLI stores c in ctx for subcommands to pick up
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the CLI stored by WithCLI
func FromContext(ctx context.Context) (*CLI, bool) {
	if ctx == nil {
		return nil, false
	}
	c, ok := ctx.Value(contextKey{}).(*CLI)
	return c, ok && c != nil
}

// GetCLIFromContext returns the CLI stored by WithCLI, or builds a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if c, ok := FromContext(ctx); ok {
		return c, nil
	}
	return NewCLI(ctx)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}

// LoadBoard fetches a sprint's tasks into a new board store.
// Every CLI mutation goes through the store so it follows the same rules as the board UI.
func (c *CLI) LoadBoard(ctx context.Context, sprintID int) (*board.Store, error) {
	store := c.App.NewStore()
	gen := store.LoadSprint(sprintID)

	tasks, err := c.App.TaskService.ListTasks(ctx, sprintID)
	if err != nil {
		_ = store.FailLoad(gen, err)
		return nil, err
	}
	if err := store.ApplyLoad(gen, tasks); err != nil {
		return nil, fmt.Errorf("failed to load sprint %d: %w", sprintID, err)
	}
	return store, nil
}

// Members returns the assignable members of the session's group.
// A group that cannot be fetched gives an empty directory.
func (c *CLI) Members(ctx context.Context) models.MemberDirectory {
	if c.App.Session.GroupID <= 0 {
		return models.NewMemberDirectory(nil)
	}
	group, err := c.App.Gateway.GroupDetails(ctx, c.App.Session.GroupID)
	if err != nil {
		slog.Warn("failed to load group members", "group_id", c.App.Session.GroupID, "error", err)
		return models.NewMemberDirectory(nil)
	}
	return models.NewMemberDirectory(group.Assignable())
}

// Save persists a pending operation, retrying temporary failures within the
// store's attempt budget. A nil op (a local-only change) is a no-op.
func (c *CLI) Save(ctx context.Context, store *board.Store, op *board.Op) (*models.Task, error) {
	if op == nil {
		return nil, nil
	}

	wait := retryBackoff
	for {
		snapshot, ok := store.Op(op.ID)
		if !ok {
			return nil, board.ErrOpNotFound
		}

		saved, err := board.Persist(ctx, c.App.TaskService, *snapshot)
		if err == nil {
			return saved, store.Confirm(op.ID, saved)
		}

		outcome, failErr := store.Fail(op.ID, err)
		if failErr != nil {
			return nil, failErr
		}
		if outcome != board.OutcomeRetry {
			return nil, err
		}

		slog.Warn("retrying task save", "op", snapshot.Kind, "task_id", snapshot.TaskID, "failed_attempts", snapshot.Attempts+1, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
}
