// Package serve runs the development backend from the command line
package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/database"
	"github.com/trackmaster/trackmaster/internal/logging"
	"github.com/trackmaster/trackmaster/internal/server"
)

const shutdownTimeout = 5 * time.Second

// Options configures the development backend
type Options struct {
	Addr   string
	DBPath string
	Seed   bool

	// Out receives the startup banner and the access log
	Out io.Writer
	// Ready is called with the bound address once the listener is open
	Ready func(addr string)
}

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development backend",
		Long: `Run a local TrackMaster REST backend over SQLite.

Examples:
  # Fresh in-memory backend with demo data
  trackmaster serve --db :memory: --seed

  # Persistent backend on another port
  trackmaster serve --addr :9090
`,
		Args: cobra.NoArgs,
		// the backend needs no session or board config; log to the terminal
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), level))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			addr, _ := cmd.Flags().GetString("addr")
			dbPath, _ := cmd.Flags().GetString("db")
			seed, _ := cmd.Flags().GetBool("seed")
			return Run(ctx, Options{Addr: addr, DBPath: dbPath, Seed: seed, Out: cmd.OutOrStdout()})
		},
	}

	cmd.Flags().String("addr", ":8080", "Address to listen on")
	cmd.Flags().String("db", "", "SQLite database path, or :memory: (defaults to ~/.trackmaster/trackmaster.db)")
	cmd.Flags().Bool("seed", false, "Insert a demo group with sprints and tasks")
	cmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

// Run serves the backend until ctx is cancelled, then shuts down gracefully
func Run(ctx context.Context, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.DBPath == "" {
		path, err := database.DefaultPath()
		if err != nil {
			return err
		}
		opts.DBPath = path
	}

	db, err := database.InitDB(ctx, opts.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()
	repo := database.NewRepository(db)

	if opts.Seed {
		seeded, err := database.Seed(ctx, repo, time.Now())
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		fmt.Fprintf(opts.Out, "Seeded demo group %d with sprints %v\n", seeded.GroupID, seeded.SprintIDs)
	}

	listener, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", opts.Addr, err)
	}

	httpServer := &http.Server{
		Handler:           server.New(repo, slog.Default(), opts.Out),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	slog.Info("trackmaster backend listening", "addr", listener.Addr().String(), "db", opts.DBPath)
	if opts.Ready != nil {
		opts.Ready(listener.Addr().String())
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	slog.Info("trackmaster backend shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
