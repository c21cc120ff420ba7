package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/trackmaster/trackmaster/internal/app"
	"github.com/trackmaster/trackmaster/internal/cli"
	"github.com/trackmaster/trackmaster/internal/cli/serve"
	"github.com/trackmaster/trackmaster/internal/cli/sprint"
	"github.com/trackmaster/trackmaster/internal/cli/styles"
	"github.com/trackmaster/trackmaster/internal/cli/task"
	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/launcher"
	"github.com/trackmaster/trackmaster/internal/logging"
)

// logCloser releases the log file opened by setup
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "trackmaster",
	Short: "TrackMaster - a terminal sprint board",
	Long: `TrackMaster is a terminal kanban board for sprint tasks.

Run without arguments to open the board. The subcommands script the same
board over the REST backend, and serve runs a local development backend.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
	RunE:              runBoard,
}

func init() {
	rootCmd.AddCommand(sprint.SprintCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(serve.ServeCmd())

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		cmd.PrintErrf("❌ Error: %v\n💡 Suggestion: run '%s --help'\n", err, cmd.CommandPath())
		return &cli.CommandError{Code: cli.ExitUsage, Err: err}
	})
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the config, opens the log file and builds the application
// container shared by every subcommand
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := logging.Init(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer

	styles.Init(cfg.ColorScheme)

	application, err := app.New(cfg, app.WithLogger(logger))
	if err != nil {
		return err
	}
	slog.Debug("trackmaster starting", "command", cmd.CommandPath(), "base_url", application.Session.BaseURL, "user", application.Session.String())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(cli.WithCLI(ctx, cli.FromApp(application)))
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if c, ok := cli.FromContext(cmd.Context()); ok {
		if err := c.App.Close(); err != nil {
			slog.Error("failed to close app", "error", err)
		}
	}
	if logCloser != nil {
		_ = logCloser.Close()
	}
}

// runBoard opens the interactive board
func runBoard(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}
	return launcher.Launch(cmd.Context(), c.App)
}
