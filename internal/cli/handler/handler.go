// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/trackmaster/trackmaster/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command with parsed arguments
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute calls f
func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags map[string]any
	Args  []string
	cmd   *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Changed reports whether a flag was set on the command line
func (a *Arguments) Changed(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// ValidateFunc checks flags and positional arguments before the handler runs.
// Its errors are reported as usage errors.
type ValidateFunc func(cmd *cobra.Command, args []string) error

// Command wraps common command execution logic
// Returns a cobra RunE compatible function
func Command(handler Handler, validate ValidateFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := cli.NewFormatter(cmd)

		if validate != nil {
			if err := validate(cmd, args); err != nil {
				return formatter.Fail(fmt.Errorf("%w: %w", cli.ErrUsage, err))
			}
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return formatter.Fail(err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		arguments := &Arguments{
			Flags: parseFlagsToMap(cmd),
			Args:  args,
			cmd:   cmd,
		}

		result, err := handler.Execute(ctx, cliInstance, arguments)
		if err != nil {
			slog.Debug("command failed", "command", cmd.CommandPath(), "error", err)
			return formatter.Fail(err)
		}

		// Common output formatting
		return formatter.Success(result)
	}
}

// flagGetters reads a flag by its pflag type name
var flagGetters = map[string]func(fs *pflag.FlagSet, name string) (any, error){
	"string":   func(fs *pflag.FlagSet, name string) (any, error) { return fs.GetString(name) },
	"int":      func(fs *pflag.FlagSet, name string) (any, error) { return fs.GetInt(name) },
	"bool":     func(fs *pflag.FlagSet, name string) (any, error) { return fs.GetBool(name) },
	"intSlice": func(fs *pflag.FlagSet, name string) (any, error) { return fs.GetIntSlice(name) },
}

// parseFlagsToMap collects the flags set on the command line
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		get, ok := flagGetters[f.Value.Type()]
		if !ok {
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
			return
		}
		if v, err := get(cmd.Flags(), f.Name); err == nil {
			flags[f.Name] = v
		}
	})
	return flags
}

// flagValue returns the named flag if it was set and has type T
func flagValue[T any](a *Arguments, name string, defaultVal T) T {
	if v, ok := a.Flags[name].(T); ok {
		return v
	}
	return defaultVal
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	return flagValue(a, name, defaultVal)
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	return flagValue(a, name, defaultVal)
}

// GetBool retrieves a bool flag; unset is false
func (a *Arguments) GetBool(name string) bool {
	return flagValue(a, name, false)
}

// GetIntSlice retrieves an int slice flag with default
func (a *Arguments) GetIntSlice(name string, defaultVal []int) []int {
	return flagValue(a, name, defaultVal)
}
