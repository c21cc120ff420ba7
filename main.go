package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/trackmaster/trackmaster/cmd"
	"github.com/trackmaster/trackmaster/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// command errors are already reported by the output formatter
		var cmdErr *cli.CommandError
		if !errors.As(err, &cmdErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
