package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modelcheck/rmcgo/internal/app"
	"github.com/modelcheck/rmcgo/internal/cli"
)

const banner = "cargo-rmc - verify a cargo package with the RMC model checker."

// The build tool chooses the harness entry point itself and owns the
// unstable passthrough surface, so those parts of the catalog stay hidden.
var options = cli.Options{
	Banner:        banner,
	ExcludeFlags:  []string{"--function"},
	ExcludeGroups: []string{"Developer flags"},
}

// main is the entrypoint for the cargo-rmc build-tool plugin.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse("cargo-rmc", args, outW, options)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	rmcApp := app.NewApp(outW, cfg)
	return rmcApp.Run(context.Background())
}
