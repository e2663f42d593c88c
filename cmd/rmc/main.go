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

const banner = "rmc - verify a Rust program with the RMC model checker."

// main is the entrypoint for the standalone rmc driver.
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
	cfg, shouldExit, err := cli.Parse("rmc", args, outW, cli.Options{Banner: banner})
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	rmcApp := app.NewApp(outW, cfg)
	return rmcApp.Run(context.Background())
}
