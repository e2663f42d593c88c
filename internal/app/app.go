package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/modelcheck/rmcgo/internal/config"
	"github.com/modelcheck/rmcgo/internal/ctxlog"
)

// App wires together the resolved configuration, its logger, and the
// verification plan for one driver invocation.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	cfg    *config.Config
}

// NewApp is the constructor for the driver application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg, outW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger, cfg: cfg}
}

// Run executes one driver invocation. Checker processes are never started
// here: under --dry-run the plan is printed, one command per line; otherwise
// the caller gets an error describing what would have run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	plan := BuildPlan(ctx, a.cfg)

	if a.cfg.DryRun {
		for _, step := range plan {
			fmt.Fprintln(a.outW, strings.Join(step.Argv, " "))
		}
		return nil
	}

	return fmt.Errorf("checker invocation is not part of this driver; re-run with --dry-run to inspect the %d planned commands", len(plan))
}
