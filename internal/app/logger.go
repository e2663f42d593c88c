package app

import (
	"io"
	"log/slog"

	"github.com/modelcheck/rmcgo/internal/config"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(cfg *config.Config, outW io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case cfg.Quiet:
		// --quiet keeps the exit code and requested artifacts only;
		// errors still surface.
		level = slog.LevelError
	case cfg.Debug, cfg.Verbose:
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
