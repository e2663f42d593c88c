package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/modelcheck/rmcgo/internal/config"
	"github.com/modelcheck/rmcgo/internal/flags"
	"github.com/modelcheck/rmcgo/internal/hclconf"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options adjusts the shared flag catalog for one entry point.
type Options struct {
	// Banner introduces the tool at the top of help output.
	Banner string

	// ExcludeFlags and ExcludeGroups name catalog entries this entry point
	// does not expose. Flags are named with their dashes ("--function"),
	// groups by title ("Developer flags").
	ExcludeFlags  []string
	ExcludeGroups []string

	// DefaultsFile overrides where project defaults are read from. Empty
	// means rmc.hcl in the working directory.
	DefaultsFile string
}

// Parse processes command-line arguments for one entry point. It returns the
// resolved driver configuration, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(name string, args []string, output io.Writer, opts Options) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.", "entry_point", name)

	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.SetOutput(output)

	registry := flags.NewRegistry(output)
	if !registry.Register(flagSet, opts.ExcludeFlags, opts.ExcludeGroups) {
		return nil, false, &ExitError{Code: 2, Message: name + ": exclusion sets name unknown flags or groups"}
	}

	flagSet.Usage = func() {
		if opts.Banner != "" {
			fmt.Fprintln(output, opts.Banner)
		}
		fmt.Fprintf(output, "\nUsage:\n  %s [options] [INPUT]...\n", name)
		registry.Usage(output, flagSet)
	}

	// The passthrough tail never reaches the flag parser; it belongs to the
	// checker. Only split when this entry point actually exposes the flag.
	head, cbmcArgs := args, []string(nil)
	if flagSet.Lookup("cbmc-args") != nil {
		head, cbmcArgs = flags.SplitRemainder(args)
	}

	if err := flagSet.Parse(head); err != nil {
		if err == pflag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	defaultsFile := opts.DefaultsFile
	if defaultsFile == "" {
		defaultsFile = hclconf.DefaultFileName
	}
	if err := hclconf.Apply(flagSet, defaultsFile); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Project defaults applied.", "file", defaultsFile)

	cfg, err := config.New(config.FromFlagSet(flagSet, cbmcArgs, flagSet.Args()))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
