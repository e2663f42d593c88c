package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/modelcheck/rmcgo/internal/config"
	"github.com/modelcheck/rmcgo/internal/ctxlog"
)

// Step is one external command a full verification run would execute.
type Step struct {
	Name string
	Argv []string
}

var (
	memorySafetyChecks = []string{
		"--bounds-check",
		"--pointer-check",
		"--pointer-primitive-check",
	}
	overflowChecks = []string{
		"--conversion-check",
		"--div-by-zero-check",
		"--float-overflow-check",
		"--nan-check",
		"--pointer-overflow-check",
		"--undefined-shift-check",
	}
	unwindingChecks = []string{
		"--unwinding-assertions",
	}
)

// BuildPlan assembles the checker command lines implied by cfg, in execution
// order. It performs no I/O and starts no processes.
func BuildPlan(ctx context.Context, cfg *config.Config) []Step {
	logger := ctxlog.FromContext(ctx)

	var steps []Step
	for _, lib := range cfg.CLibs {
		out := filepath.Join(cfg.TargetDir, stem(lib)+".goto")
		steps = append(steps, Step{
			Name: "compile-c-lib",
			Argv: []string{"goto-cc", lib, "-o", out},
		})
	}

	if cfg.GenC {
		for _, input := range cfg.Inputs {
			steps = append(steps, Step{
				Name: "gen-c",
				Argv: []string{"goto-instrument", "--dump-c", input, filepath.Join(cfg.TargetDir, stem(input)+".c")},
			})
		}
	}
	if cfg.GenSymbols {
		for _, input := range cfg.Inputs {
			steps = append(steps, Step{
				Name: "gen-symbols",
				Argv: []string{"symtab2gb", input, "--out", filepath.Join(cfg.TargetDir, stem(input)+".symtab.json")},
			})
		}
	}

	argv := []string{"cbmc"}
	argv = append(argv, checkArgs(cfg)...)
	argv = append(argv, "--function", cfg.Function)
	argv = append(argv, cfg.CBMCArgs...)
	argv = append(argv, cfg.Inputs...)
	steps = append(steps, Step{Name: "verify", Argv: argv})

	if cfg.Visualize {
		steps = append(steps, Step{
			Name: "visualize",
			Argv: []string{"cbmc-viewer", "--srcdir", cfg.SrcDir, "--wkdir", cfg.WkDir},
		})
	}

	logger.Debug("Verification plan assembled.", "steps", len(steps))
	return steps
}

// checkArgs translates the check toggles into checker arguments.
func checkArgs(cfg *config.Config) []string {
	if cfg.NoDefaultChecks {
		return nil
	}

	var args []string
	if !cfg.NoMemorySafetyChecks {
		args = append(args, memorySafetyChecks...)
	}
	if !cfg.NoOverflowChecks {
		args = append(args, overflowChecks...)
	}
	if !cfg.NoUnwindingChecks {
		args = append(args, unwindingChecks...)
	}
	return args
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
