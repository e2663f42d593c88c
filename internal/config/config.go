package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the necessary configuration for one driver invocation.
type Config struct {
	Debug   bool
	Verbose bool
	Quiet   bool

	CLibs    []string
	Function string

	TargetDir  string
	KeepTemps  bool
	GenC       bool
	GenSymbols bool

	NoDefaultChecks      bool
	NoMemorySafetyChecks bool
	NoOverflowChecks     bool
	NoUnwindingChecks    bool

	SrcDir    string
	WkDir     string
	Visualize bool

	AllowCBMCVerificationFailure bool
	Mangler                      string
	DryRun                       bool

	// CBMCArgs are passed through to the checker verbatim.
	CBMCArgs []string

	// Inputs are the positional arguments, the programs to verify.
	Inputs []string
}

var knownManglers = map[string]struct{}{
	"v0":     {},
	"legacy": {},
}

// New validates cfg and applies the cross-flag rules that per-flag parsing
// cannot express.
func New(cfg Config) (*Config, error) {
	// --quiet wins over --verbose.
	if cfg.Quiet {
		cfg.Verbose = false
	}

	if _, ok := knownManglers[cfg.Mangler]; !ok {
		return nil, fmt.Errorf("invalid mangler %q: must be 'v0' or 'legacy'", cfg.Mangler)
	}

	if cfg.TargetDir == "" {
		cfg.TargetDir = "."
	}
	if cfg.SrcDir == "" {
		cfg.SrcDir = "."
	}
	if cfg.WkDir == "" {
		cfg.WkDir = "."
	}

	return &cfg, nil
}

// FromFlagSet lifts parsed flag values into a Config. Flags an entry point
// excluded are absent from fs and fall back to their catalog defaults, so
// both entry points produce a fully populated Config.
//
// cbmcArgs is the verbatim tail cut off ahead of parsing. The equals form
// (--cbmc-args=value) parses into the registered flag instead, so both
// sources are folded into CBMCArgs, equals-form values first.
func FromFlagSet(fs *pflag.FlagSet, cbmcArgs, inputs []string) Config {
	return Config{
		Debug:   boolOf(fs, "debug"),
		Verbose: boolOf(fs, "verbose"),
		Quiet:   boolOf(fs, "quiet"),

		CLibs:    sliceOf(fs, "c-lib"),
		Function: stringOf(fs, "function", "main"),

		TargetDir:  stringOf(fs, "target-dir", "."),
		KeepTemps:  boolOf(fs, "keep-temps"),
		GenC:       boolOf(fs, "gen-c"),
		GenSymbols: boolOf(fs, "gen-symbols"),

		NoDefaultChecks:      boolOf(fs, "no-default-checks"),
		NoMemorySafetyChecks: boolOf(fs, "no-memory-safety-checks"),
		NoOverflowChecks:     boolOf(fs, "no-overflow-checks"),
		NoUnwindingChecks:    boolOf(fs, "no-unwinding-checks"),

		SrcDir:    stringOf(fs, "srcdir", "."),
		WkDir:     stringOf(fs, "wkdir", "."),
		Visualize: boolOf(fs, "visualize"),

		AllowCBMCVerificationFailure: boolOf(fs, "allow-cbmc-verification-failure"),
		Mangler:                      stringOf(fs, "mangler", "v0"),
		DryRun:                       boolOf(fs, "dry-run"),

		CBMCArgs: append(sliceOf(fs, "cbmc-args"), cbmcArgs...),
		Inputs:   inputs,
	}
}

func boolOf(fs *pflag.FlagSet, name string) bool {
	if fs.Lookup(name) == nil {
		return false
	}
	value, err := fs.GetBool(name)
	if err != nil {
		return false
	}
	return value
}

func stringOf(fs *pflag.FlagSet, name, fallback string) string {
	if fs.Lookup(name) == nil {
		return fallback
	}
	value, err := fs.GetString(name)
	if err != nil {
		return fallback
	}
	return value
}

func sliceOf(fs *pflag.FlagSet, name string) []string {
	if fs.Lookup(name) == nil {
		return nil
	}
	value, err := fs.GetStringArray(name)
	if err != nil {
		return nil
	}
	return value
}
