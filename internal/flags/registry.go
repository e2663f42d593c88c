package flags

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// Registry declares the fixed catalog into caller-supplied flag sets.
// Diagnostics about bad exclusion requests are written to diagW.
type Registry struct {
	catalog []Group
	diagW   io.Writer
}

// NewRegistry creates a Registry over the shared catalog.
func NewRegistry(diagW io.Writer) *Registry {
	return &Registry{catalog: Catalog(), diagW: diagW}
}

// Register declares every catalog group and its flags into fs, in catalog
// order. Excluding a group suppresses all of its flags; excluding a flag
// suppresses just that flag. Exclusions that match nothing are collected and
// reported together on the diagnostic writer, and the call returns false.
// Valid exclusions still take effect on fs even when invalid ones are present.
func (r *Registry) Register(fs *pflag.FlagSet, excludeFlags, excludeGroups []string) bool {
	exFlags := toSet(excludeFlags)
	exGroups := toSet(excludeGroups)

	matchedFlags := make(map[string]struct{})
	matchedGroups := make(map[string]struct{})

	for _, group := range r.catalog {
		if _, skip := exGroups[group.Title]; skip {
			matchedGroups[group.Title] = struct{}{}
			continue
		}
		for _, spec := range group.Flags {
			if _, skip := exFlags[spec.Name]; skip {
				matchedFlags[spec.Name] = struct{}{}
				continue
			}
			declare(fs, spec)
		}
	}

	extraGroups := unmatched(excludeGroups, matchedGroups)
	extraFlags := unmatched(excludeFlags, matchedFlags)
	if len(extraGroups) > 0 {
		fmt.Fprintf(r.diagW, "ERROR: attempt to exclude groups which don't exist: %s\n", strings.Join(extraGroups, ", "))
	}
	if len(extraFlags) > 0 {
		fmt.Fprintf(r.diagW, "ERROR: attempt to exclude flags which don't exist: %s\n", strings.Join(extraFlags, ", "))
	}
	if len(extraGroups) > 0 || len(extraFlags) > 0 {
		slog.Debug("Flag registration rejected unknown exclusion names.", "extra_groups", extraGroups, "extra_flags", extraFlags)
		return false
	}

	slog.Debug("Flag catalog registered.", "excluded_flags", len(matchedFlags), "excluded_groups", len(matchedGroups))
	return true
}

// Usage writes grouped help text for the flags that were actually declared
// into fs. Groups whose flags were all excluded are omitted entirely.
func (r *Registry) Usage(w io.Writer, fs *pflag.FlagSet) {
	for _, group := range r.catalog {
		var lines []string
		for _, spec := range group.Flags {
			if fs.Lookup(longName(spec)) == nil {
				continue
			}
			lines = append(lines, formatSpec(spec))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", group.Title)
		if group.Description != "" {
			fmt.Fprintf(w, "  %s\n", group.Description)
		}
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}
}

// SplitRemainder cuts args at the first standalone remainder flag token
// (--cbmc-args). Everything after it is passed through to the checker
// verbatim and must never reach the flag parser. Only the space-separated
// form cuts the argument list; the flag is documented as "must be the last
// flag" for exactly that reason.
func SplitRemainder(args []string) (head, rest []string) {
	for i, arg := range args {
		if arg == "--cbmc-args" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func declare(fs *pflag.FlagSet, spec Spec) {
	long := longName(spec)
	short := strings.TrimPrefix(spec.Shorthand, "-")

	switch spec.Kind {
	case Toggle:
		fs.BoolP(long, short, false, spec.Help)
	case Single:
		fs.StringP(long, short, spec.Default, spec.Help)
	case Repeated, Remainder:
		fs.StringArrayP(long, short, nil, spec.Help)
	}
}

func longName(spec Spec) string {
	return strings.TrimPrefix(spec.Name, "--")
}

func formatSpec(spec Spec) string {
	head := "      " + spec.Name
	if spec.Shorthand != "" {
		head = "  " + spec.Shorthand + ", " + spec.Name
	}
	line := fmt.Sprintf("%-38s %s", head, spec.Help)
	if spec.Kind == Single && spec.Default != "" {
		line += fmt.Sprintf(" (default %q)", spec.Default)
	}
	return line
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// unmatched returns the requested names that never matched a catalog entry,
// deduplicated, in the order the caller supplied them.
func unmatched(requested []string, matched map[string]struct{}) []string {
	var extra []string
	seen := make(map[string]struct{})
	for _, name := range requested {
		if _, ok := matched[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		extra = append(extra, name)
	}
	return extra
}
