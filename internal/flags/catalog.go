package flags

// Kind describes how a flag consumes command-line input.
type Kind int

const (
	// Toggle is a boolean flag with no value.
	Toggle Kind = iota
	// Single takes exactly one value.
	Single
	// Repeated appends one value per occurrence.
	Repeated
	// Remainder consumes every remaining command-line token verbatim.
	Remainder
)

// Spec describes one command-line flag. Name and Shorthand keep their leading
// dashes so they match the identifiers callers pass in exclusion sets.
type Spec struct {
	Name      string
	Shorthand string
	Kind      Kind
	Default   string
	Help      string
}

// Group is a named set of related flags, shown together in help text. The
// title doubles as the group's exclusion key.
type Group struct {
	Title       string
	Description string
	Flags       []Spec
}

// Catalog returns the flag groups shared by rmc and cargo-rmc, in
// registration order. The names, defaults, and help text here are the
// contract downstream scripts depend on.
func Catalog() []Group {
	return []Group{
		{
			Title:       "Loudness flags",
			Description: "Determine how much textual output to produce.",
			Flags: []Spec{
				{Name: "--debug", Kind: Toggle,
					Help: "Produce full debug information"},
				{Name: "--verbose", Shorthand: "-v", Kind: Toggle,
					Help: "Output processing stages and commands, along with minor debug information"},
				{Name: "--quiet", Shorthand: "-q", Kind: Toggle,
					Help: "Produces no output, just an exit code and requested artifacts. Overrides --verbose"},
			},
		},
		{
			Title:       "Proof harness flags",
			Description: "Provide information about the proof harness for RMC.",
			Flags: []Spec{
				{Name: "--c-lib", Kind: Repeated,
					Help: "External C files referenced by Rust code; can be repeated to provide multiple files"},
				{Name: "--function", Kind: Single, Default: "main",
					Help: "Entry point for verification"},
			},
		},
		{
			Title:       "Artifact flags",
			Description: "Produce artifacts in addition to a basic RMC report.",
			Flags: []Spec{
				{Name: "--target-dir", Kind: Single, Default: ".",
					Help: "Directory for all generated artifacts"},
				{Name: "--keep-temps", Kind: Toggle,
					Help: "Keep temporary files generated throughout RMC process"},
				{Name: "--gen-c", Kind: Toggle,
					Help: "Generate C file equivalent to inputted program"},
				{Name: "--gen-symbols", Kind: Toggle,
					Help: "Generate a symbol table"},
			},
		},
		{
			Title:       "Check flags",
			Description: "Disable some or all default checks.",
			Flags: []Spec{
				{Name: "--no-default-checks", Kind: Toggle,
					Help: "Disable all default checks"},
				{Name: "--no-memory-safety-checks", Kind: Toggle,
					Help: "Disable default memory safety checks"},
				{Name: "--no-overflow-checks", Kind: Toggle,
					Help: "Disable default overflow checks"},
				{Name: "--no-unwinding-checks", Kind: Toggle,
					Help: "Disable default unwinding checks"},
			},
		},
		{
			Title:       "Visualizer flags",
			Description: "Generate an HTML-based UI for the generated RMC report. See https://github.com/awslabs/aws-viewer-for-cbmc.",
			Flags: []Spec{
				{Name: "--srcdir", Kind: Single, Default: ".",
					Help: "The source directory. The root of the source tree."},
				{Name: "--wkdir", Kind: Single, Default: ".",
					Help: "The working directory. Used to determine source locations in output. This is generally the location from which rmc is currently being invoked."},
				{Name: "--visualize", Kind: Toggle,
					Help: "Generate visualizer report; open report/html/index.html"},
			},
		},
		{
			Title: "Other flags",
			Flags: []Spec{
				{Name: "--allow-cbmc-verification-failure", Kind: Toggle,
					Help: "Do not produce error return code on CBMC verification failure"},
				{Name: "--mangler", Kind: Single, Default: "v0",
					Help: "Change what mangler is used by the Rust compiler"},
				{Name: "--dry-run", Kind: Toggle,
					Help: "Print commands instead of running them"},
			},
		},
		{
			Title:       "Developer flags",
			Description: "These are generally meant for use by RMC developers, and are not stable.",
			Flags: []Spec{
				{Name: "--cbmc-args", Kind: Remainder,
					Help: "Pass through directly to CBMC; must be the last flag"},
			},
		},
	}
}
