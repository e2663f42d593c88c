package flags

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newTestFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rmc-test", pflag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func registeredNames(fs *pflag.FlagSet) []string {
	var names []string
	fs.VisitAll(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	return names
}

func TestRegister_FullCatalog(t *testing.T) {
	t.Parallel()

	fs := newTestFlagSet()
	diag := &bytes.Buffer{}

	ok := NewRegistry(diag).Register(fs, nil, nil)

	require.True(t, ok, "registration without exclusions should succeed")
	require.Empty(t, diag.String(), "no diagnostics expected without exclusions")

	var total int
	for _, group := range Catalog() {
		total += len(group.Flags)
	}
	require.Len(t, registeredNames(fs), total, "every catalog flag should be declared")

	require.Equal(t, "main", fs.Lookup("function").DefValue)
	require.Equal(t, ".", fs.Lookup("target-dir").DefValue)
	require.Equal(t, ".", fs.Lookup("srcdir").DefValue)
	require.Equal(t, ".", fs.Lookup("wkdir").DefValue)
	require.Equal(t, "v0", fs.Lookup("mangler").DefValue)

	require.Equal(t, "verbose", fs.ShorthandLookup("v").Name)
	require.Equal(t, "quiet", fs.ShorthandLookup("q").Name)

	require.Contains(t, fs.Lookup("c-lib").Usage, "can be repeated")
}

func TestRegister_Exclusions(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		excludeFlags  []string
		excludeGroups []string
		expectOK      bool
		absentFlags   []string
		presentFlags  []string
		checkDiag     func(t *testing.T, diag string)
	}{
		{
			name:          "Excluding a group suppresses all of its flags",
			excludeGroups: []string{"Developer flags"},
			expectOK:      true,
			absentFlags:   []string{"cbmc-args"},
			presentFlags:  []string{"debug", "function", "target-dir", "no-default-checks", "visualize", "dry-run"},
		},
		{
			name:         "Excluding a flag leaves its siblings alone",
			excludeFlags: []string{"--quiet"},
			expectOK:     true,
			absentFlags:  []string{"quiet"},
			presentFlags: []string{"debug", "verbose"},
		},
		{
			name:          "Unknown group name fails registration",
			excludeGroups: []string{"Nonexistent group"},
			expectOK:      false,
			checkDiag: func(t *testing.T, diag string) {
				require.Contains(t, diag, "groups which don't exist")
				require.Contains(t, diag, "Nonexistent group")
			},
		},
		{
			name:         "Unknown flag name fails registration",
			excludeFlags: []string{"--no-such-flag"},
			expectOK:     false,
			checkDiag: func(t *testing.T, diag string) {
				require.Contains(t, diag, "flags which don't exist")
				require.Contains(t, diag, "--no-such-flag")
			},
		},
		{
			name:         "Valid exclusions still apply next to invalid ones",
			excludeFlags: []string{"--quiet", "--no-such-flag"},
			expectOK:     false,
			absentFlags:  []string{"quiet"},
			presentFlags: []string{"verbose"},
			checkDiag: func(t *testing.T, diag string) {
				require.Contains(t, diag, "--no-such-flag")
				require.NotContains(t, diag, "--quiet", "matched exclusions must not be reported")
			},
		},
		{
			name:          "All unknown names are reported together",
			excludeFlags:  []string{"--bogus-one", "--bogus-two"},
			excludeGroups: []string{"Ghost group"},
			expectOK:      false,
			checkDiag: func(t *testing.T, diag string) {
				require.Contains(t, diag, "--bogus-one")
				require.Contains(t, diag, "--bogus-two")
				require.Contains(t, diag, "Ghost group")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fs := newTestFlagSet()
			diag := &bytes.Buffer{}

			ok := NewRegistry(diag).Register(fs, tc.excludeFlags, tc.excludeGroups)

			require.Equal(t, tc.expectOK, ok)
			for _, name := range tc.absentFlags {
				require.Nil(t, fs.Lookup(name), "flag %q should have been excluded", name)
			}
			for _, name := range tc.presentFlags {
				require.NotNil(t, fs.Lookup(name), "flag %q should have been declared", name)
			}
			if tc.checkDiag != nil {
				tc.checkDiag(t, diag.String())
			}
		})
	}
}

func TestRegister_Idempotent(t *testing.T) {
	t.Parallel()

	type flagState struct {
		Name     string
		DefValue string
		Usage    string
	}

	snapshot := func() []flagState {
		fs := newTestFlagSet()
		ok := NewRegistry(&bytes.Buffer{}).Register(fs, []string{"--quiet"}, []string{"Check flags"})
		require.True(t, ok)

		var states []flagState
		fs.VisitAll(func(f *pflag.Flag) {
			states = append(states, flagState{Name: f.Name, DefValue: f.DefValue, Usage: f.Usage})
		})
		return states
	}

	first := snapshot()
	second := snapshot()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("two identical registrations diverged (-first +second):\n%s", diff)
	}
}

func TestUsage_GroupedOutput(t *testing.T) {
	t.Parallel()

	fs := newTestFlagSet()
	reg := NewRegistry(&bytes.Buffer{})
	require.True(t, reg.Register(fs, nil, []string{"Developer flags"}))

	out := &bytes.Buffer{}
	reg.Usage(out, fs)
	help := out.String()

	require.Contains(t, help, "Loudness flags:")
	require.Contains(t, help, "Determine how much textual output to produce.")
	require.Contains(t, help, "-v, --verbose")
	require.Contains(t, help, "--allow-cbmc-verification-failure")
	require.NotContains(t, help, "Developer flags:", "excluded group must not appear in help")
	require.NotContains(t, help, "--cbmc-args")
}

func TestSplitRemainder(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		args         []string
		expectedHead []string
		expectedRest []string
	}{
		{
			name:         "No remainder flag",
			args:         []string{"--verbose", "input.rs"},
			expectedHead: []string{"--verbose", "input.rs"},
			expectedRest: nil,
		},
		{
			name:         "Everything after the flag is passed through verbatim",
			args:         []string{"--quiet", "input.rs", "--cbmc-args", "--unwind", "10", "--quiet"},
			expectedHead: []string{"--quiet", "input.rs"},
			expectedRest: []string{"--unwind", "10", "--quiet"},
		},
		{
			name:         "Remainder flag as the last token yields an empty tail",
			args:         []string{"--cbmc-args"},
			expectedHead: []string{},
			expectedRest: []string{},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			head, rest := SplitRemainder(tc.args)
			require.Equal(t, tc.expectedHead, []string(head))
			require.Equal(t, tc.expectedRest, []string(rest))
		})
	}
}

func TestCatalog_FlagNamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, group := range Catalog() {
		for _, spec := range group.Flags {
			require.True(t, strings.HasPrefix(spec.Name, "--"), "flag %q must carry its leading dashes", spec.Name)
			owner, dup := seen[spec.Name]
			require.False(t, dup, "flag %q declared by both %q and %q", spec.Name, owner, group.Title)
			seen[spec.Name] = group.Title
		}
	}
}

func TestCatalog_GroupOrderIsFixed(t *testing.T) {
	t.Parallel()

	var titles []string
	for _, group := range Catalog() {
		titles = append(titles, group.Title)
	}

	expected := []string{
		"Loudness flags",
		"Proof harness flags",
		"Artifact flags",
		"Check flags",
		"Visualizer flags",
		"Other flags",
		"Developer flags",
	}
	require.Equal(t, expected, titles)
}
