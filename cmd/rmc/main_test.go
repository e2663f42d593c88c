package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The --help flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"--help"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
	require.Contains(t, out.String(), "Developer flags:", "the standalone driver exposes the full catalog")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}

func TestRun_DryRunPrintsCommands(t *testing.T) {
	t.Parallel()

	args := []string{"--dry-run", "--quiet", "--cbmc-args", "--unwind", "10"}
	out := &bytes.Buffer{}

	err := run(out, args)

	require.NoError(t, err)
	output := out.String()
	require.Contains(t, output, "cbmc")
	require.Contains(t, output, "--unwind 10")
	require.False(t, strings.Contains(output, "level="), "quiet dry-run output should be commands only")
}
