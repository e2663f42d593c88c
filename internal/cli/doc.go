// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates the shared flag catalog into the driver's internal
// configuration, honoring per-entry-point exclusions.
package cli
