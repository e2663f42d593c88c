// Package app assembles one driver invocation: it configures the logger from
// the loudness flags, builds the verification plan implied by the resolved
// configuration, and prints it under --dry-run. Starting checker processes is
// deliberately outside this component.
package app
