// Package flags holds the fixed command-line flag catalog shared by the rmc
// and cargo-rmc entry points, and a registry that declares it into a
// caller-supplied pflag.FlagSet. Entry points can exclude individual flags or
// whole groups at registration time; exclusion names that match nothing in
// the catalog are reported together and fail the registration.
package flags
