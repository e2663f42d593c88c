// Package config defines the resolved driver configuration that both entry
// points hand to the application layer, and the lifting of parsed flag values
// into it.
package config
