// Package config holds runtime settings taken from command-line flags.
package config

import "flag"

// AppName is the application name used in version output and logs.
const AppName = "todo"

// Config holds runtime settings.
type Config struct {
	// Debug enables debug logging to stderr.
	Debug bool

	// NoPause skips the "Press Enter to continue" prompt after each command.
	NoPause bool

	// ShowVersion prints the version and exits.
	ShowVersion bool
}

// New returns the default configuration.
func New() *Config {
	return &Config{}
}

// RegisterFlags binds the configuration fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Debug, "debug", c.Debug, "")
	fs.BoolVar(&c.NoPause, "no-pause", c.NoPause, "")
	fs.BoolVar(&c.ShowVersion, "version", c.ShowVersion, "")
}
