// Package config provides configuration management for the bowlsplit CLI.
//
// Values are layered with koanf: built-in defaults, then bowlsplit.yaml, then
// BOWLSPLIT_* environment variables, then explicitly set flags. A named
// profile from the config file may overlay the result.
package config

import "github.com/leapstack-labs/bowlsplit/internal/cli/output"

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string                   `koanf:"output"`
	Verbose      bool                     `koanf:"verbose"`
	LogLevel     string                   `koanf:"log_level"`
	Profile      string                   `koanf:"profile"`
	Profiles     map[string]ProfileConfig `koanf:"profiles"`
}

// ProfileConfig holds named overrides. Empty fields leave the base value alone.
type ProfileConfig struct {
	OutputFormat string `koanf:"output"`
	LogLevel     string `koanf:"log_level"`
	Verbose      *bool  `koanf:"verbose"`
}

// Config file names, in lookup order.
const (
	ConfigFileName    = "bowlsplit.yaml"
	ConfigFileNameAlt = "bowlsplit.yml"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "BOWLSPLIT_"

// Default configuration values.
const (
	DefaultOutput   = string(output.ModeAuto)
	DefaultLogLevel = "warn"
)

// OutputMode returns the configured output mode.
func (c *Config) OutputMode() output.Mode {
	return output.Mode(c.OutputFormat)
}
