package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/bowlsplit/internal/cli/output"
)

// LogLevels lists the accepted log_level values.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !output.Mode(c.OutputFormat).IsValid() {
		return fmt.Errorf("unknown output format %q (want one of: %s)",
			c.OutputFormat, strings.Join(output.Modes(), ", "))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLogLevel converts a log_level value to a slog level. Empty means warn.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("unknown log level %q (want one of: %s)",
		s, strings.Join(LogLevels(), ", "))
}

// Level returns the effective log level. Verbose forces debug.
func (c *Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	lvl, _ := ParseLogLevel(c.LogLevel)
	return lvl
}
