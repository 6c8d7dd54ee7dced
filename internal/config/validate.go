package config

import (
	"fmt"
	"strings"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
)

// Validate checks the configuration for values the tool cannot work
// with.
func (c *Config) Validate() error {
	if dialect.Lookup(c.Dialect) == nil {
		return fmt.Errorf("unknown dialect %q (available: %s)",
			c.Dialect, strings.Join(dialect.Names(), ", "))
	}
	if c.Terminator == "" {
		return fmt.Errorf("terminator must not be empty")
	}
	if c.IndentWidth < 1 {
		return fmt.Errorf("indent_width must be at least 1, got %d", c.IndentWidth)
	}
	switch c.Output {
	case "text", "html", "ansi":
	default:
		return fmt.Errorf("unknown output %q (available: text, html, ansi)", c.Output)
	}
	return nil
}
