// Package config provides configuration management for the sqldoc
// CLI. Values are layered: built-in defaults, then a config file,
// then SQLDOC_ environment variables, then command-line flags.
package config

// Config holds the resolved tool configuration.
type Config struct {
	// Dialect names the SQL dialect used for tokenizing and parsing.
	Dialect string `koanf:"dialect"`

	// Terminator is the statement terminator scripts start with.
	Terminator string `koanf:"terminator"`

	// IndentWidth is the number of spaces per indentation level in
	// formatted output.
	IndentWidth int `koanf:"indent_width"`

	// Output selects the output form: text, html or ansi.
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDialect     = "db2luw"
	DefaultTerminator  = ";"
	DefaultIndentWidth = 4
	DefaultOutput      = "text"
)
