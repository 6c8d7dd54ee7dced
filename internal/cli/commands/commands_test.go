package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveform-computing/sqldoc/internal/config"
)

func testConfig(cfg config.Config) ConfigFunc {
	return func(*cobra.Command) *config.Config { return &cfg }
}

func defaults() config.Config {
	return config.Config{
		Dialect:     config.DefaultDialect,
		Terminator:  config.DefaultTerminator,
		IndentWidth: config.DefaultIndentWidth,
		Output:      config.DefaultOutput,
	}
}

// runCommand executes cmd with the given stdin and arguments and
// returns what it printed.
func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestFormatCommandStdin(t *testing.T) {
	cmd := NewFormatCommand(testConfig(defaults()))
	got := runCommand(t, cmd, "select 1 from t;")
	assert.Equal(t, "SELECT\n    1\nFROM\n    T;\n", got)
}

func TestFormatCommandFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.sql")
	require.NoError(t, os.WriteFile(path, []byte("select 1 from t;"), 0o644))

	cmd := NewFormatCommand(testConfig(defaults()))
	got := runCommand(t, cmd, "", path)
	assert.Equal(t, "SELECT\n    1\nFROM\n    T;\n", got)
}

func TestFormatCommandIndentWidth(t *testing.T) {
	cfg := defaults()
	cfg.IndentWidth = 2
	cmd := NewFormatCommand(testConfig(cfg))
	got := runCommand(t, cmd, "select 1 from t;")
	assert.Equal(t, "SELECT\n  1\nFROM\n  T;\n", got)
}

func TestFormatCommandParseError(t *testing.T) {
	cmd := NewFormatCommand(testConfig(defaults()))
	cmd.SetIn(strings.NewReader("select 1 from from;"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse error")
}

func TestHighlightCommandHTML(t *testing.T) {
	cfg := defaults()
	cfg.Output = "html"
	cmd := NewHighlightCommand(testConfig(cfg))
	got := runCommand(t, cmd, "select 1 from t;")
	assert.Contains(t, got, `<span class="sql_keyword">SELECT</span>`)
}

func TestHighlightCommandRaw(t *testing.T) {
	cmd := NewHighlightCommand(testConfig(defaults()))
	got := runCommand(t, cmd, "select 1 from t;", "--raw")
	assert.Equal(t, "select 1 from t;", got)
}

func TestHighlightCommandLineNumbers(t *testing.T) {
	cmd := NewHighlightCommand(testConfig(defaults()))
	got := runCommand(t, cmd, "select 1 from t;", "--line-numbers")
	assert.Equal(t, "1  SELECT\n2      1\n3  FROM\n4      T;\n", got)
}

func TestHighlightCommandLineNumbersHTML(t *testing.T) {
	cfg := defaults()
	cfg.Output = "html"
	cmd := NewHighlightCommand(testConfig(cfg))
	got := runCommand(t, cmd, "select 1 from t;", "--line-numbers")
	assert.Contains(t, got, `1  <span class="sql_keyword">SELECT</span>`)
}

func TestTokensCommand(t *testing.T) {
	cmd := NewTokensCommand(testConfig(defaults()))
	got := runCommand(t, cmd, "select 1;")
	assert.Contains(t, got, "1:1\tKEYWORD\t\"SELECT\"")
	assert.Contains(t, got, "1:8\tNUMBER\t\"1\"")
	assert.Contains(t, got, "TERMINATOR")
	assert.Contains(t, got, "EOF")
}

func TestVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "2026-01-02", "abcdef0")
	got := runCommand(t, cmd, "")
	assert.Contains(t, got, "sqldoc v1.2.3")
	assert.Contains(t, got, "abcdef0")
}
