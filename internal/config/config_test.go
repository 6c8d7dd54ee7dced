package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultDialect, cfg.Dialect)
	assert.Equal(t, DefaultTerminator, cfg.Terminator)
	assert.Equal(t, DefaultIndentWidth, cfg.IndentWidth)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName),
		[]byte("dialect: sql99\nindent_width: 2\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "sql99", cfg.Dialect)
	assert.Equal(t, 2, cfg.IndentWidth)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, ConfigFileName, GetConfigFileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt),
		[]byte("indent_width: 2\n"), 0o644))
	t.Setenv("SQLDOC_INDENT_WIDTH", "8")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.IndentWidth)
	assert.Equal(t, ConfigFileNameAlt, GetConfigFileUsed())
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SQLDOC_DIALECT", "sql92")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", DefaultDialect, "")
	flags.Int("indent", DefaultIndentWidth, "")
	require.NoError(t, flags.Set("dialect", "sql2003"))
	require.NoError(t, flags.Set("indent", "3"))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "sql2003", cfg.Dialect)
	assert.Equal(t, 3, cfg.IndentWidth)
}

func TestLoadUnsetFlagsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SQLDOC_DIALECT", "sql92")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", DefaultDialect, "")

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "sql92", cfg.Dialect)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load("missing.yaml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Dialect:     DefaultDialect,
			Terminator:  DefaultTerminator,
			IndentWidth: DefaultIndentWidth,
			Output:      DefaultOutput,
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Dialect = "oracle"
	assert.ErrorContains(t, cfg.Validate(), "unknown dialect")

	cfg = valid()
	cfg.Terminator = ""
	assert.ErrorContains(t, cfg.Validate(), "terminator")

	cfg = valid()
	cfg.IndentWidth = 0
	assert.ErrorContains(t, cfg.Validate(), "indent_width")

	cfg = valid()
	cfg.Output = "pdf"
	assert.ErrorContains(t, cfg.Validate(), "unknown output")
}
