// Package cli provides the command-line interface for sqldoc.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/waveform-computing/sqldoc/internal/cli/commands"
	"github.com/waveform-computing/sqldoc/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sqldoc",
		Short: "sqldoc - SQL script formatter and highlighter",
		Long: `sqldoc tokenizes, parses and reformats SQL scripts, and renders
them as plain text, styled HTML or colored terminal output.

Scripts are split on a rebindable statement terminator, so routine
bodies containing semicolons survive intact.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			setupLogging(cfg.Verbose)
			if cfg.Verbose {
				if configFile := config.GetConfigFileUsed(); configFile != "" {
					slog.Debug("using config file", "path", configFile)
				}
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default sqldoc.yaml)")
	flags.String("dialect", config.DefaultDialect, "SQL dialect to parse")
	flags.String("terminator", config.DefaultTerminator, "initial statement terminator")
	flags.Int("indent", config.DefaultIndentWidth, "spaces per indentation level")
	flags.String("output", config.DefaultOutput, "output form: text, html or ansi")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		commands.NewFormatCommand(configFromContext),
		commands.NewHighlightCommand(configFromContext),
		commands.NewTokensCommand(configFromContext),
		commands.NewVersionCommand(Version, BuildDate, GitCommit),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sqldoc: %v\n", err)
		os.Exit(1)
	}
}

// configFromContext retrieves the loaded config for a command.
func configFromContext(cmd *cobra.Command) *config.Config {
	if c, ok := cmd.Context().Value(configKey{}).(*config.Config); ok {
		return c
	}
	return cfg
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
