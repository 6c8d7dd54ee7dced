package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/parser"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

// NewFormatCommand creates the format command.
func NewFormatCommand(getConfig ConfigFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "format [file...]",
		Short: "Reformat a SQL script",
		Long: `Parse a SQL script and print it back with normalized case,
spacing, indentation and alignment. Reads standard input when no
files are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			d := dialect.Lookup(cfg.Dialect)
			script, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tokens, err := parser.Tokenize(script, cfg.Terminator, d)
			if err != nil {
				return err
			}
			slog.Debug("tokenized script", "tokens", len(tokens))
			p := parser.NewParser(d)
			p.IndentWidth = cfg.IndentWidth
			formatted, err := p.ParseScript(tokens)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), token.Concat(formatted))
			return err
		},
	}
}
