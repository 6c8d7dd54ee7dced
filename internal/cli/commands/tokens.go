package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/parser"
)

// NewTokensCommand creates the tokens command, a debugging aid that
// dumps the raw token stream.
func NewTokensCommand(getConfig ConfigFunc) *cobra.Command {
	var lines bool
	cmd := &cobra.Command{
		Use:   "tokens [file...]",
		Short: "Dump the token stream of a SQL script",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			d := dialect.Lookup(cfg.Dialect)
			script, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			tokenize := parser.Tokenize
			if lines {
				tokenize = parser.TokenizeLines
			}
			tokens, err := tokenize(script, cfg.Terminator, d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				if _, err := fmt.Fprintf(out, "%d:%d\t%s\t%q\n",
					tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Value); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&lines, "split-lines", false, "split whitespace and comments at line breaks")
	return cmd
}
