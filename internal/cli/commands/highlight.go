package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/highlight"
	"github.com/waveform-computing/sqldoc/pkg/parser"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

// NewHighlightCommand creates the highlight command.
func NewHighlightCommand(getConfig ConfigFunc) *cobra.Command {
	var (
		raw         bool
		lineNumbers bool
	)
	cmd := &cobra.Command{
		Use:   "highlight [file...]",
		Short: "Highlight a SQL script",
		Long: `Parse a SQL script, reformat it and render it with syntax
highlighting as HTML or colored terminal output. With --raw the
script is highlighted as written, without reformatting.`,
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
			if !raw {
				p := parser.NewParser(d)
				p.IndentWidth = cfg.IndentWidth
				tokens, err = p.ParseScript(tokens)
				if err != nil {
					return err
				}
			}
			styles := highlight.DefaultStyles()
			if lineNumbers {
				return writeNumbered(cmd, tokens, styles, cfg.Output)
			}
			switch cfg.Output {
			case "html":
				markup, err := highlight.RenderHTML(highlight.HTMLNodes(tokens, styles))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
				return err
			case "ansi":
				_, err = fmt.Fprint(cmd.OutOrStdout(), highlight.Terminal(tokens, styles, highlight.DefaultTheme()))
				return err
			default:
				_, err = fmt.Fprint(cmd.OutOrStdout(), token.Concat(tokens))
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "highlight without reformatting")
	cmd.Flags().BoolVar(&lineNumbers, "line-numbers", false, "prefix each output line with its number")
	return cmd
}

// writeNumbered renders the token stream one line at a time with a
// right-aligned line number before each.
func writeNumbered(cmd *cobra.Command, tokens []token.Token, styles highlight.StyleMap, output string) error {
	var lines []string
	switch output {
	case "html":
		for _, nodes := range highlight.HTMLLines(tokens, styles) {
			markup, err := highlight.RenderHTML(nodes)
			if err != nil {
				return err
			}
			lines = append(lines, markup)
		}
	case "ansi":
		lines = strings.Split(highlight.Terminal(tokens, styles, highlight.DefaultTheme()), "\n")
	default:
		lines = strings.Split(token.Concat(tokens), "\n")
	}
	// Formatted output ends with a line break; no number for the
	// empty line after it.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	width := len(strconv.Itoa(len(lines)))
	out := cmd.OutOrStdout()
	for i, line := range lines {
		if _, err := fmt.Fprintf(out, "%*d  %s\n", width, i+1, line); err != nil {
			return err
		}
	}
	return nil
}
