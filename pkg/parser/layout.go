package parser

import (
	"fmt"
	"strings"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

// finish converts the recognized token stream into its final textual
// form: token sources are regenerated with canonical casing and
// quoting, Indent tokens become literal line breaks plus indentation,
// and vertical-alignment groups are converted into padding.
//
// Alignment conversion is iterative: padding one group shifts every
// later column, so positions are recomputed from scratch after each
// group until no ValignApply tokens remain. Each pass removes one
// apply token, which bounds the loop; exceeding the bound is an
// internal fault, not a user error.
func (r *run) finish() ([]token.Token, error) {
	statementEnd := r.cfg.Dialect.Terminator
	for _, t := range r.source {
		if t.Kind == token.Terminator {
			statementEnd = t.Value
			break
		}
	}

	out := r.out
	for i, t := range out {
		out[i] = r.reformatToken(t, statementEnd)
	}

	// Make the stream end with a single line break.
	if n := len(out); n > 0 && out[n-1].Kind == token.EOF {
		if n == 1 || out[n-2].Kind != token.Indent {
			out[n-1].Source = "\n"
		}
	}

	groups := 0
	for _, t := range out {
		if t.Kind == token.ValignApply {
			groups++
		}
	}
	for iter := 0; ; iter++ {
		if iter > groups {
			return nil, fmt.Errorf("internal: vertical alignment failed to converge after %d passes", iter)
		}
		recalcPositions(out)
		var done bool
		out, done = convertAlignGroup(out)
		if done {
			break
		}
	}
	recalcPositions(out)
	return out, nil
}

// reformatToken assigns the final source text of an output token.
func (r *run) reformatToken(t token.Token, statementEnd string) token.Token {
	d := r.cfg.Dialect
	switch t.Kind {
	case token.Keyword, token.Register, token.Number, token.Operator, token.Terminator:
		t.Source = t.Value
	case token.Identifier, token.DataType:
		t.Source = formatIdent(d, t.Value)
	case token.Label:
		t.Source = formatIdent(d, t.Value) + ":"
	case token.String:
		t.Source = QuoteString(t.Value)
	case token.Parameter:
		if t.Value == "" {
			t.Source = "?"
		} else {
			t.Source = ":" + t.Value
		}
	case token.StatementEnd:
		t.Source = statementEnd
		t.Value = statementEnd
	case token.Indent:
		t.Source = "\n" + strings.Repeat(" ", t.Depth*r.indentWidth())
	}
	return t
}

func (r *run) indentWidth() int {
	if r.cfg.IndentWidth > 0 {
		return r.cfg.IndentWidth
	}
	return DefaultIndentWidth
}

// recalcPositions rewrites every token's line and column from the
// concatenation of the final sources. Alignment marks have empty
// sources, so a mark's column is where the next token will start.
func recalcPositions(tokens []token.Token) {
	line, col := 1, 1
	for i := range tokens {
		tokens[i].Pos = token.Position{Line: line, Column: col}
		src := tokens[i].Source
		for j := 0; j < len(src); j++ {
			switch src[j] {
			case '\n':
				line++
				col = 1
			case '\r':
				if j+1 < len(src) && src[j+1] == '\n' {
					continue
				}
				line++
				col = 1
			default:
				col++
			}
		}
	}
}

// convertAlignGroup converts the first alignment group: every
// ValignMark before the first ValignApply becomes padding out to the
// rightmost mark column. Reports true when no groups remain.
func convertAlignGroup(tokens []token.Token) ([]token.Token, bool) {
	apply := -1
	for i, t := range tokens {
		if t.Kind == token.ValignApply {
			apply = i
			break
		}
	}
	if apply < 0 {
		return tokens, true
	}

	maxCol := 0
	for _, t := range tokens[:apply] {
		if t.Kind == token.ValignMark && t.Pos.Column > maxCol {
			maxCol = t.Pos.Column
		}
	}

	out := make([]token.Token, 0, len(tokens))
	for i, t := range tokens {
		switch {
		case i == apply:
			// dropped
		case t.Kind == token.ValignMark && i < apply:
			// At least one space, so the widest entry keeps a gap.
			pad := maxCol - t.Pos.Column + 1
			out = append(out, token.Token{
				Kind:   token.Whitespace,
				Value:  strings.Repeat(" ", pad),
				Source: strings.Repeat(" ", pad),
				Pos:    t.Pos,
			})
		default:
			out = append(out, t)
		}
	}
	return out, false
}

// formatIdent renders an identifier, quoting it only when required
// for the identifier to round-trip under the dialect's rules.
func formatIdent(d *dialect.Dialect, ident string) string {
	if d.NeedsQuoting(ident) {
		return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
	}
	return ident
}

// QuoteString renders a string literal. Runs of printable characters
// become ordinary quoted literals with doubled quote escapes; runs of
// control characters become hex string literals; mixed content is
// concatenated with the || operator.
func QuoteString(s string) string {
	if s == "" {
		return "''"
	}
	var parts []string
	for i := 0; i < len(s); {
		j := i
		if printable(s[i]) {
			for j < len(s) && printable(s[j]) {
				j++
			}
			parts = append(parts, "'"+strings.ReplaceAll(s[i:j], "'", "''")+"'")
		} else {
			for j < len(s) && !printable(s[j]) {
				j++
			}
			var hex strings.Builder
			for k := i; k < j; k++ {
				fmt.Fprintf(&hex, "%02X", s[k])
			}
			parts = append(parts, "X'"+hex.String()+"'")
		}
		i = j
	}
	return strings.Join(parts, " || ")
}

// printable reports whether b may appear literally inside a quoted
// string literal. Bytes above 0x7F are passed through so multi-byte
// UTF-8 sequences survive intact.
func printable(b byte) bool {
	return b >= 0x20 && b != 0x7F
}
