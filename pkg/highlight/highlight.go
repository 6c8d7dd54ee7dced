// Package highlight renders token streams as styled output. Styles
// are resolved per token from a StyleMap, first by kind and value,
// then by kind alone; tokens without a style pass through unstyled.
package highlight

import (
	"strings"

	"github.com/waveform-computing/sqldoc/pkg/token"
)

// Key selects a style. A Key with an empty Value matches every token
// of its kind that has no value-specific entry.
type Key struct {
	Kind  token.Kind
	Value string
}

// StyleMap maps token classes to style names. An entry with an empty
// style name suppresses styling for tokens it matches.
type StyleMap map[Key]string

// Resolve returns the style for tok and whether one was found.
func (m StyleMap) Resolve(tok token.Token) (string, bool) {
	if s, ok := m[Key{Kind: tok.Kind, Value: tok.Value}]; ok {
		return s, s != ""
	}
	if s, ok := m[Key{Kind: tok.Kind}]; ok {
		return s, s != ""
	}
	return "", false
}

// Fragment is one styled span of output text. Every input token
// produces exactly one fragment, so concatenating the fragment text
// reproduces the token sources unchanged.
type Fragment struct {
	Text  string
	Style string
}

// DefaultStyles returns the stock style names, suitable for use as
// CSS classes.
func DefaultStyles() StyleMap {
	return StyleMap{
		{Kind: token.Error}:        "sql_error",
		{Kind: token.Comment}:      "sql_comment",
		{Kind: token.Keyword}:      "sql_keyword",
		{Kind: token.Identifier}:   "sql_identifier",
		{Kind: token.Label}:        "sql_identifier",
		{Kind: token.DataType}:     "sql_datatype",
		{Kind: token.Register}:     "sql_register",
		{Kind: token.Number}:       "sql_number",
		{Kind: token.String}:       "sql_string",
		{Kind: token.Operator}:     "sql_operator",
		{Kind: token.Parameter}:    "sql_parameter",
		{Kind: token.Terminator}:   "sql_terminator",
		{Kind: token.StatementEnd}: "sql_terminator",
	}
}

// Highlight converts a token stream into a flat fragment list.
func Highlight(tokens []token.Token, styles StyleMap) []Fragment {
	frags := make([]Fragment, 0, len(tokens))
	for _, tok := range tokens {
		style, _ := styles.Resolve(tok)
		frags = append(frags, Fragment{Text: tok.Source, Style: style})
	}
	return frags
}

// Lines converts a token stream into per-line fragment lists. A
// fragment whose text spans line breaks is divided at each break; the
// line break itself is not part of any fragment.
func Lines(tokens []token.Token, styles StyleMap) [][]Fragment {
	lines := [][]Fragment{nil}
	for _, frag := range Highlight(tokens, styles) {
		parts := splitLines(frag.Text)
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			n := len(lines) - 1
			lines[n] = append(lines[n], Fragment{Text: part, Style: frag.Style})
		}
	}
	return lines
}

// Prototype flattens a routine prototype onto a single line: every
// run of whitespace, including the line breaks the formatter emits,
// collapses to one space.
func Prototype(tokens []token.Token, styles StyleMap) []Fragment {
	var frags []Fragment
	space := false
	for _, tok := range tokens {
		switch tok.Kind {
		case token.Whitespace, token.Indent:
			space = true
			continue
		case token.EOF, token.StatementEnd:
			continue
		}
		if space && len(frags) > 0 {
			frags = append(frags, Fragment{Text: " "})
		}
		space = false
		style, _ := styles.Resolve(tok)
		text := tok.Source
		if text == "" {
			text = tok.Value
		}
		frags = append(frags, Fragment{Text: text, Style: style})
	}
	return frags
}

// Text concatenates the fragment text, dropping all styling.
func Text(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
	}
	return b.String()
}

// splitLines splits on \n, \r\n and bare \r, keeping empty segments
// so the caller sees one entry per line.
func splitLines(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			parts = append(parts, s[start:i])
			start = i + 1
		case '\r':
			parts = append(parts, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
