package parser

import (
	"fmt"
	"strings"

	"github.com/waveform-computing/sqldoc/pkg/token"
)

// LexError represents a lexical analysis error. The lexer itself
// never returns one for malformed input (it emits Error tokens); the
// parser converts an Error token it encounters into a LexError.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseError represents a parsing error with position information and
// a rendered window of the surrounding source. The final line of the
// window carries a caret under the offending column so callers can
// display the error without re-deriving positions.
type ParseError struct {
	Pos     token.Position
	Message string
	Context string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	if e.Context != "" {
		msg += "\n" + e.Context
	}
	return msg
}

// contextLines is the number of source lines rendered above the
// offending line in a ParseError context window.
const contextLines = 4

// renderContext renders the source lines leading up to tok, ending
// with a marker line pointing at its column.
func renderContext(source []token.Token, tok token.Token) string {
	text := token.Concat(source)
	lines := strings.Split(strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\r", "\n"), "\n")

	last := tok.Pos.Line
	if last < 1 || last > len(lines) {
		return ""
	}
	first := last - contextLines
	if first < 1 {
		first = 1
	}
	var out strings.Builder
	for i := first; i <= last; i++ {
		out.WriteString(lines[i-1])
		out.WriteByte('\n')
	}
	out.WriteString(strings.Repeat(" ", tok.Pos.Column-1))
	out.WriteByte('^')
	return out.String()
}

// describeTemplate renders a token template for error messages.
func describeTemplate(t template) string {
	if !t.anyValue && t.value != "" {
		return fmt.Sprintf("%q", t.value)
	}
	return t.kind.String()
}

func describeTemplates(ts []template) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = describeTemplate(t)
	}
	return strings.Join(names, ", ")
}

// describeToken renders a found token for error messages.
func describeToken(t token.Token) string {
	switch t.Kind {
	case token.EOF:
		return "end of input"
	case token.Keyword, token.Operator, token.Terminator:
		return fmt.Sprintf("%q", t.Value)
	default:
		return fmt.Sprintf("%s %q", t.Kind, t.Source)
	}
}

// Common error messages
const (
	errExpectedOneOf    = "expected one of %s but found %s"
	errExpectedSequence = "expected %s but found %s"
	errBadInput         = "tokens of kind %s are not valid parser input"
)
