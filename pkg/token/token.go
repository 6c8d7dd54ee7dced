// Package token defines the token model shared by the lexer, the
// formatting parser, and the highlighter.
//
// The lexer produces tokens whose Source fields concatenate back to
// the original input byte-for-byte. The formatting parser emits a new
// stream that may additionally contain layout tokens (Indent,
// ValignMark, ValignApply) and reclassified tokens (DataType,
// Register, StatementEnd); those kinds never appear in lexer output.
package token

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the lexical or structural class of a token.
type Kind int32

const (
	// Lexer-produced kinds
	EOF Kind = iota
	Error
	Whitespace
	Comment
	Keyword
	Identifier
	Label
	Number
	String
	Operator
	Parameter
	Terminator

	// Formatter-introduced kinds; never legal as parser input
	DataType
	Register
	StatementEnd
	Indent
	ValignMark
	ValignApply
)

// kindNames maps kinds to their string representations.
var kindNames = map[Kind]string{
	EOF:          "EOF",
	Error:        "ERROR",
	Whitespace:   "WHITESPACE",
	Comment:      "COMMENT",
	Keyword:      "KEYWORD",
	Identifier:   "IDENTIFIER",
	Label:        "LABEL",
	Number:       "NUMBER",
	String:       "STRING",
	Operator:     "OPERATOR",
	Parameter:    "PARAMETER",
	Terminator:   "TERMINATOR",
	DataType:     "DATATYPE",
	Register:     "REGISTER",
	StatementEnd: "STATEMENT",
	Indent:       "INDENT",
	ValignMark:   "VALIGN",
	ValignApply:  "VAPPLY",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND(%d)", k)
}

// Token is an immutable lexical token.
//
// Value holds the semantic payload: the case-normalized text for
// keywords and identifiers (uppercased when the source was unquoted,
// source case when quoted), the unescaped content for strings, the
// canonical decimal rendering for numbers, the parameter name for
// named parameters (empty for positional ones), and the operator or
// terminator text otherwise. Number tokens additionally carry the
// exact decimal value in Dec; Indent tokens carry the nesting depth
// in Depth.
type Token struct {
	Kind   Kind
	Value  string
	Source string
	Pos    Position

	Dec   decimal.Decimal // Number only
	Depth int             // Indent only
}

// New creates a token with identical value and source text.
func New(kind Kind, text string, pos Position) Token {
	return Token{Kind: kind, Value: text, Source: text, Pos: pos}
}

// AsDataType returns a copy of a Keyword or Identifier token
// reclassified as a data type name.
func (t Token) AsDataType() Token {
	t.Kind = DataType
	return t
}

// AsRegister returns a copy of a Keyword or Identifier token
// reclassified as a special register name.
func (t Token) AsRegister() Token {
	t.Kind = Register
	return t
}

// AsIdentifier returns a copy of a Keyword token reclassified as a
// plain identifier.
func (t Token) AsIdentifier() Token {
	t.Kind = Identifier
	return t
}

// AsStatementEnd returns a copy of a Terminator or EOF token
// reclassified as a top-level statement end.
func (t Token) AsStatementEnd() Token {
	t.Kind = StatementEnd
	return t
}

// IsJunk returns true for tokens the parser skips between grammar
// symbols.
func (t Token) IsJunk() bool {
	return t.Kind == Whitespace || t.Kind == Comment
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at line %d, column %d", t.Kind, t.Value, t.Pos.Line, t.Pos.Column)
}

// Concat joins the source text of a token slice. Applied to a full
// lexer run it reproduces the input exactly; applied to formatter
// output it yields the reformatted SQL.
func Concat(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Source)
	}
	out := make([]byte, 0, n)
	for _, t := range tokens {
		out = append(out, t.Source...)
	}
	return string(out)
}
