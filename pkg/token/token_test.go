package token

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "KEYWORD", Keyword.String())
	assert.Equal(t, "STATEMENT", StatementEnd.String())
	assert.Equal(t, "INDENT", Indent.String())
	assert.Equal(t, "VALIGN", ValignMark.String())
	assert.Equal(t, "VAPPLY", ValignApply.String())
	assert.Equal(t, "KIND(999)", Kind(999).String())
}

func TestReclassifiersCopy(t *testing.T) {
	orig := Token{Kind: Keyword, Value: "VARCHAR", Source: "varchar", Pos: Position{Line: 3, Column: 9}}

	dt := orig.AsDataType()
	assert.Equal(t, DataType, dt.Kind)
	assert.Equal(t, Keyword, orig.Kind, "original token must be untouched")
	assert.Equal(t, orig.Value, dt.Value)
	assert.Equal(t, orig.Source, dt.Source)
	assert.Equal(t, orig.Pos, dt.Pos)

	assert.Equal(t, Register, orig.AsRegister().Kind)
	assert.Equal(t, Identifier, orig.AsIdentifier().Kind)
	assert.Equal(t, Keyword, orig.Kind)

	term := Token{Kind: Terminator, Value: ";", Source: ";"}
	assert.Equal(t, StatementEnd, term.AsStatementEnd().Kind)
	assert.Equal(t, Terminator, term.Kind)
}

func TestIsJunk(t *testing.T) {
	assert.True(t, Token{Kind: Whitespace, Source: "  "}.IsJunk())
	assert.True(t, Token{Kind: Comment, Source: "-- hi"}.IsJunk())
	assert.False(t, Token{Kind: Keyword, Value: "SELECT"}.IsJunk())
	assert.False(t, Token{Kind: EOF}.IsJunk())
}

func TestConcatReproducesSource(t *testing.T) {
	tokens := []Token{
		{Kind: Keyword, Value: "SELECT", Source: "Select"},
		{Kind: Whitespace, Value: " ", Source: " "},
		{Kind: Number, Value: "1", Source: "1"},
		{Kind: Terminator, Value: ";", Source: ";"},
		{Kind: EOF},
	}
	assert.Equal(t, "Select 1;", Concat(tokens))
	assert.Equal(t, "", Concat(nil))
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Identifier, Value: "FOO", Source: "foo", Pos: Position{Line: 2, Column: 5}}
	assert.Equal(t, `IDENTIFIER("FOO") at line 2, column 5`, tok.String())
}

func TestNumberCarriesDecimal(t *testing.T) {
	d := decimal.RequireFromString("123.45")
	tok := Token{Kind: Number, Value: d.String(), Source: "123.450", Dec: d}
	require.True(t, tok.Dec.Equal(decimal.RequireFromString("123.4500")))
	assert.Equal(t, "123.45", tok.Value)
}

func TestPositionIsValid(t *testing.T) {
	assert.True(t, Position{Line: 1, Column: 1}.IsValid())
	assert.False(t, Position{}.IsValid())
}
