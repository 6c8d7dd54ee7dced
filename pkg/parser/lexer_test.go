package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

// kinds extracts the kind sequence of a token slice.
func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

// significant drops whitespace and comment tokens.
func significant(tokens []token.Token) []token.Token {
	var out []token.Token
	for _, t := range tokens {
		if !t.IsJunk() {
			out = append(out, t)
		}
	}
	return out
}

func TestTokenizeLossless(t *testing.T) {
	inputs := []string{
		"SELECT * FROM FOO;",
		"select\t\n  1,2, 3 from \"Quoted Name\" ;",
		"-- leading comment\nSELECT 'it''s ok' FROM T;\n",
		"/* block /* nested */ comment */ VALUES (1);",
		"INSERT INTO T VALUES (X'DEADBEEF', N'text', :name, ?);",
		"SELECT 1e10, 123.450, .5 FROM T;",
		"bad # input ; with @ junk",
		"SELECT 1\r\nFROM T\rWHERE X = 2\n;",
		"",
	}
	for _, input := range inputs {
		tokens, err := Tokenize(input, "", dialect.DB2LUW)
		require.NoError(t, err)
		require.NotEmpty(t, tokens)
		assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind, "stream must end with EOF")
		assert.Equal(t, input, token.Concat(tokens), "concatenated sources must reproduce input")
	}
}

func TestTokenizeEmptyTerminator(t *testing.T) {
	d := *dialect.DB2LUW
	d.Terminator = ""
	_, err := Tokenize("SELECT 1", "", &d)
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestTokenKinds(t *testing.T) {
	tokens, err := Tokenize("SELECT FOO, 'bar', 1.5 FROM T;", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	assert.Equal(t, []token.Kind{
		token.Keyword, token.Identifier, token.Operator, token.String,
		token.Operator, token.Number, token.Keyword, token.Identifier,
		token.Terminator, token.EOF,
	}, kinds(sig))
}

func TestIdentifierFolding(t *testing.T) {
	tokens, err := Tokenize(`select foo, "Bar" from t;`, "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)

	assert.Equal(t, token.Keyword, sig[0].Kind)
	assert.Equal(t, "SELECT", sig[0].Value)
	assert.Equal(t, "select", sig[0].Source)

	assert.Equal(t, "FOO", sig[1].Value, "unquoted identifiers fold to uppercase")
	assert.Equal(t, "Bar", sig[3].Value, "quoted identifiers keep their case")
	assert.Equal(t, `"Bar"`, sig[3].Source)
}

func TestStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`SELECT 'it''s ok';`, "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	require.Equal(t, token.String, sig[1].Kind)
	assert.Equal(t, "it's ok", sig[1].Value)
	assert.Equal(t, `'it''s ok'`, sig[1].Source)
}

func TestHexStringLiteral(t *testing.T) {
	tokens, err := Tokenize("VALUES X'414243';", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	require.Equal(t, token.String, sig[1].Kind)
	assert.Equal(t, "ABC", sig[1].Value)

	// Odd digit count is a lexical error, not a Go error.
	tokens, err = Tokenize("VALUES X'414';", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig = significant(tokens)
	assert.Equal(t, token.Error, sig[1].Kind)
}

func TestNationalStringLiteral(t *testing.T) {
	tokens, err := Tokenize("VALUES N'text';", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	require.Equal(t, token.String, sig[1].Kind)
	assert.Equal(t, "text", sig[1].Value)
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		value string
		dec   string
	}{
		{"0", "0", "0"},
		{"123.450", "123.45", "123.450"},
		{".5", "0.5", "0.5"},
		{"1e10", "10000000000", "1e10"},
		{"2.5E-2", "0.025", "0.025"},
	}
	for _, tt := range tests {
		tokens, err := Tokenize("VALUES "+tt.input+";", "", dialect.DB2LUW)
		require.NoError(t, err)
		sig := significant(tokens)
		require.Equal(t, token.Number, sig[1].Kind, "input %s", tt.input)
		assert.Equal(t, tt.value, sig[1].Value, "input %s", tt.input)
		assert.True(t, sig[1].Dec.Equal(decimal.RequireFromString(tt.dec)), "input %s", tt.input)
		assert.Equal(t, tt.input, sig[1].Source, "input %s", tt.input)
	}
}

func TestRangeOperatorDoesNotEatFraction(t *testing.T) {
	tokens, err := Tokenize("VALUES 1..5;", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	require.Equal(t, []token.Kind{
		token.Keyword, token.Number, token.Operator, token.Number,
		token.Terminator, token.EOF,
	}, kinds(sig))
	assert.Equal(t, "..", sig[2].Value)
}

func TestExtraOperatorsDialectGated(t *testing.T) {
	tokens, err := Tokenize("A != B", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	assert.Equal(t, "!=", sig[1].Value)

	tokens, err = Tokenize("A != B", "", dialect.SQL92)
	require.NoError(t, err)
	sig = significant(tokens)
	assert.Equal(t, token.Error, sig[1].Kind, "!= is not an operator in sql92")
}

func TestParameters(t *testing.T) {
	tokens, err := Tokenize("CALL P(?, :arg);", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	require.Equal(t, token.Parameter, sig[3].Kind)
	assert.Equal(t, "", sig[3].Value, "positional parameter has no name")
	require.Equal(t, token.Parameter, sig[5].Kind)
	assert.Equal(t, "ARG", sig[5].Value)
	assert.Equal(t, ":arg", sig[5].Source)
}

func TestLabels(t *testing.T) {
	tokens, err := Tokenize("loop1: LOOP x: y", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	require.Equal(t, token.Label, sig[0].Kind)
	assert.Equal(t, "LOOP1", sig[0].Value)
	assert.Equal(t, "loop1:", sig[0].Source)
	assert.Equal(t, token.Keyword, sig[1].Kind)
	assert.Equal(t, token.Label, sig[2].Kind)
}

func TestComments(t *testing.T) {
	tokens, err := Tokenize("-- line\nSELECT 1; /* a /* b */ c */", "", dialect.DB2LUW)
	require.NoError(t, err)
	assert.Equal(t, token.Comment, tokens[0].Kind)
	assert.Equal(t, " line", tokens[0].Value)
	last := tokens[len(tokens)-2]
	assert.Equal(t, token.Comment, last.Kind)
	assert.Equal(t, " a /* b */ c ", last.Value)
}

func TestBlockCommentsDisabledInAnsiDialects(t *testing.T) {
	tokens, err := Tokenize("/* x */", "", dialect.SQL92)
	require.NoError(t, err)
	assert.Equal(t, token.Operator, tokens[0].Kind, "slash lexes as division operator")
}

func TestUnterminatedComment(t *testing.T) {
	tokens, err := Tokenize("/* never closed", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	assert.Equal(t, token.Error, sig[0].Kind)
	assert.Equal(t, "unterminated comment", sig[0].Value)
}

func TestUnterminatedString(t *testing.T) {
	tokens, err := Tokenize("SELECT 'oops", "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	assert.Equal(t, token.Error, sig[1].Kind)
}

func TestLineAndColumnTracking(t *testing.T) {
	input := "SELECT 1\nFROM T\r\nWHERE X\rORDER"
	tokens, err := Tokenize(input, "", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)

	assert.Equal(t, token.Position{Line: 1, Column: 1}, sig[0].Pos) // SELECT
	assert.Equal(t, token.Position{Line: 1, Column: 8}, sig[1].Pos) // 1
	assert.Equal(t, token.Position{Line: 2, Column: 1}, sig[2].Pos) // FROM
	assert.Equal(t, token.Position{Line: 3, Column: 1}, sig[4].Pos) // WHERE
	assert.Equal(t, token.Position{Line: 4, Column: 1}, sig[6].Pos) // ORDER
}

func TestTerminatorRebinding(t *testing.T) {
	l := NewLexerWithTerminator("SELECT 1; SELECT 2@", dialect.DB2LUW, ";")
	var before []token.Token
	for {
		tok := l.NextToken()
		before = append(before, tok)
		if tok.Kind == token.Terminator {
			break
		}
	}
	assert.Equal(t, ";", before[len(before)-1].Value)

	l.SetTerminator("@")
	assert.Equal(t, "@", l.Terminator())
	var after []token.Token
	for {
		tok := l.NextToken()
		after = append(after, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	sig := significant(after)
	require.Equal(t, []token.Kind{
		token.Keyword, token.Number, token.Terminator, token.EOF,
	}, kinds(sig))
	assert.Equal(t, "@", sig[2].Value)
}

func TestSemicolonInsideRebindTerminator(t *testing.T) {
	tokens, err := Tokenize("BEGIN SET X = 1; END@", "@", dialect.DB2LUW)
	require.NoError(t, err)
	sig := significant(tokens)
	// The inner semicolon is an operator, not a terminator.
	assert.Equal(t, token.Operator, sig[5].Kind)
	assert.Equal(t, ";", sig[5].Value)
	assert.Equal(t, token.Terminator, sig[7].Kind)
	assert.Equal(t, "@", sig[7].Value)
}

func TestSplitLines(t *testing.T) {
	input := "SELECT 1 /* spans\ntwo lines */\n\nFROM T;"
	tokens, err := TokenizeLines(input, "", dialect.DB2LUW)
	require.NoError(t, err)
	assert.Equal(t, input, token.Concat(tokens))
	for _, tok := range tokens {
		assert.NotContains(t, tok.Source[:max(len(tok.Source)-1, 0)], "\n",
			"token %s may only end with a line break, not contain one", tok)
	}
}

func TestEOFIsSticky(t *testing.T) {
	l := NewLexer("A", dialect.DB2LUW)
	assert.Equal(t, token.Identifier, l.NextToken().Kind)
	assert.Equal(t, token.EOF, l.NextToken().Kind)
	assert.Equal(t, token.EOF, l.NextToken().Kind)
}
