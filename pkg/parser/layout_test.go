package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

func TestQuoteString(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"hello", "'hello'"},
		{"it's", "'it''s'"},
		{"a\nb", "'a' || X'0A' || 'b'"},
		{"\x01\x02", "X'0102'"},
		{"\ttab", "X'09' || 'tab'"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, QuoteString(tc.in), "QuoteString(%q)", tc.in)
	}
}

func TestFormatIdentQuoting(t *testing.T) {
	d := dialect.DB2LUW
	assert.Equal(t, "FOO", formatIdent(d, "FOO"))
	assert.Equal(t, `"Mixed"`, formatIdent(d, "Mixed"))
	assert.Equal(t, `"TWO WORDS"`, formatIdent(d, "TWO WORDS"))
	assert.Equal(t, `"SAY ""HI"""`, formatIdent(d, `SAY "HI"`))
	// Reserved words must be quoted to survive re-lexing.
	assert.Equal(t, `"SELECT"`, formatIdent(d, "SELECT"))
}

func TestFormatUppercasesKeywords(t *testing.T) {
	got := formatSQL(t, "select a from t where a = 1;", ";")
	assert.NotContains(t, got, "select")
	assert.Contains(t, got, "SELECT")
	assert.Contains(t, got, "WHERE")
}

func TestFormatNormalizesNumbers(t *testing.T) {
	got := formatSQL(t, "select 123.450 from t;", ";")
	assert.Contains(t, got, "123.45")
	assert.NotContains(t, got, "123.450")
}

func TestFormatPreservesQuotedIdentifiers(t *testing.T) {
	got := formatSQL(t, `select "Mixed" from t;`, ";")
	assert.Contains(t, got, `"Mixed"`)
}

func TestFormatRewritesStrings(t *testing.T) {
	got := formatSQL(t, "select 'it''s' from t;", ";")
	assert.Contains(t, got, "'it''s'")
}

func TestFormatParameters(t *testing.T) {
	got := formatSQL(t, "select ? from t where a = :name;", ";")
	assert.Contains(t, got, "?")
	assert.Contains(t, got, ":NAME")
}

func TestFormatIndentWidth(t *testing.T) {
	tokens, err := Tokenize("select 1 from t;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	p := NewParser(dialect.DB2LUW)
	p.IndentWidth = 2
	out, err := p.ParseScript(tokens)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n  1\nFROM\n  T;\n", token.Concat(out))
}

// The widest aligned column still gets one space before its type.
func TestAlignmentKeepsMinimumGap(t *testing.T) {
	got := formatSQL(t, "create table t (alpha integer, alphabet varchar(10));", ";")
	assert.Contains(t, got, "ALPHABET VARCHAR (10)")
	assert.Contains(t, got, "ALPHA    INTEGER")
}

func TestAlignmentInColumnComments(t *testing.T) {
	got := formatSQL(t, "comment on t (a is 'first', lengthy is 'second');", ";")
	assert.Contains(t, got, "A       IS 'first'")
	assert.Contains(t, got, "LENGTHY IS 'second'")
}

// Reformatted output positions are consistent with the concatenated
// text, so downstream consumers can trust them.
func TestOutputPositionsMatchText(t *testing.T) {
	tokens, err := Tokenize("create table t (id integer not null, name varchar(10));", ";", dialect.DB2LUW)
	require.NoError(t, err)
	out, err := NewParser(dialect.DB2LUW).ParseScript(tokens)
	require.NoError(t, err)

	text := token.Concat(out)
	lines := strings.Split(text, "\n")
	for _, tok := range out {
		if tok.Source == "" || strings.HasPrefix(tok.Source, "\n") {
			continue
		}
		require.LessOrEqual(t, tok.Pos.Line, len(lines))
		line := lines[tok.Pos.Line-1]
		require.LessOrEqual(t, tok.Pos.Column-1+len(tok.Source), len(line),
			"%s at %v overruns its line", tok.Kind, tok.Pos)
		assert.Equal(t, tok.Source, line[tok.Pos.Column-1:tok.Pos.Column-1+len(tok.Source)],
			"%s at %v", tok.Kind, tok.Pos)
	}
}
