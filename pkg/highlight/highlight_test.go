package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/parser"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

func lex(t *testing.T, sql string) []token.Token {
	t.Helper()
	tokens, err := parser.Tokenize(sql, ";", dialect.DB2LUW)
	require.NoError(t, err)
	return tokens
}

func format(t *testing.T, sql string) []token.Token {
	t.Helper()
	out, err := parser.NewParser(dialect.DB2LUW).ParseScript(lex(t, sql))
	require.NoError(t, err)
	return out
}

func TestResolveKindFallback(t *testing.T) {
	styles := StyleMap{
		{Kind: token.Keyword}:                  "kw",
		{Kind: token.Keyword, Value: "SELECT"}: "kw_select",
	}
	s, ok := styles.Resolve(token.Token{Kind: token.Keyword, Value: "SELECT"})
	assert.True(t, ok)
	assert.Equal(t, "kw_select", s)
	s, ok = styles.Resolve(token.Token{Kind: token.Keyword, Value: "FROM"})
	assert.True(t, ok)
	assert.Equal(t, "kw", s)
	_, ok = styles.Resolve(token.Token{Kind: token.Number, Value: "1"})
	assert.False(t, ok)
}

func TestResolveSuppression(t *testing.T) {
	styles := StyleMap{
		{Kind: token.Keyword}:                  "kw",
		{Kind: token.Keyword, Value: "SELECT"}: "",
	}
	s, ok := styles.Resolve(token.Token{Kind: token.Keyword, Value: "SELECT"})
	assert.False(t, ok)
	assert.Equal(t, "", s)
}

// Concatenating the fragments must reproduce the token sources, for
// raw and reformatted streams alike.
func TestHighlightIsTotal(t *testing.T) {
	for _, tokens := range [][]token.Token{
		lex(t, "select a, 'x' from t where b = :p; -- done"),
		format(t, "create table t (id integer not null, name varchar(10));"),
	} {
		frags := Highlight(tokens, DefaultStyles())
		assert.Len(t, frags, len(tokens))
		assert.Equal(t, token.Concat(tokens), Text(frags))
	}
}

func TestHighlightStyles(t *testing.T) {
	frags := Highlight(lex(t, "select 1 from t;"), DefaultStyles())
	byText := map[string]string{}
	for _, f := range frags {
		byText[f.Text] = f.Style
	}
	assert.Equal(t, "sql_keyword", byText["select"])
	assert.Equal(t, "sql_number", byText["1"])
	assert.Equal(t, "sql_identifier", byText["t"])
	assert.Equal(t, "sql_terminator", byText[";"])
	assert.Equal(t, "", byText[" "])
}

func TestLinesSplitAtBreaks(t *testing.T) {
	lines := Lines(format(t, "select 1 from t;"), DefaultStyles())
	var texts []string
	for _, line := range lines {
		texts = append(texts, Text(line))
	}
	assert.Equal(t, []string{"SELECT", "    1", "FROM", "    T;", ""}, texts)
	for _, line := range lines {
		for _, frag := range line {
			assert.NotContains(t, frag.Text, "\n")
		}
	}
}

func TestLinesHandleCarriageReturns(t *testing.T) {
	lines := Lines(lex(t, "select 1\r\nfrom t;"), DefaultStyles())
	var texts []string
	for _, line := range lines {
		texts = append(texts, Text(line))
	}
	assert.Equal(t, []string{"select 1", "from t;"}, texts)
}

func TestPrototypeFlattens(t *testing.T) {
	tokens, err := parser.Tokenize("foo(in x integer) returns integer", ";", dialect.DB2LUW)
	require.NoError(t, err)
	proto, err := parser.NewParser(dialect.DB2LUW).ParseRoutinePrototype(tokens)
	require.NoError(t, err)

	frags := Prototype(proto, DefaultStyles())
	text := Text(frags)
	assert.Equal(t, "FOO (IN X INTEGER) RETURNS INTEGER", text)
	assert.NotContains(t, text, "\n")
}

func TestRenderHTML(t *testing.T) {
	out, err := RenderHTML(HTMLNodes(lex(t, "select 1;"), DefaultStyles()))
	require.NoError(t, err)
	assert.Equal(t,
		`<span class="sql_keyword">select</span> <span class="sql_number">1</span><span class="sql_terminator">;</span>`,
		strings.TrimSuffix(out, "\n"))
}

func TestRenderHTMLEscapes(t *testing.T) {
	out, err := RenderHTML(HTMLNodes(lex(t, "select 'a<b';"), DefaultStyles()))
	require.NoError(t, err)
	assert.Contains(t, out, "&#39;a&lt;b&#39;")
	assert.NotContains(t, out, "'a<b'")
}

func TestHTMLLines(t *testing.T) {
	lines := HTMLLines(format(t, "select 1 from t;"), DefaultStyles())
	require.Len(t, lines, 5)
	first, err := RenderHTML(lines[0])
	require.NoError(t, err)
	assert.Equal(t, `<span class="sql_keyword">SELECT</span>`, first)
}

func TestTerminalHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	tokens := lex(t, "select 1 from t;")
	out := Terminal(tokens, DefaultStyles(), DefaultTheme())
	assert.Equal(t, token.Concat(tokens), out)
}
