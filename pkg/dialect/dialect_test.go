package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range []string{"sql92", "SQL92", "sql99", "sql2003", "db2luw", "DB2LUW"} {
		assert.NotNil(t, Lookup(name), "dialect %s should be registered", name)
	}
	assert.Nil(t, Lookup("oracle"))
}

func TestNames(t *testing.T) {
	names := Names()
	require.Len(t, names, 4)
	assert.Contains(t, names, "db2luw")
	assert.Contains(t, names, "sql92")
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, SQL92.IsKeyword("SELECT"))
	assert.True(t, DB2LUW.IsKeyword("SELECT"))
	assert.False(t, SQL92.IsKeyword("FOOBAR"))

	// Reserved sets differ across standards.
	assert.True(t, SQL99.IsKeyword("RECURSIVE"))
	assert.False(t, SQL92.IsKeyword("RECURSIVE"))
}

func TestDialectFeatures(t *testing.T) {
	assert.True(t, DB2LUW.CComments)
	assert.True(t, DB2LUW.ExtraOperators)
	assert.False(t, SQL92.ExtraOperators)
	assert.Equal(t, ";", DB2LUW.Terminator)
}

func TestIdentChars(t *testing.T) {
	assert.True(t, DB2LUW.IsIdentStart('A'))
	assert.True(t, DB2LUW.IsIdentStart('_'))
	assert.False(t, DB2LUW.IsIdentStart('1'))
	assert.True(t, DB2LUW.IsIdentChar('1'))
	assert.True(t, DB2LUW.IsIdentChar('$'))
	assert.False(t, SQL92.IsIdentChar('$'))
}

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		ident string
		want  bool
	}{
		{"FOO", false},
		{"FOO_1", false},
		{"foo", true},       // lowercase would not round-trip unquoted
		{"MY TABLE", true},  // space
		{"1ABC", true},      // leading digit
		{"SELECT", true},    // reserved word
		{"", true},          // empty
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DB2LUW.NeedsQuoting(tt.ident), "ident %q", tt.ident)
	}
}
