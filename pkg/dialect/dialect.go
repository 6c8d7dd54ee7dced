// Package dialect defines the SQL dialect configuration consumed by
// the lexer and the formatting parser.
//
// A Dialect is a plain value passed in-process; nothing in this
// package reads configuration from disk.
package dialect

import "strings"

// Dialect describes the lexical profile of one SQL dialect: its
// reserved-word set, the characters legal in unquoted identifiers,
// which comment styles are recognized, and the default statement
// terminator.
type Dialect struct {
	Name string

	// Keywords is the reserved-word set, keyed by uppercase word.
	Keywords map[string]bool

	// IdentChars are the characters legal in an unquoted identifier.
	// NameChars is the subset that never forces quoting on output
	// (no lowercase letters, since unquoted names fold to uppercase).
	IdentChars string
	NameChars  string

	// Terminator is the default statement terminator. Callers may
	// override it per tokenize call, and rebind it mid-stream.
	Terminator string

	// CComments enables /* ... */ comments, CppComments enables
	// // comments. SQL -- comments are always recognized.
	CComments   bool
	CppComments bool

	// ExtraOperators enables the non-standard comparison negations
	// !=  !>  !<  ^=  ^>  ^< and the .. range operator.
	ExtraOperators bool
}

// IsKeyword reports whether word (in any case) is reserved.
func (d *Dialect) IsKeyword(word string) bool {
	return d.Keywords[strings.ToUpper(word)]
}

// IsIdentChar reports whether ch may appear in an unquoted identifier.
func (d *Dialect) IsIdentChar(ch byte) bool {
	return strings.IndexByte(d.IdentChars, ch) >= 0
}

// IsIdentStart reports whether ch may start an unquoted identifier.
// Leading digits are excluded so numbers lex as numbers.
func (d *Dialect) IsIdentStart(ch byte) bool {
	return d.IsIdentChar(ch) && (ch < '0' || ch > '9')
}

// NeedsQuoting reports whether an identifier must be quoted to
// round-trip: empty, leading digit, characters outside the name set,
// or collision with a reserved word.
func (d *Dialect) NeedsQuoting(ident string) bool {
	if ident == "" {
		return true
	}
	if ident[0] >= '0' && ident[0] <= '9' {
		return true
	}
	for i := 0; i < len(ident); i++ {
		if strings.IndexByte(d.NameChars, ident[i]) < 0 {
			return true
		}
	}
	return d.Keywords[ident]
}

// registry of built-in dialects, keyed by lowercase name.
var registry = map[string]*Dialect{}

func register(d *Dialect) *Dialect {
	registry[strings.ToLower(d.Name)] = d
	return d
}

// Lookup returns the built-in dialect with the given name
// (case-insensitive), or nil if none is registered.
func Lookup(name string) *Dialect {
	return registry[strings.ToLower(name)]
}

// Names returns the registered dialect names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, d := range registry {
		names = append(names, d.Name)
	}
	return names
}
