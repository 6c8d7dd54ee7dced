package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

// Lexer tokenizes SQL input.
//
// Unlike a conventional compiler lexer it is lossless: whitespace and
// comments are emitted as tokens, and concatenating the Source field
// of every emitted token reproduces the input exactly. Unrecognized
// input produces Error tokens rather than aborting; the stream always
// ends with a single EOF token.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	dialect *dialect.Dialect
	term    string // current statement terminator

	// SplitLines splits whitespace and comments at line boundaries so
	// no token spans more than one source line. Required when the
	// output feeds line-grouped highlighting.
	SplitLines bool

	// commentDepth > 0 while inside a block comment split across
	// lines; the next segments continue the comment.
	commentDepth int
}

// NewLexer creates a Lexer over input using the dialect's default
// terminator.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	return NewLexerWithTerminator(input, d, d.Terminator)
}

// NewLexerWithTerminator creates a Lexer with an explicit statement
// terminator, which may be any non-empty string.
func NewLexerWithTerminator(input string, d *dialect.Dialect, term string) *Lexer {
	l := &Lexer{
		input:   input,
		dialect: d,
		term:    term,
		line:    1,
		col:     1,
	}
	if len(input) > 0 {
		l.ch = input[0]
	}
	l.readPos = 1
	return l
}

// SetTerminator rebinds the statement terminator mid-stream. Routine
// bodies switch the outer terminator (commonly to "!") so that the
// semicolons of inner statements are not mistaken for statement ends.
func (l *Lexer) SetTerminator(term string) {
	if term != "" {
		l.term = term
	}
}

// Terminator returns the current statement terminator.
func (l *Lexer) Terminator() string {
	return l.term
}

// readChar advances to the next character, maintaining line and
// column counts. CR, LF and CRLF all count as a single line break.
func (l *Lexer) readChar() {
	switch l.ch {
	case '\n':
		l.line++
		l.col = 1
	case '\r':
		if l.readPos < len(l.input) && l.input[l.readPos] == '\n' {
			l.col++ // CRLF counts once, on the LF
		} else {
			l.line++
			l.col = 1
		}
	case 0:
	default:
		l.col++
	}
	l.pos = l.readPos
	l.readPos++
	if l.pos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.pos]
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.col}
}

// mark records the start of a token.
type mark struct {
	pos token.Position
	off int
}

func (l *Lexer) mark() mark {
	return mark{pos: l.currentPos(), off: l.pos}
}

// source returns the input consumed since m.
func (l *Lexer) source(m mark) string {
	return l.input[m.off:l.pos]
}

// emit builds a token from the input consumed since m.
func (l *Lexer) emit(kind token.Kind, value string, m mark) token.Token {
	return token.Token{Kind: kind, Value: value, Source: l.source(m), Pos: m.pos}
}

// NextToken returns the next token. After EOF it keeps returning EOF.
func (l *Lexer) NextToken() token.Token {
	if l.pos >= len(l.input) {
		return token.Token{Kind: token.EOF, Pos: l.currentPos()}
	}

	// Resume a block comment split at a line boundary.
	if l.commentDepth > 0 {
		if isSpace(l.ch) {
			return l.scanWhitespace()
		}
		return l.scanCommentSegment(l.mark())
	}

	// The terminator wins over any operator it may prefix.
	if strings.HasPrefix(l.input[l.pos:], l.term) {
		m := l.mark()
		for range l.term {
			l.readChar()
		}
		return l.emit(token.Terminator, l.term, m)
	}

	switch {
	case isSpace(l.ch):
		return l.scanWhitespace()
	case l.ch == '-' && l.peekChar() == '-':
		return l.scanLineComment(2)
	case l.ch == '/' && l.peekChar() == '*' && l.dialect.CComments:
		return l.scanBlockComment()
	case l.ch == '/' && l.peekChar() == '/' && l.dialect.CppComments:
		return l.scanLineComment(2)
	case l.ch == '\'':
		return l.scanString()
	case l.ch == '"':
		return l.scanQuotedIdent()
	case l.ch >= '0' && l.ch <= '9':
		return l.scanNumber()
	case l.ch == '.' && isDigit(l.peekChar()):
		return l.scanNumber()
	case l.ch == '?':
		m := l.mark()
		l.readChar()
		return l.emit(token.Parameter, "", m)
	case l.ch == ':':
		return l.scanNamedParameter()
	case l.dialect.IsIdentStart(l.ch):
		return l.scanIdent()
	default:
		return l.scanOperator()
	}
}

// Tokenize runs the lexer over the whole input. The returned slice
// always ends with an EOF token; lexical problems surface as Error
// tokens within it, not as a Go error.
func Tokenize(input, term string, d *dialect.Dialect) ([]token.Token, error) {
	if term == "" {
		term = d.Terminator
	}
	if term == "" {
		return nil, &LexError{Pos: token.Position{Line: 1, Column: 1}, Message: "empty statement terminator"}
	}
	l := NewLexerWithTerminator(input, d, term)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// TokenizeLines is Tokenize with line splitting enabled, so that no
// whitespace or comment token spans a line break.
func TokenizeLines(input, term string, d *dialect.Dialect) ([]token.Token, error) {
	if term == "" {
		term = d.Terminator
	}
	if term == "" {
		return nil, &LexError{Pos: token.Position{Line: 1, Column: 1}, Message: "empty statement terminator"}
	}
	l := NewLexerWithTerminator(input, d, term)
	l.SplitLines = true
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) scanWhitespace() token.Token {
	m := l.mark()
	for isSpace(l.ch) {
		brk := l.ch == '\n' || (l.ch == '\r' && l.peekChar() != '\n')
		l.readChar()
		if brk && l.SplitLines {
			break
		}
	}
	return l.emit(token.Whitespace, l.source(m), m)
}

// scanLineComment scans a comment running to end of line. The value
// is the comment text without the leading marker.
func (l *Lexer) scanLineComment(markerLen int) token.Token {
	m := l.mark()
	for i := 0; i < markerLen; i++ {
		l.readChar()
	}
	for l.ch != 0 && l.ch != '\n' && l.ch != '\r' {
		l.readChar()
	}
	src := l.source(m)
	return l.emit(token.Comment, src[markerLen:], m)
}

// scanBlockComment scans a /* ... */ comment, which may nest. When
// SplitLines is set and the comment spans lines, one Comment token is
// emitted per line segment with the line breaks between segments as
// Whitespace tokens.
func (l *Lexer) scanBlockComment() token.Token {
	m := l.mark()
	l.readChar() // skip '/'
	l.readChar() // skip '*'
	l.commentDepth = 1
	return l.scanCommentSegment(m)
}

// scanCommentSegment consumes comment text up to the comment close, a
// line boundary (SplitLines only), or end of input.
func (l *Lexer) scanCommentSegment(m mark) token.Token {
	for l.ch != 0 && l.commentDepth > 0 {
		if l.ch == '*' && l.peekChar() == '/' {
			l.commentDepth--
			l.readChar()
			l.readChar()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.commentDepth++
			l.readChar()
			l.readChar()
			continue
		}
		if l.SplitLines && (l.ch == '\n' || l.ch == '\r') {
			src := l.source(m)
			return token.Token{Kind: token.Comment, Value: commentText(src), Source: src, Pos: m.pos}
		}
		l.readChar()
	}
	if l.commentDepth > 0 {
		l.commentDepth = 0
		return l.emit(token.Error, "unterminated comment", m)
	}
	src := l.source(m)
	return l.emit(token.Comment, commentText(src), m)
}

// commentText strips comment markers from a comment source slice.
func commentText(src string) string {
	s := strings.TrimPrefix(src, "/*")
	s = strings.TrimSuffix(s, "*/")
	return s
}

func (l *Lexer) scanString() token.Token {
	m := l.mark()
	value, ok := l.scanQuoted('\'')
	if !ok {
		return l.emit(token.Error, "unterminated string literal", m)
	}
	return l.emit(token.String, value, m)
}

func (l *Lexer) scanQuotedIdent() token.Token {
	m := l.mark()
	value, ok := l.scanQuoted('"')
	if !ok {
		return l.emit(token.Error, "unterminated quoted identifier", m)
	}
	if value == "" {
		return l.emit(token.Error, "empty quoted identifier", m)
	}
	if l.ch == ':' && l.peekChar() != '=' {
		l.readChar()
		return l.emit(token.Label, value, m)
	}
	return l.emit(token.Identifier, value, m)
}

// scanQuoted consumes a quoted lexeme, unescaping doubled quote
// characters. Reports false if the closing quote is missing, in which
// case the rest of the input has been consumed.
func (l *Lexer) scanQuoted(quote byte) (string, bool) {
	l.readChar() // skip opening quote
	var out strings.Builder
	for l.ch != 0 {
		if l.ch == quote {
			if l.peekChar() == quote {
				out.WriteByte(quote)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return out.String(), true
		}
		out.WriteByte(l.ch)
		l.readChar()
	}
	return out.String(), false
}

func (l *Lexer) scanNumber() token.Token {
	m := l.mark()
	for isDigit(l.ch) {
		l.readChar()
	}
	// Fraction, unless the dot starts a ".." range operator.
	if l.ch == '.' && l.peekChar() != '.' {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		if isDigit(l.peekChar()) || ((l.peekChar() == '+' || l.peekChar() == '-') && l.digitAt(l.readPos+1)) {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	src := l.source(m)
	dec, err := decimal.NewFromString(src)
	if err != nil {
		return l.emit(token.Error, fmt.Sprintf("invalid numeric literal %q", src), m)
	}
	tok := l.emit(token.Number, dec.String(), m)
	tok.Dec = dec
	return tok
}

func (l *Lexer) digitAt(off int) bool {
	return off < len(l.input) && isDigit(l.input[off])
}

func (l *Lexer) scanNamedParameter() token.Token {
	m := l.mark()
	l.readChar() // skip ':'
	if !l.dialect.IsIdentStart(l.ch) {
		return l.emit(token.Error, "expected parameter name after ':'", m)
	}
	start := l.pos
	for l.dialect.IsIdentChar(l.ch) {
		l.readChar()
	}
	return l.emit(token.Parameter, strings.ToUpper(l.input[start:l.pos]), m)
}

func (l *Lexer) scanIdent() token.Token {
	m := l.mark()

	// Hex string literal: X'...'
	if (l.ch == 'x' || l.ch == 'X') && l.peekChar() == '\'' {
		l.readChar()
		digits, ok := l.scanQuoted('\'')
		if !ok {
			return l.emit(token.Error, "unterminated hex string literal", m)
		}
		value, err := decodeHexString(digits)
		if err != nil {
			return l.emit(token.Error, err.Error(), m)
		}
		return l.emit(token.String, value, m)
	}
	// National character string literal: N'...'
	if (l.ch == 'n' || l.ch == 'N') && l.peekChar() == '\'' {
		l.readChar()
		value, ok := l.scanQuoted('\'')
		if !ok {
			return l.emit(token.Error, "unterminated string literal", m)
		}
		return l.emit(token.String, value, m)
	}

	for l.dialect.IsIdentChar(l.ch) {
		l.readChar()
	}
	word := strings.ToUpper(l.source(m))
	if l.ch == ':' && l.peekChar() != '=' {
		l.readChar()
		return l.emit(token.Label, word, m)
	}
	if l.dialect.IsKeyword(word) {
		return l.emit(token.Keyword, word, m)
	}
	return l.emit(token.Identifier, word, m)
}

func decodeHexString(digits string) (string, error) {
	if len(digits)%2 != 0 {
		return "", fmt.Errorf("hex string literal has odd number of digits")
	}
	var out strings.Builder
	for i := 0; i < len(digits); i += 2 {
		hi, ok1 := hexVal(digits[i])
		lo, ok2 := hexVal(digits[i+1])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("invalid digit in hex string literal")
		}
		out.WriteByte(hi<<4 | lo)
	}
	return out.String(), nil
}

func hexVal(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

func (l *Lexer) scanOperator() token.Token {
	m := l.mark()
	two := ""
	if l.peekChar() != 0 {
		two = string(l.ch) + string(l.peekChar())
	}

	switch two {
	case "<=", ">=", "<>", "||":
		l.readChar()
		l.readChar()
		return l.emit(token.Operator, two, m)
	case "..", "!=", "!<", "!>", "^=", "^<", "^>":
		if l.dialect.ExtraOperators {
			l.readChar()
			l.readChar()
			return l.emit(token.Operator, two, m)
		}
	}

	// A semicolon that is not the bound terminator still separates the
	// inner statements of routine bodies.
	switch l.ch {
	case '+', '-', '*', '/', '=', '<', '>', '.', ',', '(', ')', '[', ']', ';':
		op := string(l.ch)
		l.readChar()
		return l.emit(token.Operator, op, m)
	}

	msg := fmt.Sprintf("unexpected character %q", string(l.ch))
	l.readChar()
	return l.emit(token.Error, msg, m)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
