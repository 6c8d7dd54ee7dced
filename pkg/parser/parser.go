// Package parser implements the SQL front end: a lossless,
// dialect-parameterized lexer and a backtracking grammar engine that
// recognizes one statement (or a script of them) while rewriting its
// token stream into a canonical, indented layout.
//
// The engine works directly on tokens rather than building a syntax
// tree: every matched input token is appended to an output stream,
// reclassified where context demands it (a Keyword becomes a DataType
// once it provably names a type, a Terminator becomes a StatementEnd
// once it closes a top-level statement), and interleaved with layout
// tokens (Indent, ValignMark, ValignApply) that a final pass converts
// into literal whitespace.
//
// Grammar ambiguities are resolved speculatively: a checkpoint of
// (cursor, indent level, output length) is saved before attempting an
// alternative, and restored if the alternative fails. Output only
// ever grows while a checkpoint is live, so rollback is a cheap
// truncation.
package parser

import (
	"fmt"
	"strings"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

// DefaultIndentWidth is the number of spaces per indentation level in
// formatted output.
const DefaultIndentWidth = 4

// Parser holds the immutable configuration of the grammar engine. It
// is safe for concurrent use: every Parse call builds its own
// transient state and leaves nothing behind.
type Parser struct {
	Dialect     *dialect.Dialect
	IndentWidth int
}

// NewParser creates a Parser for the given dialect.
func NewParser(d *dialect.Dialect) *Parser {
	return &Parser{Dialect: d, IndentWidth: DefaultIndentWidth}
}

// ParseScript parses a script of statements separated by terminators
// and returns the reformatted token stream. Statements are separated
// by a blank line in the output. On error the input is not partially
// reformatted: the caller should fall back to displaying the original
// text.
func (p *Parser) ParseScript(tokens []token.Token) ([]token.Token, error) {
	r, err := p.newRun(tokens)
	if err != nil {
		return nil, err
	}
	if err := r.parseScript(); err != nil {
		return nil, r.bestError(err)
	}
	if len(r.states) != 0 {
		return nil, fmt.Errorf("internal: %d unconsumed parser checkpoints", len(r.states))
	}
	return r.finish()
}

// ParseRoutinePrototype parses a standalone routine signature (a
// qualified name, a parenthesized parameter list, and an optional
// RETURNS clause) as used for signature-only display of functions
// and procedures.
func (p *Parser) ParseRoutinePrototype(tokens []token.Token) ([]token.Token, error) {
	r, err := p.newRun(tokens)
	if err != nil {
		return nil, err
	}
	if err := r.parseRoutinePrototype(); err != nil {
		return nil, r.bestError(err)
	}
	if len(r.states) != 0 {
		return nil, fmt.Errorf("internal: %d unconsumed parser checkpoints", len(r.states))
	}
	return r.finish()
}

// ParseToString reformats a script and returns it as text. When the
// script cannot be parsed, the original text is returned unchanged
// rather than an error, so callers rendering documentation always get
// something to display.
func (p *Parser) ParseToString(tokens []token.Token) string {
	out, err := p.ParseScript(tokens)
	if err != nil {
		return token.Concat(tokens)
	}
	return token.Concat(out)
}

// template describes one acceptable token for match and expect. A
// template with anyValue set matches any token of its kind; otherwise
// the token's value must match too. Templates for kinds the lexer
// never produces (DataType, Register, StatementEnd) match the
// corresponding lexer kinds and reclassify on success.
type template struct {
	kind     token.Kind
	value    string
	anyValue bool
}

func kw(value string) template     { return template{kind: token.Keyword, value: value} }
func op(value string) template     { return template{kind: token.Operator, value: value} }
func reg(value string) template    { return template{kind: token.Register, value: value} }
func ofKind(k token.Kind) template { return template{kind: k, anyValue: true} }

// state is a parser checkpoint.
type state struct {
	idx    int
	level  int
	outLen int
}

// run is the transient state of a single parse call.
type run struct {
	cfg    *Parser
	source []token.Token // unmodified input, for error context
	tokens []token.Token // input with junk filtered to the side
	junk   [][]token.Token
	idx    int
	out    []token.Token
	level  int
	states []state

	// furthest-progressed failure across all alternatives tried
	furthest    *ParseError
	furthestIdx int
}

// newRun validates and indexes the input token stream. Whitespace is
// discarded (the formatter regenerates all spacing); comments are
// kept aside and re-emitted next to the token that follows them.
func (p *Parser) newRun(tokens []token.Token) (*run, error) {
	r := &run{cfg: p, source: tokens}
	var pending []token.Token
	for _, t := range tokens {
		switch t.Kind {
		case token.Error:
			return nil, &LexError{Pos: t.Pos, Message: t.Value}
		case token.Whitespace:
		case token.Comment:
			pending = append(pending, t)
		case token.DataType, token.Register, token.StatementEnd, token.Indent, token.ValignMark, token.ValignApply:
			return nil, fmt.Errorf(errBadInput, t.Kind)
		default:
			r.tokens = append(r.tokens, t)
			r.junk = append(r.junk, pending)
			pending = nil
		}
	}
	if len(r.tokens) == 0 || r.tokens[len(r.tokens)-1].Kind != token.EOF {
		return nil, &ParseError{Message: "token stream does not end with EOF"}
	}
	return r, nil
}

// cur returns the token under the cursor. The cursor never moves past
// the trailing EOF token.
func (r *run) cur() token.Token {
	return r.tokens[r.idx]
}

// peek returns the token n positions ahead of the cursor, or the
// trailing EOF token when that runs off the end.
func (r *run) peek(n int) token.Token {
	i := r.idx + n
	if i >= len(r.tokens) {
		i = len(r.tokens) - 1
	}
	return r.tokens[i]
}

// --- checkpoints ------------------------------------------------------

func (r *run) saveState() {
	r.states = append(r.states, state{idx: r.idx, level: r.level, outLen: len(r.out)})
}

func (r *run) restoreState() {
	s := r.states[len(r.states)-1]
	r.states = r.states[:len(r.states)-1]
	r.idx = s.idx
	r.level = s.level
	r.out = r.out[:s.outLen]
}

func (r *run) forgetState() {
	r.states = r.states[:len(r.states)-1]
}

// try runs fn speculatively: on failure the cursor, indent level and
// output are rolled back and false is returned. The failure itself is
// still recorded for error reporting, so that when no alternative
// matches the reported error is the one that progressed furthest.
func (r *run) try(fn func() error) bool {
	r.saveState()
	if err := fn(); err != nil {
		r.restoreState()
		return false
	}
	r.forgetState()
	return true
}

// --- matching ---------------------------------------------------------

// cmpToken matches tok against tmpl, returning the token to emit.
// Reclassifying templates convert on success: an Identifier template
// accepts a Keyword (names may collide with reserved words), DataType
// and Register templates accept Keywords and Identifiers, and a
// StatementEnd template accepts a Terminator or EOF.
func cmpToken(tok token.Token, tmpl template) (token.Token, bool) {
	if tok.Kind == tmpl.kind {
		if tmpl.anyValue || tok.Value == tmpl.value {
			return tok, true
		}
		return token.Token{}, false
	}
	switch tmpl.kind {
	case token.Keyword:
		// Grammar words are matched by value regardless of whether
		// the configured dialect reserves them, so the same grammar
		// serves every dialect.
		if tok.Kind == token.Identifier && !tmpl.anyValue && tok.Value == tmpl.value {
			tok.Kind = token.Keyword
			return tok, true
		}
	case token.Identifier:
		// A reserved word serves as an identifier only where the
		// grammar asks for that exact word; a bare identifier slot
		// never swallows a keyword, so a misplaced keyword is
		// reported at its own position.
		if tok.Kind == token.Keyword && !tmpl.anyValue && tok.Value == tmpl.value {
			return tok.AsIdentifier(), true
		}
	case token.DataType:
		if tok.Kind == token.Identifier && (tmpl.anyValue || tok.Value == tmpl.value) {
			return tok.AsDataType(), true
		}
		if tok.Kind == token.Keyword && !tmpl.anyValue && tok.Value == tmpl.value {
			return tok.AsDataType(), true
		}
	case token.Register:
		if (tok.Kind == token.Identifier || tok.Kind == token.Keyword) && !tmpl.anyValue && tok.Value == tmpl.value {
			return tok.AsRegister(), true
		}
	case token.StatementEnd:
		if tok.Kind == token.Terminator || tok.Kind == token.EOF {
			return tok.AsStatementEnd(), true
		}
	}
	return token.Token{}, false
}

// match tries to consume one token matching tmpl, emitting it (and
// any comments preceding it) on success.
func (r *run) match(tmpl template) (token.Token, bool) {
	tok, ok := cmpToken(r.cur(), tmpl)
	if !ok {
		return token.Token{}, false
	}
	for _, c := range r.junk[r.idx] {
		r.emit(c)
		if isLineComment(c) {
			// A line comment swallows everything to the end of the
			// line, so what follows must start a fresh one.
			r.newline()
		}
	}
	r.emit(tok)
	if r.idx < len(r.tokens)-1 {
		r.idx++
	} else {
		// EOF can be matched more than once (as StatementEnd, then
		// as itself); flush its comments only the first time.
		r.junk[r.idx] = nil
	}
	return tok, true
}

// isLineComment reports whether a comment runs to end of line rather
// than having an explicit close marker.
func isLineComment(t token.Token) bool {
	return t.Kind == token.Comment && !strings.HasPrefix(t.Source, "/*")
}

// matchOneOf tries each template in turn.
func (r *run) matchOneOf(tmpls ...template) (token.Token, bool) {
	for _, t := range tmpls {
		if tok, ok := r.match(t); ok {
			return tok, true
		}
	}
	return token.Token{}, false
}

// expect consumes one token matching tmpl or fails.
func (r *run) expect(tmpl template) (token.Token, error) {
	if tok, ok := r.match(tmpl); ok {
		return tok, nil
	}
	return token.Token{}, r.fail(errExpectedSequence, []template{tmpl})
}

// expectOneOf consumes one token matching any of tmpls or fails.
func (r *run) expectOneOf(tmpls ...template) (token.Token, error) {
	if tok, ok := r.matchOneOf(tmpls...); ok {
		return tok, nil
	}
	return token.Token{}, r.fail(errExpectedOneOf, tmpls)
}

// fail builds a ParseError at the cursor and records it if it is the
// furthest-progressed failure seen so far.
func (r *run) fail(format string, expected []template) error {
	tok := r.cur()
	err := &ParseError{
		Pos:     tok.Pos,
		Message: fmt.Sprintf(format, describeTemplates(expected), describeToken(tok)),
		Context: renderContext(r.source, tok),
	}
	if r.furthest == nil || r.idx >= r.furthestIdx {
		r.furthest = err
		r.furthestIdx = r.idx
	}
	return err
}

// bestError prefers the furthest-progressed failure over err, which
// may be an early alternative's complaint.
func (r *run) bestError(err error) error {
	if _, ok := err.(*ParseError); ok && r.furthest != nil {
		return r.furthest
	}
	return err
}

// --- keyword shorthand ------------------------------------------------

// matchKw consumes the given keyword sequence if fully present.
// Partial matches roll back.
func (r *run) matchKw(words ...string) bool {
	if len(words) == 1 {
		_, ok := r.match(kw(words[0]))
		return ok
	}
	return r.try(func() error {
		return r.expectKw(words...)
	})
}

// expectKw consumes the given keyword sequence or fails.
func (r *run) expectKw(words ...string) error {
	for _, w := range words {
		if _, err := r.expect(kw(w)); err != nil {
			return err
		}
	}
	return nil
}

// matchKwOneOf consumes a single keyword from the set.
func (r *run) matchKwOneOf(words ...string) (string, bool) {
	for _, w := range words {
		if _, ok := r.match(kw(w)); ok {
			return w, true
		}
	}
	return "", false
}

// expectKwOneOf consumes a single keyword from the set or fails.
func (r *run) expectKwOneOf(words ...string) (string, error) {
	if w, ok := r.matchKwOneOf(words...); ok {
		return w, nil
	}
	tmpls := make([]template, len(words))
	for i, w := range words {
		tmpls[i] = kw(w)
	}
	return "", r.fail(errExpectedOneOf, tmpls)
}

// curIsKw reports whether the cursor sits on one of the given
// keywords without consuming anything. Like match with a keyword
// template, it also accepts identifier tokens of the same value, so a
// lookahead agrees with the match that follows it.
func (r *run) curIsKw(words ...string) bool {
	c := r.cur()
	if c.Kind != token.Keyword && c.Kind != token.Identifier {
		return false
	}
	for _, w := range words {
		if c.Value == w {
			return true
		}
	}
	return false
}

// --- output -----------------------------------------------------------

// needSpaceBefore reports whether a space belongs before t when the
// previous output token does not forbid one.
func needSpaceBefore(t token.Token) bool {
	switch t.Kind {
	case token.Operator:
		switch t.Value {
		case ".", ",", ")", "]", ";":
			return false
		}
	case token.Terminator, token.StatementEnd:
		return false
	}
	return true
}

// needSpaceAfter reports whether a space belongs after t.
func needSpaceAfter(t token.Token) bool {
	if t.Kind == token.Operator {
		switch t.Value {
		case ".", "(", "[":
			return false
		}
	}
	return true
}

// emit appends t to the output, inserting a single space where the
// spacing rules call for one.
func (r *run) emit(t token.Token) {
	if n := len(r.out); n > 0 {
		last := r.out[n-1]
		if last.Kind != token.Whitespace && last.Kind != token.Indent &&
			last.Kind != token.ValignMark && last.Kind != token.ValignApply &&
			needSpaceAfter(last) && needSpaceBefore(t) {
			r.out = append(r.out, token.Token{Kind: token.Whitespace, Value: " ", Source: " "})
		}
	}
	r.out = append(r.out, t)
}

// newline appends an Indent token at the current level.
func (r *run) newline() {
	r.newlineBefore(0)
}

// newlineBefore inserts an Indent token before the last n output
// tokens, so a construct can be pushed onto a fresh line after it has
// already been matched. A space immediately before the insertion
// point is dropped.
func (r *run) newlineBefore(n int) {
	at := len(r.out) - n
	if at > 0 && r.out[at-1].Kind == token.Whitespace {
		r.out = append(r.out[:at-1], r.out[at:]...)
		at--
	}
	if at > 0 && r.out[at-1].Kind == token.Indent {
		// Already at the start of a line; adopt the current level
		// instead of emitting an empty line.
		r.out[at-1].Depth = r.level
		return
	}
	ind := token.Token{Kind: token.Indent, Depth: r.level}
	r.out = append(r.out, token.Token{})
	copy(r.out[at+1:], r.out[at:])
	r.out[at] = ind
}

// blankLine emits an empty line, bypassing newline's collapsing.
func (r *run) blankLine() {
	r.newline()
	r.out = append(r.out, token.Token{Kind: token.Indent, Depth: r.level})
}

// trimTrailingNewline drops a line break left dangling by the last
// clause's outdent, so a terminator stays on the statement's final
// line.
func (r *run) trimTrailingNewline() {
	if n := len(r.out); n > 0 && r.out[n-1].Kind == token.Indent {
		r.out = r.out[:n-1]
	}
}

// indent bumps the nesting level and starts a new line at it.
func (r *run) indent() {
	r.level++
	r.newline()
}

// outdent drops the nesting level and starts a new line at it.
func (r *run) outdent() {
	r.level--
	r.newline()
}

// valign marks the current output position for vertical alignment.
func (r *run) valign() {
	r.out = append(r.out, token.Token{Kind: token.ValignMark})
}

// vapply closes the current vertical-alignment group.
func (r *run) vapply() {
	r.out = append(r.out, token.Token{Kind: token.ValignApply})
}

// --- entry points -----------------------------------------------------

// parseScript repeatedly parses one top-level statement followed by a
// statement end until the input is exhausted.
func (r *run) parseScript() error {
	for {
		if r.cur().Kind == token.EOF {
			// Flush trailing comments and close the stream.
			r.match(ofKind(token.EOF))
			return nil
		}
		if err := r.parseStatement(); err != nil {
			return err
		}
		r.trimTrailingNewline()
		if _, err := r.expect(ofKind(token.StatementEnd)); err != nil {
			return err
		}
		if r.cur().Kind != token.EOF {
			// Blank line between statements.
			r.blankLine()
		}
	}
}

// parseRoutinePrototype parses a routine signature: a qualified name,
// a parameter list, and an optional RETURNS clause.
func (r *run) parseRoutinePrototype() error {
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if _, ok := r.match(op(")")); !ok {
		for {
			// Parameter direction and name are both optional; a lone
			// datatype is a valid parameter, so the name is tried
			// speculatively together with the type that must follow.
			r.matchKwOneOf("IN", "OUT", "INOUT")
			named := r.try(func() error {
				if _, err := r.expect(ofKind(token.Identifier)); err != nil {
					return err
				}
				return r.parseDataType()
			})
			if !named {
				if err := r.parseDataType(); err != nil {
					return err
				}
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	if r.matchKw("RETURNS") {
		if err := r.parseDataType(); err != nil {
			return err
		}
	}
	return nil
}
