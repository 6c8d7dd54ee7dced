package parser

import "github.com/waveform-computing/sqldoc/pkg/token"

// This file covers the expression layer of the grammar: names, data
// types, scalar expressions, predicates and search conditions,
// function calls, CASE and CAST.

// --- names ------------------------------------------------------------

// parseSubschemaName parses a name with an optional schema qualifier.
func (r *run) parseSubschemaName() error {
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	if _, ok := r.match(op(".")); ok {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
	}
	return nil
}

// parseSubrelationName parses a column name with up to two optional
// qualifiers (schema.relation.column).
func (r *run) parseSubrelationName() error {
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if _, ok := r.match(op(".")); !ok {
			break
		}
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
	}
	return nil
}

// parseIdentList parses a comma-separated identifier list.
func (r *run) parseIdentList() error {
	for {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

// --- data types -------------------------------------------------------

func dt(value string) template { return template{kind: token.DataType, value: value} }

// builtinTypes maps a leading type word to the optional words that
// may follow it. Every matched word is reclassified as a DataType.
var builtinTypes = [][]string{
	{"CHARACTER", "VARYING"},
	{"CHAR", "VARYING"},
	{"CHARACTER"},
	{"CHAR"},
	{"VARCHAR"},
	{"LONG", "VARCHAR"},
	{"CLOB"},
	{"BLOB"},
	{"DBCLOB"},
	{"VARGRAPHIC"},
	{"LONG", "VARGRAPHIC"},
	{"GRAPHIC"},
	{"SMALLINT"},
	{"INTEGER"},
	{"INT"},
	{"BIGINT"},
	{"DECIMAL"},
	{"DEC"},
	{"NUMERIC"},
	{"NUM"},
	{"DOUBLE", "PRECISION"},
	{"DOUBLE"},
	{"REAL"},
	{"FLOAT"},
	{"DECFLOAT"},
	{"DATE"},
	{"TIME"},
	{"TIMESTAMP"},
	{"BOOLEAN"},
	{"XML"},
}

// parseDataType parses a built-in or user-defined type name with an
// optional size or precision suffix. A built-in name and a
// user-defined name share lexical shape, so the built-in grammar is
// tried speculatively first.
func (r *run) parseDataType() error {
	builtin := r.try(func() error {
		return r.parseBuiltinType()
	})
	if !builtin {
		// [schema.] user-defined type name
		if _, err := r.expect(ofKind(token.DataType)); err != nil {
			return err
		}
		if _, ok := r.match(op(".")); ok {
			if _, err := r.expect(ofKind(token.DataType)); err != nil {
				return err
			}
		}
	}
	return r.parseDataTypeSize()
}

func (r *run) parseBuiltinType() error {
	for _, words := range builtinTypes {
		if _, ok := r.match(dt(words[0])); ok {
			for _, w := range words[1:] {
				if _, err := r.expect(dt(w)); err != nil {
					return err
				}
			}
			// A built-in name followed by a period is really a
			// schema qualifier on a user-defined type.
			if r.cur().Kind == token.Operator && r.cur().Value == "." {
				return r.fail(errExpectedSequence, []template{ofKind(token.DataType)})
			}
			return nil
		}
	}
	return r.fail(errExpectedSequence, []template{ofKind(token.DataType)})
}

// parseDataTypeSize parses the optional (size[,scale]) suffix with
// its unit multipliers, and the FOR BIT DATA modifier.
func (r *run) parseDataTypeSize() error {
	if _, ok := r.match(op("(")); ok {
		if _, err := r.expect(ofKind(token.Number)); err != nil {
			return err
		}
		r.matchKwOneOf("K", "M", "G")
		r.matchKwOneOf("OCTETS", "CODEUNITS16", "CODEUNITS32")
		if _, ok := r.match(op(",")); ok {
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	if r.curIsKw("FOR") && r.peekIsWord(1, "BIT") {
		r.matchKw("FOR")
		r.matchKw("BIT")
		if err := r.expectKw("DATA"); err != nil {
			return err
		}
	}
	return nil
}

// peekIsWord reports whether the token n ahead is a keyword or
// identifier with the given uppercase value.
func (r *run) peekIsWord(n int, value string) bool {
	t := r.peek(n)
	return (t.Kind == token.Keyword || t.Kind == token.Identifier) && t.Value == value
}

// --- special registers ------------------------------------------------

// currentRegisters are the register phrases that may follow CURRENT.
// Longer phrases sort first so the longest match wins.
var currentRegisters = [][]string{
	{"MAINTAINED", "TABLE", "TYPES", "FOR", "OPTIMIZATION"},
	{"DECIMAL", "FLOAT", "ROUNDING", "MODE"},
	{"DEFAULT", "TRANSFORM", "GROUP"},
	{"EXPLAIN", "SNAPSHOT"},
	{"EXPLAIN", "MODE"},
	{"FEDERATED", "ASYNCHRONY"},
	{"IMPLICIT", "XMLPARSE", "OPTION"},
	{"LOCK", "TIMEOUT"},
	{"OPTIMIZATION", "PROFILE"},
	{"PACKAGE", "PATH"},
	{"QUERY", "OPTIMIZATION"},
	{"REFRESH", "AGE"},
	{"CLIENT_ACCTNG"},
	{"CLIENT_APPLNAME"},
	{"CLIENT_USERID"},
	{"CLIENT_WRKSTNNAME"},
	{"DATE"},
	{"DBPARTITIONNUM"},
	{"DEGREE"},
	{"ISOLATION"},
	{"PATH"},
	{"SCHEMA"},
	{"SERVER"},
	{"SQLID"},
	{"TIMESTAMP"},
	{"TIMEZONE"},
	{"TIME"},
	{"USER"},
}

// singleRegisters are the one-word special registers.
var singleRegisters = []string{
	"CURRENT_DATE", "CURRENT_PATH", "CURRENT_SCHEMA", "CURRENT_TIME",
	"CURRENT_TIMESTAMP", "CURRENT_USER", "SESSION_USER", "SYSTEM_USER",
	"USER",
}

// parseSpecialRegister parses a special register reference such as
// CURRENT DATE, reclassifying every matched word as a Register.
func (r *run) parseSpecialRegister() error {
	if _, ok := r.match(reg("CURRENT")); ok {
		for _, phrase := range currentRegisters {
			if r.try(func() error {
				for _, w := range phrase {
					if _, err := r.expect(reg(w)); err != nil {
						return err
					}
				}
				return nil
			}) {
				return nil
			}
		}
		return r.fail(errExpectedSequence, []template{ofKind(token.Register)})
	}
	for _, w := range singleRegisters {
		if _, ok := r.match(reg(w)); ok {
			return nil
		}
	}
	return r.fail(errExpectedSequence, []template{ofKind(token.Register)})
}

// --- expressions ------------------------------------------------------

// parseExpression parses a scalar expression with the usual
// precedence: additive and concatenation operators bind loosest,
// multiplicative operators tighter, primaries tightest.
func (r *run) parseExpression() error {
	if err := r.parseTerm(); err != nil {
		return err
	}
	for {
		if _, ok := r.matchOneOf(op("+"), op("-"), op("||"), kw("CONCAT")); !ok {
			return nil
		}
		if err := r.parseTerm(); err != nil {
			return err
		}
	}
}

func (r *run) parseTerm() error {
	if err := r.parseFactor(); err != nil {
		return err
	}
	for {
		if _, ok := r.matchOneOf(op("*"), op("/")); !ok {
			return nil
		}
		if err := r.parseFactor(); err != nil {
			return err
		}
	}
}

func (r *run) parseFactor() error {
	r.matchOneOf(op("+"), op("-"))
	return r.parsePrimary()
}

func (r *run) parsePrimary() error {
	switch {
	case r.cur().Kind == token.Number,
		r.cur().Kind == token.String,
		r.cur().Kind == token.Parameter:
		_, err := r.expectOneOf(ofKind(token.Number), ofKind(token.String), ofKind(token.Parameter))
		return err
	}
	if _, ok := r.matchOneOf(kw("NULL"), kw("DEFAULT")); ok {
		return nil
	}
	if r.curIsKw("CAST") {
		return r.parseCast()
	}
	if r.curIsKw("CASE") {
		return r.parseCaseExpression()
	}
	if r.cur().Kind == token.Operator && r.cur().Value == "(" {
		return r.parseExpressionTuple()
	}
	// A special register, a function call, or a column reference, in
	// that order of preference.
	if r.try(func() error { return r.parseSpecialRegister() }) {
		return nil
	}
	if r.try(func() error { return r.parseFunctionCall() }) {
		return nil
	}
	return r.parseSubrelationName()
}

// parseExpressionTuple parses a parenthesized construct in expression
// position: a scalar subquery or a tuple of expressions.
func (r *run) parseExpressionTuple() error {
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if !r.try(func() error {
		if err := r.parseFullSelect(); err != nil {
			return err
		}
		_, err := r.expect(op(")"))
		return err
	}) {
		for {
			if err := r.parseExpression(); err != nil {
				return err
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) parseExpressionList() error {
	for {
		if err := r.parseExpression(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

// parseCast parses CAST(expression AS datatype).
func (r *run) parseCast() error {
	if err := r.expectKw("CAST"); err != nil {
		return err
	}
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if err := r.parseExpression(); err != nil {
		return err
	}
	if err := r.expectKw("AS"); err != nil {
		return err
	}
	if err := r.parseDataType(); err != nil {
		return err
	}
	_, err := r.expect(op(")"))
	return err
}

// parseCaseExpression parses both the simple and the searched CASE
// forms.
func (r *run) parseCaseExpression() error {
	if err := r.expectKw("CASE"); err != nil {
		return err
	}
	searched := r.curIsKw("WHEN")
	if !searched {
		if err := r.parseExpression(); err != nil {
			return err
		}
	}
	r.indent()
	for {
		if err := r.expectKw("WHEN"); err != nil {
			return err
		}
		if searched {
			if err := r.parseSearchCondition(); err != nil {
				return err
			}
		} else {
			if err := r.parseExpression(); err != nil {
				return err
			}
		}
		if err := r.expectKw("THEN"); err != nil {
			return err
		}
		if err := r.parseExpression(); err != nil {
			return err
		}
		if !r.curIsKw("WHEN") {
			break
		}
		r.newline()
	}
	if r.curIsKw("ELSE") {
		r.newline()
		r.matchKw("ELSE")
		if err := r.parseExpression(); err != nil {
			return err
		}
	}
	r.outdent()
	return r.expectKw("END")
}

// --- function calls ---------------------------------------------------

// parseFunctionCall parses an aggregate, scalar or OLAP function
// call: [schema.]name(args) with an optional OVER window clause.
func (r *run) parseFunctionCall() error {
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if _, ok := r.match(op(")")); !ok {
		r.matchKwOneOf("ALL", "DISTINCT")
		if _, ok := r.match(op("*")); !ok {
			if err := r.parseExpressionList(); err != nil {
				return err
			}
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	if r.matchKw("OVER") {
		return r.parseOlapWindow()
	}
	return nil
}

// parseOlapWindow parses the parenthesized window specification of an
// OLAP function: partitioning, ordering, and an aggregation frame.
func (r *run) parseOlapWindow() error {
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if r.matchKw("PARTITION") {
		if err := r.expectKw("BY"); err != nil {
			return err
		}
		if err := r.parseExpressionList(); err != nil {
			return err
		}
	}
	if r.matchKw("ORDER") {
		if err := r.expectKw("BY"); err != nil {
			return err
		}
		for {
			if err := r.parseExpression(); err != nil {
				return err
			}
			r.matchKwOneOf("ASC", "DESC")
			if r.matchKw("NULLS") {
				if _, err := r.expectKwOneOf("FIRST", "LAST"); err != nil {
					return err
				}
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
		}
		if _, ok := r.matchKwOneOf("ROWS", "RANGE"); ok {
			if err := r.parseWindowFrame(); err != nil {
				return err
			}
		}
	}
	_, err := r.expect(op(")"))
	return err
}

func (r *run) parseWindowFrame() error {
	if r.matchKw("BETWEEN") {
		if err := r.parseFrameBound(); err != nil {
			return err
		}
		if err := r.expectKw("AND"); err != nil {
			return err
		}
		return r.parseFrameBound()
	}
	return r.parseFrameBound()
}

func (r *run) parseFrameBound() error {
	if r.matchKw("UNBOUNDED") {
		_, err := r.expectKwOneOf("PRECEDING", "FOLLOWING")
		return err
	}
	if r.matchKw("CURRENT") {
		return r.expectKw("ROW")
	}
	if _, err := r.expect(ofKind(token.Number)); err != nil {
		return err
	}
	_, err := r.expectKwOneOf("PRECEDING", "FOLLOWING")
	return err
}

// --- predicates and search conditions ---------------------------------

var comparisonOps = []template{
	op("="), op("<>"), op("<"), op(">"), op("<="), op(">="),
	op("!="), op("!<"), op("!>"), op("^="), op("^<"), op("^>"),
}

// parseSearchCondition parses a boolean condition: OR binds loosest,
// AND tighter, NOT tightest.
func (r *run) parseSearchCondition() error {
	for {
		if err := r.parseAndCondition(); err != nil {
			return err
		}
		if _, ok := r.match(kw("OR")); !ok {
			return nil
		}
	}
}

func (r *run) parseAndCondition() error {
	for {
		r.matchKw("NOT")
		if err := r.parsePredicate(); err != nil {
			return err
		}
		if _, ok := r.match(kw("AND")); !ok {
			return nil
		}
	}
}

// parsePredicate parses one predicate. A parenthesized token run is
// ambiguous between a nested search condition and an expression
// comparison, so the expression-based form is tried speculatively
// first.
func (r *run) parsePredicate() error {
	if r.matchKw("EXISTS") {
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseFullSelect(); err != nil {
			return err
		}
		_, err := r.expect(op(")"))
		return err
	}
	if r.try(func() error { return r.parseExpressionPredicate() }) {
		return nil
	}
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if err := r.parseSearchCondition(); err != nil {
		return err
	}
	_, err := r.expect(op(")"))
	return err
}

// parseExpressionPredicate parses an expression followed by a
// required predicate tail.
func (r *run) parseExpressionPredicate() error {
	if err := r.parseExpression(); err != nil {
		return err
	}
	switch {
	case r.matchKw("IS"):
		r.matchKw("NOT")
		_, err := r.expectKwOneOf("NULL")
		return err
	case r.matchKw("NOT"):
		return r.parsePredicateTail(true)
	default:
		return r.parsePredicateTail(false)
	}
}

// parsePredicateTail parses the portion of a predicate after the
// first expression and an optional NOT.
func (r *run) parsePredicateTail(negated bool) error {
	switch {
	case r.matchKw("BETWEEN"):
		if err := r.parseExpression(); err != nil {
			return err
		}
		if err := r.expectKw("AND"); err != nil {
			return err
		}
		return r.parseExpression()
	case r.matchKw("LIKE"):
		if err := r.parseExpression(); err != nil {
			return err
		}
		if r.matchKw("ESCAPE") {
			return r.parseExpression()
		}
		return nil
	case r.matchKw("IN"):
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if !r.try(func() error {
			if err := r.parseFullSelect(); err != nil {
				return err
			}
			_, err := r.expect(op(")"))
			return err
		}) {
			if err := r.parseExpressionList(); err != nil {
				return err
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		}
		return nil
	}
	if negated {
		return r.fail(errExpectedOneOf, []template{kw("BETWEEN"), kw("LIKE"), kw("IN")})
	}
	if _, err := r.expectOneOf(comparisonOps...); err != nil {
		return err
	}
	if _, ok := r.matchKwOneOf("SOME", "ANY", "ALL"); ok {
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseFullSelect(); err != nil {
			return err
		}
		_, err := r.expect(op(")"))
		return err
	}
	return r.parseExpression()
}
