package parser

import "github.com/waveform-computing/sqldoc/pkg/token"

// Procedural (SQL PL) statements: compound bodies, declarations,
// control flow, cursors and diagnostics.

// expectStatementSep consumes the semicolon separating the inner
// statements of a routine body. When the script terminator is the
// semicolon itself the lexer hands it to us as a terminator token.
func (r *run) expectStatementSep() error {
	r.trimTrailingNewline()
	if _, ok := r.match(op(";")); ok {
		return nil
	}
	_, err := r.expect(ofKind(token.Terminator))
	return err
}

// parseCompoundStatement parses [label:] BEGIN ... END [label], with
// declarations first and one statement per line.
func (r *run) parseCompoundStatement() error {
	r.match(ofKind(token.Label))
	if err := r.expectKw("BEGIN"); err != nil {
		return err
	}
	if r.matchKw("NOT") {
		if err := r.expectKw("ATOMIC"); err != nil {
			return err
		}
	} else {
		r.matchKw("ATOMIC")
	}
	r.indent()
	first := true
	for !r.curIsKw("END") {
		if !first {
			r.newline()
		}
		first = false
		if r.curIsKw("DECLARE") {
			if err := r.parseDeclaration(); err != nil {
				return err
			}
		} else if err := r.parseRoutineStatement(); err != nil {
			return err
		}
		if err := r.expectStatementSep(); err != nil {
			return err
		}
	}
	r.outdent()
	if err := r.expectKw("END"); err != nil {
		return err
	}
	r.match(ofKind(token.Identifier))
	return nil
}

// parseDeclaration parses the DECLARE forms allowed in a compound
// statement: handlers, cursors, conditions and variables.
func (r *run) parseDeclaration() error {
	if err := r.expectKw("DECLARE"); err != nil {
		return err
	}
	if _, ok := r.matchKwOneOf("CONTINUE", "EXIT", "UNDO"); ok {
		if err := r.expectKw("HANDLER", "FOR"); err != nil {
			return err
		}
		if err := r.parseHandlerConditions(); err != nil {
			return err
		}
		r.indent()
		defer r.outdent()
		if r.curIsKw("BEGIN") {
			return r.parseCompoundStatement()
		}
		return r.parseRoutineStatement()
	}
	if r.try(func() error {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		return r.expectKw("CURSOR")
	}) {
		for {
			if r.matchKw("WITH", "HOLD") {
				continue
			}
			if r.matchKw("WITH", "RETURN") {
				if r.matchKw("TO") {
					if _, err := r.expectKwOneOf("CALLER", "CLIENT"); err != nil {
						return err
					}
				}
				continue
			}
			break
		}
		if err := r.expectKw("FOR"); err != nil {
			return err
		}
		r.indent()
		defer r.outdent()
		return r.parseQuery()
	}
	if r.try(func() error {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		return r.expectKw("CONDITION")
	}) {
		if err := r.expectKw("FOR"); err != nil {
			return err
		}
		if r.matchKw("SQLSTATE") {
			r.matchKw("VALUE")
		}
		_, err := r.expect(ofKind(token.String))
		return err
	}
	// Variable declaration: one or more names, a data type, an
	// optional default.
	if err := r.parseIdentList(); err != nil {
		return err
	}
	if err := r.parseDataType(); err != nil {
		return err
	}
	if r.matchKw("DEFAULT") {
		return r.parseExpression()
	}
	return nil
}

// parseHandlerConditions parses the condition list a handler covers.
func (r *run) parseHandlerConditions() error {
	for {
		switch {
		case r.matchKw("SQLSTATE"):
			r.matchKw("VALUE")
			if _, err := r.expect(ofKind(token.String)); err != nil {
				return err
			}
		case r.matchKw("SQLEXCEPTION"):
		case r.matchKw("SQLWARNING"):
		case r.matchKw("NOT", "FOUND"):
		default:
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

// parseRoutineStatement parses one statement of a routine body. A
// leading label binds to the loop or compound statement it precedes.
func (r *run) parseRoutineStatement() error {
	if r.cur().Kind == token.Label {
		if r.curLabelTarget() {
			return r.parseLabeledStatement()
		}
	}
	switch {
	case r.curIsKw("BEGIN"):
		return r.parseCompoundStatement()
	case r.curIsKw("CALL"):
		return r.parseCallStatement()
	case r.curIsKw("INSERT"):
		return r.parseInsertStatement()
	case r.curIsKw("UPDATE"):
		return r.parseUpdateStatement()
	case r.curIsKw("DELETE"):
		return r.parseDeleteStatement()
	case r.curIsKw("MERGE"):
		return r.parseMergeStatement()
	case r.curIsKw("SELECT", "WITH", "VALUES"):
		return r.parseSelectStatement()
	case r.curIsKw("SET"):
		return r.parseAssignmentStatement()
	case r.curIsKw("IF"):
		return r.parseIfStatement()
	case r.curIsKw("CASE"):
		return r.parseCaseStatement()
	case r.curIsKw("WHILE"):
		return r.parseWhileStatement()
	case r.curIsKw("REPEAT"):
		return r.parseRepeatStatement()
	case r.curIsKw("LOOP"):
		return r.parseLoopStatement()
	case r.curIsKw("FOR"):
		return r.parseForStatement()
	case r.curIsKw("RETURN"):
		return r.parseReturnStatement()
	case r.curIsKw("SIGNAL"):
		return r.parseSignalStatement()
	case r.curIsKw("RESIGNAL"):
		return r.parseResignalStatement()
	case r.curIsKw("ITERATE"), r.curIsKw("LEAVE"):
		return r.parseIterateOrLeave()
	case r.curIsKw("GET"):
		return r.parseGetDiagnostics()
	case r.curIsKw("OPEN"):
		return r.parseOpenStatement()
	case r.curIsKw("CLOSE"):
		return r.parseCloseStatement()
	case r.curIsKw("FETCH"):
		return r.parseFetchStatement()
	case r.curIsKw("COMMIT"):
		return r.parseCommitStatement()
	case r.curIsKw("ROLLBACK"):
		return r.parseRollbackStatement()
	case r.curIsKw("SAVEPOINT"):
		return r.parseSavepointStatement()
	case r.curIsKw("RELEASE"):
		return r.parseReleaseStatement()
	}
	return r.fail(errExpectedOneOf, []template{
		kw("CALL"), kw("INSERT"), kw("UPDATE"), kw("DELETE"), kw("SELECT"),
		kw("SET"), kw("IF"), kw("CASE"), kw("WHILE"), kw("FOR"), kw("LOOP"),
		kw("REPEAT"), kw("BEGIN"), kw("RETURN"), kw("SIGNAL"),
	})
}

// curLabelTarget reports whether the token after a label starts a
// construct a label may bind to.
func (r *run) curLabelTarget() bool {
	next := r.peek(1)
	switch next.Value {
	case "BEGIN", "WHILE", "FOR", "LOOP", "REPEAT":
		return next.Kind == token.Keyword || next.Kind == token.Identifier
	}
	return false
}

func (r *run) parseLabeledStatement() error {
	switch r.peek(1).Value {
	case "BEGIN":
		return r.parseCompoundStatement()
	case "WHILE":
		return r.parseWhileStatement()
	case "FOR":
		return r.parseForStatement()
	case "LOOP":
		return r.parseLoopStatement()
	case "REPEAT":
		return r.parseRepeatStatement()
	}
	return r.fail(errExpectedOneOf, []template{
		kw("BEGIN"), kw("WHILE"), kw("FOR"), kw("LOOP"), kw("REPEAT"),
	})
}

// parseStatementBlock parses semicolon-separated statements up to any
// of the given closing keywords, which are left unconsumed.
func (r *run) parseStatementBlock(until ...string) error {
	r.indent()
	first := true
	for !r.curIsKw(until...) {
		if !first {
			r.newline()
		}
		first = false
		if err := r.parseRoutineStatement(); err != nil {
			return err
		}
		if err := r.expectStatementSep(); err != nil {
			return err
		}
	}
	r.outdent()
	return nil
}

func (r *run) parseIfStatement() error {
	if err := r.expectKw("IF"); err != nil {
		return err
	}
	if err := r.parseSearchCondition(); err != nil {
		return err
	}
	if err := r.expectKw("THEN"); err != nil {
		return err
	}
	if err := r.parseStatementBlock("ELSEIF", "ELSE", "END"); err != nil {
		return err
	}
	for r.matchKw("ELSEIF") {
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		if err := r.expectKw("THEN"); err != nil {
			return err
		}
		if err := r.parseStatementBlock("ELSEIF", "ELSE", "END"); err != nil {
			return err
		}
	}
	if r.matchKw("ELSE") {
		if err := r.parseStatementBlock("END"); err != nil {
			return err
		}
	}
	return r.expectKw("END", "IF")
}

func (r *run) parseCaseStatement() error {
	if err := r.expectKw("CASE"); err != nil {
		return err
	}
	simple := !r.curIsKw("WHEN")
	if simple {
		if err := r.parseExpression(); err != nil {
			return err
		}
	}
	r.indent()
	for first := true; r.matchKw("WHEN"); first = false {
		if !first {
			r.newlineBefore(1)
		}
		if simple {
			if err := r.parseExpression(); err != nil {
				return err
			}
		} else if err := r.parseSearchCondition(); err != nil {
			return err
		}
		if err := r.expectKw("THEN"); err != nil {
			return err
		}
		if err := r.parseStatementBlock("WHEN", "ELSE", "END"); err != nil {
			return err
		}
	}
	if r.matchKw("ELSE") {
		r.newlineBefore(1)
		if err := r.parseStatementBlock("END"); err != nil {
			return err
		}
	}
	r.outdent()
	return r.expectKw("END", "CASE")
}

func (r *run) parseWhileStatement() error {
	r.match(ofKind(token.Label))
	if err := r.expectKw("WHILE"); err != nil {
		return err
	}
	if err := r.parseSearchCondition(); err != nil {
		return err
	}
	if err := r.expectKw("DO"); err != nil {
		return err
	}
	if err := r.parseStatementBlock("END"); err != nil {
		return err
	}
	if err := r.expectKw("END", "WHILE"); err != nil {
		return err
	}
	r.match(ofKind(token.Identifier))
	return nil
}

func (r *run) parseRepeatStatement() error {
	r.match(ofKind(token.Label))
	if err := r.expectKw("REPEAT"); err != nil {
		return err
	}
	if err := r.parseStatementBlock("UNTIL"); err != nil {
		return err
	}
	if err := r.expectKw("UNTIL"); err != nil {
		return err
	}
	if err := r.parseSearchCondition(); err != nil {
		return err
	}
	if err := r.expectKw("END", "REPEAT"); err != nil {
		return err
	}
	r.match(ofKind(token.Identifier))
	return nil
}

func (r *run) parseLoopStatement() error {
	r.match(ofKind(token.Label))
	if err := r.expectKw("LOOP"); err != nil {
		return err
	}
	if err := r.parseStatementBlock("END"); err != nil {
		return err
	}
	if err := r.expectKw("END", "LOOP"); err != nil {
		return err
	}
	r.match(ofKind(token.Identifier))
	return nil
}

func (r *run) parseForStatement() error {
	r.match(ofKind(token.Label))
	if err := r.expectKw("FOR"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	if err := r.expectKw("AS"); err != nil {
		return err
	}
	// An optional cursor name may precede the query.
	r.try(func() error {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		if err := r.expectKw("CURSOR"); err != nil {
			return err
		}
		return r.expectKw("FOR")
	})
	r.indent()
	if err := r.parseQuery(); err != nil {
		return err
	}
	r.outdent()
	if err := r.expectKw("DO"); err != nil {
		return err
	}
	if err := r.parseStatementBlock("END"); err != nil {
		return err
	}
	if err := r.expectKw("END", "FOR"); err != nil {
		return err
	}
	r.match(ofKind(token.Identifier))
	return nil
}

// parseAssignmentStatement parses the SET form used in routine
// bodies: one or more assignments.
func (r *run) parseAssignmentStatement() error {
	if err := r.expectKw("SET"); err != nil {
		return err
	}
	for {
		if err := r.parseAssignment(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

func (r *run) parseReturnStatement() error {
	if err := r.expectKw("RETURN"); err != nil {
		return err
	}
	// RETURN may carry a query, an expression or nothing at all.
	// The query alternative is tried first since SELECT and VALUES
	// would not parse as expressions.
	if r.try(func() error { return r.parseQuery() }) {
		return nil
	}
	r.try(func() error { return r.parseExpression() })
	return nil
}

func (r *run) parseCallStatement() error {
	if err := r.expectKw("CALL"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, ok := r.match(op("(")); ok {
		if !(r.cur().Kind == token.Operator && r.cur().Value == ")") {
			if err := r.parseExpressionList(); err != nil {
				return err
			}
		}
		_, err := r.expect(op(")"))
		return err
	}
	return nil
}

func (r *run) parseSignalStatement() error {
	if err := r.expectKw("SIGNAL"); err != nil {
		return err
	}
	return r.parseSignalTail()
}

func (r *run) parseResignalStatement() error {
	if err := r.expectKw("RESIGNAL"); err != nil {
		return err
	}
	if !r.curIsKw("SQLSTATE") && r.cur().Kind != token.Identifier {
		return nil
	}
	return r.parseSignalTail()
}

// parseSignalTail parses the condition and optional message clause
// shared by SIGNAL and RESIGNAL.
func (r *run) parseSignalTail() error {
	if r.matchKw("SQLSTATE") {
		r.matchKw("VALUE")
		if _, ok := r.match(ofKind(token.String)); !ok {
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		}
	} else if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	switch {
	case r.matchKw("SET", "MESSAGE_TEXT"):
		if _, err := r.expect(op("=")); err != nil {
			return err
		}
		return r.parseExpression()
	default:
		if _, ok := r.match(op("(")); ok {
			if err := r.parseExpression(); err != nil {
				return err
			}
			_, err := r.expect(op(")"))
			return err
		}
	}
	return nil
}

func (r *run) parseIterateOrLeave() error {
	if _, err := r.expectKwOneOf("ITERATE", "LEAVE"); err != nil {
		return err
	}
	_, err := r.expect(ofKind(token.Identifier))
	return err
}

func (r *run) parseGetDiagnostics() error {
	if err := r.expectKw("GET", "DIAGNOSTICS"); err != nil {
		return err
	}
	if r.matchKw("EXCEPTION") {
		if _, err := r.expect(ofKind(token.Number)); err != nil {
			return err
		}
	}
	for {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		if _, err := r.expect(op("=")); err != nil {
			return err
		}
		if _, err := r.expectKwOneOf("ROW_COUNT", "RETURN_STATUS", "MESSAGE_TEXT"); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

func (r *run) parseOpenStatement() error {
	if err := r.expectKw("OPEN"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	if _, ok := r.match(op("(")); ok {
		if !(r.cur().Kind == token.Operator && r.cur().Value == ")") {
			if err := r.parseExpressionList(); err != nil {
				return err
			}
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	if r.matchKw("USING") {
		return r.parseExpressionList()
	}
	return nil
}

func (r *run) parseCloseStatement() error {
	if err := r.expectKw("CLOSE"); err != nil {
		return err
	}
	_, err := r.expect(ofKind(token.Identifier))
	return err
}

func (r *run) parseFetchStatement() error {
	if err := r.expectKw("FETCH"); err != nil {
		return err
	}
	r.matchKw("FROM")
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	if err := r.expectKw("INTO"); err != nil {
		return err
	}
	for {
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}
