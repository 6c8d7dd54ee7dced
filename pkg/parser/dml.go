package parser

import "github.com/waveform-computing/sqldoc/pkg/token"

// parseSelectStatement parses a query statement with its optional
// isolation and update clauses.
func (r *run) parseSelectStatement() error {
	if err := r.parseQuery(); err != nil {
		return err
	}
	if r.matchKw("WITH") {
		if _, err := r.expectKwOneOf("RR", "RS", "CS", "UR"); err != nil {
			return err
		}
	}
	if r.matchKw("FOR") {
		switch {
		case r.matchKw("READ") || r.matchKw("FETCH"):
			if err := r.expectKw("ONLY"); err != nil {
				return err
			}
		case r.matchKw("UPDATE"):
			if r.matchKw("OF") {
				if err := r.parseIdentList(); err != nil {
					return err
				}
			}
		default:
			return r.fail(errExpectedOneOf, []template{kw("READ"), kw("FETCH"), kw("UPDATE")})
		}
	}
	if r.matchKw("OPTIMIZE") {
		if err := r.expectKw("FOR"); err != nil {
			return err
		}
		if _, err := r.expect(ofKind(token.Number)); err != nil {
			return err
		}
		if _, err := r.expectKwOneOf("ROW", "ROWS"); err != nil {
			return err
		}
	}
	return nil
}

// parseInsertStatement parses INSERT INTO with a VALUES row list or a
// query as its source.
func (r *run) parseInsertStatement() error {
	if err := r.expectKw("INSERT", "INTO"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, ok := r.match(op("(")); ok {
		if err := r.parseIdentList(); err != nil {
			return err
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	r.newline()
	return r.parseQuery()
}

// parseUpdateStatement parses a searched UPDATE.
func (r *run) parseUpdateStatement() error {
	if err := r.expectKw("UPDATE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.parseCorrelation(false); err != nil {
		return err
	}
	r.newline()
	if err := r.expectKw("SET"); err != nil {
		return err
	}
	r.indent()
	for {
		if err := r.parseAssignment(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			break
		}
		r.newline()
	}
	r.outdent()
	if r.matchKw("WHERE") {
		r.newlineBefore(1)
		r.indent()
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		r.outdent()
	}
	return nil
}

// parseAssignment parses col = expr or (cols) = (exprs).
func (r *run) parseAssignment() error {
	if _, ok := r.match(op("(")); ok {
		if err := r.parseIdentList(); err != nil {
			return err
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
		if _, err := r.expect(op("=")); err != nil {
			return err
		}
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseExpressionList(); err != nil {
			return err
		}
		_, err := r.expect(op(")"))
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, err := r.expect(op("=")); err != nil {
		return err
	}
	return r.parseExpression()
}

// parseDeleteStatement parses a searched DELETE.
func (r *run) parseDeleteStatement() error {
	if err := r.expectKw("DELETE", "FROM"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.parseCorrelation(false); err != nil {
		return err
	}
	if r.matchKw("WHERE") {
		r.newlineBefore(1)
		r.indent()
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		r.outdent()
	}
	return nil
}

// parseMergeStatement parses MERGE INTO with its WHEN clauses.
func (r *run) parseMergeStatement() error {
	if err := r.expectKw("MERGE", "INTO"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.parseCorrelation(false); err != nil {
		return err
	}
	r.newline()
	if err := r.expectKw("USING"); err != nil {
		return err
	}
	if err := r.parseTablePrimary(); err != nil {
		return err
	}
	r.newline()
	if err := r.expectKw("ON"); err != nil {
		return err
	}
	r.indent()
	if err := r.parseSearchCondition(); err != nil {
		return err
	}
	r.outdent()
	matched := false
	for r.curIsKw("WHEN") {
		r.newline()
		if err := r.parseMergeWhen(); err != nil {
			return err
		}
		matched = true
	}
	if !matched {
		return r.fail(errExpectedSequence, []template{kw("WHEN")})
	}
	return nil
}

// parseMergeWhen parses one WHEN [NOT] MATCHED branch.
func (r *run) parseMergeWhen() error {
	if err := r.expectKw("WHEN"); err != nil {
		return err
	}
	not := r.matchKw("NOT")
	if err := r.expectKw("MATCHED"); err != nil {
		return err
	}
	if r.matchKw("AND") {
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
	}
	if err := r.expectKw("THEN"); err != nil {
		return err
	}
	r.indent()
	defer r.outdent()
	if not {
		if err := r.expectKw("INSERT"); err != nil {
			return err
		}
		if _, ok := r.match(op("(")); ok {
			if err := r.parseIdentList(); err != nil {
				return err
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		}
		if err := r.expectKw("VALUES"); err != nil {
			return err
		}
		if r.cur().Kind == token.Operator && r.cur().Value == "(" {
			return r.parseExpressionTuple()
		}
		return r.parseExpression()
	}
	switch {
	case r.matchKw("UPDATE", "SET"):
		for {
			if err := r.parseAssignment(); err != nil {
				return err
			}
			if _, ok := r.match(op(",")); !ok {
				return nil
			}
		}
	case r.matchKw("DELETE"):
		return nil
	case r.matchKw("SIGNAL"):
		return r.parseSignalTail()
	}
	return r.fail(errExpectedOneOf, []template{kw("UPDATE"), kw("DELETE"), kw("SIGNAL")})
}
