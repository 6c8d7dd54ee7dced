package parser

import "github.com/waveform-computing/sqldoc/pkg/token"

// This file covers queries: common table expressions, full selects
// with set operators, sub-selects, table references and joins.

// parseQuery parses an optionally WITH-prefixed full select.
func (r *run) parseQuery() error {
	if r.matchKw("WITH") {
		r.indent()
		for {
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
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
			if err := r.expectKw("AS"); err != nil {
				return err
			}
			if _, err := r.expect(op("(")); err != nil {
				return err
			}
			r.indent()
			if err := r.parseFullSelect(); err != nil {
				return err
			}
			r.outdent()
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
			r.newline()
		}
		r.outdent()
	}
	return r.parseFullSelect()
}

// parseFullSelect parses one or more relations combined with set
// operators, then the optional ordering and fetch clauses. Each set
// operator sits on its own line between its operands.
func (r *run) parseFullSelect() error {
	if err := r.parseRelation(); err != nil {
		return err
	}
	for {
		if _, ok := r.matchKwOneOf("UNION", "INTERSECT", "EXCEPT"); !ok {
			break
		}
		r.newlineBefore(1)
		r.matchKw("ALL")
		r.newline()
		if err := r.parseRelation(); err != nil {
			return err
		}
	}
	if r.curIsKw("ORDER") {
		r.newline()
		if err := r.parseOrderBy(); err != nil {
			return err
		}
	}
	if r.curIsKw("FETCH") {
		r.newline()
		if err := r.parseFetchFirst(); err != nil {
			return err
		}
	}
	return nil
}

// parseRelation parses a parenthesized full select, a VALUES row
// list, or a sub-select.
func (r *run) parseRelation() error {
	if _, ok := r.match(op("(")); ok {
		r.indent()
		if err := r.parseFullSelect(); err != nil {
			return err
		}
		r.outdent()
		_, err := r.expect(op(")"))
		return err
	}
	if r.curIsKw("VALUES") {
		return r.parseValuesClause()
	}
	return r.parseSubSelect()
}

// parseValuesClause parses VALUES followed by one or more rows.
func (r *run) parseValuesClause() error {
	if err := r.expectKw("VALUES"); err != nil {
		return err
	}
	r.indent()
	for {
		if r.cur().Kind == token.Operator && r.cur().Value == "(" {
			if err := r.parseExpressionTuple(); err != nil {
				return err
			}
		} else if err := r.parseExpression(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			break
		}
		r.newline()
	}
	r.outdent()
	return nil
}

// parseSubSelect parses a SELECT statement body. Clause keywords sit
// at the statement's level with their contents indented beneath them.
func (r *run) parseSubSelect() error {
	if err := r.expectKw("SELECT"); err != nil {
		return err
	}
	r.matchKwOneOf("ALL", "DISTINCT")
	r.indent()
	for {
		if err := r.parseSelectItem(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			break
		}
		r.newline()
	}
	r.outdent()
	if r.matchKw("FROM") {
		r.newlineBefore(1)
		r.indent()
		for {
			if err := r.parseTableRef(); err != nil {
				return err
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
			r.newline()
		}
		r.outdent()
	}
	if r.matchKw("WHERE") {
		r.newlineBefore(1)
		r.indent()
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		r.outdent()
	}
	if r.matchKw("GROUP") {
		r.newlineBefore(1)
		if err := r.expectKw("BY"); err != nil {
			return err
		}
		r.indent()
		if err := r.parseGroupBy(); err != nil {
			return err
		}
		r.outdent()
	}
	if r.matchKw("HAVING") {
		r.newlineBefore(1)
		r.indent()
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		r.outdent()
	}
	if r.curIsKw("ORDER") {
		r.newline()
		if err := r.parseOrderBy(); err != nil {
			return err
		}
	}
	if r.curIsKw("FETCH") {
		r.newline()
		if err := r.parseFetchFirst(); err != nil {
			return err
		}
	}
	return nil
}

// parseSelectItem parses one select-list item: *, name.*, or an
// expression with an optional column alias.
func (r *run) parseSelectItem() error {
	if _, ok := r.match(op("*")); ok {
		return nil
	}
	// name.* needs arbitrary lookahead past the qualifier chain.
	if r.try(func() error {
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		if _, err := r.expect(op(".")); err != nil {
			return err
		}
		_, err := r.expect(op("*"))
		return err
	}) {
		return nil
	}
	if err := r.parseExpression(); err != nil {
		return err
	}
	if r.matchKw("AS") {
		_, err := r.expect(ofKind(token.Identifier))
		return err
	}
	if r.cur().Kind == token.Identifier {
		_, err := r.expect(ofKind(token.Identifier))
		return err
	}
	return nil
}

// parseGroupBy parses grouping expressions including ROLLUP, CUBE and
// GROUPING SETS.
func (r *run) parseGroupBy() error {
	for {
		switch {
		case r.matchKw("ROLLUP"), r.matchKw("CUBE"):
			if _, err := r.expect(op("(")); err != nil {
				return err
			}
			if err := r.parseExpressionList(); err != nil {
				return err
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		case r.matchKw("GROUPING"):
			if err := r.expectKw("SETS"); err != nil {
				return err
			}
			if _, err := r.expect(op("(")); err != nil {
				return err
			}
			for {
				if r.cur().Kind == token.Operator && r.cur().Value == "(" {
					if err := r.parseExpressionTuple(); err != nil {
						return err
					}
				} else if err := r.parseExpression(); err != nil {
					return err
				}
				if _, ok := r.match(op(",")); !ok {
					break
				}
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		default:
			if err := r.parseExpression(); err != nil {
				return err
			}
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
		r.newline()
	}
}

// parseOrderBy parses ORDER BY with per-key direction and null
// ordering.
func (r *run) parseOrderBy() error {
	if err := r.expectKw("ORDER"); err != nil {
		return err
	}
	if err := r.expectKw("BY"); err != nil {
		return err
	}
	r.indent()
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
		r.newline()
	}
	r.outdent()
	return nil
}

// parseFetchFirst parses FETCH FIRST [n] ROW(S) ONLY.
func (r *run) parseFetchFirst() error {
	if err := r.expectKw("FETCH"); err != nil {
		return err
	}
	if err := r.expectKw("FIRST"); err != nil {
		return err
	}
	r.match(ofKind(token.Number))
	if _, err := r.expectKwOneOf("ROW", "ROWS"); err != nil {
		return err
	}
	return r.expectKw("ONLY")
}

// parseTableRef parses one table reference followed by any chain of
// joins. A leading parenthesis is ambiguous: it may open a derived
// table (a parenthesized full select with a correlation clause) or a
// parenthesized join group; the derived-table alternative is tried
// speculatively first.
func (r *run) parseTableRef() error {
	if err := r.parseTablePrimary(); err != nil {
		return err
	}
	for {
		done := false
		switch {
		case r.matchKw("CROSS"):
			r.newlineBefore(1)
			if err := r.expectKw("JOIN"); err != nil {
				return err
			}
			if err := r.parseTablePrimary(); err != nil {
				return err
			}
			continue
		case r.curIsKw("INNER", "LEFT", "RIGHT", "FULL", "JOIN"):
			if w, ok := r.matchKwOneOf("INNER", "LEFT", "RIGHT", "FULL"); ok {
				r.newlineBefore(1)
				if w != "INNER" {
					r.matchKw("OUTER")
				}
				if err := r.expectKw("JOIN"); err != nil {
					return err
				}
			} else {
				if err := r.expectKw("JOIN"); err != nil {
					return err
				}
				r.newlineBefore(1)
			}
			if err := r.parseTablePrimary(); err != nil {
				return err
			}
			if r.matchKw("ON") {
				r.indent()
				if err := r.parseSearchCondition(); err != nil {
					return err
				}
				r.outdent()
			} else if r.matchKw("USING") {
				if _, err := r.expect(op("(")); err != nil {
					return err
				}
				if err := r.parseIdentList(); err != nil {
					return err
				}
				if _, err := r.expect(op(")")); err != nil {
					return err
				}
			}
		default:
			done = true
		}
		if done {
			break
		}
	}
	return nil
}

// parseTablePrimary parses a single table reference without joins.
func (r *run) parseTablePrimary() error {
	if r.cur().Kind == token.Operator && r.cur().Value == "(" {
		// Derived table first: a sub-select branch requires a
		// correlation clause after the closing parenthesis.
		if r.try(func() error {
			if _, err := r.expect(op("(")); err != nil {
				return err
			}
			r.indent()
			if err := r.parseFullSelect(); err != nil {
				return err
			}
			r.outdent()
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
			return r.parseCorrelation(true)
		}) {
			return nil
		}
		// Join group.
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseTableRef(); err != nil {
			return err
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
		return r.parseCorrelation(false)
	}
	if r.curIsKw("TABLE") {
		// TABLE( ... ) holds either a table function call or a
		// nested table expression.
		r.matchKw("TABLE")
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if !r.try(func() error {
			if err := r.parseFunctionCall(); err != nil {
				return err
			}
			_, err := r.expect(op(")"))
			return err
		}) {
			r.indent()
			if err := r.parseFullSelect(); err != nil {
				return err
			}
			r.outdent()
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		}
		return r.parseCorrelation(false)
	}
	if r.matchKw("LATERAL") {
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		r.indent()
		if err := r.parseFullSelect(); err != nil {
			return err
		}
		r.outdent()
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
		return r.parseCorrelation(false)
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	return r.parseCorrelation(false)
}

// parseCorrelation parses a correlation clause: [AS] name [(cols)].
// When optional, it is taken only on an explicit AS or a plain
// identifier, so reserved words that follow a table reference are
// never mistaken for aliases.
func (r *run) parseCorrelation(required bool) error {
	matched := r.matchKw("AS")
	if !matched && r.cur().Kind != token.Identifier {
		if required {
			return r.fail(errExpectedSequence, []template{ofKind(token.Identifier)})
		}
		return nil
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
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
	return nil
}
