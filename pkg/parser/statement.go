package parser

import "github.com/waveform-computing/sqldoc/pkg/token"

// parseStatement parses one top-level statement. The leading keyword
// picks the grammar; queries may also open with a parenthesis.
func (r *run) parseStatement() error {
	switch {
	case r.curIsKw("CREATE"):
		return r.parseCreateStatement()
	case r.curIsKw("ALTER"):
		return r.parseAlterStatement()
	case r.curIsKw("DROP"):
		return r.parseDropStatement()
	case r.curIsKw("GRANT"):
		return r.parseGrantStatement()
	case r.curIsKw("REVOKE"):
		return r.parseRevokeStatement()
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
	case r.cur().Kind == token.Operator && r.cur().Value == "(":
		return r.parseSelectStatement()
	case r.curIsKw("COMMENT"):
		return r.parseCommentStatement()
	case r.curIsKw("LOCK"):
		return r.parseLockTableStatement()
	case r.curIsKw("DECLARE"):
		return r.parseDeclareStatement()
	case r.curIsKw("SET"):
		return r.parseSetStatement()
	case r.curIsKw("COMMIT"):
		return r.parseCommitStatement()
	case r.curIsKw("ROLLBACK"):
		return r.parseRollbackStatement()
	case r.curIsKw("SAVEPOINT"):
		return r.parseSavepointStatement()
	case r.curIsKw("RELEASE"):
		return r.parseReleaseStatement()
	case r.curIsKw("RENAME"):
		return r.parseRenameStatement()
	case r.curIsKw("REFRESH"):
		return r.parseRefreshTableStatement()
	case r.curIsKw("TRUNCATE"):
		return r.parseTruncateStatement()
	case r.curIsKw("EXPLAIN"):
		return r.parseExplainStatement()
	case r.curIsKw("CALL"):
		return r.parseCallStatement()
	case r.curIsKw("BEGIN"), r.cur().Kind == token.Label:
		return r.parseCompoundStatement()
	}
	return r.fail(errExpectedOneOf, []template{
		kw("CREATE"), kw("ALTER"), kw("DROP"), kw("GRANT"), kw("REVOKE"),
		kw("INSERT"), kw("UPDATE"), kw("DELETE"), kw("MERGE"), kw("SELECT"),
		kw("WITH"), kw("VALUES"), kw("COMMENT"), kw("LOCK"), kw("DECLARE"),
		kw("SET"), kw("COMMIT"), kw("ROLLBACK"), kw("SAVEPOINT"),
		kw("RELEASE"), kw("RENAME"), kw("REFRESH"), kw("TRUNCATE"),
		kw("EXPLAIN"), kw("CALL"), kw("BEGIN"),
	})
}

// --- transactions -----------------------------------------------------

func (r *run) parseCommitStatement() error {
	if err := r.expectKw("COMMIT"); err != nil {
		return err
	}
	r.matchKw("WORK")
	return nil
}

func (r *run) parseRollbackStatement() error {
	if err := r.expectKw("ROLLBACK"); err != nil {
		return err
	}
	r.matchKw("WORK")
	if r.matchKw("TO", "SAVEPOINT") {
		r.match(ofKind(token.Identifier))
	}
	return nil
}

func (r *run) parseSavepointStatement() error {
	if err := r.expectKw("SAVEPOINT"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	r.matchKw("UNIQUE")
	if err := r.expectKw("ON", "ROLLBACK", "RETAIN", "CURSORS"); err != nil {
		return err
	}
	r.matchKw("ON", "ROLLBACK", "RETAIN", "LOCKS")
	return nil
}

func (r *run) parseReleaseStatement() error {
	if err := r.expectKw("RELEASE"); err != nil {
		return err
	}
	r.matchKw("TO")
	if err := r.expectKw("SAVEPOINT"); err != nil {
		return err
	}
	_, err := r.expect(ofKind(token.Identifier))
	return err
}

// --- utility statements -----------------------------------------------

func (r *run) parseLockTableStatement() error {
	if err := r.expectKw("LOCK", "TABLE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.expectKw("IN"); err != nil {
		return err
	}
	if _, err := r.expectKwOneOf("SHARE", "EXCLUSIVE"); err != nil {
		return err
	}
	return r.expectKw("MODE")
}

// parseCommentStatement parses COMMENT ON in both its forms: one
// object with IS, or a table followed by a parenthesized list of
// per-column comments.
func (r *run) parseCommentStatement() error {
	if err := r.expectKw("COMMENT", "ON"); err != nil {
		return err
	}
	switch {
	case r.matchKw("COLUMN"):
		if err := r.parseSubrelationName(); err != nil {
			return err
		}
	case r.matchKw("TABLE"), r.matchKw("VIEW"), r.matchKw("ALIAS"),
		r.matchKw("INDEX"), r.matchKw("TRIGGER"), r.matchKw("SEQUENCE"),
		r.matchKw("VARIABLE"):
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
	case r.matchKw("FUNCTION"), r.matchKw("PROCEDURE"):
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		if _, ok := r.match(op("(")); ok {
			if !(r.cur().Kind == token.Operator && r.cur().Value == ")") {
				for {
					if err := r.parseDataType(); err != nil {
						return err
					}
					if _, ok := r.match(op(",")); !ok {
						break
					}
				}
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		}
	case r.matchKw("SPECIFIC"):
		if _, err := r.expectKwOneOf("FUNCTION", "PROCEDURE"); err != nil {
			return err
		}
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
	case r.matchKw("SCHEMA"), r.matchKw("TABLESPACE"), r.matchKw("ROLE"):
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
	case r.matchKw("DISTINCT", "TYPE"), r.matchKw("TYPE"):
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
	case r.matchKw("CONSTRAINT"):
		if err := r.parseSubrelationName(); err != nil {
			return err
		}
	default:
		// COMMENT ON table (col IS 'text', ...).
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		r.indent()
		for {
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
			r.valign()
			if err := r.expectKw("IS"); err != nil {
				return err
			}
			if _, err := r.expect(ofKind(token.String)); err != nil {
				return err
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
			r.newline()
		}
		r.outdent()
		r.vapply()
		_, err := r.expect(op(")"))
		return err
	}
	if err := r.expectKw("IS"); err != nil {
		return err
	}
	_, err := r.expect(ofKind(token.String))
	return err
}

func (r *run) parseRenameStatement() error {
	if err := r.expectKw("RENAME"); err != nil {
		return err
	}
	r.matchKwOneOf("TABLE", "INDEX")
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.expectKw("TO"); err != nil {
		return err
	}
	_, err := r.expect(ofKind(token.Identifier))
	return err
}

func (r *run) parseRefreshTableStatement() error {
	if err := r.expectKw("REFRESH", "TABLE"); err != nil {
		return err
	}
	for {
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			break
		}
	}
	if r.matchKw("NOT") {
		return r.expectKw("INCREMENTAL")
	}
	r.matchKw("INCREMENTAL")
	return nil
}

func (r *run) parseTruncateStatement() error {
	if err := r.expectKw("TRUNCATE"); err != nil {
		return err
	}
	r.matchKw("TABLE")
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if !r.matchKw("DROP", "STORAGE") {
		r.matchKw("REUSE", "STORAGE")
	}
	if !r.matchKw("IGNORE", "DELETE", "TRIGGERS") {
		r.matchKw("RESTRICT", "WHEN", "DELETE", "TRIGGERS")
	}
	r.matchKw("CONTINUE", "IDENTITY")
	return r.expectKw("IMMEDIATE")
}

func (r *run) parseExplainStatement() error {
	if err := r.expectKw("EXPLAIN"); err != nil {
		return err
	}
	if r.matchKw("PLAN") {
		r.matchKw("SELECTION")
	} else if err := r.expectKw("ALL"); err != nil {
		return err
	}
	r.matchKw("WITH", "SNAPSHOT")
	r.matchKw("FOR")
	r.newline()
	return r.parseStatement()
}

// --- DECLARE ----------------------------------------------------------

// parseDeclareStatement parses the top-level DECLARE forms: a global
// temporary table or a cursor.
func (r *run) parseDeclareStatement() error {
	if err := r.expectKw("DECLARE"); err != nil {
		return err
	}
	if r.matchKw("GLOBAL", "TEMPORARY", "TABLE") {
		return r.parseTemporaryTableTail()
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	if err := r.expectKw("CURSOR"); err != nil {
		return err
	}
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
	defer func() { r.level-- }()
	return r.parseSelectStatement()
}

// parseTemporaryTableTail parses the body of DECLARE GLOBAL TEMPORARY
// TABLE after the introducing keywords.
func (r *run) parseTemporaryTableTail() error {
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	switch {
	case r.matchKw("LIKE"):
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		if r.matchKw("INCLUDING") || r.matchKw("EXCLUDING") {
			r.matchKw("COLUMN")
			if err := r.expectKw("DEFAULTS"); err != nil {
				return err
			}
		}
	case r.matchKw("AS"):
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
		if err := r.expectKw("DEFINITION", "ONLY"); err != nil {
			return err
		}
	default:
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseTableElementList(); err != nil {
			return err
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	for {
		switch {
		case r.matchKw("ON", "COMMIT"):
			if !r.matchKw("PRESERVE") && !r.matchKw("DELETE") {
				return r.fail(errExpectedOneOf, []template{kw("PRESERVE"), kw("DELETE")})
			}
			if err := r.expectKw("ROWS"); err != nil {
				return err
			}
		case r.matchKw("NOT", "LOGGED"):
		case r.matchKw("WITH", "REPLACE"):
		case r.matchKw("IN"):
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// --- SET --------------------------------------------------------------

// parseSetStatement parses the top-level SET variants. Anything not
// matching a special register form falls back to an assignment list.
func (r *run) parseSetStatement() error {
	if err := r.expectKw("SET"); err != nil {
		return err
	}
	switch {
	case r.curIsKw("INTEGRITY"):
		return r.parseSetIntegrity()
	case r.matchKw("CURRENT", "SCHEMA"), r.matchKw("SCHEMA"):
		return r.parseSetRegisterValue()
	case r.matchKw("CURRENT", "FUNCTION", "PATH"),
		r.matchKw("CURRENT", "PATH"), r.matchKw("PATH"):
		r.match(op("="))
		for {
			if err := r.parseSetPathItem(); err != nil {
				return err
			}
			if _, ok := r.match(op(",")); !ok {
				return nil
			}
		}
	case r.matchKw("CURRENT", "DEGREE"):
		r.match(op("="))
		_, err := r.expect(ofKind(token.String))
		return err
	case r.matchKw("CURRENT", "ISOLATION"), r.matchKw("ISOLATION"):
		r.match(op("="))
		r.matchKw("TO")
		if _, err := r.expectKwOneOf("UR", "CS", "RS", "RR", "RESET"); err != nil {
			return err
		}
		return nil
	case r.matchKw("SESSION", "AUTHORIZATION"),
		r.matchKw("SESSION_USER"):
		r.match(op("="))
		if _, ok := r.match(ofKind(token.String)); ok {
			return nil
		}
		_, err := r.expect(ofKind(token.Identifier))
		return err
	}
	// SET variable assignments.
	for {
		if err := r.parseAssignment(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

// parseSetRegisterValue parses the operand of SET SCHEMA and friends:
// an identifier, a string, or a special register.
func (r *run) parseSetRegisterValue() error {
	r.match(op("="))
	if r.try(func() error { return r.parseSpecialRegister() }) {
		return nil
	}
	if _, ok := r.match(ofKind(token.String)); ok {
		return nil
	}
	_, err := r.expect(ofKind(token.Identifier))
	return err
}

func (r *run) parseSetPathItem() error {
	if r.try(func() error { return r.parseSpecialRegister() }) {
		return nil
	}
	if r.matchKw("SYSTEM", "PATH") {
		return nil
	}
	if _, ok := r.match(ofKind(token.String)); ok {
		return nil
	}
	_, err := r.expect(ofKind(token.Identifier))
	return err
}

// parseSetIntegrity parses both SET INTEGRITY grammars: the OFF form
// that suspends checking, and the IMMEDIATE CHECKED form that resumes
// it.
func (r *run) parseSetIntegrity() error {
	if err := r.expectKw("INTEGRITY", "FOR"); err != nil {
		return err
	}
	for {
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			break
		}
	}
	switch {
	case r.matchKw("OFF"):
		if _, ok := r.matchKwOneOf("NO", "READ"); ok {
			if err := r.expectKw("ACCESS"); err != nil {
				return err
			}
		}
		if r.matchKw("CASCADE") {
			if _, err := r.expectKwOneOf("IMMEDIATE", "DEFERRED"); err != nil {
				return err
			}
		}
		return nil
	case r.matchKw("IMMEDIATE", "CHECKED"):
		if r.matchKw("INCREMENTAL") || r.matchKw("NOT") {
			r.matchKw("INCREMENTAL")
		}
		if r.matchKw("FOR", "EXCEPTION") {
			for {
				if err := r.expectKw("IN"); err != nil {
					return err
				}
				if err := r.parseSubschemaName(); err != nil {
					return err
				}
				if err := r.expectKw("USE"); err != nil {
					return err
				}
				if err := r.parseSubschemaName(); err != nil {
					return err
				}
				if _, ok := r.match(op(",")); !ok {
					break
				}
			}
		}
		return nil
	case r.matchKw("FULL", "ACCESS"):
		return nil
	case r.matchKw("ALL", "IMMEDIATE", "UNCHECKED"):
		return nil
	}
	return r.fail(errExpectedOneOf, []template{
		kw("OFF"), kw("IMMEDIATE"), kw("FULL"), kw("ALL"),
	})
}
