package parser

import "github.com/waveform-computing/sqldoc/pkg/token"

// This file covers data definition statements: CREATE, ALTER and
// DROP for tables, views, routines and storage objects.

// parseCreateStatement dispatches on the object class after CREATE.
func (r *run) parseCreateStatement() error {
	if err := r.expectKw("CREATE"); err != nil {
		return err
	}
	switch {
	case r.curIsKw("TABLE"):
		return r.parseCreateTable()
	case r.curIsKw("VIEW"):
		return r.parseCreateView()
	case r.curIsKw("ALIAS"):
		return r.parseCreateAlias()
	case r.curIsKw("UNIQUE", "INDEX"):
		return r.parseCreateIndex()
	case r.curIsKw("TRIGGER"):
		return r.parseCreateTrigger()
	case r.curIsKw("SEQUENCE"):
		return r.parseCreateSequence()
	case r.curIsKw("FUNCTION"):
		return r.parseCreateFunction()
	case r.curIsKw("PROCEDURE"):
		return r.parseCreateProcedure()
	case r.curIsKw("TABLESPACE", "REGULAR", "LARGE", "TEMPORARY", "USER", "SYSTEM"):
		return r.parseCreateTablespace()
	case r.curIsKw("BUFFERPOOL"):
		return r.parseCreateBufferpool()
	case r.curIsKw("SCHEMA"):
		return r.parseCreateSchema()
	case r.curIsKw("DATABASE"):
		return r.parseCreatePartitionGroup()
	case r.curIsKw("DISTINCT", "TYPE"):
		return r.parseCreateType()
	case r.curIsKw("ROLE"):
		return r.parseCreateRole()
	case r.curIsKw("VARIABLE"):
		return r.parseCreateVariable()
	}
	return r.fail(errExpectedOneOf, []template{
		kw("TABLE"), kw("VIEW"), kw("ALIAS"), kw("INDEX"), kw("TRIGGER"),
		kw("SEQUENCE"), kw("FUNCTION"), kw("PROCEDURE"), kw("TABLESPACE"),
		kw("BUFFERPOOL"), kw("SCHEMA"), kw("TYPE"), kw("ROLE"), kw("VARIABLE"),
	})
}

// --- tables -----------------------------------------------------------

func (r *run) parseCreateTable() error {
	if err := r.expectKw("TABLE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	switch {
	case r.matchKw("LIKE"):
		if err := r.parseSubschemaName(); err != nil {
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
		if r.matchKw("AS") {
			r.newlineBefore(1)
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
			if r.matchKw("WITH") {
				if err := r.expectKw("NO", "DATA"); err != nil {
					return err
				}
			} else if r.matchKw("DEFINITION") {
				if err := r.expectKw("ONLY"); err != nil {
					return err
				}
			}
		}
	}
	return r.parseTableOptions()
}

// parseTableElementList parses the column and constraint definitions
// of a table body, one per line, with the column data types vertically
// aligned.
func (r *run) parseTableElementList() error {
	r.indent()
	for {
		if !r.try(func() error { return r.parseTableConstraint() }) {
			if err := r.parseColumnDefinition(); err != nil {
				return err
			}
		}
		if _, ok := r.match(op(",")); !ok {
			break
		}
		r.newline()
	}
	r.outdent()
	r.vapply()
	return nil
}

func (r *run) parseColumnDefinition() error {
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	r.valign()
	if err := r.parseDataType(); err != nil {
		return err
	}
	for {
		switch {
		case r.matchKw("NOT"):
			if err := r.expectKw("NULL"); err != nil {
				return err
			}
		case r.matchKw("WITH", "DEFAULT"), r.matchKw("DEFAULT"):
			// DEFAULT's operand is optional; a bare DEFAULT takes
			// the data type's own default.
			r.try(func() error { return r.parseExpression() })
		case r.matchKw("GENERATED"):
			if !r.matchKw("ALWAYS") {
				if err := r.expectKw("BY", "DEFAULT"); err != nil {
					return err
				}
			}
			if err := r.expectKw("AS"); err != nil {
				return err
			}
			if r.matchKw("IDENTITY") {
				if r.cur().Kind == token.Operator && r.cur().Value == "(" {
					if err := r.parseIdentityOptions(); err != nil {
						return err
					}
				}
			} else {
				if _, err := r.expect(op("(")); err != nil {
					return err
				}
				if err := r.parseExpression(); err != nil {
					return err
				}
				if _, err := r.expect(op(")")); err != nil {
					return err
				}
			}
		case r.matchKw("INLINE", "LENGTH"):
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
		case r.matchKw("COMPRESS", "SYSTEM", "DEFAULT"):
		case r.curIsKw("CONSTRAINT", "PRIMARY", "UNIQUE", "REFERENCES", "CHECK"):
			if err := r.parseColumnConstraint(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (r *run) parseColumnConstraint() error {
	if r.matchKw("CONSTRAINT") {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
	}
	switch {
	case r.matchKw("PRIMARY", "KEY"):
		return nil
	case r.matchKw("UNIQUE"):
		return nil
	case r.matchKw("REFERENCES"):
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
		return r.parseReferentialActions()
	case r.matchKw("CHECK"):
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		_, err := r.expect(op(")"))
		return err
	}
	return r.fail(errExpectedOneOf, []template{
		kw("PRIMARY"), kw("UNIQUE"), kw("REFERENCES"), kw("CHECK"),
	})
}

func (r *run) parseTableConstraint() error {
	if r.matchKw("CONSTRAINT") {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		r.valign()
	}
	switch {
	case r.matchKw("PRIMARY", "KEY"), r.matchKw("UNIQUE"):
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseIdentList(); err != nil {
			return err
		}
		_, err := r.expect(op(")"))
		return err
	case r.matchKw("FOREIGN", "KEY"):
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseIdentList(); err != nil {
			return err
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
		if err := r.expectKw("REFERENCES"); err != nil {
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
		return r.parseReferentialActions()
	case r.matchKw("CHECK"):
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		_, err := r.expect(op(")"))
		return err
	}
	return r.fail(errExpectedOneOf, []template{
		kw("CONSTRAINT"), kw("PRIMARY"), kw("UNIQUE"), kw("FOREIGN"), kw("CHECK"),
	})
}

func (r *run) parseReferentialActions() error {
	for r.matchKw("ON") {
		if _, err := r.expectKwOneOf("DELETE", "UPDATE"); err != nil {
			return err
		}
		switch {
		case r.matchKw("NO", "ACTION"):
		case r.matchKw("RESTRICT"):
		case r.matchKw("CASCADE"):
		case r.matchKw("SET", "NULL"):
		default:
			return r.fail(errExpectedOneOf, []template{
				kw("NO"), kw("RESTRICT"), kw("CASCADE"), kw("SET"),
			})
		}
	}
	return nil
}

func (r *run) parseTableOptions() error {
	for {
		switch {
		case r.matchKw("IN"):
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		case r.matchKw("INDEX", "IN"), r.matchKw("LONG", "IN"):
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		case r.matchKw("DATA", "CAPTURE"):
			if _, err := r.expectKwOneOf("NONE", "CHANGES"); err != nil {
				return err
			}
		case r.matchKw("COMPRESS"):
			if _, err := r.expectKwOneOf("YES", "NO"); err != nil {
				return err
			}
		case r.matchKw("WITH", "RESTRICT", "ON", "DROP"):
		case r.matchKw("NOT", "LOGGED", "INITIALLY"):
		case r.matchKw("DISTRIBUTE", "BY"):
			r.matchKw("HASH")
			if _, err := r.expect(op("(")); err != nil {
				return err
			}
			if err := r.parseIdentList(); err != nil {
				return err
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// --- views and aliases ------------------------------------------------

func (r *run) parseCreateView() error {
	if err := r.expectKw("VIEW"); err != nil {
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
	if err := r.expectKw("AS"); err != nil {
		return err
	}
	r.newline()
	if err := r.parseQuery(); err != nil {
		return err
	}
	if r.matchKw("WITH") {
		r.matchKwOneOf("CASCADED", "LOCAL")
		if err := r.expectKw("CHECK", "OPTION"); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) parseCreateAlias() error {
	if err := r.expectKw("ALIAS"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.expectKw("FOR"); err != nil {
		return err
	}
	return r.parseSubschemaName()
}

// --- indexes ----------------------------------------------------------

func (r *run) parseCreateIndex() error {
	r.matchKw("UNIQUE")
	if err := r.expectKw("INDEX"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.expectKw("ON"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	for {
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		r.matchKwOneOf("ASC", "DESC")
		if _, ok := r.match(op(",")); !ok {
			break
		}
	}
	if _, err := r.expect(op(")")); err != nil {
		return err
	}
	for {
		switch {
		case r.matchKw("INCLUDE"):
			if _, err := r.expect(op("(")); err != nil {
				return err
			}
			if err := r.parseIdentList(); err != nil {
				return err
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		case r.matchKw("CLUSTER"):
		case r.matchKw("ALLOW", "REVERSE", "SCANS"):
		case r.matchKw("DISALLOW", "REVERSE", "SCANS"):
		default:
			return nil
		}
	}
}

// --- triggers ---------------------------------------------------------

func (r *run) parseCreateTrigger() error {
	if err := r.expectKw("TRIGGER"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	r.indent()
	switch {
	case r.matchKw("NO", "CASCADE", "BEFORE"):
	case r.matchKw("BEFORE"):
	case r.matchKw("AFTER"):
	case r.matchKw("INSTEAD", "OF"):
	default:
		return r.fail(errExpectedOneOf, []template{
			kw("NO"), kw("BEFORE"), kw("AFTER"), kw("INSTEAD"),
		})
	}
	switch {
	case r.matchKw("INSERT"), r.matchKw("DELETE"):
	case r.matchKw("UPDATE"):
		if r.matchKw("OF") {
			if err := r.parseIdentList(); err != nil {
				return err
			}
		}
	default:
		return r.fail(errExpectedOneOf, []template{
			kw("INSERT"), kw("DELETE"), kw("UPDATE"),
		})
	}
	if err := r.expectKw("ON"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if r.matchKw("REFERENCING") {
		r.newlineBefore(1)
		for {
			matched := r.matchKw("OLD", "TABLE") || r.matchKw("NEW", "TABLE") ||
				r.matchKw("OLD", "ROW") || r.matchKw("NEW", "ROW") ||
				r.matchKw("OLD") || r.matchKw("NEW")
			if !matched {
				break
			}
			r.matchKw("AS")
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		}
	}
	r.newline()
	if err := r.expectKw("FOR", "EACH"); err != nil {
		return err
	}
	if _, err := r.expectKwOneOf("ROW", "STATEMENT"); err != nil {
		return err
	}
	r.matchKw("MODE", "DB2SQL")
	if r.matchKw("WHEN") {
		r.newlineBefore(1)
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		if err := r.parseSearchCondition(); err != nil {
			return err
		}
		if _, err := r.expect(op(")")); err != nil {
			return err
		}
	}
	r.outdent()
	return r.parseTriggerBody()
}

// parseTriggerBody parses the triggered action: a compound statement
// or a single routine statement.
func (r *run) parseTriggerBody() error {
	if r.curIsKw("BEGIN") {
		return r.parseCompoundStatement()
	}
	return r.parseRoutineStatement()
}

// --- sequences --------------------------------------------------------

func (r *run) parseCreateSequence() error {
	if err := r.expectKw("SEQUENCE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if r.matchKw("AS") {
		if err := r.parseDataType(); err != nil {
			return err
		}
	}
	return r.parseSequenceOptions()
}

// parseSequenceOptions parses the space-separated sequence and
// identity attributes shared by sequences and identity columns.
func (r *run) parseSequenceOptions() error {
	for {
		switch {
		case r.matchKw("START", "WITH"), r.matchKw("INCREMENT", "BY"),
			r.matchKw("MINVALUE"), r.matchKw("MAXVALUE"),
			r.matchKw("CACHE"), r.matchKw("RESTART", "WITH"):
			if err := r.parseSignedNumber(); err != nil {
				return err
			}
		case r.matchKw("NO"):
			if _, err := r.expectKwOneOf("MINVALUE", "MAXVALUE", "CYCLE", "CACHE", "ORDER"); err != nil {
				return err
			}
		case r.matchKw("CYCLE"), r.matchKw("ORDER"):
		case r.matchKw("RESTART"):
		default:
			return nil
		}
	}
}

// parseIdentityOptions parses the parenthesized, comma-optional form
// used inside GENERATED ... AS IDENTITY.
func (r *run) parseIdentityOptions() error {
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if err := r.parseSequenceOptions(); err != nil {
		return err
	}
	for {
		if _, ok := r.match(op(",")); !ok {
			break
		}
		if err := r.parseSequenceOptions(); err != nil {
			return err
		}
	}
	_, err := r.expect(op(")"))
	return err
}

func (r *run) parseSignedNumber() error {
	r.match(op("+"))
	r.match(op("-"))
	_, err := r.expect(ofKind(token.Number))
	return err
}

// --- routines ---------------------------------------------------------

func (r *run) parseCreateFunction() error {
	if err := r.expectKw("FUNCTION"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, err := r.expect(op("(")); err != nil {
		return err
	}
	if !(r.cur().Kind == token.Operator && r.cur().Value == ")") {
		for {
			// Parameter names are optional in function signatures.
			if !r.try(func() error {
				if _, err := r.expect(ofKind(token.Identifier)); err != nil {
					return err
				}
				return r.parseDataType()
			}) {
				if err := r.parseDataType(); err != nil {
					return err
				}
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
		}
	}
	if _, err := r.expect(op(")")); err != nil {
		return err
	}
	r.indent()
	if err := r.expectKw("RETURNS"); err != nil {
		return err
	}
	switch {
	case r.matchKw("TABLE"):
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		for {
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
			if err := r.parseDataType(); err != nil {
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
		if err := r.parseDataType(); err != nil {
			return err
		}
	}
	if err := r.parseRoutineOptions(); err != nil {
		return err
	}
	r.outdent()
	return r.parseRoutineBody()
}

func (r *run) parseCreateProcedure() error {
	if err := r.expectKw("PROCEDURE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if _, ok := r.match(op("(")); ok {
		if !(r.cur().Kind == token.Operator && r.cur().Value == ")") {
			for {
				r.matchKwOneOf("IN", "OUT", "INOUT")
				if _, err := r.expect(ofKind(token.Identifier)); err != nil {
					return err
				}
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
	r.indent()
	if err := r.parseRoutineOptions(); err != nil {
		return err
	}
	r.outdent()
	return r.parseRoutineBody()
}

// parseRoutineOptions parses the unordered routine attributes, one
// per line. INHERIT prefixes two distinct attributes, so that branch
// is resolved speculatively.
func (r *run) parseRoutineOptions() error {
	for {
		switch {
		case r.matchKw("SPECIFIC"):
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		case r.matchKw("LANGUAGE", "SQL"):
		case r.matchKw("PARAMETER", "CCSID"):
			if _, err := r.expectKwOneOf("ASCII", "UNICODE"); err != nil {
				return err
			}
		case r.matchKw("DETERMINISTIC"):
		case r.matchKw("NOT", "DETERMINISTIC"):
		case r.matchKw("EXTERNAL", "ACTION"):
		case r.matchKw("NO", "EXTERNAL", "ACTION"):
		case r.matchKw("READS", "SQL", "DATA"):
		case r.matchKw("MODIFIES", "SQL", "DATA"):
		case r.matchKw("CONTAINS", "SQL"):
		case r.matchKw("CALLED", "ON", "NULL", "INPUT"):
		case r.matchKw("RETURNS", "NULL", "ON", "NULL", "INPUT"):
		case r.matchKw("STATIC", "DISPATCH"):
		case r.matchKw("INHERIT", "SPECIAL", "REGISTERS"):
		case r.matchKw("INHERIT", "ISOLATION", "LEVEL"):
			if !r.matchKw("WITH") && !r.matchKw("WITHOUT") {
				return r.fail(errExpectedOneOf, []template{kw("WITH"), kw("WITHOUT")})
			}
			if err := r.expectKw("LOCK", "REQUEST"); err != nil {
				return err
			}
		case r.matchKw("DYNAMIC", "RESULT", "SETS"):
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
		case r.matchKw("NEW", "SAVEPOINT", "LEVEL"):
		case r.matchKw("OLD", "SAVEPOINT", "LEVEL"):
		case r.matchKw("SECURED"):
		case r.matchKw("NOT", "SECURED"):
		default:
			return nil
		}
		r.newline()
	}
}

// parseRoutineBody parses a RETURN body or a compound statement.
func (r *run) parseRoutineBody() error {
	if r.curIsKw("BEGIN") {
		return r.parseCompoundStatement()
	}
	if r.curIsKw("RETURN") {
		return r.parseReturnStatement()
	}
	return r.parseRoutineStatement()
}

// --- storage objects --------------------------------------------------

func (r *run) parseCreateTablespace() error {
	if !r.matchKw("REGULAR") && !r.matchKw("LARGE") {
		if r.matchKw("USER") || r.matchKw("SYSTEM") {
			if err := r.expectKw("TEMPORARY"); err != nil {
				return err
			}
		} else {
			r.matchKw("TEMPORARY")
		}
	}
	if err := r.expectKw("TABLESPACE"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	for {
		switch {
		case r.matchKw("PAGESIZE"):
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
			r.matchKw("K")
		case r.matchKw("MANAGED", "BY"):
			switch {
			case r.matchKw("AUTOMATIC", "STORAGE"):
			case r.matchKw("DATABASE"), r.matchKw("SYSTEM"):
				if err := r.expectKw("USING"); err != nil {
					return err
				}
				if _, err := r.expect(op("(")); err != nil {
					return err
				}
				if err := r.parseContainerList(); err != nil {
					return err
				}
				if _, err := r.expect(op(")")); err != nil {
					return err
				}
			default:
				return r.fail(errExpectedOneOf, []template{
					kw("AUTOMATIC"), kw("DATABASE"), kw("SYSTEM"),
				})
			}
		case r.matchKw("EXTENTSIZE"), r.matchKw("PREFETCHSIZE"), r.matchKw("OVERHEAD"), r.matchKw("TRANSFERRATE"):
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
		case r.matchKw("BUFFERPOOL"):
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		case r.matchKw("AUTORESIZE"):
			if _, err := r.expectKwOneOf("YES", "NO"); err != nil {
				return err
			}
		case r.matchKw("DROPPED", "TABLE", "RECOVERY"):
			if _, err := r.expectKwOneOf("ON", "OFF"); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// parseContainerList parses tablespace container clauses: quoted
// paths, optionally FILE/DEVICE with a size.
func (r *run) parseContainerList() error {
	for {
		if _, ok := r.matchKwOneOf("FILE", "DEVICE"); ok {
			if _, err := r.expect(ofKind(token.String)); err != nil {
				return err
			}
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
			r.matchKwOneOf("K", "M", "G")
		} else if _, err := r.expect(ofKind(token.String)); err != nil {
			return err
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

func (r *run) parseCreateBufferpool() error {
	if err := r.expectKw("BUFFERPOOL"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	r.matchKwOneOf("IMMEDIATE", "DEFERRED")
	if err := r.expectKw("SIZE"); err != nil {
		return err
	}
	if _, ok := r.match(ofKind(token.Number)); !ok {
		if err := r.expectKw("AUTOMATIC"); err != nil {
			return err
		}
	} else {
		r.matchKw("AUTOMATIC")
	}
	if r.matchKw("PAGESIZE") {
		if _, err := r.expect(ofKind(token.Number)); err != nil {
			return err
		}
		r.matchKw("K")
	}
	return nil
}

func (r *run) parseCreateSchema() error {
	if err := r.expectKw("SCHEMA"); err != nil {
		return err
	}
	if r.matchKw("AUTHORIZATION") {
		_, err := r.expect(ofKind(token.Identifier))
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	if r.matchKw("AUTHORIZATION") {
		_, err := r.expect(ofKind(token.Identifier))
		return err
	}
	return nil
}

func (r *run) parseCreatePartitionGroup() error {
	if err := r.expectKw("DATABASE", "PARTITION", "GROUP"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	if r.matchKw("ON") {
		if r.matchKw("ALL") {
			return r.expectKw("DBPARTITIONNUMS")
		}
		if _, err := r.expectKwOneOf("DBPARTITIONNUM", "DBPARTITIONNUMS"); err != nil {
			return err
		}
		if _, err := r.expect(op("(")); err != nil {
			return err
		}
		for {
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
			if r.matchKw("TO") {
				if _, err := r.expect(ofKind(token.Number)); err != nil {
					return err
				}
			}
			if _, ok := r.match(op(",")); !ok {
				break
			}
		}
		_, err := r.expect(op(")"))
		return err
	}
	return nil
}

func (r *run) parseCreateType() error {
	r.matchKw("DISTINCT")
	if err := r.expectKw("TYPE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.expectKw("AS"); err != nil {
		return err
	}
	if err := r.parseDataType(); err != nil {
		return err
	}
	r.matchKw("WITH", "COMPARISONS")
	return nil
}

func (r *run) parseCreateRole() error {
	if err := r.expectKw("ROLE"); err != nil {
		return err
	}
	_, err := r.expect(ofKind(token.Identifier))
	return err
}

func (r *run) parseCreateVariable() error {
	if err := r.expectKw("VARIABLE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	if err := r.parseDataType(); err != nil {
		return err
	}
	if r.matchKw("DEFAULT") || r.matchKw("CONSTANT") {
		return r.parseExpression()
	}
	return nil
}

// --- ALTER ------------------------------------------------------------

func (r *run) parseAlterStatement() error {
	if err := r.expectKw("ALTER"); err != nil {
		return err
	}
	switch {
	case r.curIsKw("TABLE"):
		return r.parseAlterTable()
	case r.curIsKw("SEQUENCE"):
		return r.parseAlterSequence()
	case r.curIsKw("BUFFERPOOL"):
		return r.parseAlterBufferpool()
	case r.curIsKw("TABLESPACE"):
		return r.parseAlterTablespace()
	}
	return r.fail(errExpectedOneOf, []template{
		kw("TABLE"), kw("SEQUENCE"), kw("BUFFERPOOL"), kw("TABLESPACE"),
	})
}

// parseAlterTable parses ALTER TABLE with one action per line.
func (r *run) parseAlterTable() error {
	if err := r.expectKw("TABLE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	r.indent()
	for {
		switch {
		case r.matchKw("ADD"):
			if !r.try(func() error { return r.parseTableConstraint() }) {
				r.matchKw("COLUMN")
				if err := r.parseColumnDefinition(); err != nil {
					return err
				}
			}
		case r.matchKw("ALTER"):
			r.matchKw("COLUMN")
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
			switch {
			case r.matchKw("SET", "DATA", "TYPE"):
				if err := r.parseDataType(); err != nil {
					return err
				}
			case r.matchKw("SET", "NOT", "NULL"):
			case r.matchKw("SET", "DEFAULT"):
				if err := r.parseExpression(); err != nil {
					return err
				}
			case r.matchKw("DROP", "NOT", "NULL"):
			case r.matchKw("DROP", "DEFAULT"):
			case r.matchKw("DROP", "IDENTITY"):
			default:
				return r.fail(errExpectedOneOf, []template{kw("SET"), kw("DROP")})
			}
		case r.matchKw("DROP"):
			switch {
			case r.matchKw("PRIMARY", "KEY"):
			case r.matchKw("CONSTRAINT"), r.matchKw("UNIQUE"), r.matchKw("CHECK"):
				if _, err := r.expect(ofKind(token.Identifier)); err != nil {
					return err
				}
			case r.matchKw("FOREIGN", "KEY"):
				if _, err := r.expect(ofKind(token.Identifier)); err != nil {
					return err
				}
			default:
				r.matchKw("COLUMN")
				if _, err := r.expect(ofKind(token.Identifier)); err != nil {
					return err
				}
				r.matchKwOneOf("RESTRICT", "CASCADE")
			}
		case r.matchKw("ACTIVATE", "NOT", "LOGGED", "INITIALLY"):
			if r.matchKw("WITH") {
				if err := r.expectKw("EMPTY", "TABLE"); err != nil {
					return err
				}
			}
		case r.matchKw("PCTFREE"):
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
		case r.matchKw("APPEND"):
			if _, err := r.expectKwOneOf("ON", "OFF"); err != nil {
				return err
			}
		case r.matchKw("COMPRESS"):
			if _, err := r.expectKwOneOf("YES", "NO"); err != nil {
				return err
			}
		default:
			r.level--
			return r.fail(errExpectedOneOf, []template{
				kw("ADD"), kw("ALTER"), kw("DROP"), kw("ACTIVATE"),
				kw("PCTFREE"), kw("APPEND"), kw("COMPRESS"),
			})
		}
		if !r.curIsAlterTableAction() {
			break
		}
		r.newline()
	}
	r.level--
	return nil
}

func (r *run) curIsAlterTableAction() bool {
	return r.curIsKw("ADD", "ALTER", "DROP", "ACTIVATE", "PCTFREE", "APPEND", "COMPRESS")
}

func (r *run) parseAlterSequence() error {
	if err := r.expectKw("SEQUENCE"); err != nil {
		return err
	}
	if err := r.parseSubschemaName(); err != nil {
		return err
	}
	return r.parseSequenceOptions()
}

func (r *run) parseAlterBufferpool() error {
	if err := r.expectKw("BUFFERPOOL"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	r.matchKwOneOf("IMMEDIATE", "DEFERRED")
	if err := r.expectKw("SIZE"); err != nil {
		return err
	}
	if _, ok := r.match(ofKind(token.Number)); !ok {
		return r.expectKw("AUTOMATIC")
	}
	r.matchKw("AUTOMATIC")
	return nil
}

func (r *run) parseAlterTablespace() error {
	if err := r.expectKw("TABLESPACE"); err != nil {
		return err
	}
	if _, err := r.expect(ofKind(token.Identifier)); err != nil {
		return err
	}
	for {
		switch {
		case r.matchKw("ADD"):
			if _, err := r.expect(op("(")); err != nil {
				return err
			}
			if err := r.parseContainerList(); err != nil {
				return err
			}
			if _, err := r.expect(op(")")); err != nil {
				return err
			}
		case r.matchKw("EXTENTSIZE"), r.matchKw("PREFETCHSIZE"), r.matchKw("OVERHEAD"), r.matchKw("TRANSFERRATE"):
			if _, err := r.expect(ofKind(token.Number)); err != nil {
				return err
			}
		case r.matchKw("BUFFERPOOL"):
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// --- DROP -------------------------------------------------------------

func (r *run) parseDropStatement() error {
	if err := r.expectKw("DROP"); err != nil {
		return err
	}
	switch {
	case r.matchKw("TABLE"), r.matchKw("VIEW"), r.matchKw("ALIAS"),
		r.matchKw("INDEX"), r.matchKw("TRIGGER"), r.matchKw("SEQUENCE"),
		r.matchKw("VARIABLE"):
		return r.parseSubschemaName()
	case r.matchKw("FUNCTION"), r.matchKw("PROCEDURE"):
		if err := r.parseSubschemaName(); err != nil {
			return err
		}
		// An argument list disambiguates between overloads.
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
			_, err := r.expect(op(")"))
			return err
		}
		return nil
	case r.matchKw("SPECIFIC"):
		if _, err := r.expectKwOneOf("FUNCTION", "PROCEDURE"); err != nil {
			return err
		}
		return r.parseSubschemaName()
	case r.matchKw("DISTINCT"), r.curIsKw("TYPE"):
		if err := r.expectKw("TYPE"); err != nil {
			return err
		}
		return r.parseSubschemaName()
	case r.matchKw("TABLESPACE"), r.matchKw("TABLESPACES"):
		for {
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
			if _, ok := r.match(op(",")); !ok {
				return nil
			}
		}
	case r.matchKw("BUFFERPOOL"), r.matchKw("ROLE"):
		_, err := r.expect(ofKind(token.Identifier))
		return err
	case r.matchKw("SCHEMA"):
		if _, err := r.expect(ofKind(token.Identifier)); err != nil {
			return err
		}
		r.matchKwOneOf("RESTRICT", "CASCADE")
		return nil
	case r.matchKw("DATABASE", "PARTITION", "GROUP"):
		_, err := r.expect(ofKind(token.Identifier))
		return err
	}
	return r.fail(errExpectedOneOf, []template{
		kw("TABLE"), kw("VIEW"), kw("ALIAS"), kw("INDEX"), kw("TRIGGER"),
		kw("SEQUENCE"), kw("FUNCTION"), kw("PROCEDURE"), kw("TABLESPACE"),
		kw("BUFFERPOOL"), kw("SCHEMA"), kw("TYPE"), kw("ROLE"), kw("VARIABLE"),
	})
}
