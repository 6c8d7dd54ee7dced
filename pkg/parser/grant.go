package parser

import "github.com/waveform-computing/sqldoc/pkg/token"

// GRANT and REVOKE statements.

func (r *run) parseGrantStatement() error {
	if err := r.expectKw("GRANT"); err != nil {
		return err
	}
	if err := r.parsePrivilegeClause(); err != nil {
		return err
	}
	if err := r.expectKw("TO"); err != nil {
		return err
	}
	if err := r.parseGranteeList(); err != nil {
		return err
	}
	r.matchKw("WITH", "GRANT", "OPTION")
	return nil
}

func (r *run) parseRevokeStatement() error {
	if err := r.expectKw("REVOKE"); err != nil {
		return err
	}
	r.matchKw("GRANT", "OPTION", "FOR")
	if err := r.parsePrivilegeClause(); err != nil {
		return err
	}
	if err := r.expectKw("FROM"); err != nil {
		return err
	}
	if err := r.parseGranteeList(); err != nil {
		return err
	}
	r.matchKwOneOf("RESTRICT", "CASCADE")
	return nil
}

// parsePrivilegeClause parses the privilege list and the object it
// applies to.
func (r *run) parsePrivilegeClause() error {
	if err := r.parsePrivilegeList(); err != nil {
		return err
	}
	if err := r.expectKw("ON"); err != nil {
		return err
	}
	return r.parsePrivilegeTarget()
}

// parsePrivilegeList parses ALL [PRIVILEGES], a role list, or the
// explicit privilege names.
func (r *run) parsePrivilegeList() error {
	if r.matchKw("ALL") {
		r.matchKw("PRIVILEGES")
		return nil
	}
	if r.matchKw("ROLE") {
		return r.parseIdentList()
	}
	for {
		switch {
		case r.matchKw("SELECT"), r.matchKw("DELETE"), r.matchKw("ALTER"),
			r.matchKw("INDEX"), r.matchKw("CONTROL"), r.matchKw("USAGE"),
			r.matchKw("USE"), r.matchKw("EXECUTE"), r.matchKw("BINDADD"),
			r.matchKw("CONNECT"), r.matchKw("CREATETAB"), r.matchKw("DBADM"),
			r.matchKw("SECADM"), r.matchKw("IMPLICIT_SCHEMA"), r.matchKw("LOAD"),
			r.matchKw("CREATEIN"), r.matchKw("ALTERIN"), r.matchKw("DROPIN"):
		case r.matchKw("INSERT"), r.matchKw("UPDATE"), r.matchKw("REFERENCES"):
			// These accept an optional column list.
			if _, ok := r.match(op("(")); ok {
				if err := r.parseIdentList(); err != nil {
					return err
				}
				if _, err := r.expect(op(")")); err != nil {
					return err
				}
			}
		default:
			return r.fail(errExpectedOneOf, []template{
				kw("ALL"), kw("SELECT"), kw("INSERT"), kw("UPDATE"),
				kw("DELETE"), kw("REFERENCES"), kw("ALTER"), kw("INDEX"),
				kw("CONTROL"), kw("USAGE"), kw("EXECUTE"),
			})
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}

// parsePrivilegeTarget parses the object clause after ON.
func (r *run) parsePrivilegeTarget() error {
	switch {
	case r.matchKw("DATABASE"):
		return nil
	case r.matchKw("SCHEMA"):
		_, err := r.expect(ofKind(token.Identifier))
		return err
	case r.matchKw("TABLESPACE"):
		_, err := r.expect(ofKind(token.Identifier))
		return err
	case r.matchKw("SEQUENCE"), r.matchKw("VARIABLE"):
		return r.parseSubschemaName()
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
			_, err := r.expect(op(")"))
			return err
		}
		return nil
	case r.matchKw("SPECIFIC"):
		if _, err := r.expectKwOneOf("FUNCTION", "PROCEDURE"); err != nil {
			return err
		}
		return r.parseSubschemaName()
	}
	r.matchKw("TABLE")
	return r.parseSubschemaName()
}

// parseGranteeList parses the authorization names, each optionally
// prefixed with USER, GROUP or ROLE. PUBLIC stands alone.
func (r *run) parseGranteeList() error {
	for {
		if !r.matchKw("PUBLIC") {
			r.matchKwOneOf("USER", "GROUP", "ROLE")
			if _, err := r.expect(ofKind(token.Identifier)); err != nil {
				return err
			}
		}
		if _, ok := r.match(op(",")); !ok {
			return nil
		}
	}
}
