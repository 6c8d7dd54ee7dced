package parser

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waveform-computing/sqldoc/pkg/dialect"
	"github.com/waveform-computing/sqldoc/pkg/token"
)

// formatSQL tokenizes sql and runs it through ParseScript, returning
// the reformatted text.
func formatSQL(t *testing.T, sql, term string) string {
	t.Helper()
	tokens, err := Tokenize(sql, term, dialect.DB2LUW)
	require.NoError(t, err)
	out, err := NewParser(dialect.DB2LUW).ParseScript(tokens)
	require.NoError(t, err)
	return token.Concat(out)
}

func TestFormatSelect(t *testing.T) {
	got := formatSQL(t, "select 1 from t;", ";")
	assert.Equal(t, "SELECT\n    1\nFROM\n    T;\n", got)
}

func TestFormatAddsMissingTerminator(t *testing.T) {
	got := formatSQL(t, "select 1 from t", ";")
	assert.Equal(t, "SELECT\n    1\nFROM\n    T;\n", got)
}

func TestFormatCreateTableAlignsColumns(t *testing.T) {
	got := formatSQL(t, "create table t (id integer not null, name varchar(10));", ";")
	assert.Equal(t, "CREATE TABLE T (\n    ID   INTEGER NOT NULL,\n    NAME VARCHAR (10)\n);\n", got)
}

func TestFormatSeparatesStatements(t *testing.T) {
	got := formatSQL(t, "select 1 from t; select 2 from t;", ";")
	assert.Equal(t, "SELECT\n    1\nFROM\n    T;\n\nSELECT\n    2\nFROM\n    T;\n", got)
}

func TestFormatAlternateTerminator(t *testing.T) {
	got := formatSQL(t, "create function f() returns integer language sql return 1!", "!")
	assert.Equal(t, "CREATE FUNCTION F ()\n    RETURNS INTEGER\n    LANGUAGE SQL\nRETURN 1!\n", got)
}

func TestFormatPreservesLeadingComment(t *testing.T) {
	got := formatSQL(t, "-- header\nselect 1 from t;", ";")
	assert.Equal(t, "-- header\nSELECT\n    1\nFROM\n    T;\n", got)
}

func TestFormatPreservesBlockComment(t *testing.T) {
	got := formatSQL(t, "/* note */ select 1 from t;", ";")
	assert.Equal(t, "/* note */ SELECT\n    1\nFROM\n    T;\n", got)
}

// statementCases is the grammar coverage table shared by the parse and
// idempotence tests. Every entry must parse cleanly under DB2LUW.
var statementCases = []struct {
	name string
	term string
	sql  string
}{
	{"star select", ";", "select * from t;"},
	{"qualified star and alias", ";", "select a.*, b as c from t as a inner join s as b on a.id = b.id;"},
	{"common table expression", ";", "with tots as (select a, sum(b) as total from t group by a) select * from tots where total > 100;"},
	{"predicates and ordering", ";", "select distinct a from t where a in (1, 2, 3) and b between 1 and 10 or c like 'x%' order by a asc nulls last fetch first 5 rows only;"},
	{"case expression", ";", "select case when a > 0 then 'pos' else 'neg' end from t;"},
	{"values rows", ";", "values (1, 'x'), (2, 'y');"},
	{"set operations", ";", "select 1 from t union all select 2 from s except select 3 from r;"},
	{"derived table", ";", "select * from (select a from t) as d;"},
	{"joined table group", ";", "select * from (t1 left outer join t2 on t1.x = t2.x);"},
	{"table function", ";", "select * from table(ftab(1)) as ft;"},
	{"olap window", ";", "select row_number() over (partition by a order by b desc) from t;"},
	{"update clause and optimize", ";", "select * from t for update of a, b optimize for 10 rows;"},
	{"isolation clause", ";", "select * from t with ur;"},
	{"scalar subquery", ";", "select (select max(b) from s) from t;"},
	{"exists predicate", ";", "select a from t where exists (select 1 from s where s.id = t.id);"},
	{"cast and concat", ";", "select cast(a as varchar(10)) || '!' from t;"},

	{"insert values", ";", "insert into t (a, b) values (1, 2);"},
	{"insert from query", ";", "insert into t select * from s;"},
	{"update rows", ";", "update t set a = 1, b = b + 1 where c is not null;"},
	{"update tuple assignment", ";", "update t set (a, b) = (1, 2);"},
	{"delete rows", ";", "delete from t where a = 1;"},
	{"merge rows", ";", "merge into t using s on t.id = s.id when matched then update set a = s.a when not matched then insert (id, a) values (s.id, s.a);"},

	{"create table with constraints", ";", "create table t (id integer not null primary key, name varchar(10) default 'x', constraint fk foreign key (id) references u (id) on delete cascade);"},
	{"create table like", ";", "create table t2 like t1;"},
	{"create table as query", ";", "create table t3 as (select * from t1) with no data;"},
	{"create view", ";", "create view v as select a from t with check option;"},
	{"create index", ";", "create unique index ix on t (a asc, b desc) include (c) allow reverse scans;"},
	{"create sequence", ";", "create sequence seq start with 1 increment by 1 minvalue 1 maxvalue 1000 cache 20 no cycle;"},
	{"create alias", ";", "create alias a1 for t;"},
	{"create distinct type", ";", "create distinct type money as decimal(19, 4) with comparisons;"},
	{"create role", ";", "create role admin;"},
	{"create schema", ";", "create schema s1 authorization bob;"},
	{"create bufferpool", ";", "create bufferpool bp size 1000 pagesize 8 k;"},
	{"create tablespace", ";", "create tablespace ts pagesize 8 k managed by automatic storage extentsize 32;"},
	{"create variable", ";", "create variable gv integer default 0;"},
	{"create function", ";", "create function f (x integer) returns integer language sql deterministic return x * 2;"},
	{"create table function", ";", "create function ft () returns table (a integer, b varchar(10)) language sql return select a, b from t;"},

	{"alter table actions", ";", "alter table t add column c integer not null default 0 alter column a set data type varchar(20) drop column b;"},
	{"alter sequence", ";", "alter sequence seq restart with 1;"},
	{"drop table", ";", "drop table t;"},
	{"drop function with signature", ";", "drop function f(integer);"},
	{"drop specific function", ";", "drop specific function s1;"},
	{"drop schema", ";", "drop schema s1 restrict;"},

	{"grant table privileges", ";", "grant select, update (a, b) on table t to user alice with grant option;"},
	{"grant execute", ";", "grant execute on function f(integer) to public;"},
	{"revoke privileges", ";", "revoke all privileges on t from public restrict;"},

	{"comment on table", ";", "comment on table t is 'a table';"},
	{"comment on columns", ";", "comment on t (a is 'first', b is 'second');"},
	{"lock table", ";", "lock table t in exclusive mode;"},
	{"declare temporary table", ";", "declare global temporary table tmp (a integer) on commit preserve rows not logged;"},
	{"rename table", ";", "rename table t1 to t2;"},
	{"truncate table", ";", "truncate table t reuse storage ignore delete triggers continue identity immediate;"},
	{"call procedure", ";", "call p(1, 'x');"},
	{"explain statement", ";", "explain plan for select 1 from t;"},
	{"refresh table", ";", "refresh table mv not incremental;"},

	{"set schema", ";", "set schema s1;"},
	{"set current degree", ";", "set current degree = 'ANY';"},
	{"set current isolation", ";", "set current isolation = cs;"},
	{"set variable", ";", "set v = 1;"},
	{"set integrity off", ";", "set integrity for t off;"},
	{"set integrity checked", ";", "set integrity for t immediate checked;"},

	{"commit", ";", "commit;"},
	{"commit work", ";", "commit work;"},
	{"rollback to savepoint", ";", "rollback work to savepoint sp;"},
	{"savepoint", ";", "savepoint sp on rollback retain cursors;"},
	{"release savepoint", ";", "release to savepoint sp;"},

	{"create trigger", "@", "create trigger trg after insert on t referencing new as n for each row mode db2sql begin atomic update s set c = c + 1; end@"},
	{"create procedure", "@", "create procedure p (in x integer, out y integer) language sql begin declare z integer default 0; set z = x + 1; set y = z; end@"},
	{"procedural control flow", "@", `create procedure loops (in n integer)
language sql
begin
    declare i integer default 0;
    declare done integer default 0;
    declare c1 cursor with hold for select a from t;
    declare continue handler for not found set done = 1;
    open c1;
    w1: while done = 0 do
        fetch c1 into i;
        if i > n then
            leave w1;
        elseif i < 0 then
            iterate w1;
        end if;
    end while;
    close c1;
    for row as select a from t do
        set i = i + 1;
    end for;
    repeat
        set i = i - 1;
    until i = 0
    end repeat;
    case i
        when 0 then set i = 1;
        else set i = 0;
    end case;
    if n < 0 then
        signal sqlstate '70001' set message_text = 'negative';
    end if;
end@`},
}

func TestParseScriptGrammar(t *testing.T) {
	p := NewParser(dialect.DB2LUW)
	for _, tc := range statementCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, err := Tokenize(tc.sql, tc.term, dialect.DB2LUW)
			require.NoError(t, err)
			out, err := p.ParseScript(tokens)
			require.NoError(t, err)
			require.NotEmpty(t, out)
			assert.Equal(t, token.EOF, out[len(out)-1].Kind)
		})
	}
}

// Formatting the formatter's own output must not change it further.
func TestFormatIsIdempotent(t *testing.T) {
	for _, tc := range statementCases {
		t.Run(tc.name, func(t *testing.T) {
			once := formatSQL(t, tc.sql, tc.term)
			twice := formatSQL(t, once, tc.term)
			assert.Equal(t, once, twice)
		})
	}
}

func TestParseErrorReportsFurthestFailure(t *testing.T) {
	tokens, err := Tokenize("select 1 from from;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	_, err = NewParser(dialect.DB2LUW).ParseScript(tokens)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, token.Position{Line: 1, Column: 15}, perr.Pos)
	assert.Contains(t, perr.Context, "^")
}

func TestParseErrorMissingSelectList(t *testing.T) {
	tokens, err := Tokenize("select from t;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	_, err = NewParser(dialect.DB2LUW).ParseScript(tokens)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, token.Position{Line: 1, Column: 8}, perr.Pos)
}

func TestParseErrorContextCaret(t *testing.T) {
	tokens, err := Tokenize("select a\nfrom from;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	_, err = NewParser(dialect.DB2LUW).ParseScript(tokens)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Pos.Line)
	lines := strings.Split(perr.Context, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, strings.Repeat(" ", perr.Pos.Column-1)+"^", lines[len(lines)-1])
}

func TestParseRejectsErrorTokens(t *testing.T) {
	tokens, err := Tokenize("select ` from t;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	_, err = NewParser(dialect.DB2LUW).ParseScript(tokens)
	var lerr *LexError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, 1, lerr.Pos.Line)
}

func TestParseRejectsFormatterTokens(t *testing.T) {
	_, err := NewParser(dialect.DB2LUW).ParseScript([]token.Token{
		{Kind: token.Indent},
		{Kind: token.EOF},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid parser input")
}

func TestParseRequiresTrailingEOF(t *testing.T) {
	tokens, err := Tokenize("select 1 from t;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	_, err = NewParser(dialect.DB2LUW).ParseScript(tokens[:len(tokens)-1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EOF")
}

func TestParserIsSafeForConcurrentUse(t *testing.T) {
	p := NewParser(dialect.DB2LUW)
	want := formatSQL(t, "select 1 from t;", ";")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sql := fmt.Sprintf("select %d from t; select 1 from t;", n)
			tokens, err := Tokenize(sql, ";", dialect.DB2LUW)
			assert.NoError(t, err)
			out, err := p.ParseScript(tokens)
			assert.NoError(t, err)
			got := token.Concat(out)
			assert.True(t, strings.HasSuffix(got, want))
		}(i)
	}
	wg.Wait()
}

func TestParseToStringFallsBack(t *testing.T) {
	p := NewParser(dialect.DB2LUW)

	tokens, err := Tokenize("select 1 from t;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	assert.Equal(t, "SELECT\n    1\nFROM\n    T;\n", p.ParseToString(tokens))

	// Unparseable input comes back verbatim.
	broken, err := Tokenize("select 1 from from;", ";", dialect.DB2LUW)
	require.NoError(t, err)
	assert.Equal(t, "select 1 from from;", p.ParseToString(broken))
}

func TestParseRoutinePrototype(t *testing.T) {
	tokens, err := Tokenize("foo.bar(in x integer, y varchar(10)) returns integer", ";", dialect.DB2LUW)
	require.NoError(t, err)
	out, err := NewParser(dialect.DB2LUW).ParseRoutinePrototype(tokens)
	require.NoError(t, err)
	assert.Equal(t, "FOO.BAR (IN X INTEGER, Y VARCHAR (10)) RETURNS INTEGER", token.Concat(out))
}

func TestParseRoutinePrototypeNoParams(t *testing.T) {
	tokens, err := Tokenize("proc()", ";", dialect.DB2LUW)
	require.NoError(t, err)
	out, err := NewParser(dialect.DB2LUW).ParseRoutinePrototype(tokens)
	require.NoError(t, err)
	assert.Equal(t, "PROC ()", token.Concat(out))
}

func TestParseRoutinePrototypeError(t *testing.T) {
	tokens, err := Tokenize("f(", ";", dialect.DB2LUW)
	require.NoError(t, err)
	_, err = NewParser(dialect.DB2LUW).ParseRoutinePrototype(tokens)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}
