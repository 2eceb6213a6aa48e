package parser

import (
	"errors"
	"strings"
	"testing"

	"lunar/internal/ast"
	"lunar/internal/lexer"
	"lunar/internal/source"
	"lunar/internal/token"
)

func parseText(t *testing.T, text string, dialect Dialect) (*ast.Tree, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.lua", []byte(text))
	return ParseSource(fs.Get(id), lexer.Options{}, Options{Dialect: dialect})
}

func mustParse(t *testing.T, text string, dialect Dialect) *ast.Tree {
	t.Helper()
	tree, err := parseText(t, text, dialect)
	if err != nil {
		t.Fatalf("parse %q: %v", text, err)
	}
	return tree
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		"",
		"\n",
		"-- just a comment\n",
		"--[[ block\ncomment ]]",
		"#!/usr/bin/env lua\nprint(1)\n",
		"local x = 1",
		"local x, y = 1, 2\n",
		"local  x\t=\t1 -- spacing preserved\n",
		"x = 1",
		"x, y = y, x",
		"a.b.c = 1",
		"a[1][2] = b",
		"print(1)\n-- hello world\nlocal foo -- this is the word foo",
		"print 'single'",
		"print \"double\"",
		"print [[long]]",
		"print [==[nested ]] close]==]",
		"f{1, 2; 3}",
		"t = {}",
		"t = { x = 1, [2] = 'two'; 3, }",
		"obj:method(a, b)",
		"a.b.c:m()('curried')",
		"do\n  local t = 1\nend",
		"while x < 10 do x = x + 1 end",
		"repeat x = x - 1 until x == 0",
		"if a then b() elseif c then d() else e() end",
		"if a == nil then return end",
		"for i = 1, 10 do print(i) end",
		"for i = 1, 10, 2 do print(i) end",
		"for k, v in pairs(t) do print(k, v) end",
		"function a.b.c:m(x, y, ...) return x end",
		"local function fact(n)\n  if n == 0 then return 1 end\n  return n * fact(n - 1)\nend",
		"local f = function(...) return ... end",
		"return",
		"return 1, 2, 3",
		"return x;\n",
		"break",
		"x = 1; y = 2;",
		"x = -y + #t .. 'tail'",
		"x = not (a and b) or c",
		"x = 0x1F + 1e-3 + .5 + 5.",
		"s = 'esc \\' \\n done'",
		"local ok = (f or g)(x)",
	}
	for _, src := range cases {
		tree, err := parseText(t, src, DialectLua51)
		if err != nil {
			t.Errorf("parse %q: %v", src, err)
			continue
		}
		if got := tree.String(); got != src {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", src, got)
		}
	}
}

func TestRoundTripExtended(t *testing.T) {
	cases := []string{
		"local x: number = 1",
		"local a: number, b, c: string = 1, 2, '3'",
		"local t: { x: number, y: number } = p",
		"local conn: socket.tcp = connect()",
		"local xs: Array<number> = {}",
		"local m: Map<string, Array<number>> = {}",
		"type Point = { x: number, y: number }",
		"type Handle = socket.tcp",
		"function scale(p: Point, by: number): Point return p end",
		"local f = function(x: number): number return x end",
		"type T = A\nlocal type = 1",
	}
	for _, src := range cases {
		tree, err := parseText(t, src, DialectExtended)
		if err != nil {
			t.Errorf("parse %q: %v", src, err)
			continue
		}
		if got := tree.String(); got != src {
			t.Errorf("round trip mismatch:\n in: %q\nout: %q", src, got)
		}
	}
}

func TestTypeIsContextual(t *testing.T) {
	// 'type' keeps working as an ordinary identifier in both dialects.
	for _, src := range []string{
		"type = 1",
		"print(type(x))",
		"local t = type",
	} {
		for _, d := range []Dialect{DialectLua51, DialectExtended} {
			tree, err := parseText(t, src, d)
			if err != nil {
				t.Errorf("dialect %d: parse %q: %v", d, src, err)
				continue
			}
			if got := tree.String(); got != src {
				t.Errorf("dialect %d: round trip mismatch: %q != %q", d, got, src)
			}
		}
	}
}

func TestAnnotationsRejectedInBaseDialect(t *testing.T) {
	for _, src := range []string{
		"local x: number = 1",
		"function f(x: number) end",
	} {
		_, err := parseText(t, src, DialectLua51)
		var ute *UnexpectedTokenError
		if !errors.As(err, &ute) {
			t.Errorf("parse %q: want UnexpectedTokenError, got %v", src, err)
		}
	}
}

func TestEmptyAndNoEOF(t *testing.T) {
	if _, err := Parse(nil, Options{}); !errors.Is(err, ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}

	noEOF := []token.Token{{Kind: token.Ident, Text: "x"}}
	if _, err := Parse(noEOF, Options{}); !errors.Is(err, ErrNoEOF) {
		t.Fatalf("want ErrNoEOF, got %v", err)
	}
}

func TestTriviaOnlyInput(t *testing.T) {
	tree := mustParse(t, "  -- nothing here\n\n", DialectLua51)
	if len(tree.Block.Stmts) != 0 || tree.Block.LastStmt != nil {
		t.Fatalf("want empty block, got %d statements", len(tree.Block.Stmts))
	}
	if got := tree.String(); got != "  -- nothing here\n\n" {
		t.Fatalf("trivia lost: %q", got)
	}
}

func TestSyntaxErrors(t *testing.T) {
	cases := []struct {
		src     string
		line    uint32
		col     uint32
		context string
	}{
		{"x = ", 1, 5, "expected expression after '='"},
		{"(1", 1, 3, "expected ')' to close expression"},
		{"x 1", 1, 3, "expected '=' after variable list"},
		{"while x x = 1 end", 1, 9, "expected 'do' after while condition"},
		{"if x then end\nf(", 2, 3, "expected ')' to close arguments"},
		{"for i = 1 do end", 1, 11, "expected ',' after start expression"},
		{"local", 1, 6, "expected name after 'local'"},
		{"function f(a,) end", 1, 14, "expected item after separator"},
		{"t = { [1] 2 }", 1, 11, "expected '=' after field key"},
		{"return 1 2", 1, 10, "leftover token"},
		{"f() g", 1, 6, "expected '=' after variable list"},
		{"function f(..., x) end", 1, 17, "'...' must be the last parameter"},
		{"x = f()", 0, 0, ""}, // control: valid
	}
	for _, tc := range cases {
		_, err := parseText(t, tc.src, DialectLua51)
		if tc.context == "" {
			if err != nil {
				t.Errorf("parse %q: unexpected error %v", tc.src, err)
			}
			continue
		}
		var ute *UnexpectedTokenError
		if !errors.As(err, &ute) {
			t.Errorf("parse %q: want UnexpectedTokenError, got %v", tc.src, err)
			continue
		}
		if ute.Position.Line != tc.line || ute.Position.Column != tc.col {
			t.Errorf("parse %q: position %d:%d, want %d:%d", tc.src, ute.Position.Line, ute.Position.Column, tc.line, tc.col)
		}
		if !strings.Contains(ute.Error(), tc.context) {
			t.Errorf("parse %q: error %q missing context %q", tc.src, ute.Error(), tc.context)
		}
	}
}

func TestCallChainNotAssignable(t *testing.T) {
	_, err := parseText(t, "x, f() = 1", DialectLua51)
	var ute *UnexpectedTokenError
	if !errors.As(err, &ute) {
		t.Fatalf("want UnexpectedTokenError, got %v", err)
	}
	if !strings.Contains(ute.Error(), "cannot assign to a function call") {
		t.Fatalf("wrong error: %v", ute)
	}
}

func TestLexicalErrorsSurface(t *testing.T) {
	for _, src := range []string{
		"x = 'unterminated",
		"x = [[never closed",
		"--[[ never closed",
		"x = 0x",
	} {
		_, err := parseText(t, src, DialectLua51)
		var lexErr *lexer.Error
		if !errors.As(err, &lexErr) {
			t.Errorf("parse %q: want lexer.Error, got %v", src, err)
		}
	}
}

func TestDeterminism(t *testing.T) {
	src := "local x = 1\nfunction f(a, b) return a + b end\nf(x, {1, 2; y = 3})\n"
	first := mustParse(t, src, DialectLua51).String()
	for i := 0; i < 3; i++ {
		if got := mustParse(t, src, DialectLua51).String(); got != first {
			t.Fatalf("run %d rendered differently", i)
		}
	}

	bad := "x = "
	_, err1 := parseText(t, bad, DialectLua51)
	_, err2 := parseText(t, bad, DialectLua51)
	if err1 == nil || err2 == nil || err1.Error() != err2.Error() {
		t.Fatalf("error not deterministic: %v vs %v", err1, err2)
	}
}

func TestPunctuatedSeparatorInvariant(t *testing.T) {
	tree := mustParse(t, "f(a, b, c)", DialectLua51)
	call, ok := tree.Block.Stmts[0].Stmt.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("want FunctionCall, got %T", tree.Block.Stmts[0].Stmt)
	}
	args := call.Suffixes[0].(*ast.AnonymousCall).Args.(*ast.ParenArgs)
	if args.Args.Len() != 3 || args.Args.SeparatorCount() != 2 {
		t.Fatalf("want 3 items 2 separators, got %d/%d", args.Args.Len(), args.Args.SeparatorCount())
	}
	if args.Args.TrailingSeparator() != nil {
		t.Fatal("no trailing separator expected")
	}

	tree = mustParse(t, "t = {1, 2,}", DialectLua51)
	assign := tree.Block.Stmts[0].Stmt.(*ast.Assignment)
	table := assign.ExprList.Items()[0].(*ast.ValueExpr).Value.(*ast.TableConstructor)
	if table.Fields.Len() != 2 || table.Fields.SeparatorCount() != 2 {
		t.Fatalf("want 2 items 2 separators, got %d/%d", table.Fields.Len(), table.Fields.SeparatorCount())
	}
	if table.Fields.TrailingSeparator() == nil {
		t.Fatal("trailing separator expected")
	}
}

func TestDetachBakesPositions(t *testing.T) {
	tree := mustParse(t, "local x = 1\nf(x)", DialectLua51)
	call := tree.Block.Stmts[1].Stmt.(*ast.FunctionCall)
	name := call.Prefix.(*ast.Name).Token

	before := name.StartPosition(tree.File())
	if before.Line != 2 || before.Column != 1 {
		t.Fatalf("want 2:1 before detach, got %d:%d", before.Line, before.Column)
	}

	tree.Detach()
	if !tree.Detached() || tree.File() != nil {
		t.Fatal("tree still borrows its file")
	}
	after := name.StartPosition(nil)
	if after != before {
		t.Fatalf("baked position %v differs from resolved %v", after, before)
	}
}

func TestStatementShapes(t *testing.T) {
	tree := mustParse(t, "local x = 1; x = x + 1\nreturn x;", DialectLua51)

	if len(tree.Block.Stmts) != 2 {
		t.Fatalf("want 2 statements, got %d", len(tree.Block.Stmts))
	}
	if _, ok := tree.Block.Stmts[0].Stmt.(*ast.LocalAssignment); !ok {
		t.Errorf("stmt 0: want LocalAssignment, got %T", tree.Block.Stmts[0].Stmt)
	}
	if tree.Block.Stmts[0].Semicolon == nil {
		t.Error("stmt 0: semicolon lost")
	}
	if _, ok := tree.Block.Stmts[1].Stmt.(*ast.Assignment); !ok {
		t.Errorf("stmt 1: want Assignment, got %T", tree.Block.Stmts[1].Stmt)
	}
	ret, ok := tree.Block.Last().(*ast.Return)
	if !ok {
		t.Fatalf("want Return last statement, got %T", tree.Block.Last())
	}
	if ret.Returns.Len() != 1 {
		t.Errorf("want 1 return value, got %d", ret.Returns.Len())
	}
	if tree.Block.LastStmt.Semicolon == nil {
		t.Error("return semicolon lost")
	}
}

func TestSuffixClassification(t *testing.T) {
	// Trailing index after a call makes the chain a variable, not a call
	// statement, so a bare 'f().x' needs an assignment to be a statement.
	tree := mustParse(t, "f().x = 1", DialectLua51)
	assign := tree.Block.Stmts[0].Stmt.(*ast.Assignment)
	v, ok := assign.VarList.Items()[0].(*ast.VarExpression)
	if !ok {
		t.Fatalf("want VarExpression, got %T", assign.VarList.Items()[0])
	}
	if len(v.Suffixes) != 2 {
		t.Fatalf("want 2 suffixes, got %d", len(v.Suffixes))
	}
	if _, ok := v.Suffixes[0].(*ast.AnonymousCall); !ok {
		t.Errorf("suffix 0: want AnonymousCall, got %T", v.Suffixes[0])
	}
	if _, ok := v.Suffixes[1].(*ast.DotIndex); !ok {
		t.Errorf("suffix 1: want DotIndex, got %T", v.Suffixes[1])
	}
}
