package ast

import (
	"strings"
	"testing"

	"lunar/internal/token"
)

func ref(kind token.Kind, text string) *token.Reference {
	return token.NewReference(token.Token{Kind: kind, Text: text})
}

func refSpaced(kind token.Kind, text, trailing string) *token.Reference {
	r := ref(kind, text)
	r.Trailing = []token.Token{{Kind: token.Whitespace, Text: trailing}}
	return r
}

func nameValue(text string) Expression {
	return &ValueExpr{Value: &VarValue{Var: &Name{Token: ref(token.Ident, text)}}}
}

func TestPunctuatedAppendSynthesizesSeparator(t *testing.T) {
	var p Punctuated[Expression]
	p.Append(nameValue("a"))
	p.Append(nameValue("b"))
	p.Append(nameValue("c"))

	if p.Len() != 3 {
		t.Fatalf("want 3 items, got %d", p.Len())
	}
	if p.SeparatorCount() != 2 {
		t.Fatalf("want 2 synthesized separators, got %d", p.SeparatorCount())
	}
	if p.TrailingSeparator() != nil {
		t.Fatal("Append must not leave a trailing separator")
	}

	var sb strings.Builder
	writeExprs(&sb, &p)
	if got := sb.String(); got != "a, b, c" {
		t.Fatalf("rendered %q, want %q", got, "a, b, c")
	}

	// Synthesized separators must be usable without a source file.
	for _, pair := range p.Pairs() {
		if pair.Sep != nil && !pair.Sep.Detached() {
			t.Fatal("synthesized separator not detached")
		}
	}
}

func TestPunctuatedInvariantAfterPush(t *testing.T) {
	var p Punctuated[Expression]
	p.Push(Pair[Expression]{Item: nameValue("a"), Sep: ref(token.Comma, ",")})
	p.Push(Pair[Expression]{Item: nameValue("b"), Sep: ref(token.Comma, ",")})

	if p.Len() != 2 || p.SeparatorCount() != 2 {
		t.Fatalf("want 2 items 2 separators, got %d/%d", p.Len(), p.SeparatorCount())
	}
	if p.TrailingSeparator() == nil {
		t.Fatal("trailing separator lost")
	}
	if len(p.Items()) != 2 {
		t.Fatalf("Items length %d", len(p.Items()))
	}
}

func TestArenaAllocation(t *testing.T) {
	a := NewArena[TypeInfo](4)
	if a.Get(0) != nil {
		t.Fatal("id 0 must resolve to nil")
	}
	first := a.Allocate(TypeInfo{Kind: TypeBasic})
	second := a.Allocate(TypeInfo{Kind: TypeTable})
	if first != 1 || second != 2 {
		t.Fatalf("ids not 1-based sequential: %d, %d", first, second)
	}
	if got := a.Get(second); got == nil || got.Kind != TypeTable {
		t.Fatalf("Get(%d) = %+v", second, got)
	}
	if a.Len() != 2 {
		t.Fatalf("Len = %d", a.Len())
	}
}

// collector records node types in visit order and counts leaves.
type collector struct {
	visited []string
	left    int
	skip    func(Node) bool
}

func (c *collector) Visit(n Node) bool {
	c.visited = append(c.visited, nodeLabel(n))
	if c.skip != nil && c.skip(n) {
		return false
	}
	return true
}

func (c *collector) Leave(Node) { c.left++ }

func nodeLabel(n Node) string {
	switch v := n.(type) {
	case *Name:
		return "name:" + v.Token.Token.Text
	case *Number:
		return "number:" + v.Token.Token.Text
	case *Assignment:
		return "assignment"
	case *ValueExpr:
		return "value"
	case *VarValue:
		return "varvalue"
	case *Block:
		return "block"
	default:
		return "other"
	}
}

func TestWalkDocumentOrder(t *testing.T) {
	// x = y rendered as an assignment built by hand.
	assign := &Assignment{
		Equal: refSpaced(token.Assign, "=", " "),
	}
	assign.VarList.Push(Pair[Var]{Item: &Name{Token: refSpaced(token.Ident, "x", " ")}})
	assign.ExprList.Push(Pair[Expression]{Item: nameValue("y")})

	block := &Block{Stmts: []StmtPair{{Stmt: assign}}}

	c := &collector{}
	Walk(c, block)

	want := []string{"block", "assignment", "name:x", "value", "varvalue", "name:y"}
	if len(c.visited) != len(want) {
		t.Fatalf("visited %v, want %v", c.visited, want)
	}
	for i := range want {
		if c.visited[i] != want[i] {
			t.Fatalf("visit %d = %q, want %q (full: %v)", i, c.visited[i], want[i], c.visited)
		}
	}
	if c.left != len(want) {
		t.Fatalf("Leave ran %d times, want %d", c.left, len(want))
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	assign := &Assignment{Equal: ref(token.Assign, "=")}
	assign.VarList.Push(Pair[Var]{Item: &Name{Token: ref(token.Ident, "x")}})
	assign.ExprList.Push(Pair[Expression]{Item: nameValue("y")})
	block := &Block{Stmts: []StmtPair{{Stmt: assign}}}

	c := &collector{skip: func(n Node) bool {
		_, isAssign := n.(*Assignment)
		return isAssign
	}}
	Walk(c, block)

	for _, label := range c.visited {
		if strings.HasPrefix(label, "name:") {
			t.Fatalf("descended into skipped node: %v", c.visited)
		}
	}
}

func TestPrintAssembledStatement(t *testing.T) {
	assign := &Assignment{Equal: refSpaced(token.Assign, "=", " ")}
	assign.VarList.Push(Pair[Var]{Item: &Name{Token: refSpaced(token.Ident, "x", " ")}})
	assign.ExprList.Push(Pair[Expression]{Item: &ValueExpr{Value: &Number{Token: ref(token.Number, "1")}}})

	if got := Print(assign); got != "x = 1" {
		t.Fatalf("Print = %q, want %q", got, "x = 1")
	}
}
