package ast

// Visitor is the traversal callback. Visit runs pre-order in document order;
// returning false skips the node's children. Implement Leaver as well to get
// a post-order callback after each node's children were visited.
type Visitor interface {
	Visit(n Node) bool
}

// Leaver is the optional post-order half of a Visitor.
type Leaver interface {
	Leave(n Node)
}

// Walk traverses the tree under n in document order: pre-order Visit,
// children left to right, then Leave when the visitor implements Leaver.
// Traversal is read-only and reentrant.
func Walk(v Visitor, n Node) {
	if n == nil || isNilNode(n) {
		return
	}
	if !v.Visit(n) {
		return
	}
	walkChildren(v, n)
	if l, ok := v.(Leaver); ok {
		l.Leave(n)
	}
}

func walkBlock(v Visitor, b *Block) {
	if b == nil {
		return
	}
	for _, pair := range b.Stmts {
		Walk(v, pair.Stmt)
	}
	if b.LastStmt != nil {
		Walk(v, b.LastStmt.Stmt)
	}
}

func walkExprs(v Visitor, p *Punctuated[Expression]) {
	for _, pair := range p.Pairs() {
		Walk(v, pair.Item)
	}
}

func walkBody(v Visitor, body *FunctionBody) {
	if body == nil {
		return
	}
	Walk(v, body)
}

func walkChildren(v Visitor, n Node) { //nolint:gocyclo // one case per variant
	switch node := n.(type) {
	case *Tree:
		walkBlock(v, node.Block)

	case *Block:
		walkBlock(v, node)

	case *Return:
		walkExprs(v, &node.Returns)

	case *Break:

	case *Assignment:
		for _, pair := range node.VarList.Pairs() {
			Walk(v, pair.Item)
		}
		walkExprs(v, &node.ExprList)

	case *Do:
		walkBlock(v, node.Block)

	case *While:
		Walk(v, node.Condition)
		walkBlock(v, node.Block)

	case *Repeat:
		walkBlock(v, node.Block)
		Walk(v, node.Until)

	case *If:
		Walk(v, node.Condition)
		walkBlock(v, node.Block)
		for _, ei := range node.ElseIfs {
			Walk(v, ei)
		}
		walkBlock(v, node.ElseBlock)

	case *ElseIf:
		Walk(v, node.Condition)
		walkBlock(v, node.Block)

	case *NumericFor:
		Walk(v, node.Start)
		Walk(v, node.End)
		if node.Step != nil {
			Walk(v, node.Step)
		}
		walkBlock(v, node.Block)

	case *GenericFor:
		walkExprs(v, &node.ExprList)
		walkBlock(v, node.Block)

	case *FunctionDeclaration:
		Walk(v, node.Name)
		walkBody(v, node.Body)

	case *FunctionName:

	case *LocalFunction:
		walkBody(v, node.Body)

	case *LocalAssignment:
		for _, ts := range node.TypeSpecifiers {
			if ts != nil {
				Walk(v, ts)
			}
		}
		walkExprs(v, &node.ExprList)

	case *TypeDeclaration:

	case *TypeSpecifier:

	case *FunctionBody:
		for _, ts := range node.ParameterTypes {
			if ts != nil {
				Walk(v, ts)
			}
		}
		if node.ReturnType != nil {
			Walk(v, node.ReturnType)
		}
		walkBlock(v, node.Block)

	case *ValueExpr:
		Walk(v, node.Value)
		if node.BinOp != nil {
			Walk(v, node.BinOp.Rhs)
		}

	case *UnaryExpr:
		Walk(v, node.Expr)

	case *ParenExpr:
		Walk(v, node.Expr)

	case *Name, *Number, *StringLiteral, *Symbol:

	case *Function:
		walkBody(v, node.Body)

	case *VarValue:
		Walk(v, node.Var)

	case *ExprValue:
		Walk(v, node.Expr)

	case *VarExpression:
		Walk(v, node.Prefix)
		for _, s := range node.Suffixes {
			Walk(v, s)
		}

	case *FunctionCall:
		Walk(v, node.Prefix)
		for _, s := range node.Suffixes {
			Walk(v, s)
		}

	case *BracketIndex:
		Walk(v, node.Expr)

	case *DotIndex:

	case *AnonymousCall:
		Walk(v, node.Args)

	case *MethodCall:
		Walk(v, node.Args)

	case *ParenArgs:
		walkExprs(v, &node.Args)

	case *StringArgs:

	case *TableArgs:
		Walk(v, node.Table)

	case *TableConstructor:
		for _, pair := range node.Fields.Pairs() {
			Walk(v, pair.Item)
		}

	case *ExpressionKeyField:
		Walk(v, node.Key)
		Walk(v, node.Value)

	case *NameKeyField:
		Walk(v, node.Value)

	case *NoKeyField:
		Walk(v, node.Value)

	case *BinOpRhs:
		Walk(v, node.Rhs)
	}
}

// isNilNode guards against typed-nil interfaces reaching Walk.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *ElseIf:
		return v == nil
	case *FunctionBody:
		return v == nil
	case *FunctionName:
		return v == nil
	default:
		return false
	}
}
