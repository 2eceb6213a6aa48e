package ast

import (
	"fmt"
	"strings"

	"lunar/internal/token"
)

// Print renders any node back to the exact source bytes it covers. For a
// Tree this is the full round trip: Print(parse(text)) == text.
func Print(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func writeRef(sb *strings.Builder, r *token.Reference) {
	if r != nil {
		r.WriteTo(sb)
	}
}

func writePairs[T any](sb *strings.Builder, p *Punctuated[T], item func(T)) {
	for _, pair := range p.Pairs() {
		item(pair.Item)
		writeRef(sb, pair.Sep)
	}
}

func writeExprs(sb *strings.Builder, p *Punctuated[Expression]) {
	writePairs(sb, p, func(e Expression) { write(sb, e) })
}

func writeRefs(sb *strings.Builder, p *Punctuated[*token.Reference]) {
	writePairs(sb, p, func(r *token.Reference) { writeRef(sb, r) })
}

func writeBlock(sb *strings.Builder, b *Block) {
	for _, pair := range b.Stmts {
		write(sb, pair.Stmt)
		writeRef(sb, pair.Semicolon)
	}
	if b.LastStmt != nil {
		write(sb, b.LastStmt.Stmt)
		writeRef(sb, b.LastStmt.Semicolon)
	}
}

func writeBody(sb *strings.Builder, body *FunctionBody) {
	writeRef(sb, body.Parens.Open)
	i := 0
	for _, pair := range body.Parameters.Pairs() {
		writeRef(sb, pair.Item)
		if i < len(body.ParameterTypes) && body.ParameterTypes[i] != nil {
			write(sb, body.ParameterTypes[i])
		}
		writeRef(sb, pair.Sep)
		i++
	}
	writeRef(sb, body.Parens.Close)
	if body.ReturnType != nil {
		write(sb, body.ReturnType)
	}
	writeBlock(sb, body.Block)
	writeRef(sb, body.EndToken)
}

func writeType(sb *strings.Builder, types *TypeArena, id TypeID) {
	info := types.Get(id)
	if info == nil {
		return
	}
	switch info.Kind {
	case TypeBasic:
		writeRef(sb, info.Base)
	case TypeModule:
		writeRef(sb, info.Base)
		writeRef(sb, info.Dot)
		writeRef(sb, info.Index)
	case TypeGeneric:
		writeRef(sb, info.Base)
		writeRef(sb, info.LtToken)
		writePairs(sb, &info.Params, func(p TypeID) { writeType(sb, types, p) })
		writeRef(sb, info.GtToken)
	case TypeTable:
		writeRef(sb, info.Braces.Open)
		writePairs(sb, &info.Fields, func(f TypeField) {
			writeRef(sb, f.Name)
			writeRef(sb, f.Colon)
			writeType(sb, types, f.Type)
		})
		writeRef(sb, info.Braces.Close)
	}
}

// write is the single render dispatch over the closed node set. Children are
// emitted in document order, which is what makes the round trip exact.
func write(sb *strings.Builder, n Node) { //nolint:gocyclo // one case per variant
	switch v := n.(type) {
	case *Tree:
		writeBlock(sb, v.Block)
		writeRef(sb, v.Eof())

	case *Block:
		writeBlock(sb, v)

	case *Return:
		writeRef(sb, v.Token)
		writeExprs(sb, &v.Returns)

	case *Break:
		writeRef(sb, v.Token)

	case *Assignment:
		writePairs(sb, &v.VarList, func(vr Var) { write(sb, vr) })
		writeRef(sb, v.Equal)
		writeExprs(sb, &v.ExprList)

	case *Do:
		writeRef(sb, v.DoToken)
		writeBlock(sb, v.Block)
		writeRef(sb, v.EndToken)

	case *While:
		writeRef(sb, v.WhileToken)
		write(sb, v.Condition)
		writeRef(sb, v.DoToken)
		writeBlock(sb, v.Block)
		writeRef(sb, v.EndToken)

	case *Repeat:
		writeRef(sb, v.RepeatToken)
		writeBlock(sb, v.Block)
		writeRef(sb, v.UntilToken)
		write(sb, v.Until)

	case *If:
		writeRef(sb, v.IfToken)
		write(sb, v.Condition)
		writeRef(sb, v.ThenToken)
		writeBlock(sb, v.Block)
		for _, ei := range v.ElseIfs {
			write(sb, ei)
		}
		if v.ElseToken != nil {
			writeRef(sb, v.ElseToken)
			writeBlock(sb, v.ElseBlock)
		}
		writeRef(sb, v.EndToken)

	case *ElseIf:
		writeRef(sb, v.ElseIfToken)
		write(sb, v.Condition)
		writeRef(sb, v.ThenToken)
		writeBlock(sb, v.Block)

	case *NumericFor:
		writeRef(sb, v.ForToken)
		writeRef(sb, v.IndexVariable)
		writeRef(sb, v.Equal)
		write(sb, v.Start)
		writeRef(sb, v.StartEndComma)
		write(sb, v.End)
		if v.EndStepComma != nil {
			writeRef(sb, v.EndStepComma)
			write(sb, v.Step)
		}
		writeRef(sb, v.DoToken)
		writeBlock(sb, v.Block)
		writeRef(sb, v.EndToken)

	case *GenericFor:
		writeRef(sb, v.ForToken)
		writeRefs(sb, &v.Names)
		writeRef(sb, v.InToken)
		writeExprs(sb, &v.ExprList)
		writeRef(sb, v.DoToken)
		writeBlock(sb, v.Block)
		writeRef(sb, v.EndToken)

	case *FunctionDeclaration:
		writeRef(sb, v.FunctionToken)
		write(sb, v.Name)
		writeBody(sb, v.Body)

	case *FunctionName:
		writeRefs(sb, &v.Names)
		if v.Colon != nil {
			writeRef(sb, v.Colon)
			writeRef(sb, v.MethodName)
		}

	case *LocalFunction:
		writeRef(sb, v.LocalToken)
		writeRef(sb, v.FunctionToken)
		writeRef(sb, v.Name)
		writeBody(sb, v.Body)

	case *LocalAssignment:
		writeRef(sb, v.LocalToken)
		i := 0
		for _, pair := range v.NameList.Pairs() {
			writeRef(sb, pair.Item)
			if i < len(v.TypeSpecifiers) && v.TypeSpecifiers[i] != nil {
				write(sb, v.TypeSpecifiers[i])
			}
			writeRef(sb, pair.Sep)
			i++
		}
		if v.Equal != nil {
			writeRef(sb, v.Equal)
			writeExprs(sb, &v.ExprList)
		}

	case *TypeDeclaration:
		writeRef(sb, v.TypeToken)
		writeRef(sb, v.Name)
		writeRef(sb, v.Equal)
		writeType(sb, v.Types, v.Type)

	case *TypeSpecifier:
		writeRef(sb, v.Colon)
		writeType(sb, v.Types, v.Type)

	case *FunctionBody:
		writeBody(sb, v)

	case *ValueExpr:
		write(sb, v.Value)
		if v.BinOp != nil {
			writeRef(sb, v.BinOp.Op)
			write(sb, v.BinOp.Rhs)
		}

	case *UnaryExpr:
		writeRef(sb, v.UnOp)
		write(sb, v.Expr)

	case *ParenExpr:
		writeRef(sb, v.Parens.Open)
		write(sb, v.Expr)
		writeRef(sb, v.Parens.Close)

	case *Name:
		writeRef(sb, v.Token)

	case *Number:
		writeRef(sb, v.Token)

	case *StringLiteral:
		writeRef(sb, v.Token)

	case *Symbol:
		writeRef(sb, v.Token)

	case *Function:
		writeRef(sb, v.FunctionToken)
		writeBody(sb, v.Body)

	case *VarValue:
		write(sb, v.Var)

	case *ExprValue:
		write(sb, v.Expr)

	case *VarExpression:
		write(sb, v.Prefix)
		for _, s := range v.Suffixes {
			write(sb, s)
		}

	case *FunctionCall:
		write(sb, v.Prefix)
		for _, s := range v.Suffixes {
			write(sb, s)
		}

	case *BracketIndex:
		writeRef(sb, v.Brackets.Open)
		write(sb, v.Expr)
		writeRef(sb, v.Brackets.Close)

	case *DotIndex:
		writeRef(sb, v.Dot)
		writeRef(sb, v.Name)

	case *AnonymousCall:
		write(sb, v.Args)

	case *MethodCall:
		writeRef(sb, v.Colon)
		writeRef(sb, v.Name)
		write(sb, v.Args)

	case *ParenArgs:
		writeRef(sb, v.Parens.Open)
		writeExprs(sb, &v.Args)
		writeRef(sb, v.Parens.Close)

	case *StringArgs:
		writeRef(sb, v.Token)

	case *TableArgs:
		write(sb, v.Table)

	case *TableConstructor:
		writeRef(sb, v.Braces.Open)
		writePairs(sb, &v.Fields, func(f Field) { write(sb, f) })
		writeRef(sb, v.Braces.Close)

	case *ExpressionKeyField:
		writeRef(sb, v.Brackets.Open)
		write(sb, v.Key)
		writeRef(sb, v.Brackets.Close)
		writeRef(sb, v.Equal)
		write(sb, v.Value)

	case *NameKeyField:
		writeRef(sb, v.Key)
		writeRef(sb, v.Equal)
		write(sb, v.Value)

	case *NoKeyField:
		write(sb, v.Value)

	case *BinOpRhs:
		writeRef(sb, v.Op)
		write(sb, v.Rhs)

	default:
		panic(fmt.Sprintf("ast: unhandled node %T in render", n))
	}
}
