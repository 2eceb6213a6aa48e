package ast

import (
	"lunar/internal/token"
)

// BinOpRhs is the operator and right-hand side hanging off a value.
type BinOpRhs struct {
	Op  *token.Reference
	Rhs Expression
}

func (*BinOpRhs) node() {}

// ValueExpr is a value with an optional binary-operator tail.
type ValueExpr struct {
	Value Value
	BinOp *BinOpRhs // nil when the value stands alone
}

func (*ValueExpr) node()     {}
func (*ValueExpr) exprNode() {}

// UnaryExpr is '-x', 'not x', or '#x'.
type UnaryExpr struct {
	UnOp *token.Reference
	Expr Expression
}

func (*UnaryExpr) node()     {}
func (*UnaryExpr) exprNode() {}

// ParenExpr is '(expression)'. It is its own expression variant because the
// parentheses truncate multiple values at runtime and must round-trip.
type ParenExpr struct {
	Parens ContainedSpan
	Expr   Expression
}

func (*ParenExpr) node()       {}
func (*ParenExpr) exprNode()   {}
func (*ParenExpr) prefixNode() {}

// Name is a bare identifier used as prefix, variable, or value.
type Name struct {
	Token *token.Reference
}

func (*Name) node()       {}
func (*Name) varNode()    {}
func (*Name) prefixNode() {}

// Number is a numeric literal value.
type Number struct {
	Token *token.Reference
}

func (*Number) node()      {}
func (*Number) valueNode() {}

// StringLiteral is a short or long string literal value.
type StringLiteral struct {
	Token *token.Reference
}

func (*StringLiteral) node()      {}
func (*StringLiteral) valueNode() {}

// Symbol is a keyword-like value: true, false, nil, or '...'.
type Symbol struct {
	Token *token.Reference
}

func (*Symbol) node()      {}
func (*Symbol) valueNode() {}

// Function is an anonymous 'function(...) ... end' value.
type Function struct {
	FunctionToken *token.Reference
	Body          *FunctionBody
}

func (*Function) node()      {}
func (*Function) valueNode() {}

// VarValue wraps a Var used as a value (so 'x' or 'a.b' in 'y = a.b').
type VarValue struct {
	Var Var
}

func (*VarValue) node()      {}
func (*VarValue) valueNode() {}

// ExprValue wraps a parenthesized expression used as a value.
type ExprValue struct {
	Expr Expression
}

func (*ExprValue) node()      {}
func (*ExprValue) valueNode() {}

// VarExpression is a prefix with suffixes ending in an index, usable as an
// assignment target: 'a.b[c]'.
type VarExpression struct {
	Prefix   Prefix
	Suffixes []Suffix
}

func (*VarExpression) node()    {}
func (*VarExpression) varNode() {}

// FunctionCall is a prefix with suffixes whose last suffix is a call. It is
// both a statement and a value.
type FunctionCall struct {
	Prefix   Prefix
	Suffixes []Suffix
}

func (*FunctionCall) node()      {}
func (*FunctionCall) stmtNode()  {}
func (*FunctionCall) valueNode() {}

// BracketIndex is '[expression]'.
type BracketIndex struct {
	Brackets ContainedSpan
	Expr     Expression
}

func (*BracketIndex) node()       {}
func (*BracketIndex) suffixNode() {}

// DotIndex is '.name'.
type DotIndex struct {
	Dot  *token.Reference
	Name *token.Reference
}

func (*DotIndex) node()       {}
func (*DotIndex) suffixNode() {}

// AnonymousCall is a plain call suffix: '(args)', '"s"', or '{t}'.
type AnonymousCall struct {
	Args FunctionArgs
}

func (*AnonymousCall) node()       {}
func (*AnonymousCall) suffixNode() {}

// MethodCall is ':name(args)'.
type MethodCall struct {
	Colon *token.Reference
	Name  *token.Reference
	Args  FunctionArgs
}

func (*MethodCall) node()       {}
func (*MethodCall) suffixNode() {}

// ParenArgs is '(expr, ...)' call arguments.
type ParenArgs struct {
	Parens ContainedSpan
	Args   Punctuated[Expression]
}

func (*ParenArgs) node()             {}
func (*ParenArgs) functionArgsNode() {}

// StringArgs is a lone string argument: f"x" / f[[x]].
type StringArgs struct {
	Token *token.Reference
}

func (*StringArgs) node()             {}
func (*StringArgs) functionArgsNode() {}

// TableArgs is a lone table-constructor argument: f{...}.
type TableArgs struct {
	Table *TableConstructor
}

func (*TableArgs) node()             {}
func (*TableArgs) functionArgsNode() {}
