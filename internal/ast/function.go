package ast

import (
	"lunar/internal/token"
)

// FunctionBody is '(parameters) block end', shared by declarations, local
// functions, methods, and anonymous functions. Parameters are name tokens or
// the '...' vararg token. ParameterTypes mirrors Parameters in the extended
// dialect (nil entries mark unannotated parameters); ReturnType is the
// optional ': T' after the parameter list.
type FunctionBody struct {
	Parens         ContainedSpan
	Parameters     Punctuated[*token.Reference]
	ParameterTypes []*TypeSpecifier
	ReturnType     *TypeSpecifier
	Block          *Block
	EndToken       *token.Reference
}

func (*FunctionBody) node() {}

// FunctionName is the dotted path plus optional method name of a function
// declaration: 'a.b.c:d'.
type FunctionName struct {
	Names      Punctuated[*token.Reference] // dot-separated path
	Colon      *token.Reference             // nil without a method part
	MethodName *token.Reference             // nil without a method part
}

func (*FunctionName) node() {}

// TableConstructor is '{ fields }'.
type TableConstructor struct {
	Braces ContainedSpan
	Fields Punctuated[Field]
}

func (*TableConstructor) node()      {}
func (*TableConstructor) valueNode() {}

// ExpressionKeyField is '[key] = value'.
type ExpressionKeyField struct {
	Brackets ContainedSpan
	Key      Expression
	Equal    *token.Reference
	Value    Expression
}

func (*ExpressionKeyField) node()      {}
func (*ExpressionKeyField) fieldNode() {}

// NameKeyField is 'name = value'.
type NameKeyField struct {
	Key   *token.Reference
	Equal *token.Reference
	Value Expression
}

func (*NameKeyField) node()      {}
func (*NameKeyField) fieldNode() {}

// NoKeyField is a positional 'value' entry.
type NoKeyField struct {
	Value Expression
}

func (*NoKeyField) node()      {}
func (*NoKeyField) fieldNode() {}
