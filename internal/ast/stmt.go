package ast

import (
	"lunar/internal/token"
)

// Assignment is 'varlist = exprlist'.
type Assignment struct {
	VarList  Punctuated[Var]
	Equal    *token.Reference
	ExprList Punctuated[Expression]
}

func (*Assignment) node()     {}
func (*Assignment) stmtNode() {}

// Do is a 'do ... end' block.
type Do struct {
	DoToken  *token.Reference
	Block    *Block
	EndToken *token.Reference
}

func (*Do) node()     {}
func (*Do) stmtNode() {}

// While is 'while condition do ... end'.
type While struct {
	WhileToken *token.Reference
	Condition  Expression
	DoToken    *token.Reference
	Block      *Block
	EndToken   *token.Reference
}

func (*While) node()     {}
func (*While) stmtNode() {}

// Repeat is 'repeat ... until condition'.
type Repeat struct {
	RepeatToken *token.Reference
	Block       *Block
	UntilToken  *token.Reference
	Until       Expression
}

func (*Repeat) node()     {}
func (*Repeat) stmtNode() {}

// ElseIf is one 'elseif condition then ...' arm.
type ElseIf struct {
	ElseIfToken *token.Reference
	Condition   Expression
	ThenToken   *token.Reference
	Block       *Block
}

func (*ElseIf) node() {}

// If is 'if condition then ... [elseif ...]* [else ...] end'.
type If struct {
	IfToken   *token.Reference
	Condition Expression
	ThenToken *token.Reference
	Block     *Block
	ElseIfs   []*ElseIf
	ElseToken *token.Reference // nil when there is no else arm
	ElseBlock *Block           // nil when there is no else arm
	EndToken  *token.Reference
}

func (*If) node()     {}
func (*If) stmtNode() {}

// NumericFor is 'for i = start, end [, step] do ... end'.
type NumericFor struct {
	ForToken      *token.Reference
	IndexVariable *token.Reference
	Equal         *token.Reference
	Start         Expression
	StartEndComma *token.Reference
	End           Expression
	EndStepComma  *token.Reference // nil without a step
	Step          Expression       // nil without a step
	DoToken       *token.Reference
	Block         *Block
	EndToken      *token.Reference
}

func (*NumericFor) node()     {}
func (*NumericFor) stmtNode() {}

// GenericFor is 'for names in exprlist do ... end'.
type GenericFor struct {
	ForToken *token.Reference
	Names    Punctuated[*token.Reference]
	InToken  *token.Reference
	ExprList Punctuated[Expression]
	DoToken  *token.Reference
	Block    *Block
	EndToken *token.Reference
}

func (*GenericFor) node()     {}
func (*GenericFor) stmtNode() {}

// FunctionDeclaration is 'function name.path[:method](...) ... end'.
type FunctionDeclaration struct {
	FunctionToken *token.Reference
	Name          *FunctionName
	Body          *FunctionBody
}

func (*FunctionDeclaration) node()     {}
func (*FunctionDeclaration) stmtNode() {}

// LocalFunction is 'local function name(...) ... end'.
type LocalFunction struct {
	LocalToken    *token.Reference
	FunctionToken *token.Reference
	Name          *token.Reference
	Body          *FunctionBody
}

func (*LocalFunction) node()     {}
func (*LocalFunction) stmtNode() {}

// LocalAssignment is 'local names [= exprlist]'. TypeSpecifiers holds one
// optional ': T' per name in the extended dialect; the slice is empty in the
// base dialect and nil entries mark unannotated names.
type LocalAssignment struct {
	LocalToken     *token.Reference
	NameList       Punctuated[*token.Reference]
	TypeSpecifiers []*TypeSpecifier
	Equal          *token.Reference // nil without initializers
	ExprList       Punctuated[Expression]
}

func (*LocalAssignment) node()     {}
func (*LocalAssignment) stmtNode() {}
