package ast

import (
	"lunar/internal/token"
)

// StmtPair is a statement plus its optional ';' separator.
type StmtPair struct {
	Stmt      Stmt
	Semicolon *token.Reference
}

// LastStmtPair is the terminating statement plus its optional ';'.
type LastStmtPair struct {
	Stmt      LastStmt
	Semicolon *token.Reference
}

// Block is an ordered sequence of statements, optionally terminated by a
// return or break.
type Block struct {
	Stmts    []StmtPair
	LastStmt *LastStmtPair
}

func (*Block) node() {}

// IterStmts returns the statements in order, separators ignored.
func (b *Block) IterStmts() []Stmt {
	out := make([]Stmt, len(b.Stmts))
	for i := range b.Stmts {
		out[i] = b.Stmts[i].Stmt
	}
	return out
}

// Last returns the terminating statement, if present.
func (b *Block) Last() LastStmt {
	if b.LastStmt == nil {
		return nil
	}
	return b.LastStmt.Stmt
}

// Return is a 'return' statement with its expression list.
type Return struct {
	Token   *token.Reference
	Returns Punctuated[Expression]
}

func (*Return) node()         {}
func (*Return) lastStmtNode() {}

// Break is a 'break' statement.
type Break struct {
	Token *token.Reference
}

func (*Break) node()         {}
func (*Break) lastStmtNode() {}
