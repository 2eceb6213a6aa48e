package ast

// Node is the common interface of every tree node. The node set is closed:
// variants are fixed at design time and dispatched by type switches.
type Node interface {
	node()
}

// Stmt is a statement inside a block.
type Stmt interface {
	Node
	stmtNode()
}

// LastStmt is a block-terminating statement (return or break).
type LastStmt interface {
	Node
	lastStmtNode()
}

// Expression is any expression.
type Expression interface {
	Node
	exprNode()
}

// Value is the atom of an expression.
type Value interface {
	Node
	valueNode()
}

// Var is an assignable location: a name or a suffixed expression ending in an
// index.
type Var interface {
	Node
	varNode()
}

// Prefix begins a suffixed expression: a name or a parenthesized expression.
type Prefix interface {
	Node
	prefixNode()
}

// Suffix continues a suffixed expression: an index or a call.
type Suffix interface {
	Node
	suffixNode()
}

// FunctionArgs is the argument form of a call: parentheses, a lone string, or
// a lone table constructor.
type FunctionArgs interface {
	Node
	functionArgsNode()
}

// Field is one entry of a table constructor.
type Field interface {
	Node
	fieldNode()
}
