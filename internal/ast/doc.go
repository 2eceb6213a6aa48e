// Package ast defines the full-fidelity Lua syntax tree.
//
// Every token of the source, trivia included, is owned by exactly one
// token.Reference reachable from the tree, so rendering a tree reproduces the
// original text byte for byte. Node categories (Stmt, Expression, Value, Var,
// Prefix, Suffix, Field, ...) are closed sum types: interfaces with unexported
// marker methods, dispatched by type switches in Walk and Render.
//
// Nodes are built bottom-up by the parser and owned by their parent; nothing
// is shared between two parents. A freshly parsed Tree borrows its
// source.File for position resolution only; Detach bakes positions in and
// severs that last tie.
package ast
