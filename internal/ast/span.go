package ast

import (
	"lunar/internal/source"
	"lunar/internal/token"
)

// ContainedSpan is a pair of delimiter references (parentheses, braces,
// brackets) enclosing a node.
type ContainedSpan struct {
	Open  *token.Reference
	Close *token.Reference
}

// Span covers both delimiters and everything between them.
func (c ContainedSpan) Span() source.Span {
	return c.Open.Span().Cover(c.Close.Span())
}

// Tokens returns the delimiters in order.
func (c ContainedSpan) Tokens() (open, close *token.Reference) {
	return c.Open, c.Close
}
