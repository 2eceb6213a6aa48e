package ast

import (
	"lunar/internal/token"
)

// Pair is one element of a Punctuated sequence: the item plus the separator
// that follows it, nil for the last item when there is no trailing separator.
type Pair[T any] struct {
	Item T
	Sep  *token.Reference
}

// Punctuated is the single representation of every comma/semicolon-delimited
// list in the grammar. Invariant: for a non-empty sequence of n items the
// separator count is n-1 (no trailing separator) or n (trailing separator).
type Punctuated[T any] struct {
	pairs []Pair[T]
}

// Len returns the number of items, separators not counted.
func (p *Punctuated[T]) Len() int {
	return len(p.pairs)
}

// Pairs returns the (item, separator) view used for reconstruction.
// The slice aliases internal storage; do not modify it.
func (p *Punctuated[T]) Pairs() []Pair[T] {
	return p.pairs
}

// Items returns the items in order, ignoring separators.
func (p *Punctuated[T]) Items() []T {
	out := make([]T, len(p.pairs))
	for i := range p.pairs {
		out[i] = p.pairs[i].Item
	}
	return out
}

// SeparatorCount returns the number of non-nil separators.
func (p *Punctuated[T]) SeparatorCount() int {
	n := 0
	for i := range p.pairs {
		if p.pairs[i].Sep != nil {
			n++
		}
	}
	return n
}

// TrailingSeparator returns the separator after the last item, if present.
func (p *Punctuated[T]) TrailingSeparator() *token.Reference {
	if len(p.pairs) == 0 {
		return nil
	}
	return p.pairs[len(p.pairs)-1].Sep
}

// Push appends a pair as-is. The parser uses this; it is the caller's job to
// keep the separator invariant.
func (p *Punctuated[T]) Push(pair Pair[T]) {
	p.pairs = append(p.pairs, pair)
}

// Append adds an item for tree edits, synthesizing a ", " separator on the
// previous last item if it had none.
func (p *Punctuated[T]) Append(item T) {
	if n := len(p.pairs); n > 0 && p.pairs[n-1].Sep == nil {
		p.pairs[n-1].Sep = token.NewSymbol(token.Comma, ", ")
	}
	p.pairs = append(p.pairs, Pair[T]{Item: item})
}
