package token

import (
	"strings"

	"lunar/internal/source"
)

// Reference bundles a significant token with the trivia attached to it.
// Rendering every reference of a parsed tree in order reproduces the source
// text exactly.
type Reference struct {
	Leading  []Token
	Token    Token
	Trailing []Token

	// Baked positions; set by Detach so the reference no longer needs the
	// source file to answer position queries.
	start *Position
	end   *Position
}

// NewReference builds a bare reference around a token with no trivia.
// Used when tree edits need synthesized separators.
func NewReference(tok Token) *Reference {
	return &Reference{Token: tok}
}

// NewSymbol builds a detached reference for a synthesized symbol token, e.g. a
// comma inserted by a tree edit. The token carries no span.
func NewSymbol(kind Kind, text string) *Reference {
	r := &Reference{Token: Token{Kind: kind, Text: text}}
	r.start = &Position{}
	r.end = &Position{}
	return r
}

// String renders leading trivia, the token, then trailing trivia.
func (r *Reference) String() string {
	var sb strings.Builder
	r.WriteTo(&sb)
	return sb.String()
}

// WriteTo writes the exact source bytes this reference covers.
func (r *Reference) WriteTo(sb *strings.Builder) {
	for _, tr := range r.Leading {
		sb.WriteString(tr.Text)
	}
	sb.WriteString(r.Token.Text)
	for _, tr := range r.Trailing {
		sb.WriteString(tr.Text)
	}
}

// Span returns the byte range of the significant token, trivia excluded.
func (r *Reference) Span() source.Span {
	return r.Token.Span
}

// FullSpan returns the byte range including leading and trailing trivia.
func (r *Reference) FullSpan() source.Span {
	sp := r.Token.Span
	if len(r.Leading) > 0 {
		sp = sp.Cover(r.Leading[0].Span)
	}
	if n := len(r.Trailing); n > 0 {
		sp = sp.Cover(r.Trailing[n-1].Span)
	}
	return sp
}

// StartPosition resolves the token's start. After Detach the baked position is
// returned and f may be nil; before that, a nil f yields offset-only positions.
func (r *Reference) StartPosition(f *source.File) Position {
	if r.start != nil {
		return *r.start
	}
	return at(f, r.Token.Span.Start)
}

// EndPosition resolves the token's end (exclusive).
func (r *Reference) EndPosition(f *source.File) Position {
	if r.end != nil {
		return *r.end
	}
	return at(f, r.Token.Span.End)
}

// Detach bakes resolved positions into the reference so it stays usable after
// the source file is gone. One-way and O(1) per reference.
func (r *Reference) Detach(f *source.File) {
	if r.start != nil {
		return
	}
	s := at(f, r.Token.Span.Start)
	e := at(f, r.Token.Span.End)
	r.start = &s
	r.end = &e
}

// Detached reports whether positions were baked in.
func (r *Reference) Detached() bool { return r.start != nil }
