package token

import (
	"lunar/internal/source"
)

// Token represents a single lexical unit with its location and exact text.
// Tokens are immutable once produced by the lexer.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsTrivia reports whether the token is whitespace, a comment, or a shebang.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// SpansNewline reports whether the token is whitespace containing a newline.
// The trivia attachment rule never lets such a token end up in trailing trivia.
func (t Token) SpansNewline() bool {
	if t.Kind != Whitespace {
		return false
	}
	for i := 0; i < len(t.Text); i++ {
		if t.Text[i] == '\n' {
			return true
		}
	}
	return false
}

// Position is a resolved location: 1-based line/column plus the byte offset.
type Position struct {
	Line   uint32
	Column uint32
	Offset uint32
}

func at(f *source.File, off uint32) Position {
	if f == nil {
		return Position{Offset: off}
	}
	lc := f.LineColAt(off)
	return Position{Line: lc.Line, Column: lc.Col, Offset: off}
}
