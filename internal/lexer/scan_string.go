package lexer

import (
	"lunar/internal/diag"
	"lunar/internal/token"
)

// scanShortString scans a single- or double-quoted string. A backslash
// escapes the following byte, including a real newline; an unescaped newline
// or EOF before the closing quote is a lexical error.
func (lx *Lexer) scanShortString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		b := lx.cursor.Bump()
		switch b {
		case quote:
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		case '\\':
			lx.cursor.Bump() // escaped byte, newline included
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	}
}

// scanLongString scans a [[...]] or [=[...]=] string literal.
func (lx *Lexer) scanLongString() token.Token {
	start := lx.cursor.Mark()
	if _, ok := lx.consumeLongBracket(); !ok {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnclosedLongString, sp, "unclosed long string")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
}

// consumeLongBracket consumes '[' '='* '[' then everything up to and
// including the matching ']' '='* ']' of the same level. The cursor must sit
// on a long-bracket start. Returns the level and whether a closer was found;
// on failure the cursor is left at EOF.
func (lx *Lexer) consumeLongBracket() (level uint32, ok bool) {
	lx.cursor.Bump() // '['
	for lx.cursor.Eat('=') {
		level++
	}
	lx.cursor.Bump() // '['

	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != ']' {
			continue
		}
		var eqs uint32
		for lx.cursor.Eat('=') {
			eqs++
		}
		if eqs == level && lx.cursor.Eat(']') {
			return level, true
		}
	}
	return level, false
}
