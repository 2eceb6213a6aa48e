package lexer

import (
	"lunar/internal/diag"
	"lunar/internal/token"
)

// scanSymbol scans operators and punctuation, longest match first.
// '--' never reaches here (comments are dispatched earlier), and '[' only
// when it is not a long-bracket start.
func (lx *Lexer) scanSymbol() token.Token {
	start := lx.cursor.Mark()

	var kind token.Kind
	switch b := lx.cursor.Bump(); b {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '^':
		kind = token.Caret
	case '#':
		kind = token.Hash
	case '=':
		kind = token.Assign
		if lx.cursor.Eat('=') {
			kind = token.EqEq
		}
	case '~':
		if !lx.cursor.Eat('=') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, "unexpected character '~'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		kind = token.TildeEq
	case '<':
		kind = token.Lt
		if lx.cursor.Eat('=') {
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Eat('=') {
			kind = token.GtEq
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ';':
		kind = token.Semicolon
	case ':':
		kind = token.Colon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
		if lx.cursor.Eat('.') {
			kind = token.DotDot
			if lx.cursor.Eat('.') {
				kind = token.Ellipsis
			}
		}
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
