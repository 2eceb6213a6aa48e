package lexer

import (
	"lunar/internal/diag"
	"lunar/internal/token"
)

// scanNumber scans Lua 5.1 numerals:
//   - decimal: [0-9]+ (opt. .[0-9]*) (opt. [eE][+-]?[0-9]+)
//   - leading-dot floats: .[0-9]+ (callers check the digit)
//   - hex: 0x[0-9a-fA-F]+
//
// Malformed forms (hex without digits, empty exponent) are lexical errors.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '0' && (b1 == 'x' || b1 == 'X') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "malformed number: expected hex digit")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Eat('.') {
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "malformed number: expected exponent digit")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Span: sp, Text: lx.text(sp)}
}
