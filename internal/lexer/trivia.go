package lexer

import (
	"lunar/internal/diag"
	"lunar/internal/token"
)

// scanWhitespace scans a run of spaces, tabs, and carriage returns, plus at
// most one terminating newline. A lone newline is its own token. Keeping
// newlines at token boundaries is what lets trivia attachment split leading
// from trailing trivia per line.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '\n' {
		lx.cursor.Bump()
	} else {
		for {
			b := lx.cursor.Peek()
			if b != ' ' && b != '\t' && b != '\r' {
				break
			}
			lx.cursor.Bump()
		}
		lx.cursor.Eat('\n')
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Whitespace, Span: sp, Text: lx.text(sp)}
}

// scanComment scans '--...' to end of line, or '--[[...]]' long comments with
// bracket levels. The terminating newline of a line comment is not part of
// the comment token.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '-'
	lx.cursor.Bump() // '-'

	if lx.isLongBracketStart() {
		if _, ok := lx.consumeLongBracket(); !ok {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnclosedComment, sp, "unclosed long comment")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
}

// scanShebang scans a '#!...' line at offset 0, newline excluded.
func (lx *Lexer) scanShebang() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Shebang, Span: sp, Text: lx.text(sp)}
}
