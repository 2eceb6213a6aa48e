package lexer

import (
	"lunar/internal/source"
	"lunar/internal/token"
)

// Lexer turns one source file into the flat token stream, trivia included.
// It is a pure function of the file content: no side effects beyond reports.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	err    *Error
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Err returns the first lexical error, if any.
func (lx *Lexer) Err() *Error { return lx.err }

// Tokenize scans the whole file and returns every token in order, trivia
// included, terminated by exactly one EOF token. On a lexical error the
// partial stream is discarded and the error returned.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for {
		tok := lx.Next()
		if lx.err != nil {
			return nil, lx.err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token, trivia or significant. After the end of input
// it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan(), Text: ""}
	}

	ch := lx.cursor.Peek()

	switch {
	case ch == '#' && lx.cursor.Off == 0 && lx.cursor.PeekAt(1) == '!':
		return lx.scanShebang()

	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
		return lx.scanWhitespace()

	case ch == '-' && lx.cursor.PeekAt(1) == '-':
		return lx.scanComment()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()

	case ch == '"' || ch == '\'':
		return lx.scanShortString()

	case ch == '[' && lx.isLongBracketStart():
		return lx.scanLongString()

	default:
		return lx.scanSymbol()
	}
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
