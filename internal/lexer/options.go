package lexer

import (
	"fmt"

	"lunar/internal/diag"
	"lunar/internal/source"
)

type Options struct {
	// Reporter receives lexical diagnostics; nil drops them. Tokenization
	// still aborts on the first lexical error either way.
	Reporter diag.Reporter
}

// Error is a terminal lexical failure identifying the offending byte span.
type Error struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Span, e.Msg)
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.err == nil {
		lx.err = &Error{Code: code, Span: sp, Msg: msg}
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg)
}
