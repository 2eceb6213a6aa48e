package parser

import (
	"errors"
	"fmt"

	"lunar/internal/token"
)

// Public failure taxonomy. All failures are terminal: no partial tree is
// ever returned.
var (
	// ErrEmpty means zero tokens were supplied. That is an integration bug,
	// not a syntax error.
	ErrEmpty = errors.New("no tokens supplied")
	// ErrNoEOF means the token sequence lacks a terminating EOF token. That is
	// an integration bug, not a syntax error.
	ErrNoEOF = errors.New("token sequence does not end with EOF")
)

// UnexpectedTokenError is the one true syntax-error case: the input is
// definitely invalid at Token. Additional optionally names what the parser
// was looking for.
type UnexpectedTokenError struct {
	Token      token.Token
	Position   token.Position
	Additional string
}

func (e *UnexpectedTokenError) Error() string {
	what := e.Token.Text
	if e.Token.Kind == token.EOF {
		what = "<eof>"
	}
	if e.Additional != "" {
		return fmt.Sprintf("unexpected token %q at %d:%d (%s)", what, e.Position.Line, e.Position.Column, e.Additional)
	}
	return fmt.Sprintf("unexpected token %q at %d:%d", what, e.Position.Line, e.Position.Column)
}

// errNoMatch is the recoverable internal failure: the production does not
// apply at the current position and the caller may try an alternative at the
// same cursor. It never escapes Parse.
var errNoMatch = errors.New("no match")

// isNoMatch distinguishes the two failure tiers. Anything that is not
// errNoMatch is definite and must propagate past alternation.
func isNoMatch(err error) bool {
	return errors.Is(err, errNoMatch)
}
