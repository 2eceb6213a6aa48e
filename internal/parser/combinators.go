package parser

import (
	"lunar/internal/ast"
	"lunar/internal/token"
)

// A production takes a cursor and either succeeds with an advanced cursor and
// a node, or fails NoMatch (recoverable) or UnexpectedToken (definite).
type production[T any] func(pos int) (int, T, error)

// zeroOrMore runs item until it reports NoMatch. Definite failures abort the
// whole repetition.
func zeroOrMore[T any](item production[T], pos int) (int, []T, error) {
	var out []T
	for {
		next, v, err := item(pos)
		if err != nil {
			if isNoMatch(err) {
				return pos, out, nil
			}
			return pos, nil, err
		}
		out = append(out, v)
		pos = next
	}
}

// oneOrMore is zeroOrMore that fails NoMatch itself when the first attempt
// does not match.
func oneOrMore[T any](item production[T], pos int) (int, []T, error) {
	next, first, err := item(pos)
	if err != nil {
		return pos, nil, err
	}
	rest, more, err := zeroOrMore(item, next)
	if err != nil {
		return pos, nil, err
	}
	return rest, append([]T{first}, more...), nil
}

// takeOne matches any one of the given kinds, failing NoMatch otherwise.
// It adapts multi-kind separators (',' or ';' in table constructors) to the
// delimited combinator.
func (p *parser) takeOne(kinds ...token.Kind) production[*token.Reference] {
	return func(pos int) (int, *token.Reference, error) {
		for _, k := range kinds {
			if next, ref, err := p.take(pos, k); err == nil {
				return next, ref, nil
			}
		}
		return pos, nil, errNoMatch
	}
}

// delimited alternates item and separator productions into a Punctuated
// sequence, stopping when the separator is absent. With allowTrailing a
// separator not followed by an item ends the sequence and stays attached as
// the trailing separator; without it the missing item is a definite error.
// An empty sequence is a successful zero-length match.
func delimited[T any](p *parser, item production[T], sep production[*token.Reference], allowTrailing bool, pos int) (int, ast.Punctuated[T], error) {
	var out ast.Punctuated[T]

	next, first, err := item(pos)
	if err != nil {
		if isNoMatch(err) {
			return pos, out, nil
		}
		return pos, out, err
	}
	pos = next

	current := first
	for {
		sepNext, sepRef, err := sep(pos)
		if err != nil {
			if !isNoMatch(err) {
				return pos, out, err
			}
			// The list ends without a trailing separator.
			out.Push(ast.Pair[T]{Item: current})
			return pos, out, nil
		}

		itemNext, v, err := item(sepNext)
		if err != nil {
			if isNoMatch(err) && allowTrailing {
				out.Push(ast.Pair[T]{Item: current, Sep: sepRef})
				return sepNext, out, nil
			}
			if isNoMatch(err) {
				return pos, out, p.unexpected(sepNext, "expected item after separator")
			}
			return pos, out, err
		}

		out.Push(ast.Pair[T]{Item: current, Sep: sepRef})
		current = v
		pos = itemNext
	}
}
