package parser

import (
	"lunar/internal/ast"
	"lunar/internal/lexer"
	"lunar/internal/source"
	"lunar/internal/token"
)

// Dialect selects the grammar surface. The base engine contract is identical
// for every dialect.
type Dialect uint8

const (
	// DialectLua51 is plain Lua 5.1.
	DialectLua51 Dialect = iota
	// DialectExtended adds type annotations ('local x: T', parameter and
	// return annotations, 'type Name = T' declarations).
	DialectExtended
)

type Options struct {
	Dialect Dialect
	// File enables line/column resolution in errors and on the tree; nil
	// degrades positions to byte offsets.
	File *source.File
}

// parser is the engine state shared by every production of one parse. The
// cursor (an index into refs) is the only value threaded between
// productions; copying it is what makes backtracking free.
type parser struct {
	refs  []*token.Reference
	types *ast.TypeArena
	opts  Options
}

// Parse turns a flat token stream into a tree, or fails with exactly one of
// ErrEmpty, ErrNoEOF, or *UnexpectedTokenError.
func Parse(tokens []token.Token, opts Options) (*ast.Tree, error) {
	if len(tokens) == 0 {
		return nil, ErrEmpty
	}
	if tokens[len(tokens)-1].Kind != token.EOF {
		return nil, ErrNoEOF
	}

	refs := token.Attach(tokens)
	p := &parser{
		refs:  refs,
		types: ast.NewArena[ast.TypeInfo](0),
		opts:  opts,
	}

	// Empty-looking input (trivia only) parses to an empty tree; the EOF
	// reference carries all the trivia, so rendering still reproduces the
	// source.
	if len(refs) == 1 {
		return ast.NewTree(&ast.Block{}, refs, p.types, opts.File), nil
	}

	pos, block, err := p.parseBlock(0)
	if err != nil {
		if isNoMatch(err) {
			// A block matches anywhere, even matching zero statements; the
			// real failure is the token it stopped at.
			return nil, p.unexpected(0, "")
		}
		return nil, err
	}

	// The whole input must be consumed: a successful sub-parse with tokens
	// left over is still a definite failure.
	if pos != len(p.refs)-1 {
		return nil, p.unexpected(pos, "leftover token")
	}

	return ast.NewTree(block, refs, p.types, opts.File), nil
}

// ParseSource tokenizes and parses one file.
func ParseSource(file *source.File, lexOpts lexer.Options, opts Options) (*ast.Tree, error) {
	tokens, err := lexer.Tokenize(file, lexOpts)
	if err != nil {
		return nil, err
	}
	opts.File = file
	return Parse(tokens, opts)
}

// at returns the reference under the cursor; past the end it returns the EOF
// reference, so productions can always look at a real token.
func (p *parser) at(pos int) *token.Reference {
	if pos >= len(p.refs) {
		return p.refs[len(p.refs)-1]
	}
	return p.refs[pos]
}

// kind returns the token kind under the cursor.
func (p *parser) kind(pos int) token.Kind {
	return p.at(pos).Token.Kind
}

// take consumes a token of the wanted kind, failing with NoMatch otherwise.
// Use it where the caller still has alternatives to try.
func (p *parser) take(pos int, k token.Kind) (int, *token.Reference, error) {
	if ref := p.at(pos); ref.Token.Kind == k {
		return pos + 1, ref, nil
	}
	return pos, nil, errNoMatch
}

// require consumes a token of the wanted kind, failing with UnexpectedToken
// otherwise. Use it once a production is committed: the failure is definite
// and will not be swallowed by alternation.
func (p *parser) require(pos int, k token.Kind, context string) (int, *token.Reference, error) {
	if ref := p.at(pos); ref.Token.Kind == k {
		return pos + 1, ref, nil
	}
	return pos, nil, p.unexpected(pos, context)
}

// unexpected builds the definite syntax error for the token under the cursor.
func (p *parser) unexpected(pos int, context string) *UnexpectedTokenError {
	ref := p.at(pos)
	return &UnexpectedTokenError{
		Token:      ref.Token,
		Position:   ref.StartPosition(p.opts.File),
		Additional: context,
	}
}

func (p *parser) extended() bool {
	return p.opts.Dialect == DialectExtended
}
