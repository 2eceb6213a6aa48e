package parser

import (
	"lunar/internal/ast"
	"lunar/internal/token"
)

// isBinOp reports whether k can join two expressions.
func isBinOp(k token.Kind) bool {
	switch k {
	case token.KwAnd, token.KwOr,
		token.Lt, token.LtEq, token.Gt, token.GtEq, token.TildeEq, token.EqEq,
		token.DotDot,
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Caret:
		return true
	default:
		return false
	}
}

func isUnOp(k token.Kind) bool {
	return k == token.KwNot || k == token.Minus || k == token.Hash
}

// parseExpression matches one expression. The tree keeps the source shape
// rather than operator precedence: a binary chain is a value with a
// right-leaning operator tail.
func (p *parser) parseExpression(pos int) (int, ast.Expression, error) {
	if isUnOp(p.kind(pos)) {
		pos, op, _ := p.takeAny(pos)
		pos, operand, err := p.requireExpression(pos, "expected expression after unary operator")
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.UnaryExpr{UnOp: op, Expr: operand}, nil
	}

	next, value, err := p.parseValue(pos)
	if err != nil {
		return pos, nil, err
	}

	expr := &ast.ValueExpr{Value: value}
	pos = next

	if isBinOp(p.kind(pos)) {
		opNext, op, _ := p.takeAny(pos)
		opNext, rhs, err := p.requireExpression(opNext, "expected expression after binary operator")
		if err != nil {
			return pos, nil, err
		}
		expr.BinOp = &ast.BinOpRhs{Op: op, Rhs: rhs}
		pos = opNext
	}

	return pos, expr, nil
}

// requireExpression promotes a NoMatch from parseExpression to a definite
// error for callers that already committed.
func (p *parser) requireExpression(pos int, context string) (int, ast.Expression, error) {
	next, expr, err := p.parseExpression(pos)
	if err != nil {
		if isNoMatch(err) {
			return pos, nil, p.unexpected(pos, context)
		}
		return pos, nil, err
	}
	return next, expr, nil
}

// takeAny consumes whatever token is under the cursor. Callers have already
// inspected its kind.
func (p *parser) takeAny(pos int) (int, *token.Reference, error) {
	ref := p.at(pos)
	if ref.Token.Kind == token.EOF {
		return pos, nil, errNoMatch
	}
	return pos + 1, ref, nil
}

func (p *parser) parseValue(pos int) (int, ast.Value, error) {
	switch p.kind(pos) {
	case token.KwNil, token.KwTrue, token.KwFalse, token.Ellipsis:
		pos, ref, _ := p.takeAny(pos)
		return pos, &ast.Symbol{Token: ref}, nil

	case token.Number:
		pos, ref, _ := p.take(pos, token.Number)
		return pos, &ast.Number{Token: ref}, nil

	case token.StringLit:
		pos, ref, _ := p.take(pos, token.StringLit)
		return pos, &ast.StringLiteral{Token: ref}, nil

	case token.KwFunction:
		pos, fnTok, _ := p.take(pos, token.KwFunction)
		pos, body, err := p.parseFunctionBody(pos)
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.Function{FunctionToken: fnTok, Body: body}, nil

	case token.LBrace:
		return p.parseTableValue(pos)

	case token.Ident, token.LParen:
		next, prefix, suffixes, err := p.parseSuffixedExpr(pos)
		if err != nil {
			return pos, nil, err
		}
		if isCallChain(suffixes) {
			return next, &ast.FunctionCall{Prefix: prefix, Suffixes: suffixes}, nil
		}
		if len(suffixes) > 0 {
			return next, &ast.VarValue{Var: &ast.VarExpression{Prefix: prefix, Suffixes: suffixes}}, nil
		}
		switch pfx := prefix.(type) {
		case *ast.Name:
			return next, &ast.VarValue{Var: pfx}, nil
		case *ast.ParenExpr:
			return next, &ast.ExprValue{Expr: pfx}, nil
		default:
			return next, nil, p.unexpected(pos, "unsupported prefix expression")
		}

	default:
		return pos, nil, errNoMatch
	}
}

func (p *parser) parseTableValue(pos int) (int, ast.Value, error) {
	next, table, err := p.parseTableConstructor(pos)
	if err != nil {
		return pos, nil, err
	}
	return next, table, nil
}

// parseSuffixedExpr matches a prefix (name or parenthesized expression)
// followed by any run of index and call suffixes. Callers classify the
// result by its last suffix.
func (p *parser) parseSuffixedExpr(pos int) (int, ast.Prefix, []ast.Suffix, error) {
	var prefix ast.Prefix

	switch p.kind(pos) {
	case token.Ident:
		next, ref, _ := p.take(pos, token.Ident)
		prefix = &ast.Name{Token: ref}
		pos = next

	case token.LParen:
		next, open, _ := p.take(pos, token.LParen)
		next, inner, err := p.requireExpression(next, "expected expression after '('")
		if err != nil {
			return pos, nil, nil, err
		}
		next, closeTok, err := p.require(next, token.RParen, "expected ')' to close expression")
		if err != nil {
			return pos, nil, nil, err
		}
		prefix = &ast.ParenExpr{Parens: ast.ContainedSpan{Open: open, Close: closeTok}, Expr: inner}
		pos = next

	default:
		return pos, nil, nil, errNoMatch
	}

	var suffixes []ast.Suffix
	for {
		next, suffix, err := p.parseSuffix(pos)
		if err != nil {
			if isNoMatch(err) {
				return pos, prefix, suffixes, nil
			}
			return pos, nil, nil, err
		}
		suffixes = append(suffixes, suffix)
		pos = next
	}
}

func (p *parser) parseSuffix(pos int) (int, ast.Suffix, error) {
	switch p.kind(pos) {
	case token.Dot:
		pos, dot, _ := p.take(pos, token.Dot)
		pos, name, err := p.require(pos, token.Ident, "expected name after '.'")
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.DotIndex{Dot: dot, Name: name}, nil

	case token.LBracket:
		pos, open, _ := p.take(pos, token.LBracket)
		pos, expr, err := p.requireExpression(pos, "expected expression after '['")
		if err != nil {
			return pos, nil, err
		}
		pos, closeTok, err := p.require(pos, token.RBracket, "expected ']' to close index")
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.BracketIndex{Brackets: ast.ContainedSpan{Open: open, Close: closeTok}, Expr: expr}, nil

	case token.Colon:
		pos, colon, _ := p.take(pos, token.Colon)
		pos, name, err := p.require(pos, token.Ident, "expected method name after ':'")
		if err != nil {
			return pos, nil, err
		}
		pos, args, err := p.parseFunctionArgs(pos)
		if err != nil {
			if isNoMatch(err) {
				return pos, nil, p.unexpected(pos, "expected arguments after method name")
			}
			return pos, nil, err
		}
		return pos, &ast.MethodCall{Colon: colon, Name: name, Args: args}, nil

	case token.LParen, token.StringLit, token.LBrace:
		pos, args, err := p.parseFunctionArgs(pos)
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.AnonymousCall{Args: args}, nil

	default:
		return pos, nil, errNoMatch
	}
}

func (p *parser) parseFunctionArgs(pos int) (int, ast.FunctionArgs, error) {
	switch p.kind(pos) {
	case token.LParen:
		pos, open, _ := p.take(pos, token.LParen)
		pos, args, err := delimited(p, p.parseExpression, p.takeOne(token.Comma), false, pos)
		if err != nil {
			return pos, nil, err
		}
		pos, closeTok, err := p.require(pos, token.RParen, "expected ')' to close arguments")
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.ParenArgs{Parens: ast.ContainedSpan{Open: open, Close: closeTok}, Args: args}, nil

	case token.StringLit:
		pos, ref, _ := p.take(pos, token.StringLit)
		return pos, &ast.StringArgs{Token: ref}, nil

	case token.LBrace:
		pos, table, err := p.parseTableConstructor(pos)
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.TableArgs{Table: table}, nil

	default:
		return pos, nil, errNoMatch
	}
}

// parseTableConstructor matches '{ field [sep field]* [sep] }' where sep is
// ',' or ';' and a trailing separator is allowed.
func (p *parser) parseTableConstructor(pos int) (int, *ast.TableConstructor, error) {
	pos, open, err := p.take(pos, token.LBrace)
	if err != nil {
		return pos, nil, err
	}

	pos, fields, err := delimited(p, p.parseField, p.takeOne(token.Comma, token.Semicolon), true, pos)
	if err != nil {
		return pos, nil, err
	}

	pos, closeTok, err := p.require(pos, token.RBrace, "expected '}' to close table constructor")
	if err != nil {
		return pos, nil, err
	}

	return pos, &ast.TableConstructor{
		Braces: ast.ContainedSpan{Open: open, Close: closeTok},
		Fields: fields,
	}, nil
}

func (p *parser) parseField(pos int) (int, ast.Field, error) {
	switch p.kind(pos) {
	case token.LBracket:
		pos, open, _ := p.take(pos, token.LBracket)
		pos, key, err := p.requireExpression(pos, "expected key expression after '['")
		if err != nil {
			return pos, nil, err
		}
		pos, closeTok, err := p.require(pos, token.RBracket, "expected ']' to close field key")
		if err != nil {
			return pos, nil, err
		}
		pos, equal, err := p.require(pos, token.Assign, "expected '=' after field key")
		if err != nil {
			return pos, nil, err
		}
		pos, value, err := p.requireExpression(pos, "expected field value after '='")
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.ExpressionKeyField{
			Brackets: ast.ContainedSpan{Open: open, Close: closeTok},
			Key:      key, Equal: equal, Value: value,
		}, nil

	case token.Ident:
		// 'name = value' only when '=' follows; a bare name is a positional
		// field holding a plain expression.
		if p.kind(pos+1) == token.Assign {
			pos, key, _ := p.take(pos, token.Ident)
			pos, equal, _ := p.take(pos, token.Assign)
			pos, value, err := p.requireExpression(pos, "expected field value after '='")
			if err != nil {
				return pos, nil, err
			}
			return pos, &ast.NameKeyField{Key: key, Equal: equal, Value: value}, nil
		}
		fallthrough

	default:
		next, value, err := p.parseExpression(pos)
		if err != nil {
			return pos, nil, err
		}
		return next, &ast.NoKeyField{Value: value}, nil
	}
}

// parseFunctionBody matches '(parameters) [: T] block end'. Parameters are
// names or a final '...'; in the extended dialect each name may carry a
// ': T' annotation and the list a return annotation.
func (p *parser) parseFunctionBody(pos int) (int, *ast.FunctionBody, error) {
	pos, open, err := p.require(pos, token.LParen, "expected '(' to open parameter list")
	if err != nil {
		return pos, nil, err
	}

	body := &ast.FunctionBody{}
	sawEllipsis := false

	parseParam := func(pos int) (int, *token.Reference, error) {
		if sawEllipsis {
			return pos, nil, p.unexpected(pos, "'...' must be the last parameter")
		}
		if next, ref, err := p.take(pos, token.Ellipsis); err == nil {
			sawEllipsis = true
			body.ParameterTypes = append(body.ParameterTypes, nil)
			return next, ref, nil
		}
		next, ref, err := p.take(pos, token.Ident)
		if err != nil {
			return pos, nil, err
		}
		var spec *ast.TypeSpecifier
		if p.extended() && p.kind(next) == token.Colon {
			next, spec, err = p.parseTypeSpecifier(next)
			if err != nil {
				return pos, nil, err
			}
		}
		body.ParameterTypes = append(body.ParameterTypes, spec)
		return next, ref, nil
	}

	pos, params, err := delimited(p, parseParam, p.takeOne(token.Comma), false, pos)
	if err != nil {
		return pos, nil, err
	}
	body.Parameters = params

	pos, closeTok, err := p.require(pos, token.RParen, "expected ')' to close parameter list")
	if err != nil {
		return pos, nil, err
	}
	body.Parens = ast.ContainedSpan{Open: open, Close: closeTok}

	if p.extended() && p.kind(pos) == token.Colon {
		next, spec, err := p.parseTypeSpecifier(pos)
		if err != nil {
			return pos, nil, err
		}
		body.ReturnType = spec
		pos = next
	}

	pos, block, err := p.parseBlock(pos)
	if err != nil {
		return pos, nil, err
	}
	body.Block = block

	pos, endTok, err := p.require(pos, token.KwEnd, "expected 'end' to close function body")
	if err != nil {
		return pos, nil, err
	}
	body.EndToken = endTok

	return pos, body, nil
}
