package parser

import (
	"lunar/internal/ast"
	"lunar/internal/token"
)

// parseBlock matches zero or more statements plus an optional terminating
// return/break. It never fails NoMatch itself; an empty block is a valid
// match, and the caller decides whether the stopping token is acceptable.
func (p *parser) parseBlock(pos int) (int, *ast.Block, error) {
	pos, stmts, err := zeroOrMore(p.parseStmtPair, pos)
	if err != nil {
		return pos, nil, err
	}

	block := &ast.Block{Stmts: stmts}

	next, last, err := p.parseLastStmt(pos)
	if err == nil {
		pair := ast.LastStmtPair{Stmt: last}
		if semiNext, semi, err := p.take(next, token.Semicolon); err == nil {
			pair.Semicolon = semi
			next = semiNext
		}
		block.LastStmt = &pair
		pos = next
	} else if !isNoMatch(err) {
		return pos, nil, err
	}

	return pos, block, nil
}

func (p *parser) parseStmtPair(pos int) (int, ast.StmtPair, error) {
	next, stmt, err := p.parseStmt(pos)
	if err != nil {
		return pos, ast.StmtPair{}, err
	}
	pair := ast.StmtPair{Stmt: stmt}
	if semiNext, semi, err := p.take(next, token.Semicolon); err == nil {
		pair.Semicolon = semi
		next = semiNext
	}
	return next, pair, nil
}

// parseStmt dispatches on the leading token. Keyword statements commit
// immediately: once 'while' is consumed, a missing 'do' is a definite error,
// not a reason to try other alternatives.
func (p *parser) parseStmt(pos int) (int, ast.Stmt, error) {
	switch p.kind(pos) {
	case token.KwLocal:
		if p.kind(pos+1) == token.KwFunction {
			return p.parseLocalFunction(pos)
		}
		return p.parseLocalAssignment(pos)
	case token.KwDo:
		return p.parseDo(pos)
	case token.KwWhile:
		return p.parseWhile(pos)
	case token.KwRepeat:
		return p.parseRepeat(pos)
	case token.KwIf:
		return p.parseIf(pos)
	case token.KwFor:
		return p.parseFor(pos)
	case token.KwFunction:
		return p.parseFunctionDeclaration(pos)
	case token.Ident:
		if p.extended() && p.at(pos).Token.Text == "type" && p.kind(pos+1) == token.Ident {
			return p.parseTypeDeclaration(pos)
		}
		return p.parseExpressionStmt(pos)
	case token.LParen:
		return p.parseExpressionStmt(pos)
	default:
		return pos, nil, errNoMatch
	}
}

func (p *parser) parseLastStmt(pos int) (int, ast.LastStmt, error) {
	switch p.kind(pos) {
	case token.KwReturn:
		pos, tok, _ := p.take(pos, token.KwReturn)
		pos, returns, err := delimited(p, p.parseExpression, p.takeOne(token.Comma), false, pos)
		if err != nil {
			return pos, nil, err
		}
		return pos, &ast.Return{Token: tok, Returns: returns}, nil
	case token.KwBreak:
		pos, tok, _ := p.take(pos, token.KwBreak)
		return pos, &ast.Break{Token: tok}, nil
	default:
		return pos, nil, errNoMatch
	}
}

func (p *parser) parseDo(pos int) (int, ast.Stmt, error) {
	pos, doTok, _ := p.take(pos, token.KwDo)
	pos, block, err := p.parseBlock(pos)
	if err != nil {
		return pos, nil, err
	}
	pos, endTok, err := p.require(pos, token.KwEnd, "expected 'end' to close 'do' block")
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.Do{DoToken: doTok, Block: block, EndToken: endTok}, nil
}

func (p *parser) parseWhile(pos int) (int, ast.Stmt, error) {
	pos, whileTok, _ := p.take(pos, token.KwWhile)
	pos, cond, err := p.requireExpression(pos, "expected condition after 'while'")
	if err != nil {
		return pos, nil, err
	}
	pos, doTok, err := p.require(pos, token.KwDo, "expected 'do' after while condition")
	if err != nil {
		return pos, nil, err
	}
	pos, block, err := p.parseBlock(pos)
	if err != nil {
		return pos, nil, err
	}
	pos, endTok, err := p.require(pos, token.KwEnd, "expected 'end' to close 'while' loop")
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.While{WhileToken: whileTok, Condition: cond, DoToken: doTok, Block: block, EndToken: endTok}, nil
}

func (p *parser) parseRepeat(pos int) (int, ast.Stmt, error) {
	pos, repeatTok, _ := p.take(pos, token.KwRepeat)
	pos, block, err := p.parseBlock(pos)
	if err != nil {
		return pos, nil, err
	}
	pos, untilTok, err := p.require(pos, token.KwUntil, "expected 'until' to close 'repeat' loop")
	if err != nil {
		return pos, nil, err
	}
	pos, cond, err := p.requireExpression(pos, "expected condition after 'until'")
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.Repeat{RepeatToken: repeatTok, Block: block, UntilToken: untilTok, Until: cond}, nil
}

func (p *parser) parseIf(pos int) (int, ast.Stmt, error) {
	pos, ifTok, _ := p.take(pos, token.KwIf)
	pos, cond, err := p.requireExpression(pos, "expected condition after 'if'")
	if err != nil {
		return pos, nil, err
	}
	pos, thenTok, err := p.require(pos, token.KwThen, "expected 'then' after if condition")
	if err != nil {
		return pos, nil, err
	}
	pos, block, err := p.parseBlock(pos)
	if err != nil {
		return pos, nil, err
	}

	stmt := &ast.If{IfToken: ifTok, Condition: cond, ThenToken: thenTok, Block: block}

	for p.kind(pos) == token.KwElseIf {
		eiPos, eiTok, _ := p.take(pos, token.KwElseIf)
		eiPos, eiCond, err := p.requireExpression(eiPos, "expected condition after 'elseif'")
		if err != nil {
			return pos, nil, err
		}
		eiPos, eiThen, err := p.require(eiPos, token.KwThen, "expected 'then' after elseif condition")
		if err != nil {
			return pos, nil, err
		}
		eiPos, eiBlock, err := p.parseBlock(eiPos)
		if err != nil {
			return pos, nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, &ast.ElseIf{
			ElseIfToken: eiTok, Condition: eiCond, ThenToken: eiThen, Block: eiBlock,
		})
		pos = eiPos
	}

	if next, elseTok, err := p.take(pos, token.KwElse); err == nil {
		next, elseBlock, err := p.parseBlock(next)
		if err != nil {
			return pos, nil, err
		}
		stmt.ElseToken = elseTok
		stmt.ElseBlock = elseBlock
		pos = next
	}

	pos, endTok, err := p.require(pos, token.KwEnd, "expected 'end' to close 'if' statement")
	if err != nil {
		return pos, nil, err
	}
	stmt.EndToken = endTok
	return pos, stmt, nil
}

// parseFor disambiguates the numeric and generic forms by the token after
// the first name: '=' commits to numeric, ',' or 'in' to generic.
func (p *parser) parseFor(pos int) (int, ast.Stmt, error) {
	forPos, forTok, _ := p.take(pos, token.KwFor)

	if p.kind(forPos) == token.Ident && p.kind(forPos+1) == token.Assign {
		return p.parseNumericFor(forPos, forTok)
	}
	return p.parseGenericFor(forPos, forTok)
}

func (p *parser) parseNumericFor(pos int, forTok *token.Reference) (int, ast.Stmt, error) {
	pos, name, _ := p.take(pos, token.Ident)
	pos, equal, _ := p.take(pos, token.Assign)
	pos, start, err := p.requireExpression(pos, "expected start expression in numeric for")
	if err != nil {
		return pos, nil, err
	}
	pos, comma1, err := p.require(pos, token.Comma, "expected ',' after start expression")
	if err != nil {
		return pos, nil, err
	}
	pos, endExpr, err := p.requireExpression(pos, "expected end expression in numeric for")
	if err != nil {
		return pos, nil, err
	}

	stmt := &ast.NumericFor{
		ForToken: forTok, IndexVariable: name, Equal: equal,
		Start: start, StartEndComma: comma1, End: endExpr,
	}

	if next, comma2, err := p.take(pos, token.Comma); err == nil {
		next, step, err := p.requireExpression(next, "expected step expression after ','")
		if err != nil {
			return pos, nil, err
		}
		stmt.EndStepComma = comma2
		stmt.Step = step
		pos = next
	}

	pos, doTok, err := p.require(pos, token.KwDo, "expected 'do' in numeric for")
	if err != nil {
		return pos, nil, err
	}
	pos, block, err := p.parseBlock(pos)
	if err != nil {
		return pos, nil, err
	}
	pos, endTok, err := p.require(pos, token.KwEnd, "expected 'end' to close 'for' loop")
	if err != nil {
		return pos, nil, err
	}
	stmt.DoToken = doTok
	stmt.Block = block
	stmt.EndToken = endTok
	return pos, stmt, nil
}

func (p *parser) parseGenericFor(pos int, forTok *token.Reference) (int, ast.Stmt, error) {
	pos, names, err := delimited(p, p.parseNameRef, p.takeOne(token.Comma), false, pos)
	if err != nil {
		return pos, nil, err
	}
	if names.Len() == 0 {
		return pos, nil, p.unexpected(pos, "expected name after 'for'")
	}
	pos, inTok, err := p.require(pos, token.KwIn, "expected 'in' after for names")
	if err != nil {
		return pos, nil, err
	}
	pos, exprs, err := delimited(p, p.parseExpression, p.takeOne(token.Comma), false, pos)
	if err != nil {
		return pos, nil, err
	}
	if exprs.Len() == 0 {
		return pos, nil, p.unexpected(pos, "expected expression after 'in'")
	}
	pos, doTok, err := p.require(pos, token.KwDo, "expected 'do' in generic for")
	if err != nil {
		return pos, nil, err
	}
	pos, block, err := p.parseBlock(pos)
	if err != nil {
		return pos, nil, err
	}
	pos, endTok, err := p.require(pos, token.KwEnd, "expected 'end' to close 'for' loop")
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.GenericFor{
		ForToken: forTok, Names: names, InToken: inTok, ExprList: exprs,
		DoToken: doTok, Block: block, EndToken: endTok,
	}, nil
}

func (p *parser) parseNameRef(pos int) (int, *token.Reference, error) {
	return p.take(pos, token.Ident)
}

func (p *parser) parseFunctionDeclaration(pos int) (int, ast.Stmt, error) {
	pos, fnTok, _ := p.take(pos, token.KwFunction)

	pos, names, err := delimited(p, p.parseNameRef, p.takeOne(token.Dot), false, pos)
	if err != nil {
		return pos, nil, err
	}
	if names.Len() == 0 {
		return pos, nil, p.unexpected(pos, "expected function name")
	}

	name := &ast.FunctionName{Names: names}
	if next, colon, err := p.take(pos, token.Colon); err == nil {
		next, method, err := p.require(next, token.Ident, "expected method name after ':'")
		if err != nil {
			return pos, nil, err
		}
		name.Colon = colon
		name.MethodName = method
		pos = next
	}

	pos, body, err := p.parseFunctionBody(pos)
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.FunctionDeclaration{FunctionToken: fnTok, Name: name, Body: body}, nil
}

func (p *parser) parseLocalFunction(pos int) (int, ast.Stmt, error) {
	pos, localTok, _ := p.take(pos, token.KwLocal)
	pos, fnTok, _ := p.take(pos, token.KwFunction)
	pos, name, err := p.require(pos, token.Ident, "expected name after 'local function'")
	if err != nil {
		return pos, nil, err
	}
	pos, body, err := p.parseFunctionBody(pos)
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.LocalFunction{LocalToken: localTok, FunctionToken: fnTok, Name: name, Body: body}, nil
}

func (p *parser) parseLocalAssignment(pos int) (int, ast.Stmt, error) {
	pos, localTok, _ := p.take(pos, token.KwLocal)

	stmt := &ast.LocalAssignment{LocalToken: localTok}

	pos, names, specs, err := p.parseAnnotatedNames(pos)
	if err != nil {
		return pos, nil, err
	}
	if names.Len() == 0 {
		return pos, nil, p.unexpected(pos, "expected name after 'local'")
	}
	stmt.NameList = names
	if p.extended() {
		stmt.TypeSpecifiers = specs
	}

	if next, equal, err := p.take(pos, token.Assign); err == nil {
		next, exprs, err := delimited(p, p.parseExpression, p.takeOne(token.Comma), false, next)
		if err != nil {
			return pos, nil, err
		}
		if exprs.Len() == 0 {
			return pos, nil, p.unexpected(next, "expected expression after '='")
		}
		stmt.Equal = equal
		stmt.ExprList = exprs
		pos = next
	}

	return pos, stmt, nil
}

// parseExpressionStmt handles the statements that start with an expression
// prefix: function calls and assignments.
func (p *parser) parseExpressionStmt(pos int) (int, ast.Stmt, error) {
	next, prefix, suffixes, err := p.parseSuffixedExpr(pos)
	if err != nil {
		return pos, nil, err
	}

	if isCallChain(suffixes) {
		return next, &ast.FunctionCall{Prefix: prefix, Suffixes: suffixes}, nil
	}

	// Not a call: this must be an assignment, and what we parsed is its
	// first variable.
	firstVar, err := p.asVar(pos, prefix, suffixes)
	if err != nil {
		return pos, nil, err
	}

	var varList ast.Punctuated[ast.Var]
	current := firstVar
	pos = next
	for {
		sepNext, comma, err := p.take(pos, token.Comma)
		if err != nil {
			varList.Push(ast.Pair[ast.Var]{Item: current})
			break
		}
		vNext, nextVar, err := p.parseVar(sepNext)
		if err != nil {
			if isNoMatch(err) {
				return pos, nil, p.unexpected(sepNext, "expected variable after ','")
			}
			return pos, nil, err
		}
		varList.Push(ast.Pair[ast.Var]{Item: current, Sep: comma})
		current = nextVar
		pos = vNext
	}

	pos, equal, err := p.require(pos, token.Assign, "expected '=' after variable list")
	if err != nil {
		return pos, nil, err
	}
	pos, exprs, err := delimited(p, p.parseExpression, p.takeOne(token.Comma), false, pos)
	if err != nil {
		return pos, nil, err
	}
	if exprs.Len() == 0 {
		return pos, nil, p.unexpected(pos, "expected expression after '='")
	}

	return pos, &ast.Assignment{VarList: varList, Equal: equal, ExprList: exprs}, nil
}

func (p *parser) parseVar(pos int) (int, ast.Var, error) {
	next, prefix, suffixes, err := p.parseSuffixedExpr(pos)
	if err != nil {
		return pos, nil, err
	}
	v, err := p.asVar(pos, prefix, suffixes)
	if err != nil {
		return pos, nil, err
	}
	return next, v, nil
}

// asVar reinterprets a parsed suffixed expression as an assignment target.
// A call chain is not assignable; that is a definite error at the statement
// level, not a reason to try other productions.
func (p *parser) asVar(pos int, prefix ast.Prefix, suffixes []ast.Suffix) (ast.Var, error) {
	if isCallChain(suffixes) {
		return nil, p.unexpected(pos, "cannot assign to a function call")
	}
	if len(suffixes) == 0 {
		name, ok := prefix.(*ast.Name)
		if !ok {
			return nil, p.unexpected(pos, "cannot assign to a parenthesized expression")
		}
		return name, nil
	}
	return &ast.VarExpression{Prefix: prefix, Suffixes: suffixes}, nil
}

// isCallChain reports whether the last suffix makes the chain a call.
func isCallChain(suffixes []ast.Suffix) bool {
	if len(suffixes) == 0 {
		return false
	}
	switch suffixes[len(suffixes)-1].(type) {
	case *ast.AnonymousCall, *ast.MethodCall:
		return true
	default:
		return false
	}
}
