package parser

import (
	"lunar/internal/ast"
	"lunar/internal/token"
)

// Extended-dialect type grammar. Everything here is only reached behind
// p.extended(): the base dialect never sees these productions, and 'type'
// stays an ordinary identifier for it.

// parseTypeDeclaration matches 'type Name = T'. The caller has already seen
// 'type' followed by a name, so the production is committed.
func (p *parser) parseTypeDeclaration(pos int) (int, ast.Stmt, error) {
	pos, typeTok, _ := p.take(pos, token.Ident)
	pos, name, _ := p.take(pos, token.Ident)
	pos, equal, err := p.require(pos, token.Assign, "expected '=' in type declaration")
	if err != nil {
		return pos, nil, err
	}
	pos, id, err := p.parseTypeInfo(pos)
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.TypeDeclaration{
		TypeToken: typeTok, Name: name, Equal: equal,
		Type: id, Types: p.types,
	}, nil
}

// parseTypeSpecifier matches ': T'.
func (p *parser) parseTypeSpecifier(pos int) (int, *ast.TypeSpecifier, error) {
	pos, colon, err := p.take(pos, token.Colon)
	if err != nil {
		return pos, nil, err
	}
	pos, id, err := p.parseTypeInfo(pos)
	if err != nil {
		return pos, nil, err
	}
	return pos, &ast.TypeSpecifier{Colon: colon, Type: id, Types: p.types}, nil
}

// parseTypeInfo allocates one type node in the arena and returns its id.
func (p *parser) parseTypeInfo(pos int) (int, ast.TypeID, error) {
	switch p.kind(pos) {
	case token.Ident:
		pos, base, _ := p.take(pos, token.Ident)

		if next, dot, err := p.take(pos, token.Dot); err == nil {
			next, index, err := p.require(next, token.Ident, "expected name after '.' in type")
			if err != nil {
				return pos, 0, err
			}
			return next, p.types.Allocate(ast.TypeInfo{
				Kind: ast.TypeModule, Base: base, Dot: dot, Index: index,
			}), nil
		}

		if next, lt, err := p.take(pos, token.Lt); err == nil {
			next, params, err := delimited(p, p.parseTypeInfo, p.takeOne(token.Comma), false, next)
			if err != nil {
				return pos, 0, err
			}
			if params.Len() == 0 {
				return pos, 0, p.unexpected(next, "expected type parameter after '<'")
			}
			next, gt, err := p.require(next, token.Gt, "expected '>' to close type parameters")
			if err != nil {
				return pos, 0, err
			}
			return next, p.types.Allocate(ast.TypeInfo{
				Kind: ast.TypeGeneric, Base: base,
				LtToken: lt, Params: params, GtToken: gt,
			}), nil
		}

		return pos, p.types.Allocate(ast.TypeInfo{Kind: ast.TypeBasic, Base: base}), nil

	case token.LBrace:
		pos, open, _ := p.take(pos, token.LBrace)
		pos, fields, err := delimited(p, p.parseTypeField, p.takeOne(token.Comma), true, pos)
		if err != nil {
			return pos, 0, err
		}
		pos, closeTok, err := p.require(pos, token.RBrace, "expected '}' to close table type")
		if err != nil {
			return pos, 0, err
		}
		return pos, p.types.Allocate(ast.TypeInfo{
			Kind:   ast.TypeTable,
			Braces: ast.ContainedSpan{Open: open, Close: closeTok},
			Fields: fields,
		}), nil

	default:
		return pos, 0, p.unexpected(pos, "expected type")
	}
}

func (p *parser) parseTypeField(pos int) (int, ast.TypeField, error) {
	next, name, err := p.take(pos, token.Ident)
	if err != nil {
		return pos, ast.TypeField{}, err
	}
	next, colon, err := p.require(next, token.Colon, "expected ':' after field name in table type")
	if err != nil {
		return pos, ast.TypeField{}, err
	}
	next, id, err := p.parseTypeInfo(next)
	if err != nil {
		return pos, ast.TypeField{}, err
	}
	return next, ast.TypeField{Name: name, Colon: colon, Type: id}, nil
}

// parseAnnotatedNames matches the name list of a local assignment, each name
// optionally annotated ': T' in the extended dialect. The specifier slice
// mirrors the name list with nil entries for unannotated names.
func (p *parser) parseAnnotatedNames(pos int) (int, ast.Punctuated[*token.Reference], []*ast.TypeSpecifier, error) {
	var specs []*ast.TypeSpecifier

	parseName := func(pos int) (int, *token.Reference, error) {
		next, name, err := p.take(pos, token.Ident)
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
		specs = append(specs, spec)
		return next, name, nil
	}

	pos, names, err := delimited(p, parseName, p.takeOne(token.Comma), false, pos)
	if err != nil {
		return pos, names, nil, err
	}
	return pos, names, specs, nil
}
