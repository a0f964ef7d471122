package parse

import (
	"github.com/signadot/jsdoctype/ast"
)

type binop byte

func (b binop) join(l, r ast.Node) ast.Node {
	switch b {
	case '&':
		return &ast.Intersection{Left: l, Right: r}
	case '/':
		return &ast.Union{Left: l, Right: r, Syntax: ast.Slash}
	default:
		return &ast.Union{Left: l, Right: r}
	}
}

func (b binop) union() bool {
	return b != '&'
}

func (p *parser) binop() (binop, bool) {
	switch c := p.peek(); c {
	case '|', '/', '&':
		p.i++
		return binop(c), true
	}
	return 0, false
}

// expr parses a union or intersection chain; both are right associative
// and a chain may not mix them.
func (p *parser) expr() (ast.Node, error) {
	first, err := p.operand()
	if first == nil || err != nil {
		return nil, err
	}
	operands := []ast.Node{first}
	var ops []binop
	for {
		save := p.i
		p.ws()
		at := p.i
		op, ok := p.binop()
		if !ok {
			p.expectAll(`"|"`, `"/"`, `"&"`)
			p.i = save
			break
		}
		if len(ops) > 0 && ops[0].union() != op.union() {
			return nil, p.errorf(at, "Mixed '%c' and '%c' require parentheses.", ops[0], op)
		}
		p.ws()
		r, err := p.operand()
		if err != nil {
			return nil, err
		}
		if r == nil {
			p.i = save
			break
		}
		ops = append(ops, op)
		operands = append(operands, r)
	}
	res := operands[len(operands)-1]
	for i := len(ops) - 1; i >= 0; i-- {
		res = ops[i].join(operands[i], res)
	}
	return res, nil
}

// operand parses prefix modifiers, the modified type and then suffix
// modifiers.
func (p *parser) operand() (ast.Node, error) {
	n, err := p.prefixed()
	if n == nil || err != nil {
		return nil, err
	}
	return p.suffixed(n)
}

func nullability(n ast.Node) bool {
	switch n.(type) {
	case *ast.Nullable, *ast.NotNullable:
		return true
	}
	return false
}

func (p *parser) checkNullability(n ast.Node, at int, op byte) error {
	if !nullability(n) {
		return nil
	}
	return p.errorf(at, "Unexpected '%c': nullable and non-nullable modifiers are mutually exclusive.", op)
}

func (p *parser) suffixed(n ast.Node) (ast.Node, error) {
	for {
		save := p.i
		p.ws()
		at := p.i
		switch {
		case p.accept("..."):
			n = &ast.Variadic{Value: n, Syntax: ast.SuffixDots}
		case p.accept("?"):
			if err := p.checkNullability(n, at, '?'); err != nil {
				return nil, err
			}
			n = &ast.Nullable{Value: n, Syntax: ast.SuffixQuestionMark}
		case p.accept("!"):
			if err := p.checkNullability(n, at, '!'); err != nil {
				return nil, err
			}
			n = &ast.NotNullable{Value: n, Syntax: ast.SuffixBang}
		case p.accept("="):
			n = &ast.Optional{Value: n, Syntax: ast.SuffixEqualsSign}
		default:
			p.expectAll(`"..."`, `"?"`, `"!"`, `"="`)
			p.i = save
			return n, nil
		}
	}
}

func (p *parser) prefixed() (ast.Node, error) {
	start := p.i
	switch {
	case p.accept("..."):
		after := p.i
		p.ws()
		inner, err := p.prefixed()
		if err != nil {
			return nil, err
		}
		if inner == nil {
			p.i = after
			return &ast.Variadic{Syntax: ast.OnlyDots}, nil
		}
		return &ast.Variadic{Value: inner}, nil
	case p.accept("?"):
		p.ws()
		inner, err := p.prefixed()
		if err != nil {
			return nil, err
		}
		if inner == nil {
			// a lone `?` is the unknown type
			p.i = start
			return p.postfixed()
		}
		if err := p.checkNullability(inner, start, '?'); err != nil {
			return nil, err
		}
		return &ast.Nullable{Value: inner}, nil
	case p.accept("!"):
		p.ws()
		inner, err := p.prefixed()
		if inner == nil || err != nil {
			p.i = start
			return nil, err
		}
		if err := p.checkNullability(inner, start, '!'); err != nil {
			return nil, err
		}
		return &ast.NotNullable{Value: inner}, nil
	case p.accept("="):
		p.ws()
		inner, err := p.prefixed()
		if inner == nil || err != nil {
			p.i = start
			return nil, err
		}
		return &ast.Optional{Value: inner, Syntax: ast.PrefixEqualsSign}, nil
	}
	return p.postfixed()
}

func genericSubject(n ast.Node) bool {
	switch n.(type) {
	case *ast.Name, *ast.Member, *ast.InnerMember, *ast.InstanceMember, *ast.Module, *ast.External:
		return true
	}
	return false
}

// postfixed parses a primary type followed by generic arguments and
// `[]` suffixes.
func (p *parser) postfixed() (ast.Node, error) {
	n, err := p.primary()
	if n == nil || err != nil {
		return nil, err
	}
	if genericSubject(n) {
		n, err = p.angleGeneric(n)
		if err != nil {
			return nil, err
		}
	}
	return p.brackets(n)
}

func (p *parser) angleGeneric(subject ast.Node) (ast.Node, error) {
	save := p.i
	p.ws()
	syntax := ast.AngleBracket
	if p.accept(".") {
		p.ws()
		syntax = ast.AngleBracketWithDot
	}
	if !p.lit("<") {
		p.i = save
		return subject, nil
	}
	var objects []ast.Node
	for {
		p.ws()
		obj, err := p.expr()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			p.i = save
			return subject, nil
		}
		objects = append(objects, obj)
		p.ws()
		if p.accept(",") {
			continue
		}
		p.expect(`","`)
		if p.lit(">") {
			break
		}
		p.i = save
		return subject, nil
	}
	return &ast.Generic{Subject: subject, Objects: objects, Syntax: syntax}, nil
}

func (p *parser) brackets(n ast.Node) (ast.Node, error) {
	for {
		save := p.i
		p.ws()
		if !p.lit("[") {
			p.i = save
			return n, nil
		}
		p.ws()
		if !p.lit("]") {
			p.i = save
			return n, nil
		}
		n = &ast.Generic{
			Subject: &ast.Name{Name: "Array"},
			Objects: []ast.Node{n},
			Syntax:  ast.SquareBracket,
		}
	}
}
