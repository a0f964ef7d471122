package parse

import (
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/mode"
	"github.com/signadot/jsdoctype/token"
)

func numberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

func (p *parser) primary() (ast.Node, error) {
	p.expectAll(`"("`, `"*"`, `"?"`, `"{"`, "number", "string")
	if p.mode.Allows(mode.Tuple) {
		p.expect(`"["`)
	}
	switch c := p.peek(); {
	case c == '(':
		if p.mode.Allows(mode.Arrow) {
			n, err := p.arrow(false)
			if n != nil || err != nil {
				return n, err
			}
		}
		n, err := p.parenthesis()
		if n == nil || err != nil {
			return nil, err
		}
		return p.members(n)
	case c == '{':
		return p.record()
	case c == '[':
		if !p.mode.Allows(mode.Tuple) {
			return nil, nil
		}
		return p.tuple()
	case c == '"' || c == '\'':
		s, q, ok, err := p.quoted()
		if !ok || err != nil {
			return nil, err
		}
		return &ast.StringValue{String: s, QuoteStyle: q}, nil
	case c == '*':
		p.i++
		return &ast.Any{}, nil
	case c == '?':
		p.i++
		return &ast.Unknown{}, nil
	case numberStart(c):
		n := token.Number(p.rest())
		if n == 0 {
			return nil, nil
		}
		v := string(p.d[p.i : p.i+n])
		p.i += n
		return &ast.NumberValue{Number: v}, nil
	}
	n, err := p.keywordForm()
	if n != nil || err != nil {
		return n, err
	}
	return p.namepath()
}

// keywordForm parses productions introduced by a keyword.  When the
// rest of the production does not follow, the keyword is an ordinary
// name.
func (p *parser) keywordForm() (ast.Node, error) {
	start := p.i
	var (
		n   ast.Node
		err error
	)
	switch {
	case p.keyword("function"):
		p.ws()
		if p.peek() == '(' {
			n, err = p.function(start)
		}
	case p.mode.Allows(mode.Arrow) && p.keyword("new"):
		p.ws()
		if p.peek() == '(' {
			n, err = p.arrow(true)
		}
	case p.mode.Allows(mode.TypeOf) && p.keyword("typeof"):
		p.ws()
		n, err = p.namepath()
		if n != nil {
			n = &ast.TypeQuery{Name: n}
		}
	case p.mode.Allows(mode.KeyOf) && p.keyword("keyof"):
		p.ws()
		n, err = p.postfixed()
		if n != nil {
			n = &ast.KeyQuery{Value: n}
		}
	case p.mode.Allows(mode.Import) && p.keyword("import"):
		n, err = p.importType()
		if n != nil && err == nil {
			n, err = p.members(n)
		}
	case p.mode.Allows(mode.Module) && p.keyword("module"):
		n, err = p.moduleName()
	case p.mode.Allows(mode.External) && p.keyword("external"):
		n, err = p.externalName()
	}
	if err != nil {
		return nil, err
	}
	if n == nil {
		p.i = start
	}
	return n, nil
}

func (p *parser) parenthesis() (ast.Node, error) {
	start := p.i
	p.i++
	p.ws()
	inner, err := p.expr()
	if inner == nil || err != nil {
		p.i = start
		return nil, err
	}
	p.ws()
	if !p.lit(")") {
		p.i = start
		return nil, nil
	}
	return &ast.Parenthesis{Value: inner}, nil
}

func (p *parser) importType() (ast.Node, error) {
	p.ws()
	if !p.lit("(") {
		return nil, nil
	}
	p.ws()
	s, q, ok, err := p.quoted()
	if !ok || err != nil {
		return nil, err
	}
	p.ws()
	if !p.lit(")") {
		return nil, nil
	}
	return &ast.Import{Path: &ast.StringValue{String: s, QuoteStyle: q}}, nil
}
