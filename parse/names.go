package parse

import (
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/token"
)

func (p *parser) namepath() (ast.Node, error) {
	name, ok := p.ident()
	if !ok {
		return nil, nil
	}
	return p.members(&ast.Name{Name: name})
}

// members parses a left associative chain of `.`, `~` and `#` accesses
// on owner.
func (p *parser) members(owner ast.Node) (ast.Node, error) {
	for {
		save := p.i
		p.ws()
		var t ast.Type
		switch p.peek() {
		case '.':
			t = ast.MemberType
		case '~':
			t = ast.InnerMemberType
		case '#':
			t = ast.InstanceMemberType
		default:
			p.expectAll(`"."`, `"~"`, `"#"`)
			p.i = save
			return owner, nil
		}
		p.i++
		p.ws()
		event := p.accept("event:")
		name, q, ok, err := p.memberName()
		if err != nil {
			return nil, err
		}
		if !ok {
			p.i = save
			return owner, nil
		}
		owner = ast.NewMember(t, owner, name, q, event)
	}
}

func (p *parser) memberName() (string, ast.QuoteStyle, bool, error) {
	switch p.peek() {
	case '"', '\'':
		return p.quoted()
	}
	name, ok := p.ident()
	return name, ast.NoQuote, ok, nil
}

// moduleName parses the remainder of `module:path`, the path being
// followed by an optional member chain.
func (p *parser) moduleName() (ast.Node, error) {
	p.ws()
	if !p.lit(":") {
		return nil, nil
	}
	p.ws()
	var path *ast.FilePath
	switch p.peek() {
	case '"', '\'':
		s, q, ok, err := p.quoted()
		if !ok || err != nil {
			return nil, err
		}
		path = &ast.FilePath{Path: s, QuoteStyle: q}
	default:
		n := token.FilePath(p.rest())
		if n == 0 {
			p.expect("module path")
			return nil, nil
		}
		path = &ast.FilePath{Path: string(p.d[p.i : p.i+n])}
		p.i += n
	}
	v, err := p.members(path)
	if err != nil {
		return nil, err
	}
	return &ast.Module{Value: v}, nil
}

// externalName parses the remainder of `external:name`.  A quoted name
// records its quote style on the external node.
func (p *parser) externalName() (ast.Node, error) {
	p.ws()
	if !p.lit(":") {
		return nil, nil
	}
	p.ws()
	var (
		root ast.Node
		q    ast.QuoteStyle
	)
	switch p.peek() {
	case '"', '\'':
		s, qs, ok, err := p.quoted()
		if !ok || err != nil {
			return nil, err
		}
		root, q = &ast.Name{Name: s}, qs
	default:
		name, ok := p.ident()
		if !ok {
			return nil, nil
		}
		root = &ast.Name{Name: name}
	}
	v, err := p.members(root)
	if err != nil {
		return nil, err
	}
	return &ast.External{Value: v, QuoteStyle: q}, nil
}
