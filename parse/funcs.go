package parse

import (
	"github.com/signadot/jsdoctype/ast"
)

// contextParam consumes `this:` or `new:`, returning which one.
func (p *parser) contextParam() string {
	save := p.i
	for _, kw := range []string{"this", "new"} {
		if !p.keyword(kw) {
			continue
		}
		p.ws()
		if p.accept(":") {
			return kw
		}
		p.i = save
	}
	return ""
}

// function parses `function(...)[: R]` with the cursor on `(`.  start
// is the offset of the keyword, to which a failed parse rewinds.
func (p *parser) function(start int) (ast.Node, error) {
	fn := &ast.Function{}
	p.i++
	p.ws()
	if !p.accept(")") {
		for idx := 0; ; idx++ {
			at := p.i
			if kw := p.contextParam(); kw != "" {
				if idx > 0 || fn.This != nil || fn.New != nil {
					return nil, p.errorf(at, "Unexpected '%s:': 'this:' and 'new:' are exclusive and must be the first parameter.", kw)
				}
				p.ws()
				ctx, err := p.expr()
				if err != nil {
					return nil, err
				}
				if ctx == nil {
					p.i = start
					return nil, nil
				}
				if kw == "this" {
					fn.This = ctx
				} else {
					fn.New = ctx
				}
			} else {
				param, err := p.expr()
				if err != nil {
					return nil, err
				}
				if param == nil {
					p.i = start
					return nil, nil
				}
				if n := len(fn.Params); n > 0 {
					if variadic(fn.Params[n-1]) {
						return nil, p.errorf(at, "Unexpected parameter after a variadic parameter.")
					}
				}
				fn.Params = append(fn.Params, param)
			}
			p.ws()
			if p.accept(",") {
				p.ws()
				continue
			}
			p.expect(`","`)
			if p.lit(")") {
				break
			}
			p.i = start
			return nil, nil
		}
	}
	save := p.i
	p.ws()
	if !p.accept(":") {
		p.i = save
		return fn, nil
	}
	p.ws()
	ret, err := p.prefixed()
	if err != nil {
		return nil, err
	}
	if ret == nil {
		p.i = start
		return nil, nil
	}
	fn.Returns = ret
	return fn, nil
}

// variadic reports whether a parameter is variadic under any modifiers.
func variadic(n ast.Node) bool {
	for {
		switch x := n.(type) {
		case *ast.Variadic:
			return true
		case *ast.Optional:
			n = x.Value
		case *ast.Nullable:
			n = x.Value
		case *ast.NotNullable:
			n = x.Value
		default:
			return false
		}
	}
}

// arrow parses `(params) => R` with the cursor on `(`.
func (p *parser) arrow(isNew bool) (ast.Node, error) {
	start := p.i
	p.i++
	p.ws()
	var params []ast.Node
	if !p.accept(")") {
		for {
			param, err := p.arrowParam()
			if err != nil {
				return nil, err
			}
			if param == nil {
				p.i = start
				return nil, nil
			}
			params = append(params, param)
			p.ws()
			if p.accept(",") {
				p.ws()
				continue
			}
			p.expect(`","`)
			if p.lit(")") {
				break
			}
			p.i = start
			return nil, nil
		}
	}
	p.ws()
	arrowAt := p.i
	if !p.lit("=>") {
		p.i = start
		return nil, nil
	}
	for i, param := range params[:max(0, len(params)-1)] {
		if variadic(param) {
			return nil, p.errorf(arrowAt, "Variadic parameter %d must be the last parameter.", i+1)
		}
	}
	p.ws()
	ret, err := p.expr()
	if err != nil {
		return nil, err
	}
	if ret == nil {
		p.i = start
		return nil, nil
	}
	return &ast.Arrow{Params: params, Returns: ret, New: isNew}, nil
}

func (p *parser) arrowParam() (ast.Node, error) {
	start := p.i
	variadic := p.accept("...")
	if variadic {
		p.ws()
	}
	name, ok := p.ident()
	if !ok {
		p.i = start
		return nil, nil
	}
	param := &ast.NamedParameter{Name: name}
	save := p.i
	p.ws()
	if p.accept(":") {
		p.ws()
		t, err := p.expr()
		if err != nil {
			return nil, err
		}
		if t == nil {
			p.i = start
			return nil, nil
		}
		param.TypeName = t
	} else {
		p.i = save
	}
	if variadic {
		return &ast.Variadic{Value: param}, nil
	}
	return param, nil
}
