package parse

import (
	"fmt"
	"slices"

	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/debug"
	"github.com/signadot/jsdoctype/mode"
)

// Parse parses a type expression.  The dialect defaults to
// mode.Permissive and the start rule to TopTypeExpr.
//
// Input the dialect rejects yields a *SyntaxError; bad options yield an
// error wrapping ErrConfig.  Parse keeps no state between calls and is
// safe for concurrent use.
func Parse(input string, opts ...ParseOption) (ast.Node, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !slices.Contains(mode.Modes(), o.mode) {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(o.mode))
	}
	p := newParser([]byte(input), o.mode)
	var rule func() (ast.Node, error)
	switch o.start {
	case TopTypeExpr:
		rule = p.expr
	case NamepathExpr:
		rule = p.namepath
	case BroadNamepathExpr:
		rule = p.broadNamepath
	case ExternalNameExpr:
		rule = p.startKeyword("external", mode.External, p.externalName)
	case ModuleNameExpr:
		rule = p.startKeyword("module", mode.Module, p.moduleName)
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadStartRule, int(o.start))
	}
	n, err := p.complete(rule)
	if debug.Parse() {
		if err != nil {
			debug.Logf("parse %s %q: %v\n", o.mode, input, err)
		} else {
			debug.Logf("parse %s %q: %v\n", o.mode, input, n)
		}
	}
	return n, err
}

// MustParse is Parse for inputs known to be valid.
func MustParse(input string, opts ...ParseOption) ast.Node {
	n, err := Parse(input, opts...)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *parser) startKeyword(kw string, f mode.Feature, rest func() (ast.Node, error)) func() (ast.Node, error) {
	return func() (ast.Node, error) {
		if !p.mode.Allows(f) {
			p.expect(fmt.Sprintf("%q", kw))
			return nil, nil
		}
		start := p.i
		if !p.keyword(kw) {
			p.expect(fmt.Sprintf("%q", kw))
			return nil, nil
		}
		n, err := rest()
		if n == nil {
			p.i = start
		}
		return n, err
	}
}

func (p *parser) broadNamepath() (ast.Node, error) {
	for _, r := range []func() (ast.Node, error){
		p.startKeyword("module", mode.Module, p.moduleName),
		p.startKeyword("external", mode.External, p.externalName),
	} {
		n, err := r()
		if n != nil || err != nil {
			return n, err
		}
	}
	return p.namepath()
}
