package parse

import (
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/mode"
	"github.com/signadot/jsdoctype/token"
)

// record parses `{a: T, 'b'?: U; readonly c}`.  Entries are separated
// by `,` or `;` and may end with a trailing separator.
func (p *parser) record() (ast.Node, error) {
	start := p.i
	p.i++
	p.ws()
	rec := &ast.Record{}
	if p.accept("}") {
		return rec, nil
	}
	for {
		e, err := p.recordEntry()
		if err != nil {
			return nil, err
		}
		if e == nil {
			p.i = start
			return nil, nil
		}
		rec.Entries = append(rec.Entries, e)
		p.ws()
		if p.accept(",") || p.accept(";") {
			p.ws()
			if p.accept("}") {
				return rec, nil
			}
			continue
		}
		p.expect(`","`)
		p.expect(`";"`)
		if p.lit("}") {
			return rec, nil
		}
		p.i = start
		return nil, nil
	}
}

func keyStart(c byte) bool {
	return c == '"' || c == '\'' || (c >= '0' && c <= '9') || token.Ident([]byte{c}) == 1
}

func (p *parser) recordKey() (string, ast.QuoteStyle, bool, error) {
	switch c := p.peek(); {
	case c == '"' || c == '\'':
		return p.quoted()
	case c >= '0' && c <= '9':
		n := token.Number(p.rest())
		k := string(p.d[p.i : p.i+n])
		p.i += n
		return k, ast.NoQuote, true, nil
	}
	k, ok := p.ident()
	return k, ast.NoQuote, ok, nil
}

func (p *parser) recordEntry() (*ast.RecordEntry, error) {
	start := p.i
	e := &ast.RecordEntry{}
	if p.keyword("readonly") {
		n := token.Space(p.rest())
		if n > 0 && p.i+n < len(p.d) && keyStart(p.d[p.i+n]) {
			p.i += n
			e.Readonly = true
		} else {
			p.i = start
		}
	}
	key, q, ok, err := p.recordKey()
	if !ok || err != nil {
		p.i = start
		return nil, err
	}
	e.Key, e.QuoteStyle = key, q
	save := p.i
	p.ws()
	keyOpt := p.mode.Allows(mode.KeyOptional) && p.accept("?")
	if keyOpt {
		p.ws()
	}
	if !p.lit(":") {
		if keyOpt {
			p.i = start
			return nil, nil
		}
		p.i = save
		return e, nil
	}
	p.ws()
	v, err := p.expr()
	if v == nil || err != nil {
		p.i = start
		return nil, err
	}
	if keyOpt {
		v = &ast.Optional{Value: v, Syntax: ast.SuffixKeyQuestionMark}
	}
	e.Value = v
	return e, nil
}

// tuple parses `[A, B, ...C]`.  The suffix form `[A, B...]` is accepted
// too and yields a SUFFIX_DOTS variadic entry.
func (p *parser) tuple() (ast.Node, error) {
	start := p.i
	p.i++
	p.ws()
	tup := &ast.Tuple{}
	if p.accept("]") {
		return tup, nil
	}
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if e == nil {
			p.i = start
			return nil, nil
		}
		tup.Entries = append(tup.Entries, e)
		p.ws()
		if p.accept(",") {
			p.ws()
			continue
		}
		p.expect(`","`)
		if p.lit("]") {
			return tup, nil
		}
		p.i = start
		return nil, nil
	}
}
