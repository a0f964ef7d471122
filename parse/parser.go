package parse

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/mode"
	"github.com/signadot/jsdoctype/token"
)

// parser is a backtracking recursive descent parser over the input bytes.
//
// Rules return (nil, nil) when they do not match, leaving the cursor
// where they found it, and a non-nil error only for input no
// alternative can accept.  The farthest position at which a rule failed
// together with what it expected there becomes the syntax error when the
// whole parse fails.
type parser struct {
	d    []byte
	i    int
	mode mode.Mode
	pd   *token.PosDoc

	failAt   int
	expected []string
}

func newParser(d []byte, m mode.Mode) *parser {
	return &parser{
		d:    d,
		mode: m,
		pd:   token.NewPosDoc(d),
	}
}

func (p *parser) rest() []byte {
	return p.d[p.i:]
}

func (p *parser) eof() bool {
	return p.i >= len(p.d)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.d[p.i]
}

func (p *parser) ws() {
	p.i += token.Space(p.rest())
}

func (p *parser) expect(desc string) {
	switch {
	case p.i > p.failAt:
		p.failAt = p.i
		p.expected = append(p.expected[:0], desc)
	case p.i == p.failAt:
		if !slices.Contains(p.expected, desc) {
			p.expected = append(p.expected, desc)
		}
	}
}

func (p *parser) expectAll(descs ...string) {
	for _, d := range descs {
		p.expect(d)
	}
}

// accept consumes s if it is next, recording nothing otherwise.
func (p *parser) accept(s string) bool {
	if bytes.HasPrefix(p.rest(), []byte(s)) {
		p.i += len(s)
		return true
	}
	return false
}

// lit is accept for tokens the grammar requires at this point.
func (p *parser) lit(s string) bool {
	if p.accept(s) {
		return true
	}
	p.expect(strconv.Quote(s))
	return false
}

func (p *parser) keyword(kw string) bool {
	if token.Keyword(p.rest(), kw) {
		p.i += len(kw)
		return true
	}
	return false
}

func (p *parser) ident() (string, bool) {
	n := token.Ident(p.rest())
	if n == 0 {
		p.expect("name")
		return "", false
	}
	s := string(p.d[p.i : p.i+n])
	p.i += n
	return s, true
}

func quoteStyle(c byte) ast.QuoteStyle {
	if c == '\'' {
		return ast.SingleQuote
	}
	return ast.DoubleQuote
}

// quoted scans a string literal.  An unterminated literal is an error.
func (p *parser) quoted() (string, ast.QuoteStyle, bool, error) {
	c := p.peek()
	if c != '"' && c != '\'' {
		p.expect("string")
		return "", ast.NoQuote, false, nil
	}
	n, s, err := token.Quoted(p.rest())
	if err != nil {
		se := p.errorAt(len(p.d), []string{strconv.Quote(string(c))}, "")
		se.Cause = token.NewTokenizeErr(err, p.pd.Pos(p.i))
		return "", ast.NoQuote, false, se
	}
	p.i += n
	return s, quoteStyle(c), true, nil
}

func (p *parser) found(at int) string {
	if at >= len(p.d) {
		return "end of input"
	}
	r, _ := utf8.DecodeRune(p.d[at:])
	return "'" + string(r) + "'"
}

// errorAt builds a syntax error at offset at.  An empty msg is replaced
// by the expectation message.
func (p *parser) errorAt(at int, expected []string, msg string) *SyntaxError {
	found := p.found(at)
	if msg == "" {
		msg = expectation(expected, found)
	}
	line, col := p.pd.LineCol(at)
	return &SyntaxError{
		Mode:     p.mode,
		Message:  msg,
		Expected: expected,
		Found:    found,
		Offset:   at,
		Line:     line,
		Column:   col,
	}
}

func (p *parser) errorf(at int, format string, args ...any) *SyntaxError {
	return p.errorAt(at, nil, fmt.Sprintf(format, args...))
}

// failure reports the farthest failure.
func (p *parser) failure() *SyntaxError {
	exp := slices.Clone(p.expected)
	slices.Sort(exp)
	return p.errorAt(p.failAt, exp, "")
}

// complete parses all of the input with rule.
func (p *parser) complete(rule func() (ast.Node, error)) (ast.Node, error) {
	p.ws()
	n, err := rule()
	if err != nil {
		return nil, err
	}
	if n != nil {
		p.ws()
		if p.eof() {
			return n, nil
		}
		p.expect("end of input")
	}
	return nil, p.failure()
}
