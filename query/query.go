package query

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/debug"
	"github.com/signadot/jsdoctype/publish"
	"github.com/signadot/jsdoctype/traverse"
)

var ErrQuery = errors.New("query error")

// Query is a compiled boolean expression over tree nodes.
type Query struct {
	src   string
	prg   *vm.Program
	table publish.Table
}

// Match is a node for which a query held.
type Match struct {
	Node   ast.Node
	Field  string
	Parent ast.Type
	Depth  int
	Path   string
	Text   string
}

type QueryOption func(*Query)

// WithTable sets the table rendering the `text` variable.
func WithTable(t publish.Table) QueryOption {
	return func(q *Query) { q.table = t }
}

// Compile compiles src, an expr-lang boolean expression.  Expressions
// see the variables kind, field, parent, depth, name, key, value, path,
// syntax, quote, text, ancestors and leaf.
func Compile(src string, opts ...QueryOption) (*Query, error) {
	q := &Query{src: src}
	for _, opt := range opts {
		opt(q)
	}
	prg, err := expr.Compile(src, expr.Env(envTemplate()), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrQuery, src, err)
	}
	q.prg = prg
	return q, nil
}

func (q *Query) String() string {
	return q.src
}

func isList(field string) bool {
	switch field {
	case "entries", "objects", "params":
		return true
	}
	return false
}

// Find returns the nodes of node for which q holds, in traversal order.
func (q *Query) Find(node ast.Node) ([]Match, error) {
	var (
		res   []Match
		stack []frame
	)
	onEnter := func(n ast.Node, field string, parent ast.Type) error {
		path := ""
		if len(stack) > 0 {
			top := &stack[len(stack)-1]
			path = top.path + "/" + field
			if isList(field) {
				path += "/" + strconv.Itoa(top.counts[field])
				top.counts[field]++
			}
		}
		env := q.env(n, field, parent, path, stack)
		out, err := expr.Run(q.prg, env)
		if err != nil {
			return fmt.Errorf("%w: %q at %q: %w", ErrQuery, q.src, path, err)
		}
		if ok, _ := out.(bool); ok {
			m := Match{
				Node:   n,
				Field:  field,
				Parent: parent,
				Depth:  len(stack),
				Path:   path,
				Text:   env["text"].(string),
			}
			if debug.Query() {
				debug.Logf("query %q matched %s at %q\n", q.src, m.Text, path)
			}
			res = append(res, m)
		}
		stack = append(stack, frame{node: n, path: path, counts: map[string]int{}})
		return nil
	}
	onLeave := func(ast.Node, string, ast.Type) error {
		stack = stack[:len(stack)-1]
		return nil
	}
	if err := traverse.Traverse(node, onEnter, onLeave); err != nil {
		return nil, err
	}
	return res, nil
}

// Match reports whether q holds for node itself.
func (q *Query) Match(node ast.Node) (bool, error) {
	out, err := expr.Run(q.prg, q.env(node, "", ast.NoType, "", nil))
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrQuery, q.src, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
