package publish

import (
	"maps"

	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/debug"
)

// Handler renders node, which has the type it is registered for.  pub
// renders a child with the same table.
type Handler func(node ast.Node, pub func(ast.Node) string) string

type Table map[ast.Type]Handler

var defaultTable = newTable(nil)

// DefaultTable returns a fresh copy of the canonical table.
func DefaultTable() Table {
	return maps.Clone(defaultTable)
}

// ColorTable returns the canonical table rendering with colors c.
func ColorTable(c *Colors) Table {
	return newTable(c)
}

// Publish renders node with table, the canonical table if nil.
//
// Publish panics with *ast.ConsistencyError when table has no handler
// for a node.
func Publish(node ast.Node, table Table) string {
	if table == nil {
		table = defaultTable
	}
	res := publish(node, table)
	if debug.Publish() {
		debug.Logf("publish %v: %q\n", node, res)
	}
	return res
}

// String renders node canonically.
func String(node ast.Node) string {
	return Publish(node, nil)
}

func publish(node ast.Node, table Table) string {
	if node == nil {
		panic(&ast.ConsistencyError{Reason: "publish nil node"})
	}
	h := table[node.Type()]
	if h == nil {
		panic(&ast.ConsistencyError{Node: node, Reason: "no publish handler"})
	}
	return h(node, func(n ast.Node) string {
		return publish(n, table)
	})
}
