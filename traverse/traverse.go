package traverse

import (
	"errors"

	"github.com/signadot/jsdoctype/ast"
)

// Visitor is called with a node, the field of its parent holding it
// and the parent's type.  At the root field is "" and parent is
// ast.NoType.
type Visitor func(node ast.Node, field string, parent ast.Type) error

// SkipChildren may be returned by an enter visitor to leave the
// children of the node unvisited.  The leave visitor is still called.
var SkipChildren = errors.New("skip children")

// Traverse walks node depth first, calling onEnter before and onLeave
// after the children of each node.  Either visitor may be nil.
//
// An error from a visitor other than SkipChildren ends the walk and is
// returned as is.  Traverse panics with *ast.ConsistencyError on nodes
// of unknown type.
func Traverse(node ast.Node, onEnter, onLeave Visitor) error {
	return visit(node, "", ast.NoType, onEnter, onLeave)
}

func visit(node ast.Node, field string, parent ast.Type, onEnter, onLeave Visitor) error {
	if node == nil {
		panic(&ast.ConsistencyError{Type: parent, Reason: "nil child " + field})
	}
	dive := true
	if onEnter != nil {
		if err := onEnter(node, field, parent); err != nil {
			if !errors.Is(err, SkipChildren) {
				return err
			}
			dive = false
		}
	}
	if dive {
		t := node.Type()
		for _, c := range Children(node) {
			if err := visit(c.Node, c.Field, t, onEnter, onLeave); err != nil {
				return err
			}
		}
	}
	if onLeave != nil {
		return onLeave(node, field, parent)
	}
	return nil
}
