package rewrite

import (
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/traverse"
)

// required lists the children a node cannot do without.  A patch may
// remove any field from the JSON form, which decodes as an absent child.
func required(n ast.Node) map[string]ast.Node {
	switch x := n.(type) {
	case *ast.Member:
		return map[string]ast.Node{"owner": x.Owner}
	case *ast.InnerMember:
		return map[string]ast.Node{"owner": x.Owner}
	case *ast.InstanceMember:
		return map[string]ast.Node{"owner": x.Owner}
	case *ast.Union:
		return map[string]ast.Node{"left": x.Left, "right": x.Right}
	case *ast.Intersection:
		return map[string]ast.Node{"left": x.Left, "right": x.Right}
	case *ast.Optional:
		return map[string]ast.Node{"value": x.Value}
	case *ast.Nullable:
		return map[string]ast.Node{"value": x.Value}
	case *ast.NotNullable:
		return map[string]ast.Node{"value": x.Value}
	case *ast.Module:
		return map[string]ast.Node{"value": x.Value}
	case *ast.External:
		return map[string]ast.Node{"value": x.Value}
	case *ast.Parenthesis:
		return map[string]ast.Node{"value": x.Value}
	case *ast.KeyQuery:
		return map[string]ast.Node{"value": x.Value}
	case *ast.TypeQuery:
		return map[string]ast.Node{"name": x.Name}
	case *ast.Generic:
		return map[string]ast.Node{"subject": x.Subject}
	case *ast.Import:
		if x.Path == nil {
			return map[string]ast.Node{"path": nil}
		}
	}
	return nil
}

// Check reports the first node of the tree missing a required child.
func Check(node ast.Node) error {
	if node == nil {
		return &ast.ConsistencyError{Reason: "nil tree"}
	}
	return traverse.Traverse(node, func(n ast.Node, _ string, _ ast.Type) error {
		for field, c := range required(n) {
			if c == nil {
				return &ast.ConsistencyError{Node: n, Reason: "missing " + field}
			}
		}
		return nil
	}, nil)
}
