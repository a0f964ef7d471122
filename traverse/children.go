package traverse

import (
	"github.com/signadot/jsdoctype/ast"
)

// Child is a child node and the field of its parent holding it.
type Child struct {
	Field string
	Node  ast.Node
}

type children []Child

func (cs children) one(field string, n ast.Node) children {
	if n == nil {
		return cs
	}
	return append(cs, Child{Field: field, Node: n})
}

func (cs children) list(field string, ns []ast.Node) children {
	for _, n := range ns {
		cs = append(cs, Child{Field: field, Node: n})
	}
	return cs
}

// Children returns the children of node in visiting order.  Absent
// optional children are left out.
func Children(node ast.Node) []Child {
	var cs children
	switch x := node.(type) {
	case *ast.Name, *ast.Any, *ast.Unknown, *ast.FilePath, *ast.StringValue, *ast.NumberValue:
	case *ast.Member:
		cs = cs.one("owner", x.Owner)
	case *ast.InnerMember:
		cs = cs.one("owner", x.Owner)
	case *ast.InstanceMember:
		cs = cs.one("owner", x.Owner)
	case *ast.Union:
		cs = cs.one("left", x.Left).one("right", x.Right)
	case *ast.Intersection:
		cs = cs.one("left", x.Left).one("right", x.Right)
	case *ast.Variadic:
		cs = cs.one("value", x.Value)
	case *ast.Optional:
		cs = cs.one("value", x.Value)
	case *ast.Nullable:
		cs = cs.one("value", x.Value)
	case *ast.NotNullable:
		cs = cs.one("value", x.Value)
	case *ast.External:
		cs = cs.one("value", x.Value)
	case *ast.Module:
		cs = cs.one("value", x.Value)
	case *ast.Parenthesis:
		cs = cs.one("value", x.Value)
	case *ast.KeyQuery:
		cs = cs.one("value", x.Value)
	case *ast.Record:
		for _, e := range x.Entries {
			if e == nil {
				panic(&ast.ConsistencyError{Node: node, Reason: "nil record entry"})
			}
			cs = append(cs, Child{Field: "entries", Node: e})
		}
	case *ast.RecordEntry:
		cs = cs.one("value", x.Value)
	case *ast.Tuple:
		cs = cs.list("entries", x.Entries)
	case *ast.Generic:
		cs = cs.one("subject", x.Subject).list("objects", x.Objects)
	case *ast.Function:
		cs = cs.list("params", x.Params).one("returns", x.Returns).one("this", x.This).one("new", x.New)
	case *ast.Arrow:
		cs = cs.list("params", x.Params).one("returns", x.Returns)
	case *ast.NamedParameter:
		cs = cs.one("typeName", x.TypeName)
	case *ast.TypeQuery:
		cs = cs.one("name", x.Name)
	case *ast.Import:
		if x.Path != nil {
			cs = append(cs, Child{Field: "path", Node: x.Path})
		}
	default:
		panic(&ast.ConsistencyError{Node: node, Reason: "no child table"})
	}
	return cs
}
