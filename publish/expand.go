package publish

import (
	"maps"
	"strings"

	"github.com/signadot/jsdoctype/ast"
)

// ExpandArrayShorthand returns a copy of t, the canonical table if nil,
// which renders `T[]` generics as `Array<T>`.
func ExpandArrayShorthand(t Table) Table {
	if t == nil {
		t = defaultTable
	}
	res := maps.Clone(t)
	next := t[ast.GenericType]
	res[ast.GenericType] = func(n ast.Node, pub func(ast.Node) string) string {
		x := n.(*ast.Generic)
		if x.Syntax != ast.SquareBracket && next != nil {
			return next(n, pub)
		}
		objs := make([]string, len(x.Objects))
		for i, o := range x.Objects {
			objs[i] = pub(o)
		}
		return pub(x.Subject) + "<" + strings.Join(objs, ", ") + ">"
	}
	return res
}
