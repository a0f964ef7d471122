// Package publish renders type expression trees as text.
//
// Rendering dispatches on the node type through a [Table] of handlers,
// so callers may replace the handling of some node types and keep the
// rest:
//
//	t := publish.DefaultTable()
//	t[ast.NameType] = func(n ast.Node, _ func(ast.Node) string) string {
//		return strings.ToUpper(n.(*ast.Name).Name)
//	}
//	publish.Publish(node, t)
//
// # Canonical form
//
// The canonical table normalizes surface syntax: optional types render
// as `T=`, nullability as a prefix, strings in double quotes, unions
// with `|` and `Array` bracket generics as `T[]`.  Parentheses are
// added where a tree built by hand would otherwise not read back the
// same.  For any tree produced by parsing,
//
//	String(parse(String(n))) == String(n)
//
// [ExpandArrayShorthand] renders bracket generics as `Array<T>`
// instead, and [ColorTable] adds terminal colors.
package publish
