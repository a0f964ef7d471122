// Package query selects nodes of type expression trees with expr-lang
// boolean expressions.
//
//	q, _ := query.Compile(`kind == "NAME" && parent == "GENERIC" && field == "objects"`)
//	ms, _ := q.Find(node)
//
// The path of a node is built from the fields leading to it, with an
// element index after list fields, as in `/left/objects/1`.  The root
// has the empty path.
package query
