// Package ast defines the tree produced by parsing a JSDoc type expression.
//
// # Overview
//
// Every node is a pointer to one of the structs in this package and
// satisfies Node.  The set of node types is closed; Type reports the
// discriminant of a node, and its string form ("NAME", "UNION", ...) is a
// stable public identifier.
//
// Nodes carry no position information and no parent links.  A parent
// exclusively owns its children, and nothing in this module mutates a
// tree after it has been built: transformations build new trees.
//
// # Syntax metadata
//
// Several nodes record which surface syntax produced them, for example
// GenericSyntax distinguishes `Array<T>`, `Array.<T>` and `T[]`.  Syntax
// fields affect how a tree is published but not its meaning, and Equal
// ignores them.  The zero value of every syntax enum is the canonical
// form.
//
// # Optional children
//
// Optional children are nil when absent:
//
//   - Variadic.Value: nil for a bare `...`
//   - RecordEntry.Value: nil for a key-only entry such as `{foo}`
//   - Function.Returns, Function.This, Function.New
//   - NamedParameter.TypeName
//
// # JSON
//
// MarshalJSON and UnmarshalJSON convert trees to and from a JSON form in
// which each node is an object with a "type" field and syntax metadata
// lives under "meta":
//
//	{"type":"NULLABLE","value":{"type":"NAME","name":"Foo"},"meta":{"syntax":"PREFIX_QUESTION_MARK"}}
//
// # Related Packages
//
//   - github.com/signadot/jsdoctype/parse - Parses text into trees
//   - github.com/signadot/jsdoctype/publish - Renders trees as text
//   - github.com/signadot/jsdoctype/traverse - Walks trees
package ast
