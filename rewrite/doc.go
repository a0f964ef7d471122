// Package rewrite edits type expression trees with JSON patches.
//
// Patches address the JSON form of a tree written by ast.MarshalJSON,
// so `/left/name` is the name of the left operand of a union.  The
// patched document must be a well formed tree again.
package rewrite
