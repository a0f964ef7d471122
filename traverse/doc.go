// Package traverse walks type expression trees.
//
// Children are visited in a fixed order per node type, list fields in
// element order:
//
//	MEMBER, INNER_MEMBER, INSTANCE_MEMBER  owner
//	UNION, INTERSECTION                    left, right
//	VARIADIC, OPTIONAL, NULLABLE,
//	NOT_NULLABLE, EXTERNAL, MODULE,
//	PARENTHESIS, KEY_QUERY                 value
//	RECORD, TUPLE                          entries
//	RECORD_ENTRY                           value
//	GENERIC                                subject, objects
//	FUNCTION                               params, returns, this, new
//	ARROW                                  params, returns
//	NAMED_PARAMETER                        typeName
//	TYPE_QUERY                             name
//	IMPORT                                 path
//
// Absent optional children are not visited.  A nil element of a list
// field is a malformed tree and panics.
package traverse
