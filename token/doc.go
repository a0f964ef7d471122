// Package token provides the lexical layer of the type expression grammar:
// scanners for identifiers, quoted strings, numbers and module paths, and
// source positions for error reporting.
//
// Scanners take the remaining input and return how many bytes of it form
// the token, 0 meaning no match.  They never look behind.
package token
