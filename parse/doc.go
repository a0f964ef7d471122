// Package parse parses JSDoc type expressions into ast trees.
//
// Four dialects are supported, selected with ParseOptions:
// permissive (the default), jsdoc, closure and typescript.  The
// dialects differ in which productions they admit; see mode.Allows.
//
//	n, err := parse.Parse("Array<?string>|undefined", parse.ParseClosure())
//
// Parsing backtracks.  On failure the error reports the farthest
// position reached and what was expected there.
package parse
