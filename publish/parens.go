package publish

import (
	"github.com/signadot/jsdoctype/ast"
)

func paren(s string) string {
	return "(" + s + ")"
}

func binary(n ast.Node) bool {
	switch n.(type) {
	case *ast.Union, *ast.Intersection:
		return true
	}
	return false
}

func loose(n ast.Node) bool {
	_, arrow := n.(*ast.Arrow)
	return arrow || binary(n)
}

// suffixed reports whether n renders with a trailing modifier.
func suffixed(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.Optional:
		return true
	case *ast.Variadic:
		return x.Value != nil && x.Syntax == ast.SuffixDots
	}
	return false
}

func modifier(n ast.Node) bool {
	switch n.(type) {
	case *ast.Optional, *ast.Nullable, *ast.NotNullable, *ast.Variadic:
		return true
	}
	return false
}

func nullability(n ast.Node) bool {
	switch n.(type) {
	case *ast.Nullable, *ast.NotNullable:
		return true
	}
	return false
}

// suffixOperand reports whether n needs parentheses before `=` or a
// trailing `...`.
func suffixOperand(n ast.Node) bool {
	return loose(n)
}

// arrayElem reports whether n needs parentheses before `[]`.
func arrayElem(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.Unknown, *ast.KeyQuery:
		return true
	case *ast.Function:
		return x.Returns != nil
	}
	return loose(n) || modifier(n)
}

// keyofOperand reports whether n needs parentheses after `keyof`.
func keyofOperand(n ast.Node) bool {
	return loose(n) || modifier(n)
}

// memberOwner reports whether n can be followed by a member access as
// is.
func memberOwner(n ast.Node) bool {
	switch n.(type) {
	case *ast.Name, *ast.Member, *ast.InnerMember, *ast.InstanceMember,
		*ast.Parenthesis, *ast.FilePath, *ast.Import:
		return true
	}
	return false
}

func wrapIf(s string, cond bool) string {
	if cond {
		return paren(s)
	}
	return s
}
