package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/jsdoctype/mode"
	"github.com/signadot/jsdoctype/token"
)

var (
	ErrSyntax = errors.New("syntax error")

	ErrPermissiveSyntax = fmt.Errorf("permissive %w", ErrSyntax)
	ErrJSDocSyntax      = fmt.Errorf("jsdoc %w", ErrSyntax)
	ErrClosureSyntax    = fmt.Errorf("closure %w", ErrSyntax)
	ErrTypeScriptSyntax = fmt.Errorf("typescript %w", ErrSyntax)

	ErrConfig       = mode.ErrConfig
	ErrBadMode      = mode.ErrBadMode
	ErrBadStartRule = fmt.Errorf("%w: unrecognized start rule", ErrConfig)
)

// ModeSyntaxErr returns the syntax error sentinel of dialect m.
func ModeSyntaxErr(m mode.Mode) error {
	switch m {
	case mode.JSDoc:
		return ErrJSDocSyntax
	case mode.Closure:
		return ErrClosureSyntax
	case mode.TypeScript:
		return ErrTypeScriptSyntax
	default:
		return ErrPermissiveSyntax
	}
}

// SyntaxError reports input the selected dialect does not accept.  It
// unwraps to the dialect's sentinel, which in turn wraps ErrSyntax, and
// to Cause when a lexical error underlies it.
type SyntaxError struct {
	Mode     mode.Mode
	Message  string
	Expected []string
	Found    string
	Offset   int
	Line     int
	Column   int
	Cause    *token.TokenizeErr
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s (line %d, column %d)", ModeSyntaxErr(e.Mode), e.Message, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ModeSyntaxErr(e.Mode)}
	}
	return []error{ModeSyntaxErr(e.Mode), e.Cause}
}

// expectation renders "Expected A, B, or C but 'x' found."
func expectation(expected []string, found string) string {
	if len(expected) == 0 {
		return fmt.Sprintf("Unexpected %s.", found)
	}
	var list string
	switch n := len(expected); n {
	case 1:
		list = expected[0]
	case 2:
		list = expected[0] + " or " + expected[1]
	default:
		list = strings.Join(expected[:n-1], ", ") + ", or " + expected[n-1]
	}
	return fmt.Sprintf("Expected %s but %s found.", list, found)
}
