package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/jsdoctype/ast"
)

// Logf writes a formatted message to stderr.  Tree arguments are
// rendered in their JSON form and maps or slices as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ast.Node:
			d, err := ast.MarshalJSON(x)
			if err != nil {
				args[i] = fmt.Sprintf("[raw %T] %v", x, x)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
