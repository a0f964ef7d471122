package query

import (
	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/publish"
)

// envTemplate fixes the names and types visible to expressions.
func envTemplate() map[string]any {
	return map[string]any{
		"kind":      "",
		"field":     "",
		"parent":    "",
		"depth":     0,
		"name":      "",
		"key":       "",
		"value":     "",
		"path":      "",
		"syntax":    "",
		"quote":     "",
		"text":      "",
		"ancestors": []string{},
		"leaf":      false,
	}
}

type frame struct {
	node   ast.Node
	path   string
	counts map[string]int
}

func nodeName(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Name:
		return x.Name
	case *ast.NamedParameter:
		return x.Name
	}
	if _, name, _, _, ok := ast.MemberParts(n); ok {
		return name
	}
	return ""
}

func nodeSyntax(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Union:
		return x.Syntax.String()
	case *ast.Variadic:
		return x.Syntax.String()
	case *ast.Optional:
		return x.Syntax.String()
	case *ast.Nullable:
		return x.Syntax.String()
	case *ast.NotNullable:
		return x.Syntax.String()
	case *ast.Generic:
		return x.Syntax.String()
	}
	return ""
}

func nodeQuote(n ast.Node) ast.QuoteStyle {
	switch x := n.(type) {
	case *ast.RecordEntry:
		return x.QuoteStyle
	case *ast.External:
		return x.QuoteStyle
	case *ast.FilePath:
		return x.QuoteStyle
	case *ast.StringValue:
		return x.QuoteStyle
	}
	if _, _, q, _, ok := ast.MemberParts(n); ok {
		return q
	}
	return ast.NoQuote
}

func parentName(t ast.Type) string {
	if t == ast.NoType {
		return ""
	}
	return t.String()
}

func (q *Query) env(n ast.Node, field string, parent ast.Type, path string, stack []frame) map[string]any {
	env := envTemplate()
	env["kind"] = n.Type().String()
	env["field"] = field
	env["parent"] = parentName(parent)
	env["depth"] = len(stack)
	env["name"] = nodeName(n)
	env["path"] = path
	env["syntax"] = nodeSyntax(n)
	env["quote"] = nodeQuote(n).String()
	env["text"] = publish.Publish(n, q.table)
	env["leaf"] = n.Type().IsLeaf()
	switch x := n.(type) {
	case *ast.RecordEntry:
		env["key"] = x.Key
	case *ast.StringValue:
		env["value"] = x.String
	case *ast.NumberValue:
		env["value"] = x.Number
	}
	ancestors := make([]string, len(stack))
	for i := range stack {
		ancestors[i] = stack[i].node.Type().String()
	}
	env["ancestors"] = ancestors
	return env
}
