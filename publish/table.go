package publish

import (
	"strings"

	"github.com/signadot/jsdoctype/ast"
	"github.com/signadot/jsdoctype/token"
)

type printer struct {
	c *Colors
}

func (p printer) val(t ast.Type, s string) string {
	return p.c.Color(t, ValueColor, s)
}

func (p printer) kw(t ast.Type, s string) string {
	return p.c.Color(t, KeywordColor, s)
}

func (p printer) field(t ast.Type, s string) string {
	return p.c.Color(t, FieldColor, s)
}

func (p printer) sep(t ast.Type, s string) string {
	return p.c.Color(t, SepColor, s)
}

func (p printer) list(t ast.Type, ns []ast.Node, pub func(ast.Node) string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = pub(n)
	}
	return strings.Join(parts, p.sep(t, ", "))
}

// operand renders n after a prefix operator or as a function return
// type.  Suffix modifiers bind looser than prefix ones, so they take
// their prefix spelling here.
func (p printer) operand(n ast.Node, pub func(ast.Node) string) string {
	switch x := n.(type) {
	case *ast.Optional:
		return p.sep(ast.OptionalType, "=") + p.operand(x.Value, pub)
	case *ast.Variadic:
		if x.Value != nil && x.Syntax == ast.SuffixDots {
			return p.sep(ast.VariadicType, "...") + p.operand(x.Value, pub)
		}
	}
	return wrapIf(pub(n), loose(n))
}

// nullabilityOperand is operand under `?` and `!`, which do not stack.
func (p printer) nullabilityOperand(n ast.Node, pub func(ast.Node) string) string {
	if nullability(n) {
		return paren(pub(n))
	}
	return p.operand(n, pub)
}

// memberName renders the name of a member access, quoting it when it
// was quoted or is not an identifier.
func memberName(name string, q ast.QuoteStyle) string {
	switch {
	case q != ast.NoQuote:
		return quote(name, q.Quote())
	case token.IsIdent(name):
		return name
	}
	return quote(name, '"')
}

// quote delimits v with q, or with the other quote when only that one
// scans back to v.
func quote(v string, q byte) string {
	return token.Quote(v, token.Prefer(v, q))
}

func recordKey(key string, q ast.QuoteStyle) string {
	if q == ast.NoQuote && key != "" && key[0] >= '0' && key[0] <= '9' && token.Number([]byte(key)) == len(key) {
		return key
	}
	return memberName(key, q)
}

func filePath(path string, q ast.QuoteStyle) string {
	if q == ast.NoQuote && path != "" && token.FilePath([]byte(path)) == len(path) {
		return path
	}
	if q == ast.NoQuote {
		q = ast.DoubleQuote
	}
	return quote(path, q.Quote())
}

func (p printer) member(n ast.Node, pub func(ast.Node) string) string {
	owner, name, q, event, _ := ast.MemberParts(n)
	t := n.Type()
	buf := strings.Builder{}
	buf.WriteString(wrapIf(pub(owner), !memberOwner(owner)))
	buf.WriteString(p.sep(t, ast.MemberOperator(t)))
	if event {
		buf.WriteString(p.kw(t, "event:"))
	}
	buf.WriteString(p.field(t, memberName(name, q)))
	return buf.String()
}

// binop renders a union or intersection chain, which the parser
// folds to the right.
func (p printer) binop(n ast.Node, l, r ast.Node, op string, pub func(ast.Node) string) string {
	ls := wrapIf(pub(l), loose(l))
	rs := wrapIf(pub(r), binary(r) && r.Type() != n.Type())
	return ls + p.sep(n.Type(), op) + rs
}

// externalValue renders the value of an external name, quoting the
// root name with q.
func (p printer) externalValue(n ast.Node, q ast.QuoteStyle, pub func(ast.Node) string) string {
	switch x := n.(type) {
	case *ast.Name:
		return p.val(ast.NameType, quote(x.Name, q.Quote()))
	case *ast.Member, *ast.InnerMember, *ast.InstanceMember:
		return p.member(n, func(o ast.Node) string {
			return p.externalValue(o, q, pub)
		})
	}
	return pub(n)
}

func (p printer) params(t ast.Type, this, nw ast.Node, ps []ast.Node, pub func(ast.Node) string) string {
	parts := make([]string, 0, len(ps)+1)
	if this != nil {
		parts = append(parts, p.kw(t, "this")+p.sep(t, ": ")+pub(this))
	}
	if nw != nil {
		parts = append(parts, p.kw(t, "new")+p.sep(t, ": ")+pub(nw))
	}
	for _, param := range ps {
		parts = append(parts, pub(param))
	}
	return strings.Join(parts, p.sep(t, ", "))
}

func newTable(c *Colors) Table {
	p := printer{c: c}
	return Table{
		ast.NameType: func(n ast.Node, _ func(ast.Node) string) string {
			return p.val(ast.NameType, n.(*ast.Name).Name)
		},
		ast.AnyType: func(ast.Node, func(ast.Node) string) string {
			return p.val(ast.AnyType, "*")
		},
		ast.UnknownType: func(ast.Node, func(ast.Node) string) string {
			return p.val(ast.UnknownType, "?")
		},
		ast.MemberType:         p.member,
		ast.InnerMemberType:    p.member,
		ast.InstanceMemberType: p.member,
		ast.UnionType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Union)
			return p.binop(n, x.Left, x.Right, "|", pub)
		},
		ast.IntersectionType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Intersection)
			return p.binop(n, x.Left, x.Right, "&", pub)
		},
		ast.VariadicType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Variadic)
			dots := p.sep(ast.VariadicType, "...")
			switch {
			case x.Value == nil:
				return dots
			case x.Syntax == ast.SuffixDots:
				return wrapIf(pub(x.Value), suffixOperand(x.Value)) + dots
			}
			return dots + p.operand(x.Value, pub)
		},
		ast.OptionalType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Optional)
			return wrapIf(pub(x.Value), suffixOperand(x.Value)) + p.sep(ast.OptionalType, "=")
		},
		ast.NullableType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Nullable)
			return p.sep(ast.NullableType, "?") + p.nullabilityOperand(x.Value, pub)
		},
		ast.NotNullableType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.NotNullable)
			return p.sep(ast.NotNullableType, "!") + p.nullabilityOperand(x.Value, pub)
		},
		ast.RecordType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Record)
			parts := make([]string, len(x.Entries))
			for i, e := range x.Entries {
				parts[i] = pub(e)
			}
			t := ast.RecordType
			return p.sep(t, "{") + strings.Join(parts, p.sep(t, ", ")) + p.sep(t, "}")
		},
		ast.RecordEntryType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.RecordEntry)
			t := ast.RecordEntryType
			buf := strings.Builder{}
			if x.Readonly {
				buf.WriteString(p.kw(t, "readonly") + " ")
			}
			buf.WriteString(p.field(t, recordKey(x.Key, x.QuoteStyle)))
			switch {
			case x.Value == nil:
			case x.KeyOptional():
				buf.WriteString(p.sep(t, "?: "))
				buf.WriteString(pub(x.Value.(*ast.Optional).Value))
			default:
				buf.WriteString(p.sep(t, ": "))
				buf.WriteString(pub(x.Value))
			}
			return buf.String()
		},
		ast.TupleType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Tuple)
			t := ast.TupleType
			return p.sep(t, "[") + p.list(t, x.Entries, pub) + p.sep(t, "]")
		},
		ast.GenericType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Generic)
			t := ast.GenericType
			if x.Syntax == ast.SquareBracket && len(x.Objects) == 1 {
				if s, ok := x.Subject.(*ast.Name); ok && s.Name == "Array" {
					obj := x.Objects[0]
					return wrapIf(pub(obj), arrayElem(obj)) + p.sep(t, "[]")
				}
			}
			open := "<"
			if x.Syntax == ast.AngleBracketWithDot {
				open = ".<"
			}
			return pub(x.Subject) + p.sep(t, open) + p.list(t, x.Objects, pub) + p.sep(t, ">")
		},
		ast.FunctionType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Function)
			t := ast.FunctionType
			res := p.kw(t, "function") + p.sep(t, "(") + p.params(t, x.This, x.New, x.Params, pub) + p.sep(t, ")")
			if x.Returns != nil {
				res += p.sep(t, ": ") + p.operand(x.Returns, pub)
			}
			return res
		},
		ast.ArrowType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.Arrow)
			t := ast.ArrowType
			res := ""
			if x.New {
				res = p.kw(t, "new") + " "
			}
			res += p.sep(t, "(") + p.list(t, x.Params, pub) + p.sep(t, ")") + p.sep(t, " => ")
			if x.Returns != nil {
				res += pub(x.Returns)
			} else {
				res += p.kw(t, "void")
			}
			return res
		},
		ast.NamedParameterType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.NamedParameter)
			t := ast.NamedParameterType
			res := p.field(t, x.Name)
			if x.TypeName != nil {
				res += p.sep(t, ": ") + pub(x.TypeName)
			}
			return res
		},
		ast.ModuleType: func(n ast.Node, pub func(ast.Node) string) string {
			return p.kw(ast.ModuleType, "module:") + pub(n.(*ast.Module).Value)
		},
		ast.ExternalType: func(n ast.Node, pub func(ast.Node) string) string {
			x := n.(*ast.External)
			res := p.kw(ast.ExternalType, "external:")
			if x.QuoteStyle == ast.NoQuote {
				return res + pub(x.Value)
			}
			return res + p.externalValue(x.Value, x.QuoteStyle, pub)
		},
		ast.FilePathType: func(n ast.Node, _ func(ast.Node) string) string {
			x := n.(*ast.FilePath)
			return p.val(ast.FilePathType, filePath(x.Path, x.QuoteStyle))
		},
		ast.StringValueType: func(n ast.Node, _ func(ast.Node) string) string {
			return p.val(ast.StringValueType, quote(n.(*ast.StringValue).String, '"'))
		},
		ast.NumberValueType: func(n ast.Node, _ func(ast.Node) string) string {
			return p.val(ast.NumberValueType, n.(*ast.NumberValue).Number)
		},
		ast.ParenthesisType: func(n ast.Node, pub func(ast.Node) string) string {
			t := ast.ParenthesisType
			return p.sep(t, "(") + pub(n.(*ast.Parenthesis).Value) + p.sep(t, ")")
		},
		ast.TypeQueryType: func(n ast.Node, pub func(ast.Node) string) string {
			return p.kw(ast.TypeQueryType, "typeof") + " " + pub(n.(*ast.TypeQuery).Name)
		},
		ast.KeyQueryType: func(n ast.Node, pub func(ast.Node) string) string {
			v := n.(*ast.KeyQuery).Value
			return p.kw(ast.KeyQueryType, "keyof") + " " + wrapIf(pub(v), keyofOperand(v))
		},
		ast.ImportType: func(n ast.Node, pub func(ast.Node) string) string {
			t := ast.ImportType
			x := n.(*ast.Import)
			if x.Path == nil {
				panic(&ast.ConsistencyError{Node: n, Reason: "import without a path"})
			}
			return p.kw(t, "import") + p.sep(t, "(") + pub(x.Path) + p.sep(t, ")")
		},
	}
}
