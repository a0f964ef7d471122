package ast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// field order is significant in the JSON form, so objects are slices.
type jsonField struct {
	k string
	v any
}

type jsonObject []jsonField

func (o jsonObject) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i := range o {
		if i != 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(o[i].k)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o[i].v)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders n as a JSON object of the form
//
//	{"type":"GENERIC","subject":{...},"objects":[...],"meta":{"syntax":"ANGLE_BRACKET"}}
//
// Absent optional children are rendered as null.
func MarshalJSON(n Node) ([]byte, error) {
	v, err := toJSON(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func meta(s fmt.Stringer) jsonObject {
	return jsonObject{{"syntax", s.String()}}
}

func toJSONList[N Node](ns []N) ([]any, error) {
	res := make([]any, len(ns))
	for i, n := range ns {
		v, err := toJSON(n)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

func toJSON(n Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	t := jsonField{"type", n.Type().String()}
	var err error
	child := func(c Node) any {
		if err != nil {
			return nil
		}
		var v any
		v, err = toJSON(c)
		return v
	}
	var res jsonObject
	switch x := n.(type) {
	case *Name:
		res = jsonObject{t, {"name", x.Name}}
	case *Any, *Unknown:
		res = jsonObject{t}
	case *Member, *InnerMember, *InstanceMember:
		owner, name, q, ev, _ := MemberParts(x)
		res = jsonObject{t, {"owner", child(owner)}, {"name", name}, {"quoteStyle", q.String()}, {"hasEventPrefix", ev}}
	case *Union:
		res = jsonObject{t, {"left", child(x.Left)}, {"right", child(x.Right)}, {"meta", meta(x.Syntax)}}
	case *Intersection:
		res = jsonObject{t, {"left", child(x.Left)}, {"right", child(x.Right)}}
	case *Variadic:
		res = jsonObject{t, {"value", child(x.Value)}, {"meta", meta(x.Syntax)}}
	case *Optional:
		res = jsonObject{t, {"value", child(x.Value)}, {"meta", meta(x.Syntax)}}
	case *Nullable:
		res = jsonObject{t, {"value", child(x.Value)}, {"meta", meta(x.Syntax)}}
	case *NotNullable:
		res = jsonObject{t, {"value", child(x.Value)}, {"meta", meta(x.Syntax)}}
	case *Record:
		entries, lerr := toJSONList(x.Entries)
		if lerr != nil {
			return nil, lerr
		}
		res = jsonObject{t, {"entries", entries}}
	case *RecordEntry:
		res = jsonObject{t, {"key", x.Key}, {"value", child(x.Value)}, {"quoteStyle", x.QuoteStyle.String()}, {"readonly", x.Readonly}}
	case *Tuple:
		entries, lerr := toJSONList(x.Entries)
		if lerr != nil {
			return nil, lerr
		}
		res = jsonObject{t, {"entries", entries}}
	case *Generic:
		objs, lerr := toJSONList(x.Objects)
		if lerr != nil {
			return nil, lerr
		}
		res = jsonObject{t, {"subject", child(x.Subject)}, {"objects", objs}, {"meta", meta(x.Syntax)}}
	case *Function:
		params, lerr := toJSONList(x.Params)
		if lerr != nil {
			return nil, lerr
		}
		res = jsonObject{t, {"params", params}, {"returns", child(x.Returns)}, {"this", child(x.This)}, {"new", child(x.New)}}
	case *Arrow:
		params, lerr := toJSONList(x.Params)
		if lerr != nil {
			return nil, lerr
		}
		res = jsonObject{t, {"params", params}, {"returns", child(x.Returns)}, {"new", x.New}}
	case *NamedParameter:
		res = jsonObject{t, {"name", x.Name}, {"typeName", child(x.TypeName)}}
	case *Module:
		res = jsonObject{t, {"value", child(x.Value)}}
	case *External:
		res = jsonObject{t, {"value", child(x.Value)}, {"quoteStyle", x.QuoteStyle.String()}}
	case *FilePath:
		res = jsonObject{t, {"path", x.Path}, {"quoteStyle", x.QuoteStyle.String()}}
	case *StringValue:
		res = jsonObject{t, {"string", x.String}, {"quoteStyle", x.QuoteStyle.String()}}
	case *NumberValue:
		res = jsonObject{t, {"number", x.Number}}
	case *Parenthesis:
		res = jsonObject{t, {"value", child(x.Value)}}
	case *TypeQuery:
		res = jsonObject{t, {"name", child(x.Name)}}
	case *KeyQuery:
		res = jsonObject{t, {"value", child(x.Value)}}
	case *Import:
		var path Node
		if x.Path != nil {
			path = x.Path
		}
		res = jsonObject{t, {"path", child(path)}}
	default:
		return nil, &ConsistencyError{Node: n, Reason: "no JSON form"}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// UnmarshalJSON reads the form produced by MarshalJSON.
func UnmarshalJSON(d []byte) (Node, error) {
	return fromJSON(json.RawMessage(d))
}

type jsonReader struct {
	m   map[string]json.RawMessage
	err error
}

func (r *jsonReader) str(k string) string {
	var s string
	r.decode(k, &s)
	return s
}

func (r *jsonReader) boolean(k string) bool {
	var b bool
	r.decode(k, &b)
	return b
}

func (r *jsonReader) quote() QuoteStyle {
	var q QuoteStyle
	if _, ok := r.m["quoteStyle"]; !ok {
		return NoQuote
	}
	r.decode("quoteStyle", &q)
	return q
}

func (r *jsonReader) syntax(dst any) {
	raw, ok := r.m["meta"]
	if !ok || r.err != nil {
		return
	}
	var m struct {
		Syntax json.RawMessage `json:"syntax"`
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		r.err = err
		return
	}
	if m.Syntax == nil {
		return
	}
	if err := json.Unmarshal(m.Syntax, dst); err != nil {
		r.err = err
	}
}

func (r *jsonReader) decode(k string, dst any) {
	raw, ok := r.m[k]
	if !ok || r.err != nil {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.err = fmt.Errorf("field %q: %w", k, err)
	}
}

func (r *jsonReader) child(k string) Node {
	raw, ok := r.m[k]
	if !ok || r.err != nil {
		return nil
	}
	n, err := fromJSON(raw)
	if err != nil {
		r.err = err
	}
	return n
}

func (r *jsonReader) children(k string) []Node {
	raw, ok := r.m[k]
	if !ok || r.err != nil {
		return nil
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(raw, &raws); err != nil {
		r.err = fmt.Errorf("field %q: %w", k, err)
		return nil
	}
	if len(raws) == 0 {
		return nil
	}
	res := make([]Node, 0, len(raws))
	for _, cr := range raws {
		n, err := fromJSON(cr)
		if err != nil {
			r.err = err
			return nil
		}
		if n == nil {
			r.err = fmt.Errorf("%w: null element in %q", ErrConsistency, k)
			return nil
		}
		res = append(res, n)
	}
	return res
}

func fromJSON(raw json.RawMessage) (Node, error) {
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil, nil
	}
	r := &jsonReader{}
	if err := json.Unmarshal(raw, &r.m); err != nil {
		return nil, err
	}
	var t Type
	r.decode("type", &t)
	if r.err != nil {
		return nil, r.err
	}
	var res Node
	switch t {
	case NameType:
		res = &Name{Name: r.str("name")}
	case AnyType:
		res = &Any{}
	case UnknownType:
		res = &Unknown{}
	case MemberType, InnerMemberType, InstanceMemberType:
		res = NewMember(t, r.child("owner"), r.str("name"), r.quote(), r.boolean("hasEventPrefix"))
	case UnionType:
		u := &Union{Left: r.child("left"), Right: r.child("right")}
		r.syntax(&u.Syntax)
		res = u
	case IntersectionType:
		res = &Intersection{Left: r.child("left"), Right: r.child("right")}
	case VariadicType:
		v := &Variadic{Value: r.child("value")}
		r.syntax(&v.Syntax)
		res = v
	case OptionalType:
		o := &Optional{Value: r.child("value")}
		r.syntax(&o.Syntax)
		res = o
	case NullableType:
		o := &Nullable{Value: r.child("value")}
		r.syntax(&o.Syntax)
		res = o
	case NotNullableType:
		o := &NotNullable{Value: r.child("value")}
		r.syntax(&o.Syntax)
		res = o
	case RecordType:
		rec := &Record{}
		for _, e := range r.children("entries") {
			re, ok := e.(*RecordEntry)
			if !ok {
				return nil, &ConsistencyError{Node: e, Reason: "record entry expected"}
			}
			rec.Entries = append(rec.Entries, re)
		}
		res = rec
	case RecordEntryType:
		res = &RecordEntry{Key: r.str("key"), Value: r.child("value"), QuoteStyle: r.quote(), Readonly: r.boolean("readonly")}
	case TupleType:
		res = &Tuple{Entries: r.children("entries")}
	case GenericType:
		g := &Generic{Subject: r.child("subject"), Objects: r.children("objects")}
		r.syntax(&g.Syntax)
		res = g
	case FunctionType:
		res = &Function{Params: r.children("params"), Returns: r.child("returns"), This: r.child("this"), New: r.child("new")}
	case ArrowType:
		res = &Arrow{Params: r.children("params"), Returns: r.child("returns"), New: r.boolean("new")}
	case NamedParameterType:
		res = &NamedParameter{Name: r.str("name"), TypeName: r.child("typeName")}
	case ModuleType:
		res = &Module{Value: r.child("value")}
	case ExternalType:
		res = &External{Value: r.child("value"), QuoteStyle: r.quote()}
	case FilePathType:
		res = &FilePath{Path: r.str("path"), QuoteStyle: r.quote()}
	case StringValueType:
		res = &StringValue{String: r.str("string"), QuoteStyle: r.quote()}
	case NumberValueType:
		res = &NumberValue{Number: r.str("number")}
	case ParenthesisType:
		res = &Parenthesis{Value: r.child("value")}
	case TypeQueryType:
		res = &TypeQuery{Name: r.child("name")}
	case KeyQueryType:
		res = &KeyQuery{Value: r.child("value")}
	case ImportType:
		imp := &Import{}
		p := r.child("path")
		if p != nil {
			sv, ok := p.(*StringValue)
			if !ok {
				return nil, &ConsistencyError{Node: p, Reason: "import path must be a string value"}
			}
			imp.Path = sv
		}
		res = imp
	default:
		return nil, &ConsistencyError{Type: t, Reason: "no JSON form"}
	}
	if r.err != nil {
		return nil, r.err
	}
	return res, nil
}
