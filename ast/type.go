package ast

import "fmt"

// Type is the discriminant of a Node.
type Type int

const (
	// NoType is the zero Type.  Traversal reports it as the parent
	// type of a root node.
	NoType Type = iota
	NameType
	AnyType
	UnknownType
	MemberType
	InnerMemberType
	InstanceMemberType
	UnionType
	IntersectionType
	VariadicType
	OptionalType
	NullableType
	NotNullableType
	RecordType
	RecordEntryType
	TupleType
	GenericType
	FunctionType
	ArrowType
	NamedParameterType
	ModuleType
	ExternalType
	FilePathType
	StringValueType
	NumberValueType
	ParenthesisType
	TypeQueryType
	KeyQueryType
	ImportType
)

var typeNames = map[Type]string{
	NoType:             "",
	NameType:           "NAME",
	AnyType:            "ANY",
	UnknownType:        "UNKNOWN",
	MemberType:         "MEMBER",
	InnerMemberType:    "INNER_MEMBER",
	InstanceMemberType: "INSTANCE_MEMBER",
	UnionType:          "UNION",
	IntersectionType:   "INTERSECTION",
	VariadicType:       "VARIADIC",
	OptionalType:       "OPTIONAL",
	NullableType:       "NULLABLE",
	NotNullableType:    "NOT_NULLABLE",
	RecordType:         "RECORD",
	RecordEntryType:    "RECORD_ENTRY",
	TupleType:          "TUPLE",
	GenericType:        "GENERIC",
	FunctionType:       "FUNCTION",
	ArrowType:          "ARROW",
	NamedParameterType: "NAMED_PARAMETER",
	ModuleType:         "MODULE",
	ExternalType:       "EXTERNAL",
	FilePathType:       "FILE_PATH",
	StringValueType:    "STRING_VALUE",
	NumberValueType:    "NUMBER_VALUE",
	ParenthesisType:    "PARENTHESIS",
	TypeQueryType:      "TYPE_QUERY",
	KeyQueryType:       "KEY_QUERY",
	ImportType:         "IMPORT",
}

var typesByName map[string]Type

func init() {
	typesByName = make(map[string]Type, len(typeNames))
	for t, s := range typeNames {
		if t == NoType {
			continue
		}
		typesByName[s] = t
	}
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	if _, ok := typeNames[t]; !ok || t == NoType {
		return nil, fmt.Errorf("%w: type %d", ErrConsistency, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := typesByName[string(d)]
	if !ok {
		return fmt.Errorf("%w: unrecognized type %q", ErrConsistency, d)
	}
	*t = tt
	return nil
}

// Types returns every node type in declaration order.
func Types() []Type {
	res := make([]Type, 0, len(typeNames)-1)
	for t := NameType; t <= ImportType; t++ {
		res = append(res, t)
	}
	return res
}

// IsMember reports whether t is one of the three member access types.
func (t Type) IsMember() bool {
	switch t {
	case MemberType, InnerMemberType, InstanceMemberType:
		return true
	default:
		return false
	}
}

// IsLeaf reports whether nodes of type t never have children.
func (t Type) IsLeaf() bool {
	switch t {
	case NameType, AnyType, UnknownType, FilePathType, StringValueType, NumberValueType:
		return true
	default:
		return false
	}
}
