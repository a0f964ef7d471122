package ast

// Node is a type expression tree node.  The set of implementations is
// closed: only the types in this package satisfy it.
//
// Optional children are nil when absent.
type Node interface {
	Type() Type
	node()
}

type Name struct {
	Name string
}

type Any struct{}

type Unknown struct{}

// Member is `Owner.Name`.
type Member struct {
	Owner          Node
	Name           string
	QuoteStyle     QuoteStyle
	HasEventPrefix bool
}

// InnerMember is `Owner~Name`.
type InnerMember struct {
	Owner          Node
	Name           string
	QuoteStyle     QuoteStyle
	HasEventPrefix bool
}

// InstanceMember is `Owner#Name`.
type InstanceMember struct {
	Owner          Node
	Name           string
	QuoteStyle     QuoteStyle
	HasEventPrefix bool
}

type Union struct {
	Left, Right Node
	Syntax      UnionSyntax
}

type Intersection struct {
	Left, Right Node
}

// Variadic is `...T`, `T...` or a bare `...` (nil Value).
type Variadic struct {
	Value  Node
	Syntax VariadicSyntax
}

// Elem returns the variadic element type, ANY for the bare form.
func (v *Variadic) Elem() Node {
	if v.Value == nil {
		return &Any{}
	}
	return v.Value
}

type Optional struct {
	Value  Node
	Syntax OptionalSyntax
}

type Nullable struct {
	Value  Node
	Syntax NullableSyntax
}

type NotNullable struct {
	Value  Node
	Syntax NotNullableSyntax
}

type Record struct {
	Entries []*RecordEntry
}

// RecordEntry is one member of a record.  A nil Value means the entry
// was written key-only.
type RecordEntry struct {
	Key        string
	Value      Node
	QuoteStyle QuoteStyle
	Readonly   bool
}

// KeyOptional reports whether the entry was written `key?: T`.
func (e *RecordEntry) KeyOptional() bool {
	o, ok := e.Value.(*Optional)
	return ok && o.Syntax == SuffixKeyQuestionMark
}

type Tuple struct {
	Entries []Node
}

type Generic struct {
	Subject Node
	Objects []Node
	Syntax  GenericSyntax
}

// Function is `function(...)`.  This and New are mutually exclusive.
type Function struct {
	Params  []Node
	Returns Node
	This    Node
	New     Node
}

// Arrow is `(a: T) => R` or, with New set, `new (a: T) => R`.
type Arrow struct {
	Params  []Node
	Returns Node
	New     bool
}

type NamedParameter struct {
	Name     string
	TypeName Node
}

type Module struct {
	Value Node
}

type External struct {
	Value      Node
	QuoteStyle QuoteStyle
}

type FilePath struct {
	Path       string
	QuoteStyle QuoteStyle
}

// StringValue holds the literal contents with escapes kept verbatim,
// except for escaped occurrences of the delimiting quote.
type StringValue struct {
	String     string
	QuoteStyle QuoteStyle
}

// NumberValue holds the number exactly as written.
type NumberValue struct {
	Number string
}

type Parenthesis struct {
	Value Node
}

type TypeQuery struct {
	Name Node
}

type KeyQuery struct {
	Value Node
}

type Import struct {
	Path *StringValue
}

func (*Name) Type() Type           { return NameType }
func (*Any) Type() Type            { return AnyType }
func (*Unknown) Type() Type        { return UnknownType }
func (*Member) Type() Type         { return MemberType }
func (*InnerMember) Type() Type    { return InnerMemberType }
func (*InstanceMember) Type() Type { return InstanceMemberType }
func (*Union) Type() Type          { return UnionType }
func (*Intersection) Type() Type   { return IntersectionType }
func (*Variadic) Type() Type       { return VariadicType }
func (*Optional) Type() Type       { return OptionalType }
func (*Nullable) Type() Type       { return NullableType }
func (*NotNullable) Type() Type    { return NotNullableType }
func (*Record) Type() Type         { return RecordType }
func (*RecordEntry) Type() Type    { return RecordEntryType }
func (*Tuple) Type() Type          { return TupleType }
func (*Generic) Type() Type        { return GenericType }
func (*Function) Type() Type       { return FunctionType }
func (*Arrow) Type() Type          { return ArrowType }
func (*NamedParameter) Type() Type { return NamedParameterType }
func (*Module) Type() Type         { return ModuleType }
func (*External) Type() Type       { return ExternalType }
func (*FilePath) Type() Type       { return FilePathType }
func (*StringValue) Type() Type    { return StringValueType }
func (*NumberValue) Type() Type    { return NumberValueType }
func (*Parenthesis) Type() Type    { return ParenthesisType }
func (*TypeQuery) Type() Type      { return TypeQueryType }
func (*KeyQuery) Type() Type       { return KeyQueryType }
func (*Import) Type() Type         { return ImportType }

func (*Name) node()           {}
func (*Any) node()            {}
func (*Unknown) node()        {}
func (*Member) node()         {}
func (*InnerMember) node()    {}
func (*InstanceMember) node() {}
func (*Union) node()          {}
func (*Intersection) node()   {}
func (*Variadic) node()       {}
func (*Optional) node()       {}
func (*Nullable) node()       {}
func (*NotNullable) node()    {}
func (*Record) node()         {}
func (*RecordEntry) node()    {}
func (*Tuple) node()          {}
func (*Generic) node()        {}
func (*Function) node()       {}
func (*Arrow) node()          {}
func (*NamedParameter) node() {}
func (*Module) node()         {}
func (*External) node()       {}
func (*FilePath) node()       {}
func (*StringValue) node()    {}
func (*NumberValue) node()    {}
func (*Parenthesis) node()    {}
func (*TypeQuery) node()      {}
func (*KeyQuery) node()       {}
func (*Import) node()         {}

// MemberParts returns the owner, name, quote style and event prefix flag
// of one of the three member node types.
func MemberParts(n Node) (owner Node, name string, q QuoteStyle, event bool, ok bool) {
	switch x := n.(type) {
	case *Member:
		return x.Owner, x.Name, x.QuoteStyle, x.HasEventPrefix, true
	case *InnerMember:
		return x.Owner, x.Name, x.QuoteStyle, x.HasEventPrefix, true
	case *InstanceMember:
		return x.Owner, x.Name, x.QuoteStyle, x.HasEventPrefix, true
	}
	return nil, "", NoQuote, false, false
}

// NewMember builds a member node of type t, which must satisfy
// t.IsMember().
func NewMember(t Type, owner Node, name string, q QuoteStyle, event bool) Node {
	switch t {
	case MemberType:
		return &Member{Owner: owner, Name: name, QuoteStyle: q, HasEventPrefix: event}
	case InnerMemberType:
		return &InnerMember{Owner: owner, Name: name, QuoteStyle: q, HasEventPrefix: event}
	case InstanceMemberType:
		return &InstanceMember{Owner: owner, Name: name, QuoteStyle: q, HasEventPrefix: event}
	}
	panic(&ConsistencyError{Type: t, Reason: "not a member type"})
}

// MemberOperator returns the access operator for a member type.
func MemberOperator(t Type) string {
	switch t {
	case InnerMemberType:
		return "~"
	case InstanceMemberType:
		return "#"
	default:
		return "."
	}
}
