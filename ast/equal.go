package ast

// Equal reports whether a and b are the same tree.  Syntax fields are
// not compared: `Array<T>` equals `T[]` and `=T` equals `T=`.  Neither
// is the quote style of string literals.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case *Name:
		return x.Name == b.(*Name).Name
	case *Any, *Unknown:
		return true
	case *Member, *InnerMember, *InstanceMember:
		ao, an, aq, ae, _ := MemberParts(x)
		bo, bn, bq, be, _ := MemberParts(b)
		return an == bn && aq == bq && ae == be && Equal(ao, bo)
	case *Union:
		y := b.(*Union)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Intersection:
		y := b.(*Intersection)
		return Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Variadic:
		return Equal(x.Value, b.(*Variadic).Value)
	case *Optional:
		return Equal(x.Value, b.(*Optional).Value)
	case *Nullable:
		return Equal(x.Value, b.(*Nullable).Value)
	case *NotNullable:
		return Equal(x.Value, b.(*NotNullable).Value)
	case *Record:
		y := b.(*Record)
		if len(x.Entries) != len(y.Entries) {
			return false
		}
		for i := range x.Entries {
			if !Equal(x.Entries[i], y.Entries[i]) {
				return false
			}
		}
		return true
	case *RecordEntry:
		y := b.(*RecordEntry)
		return x.Key == y.Key && x.QuoteStyle == y.QuoteStyle && x.Readonly == y.Readonly && Equal(x.Value, y.Value)
	case *Tuple:
		return equalList(x.Entries, b.(*Tuple).Entries)
	case *Generic:
		y := b.(*Generic)
		return Equal(x.Subject, y.Subject) && equalList(x.Objects, y.Objects)
	case *Function:
		y := b.(*Function)
		return equalList(x.Params, y.Params) && Equal(x.Returns, y.Returns) &&
			Equal(x.This, y.This) && Equal(x.New, y.New)
	case *Arrow:
		y := b.(*Arrow)
		return x.New == y.New && equalList(x.Params, y.Params) && Equal(x.Returns, y.Returns)
	case *NamedParameter:
		y := b.(*NamedParameter)
		return x.Name == y.Name && Equal(x.TypeName, y.TypeName)
	case *Module:
		return Equal(x.Value, b.(*Module).Value)
	case *External:
		y := b.(*External)
		return x.QuoteStyle == y.QuoteStyle && Equal(x.Value, y.Value)
	case *FilePath:
		y := b.(*FilePath)
		return x.Path == y.Path && x.QuoteStyle == y.QuoteStyle
	case *StringValue:
		y := b.(*StringValue)
		if x == nil || y == nil {
			return x == y
		}
		return x.String == y.String
	case *NumberValue:
		return x.Number == b.(*NumberValue).Number
	case *Parenthesis:
		return Equal(x.Value, b.(*Parenthesis).Value)
	case *TypeQuery:
		return Equal(x.Name, b.(*TypeQuery).Name)
	case *KeyQuery:
		return Equal(x.Value, b.(*KeyQuery).Value)
	case *Import:
		y := b.(*Import)
		if x.Path == nil || y.Path == nil {
			return x.Path == y.Path
		}
		return Equal(x.Path, y.Path)
	}
	panic(&ConsistencyError{Node: a, Reason: "cannot compare"})
}

func equalList(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
