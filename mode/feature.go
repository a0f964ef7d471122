package mode

// Feature is a grammar production which some dialects reject.
type Feature int

const (
	Tuple Feature = iota
	Arrow
	TypeOf
	KeyOf
	Import
	External
	Module
	KeyOptional
)

var featureNames = map[Feature]string{
	Tuple:       "tuple",
	Arrow:       "arrow",
	TypeOf:      "typeof",
	KeyOf:       "keyof",
	Import:      "import",
	External:    "external",
	Module:      "module",
	KeyOptional: "key-optional",
}

func (f Feature) String() string {
	s, ok := featureNames[f]
	if !ok {
		return "<unknown feature>"
	}
	return s
}

// Features lists every gated production.
func Features() []Feature {
	return []Feature{Tuple, Arrow, TypeOf, KeyOf, Import, External, Module, KeyOptional}
}

// indexed by Mode
var gates = map[Feature][4]bool{
	Tuple:       {true, false, false, true},
	Arrow:       {true, false, false, true},
	TypeOf:      {true, false, true, true},
	KeyOf:       {true, false, false, true},
	Import:      {true, false, false, true},
	External:    {true, true, true, false},
	Module:      {true, true, true, false},
	KeyOptional: {true, false, true, true},
}

// Allows reports whether the dialect accepts f.
func (m Mode) Allows(f Feature) bool {
	g, ok := gates[f]
	if !ok || m < Permissive || m > TypeScript {
		return false
	}
	return g[m]
}
