package libdiff

import "fmt"

// Op is the kind of an edit.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

var opNames = map[Op]string{
	Equal:  "equal",
	Insert: "insert",
	Delete: "delete",
}

func (o Op) String() string {
	s, ok := opNames[o]
	if !ok {
		return fmt.Sprintf("<unknown op %d>", int(o))
	}
	return s
}

func (o Op) MarshalText() ([]byte, error) {
	s, ok := opNames[o]
	if !ok {
		return nil, fmt.Errorf("unknown op %d", int(o))
	}
	return []byte(s), nil
}
