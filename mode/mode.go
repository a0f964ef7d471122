package mode

import (
	"errors"
	"fmt"
)

// Mode selects a dialect of the type expression grammar.
type Mode int

const (
	Permissive Mode = iota
	JSDoc
	Closure
	TypeScript
)

var (
	// ErrConfig is the root of configuration errors.  It is never
	// a syntax error.
	ErrConfig  = errors.New("configuration error")
	ErrBadMode = fmt.Errorf("%w: unrecognized mode", ErrConfig)
)

func ParseMode(v string) (Mode, error) {
	m, ok := map[string]Mode{
		"":           Permissive,
		"p":          Permissive,
		"permissive": Permissive,
		"j":          JSDoc,
		"jsdoc":      JSDoc,
		"c":          Closure,
		"closure":    Closure,
		"t":          TypeScript,
		"ts":         TypeScript,
		"typescript": TypeScript,
	}[v]
	if ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadMode, v)
}

func (m Mode) String() string {
	d, err := m.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (m Mode) MarshalText() ([]byte, error) {
	switch m {
	case Permissive:
		return []byte("permissive"), nil
	case JSDoc:
		return []byte("jsdoc"), nil
	case Closure:
		return []byte("closure"), nil
	case TypeScript:
		return []byte("typescript"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a mode>", m)
	}
}

func (m *Mode) UnmarshalText(d []byte) error {
	pm, err := ParseMode(string(d))
	if err != nil {
		return err
	}
	*m = pm
	return nil
}

// Modes returns all dialects, permissive first.
func Modes() []Mode {
	return []Mode{Permissive, JSDoc, Closure, TypeScript}
}
