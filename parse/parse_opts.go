package parse

import (
	"github.com/signadot/jsdoctype/mode"
)

type parseOpts struct {
	mode  mode.Mode
	start StartRule
	err   error
}

type ParseOption func(*parseOpts)

func ParsePermissive() ParseOption {
	return ParseMode(mode.Permissive)
}
func ParseJSDoc() ParseOption {
	return ParseMode(mode.JSDoc)
}
func ParseClosure() ParseOption {
	return ParseMode(mode.Closure)
}
func ParseTypeScript() ParseOption {
	return ParseMode(mode.TypeScript)
}
func ParseMode(m mode.Mode) ParseOption {
	return func(o *parseOpts) { o.mode = m }
}

// ParseModeName selects a dialect by name.  An unrecognized name makes
// Parse fail with ErrBadMode.
func ParseModeName(v string) ParseOption {
	return func(o *parseOpts) {
		m, err := mode.ParseMode(v)
		if err != nil {
			o.err = err
			return
		}
		o.mode = m
	}
}

func StartAt(r StartRule) ParseOption {
	return func(o *parseOpts) { o.start = r }
}

// StartAtName selects a start rule by name.  An unrecognized name makes
// Parse fail with ErrBadStartRule.
func StartAtName(v string) ParseOption {
	return func(o *parseOpts) {
		r, err := LookupStartRule(v)
		if err != nil {
			o.err = err
			return
		}
		o.start = r
	}
}
