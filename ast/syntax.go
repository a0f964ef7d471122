package ast

import "fmt"

// The zero value of each syntax enum is the form the default publisher
// prints, so directly constructed nodes render canonically.

type GenericSyntax int

const (
	AngleBracket GenericSyntax = iota
	AngleBracketWithDot
	SquareBracket
)

type UnionSyntax int

const (
	Pipe UnionSyntax = iota
	Slash
)

type VariadicSyntax int

const (
	PrefixDots VariadicSyntax = iota
	SuffixDots
	OnlyDots
)

type OptionalSyntax int

const (
	SuffixEqualsSign OptionalSyntax = iota
	PrefixEqualsSign
	// SuffixKeyQuestionMark marks a record entry written `key?: T`.
	SuffixKeyQuestionMark
)

type NullableSyntax int

const (
	PrefixQuestionMark NullableSyntax = iota
	SuffixQuestionMark
)

type NotNullableSyntax int

const (
	PrefixBang NotNullableSyntax = iota
	SuffixBang
)

type QuoteStyle int

const (
	NoQuote QuoteStyle = iota
	SingleQuote
	DoubleQuote
)

func (s GenericSyntax) String() string {
	return enumString(genericNames, s)
}
func (s GenericSyntax) MarshalText() ([]byte, error) {
	return enumMarshal(genericNames, s)
}
func (s *GenericSyntax) UnmarshalText(d []byte) error {
	return enumUnmarshal(genericNames, s, d)
}

func (s UnionSyntax) String() string {
	return enumString(unionNames, s)
}
func (s UnionSyntax) MarshalText() ([]byte, error) {
	return enumMarshal(unionNames, s)
}
func (s *UnionSyntax) UnmarshalText(d []byte) error {
	return enumUnmarshal(unionNames, s, d)
}

// Operator returns the union operator written for s.
func (s UnionSyntax) Operator() string {
	if s == Slash {
		return "/"
	}
	return "|"
}

func (s VariadicSyntax) String() string {
	return enumString(variadicNames, s)
}
func (s VariadicSyntax) MarshalText() ([]byte, error) {
	return enumMarshal(variadicNames, s)
}
func (s *VariadicSyntax) UnmarshalText(d []byte) error {
	return enumUnmarshal(variadicNames, s, d)
}

func (s OptionalSyntax) String() string {
	return enumString(optionalNames, s)
}
func (s OptionalSyntax) MarshalText() ([]byte, error) {
	return enumMarshal(optionalNames, s)
}
func (s *OptionalSyntax) UnmarshalText(d []byte) error {
	return enumUnmarshal(optionalNames, s, d)
}

func (s NullableSyntax) String() string {
	return enumString(nullableNames, s)
}
func (s NullableSyntax) MarshalText() ([]byte, error) {
	return enumMarshal(nullableNames, s)
}
func (s *NullableSyntax) UnmarshalText(d []byte) error {
	return enumUnmarshal(nullableNames, s, d)
}

func (s NotNullableSyntax) String() string {
	return enumString(notNullableNames, s)
}
func (s NotNullableSyntax) MarshalText() ([]byte, error) {
	return enumMarshal(notNullableNames, s)
}
func (s *NotNullableSyntax) UnmarshalText(d []byte) error {
	return enumUnmarshal(notNullableNames, s, d)
}

func (q QuoteStyle) String() string {
	return enumString(quoteNames, q)
}
func (q QuoteStyle) MarshalText() ([]byte, error) {
	return enumMarshal(quoteNames, q)
}
func (q *QuoteStyle) UnmarshalText(d []byte) error {
	return enumUnmarshal(quoteNames, q, d)
}

// Quote returns the quote character for q, or 0 for NoQuote.
func (q QuoteStyle) Quote() byte {
	switch q {
	case SingleQuote:
		return '\''
	case DoubleQuote:
		return '"'
	default:
		return 0
	}
}

var (
	genericNames = map[GenericSyntax]string{
		AngleBracket:        "ANGLE_BRACKET",
		AngleBracketWithDot: "ANGLE_BRACKET_WITH_DOT",
		SquareBracket:       "SQUARE_BRACKET",
	}
	unionNames = map[UnionSyntax]string{
		Pipe:  "PIPE",
		Slash: "SLASH",
	}
	variadicNames = map[VariadicSyntax]string{
		PrefixDots: "PREFIX_DOTS",
		SuffixDots: "SUFFIX_DOTS",
		OnlyDots:   "ONLY_DOTS",
	}
	optionalNames = map[OptionalSyntax]string{
		SuffixEqualsSign:      "SUFFIX_EQUALS_SIGN",
		PrefixEqualsSign:      "PREFIX_EQUALS_SIGN",
		SuffixKeyQuestionMark: "SUFFIX_KEY_QUESTION_MARK",
	}
	nullableNames = map[NullableSyntax]string{
		PrefixQuestionMark: "PREFIX_QUESTION_MARK",
		SuffixQuestionMark: "SUFFIX_QUESTION_MARK",
	}
	notNullableNames = map[NotNullableSyntax]string{
		PrefixBang: "PREFIX_BANG",
		SuffixBang: "SUFFIX_BANG",
	}
	quoteNames = map[QuoteStyle]string{
		NoQuote:     "none",
		SingleQuote: "single",
		DoubleQuote: "double",
	}
)

func enumString[E ~int](names map[E]string, e E) string {
	s, ok := names[e]
	if !ok {
		return fmt.Sprintf("<unknown syntax %d>", e)
	}
	return s
}

func enumMarshal[E ~int](names map[E]string, e E) ([]byte, error) {
	s, ok := names[e]
	if !ok {
		return nil, fmt.Errorf("%w: syntax %d", ErrConsistency, e)
	}
	return []byte(s), nil
}

func enumUnmarshal[E ~int](names map[E]string, e *E, d []byte) error {
	for k, s := range names {
		if s == string(d) {
			*e = k
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognized syntax %q", ErrConsistency, d)
}
