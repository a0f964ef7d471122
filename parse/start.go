package parse

import "fmt"

// StartRule names the production parsing begins at.
type StartRule int

const (
	TopTypeExpr StartRule = iota
	NamepathExpr
	BroadNamepathExpr
	ExternalNameExpr
	ModuleNameExpr
)

var startNames = map[StartRule]string{
	TopTypeExpr:       "TopTypeExpr",
	NamepathExpr:      "NamepathExpr",
	BroadNamepathExpr: "BroadNamepathExpr",
	ExternalNameExpr:  "ExternalNameExpr",
	ModuleNameExpr:    "ModuleNameExpr",
}

func LookupStartRule(v string) (StartRule, error) {
	if v == "" {
		return TopTypeExpr, nil
	}
	for r, s := range startNames {
		if s == v {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStartRule, v)
}

func (r StartRule) String() string {
	s, ok := startNames[r]
	if !ok {
		return "<unknown start rule>"
	}
	return s
}

func (r StartRule) MarshalText() ([]byte, error) {
	s, ok := startNames[r]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBadStartRule, int(r))
	}
	return []byte(s), nil
}

func (r *StartRule) UnmarshalText(d []byte) error {
	sr, err := LookupStartRule(string(d))
	if err != nil {
		return err
	}
	*r = sr
	return nil
}

func StartRules() []StartRule {
	return []StartRule{TopTypeExpr, NamepathExpr, BroadNamepathExpr, ExternalNameExpr, ModuleNameExpr}
}
