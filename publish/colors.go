package publish

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/jsdoctype/ast"
)

type Colorable struct {
	Type ast.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	KeywordColor
	FieldColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ast.Types() {
		able := Colorable{Type: t, Attr: KeywordColor}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ast.NameType
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Type = ast.NumberValueType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ast.StringValueType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = ast.FilePathType
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	able.Type = ast.AnyType
	colors.Map[able] = color.CyanString
	able.Type = ast.UnknownType
	colors.Map[able] = color.CyanString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color renders s in the colour for t and a.  A nil *Colors leaves s
// as is.
func (c *Colors) Color(t ast.Type, a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ast.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f != nil {
		return f
	}
	if c.Default == nil {
		return colorDefault
	}
	return c.Default
}
