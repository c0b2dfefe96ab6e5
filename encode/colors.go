package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/SaadRayh/Project-Structure-Generator/plan"
)

type Colorable struct {
	Kind plan.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	NameColor ColorAttr = iota
	RootColor
	SummaryColor
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
	for _, k := range plan.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: RootColor,
		}
		colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
		able.Attr = SummaryColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	colors.Map[Colorable{Kind: plan.KindDir, Attr: NameColor}] = color.BlueString
	colors.Map[Colorable{Kind: plan.KindFile, Attr: NameColor}] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k plan.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k plan.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
