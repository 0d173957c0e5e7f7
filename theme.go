package mtext

import (
	"sort"
	"strings"
)

// Styles controls how a TextRenderer turns contexts into ANSI sequences.
type Styles struct {
	// Colors enables 24-bit foreground colors.
	Colors bool
	// Attributes enables bold, italic and stroke attributes.
	Attributes bool
	// Light draws ACI 7 as black for light terminal backgrounds.
	Light bool
}

// Theme provides named styles for the terminal preview.
type Theme interface {
	Name() string
	Styles() Styles
}

type theme struct {
	name   string
	styles Styles
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

var builtinThemes = map[string]Theme{
	"default": theme{name: "default", styles: Styles{Colors: true, Attributes: true}},
	"dark":    theme{name: "dark", styles: Styles{Colors: true, Attributes: true}},
	"light":   theme{name: "light", styles: Styles{Colors: true, Attributes: true, Light: true}},
	"mono":    theme{name: "mono", styles: Styles{Attributes: true}},
	"boring":  theme{name: "boring", styles: Styles{}},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
