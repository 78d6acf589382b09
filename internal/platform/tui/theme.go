package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
)

// Theme maps screen colors to lipgloss styles. Tile shade buckets
// resolve to a ramp of one hue: low buckets are near-white, the last
// bucket is the fully saturated win color.
type Theme struct {
	Name string

	ramp  [core.ShadeCount]lipgloss.Style
	named map[core.Color]lipgloss.Style
}

// Style returns the lipgloss style for a screen color.
func (t *Theme) Style(c core.Color) lipgloss.Style {
	if n, ok := core.ShadeIndex(c); ok {
		return t.ramp[n]
	}
	if style, ok := t.named[c]; ok {
		return style
	}
	return t.named[core.ColorDefault]
}

// namedStyles are the chrome colors shared by all themes.
func namedStyles() map[core.Color]lipgloss.Style {
	return map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// newTheme builds a theme from a ramp of ANSI 256-color codes, one per
// shade bucket from lightest to most saturated.
func newTheme(name string, ramp [core.ShadeCount]string) Theme {
	t := Theme{
		Name:  name,
		named: namedStyles(),
	}
	for i, code := range ramp {
		t.ramp[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return t
}

// BlueTheme returns the default blue tile theme.
func BlueTheme() Theme {
	return newTheme("blue", [core.ShadeCount]string{
		"231", "231", "189", "189", "147", "147", "105", "105", "63", "63", "21",
	})
}

// RedTheme returns the red tile theme.
func RedTheme() Theme {
	return newTheme("red", [core.ShadeCount]string{
		"231", "231", "224", "224", "217", "217", "210", "210", "203", "203", "196",
	})
}

// GreenTheme returns the green tile theme.
func GreenTheme() Theme {
	return newTheme("green", [core.ShadeCount]string{
		"231", "231", "194", "194", "157", "157", "120", "120", "83", "83", "46",
	})
}

// Themes returns all available themes in presentation order.
func Themes() []Theme {
	return []Theme{BlueTheme(), RedTheme(), GreenTheme()}
}

// ThemeByName looks up a theme by its name, case-insensitively.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes() {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// Global theme variable (can be changed at runtime)
var currentTheme = BlueTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	currentTheme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return currentTheme
}
