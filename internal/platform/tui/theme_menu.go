package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/t2048/internal/core"
)

// ThemeModel lets users choose a color theme before the game starts.
type ThemeModel struct {
	themes    []Theme
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *Theme
	quitting  bool
}

// NewThemeModel creates a new theme selection model. The cursor starts
// on defaultName when it names a known theme.
func NewThemeModel(width, height int, defaultName string) ThemeModel {
	m := ThemeModel{
		themes:    Themes(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, t := range m.themes {
		if strings.EqualFold(t.Name, defaultName) {
			m.cursor = i
			break
		}
	}
	return m
}

// Init initializes the model.
func (m ThemeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ThemeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ThemeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Hotkeys pick a theme directly
	switch msg.String() {
	case "b":
		return m.choose("blue")
	case "r":
		return m.choose("red")
	case "g":
		return m.choose("green")
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.themes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		theme := m.themes[m.cursor]
		m.selected = &theme
		return m, tea.Quit
	}

	return m, nil
}

func (m ThemeModel) choose(name string) (tea.Model, tea.Cmd) {
	theme, ok := ThemeByName(name)
	if !ok {
		return m, nil
	}
	m.selected = &theme
	return m, tea.Quit
}

// View renders the theme selection.
func (m ThemeModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("2 0 4 8", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select color theme:", m.width))
	b.WriteString("\n\n")

	for i, theme := range m.themes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		// Preview the saturated end of the ramp on the theme name
		name := strings.ToUpper(theme.Name[:1]) + theme.Name[1:]
		label := theme.ramp[core.ShadeCount-1].Render(name)
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("B/R/G: Quick select  |  Enter: Select  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen theme, or nil if still choosing or quit.
func (m ThemeModel) Selected() *Theme {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ThemeModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunThemeSelector runs the theme selection screen.
// Returns nil if the user quit instead of choosing.
func RunThemeSelector(cfg core.RuntimeConfig, defaultName string) (*Theme, error) {
	model := NewThemeModel(cfg.ScreenW, cfg.ScreenH, defaultName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(ThemeModel)
	if !ok {
		return nil, nil
	}

	return m.Selected(), nil
}
