package viz

import "github.com/charmbracelet/lipgloss"

// Theme colors style the UI chrome around the canvas. The sphere's own
// shading is fixed by the renderer and does not follow the theme.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
}

var (
	ThemeSlate = Theme{
		Name:    "slate",
		Primary: lipgloss.Color("#8fb4d8"),
		Accent:  lipgloss.Color("#e0a458"),
		Text:    lipgloss.Color("#d8dee9"),
		Muted:   lipgloss.Color("#5c6773"),
		Border:  lipgloss.Color("#3b4252"),
	}

	ThemePhosphor = Theme{
		Name:    "phosphor",
		Primary: lipgloss.Color("#00ff66"),
		Accent:  lipgloss.Color("#aaffcc"),
		Text:    lipgloss.Color("#00dd55"),
		Muted:   lipgloss.Color("#005522"),
		Border:  lipgloss.Color("#004411"),
	}

	ThemePaper = Theme{
		Name:    "paper",
		Primary: lipgloss.Color("#444444"),
		Accent:  lipgloss.Color("#aa3322"),
		Text:    lipgloss.Color("#222222"),
		Muted:   lipgloss.Color("#999999"),
		Border:  lipgloss.Color("#bbbbbb"),
	}

	ThemeNeon = Theme{
		Name:    "neon",
		Primary: lipgloss.Color("#ff2fd6"),
		Accent:  lipgloss.Color("#2fffe6"),
		Text:    lipgloss.Color("#f0f0ff"),
		Muted:   lipgloss.Color("#6655aa"),
		Border:  lipgloss.Color("#44337a"),
	}

	CurrentTheme = ThemeSlate

	Themes = []Theme{ThemeSlate, ThemePhosphor, ThemePaper, ThemeNeon}
)

// GetTheme returns a theme by name, falling back to slate.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeSlate
}

// SetTheme changes the active theme.
func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
