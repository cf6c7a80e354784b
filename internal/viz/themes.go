package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Hot       lipgloss.Color
	Cold      lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeFurnace = Theme{
		Name:      "furnace",
		Primary:   lipgloss.Color("#ff8800"),
		Secondary: lipgloss.Color("#ffcc66"),
		Hot:       lipgloss.Color("#ff4422"),
		Cold:      lipgloss.Color("#33aaff"),
		Text:      lipgloss.Color("#f5f5f5"),
		Muted:     lipgloss.Color("#777777"),
		Border:    lipgloss.Color("#553322"),
		Warning:   lipgloss.Color("#ff0044"),
	}

	ThemeCoolant = Theme{
		Name:      "coolant",
		Primary:   lipgloss.Color("#00ccff"),
		Secondary: lipgloss.Color("#88eeff"),
		Hot:       lipgloss.Color("#ff6b6b"),
		Cold:      lipgloss.Color("#00ff88"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Border:    lipgloss.Color("#224466"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Hot:       lipgloss.Color("#ffffff"),
		Cold:      lipgloss.Color("#aaaaaa"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Border:    lipgloss.Color("#444444"),
		Warning:   lipgloss.Color("#ffffff"),
	}

	CurrentTheme = ThemeFurnace

	Themes = []Theme{
		ThemeFurnace,
		ThemeCoolant,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to furnace.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeFurnace
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
}
