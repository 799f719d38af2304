package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortstep/internal/trace"
)

// Theme assigns a color to each role plus the chrome around the chart.
type Theme struct {
	Name       string
	Sorted     lipgloss.Color
	CurrentKey lipgloss.Color
	Comparing  lipgloss.Color
	Inserted   lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Sorted:     lipgloss.Color("#87ceeb"), // Sky blue
		CurrentKey: lipgloss.Color("#ff4444"),
		Comparing:  lipgloss.Color("#ffa500"), // Orange
		Inserted:   lipgloss.Color("#32cd32"), // Lime
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#222222"),
		Muted:      lipgloss.Color("#888888"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Sorted:     lipgloss.Color("#00ffff"),
		CurrentKey: lipgloss.Color("#ff00ff"),
		Comparing:  lipgloss.Color("#ffff00"),
		Inserted:   lipgloss.Color("#00ff00"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Sorted:     lipgloss.Color("#005500"),
		CurrentKey: lipgloss.Color("#ffff00"),
		Comparing:  lipgloss.Color("#88ff88"),
		Inserted:   lipgloss.Color("#00ff00"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Sorted:     lipgloss.Color("#0077be"),
		CurrentKey: lipgloss.Color("#ffd700"),
		Comparing:  lipgloss.Color("#ff4444"),
		Inserted:   lipgloss.Color("#00ff88"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Sorted:     lipgloss.Color("#8b6b8c"),
		CurrentKey: lipgloss.Color("#ff6b6b"), // Coral
		Comparing:  lipgloss.Color("#feca57"),
		Inserted:   lipgloss.Color("#5fd068"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// RoleColor returns the bar color for r.
func (t Theme) RoleColor(r trace.Role) lipgloss.Color {
	switch r {
	case trace.CurrentKey:
		return t.CurrentKey
	case trace.Comparing:
		return t.Comparing
	case trace.Inserted:
		return t.Inserted
	default:
		return t.Sorted
	}
}

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
