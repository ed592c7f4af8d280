package viz

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Track   lipgloss.Color
	Marks   lipgloss.Color
	Object  lipgloss.Color
	Samples lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Track:   lipgloss.Color("#444466"),
		Marks:   lipgloss.Color("#00ffff"),
		Object:  lipgloss.Color("#ff00ff"),
		Samples: lipgloss.Color("#ffff00"),
		Muted:   lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Track:   lipgloss.Color("#005500"),
		Marks:   lipgloss.Color("#00cc00"),
		Object:  lipgloss.Color("#88ff88"),
		Samples: lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Track:   lipgloss.Color("#888888"),
		Marks:   lipgloss.Color("#cccccc"),
		Object:  lipgloss.Color("#0088ff"),
		Samples: lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
	}

	Themes = []Theme{ThemeCyberpunk, ThemeRetroGreen, ThemeMinimal}
)


// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
