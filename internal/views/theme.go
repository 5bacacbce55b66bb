package views

import "github.com/charmbracelet/lipgloss"

// Theme is the full style palette for one of the two persisted color schemes.
type Theme struct {
	Name   string
	Header lipgloss.Style
	Panel  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Footer lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Done   lipgloss.Style
	Alert  lipgloss.Style
	// Heat indexes the five heatmap intensity levels, 0 (empty) to 4 (full).
	Heat [5]lipgloss.Style
}

func DarkTheme() Theme {
	return Theme{
		Name:   "dark",
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Done:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Strikethrough(true),
		Alert:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2).Foreground(lipgloss.Color("11")),
		Heat: [5]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		},
	}
}

func LightTheme() Theme {
	return Theme{
		Name:   "light",
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Done:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Strikethrough(true),
		Alert:  lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2).Foreground(lipgloss.Color("3")),
		Heat: [5]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("156")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("118")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		},
	}
}

// ThemeByName falls back to dark for unknown names, matching the persisted
// flag's normalization.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
