package terminal

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	muted  = lipgloss.AdaptiveColor{Light: "#8E8E8E", Dark: "#626262"}
	male   = lipgloss.AdaptiveColor{Light: "#1F6FEB", Dark: "#58A6FF"}
	female = lipgloss.AdaptiveColor{Light: "#BF3989", Dark: "#F778BA"}

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(muted)
)

// genderStyle colours a gender name
func genderStyle(gender string) lipgloss.Style {
	switch gender {
	case "male":
		return lipgloss.NewStyle().Foreground(male)
	case "female":
		return lipgloss.NewStyle().Foreground(female)
	default:
		return labelStyle
	}
}
