package icarus

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("#00FF00")
	colorYellow = lipgloss.Color("#FFFF00")
	colorRed    = lipgloss.Color("#FF0000")
	colorCyan   = lipgloss.Color("#00FFFF")
	colorGray   = lipgloss.Color("#666666")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	scoreHighStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGreen)

	scoreMidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	scoreLowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)
)

func renderScore(score int) string {
	style := scoreLowStyle
	switch {
	case score >= 70:
		style = scoreHighStyle
	case score >= 40:
		style = scoreMidStyle
	}
	return style.Render(strconv.Itoa(score))
}
