package meta

import (
	"github.com/charmbracelet/lipgloss"
)

var StatusLineStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("240")).
	Foreground(lipgloss.Color("252"))

var StatusLineErrorStyle = StatusLineStyle.
	Foreground(lipgloss.Color("9"))

var CommandStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#00FFFF")).
	Background(lipgloss.Color("240"))

func ModeBadgeStyle(background lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(background).
		Padding(0, 1)
}

var NormalBadge = ModeBadgeStyle(lipgloss.Color("10"))
var InsertBadge = ModeBadgeStyle(lipgloss.Color("12"))

var ActiveGroupStyle = StatusLineStyle.
	Foreground(lipgloss.Color("14")).
	Bold(true)

var ModalStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Underline(true)

var SelectedCellStyle = lipgloss.NewStyle().
	Reverse(true)

var MatchHighlightStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("11"))

var DimStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("243"))

func BodyStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height)
}
