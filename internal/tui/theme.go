package tui

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm, exam-room neutral
var (
	colorPrimary = lipgloss.Color("#0EA5E9") // Sky Blue
	colorAccent  = lipgloss.Color("#F59E0B") // Amber
	colorSuccess = lipgloss.Color("#22C55E") // Green
	colorError   = lipgloss.Color("#F43F5E") // Rose
	colorText    = lipgloss.Color("#F8FAFC") // White
	colorTextDim = lipgloss.Color("#94A3B8") // Slate
	colorBgCard  = lipgloss.Color("#1E293B") // Dark Slate
	colorBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleQuestion = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	styleDim = lipgloss.NewStyle().
			Foreground(colorTextDim)

	styleHint = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleUnselected = lipgloss.NewStyle().
			Foreground(colorText)

	styleCorrect = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleIncorrect = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	styleMarked = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleCard = lipgloss.NewStyle().
			Background(colorBgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)
)
