// Package ui provides terminal output styling and printing helpers for
// the orgviz CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Brand colors, matching the palette of the rendered org chart.
var (
	// Primary brand color
	Indigo = lipgloss.Color("#818CF8")

	// Secondary colors
	Sky     = lipgloss.Color("#38BDF8")
	Violet  = lipgloss.Color("#C084FC")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#FBBF24")
	Green   = lipgloss.Color("#34D399")
	Gray    = lipgloss.Color("#64748B")
	DimGray = lipgloss.Color("#94A3B8")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Indigo)

	// SubtitleStyle for secondary headings
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E2E8F0"))

	// DimStyle for less important text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// LinkStyle for URLs and file paths
	LinkStyle = lipgloss.NewStyle().
			Foreground(Indigo).
			Underline(true)

	// CodeStyle for inline invocation tokens
	CodeStyle = lipgloss.NewStyle().
			Foreground(Violet)
)

// Box styles.
var (
	// BoxStyle for content boxes
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Indigo).
			Padding(0, 1)

	// BoxTitleStyle for box titles
	BoxTitleStyle = lipgloss.NewStyle().
			Foreground(Indigo).
			Bold(true)
)

// Table styles.
var (
	// TableHeaderStyle for table headers
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Bold(true)

	// TableCellStyle for table cells
	TableCellStyle = lipgloss.NewStyle()
)
