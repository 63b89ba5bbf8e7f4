package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette for LearnSphere's dark glass look.
var (
	Primary   = lipgloss.Color("#4FC3F7") // Sky Blue
	Secondary = lipgloss.Color("#B388FF") // Soft Purple
	Accent    = lipgloss.Color("#FFAB40") // Amber
	Success   = lipgloss.Color("#69F0AE") // Mint Green
	Error     = lipgloss.Color("#FF5252") // Red
	Pink      = lipgloss.Color("#F48FB1") // Rose
	Text      = lipgloss.Color("#ECEFF4") // Near White
	TextDim   = lipgloss.Color("#8A93A6") // Muted Slate
	BgDark    = lipgloss.Color("#0A0A1A") // Deep Night
	BgCard    = lipgloss.Color("#16162B") // Card Navy
	Border    = lipgloss.Color("#2E2E4A") // Dim Violet
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	StepCompleted = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Success).
			Bold(true)

	StepActive = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Primary).
			Bold(true)

	StepPending = lipgloss.NewStyle().
			Foreground(TextDim).
			Background(BgCard)

	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
