package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// XPPerLevel is the XP span of one learner level.
const XPPerLevel = 150

// XPBar displays level progress derived from total XP: the bar fills
// with XP modulo the per-level span.
type XPBar struct {
	XP    int
	Width int
}

// LevelProgress returns the fill fraction for the current level.
func (x XPBar) LevelProgress() float64 {
	return float64(x.XP%XPPerLevel) / float64(XPPerLevel)
}

// View renders the XP bar with the raw total alongside.
func (x XPBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("⚡ %d XP", x.XP))

	barWidth := x.Width - lipgloss.Width(label) - 2
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * x.LevelProgress())
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return label + "  " + bar
}
