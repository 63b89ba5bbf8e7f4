package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// Sidebar is the roadmap progress panel shown alongside the flow on
// wide terminals.
type Sidebar struct {
	Topics       []api.Topic
	IsDone       func(title string) bool
	CurrentTitle string
	XP           int
	Badges       []string
}

// View renders the sidebar at the given size.
func (s Sidebar) View(width, height int) string {
	inner := width - 4
	if inner < 16 {
		inner = 16
	}

	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("🗺  Roadmap")
	lines := []string{header, ""}

	if len(s.Topics) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("No roadmap yet."))
	}
	for _, t := range s.Topics {
		mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if s.IsDone != nil && s.IsDone(t.Title) {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("●")
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		if t.Title == s.CurrentTitle {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, mark+" "+style.Width(inner-2).Render(t.Title))
	}

	lines = append(lines, "", XPBar{XP: s.XP, Width: inner}.View())
	if len(s.Badges) > 0 {
		lines = append(lines, "", lipgloss.NewStyle().Width(inner).Render(strings.Join(s.Badges, " ")))
	}

	body := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(theme.Border).
		Padding(1, 1).
		Width(width).
		Height(height).
		Render(body)
}
