package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// Loader is the loading placeholder shown while a request is pending:
// an animated spinner above a fixed status line.
type Loader struct {
	Text    string
	spinner spinner.Model
}

// NewLoader creates a loader with the given status text.
func NewLoader(text string) Loader {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Loader{Text: text, spinner: sp}
}

// Init starts the spinner animation.
func (l Loader) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner animation.
func (l Loader) Update(msg tea.Msg) (Loader, tea.Cmd) {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// View renders the spinner and status text centered in the area.
func (l Loader) View(width, height int) string {
	content := l.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(l.Text)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
