package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// toastDuration is how long a toast stays visible.
const toastDuration = 3 * time.Second

// ToastExpiredMsg is sent when a toast's display period ends.
type ToastExpiredMsg struct {
	ID int
}

// ShowToastMsg asks the root model to display a toast.
type ShowToastMsg struct {
	Text string
}

// ShowToast returns a command that raises a toast.
func ShowToast(text string) tea.Cmd {
	return func() tea.Msg { return ShowToastMsg{Text: text} }
}

// Toast is a transient notification line, independent of app state.
// Showing a new toast replaces the previous one.
type Toast struct {
	id      int
	message string
	visible bool
}

// Show displays a message and returns the expiry command.
func (t *Toast) Show(message string) tea.Cmd {
	t.id++
	t.message = message
	t.visible = true

	id := t.id
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Update hides the toast when its own expiry message arrives. Expiry
// of an already-replaced toast is ignored.
func (t *Toast) Update(msg tea.Msg) {
	if exp, ok := msg.(ToastExpiredMsg); ok && exp.ID == t.id {
		t.visible = false
	}
}

// Visible reports whether a toast is currently shown.
func (t *Toast) Visible() bool {
	return t.visible
}

// View renders the toast centered over the given width, or "" when
// hidden.
func (t *Toast) View(width int) string {
	if !t.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Background(theme.BgCard).
		Foreground(theme.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 2).
		Render(t.message)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
