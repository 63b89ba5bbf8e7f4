package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with LearnSphere styling. Used for
// the chat input and the auth form fields.
type TextInput struct {
	Model  textinput.Model
	Label  string
	masked bool
	errMsg string
}

// NewTextInput creates a new styled text input.
func NewTextInput(label, placeholder string, masked bool) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if masked {
		ti.EchoMode = textinput.EchoPassword
	}
	return TextInput{Model: ti, Label: label, masked: masked}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the labeled input, with an inline error line when set.
func (t TextInput) View() string {
	var out string
	if t.Label != "" {
		out += lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Label) + "\n"
	}
	out += t.Model.View()
	if t.errMsg != "" {
		out += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(t.errMsg)
	}
	return out
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// SetValue replaces the input value, placing the cursor at the end.
func (t *TextInput) SetValue(v string) {
	t.Model.SetValue(v)
	t.Model.CursorEnd()
}

// Reset clears the input value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}

// SetError attaches an inline error message.
func (t *TextInput) SetError(msg string) {
	t.errMsg = msg
}

// ClearError removes the inline error message.
func (t *TextInput) ClearError() {
	t.errMsg = ""
}

// Focus gives the input keyboard focus.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur removes keyboard focus.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input has keyboard focus.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}
