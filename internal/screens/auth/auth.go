// Package auth implements the login and registration forms shown when
// no valid session cookie is present.
package auth

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/layout"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// DoneMsg signals a successful sign-in. Progress carries the server
// progress snapshot fetched right after authentication; it is nil when
// the fetch failed, which is not fatal.
type DoneMsg struct {
	Result   *api.AuthResult
	Progress *api.Progress
}

type authResultMsg struct {
	ReqID    int
	Result   *api.AuthResult
	Progress *api.Progress
	Err      error
}

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

// AuthScreen is the combined login/register form.
type AuthScreen struct {
	client *api.Client

	mode     mode
	username components.TextInput
	password components.TextInput
	email    components.TextInput
	focus    int
	loading  bool
	reqID    int
	errMsg   string
	loader   components.Loader
}

var _ screen.Screen = (*AuthScreen)(nil)
var _ screen.KeyHintProvider = (*AuthScreen)(nil)

// New creates the auth screen.
func New(client *api.Client) *AuthScreen {
	return &AuthScreen{client: client}
}

func (a *AuthScreen) Init() tea.Cmd {
	a.username = components.NewTextInput("Username", "your username", false)
	a.password = components.NewTextInput("Password", "", true)
	a.email = components.NewTextInput("Email", "you@example.com", false)
	a.focus = 0
	a.errMsg = ""
	a.password.Blur()
	a.email.Blur()
	return a.username.Focus()
}

func (a *AuthScreen) Title() string {
	if a.mode == modeRegister {
		return "Create Account"
	}
	return "Welcome Back"
}

func (a *AuthScreen) KeyHints() []layout.KeyHint {
	if a.loading {
		return nil
	}
	toggle := "Register instead"
	if a.mode == modeRegister {
		toggle = "Login instead"
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+R", Description: toggle},
	}
}

// fieldCount is 2 for login, 3 for register.
func (a *AuthScreen) fieldCount() int {
	if a.mode == modeRegister {
		return 3
	}
	return 2
}

func (a *AuthScreen) focused() *components.TextInput {
	switch a.focus {
	case 0:
		return &a.username
	case 1:
		return &a.password
	default:
		return &a.email
	}
}

func (a *AuthScreen) setFocus(idx int) tea.Cmd {
	a.username.Blur()
	a.password.Blur()
	a.email.Blur()
	a.focus = idx
	return a.focused().Focus()
}

func (a *AuthScreen) submit() tea.Cmd {
	username := strings.TrimSpace(a.username.Value())
	password := a.password.Value()
	email := strings.TrimSpace(a.email.Value())

	a.username.ClearError()
	a.password.ClearError()
	a.email.ClearError()
	valid := true
	if username == "" {
		a.username.SetError("Username is required")
		valid = false
	}
	if password == "" {
		a.password.SetError("Password is required")
		valid = false
	}
	if a.mode == modeRegister && email == "" {
		a.email.SetError("Email is required")
		valid = false
	}
	if !valid {
		return nil
	}

	a.loading = true
	a.errMsg = ""
	a.reqID++
	id := a.reqID
	m := a.mode

	a.loader = components.NewLoader("Signing you in...")
	return tea.Batch(a.loader.Init(), func() tea.Msg {
		ctx := context.Background()
		var result *api.AuthResult
		var err error
		if m == modeRegister {
			result, err = a.client.Register(ctx, username, password, email)
		} else {
			result, err = a.client.Login(ctx, username, password)
		}
		if err != nil {
			return authResultMsg{ReqID: id, Err: err}
		}
		if !result.Success {
			return authResultMsg{ReqID: id, Result: result}
		}

		// Best effort: seed the session with server progress.
		progress, _ := a.client.Progress(ctx)
		return authResultMsg{ReqID: id, Result: result, Progress: progress}
	})
}

func (a *AuthScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		if msg.ReqID != a.reqID {
			return a, nil
		}
		a.loading = false
		if msg.Err != nil {
			a.errMsg = "Could not reach the server. Try again."
			return a, nil
		}
		if !msg.Result.Success {
			a.errMsg = msg.Result.Error
			if a.errMsg == "" {
				a.errMsg = "Sign-in failed."
			}
			return a, nil
		}
		result := msg.Result
		progress := msg.Progress
		return a, func() tea.Msg { return DoneMsg{Result: result, Progress: progress} }

	case tea.KeyMsg:
		if a.loading {
			return a, nil
		}
		switch msg.String() {
		case "tab", "down":
			return a, a.setFocus((a.focus + 1) % a.fieldCount())
		case "shift+tab", "up":
			return a, a.setFocus((a.focus - 1 + a.fieldCount()) % a.fieldCount())
		case "enter":
			return a, a.submit()
		case "ctrl+r":
			if a.mode == modeLogin {
				a.mode = modeRegister
			} else {
				a.mode = modeLogin
				if a.focus >= a.fieldCount() {
					return a, a.setFocus(0)
				}
			}
			a.errMsg = ""
			return a, nil
		}
	}

	if a.loading {
		var cmd tea.Cmd
		a.loader, cmd = a.loader.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.focus {
	case 0:
		a.username, cmd = a.username.Update(msg)
	case 1:
		a.password, cmd = a.password.Update(msg)
	default:
		a.email, cmd = a.email.Update(msg)
	}
	return a, cmd
}

func (a *AuthScreen) View(width, height int) string {
	if a.loading {
		return a.loader.View(width, height)
	}

	fields := []string{a.username.View(), "", a.password.View()}
	if a.mode == modeRegister {
		fields = append(fields, "", a.email.View())
	}

	if a.errMsg != "" {
		fields = append(fields, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg))
	}

	action := "Don't have an account? Ctrl+R to register."
	if a.mode == modeRegister {
		action = "Already registered? Ctrl+R to log in."
	}
	fields = append(fields, "",
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(action))

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Width(min(width-4, 52)).
		Render(lipgloss.JoinVertical(lipgloss.Left, fields...))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}
