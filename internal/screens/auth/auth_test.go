package auth

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyFieldsGetInlineErrors(t *testing.T) {
	a := New(nil)
	a.Init()

	assert.Nil(t, a.submit(), "missing fields must not issue a request")
	view := a.View(80, 24)
	assert.Contains(t, view, "Username is required")
	assert.Contains(t, view, "Password is required")
}

func TestRegisterRequiresEmail(t *testing.T) {
	a := New(nil)
	a.Init()
	a.mode = modeRegister
	a.username.SetValue("dana")
	a.password.SetValue("secret")

	require.Nil(t, a.submit())
	assert.Contains(t, a.View(80, 24), "Email is required")
}

func TestModeToggleSwitchesForm(t *testing.T) {
	a := New(nil)
	a.Init()
	require.Equal(t, "Welcome Back", a.Title())
	assert.False(t, strings.Contains(a.View(80, 24), "Email"))

	a.Update(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})
	assert.Equal(t, "Create Account", a.Title())
	assert.Contains(t, a.View(80, 24), "Email")
}
