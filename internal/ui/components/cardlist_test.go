package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func keyPress(s string) tea.Msg {
	switch s {
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	default:
		return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
	}
}

func TestCardListNavigationClamps(t *testing.T) {
	list := NewCardList([]Card{{Title: "a"}, {Title: "b"}})

	list, _ = list.Update(keyPress("up"))
	assert.Equal(t, 0, list.Selected, "cursor stays on the first card")

	list, _ = list.Update(keyPress("down"))
	list, _ = list.Update(keyPress("down"))
	assert.Equal(t, 1, list.Selected, "cursor stays on the last card")
}

func TestCardListEnterMarksChosen(t *testing.T) {
	list := NewCardList([]Card{{Title: "a"}, {Title: "b"}})
	assert.Equal(t, -1, list.Chosen)

	list, _ = list.Update(keyPress("down"))
	list, _ = list.Update(keyPress("enter"))

	assert.Equal(t, 1, list.Chosen)
}

func TestCardListDoneOverridesIcon(t *testing.T) {
	list := NewCardList([]Card{{Icon: "📘", Title: "Variables", Done: true, Tag: "Review"}})
	out := list.View(60)
	assert.Contains(t, out, "✅")
	assert.Contains(t, out, "[Review]")
	assert.NotContains(t, out, "📘")
}
