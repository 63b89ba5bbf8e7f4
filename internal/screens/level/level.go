// Package level implements the experience level selection screen, the
// entry point of the learning flow.
package level

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/router"
	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/layout"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// LevelScreen lets the learner pick Beginner, Intermediate, or
// Advanced. Picking a level invalidates any previously generated
// roadmap.
type LevelScreen struct {
	store *state.Store
	list  components.CardList
}

var _ screen.Screen = (*LevelScreen)(nil)
var _ screen.KeyHintProvider = (*LevelScreen)(nil)

var levelCards = []components.Card{
	{Icon: "🌱", Title: string(api.LevelBeginner), Desc: "New to programming. Start from the very basics."},
	{Icon: "🌿", Title: string(api.LevelIntermediate), Desc: "Comfortable with fundamentals. Ready for more."},
	{Icon: "🌳", Title: string(api.LevelAdvanced), Desc: "Experienced. Dive into the deep topics."},
}

// New creates the level screen.
func New(store *state.Store) *LevelScreen {
	return &LevelScreen{store: store}
}

func (l *LevelScreen) Init() tea.Cmd {
	l.list = components.NewCardList(levelCards)
	// Preselect the stored level so re-entry shows where the learner is.
	for i, lvl := range api.AllLevels() {
		if lvl == l.store.Level() {
			l.list.Selected = i
		}
	}
	return nil
}

func (l *LevelScreen) Title() string {
	return "Choose Your Level"
}

func (l *LevelScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
	}
}

func (l *LevelScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.list, cmd = l.list.Update(msg)
	if l.list.Chosen >= 0 {
		level := api.AllLevels()[l.list.Chosen]
		l.list.Chosen = -1
		l.store.SetLevel(level)
		return l, router.GoTo(router.SectionRoadmap)
	}
	return l, cmd
}

func (l *LevelScreen) View(width, height int) string {
	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("How much programming experience do you have?")

	body := lipgloss.JoinVertical(lipgloss.Left,
		prompt,
		"",
		l.list.View(min(width-4, 64)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
