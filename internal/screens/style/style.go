// Package style implements the learning style selection screen, which
// governs what format the generated content takes.
package style

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

// StyleScreen lets the learner pick how the topic should be taught.
type StyleScreen struct {
	store *state.Store
	list  components.CardList
}

var _ screen.Screen = (*StyleScreen)(nil)
var _ screen.KeyHintProvider = (*StyleScreen)(nil)

var styleCards = []components.Card{
	{Icon: "📖", Title: string(api.StyleReading), Desc: "Structured written explanations with examples."},
	{Icon: "🎧", Title: string(api.StyleAuditory), Desc: "Narrated lessons you can listen to."},
	{Icon: "💻", Title: string(api.StyleKinesthetic), Desc: "Hands-on exercises and practice tasks."},
	{Icon: "🎨", Title: string(api.StyleVisual), Desc: "Video walkthroughs and diagrams."},
}

// New creates the style screen.
func New(store *state.Store) *StyleScreen {
	return &StyleScreen{store: store}
}

func (s *StyleScreen) Init() tea.Cmd {
	s.list = components.NewCardList(styleCards)
	for i, st := range api.AllStyles() {
		if st == s.store.LearningStyle() {
			s.list.Selected = i
		}
	}
	return nil
}

func (s *StyleScreen) Title() string {
	return "How Do You Learn Best?"
}

func (s *StyleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back to roadmap"},
	}
}

func (s *StyleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, router.GoTo(router.SectionRoadmap)
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	if s.list.Chosen >= 0 {
		st := api.AllStyles()[s.list.Chosen]
		s.list.Chosen = -1
		s.store.SetLearningStyle(st)
		return s, router.GoTo(router.SectionContent)
	}
	return s, cmd
}

func (s *StyleScreen) View(width, height int) string {
	topic := s.store.CurrentTopicTitle()
	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Pick a style for learning " + lipgloss.NewStyle().Foreground(theme.Primary).Render(topic))

	body := lipgloss.JoinVertical(lipgloss.Left,
		prompt,
		"",
		s.list.View(min(width-4, 64)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
