// Package roadmap implements the topic roadmap screen: it fetches the
// generated topic list for the chosen level and lets the learner pick
// the topic to study next.
package roadmap

import (
	"context"
	"fmt"

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

// roadmapMsg delivers the fetched roadmap. ReqID ties the response to
// the request that started it so a stale fetch cannot clobber a newer
// one.
type roadmapMsg struct {
	ReqID  int
	Topics []api.Topic
	Err    error
}

// RoadmapScreen shows the level's topics as selectable cards.
type RoadmapScreen struct {
	client *api.Client
	store  *state.Store

	list    components.CardList
	loader  components.Loader
	loading bool
	reqID   int
	errMsg  string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates the roadmap screen.
func New(client *api.Client, store *state.Store) *RoadmapScreen {
	return &RoadmapScreen{client: client, store: store}
}

func (r *RoadmapScreen) Init() tea.Cmd {
	r.errMsg = ""
	if topics := r.store.Roadmap(); len(topics) > 0 {
		r.buildList(topics)
		return nil
	}
	return r.fetch()
}

func (r *RoadmapScreen) Title() string {
	return "Your Learning Roadmap"
}

func (r *RoadmapScreen) KeyHints() []layout.KeyHint {
	if r.loading {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Move"},
		{Key: "Enter", Description: "Start topic"},
		{Key: "R", Description: "Regenerate"},
		{Key: "Esc", Description: "Change level"},
	}
}

// fetch requests a fresh roadmap for the stored level.
func (r *RoadmapScreen) fetch() tea.Cmd {
	if r.store.Level() == "" {
		r.errMsg = "Pick a level first."
		return nil
	}
	r.loading = true
	r.reqID++
	id := r.reqID
	level := r.store.Level()

	r.loader = components.NewLoader("Generating your roadmap...")
	return tea.Batch(r.loader.Init(), func() tea.Msg {
		topics, err := r.client.Roadmap(context.Background(), level)
		return roadmapMsg{ReqID: id, Topics: topics, Err: err}
	})
}

func (r *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapMsg:
		if msg.ReqID != r.reqID {
			return r, nil
		}
		r.loading = false
		if msg.Err != nil {
			r.errMsg = "Could not generate a roadmap. Press R to retry."
			return r, nil
		}
		r.store.SetRoadmap(msg.Topics)
		r.buildList(msg.Topics)
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			if !r.loading {
				r.store.SetRoadmap(nil)
				return r, r.fetch()
			}
			return r, nil
		case "esc":
			return r, router.GoTo(router.SectionLevel)
		}
	}

	if r.loading {
		var cmd tea.Cmd
		r.loader, cmd = r.loader.Update(msg)
		return r, cmd
	}

	var cmd tea.Cmd
	r.list, cmd = r.list.Update(msg)
	if r.list.Chosen >= 0 {
		idx := r.list.Chosen
		r.list.Chosen = -1
		topics := r.store.Roadmap()
		if idx < len(topics) {
			t := topics[idx]
			r.store.SelectTopic(t.ID, t.Title)
			return r, router.GoTo(router.SectionStyle)
		}
	}
	return r, cmd
}

// buildList turns roadmap topics into cards, tagging completed topics
// so revisiting reads as Review rather than Start.
func (r *RoadmapScreen) buildList(topics []api.Topic) {
	cards := make([]components.Card, len(topics))
	for i, t := range topics {
		tag := "Start"
		done := r.store.IsCompleted(t.Title)
		if done {
			tag = "Review"
		}
		cards[i] = components.Card{
			Icon:  t.Icon,
			Title: t.Title,
			Desc:  t.Description,
			Tag:   tag,
			Done:  done,
		}
	}
	r.list = components.NewCardList(cards)
}

func (r *RoadmapScreen) View(width, height int) string {
	if r.loading {
		return r.loader.View(width, height)
	}
	if r.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(r.errMsg))
	}

	topics := r.store.Roadmap()
	if len(topics) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No topics found."))
	}

	sub := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(string(r.store.Level()) + " path · " + plural(len(topics), "topic"))

	parts := []string{sub}
	if done := r.store.TopicsCompleted(); len(done) > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).
			Render("✅ Completed: "+plural(len(done), "topic")))
	}
	parts = append(parts, "", r.list.View(min(width-4, 70)))

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
