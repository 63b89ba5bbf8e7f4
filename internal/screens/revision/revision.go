// Package revision implements the targeted revision screen: a focused
// recap generated from the learner's weak areas.
package revision

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/markdown"
	"github.com/learnsphere/learnsphere-cli/internal/router"
	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/layout"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

type revisionMsg struct {
	ReqID    int
	Material string
	Err      error
}

// RevisionScreen fetches and displays revision material. The material
// is re-generated on every visit so it always reflects the latest
// evaluation's weak areas.
type RevisionScreen struct {
	client *api.Client
	store  *state.Store

	loader   components.Loader
	loading  bool
	reqID    int
	errMsg   string
	material string
	rendered []string
	offset   int
	lastW    int
}

var _ screen.Screen = (*RevisionScreen)(nil)
var _ screen.KeyHintProvider = (*RevisionScreen)(nil)

// New creates the revision screen.
func New(client *api.Client, store *state.Store) *RevisionScreen {
	return &RevisionScreen{client: client, store: store}
}

func (r *RevisionScreen) Init() tea.Cmd {
	r.errMsg = ""
	r.offset = 0
	return r.fetch()
}

func (r *RevisionScreen) Title() string {
	return "Revision"
}

func (r *RevisionScreen) KeyHints() []layout.KeyHint {
	if r.loading {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "R", Description: "Retake quiz"},
		{Key: "Esc", Description: "Back to results"},
	}
}

func (r *RevisionScreen) fetch() tea.Cmd {
	topic := r.store.CurrentTopicTitle()
	if topic == "" {
		r.errMsg = "Take a quiz first."
		return nil
	}
	r.loading = true
	r.reqID++
	id := r.reqID
	level := r.store.Level()
	weak := r.store.WeakAreas()

	r.loader = components.NewLoader("Building your revision notes...")
	return tea.Batch(r.loader.Init(), func() tea.Msg {
		material, err := r.client.Revision(context.Background(), topic, level, weak)
		return revisionMsg{ReqID: id, Material: material, Err: err}
	})
}

func (r *RevisionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case revisionMsg:
		if msg.ReqID != r.reqID {
			return r, nil
		}
		r.loading = false
		if msg.Err != nil {
			r.errMsg = "Could not build revision notes. Press Esc to go back."
			return r, nil
		}
		r.material = msg.Material
		r.rendered = nil
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if r.offset > 0 {
				r.offset--
			}
		case "down", "j":
			r.offset++
		case "r", "R":
			if !r.loading {
				r.store.ResetQuiz()
				return r, router.GoTo(router.SectionQuiz)
			}
		case "esc":
			return r, router.GoTo(router.SectionFeedback)
		}
		return r, nil
	}

	if r.loading {
		var cmd tea.Cmd
		r.loader, cmd = r.loader.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *RevisionScreen) View(width, height int) string {
	if r.loading {
		return r.loader.View(width, height)
	}
	if r.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(r.errMsg))
	}
	if r.material == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No revision material."))
	}

	bodyWidth := min(width-6, 90)
	if r.rendered == nil || r.lastW != bodyWidth {
		header := ""
		if weak := r.store.WeakAreas(); len(weak) > 0 {
			header = lipgloss.NewStyle().Foreground(theme.Accent).
				Render("🎯 Focused on: "+strings.Join(weak, ", ")) + "\n\n"
		}
		r.rendered = strings.Split(header+markdown.Render(r.material, bodyWidth), "\n")
		r.lastW = bodyWidth
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(r.rendered) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if r.offset > maxOffset {
		r.offset = maxOffset
	}
	end := r.offset + visible
	if end > len(r.rendered) {
		end = len(r.rendered)
	}

	body := strings.Join(r.rendered[r.offset:end], "\n")
	if maxOffset > 0 {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("— %d%% —", 100*r.offset/maxOffset))
	}
	return lipgloss.NewStyle().Padding(1, 3).Render(body)
}
