// Package content implements the learning content screen: generated
// material for the selected topic, rendered per the chosen style.
package content

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

type contentMsg struct {
	ReqID   int
	Content *api.Content
	Err     error
}

// ContentScreen fetches and displays the lesson, with line scrolling
// for material longer than the viewport.
type ContentScreen struct {
	client *api.Client
	store  *state.Store

	loader  components.Loader
	loading bool
	reqID   int
	errMsg  string

	rendered []string // wrapped lines of the rendered lesson
	offset   int
	lastW    int
}

var _ screen.Screen = (*ContentScreen)(nil)
var _ screen.KeyHintProvider = (*ContentScreen)(nil)

// New creates the content screen.
func New(client *api.Client, store *state.Store) *ContentScreen {
	return &ContentScreen{client: client, store: store}
}

func (c *ContentScreen) Init() tea.Cmd {
	c.errMsg = ""
	c.offset = 0
	if c.store.Content() != nil {
		c.rendered = nil // re-render at current width
		return nil
	}
	return c.fetch()
}

func (c *ContentScreen) Title() string {
	if t := c.store.CurrentTopicTitle(); t != "" {
		return t
	}
	return "Learn"
}

func (c *ContentScreen) KeyHints() []layout.KeyHint {
	if c.loading {
		return nil
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "Q", Description: "Take quiz"},
		{Key: "R", Description: "Regenerate"},
		{Key: "Esc", Description: "Change style"},
	}
}

func (c *ContentScreen) fetch() tea.Cmd {
	topic := c.store.CurrentTopicTitle()
	if topic == "" || c.store.LearningStyle() == "" {
		c.errMsg = "Pick a topic and learning style first."
		return nil
	}

	c.loading = true
	c.reqID++
	id := c.reqID
	level := c.store.Level()
	style := c.store.LearningStyle()

	c.loader = components.NewLoader(fmt.Sprintf("Generating your %s content...", strings.ToLower(string(style))))
	return tea.Batch(c.loader.Init(), func() tea.Msg {
		content, err := c.client.Content(context.Background(), topic, level, style)
		return contentMsg{ReqID: id, Content: content, Err: err}
	})
}

func (c *ContentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case contentMsg:
		if msg.ReqID != c.reqID {
			return c, nil
		}
		c.loading = false
		if msg.Err != nil {
			c.errMsg = "Could not load the lesson. Press R to retry."
			return c, nil
		}
		c.store.SetContent(msg.Content)
		c.rendered = nil
		c.offset = 0
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if c.offset > 0 {
				c.offset--
			}
		case "down", "j":
			c.offset++
		case "pgup":
			c.offset -= 10
			if c.offset < 0 {
				c.offset = 0
			}
		case "pgdown":
			c.offset += 10
		case "q", "Q":
			if !c.loading && c.store.Content() != nil {
				return c, router.GoTo(router.SectionQuiz)
			}
		case "r", "R":
			if !c.loading {
				c.store.SetContent(nil)
				return c, c.fetch()
			}
		case "esc":
			return c, router.GoTo(router.SectionStyle)
		}
		return c, nil
	}

	if c.loading {
		var cmd tea.Cmd
		c.loader, cmd = c.loader.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ContentScreen) View(width, height int) string {
	if c.loading {
		return c.loader.View(width, height)
	}
	if c.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(c.errMsg))
	}
	content := c.store.Content()
	if content == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No lesson loaded."))
	}

	bodyWidth := min(width-6, 90)
	if c.rendered == nil || c.lastW != bodyWidth {
		c.rendered = strings.Split(c.renderContent(content, bodyWidth), "\n")
		c.lastW = bodyWidth
	}

	// Clamp the scroll window.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(c.rendered) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	end := c.offset + visible
	if end > len(c.rendered) {
		end = len(c.rendered)
	}

	body := strings.Join(c.rendered[c.offset:end], "\n")
	if maxOffset > 0 {
		pct := 100 * c.offset / maxOffset
		body += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("— %d%% —", pct))
	}

	return lipgloss.NewStyle().Padding(1, 3).Render(body)
}

// renderContent turns the payload into terminal text per content type.
func (c *ContentScreen) renderContent(content *api.Content, width int) string {
	var sections []string

	switch content.Type {
	case api.ContentAudio:
		// No narration file, no affordance.
		if content.AudioPath != "" {
			note := "🎧 This lesson has a narrated version. Saved at: " + content.AudioPath
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.Secondary).Render(note), "")
		}
	case api.ContentVisual:
		if len(content.Videos) > 0 {
			sections = append(sections, c.renderVideos(content.Videos, width), "")
		}
	}

	sections = append(sections, markdown.Render(content.Body, width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (c *ContentScreen) renderVideos(videos []api.Video, width int) string {
	header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("🎬 Recommended videos")
	lines := []string{header}
	for _, v := range videos {
		title := v.Title
		if title == "" {
			title = "Watch on YouTube"
		}
		label := "  ▶ " + title
		if v.IsSearchLink {
			label = "  🔍 " + title
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Text).Render(label),
			lipgloss.NewStyle().Foreground(theme.TextDim).PaddingLeft(4).Width(width).Render(v.URL),
		)
	}
	return strings.Join(lines, "\n")
}
