// Package chat implements the assistant overlay available from every
// section of the learning flow.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/markdown"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// historyWindow is how many transcript entries accompany each request.
const historyWindow = 6

// suggestionDisplayLen caps how many characters of a suggestion are
// shown. Selection always submits the full text.
const suggestionDisplayLen = 35

const welcomeText = "Hi! I'm your learning assistant. Ask me anything about what you're studying. 💡"

type replyMsg struct {
	ReqID int
	Reply *api.ChatReply
	Err   error
}

// Model is the chat overlay state. Transcript and mode live in the
// shared store so they survive section changes.
type Model struct {
	client *api.Client
	store  *state.Store

	input       components.TextInput
	thinking    bool
	reqID       int
	seeded      bool
	suggestions []string
	lastMedia   *api.ChatMedia
	errMsg      string
}

// New creates the chat overlay.
func New(client *api.Client, store *state.Store) *Model {
	m := &Model{client: client, store: store}
	m.input = components.NewTextInput("", "Ask me anything...", false)
	return m
}

// Open prepares the overlay for display. The first open seeds the
// transcript with the assistant's greeting.
func (m *Model) Open() tea.Cmd {
	if !m.seeded {
		m.seeded = true
		m.store.AppendChatMessage(api.RoleAssistant, welcomeText)
	}
	return tea.Batch(m.input.Init(), m.input.Focus())
}

// Close drops keyboard focus so keystrokes return to the flow.
func (m *Model) Close() {
	m.input.Blur()
}

// Thinking reports whether a reply is pending.
func (m *Model) Thinking() bool { return m.thinking }

// ask sends the question with the trailing transcript window as
// context. The window is captured before the question is appended; the
// question itself travels in its own field.
func (m *Model) ask(question string) tea.Cmd {
	hist := m.store.ChatHistory(historyWindow)
	history := make([]api.ChatMessage, len(hist))
	copy(history, hist)

	m.store.AppendChatMessage(api.RoleUser, question)
	m.thinking = true
	m.errMsg = ""
	m.suggestions = nil
	m.reqID++
	id := m.reqID

	req := api.ChatRequest{
		Question:     question,
		Level:        m.store.Level(),
		ContextTopic: m.store.CurrentTopicTitle(),
		History:      history,
		Mode:         m.store.ChatMode(),
	}
	return func() tea.Msg {
		reply, err := m.client.Chat(context.Background(), req)
		return replyMsg{ReqID: id, Reply: reply, Err: err}
	}
}

// Update handles overlay messages while the overlay is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.ReqID != m.reqID {
			return nil
		}
		m.thinking = false
		if msg.Err != nil {
			m.errMsg = "The assistant is unavailable right now."
			return nil
		}
		m.store.AppendChatMessage(api.RoleAssistant, msg.Reply.Text)
		m.lastMedia = msg.Reply.Media
		if len(msg.Reply.Suggestions) > 3 {
			m.suggestions = msg.Reply.Suggestions[:3]
		} else {
			m.suggestions = msg.Reply.Suggestions
		}
		return nil

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "enter":
			question := strings.TrimSpace(m.input.Value())
			if question == "" || m.thinking {
				return nil
			}
			m.input.Reset()
			return m.ask(question)
		case "ctrl+o":
			m.cycleMode()
			return nil
		case "alt+1", "alt+2", "alt+3":
			idx := int(key[len(key)-1] - '1')
			if idx < len(m.suggestions) && !m.thinking {
				return m.ask(m.suggestions[idx])
			}
			return nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// cycleMode advances to the next answer mode.
func (m *Model) cycleMode() {
	modes := api.AllChatModes()
	current := m.store.ChatMode()
	for i, mode := range modes {
		if mode == current {
			m.store.SetChatMode(modes[(i+1)%len(modes)])
			return
		}
	}
	m.store.SetChatMode(modes[0])
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Background(theme.BgCard).
			Padding(0, 1)
	userMsgStyle      = lipgloss.NewStyle().Foreground(theme.Primary)
	assistantMsgStyle = lipgloss.NewStyle().Foreground(theme.Text)
	modeStyle         = lipgloss.NewStyle().Foreground(theme.Accent)
)

// View renders the overlay panel at the given outer size.
func (m *Model) View(width, height int) string {
	innerWidth := width - 4
	if innerWidth < 24 {
		innerWidth = 24
	}

	title := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("💬 Assistant") +
		"  " + modeStyle.Render("["+string(m.store.ChatMode())+" · ctrl+o]")

	var bottom []string
	if m.errMsg != "" {
		bottom = append(bottom, lipgloss.NewStyle().Foreground(theme.Error).Render(m.errMsg))
	}
	if m.thinking {
		bottom = append(bottom, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("thinking..."))
	}
	for i, s := range m.suggestions {
		bottom = append(bottom, lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(fmt.Sprintf("  alt+%d %s", i+1, truncate(s, suggestionDisplayLen))))
	}
	bottom = append(bottom, m.input.View())

	bottomView := lipgloss.JoinVertical(lipgloss.Left, bottom...)
	transcriptHeight := height - 4 - lipgloss.Height(bottomView)
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.renderTranscript(innerWidth, transcriptHeight),
		"",
		bottomView,
	)
	return panelStyle.Width(width - 2).Render(body)
}

// renderTranscript shows the newest messages that fit.
func (m *Model) renderTranscript(width, height int) string {
	var lines []string
	for _, msg := range m.store.ChatMessages() {
		switch msg.Role {
		case api.RoleUser:
			lines = append(lines, userMsgStyle.Width(width).Render("You: "+msg.Content))
		default:
			lines = append(lines, assistantMsgStyle.Width(width).Render(markdown.RenderInline(msg.Content)))
		}
		lines = append(lines, "")
	}
	if media := m.renderMedia(width); media != "" {
		lines = append(lines, media, "")
	}

	var flat []string
	for _, l := range lines {
		flat = append(flat, strings.Split(l, "\n")...)
	}
	if len(flat) > height {
		flat = flat[len(flat)-height:]
	}
	return strings.Join(flat, "\n")
}

// renderMedia shows the last reply's attachment, if any.
func (m *Model) renderMedia(width int) string {
	media := m.lastMedia
	if media == nil {
		return ""
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width)
	switch media.Type {
	case "image":
		return dim.Render("🖼  Image saved: " + media.Path)
	case "audio":
		return dim.Render("🎧 Audio saved: " + media.Path)
	case "video":
		videos := media.Videos
		if len(videos) > 2 {
			videos = videos[:2]
		}
		var parts []string
		for _, v := range videos {
			parts = append(parts, "▶ "+v.Title+" "+v.URL)
		}
		return dim.Render(strings.Join(parts, "\n"))
	case "flow":
		if media.Desc != "" {
			return dim.Render("🗺  " + media.Desc)
		}
		return ""
	default:
		return ""
	}
}

// truncate shortens s for display, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
