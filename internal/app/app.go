// Package app wires the LearnSphere TUI together: the section router,
// the shared state store, the chat overlay, and the outer frame.
package app

import (
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/chat"
	"github.com/learnsphere/learnsphere-cli/internal/config"
	"github.com/learnsphere/learnsphere-cli/internal/history"
	"github.com/learnsphere/learnsphere-cli/internal/router"
	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/screens/auth"
	"github.com/learnsphere/learnsphere-cli/internal/screens/content"
	"github.com/learnsphere/learnsphere-cli/internal/screens/feedback"
	"github.com/learnsphere/learnsphere-cli/internal/screens/flashcards"
	"github.com/learnsphere/learnsphere-cli/internal/screens/level"
	"github.com/learnsphere/learnsphere-cli/internal/screens/quiz"
	"github.com/learnsphere/learnsphere-cli/internal/screens/revision"
	"github.com/learnsphere/learnsphere-cli/internal/screens/roadmap"
	"github.com/learnsphere/learnsphere-cli/internal/screens/style"
	"github.com/learnsphere/learnsphere-cli/internal/screens/welcome"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/layout"
)

// phase is the top-level stage of the program: the splash, the auth
// form when no session exists, then the learning flow.
type phase int

const (
	phaseWelcome phase = iota
	phaseAuth
	phaseFlow
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	cfg    *config.Config
	client *api.Client
	store  *state.Store
	cache  *history.DB

	phase      phase
	splash     screen.Screen
	authScreen screen.Screen
	router     *router.Router
	chat       *chat.Model
	toast      components.Toast
	sessionOK  bool // cookies already authenticated against the server

	width  int
	height int
}

// newAppModel assembles the model. seed carries progress from a still
// valid session cookie; nil means the auth form must run first.
func newAppModel(cfg *config.Config, client *api.Client, cache *history.DB, seed *api.Progress) AppModel {
	store := state.New()
	store.Seed(seed)

	r := router.New()
	r.Register(router.SectionLevel, level.New(store))
	r.Register(router.SectionRoadmap, roadmap.New(client, store))
	r.Register(router.SectionStyle, style.New(store))
	r.Register(router.SectionContent, content.New(client, store))
	r.Register(router.SectionQuiz, quiz.New(client, store, cache))
	r.Register(router.SectionFeedback, feedback.New(store))
	r.Register(router.SectionRevision, revision.New(client, store))
	r.Register(router.SectionFlashcards, flashcards.New(client, store))

	return AppModel{
		cfg:        cfg,
		client:     client,
		store:      store,
		cache:      cache,
		phase:      phaseWelcome,
		splash:     welcome.New(),
		authScreen: auth.New(client),
		router:     r,
		chat:       chat.New(client, store),
		sessionOK:  seed != nil,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.splash.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case components.ShowToastMsg:
		return m, m.toast.Show(msg.Text)

	case components.ToastExpiredMsg:
		m.toast.Update(msg)
		return m, nil

	case welcome.DoneMsg:
		if m.sessionOK {
			return m.startFlow()
		}
		m.phase = phaseAuth
		return m, m.authScreen.Init()

	case auth.DoneMsg:
		m.store.Seed(msg.Progress)
		if err := m.client.SaveCookies(m.cfg.CookiePath); err == nil && m.cache != nil && msg.Progress != nil {
			_ = m.cache.SaveProgress(msg.Progress)
		}
		next, cmd := m.startFlow()
		greeting := "Welcome to LearnSphere!"
		if msg.Progress != nil && msg.Progress.XP > 0 {
			greeting = "Welcome back!"
		}
		return next, tea.Batch(cmd, components.ShowToast(greeting))

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+k":
			if m.phase == phaseFlow {
				if m.store.ToggleChat() {
					return m, m.chat.Open()
				}
				m.chat.Close()
				return m, nil
			}
		case "ctrl+b":
			if m.phase == phaseFlow {
				m.store.ToggleSidebar()
				return m, nil
			}
		}
	}

	switch m.phase {
	case phaseWelcome:
		var cmd tea.Cmd
		m.splash, cmd = m.splash.Update(msg)
		return m, cmd

	case phaseAuth:
		var cmd tea.Cmd
		m.authScreen, cmd = m.authScreen.Update(msg)
		return m, cmd

	default:
		// The open chat overlay captures keystrokes. Async messages
		// always reach the overlay too, open or closed, so a reply
		// that arrives after ctrl+k still clears the pending state.
		if _, isKey := msg.(tea.KeyMsg); isKey {
			if m.store.ChatOpen() {
				return m, m.chat.Update(msg)
			}
			return m, m.router.Update(msg)
		}
		return m, tea.Batch(m.chat.Update(msg), m.router.Update(msg))
	}
}

// startFlow enters the learning flow. A returning learner with a level
// lands on the roadmap, a fresh one on level selection.
func (m AppModel) startFlow() (AppModel, tea.Cmd) {
	m.phase = phaseFlow
	start := router.SectionLevel
	if m.store.Level() != "" {
		start = router.SectionRoadmap
	}
	return m, m.router.Navigate(start)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	switch m.phase {
	case phaseWelcome:
		v.SetContent(m.splash.View(m.width, m.height))
		return v
	case phaseAuth:
		v.SetContent(m.renderAuth())
		return v
	default:
		v.SetContent(m.renderFlow())
		return v
	}
}

func (m AppModel) renderAuth() string {
	header := layout.RenderHeader(m.authScreen.Title(), "", 0, 0, m.width)
	var hints []layout.KeyHint
	if p, ok := m.authScreen.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := m.authScreen.View(m.width, contentHeight)
	return layout.RenderFrame(header, body, footer, m.width, m.height)
}

func (m AppModel) renderFlow() string {
	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	subtitle := m.renderSteps()
	header := layout.RenderHeader(title, string(m.store.Level()), m.store.XP(), len(m.store.TopicsCompleted()), m.width)

	hints := m.footerHints(active)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if subtitle != "" {
		contentHeight -= 2
	}

	mainWidth := m.width
	showSidebar := layout.FitsSidebar(m.width) && !m.store.ChatOpen() && !m.store.SidebarHidden()
	if showSidebar {
		mainWidth -= layout.SidebarWidth
	}
	chatWidth := 0
	if m.store.ChatOpen() {
		chatWidth = min(m.width/3, 46)
		mainWidth = m.width - chatWidth
	}

	body := m.router.View(mainWidth, contentHeight)
	body = lipgloss.NewStyle().Width(mainWidth).Height(contentHeight).Render(body)

	if showSidebar {
		sidebar := components.Sidebar{
			Topics:       m.store.Roadmap(),
			IsDone:       m.store.IsCompleted,
			CurrentTitle: m.store.CurrentTopicTitle(),
			XP:           m.store.XP(),
			Badges:       m.store.Badges(),
		}.View(layout.SidebarWidth, contentHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, sidebar)
	} else if chatWidth > 0 {
		panel := m.chat.View(chatWidth, contentHeight)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	if subtitle != "" {
		body = subtitle + "\n" + body
	}

	frame := layout.RenderFrame(header, body, footer, m.width, m.height)

	if m.toast.Visible() {
		frame = overlayTop(frame, m.toast.View(m.width))
	}
	return frame
}

// renderSteps draws the six-step flow indicator under the header.
func (m AppModel) renderSteps() string {
	current := router.StepFor(m.router.Current())
	steps := components.BuildSteps(string(current))
	return components.RenderSteps(steps, m.width)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	if m.store.ChatOpen() {
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Ctrl+O", Description: "Mode"},
			{Key: "Ctrl+K", Description: "Close chat"},
		}
	} else {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+K", Description: "Chat"})
		if layout.FitsSidebar(m.width) {
			hints = append(hints, layout.KeyHint{Key: "Ctrl+B", Description: "Sidebar"})
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

// overlayTop paints the toast over the rows just below the header,
// keeping the frame's height.
func overlayTop(frame, overlay string) string {
	if overlay == "" {
		return frame
	}
	frameLines := strings.Split(frame, "\n")
	overlayLines := strings.Split(overlay, "\n")
	for i, line := range overlayLines {
		at := layout.HeaderHeight + i
		if at < len(frameLines) {
			frameLines[at] = line
		}
	}
	return strings.Join(frameLines, "\n")
}

// Run starts the Bubble Tea program.
func Run(cfg *config.Config, client *api.Client, cache *history.DB, seed *api.Progress) error {
	p := tea.NewProgram(newAppModel(cfg, client, cache, seed))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
