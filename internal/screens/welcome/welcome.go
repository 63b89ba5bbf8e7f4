// Package welcome shows the splash animation played before the
// learning flow starts.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
)

const globeArt = `      ╭─────────╮
   ╭──┤  ◠   ◠  ├──╮
  ╱   │    ◡    │   ╲
 │    ╰────┬────╯    │
 │   ⚡  ━━┿━━  ⚡   │
  ╲        │        ╱
   ╰───────┴───────╯`

var sparkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// DoneMsg signals that the splash has finished and the learner pressed
// a key.
type DoneMsg struct{}

// WelcomeScreen plays the intro animation and hands off once a key is
// pressed after the banner is visible.
type WelcomeScreen struct {
	elapsed   time.Duration
	tickCount int
	done      bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome splash.
func New() *WelcomeScreen {
	return &WelcomeScreen{}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		w.elapsed += tickInterval
		w.tickCount++
		if w.done {
			return w, nil
		}
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if w.elapsed >= phase2End && !w.done {
			w.done = true
			return w, func() tea.Msg { return DoneMsg{} }
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(globeArt)

	if w.elapsed >= phase1End {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 1 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 4 {
			lines[4] = s2 + "  " + lines[4] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		banner := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render("L E A R N S P H E R E")
		tagline := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Learn anything, your way.")
		hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press any key to continue")

		sections = append(sections, "", banner, "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
