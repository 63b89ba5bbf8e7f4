package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/learnsphere/learnsphere-cli/internal/screen"
)

// Section identifies one screen of the learning flow. The set is
// closed: navigation to an unregistered section is a silent no-op.
type Section string

const (
	SectionLevel      Section = "level"
	SectionRoadmap    Section = "roadmap"
	SectionStyle      Section = "style"
	SectionContent    Section = "content"
	SectionQuiz       Section = "quiz"
	SectionFeedback   Section = "feedback"
	SectionRevision   Section = "revision"
	SectionFlashcards Section = "flashcards"
)

// FlowSteps returns the six main flow steps in order, as shown in the
// step indicator.
func FlowSteps() []Section {
	return []Section{
		SectionLevel,
		SectionRoadmap,
		SectionStyle,
		SectionContent,
		SectionQuiz,
		SectionFeedback,
	}
}

// StepFor maps a section to the flow step the indicator should mark
// active. Revision and flashcards are post-evaluation activities and
// pin the indicator to the feedback step.
func StepFor(sec Section) Section {
	switch sec {
	case SectionRevision, SectionFlashcards:
		return SectionFeedback
	default:
		return sec
	}
}

// GoToMsg requests navigation to a section.
type GoToMsg struct {
	Section Section
}

// GoTo returns a command that navigates to the given section.
func GoTo(sec Section) tea.Cmd {
	return func() tea.Msg { return GoToMsg{Section: sec} }
}

// Router holds the fixed set of section screens and tracks which one
// is active. Exactly one section is active at any time.
type Router struct {
	screens map[Section]screen.Screen
	current Section
}

// New creates an empty Router. Sections are registered before the
// first navigation.
func New() *Router {
	return &Router{screens: make(map[Section]screen.Screen)}
}

// Register adds a section screen. The first registered section becomes
// the active one.
func (r *Router) Register(sec Section, s screen.Screen) {
	r.screens[sec] = s
	if r.current == "" {
		r.current = sec
	}
}

// Current returns the active section key.
func (r *Router) Current() Section {
	return r.current
}

// Active returns the active screen, nil when nothing is registered.
func (r *Router) Active() screen.Screen {
	return r.screens[r.current]
}

// Navigate activates the target section and replays its entry state by
// calling Init. Unknown sections are ignored.
func (r *Router) Navigate(sec Section) tea.Cmd {
	s, ok := r.screens[sec]
	if !ok {
		return nil
	}
	r.current = sec
	return s.Init()
}

// Update forwards a message to the active screen and handles
// navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if nav, ok := msg.(GoToMsg); ok {
		return r.Navigate(nav.Section)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.screens[r.current] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
