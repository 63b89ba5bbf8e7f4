package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/learnsphere/learnsphere-cli/internal/screen"
)

type stubScreen struct {
	name  string
	inits int
}

func (s *stubScreen) Init() tea.Cmd {
	s.inits++
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string               { return s.name }
func (s *stubScreen) Title() string                               { return s.name }

func TestFirstRegisteredIsActive(t *testing.T) {
	r := New()
	a := &stubScreen{name: "a"}
	r.Register(SectionLevel, a)
	r.Register(SectionRoadmap, &stubScreen{name: "b"})

	assert.Equal(t, SectionLevel, r.Current())
	assert.Same(t, a, r.Active().(*stubScreen))
}

func TestNavigateReplaysInit(t *testing.T) {
	r := New()
	r.Register(SectionLevel, &stubScreen{name: "a"})
	b := &stubScreen{name: "b"}
	r.Register(SectionRoadmap, b)

	r.Navigate(SectionRoadmap)
	r.Navigate(SectionLevel)
	r.Navigate(SectionRoadmap)

	assert.Equal(t, SectionRoadmap, r.Current())
	assert.Equal(t, 2, b.inits, "every entry replays the section's Init")
}

func TestNavigateUnknownSectionIsNoOp(t *testing.T) {
	r := New()
	r.Register(SectionLevel, &stubScreen{name: "a"})

	cmd := r.Navigate(Section("bogus"))

	assert.Nil(t, cmd)
	assert.Equal(t, SectionLevel, r.Current())
}

func TestUpdateHandlesGoToMsg(t *testing.T) {
	r := New()
	r.Register(SectionLevel, &stubScreen{name: "a"})
	r.Register(SectionQuiz, &stubScreen{name: "q"})

	r.Update(GoToMsg{Section: SectionQuiz})

	assert.Equal(t, SectionQuiz, r.Current())
	assert.Equal(t, "q", r.View(80, 24))
}

func TestStepForPinsPostQuizSections(t *testing.T) {
	assert.Equal(t, SectionFeedback, StepFor(SectionRevision))
	assert.Equal(t, SectionFeedback, StepFor(SectionFlashcards))
	assert.Equal(t, SectionQuiz, StepFor(SectionQuiz))
	assert.Equal(t, SectionLevel, StepFor(SectionLevel))
}

func TestFlowStepsOrder(t *testing.T) {
	steps := FlowSteps()
	assert.Equal(t, []Section{
		SectionLevel, SectionRoadmap, SectionStyle,
		SectionContent, SectionQuiz, SectionFeedback,
	}, steps)
}
