package feedback

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/router"
	"github.com/learnsphere/learnsphere-cli/internal/state"
)

func storeWithResult(pct float64) *state.Store {
	store := state.New()
	store.SetLevel(api.LevelBeginner)
	store.SelectTopic(1, "Slices")
	store.SetFeedback(&api.Evaluation{Score: 4, Total: 5, Percentage: pct})
	return store
}

func TestCelebrationStartsAtThreshold(t *testing.T) {
	f := New(storeWithResult(CelebrationThreshold))
	assert.NotNil(t, f.Init(), "a passing score gets confetti")

	f = New(storeWithResult(CelebrationThreshold - 0.5))
	assert.Nil(t, f.Init())
}

func TestNoCelebrationWithoutResult(t *testing.T) {
	f := New(state.New())
	assert.Nil(t, f.Init())
}

func TestRetakeClearsQuizState(t *testing.T) {
	store := storeWithResult(40)
	store.SetQuizData([]api.Question{{Type: api.QuestionMCQ, Question: "q", Options: []string{"a"}}})
	store.SetAnswer(0, "a")
	f := New(store)

	_, cmd := f.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, router.GoToMsg{Section: router.SectionQuiz}, msg)
	assert.Empty(t, store.QuizData())
}

func TestNextAdvancesToSuccessorTopic(t *testing.T) {
	store := storeWithResult(80)
	store.SetRoadmap([]api.Topic{
		{ID: 1, Title: "Slices"},
		{ID: 2, Title: "Maps"},
	})
	f := New(store)

	_, cmd := f.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	require.NotNil(t, cmd)
	assert.Equal(t, router.GoToMsg{Section: router.SectionContent}, cmd())
	assert.Equal(t, "Maps", store.CurrentTopicTitle())
}

func TestNextFallsBackToRoadmapOnLastTopic(t *testing.T) {
	store := storeWithResult(80)
	store.SetRoadmap([]api.Topic{{ID: 1, Title: "Slices"}})
	f := New(store)

	_, cmd := f.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	require.NotNil(t, cmd)
	assert.Equal(t, router.GoToMsg{Section: router.SectionRoadmap}, cmd())
}
