package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-cli/internal/api"
)

func TestCompleteTopicIdempotent(t *testing.T) {
	s := New()

	s.CompleteTopic("Variables")
	s.CompleteTopic("Loops")
	s.CompleteTopic("Variables")
	s.CompleteTopic("")

	assert.Equal(t, []string{"Variables", "Loops"}, s.TopicsCompleted())
	assert.True(t, s.IsCompleted("Variables"))
	assert.False(t, s.IsCompleted("Functions"))
}

func TestSetLevelClearsRoadmap(t *testing.T) {
	s := New()
	s.SetRoadmap([]api.Topic{{ID: 1, Title: "Variables"}})

	s.SetLevel(api.LevelIntermediate)

	assert.Nil(t, s.Roadmap())
	assert.Equal(t, api.LevelIntermediate, s.Level())
}

func TestSelectTopicClearsContent(t *testing.T) {
	s := New()
	s.SetContent(&api.Content{Type: api.ContentText, Body: "stale"})

	s.SelectTopic(2, "Loops")

	id, ok := s.CurrentTopic()
	require.True(t, ok)
	assert.Equal(t, 2, id)
	assert.Equal(t, "Loops", s.CurrentTopicTitle())
	assert.Nil(t, s.Content())
}

func TestSetLearningStyleClearsContent(t *testing.T) {
	s := New()
	s.SetContent(&api.Content{Type: api.ContentText, Body: "stale"})

	s.SetLearningStyle(api.StyleVisual)

	assert.Nil(t, s.Content())
	assert.Equal(t, api.StyleVisual, s.LearningStyle())
}

func TestAnswersRequiresEveryQuestion(t *testing.T) {
	s := New()
	s.SetQuizData([]api.Question{
		{Type: api.QuestionMCQ, Question: "q1", Options: []string{"a", "b"}},
		{Type: api.QuestionScenario, Question: "q2"},
	})

	_, ok := s.Answers()
	assert.False(t, ok)

	s.SetAnswer(0, "a")
	_, ok = s.Answers()
	assert.False(t, ok, "one unanswered question must block submission")

	s.SetAnswer(1, "because")
	answers, ok := s.Answers()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "because"}, answers)
}

func TestSetQuizDataResetsAnswers(t *testing.T) {
	s := New()
	s.SetQuizData([]api.Question{{Type: api.QuestionScenario, Question: "q1"}})
	s.SetAnswer(0, "old")

	s.SetQuizData([]api.Question{{Type: api.QuestionScenario, Question: "q1 again"}})

	assert.Empty(t, s.Answer(0))
}

func TestNextTopic(t *testing.T) {
	s := New()
	s.SetRoadmap([]api.Topic{
		{ID: 1, Title: "Variables"},
		{ID: 2, Title: "Loops"},
	})

	s.SelectTopic(1, "Variables")
	next, ok := s.NextTopic()
	require.True(t, ok)
	assert.Equal(t, "Loops", next.Title)

	s.SelectTopic(2, "Loops")
	_, ok = s.NextTopic()
	assert.False(t, ok, "last roadmap topic has no successor")

	s.SelectTopic(9, "Off The Map")
	_, ok = s.NextTopic()
	assert.False(t, ok)
}

func TestWeakAreasDefaultsEmpty(t *testing.T) {
	s := New()
	assert.NotNil(t, s.WeakAreas())
	assert.Empty(t, s.WeakAreas())

	s.SetFeedback(&api.Evaluation{WeakAreas: []string{"scoping"}})
	assert.Equal(t, []string{"scoping"}, s.WeakAreas())
}

func TestResetQuiz(t *testing.T) {
	s := New()
	s.SetQuizData([]api.Question{{Type: api.QuestionScenario, Question: "q"}})
	s.SetAnswer(0, "a")
	s.SetFeedback(&api.Evaluation{Score: 1})

	s.ResetQuiz()

	assert.Nil(t, s.QuizData())
	assert.Nil(t, s.Feedback())
	assert.Empty(t, s.Answer(0))
}

func TestChatHistoryWindow(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		role := api.RoleUser
		if i%2 == 1 {
			role = api.RoleAssistant
		}
		s.AppendChatMessage(role, "msg")
	}

	assert.Len(t, s.ChatHistory(6), 6)
	assert.Len(t, s.ChatHistory(20), 10)
}

func TestSeedReplaysCompletions(t *testing.T) {
	s := New()
	s.Seed(&api.Progress{
		Level:           api.LevelBeginner,
		XP:              420,
		TopicsCompleted: []string{"Variables", "Variables", "Loops"},
	})

	assert.Equal(t, api.LevelBeginner, s.Level())
	assert.Equal(t, 420, s.XP())
	assert.Equal(t, []string{"Variables", "Loops"}, s.TopicsCompleted())
}

func TestSetXPIgnoresNegative(t *testing.T) {
	s := New()
	s.SetXP(100)
	s.SetXP(-5)
	assert.Equal(t, 100, s.XP())
}
