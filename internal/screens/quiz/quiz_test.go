package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
)

func newQuizStore() *state.Store {
	store := state.New()
	store.SetLevel(api.LevelBeginner)
	store.SelectTopic(1, "Slices")
	store.SetQuizData([]api.Question{
		{Type: api.QuestionMCQ, Question: "Pick one", Options: []string{"a", "b", "c"}},
		{Type: api.QuestionScenario, Question: "Explain"},
	})
	return store
}

func TestSubmitBlockedWhileAnswersMissing(t *testing.T) {
	store := newQuizStore()
	q := New(nil, store, nil)

	store.SetAnswer(0, "a")
	assert.Nil(t, q.submit(), "one unanswered question must block submission")

	store.SetAnswer(1, "because")
	assert.NotNil(t, q.submit())
}

func TestIncompleteSubmitRaisesWarningToast(t *testing.T) {
	store := newQuizStore()
	store.SetAnswer(0, "a")
	q := New(nil, store, nil)
	q.Init()

	_, cmd := q.handleKey(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	toast, ok := cmd().(components.ShowToastMsg)
	require.True(t, ok, "an incomplete quiz warns instead of submitting")
	assert.Contains(t, toast.Text, "every question")
}

func TestSubmitBlockedWhileAlreadySubmitting(t *testing.T) {
	store := newQuizStore()
	store.SetAnswer(0, "a")
	store.SetAnswer(1, "because")
	q := New(nil, store, nil)
	q.submitting = true

	assert.Nil(t, q.submit())
}

func TestOptionPickAutoAdvances(t *testing.T) {
	store := newQuizStore()
	q := New(nil, store, nil)
	q.Init()

	q.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	q.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Equal(t, "b", store.Answer(0))
	assert.Equal(t, 1, q.current, "picking an option moves on to the next question")
}

func TestNavigationRestoresRecordedOption(t *testing.T) {
	store := newQuizStore()
	q := New(nil, store, nil)
	q.Init()

	q.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	q.handleKey(tea.KeyPressMsg{Code: tea.KeyDown})
	q.handleKey(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.Equal(t, 1, q.current)

	q.handleKey(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 0, q.current)
	assert.Equal(t, 2, q.optCursor, "cursor lands on the previously picked option")
}

func TestStaleQuizResponseIgnored(t *testing.T) {
	store := state.New()
	store.SetLevel(api.LevelBeginner)
	store.SelectTopic(1, "Slices")
	q := New(nil, store, nil)
	q.loading = true
	q.reqID = 2

	q.Update(quizMsg{ReqID: 1, Questions: []api.Question{{Type: api.QuestionMCQ, Question: "old"}}})

	assert.True(t, q.loading)
	assert.Empty(t, store.QuizData())
}
