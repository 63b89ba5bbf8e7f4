// Package quiz implements the quiz screen: generated questions for the
// current topic, answer capture, and submission for evaluation.
package quiz

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/history"
	"github.com/learnsphere/learnsphere-cli/internal/router"
	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/layout"
)

type quizMsg struct {
	ReqID     int
	Questions []api.Question
	Err       error
}

type evaluatedMsg struct {
	ReqID      int
	Evaluation *api.Evaluation
	Err        error
}

// QuizScreen walks the learner through the generated questions one at
// a time. Submission is offered only when every question has an
// answer.
type QuizScreen struct {
	client *api.Client
	store  *state.Store
	cache  *history.DB

	loader     components.Loader
	input      components.TextInput
	current    int // question index
	optCursor  int
	loading    bool
	submitting bool
	reqID      int
	errMsg     string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. cache may be nil when the local history
// database could not be opened; attempts are then simply not recorded.
func New(client *api.Client, store *state.Store, cache *history.DB) *QuizScreen {
	return &QuizScreen{client: client, store: store, cache: cache}
}

func (q *QuizScreen) Init() tea.Cmd {
	q.errMsg = ""
	q.current = 0
	q.optCursor = 0
	q.submitting = false
	if len(q.store.QuizData()) > 0 {
		return q.prepareInput()
	}
	return q.fetch()
}

func (q *QuizScreen) Title() string {
	return "Quiz Time"
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.loading || q.submitting {
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "←/→", Description: "Question"},
	}
	if qs := q.store.QuizData(); q.current < len(qs) && qs[q.current].Type.HasOptions() {
		hints = append(hints, layout.KeyHint{Key: "↑/↓", Description: "Option"},
			layout.KeyHint{Key: "Enter", Description: "Pick"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Save answer"})
	}
	if _, ok := q.store.Answers(); ok {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back to lesson"})
	return hints
}

func (q *QuizScreen) fetch() tea.Cmd {
	topic := q.store.CurrentTopicTitle()
	if topic == "" {
		q.errMsg = "Pick a topic first."
		return nil
	}
	q.loading = true
	q.reqID++
	id := q.reqID
	level := q.store.Level()

	q.loader = components.NewLoader("Writing your quiz...")
	return tea.Batch(q.loader.Init(), func() tea.Msg {
		questions, err := q.client.Quiz(context.Background(), topic, level)
		return quizMsg{ReqID: id, Questions: questions, Err: err}
	})
}

// submit sends all answers for evaluation. It must not be reachable
// while any answer is missing.
func (q *QuizScreen) submit() tea.Cmd {
	answers, ok := q.store.Answers()
	if !ok || q.submitting {
		return nil
	}
	q.submitting = true
	q.reqID++
	id := q.reqID
	topic := q.store.CurrentTopicTitle()
	level := q.store.Level()
	questions := q.store.QuizData()

	q.loader = components.NewLoader("Evaluating your answers...")
	return tea.Batch(q.loader.Init(), func() tea.Msg {
		eval, err := q.client.Evaluate(context.Background(), topic, level, questions, answers)
		return evaluatedMsg{ReqID: id, Evaluation: eval, Err: err}
	})
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizMsg:
		if msg.ReqID != q.reqID {
			return q, nil
		}
		q.loading = false
		if msg.Err != nil {
			q.errMsg = "Could not generate a quiz. Press R to retry."
			return q, nil
		}
		q.store.SetQuizData(msg.Questions)
		q.current = 0
		return q, q.prepareInput()

	case evaluatedMsg:
		if msg.ReqID != q.reqID {
			return q, nil
		}
		q.submitting = false
		if msg.Err != nil {
			q.errMsg = "Evaluation failed. Press Ctrl+S to retry."
			return q, nil
		}
		return q, q.applyEvaluation(msg.Evaluation)

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.loading || q.submitting {
		var cmd tea.Cmd
		q.loader, cmd = q.loader.Update(msg)
		return q, cmd
	}
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

// applyEvaluation commits the server verdict: XP total, topic
// completion, the local attempt record, and moves on to feedback.
func (q *QuizScreen) applyEvaluation(eval *api.Evaluation) tea.Cmd {
	q.store.SetFeedback(eval)
	q.store.SetXP(eval.TotalXP)
	topic := q.store.CurrentTopicTitle()
	q.store.CompleteTopic(topic)

	if q.cache != nil {
		_, _ = q.cache.RecordAttempt(topic, q.store.Level(), eval)
	}
	if eval.XPEarned > 0 {
		return tea.Batch(
			components.ShowToast(fmt.Sprintf("⚡ +%d XP", eval.XPEarned)),
			router.GoTo(router.SectionFeedback),
		)
	}
	return router.GoTo(router.SectionFeedback)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.loading || q.submitting {
		return q, nil
	}

	key := msg.String()
	questions := q.store.QuizData()

	if q.errMsg != "" {
		switch key {
		case "r", "R":
			q.errMsg = ""
			if len(questions) == 0 {
				return q, q.fetch()
			}
			return q, nil
		case "ctrl+s":
			q.errMsg = ""
			return q, q.submit()
		case "esc":
			return q, router.GoTo(router.SectionContent)
		}
		return q, nil
	}

	if len(questions) == 0 {
		if key == "esc" {
			return q, router.GoTo(router.SectionContent)
		}
		return q, nil
	}

	question := questions[q.current]

	switch key {
	case "esc":
		return q, router.GoTo(router.SectionContent)

	case "ctrl+s":
		q.saveTyped(question)
		if cmd := q.submit(); cmd != nil {
			return q, cmd
		}
		return q, components.ShowToast("⚠ Answer every question before submitting")

	case "left", "h":
		if q.current > 0 {
			q.saveTyped(question)
			q.current--
			return q, q.prepareInput()
		}
		return q, nil

	case "right", "l":
		if q.current < len(questions)-1 {
			q.saveTyped(question)
			q.current++
			return q, q.prepareInput()
		}
		return q, nil
	}

	if question.Type.HasOptions() {
		switch key {
		case "up", "k":
			if q.optCursor > 0 {
				q.optCursor--
			}
		case "down", "j":
			if q.optCursor < len(question.Options)-1 {
				q.optCursor++
			}
		case "enter":
			if q.optCursor < len(question.Options) {
				q.store.SetAnswer(q.current, question.Options[q.optCursor])
				// Auto-advance so picking flows through the quiz.
				if q.current < len(questions)-1 {
					q.current++
					return q, q.prepareInput()
				}
			}
		}
		return q, nil
	}

	if key == "enter" {
		q.saveTyped(question)
		if q.current < len(questions)-1 {
			q.current++
			return q, q.prepareInput()
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

// saveTyped records the text input for free-form questions.
func (q *QuizScreen) saveTyped(question api.Question) {
	if question.Type.HasOptions() {
		return
	}
	if v := q.input.Value(); v != "" {
		q.store.SetAnswer(q.current, v)
	}
}

// prepareInput sets up the answer widget for the current question,
// restoring any previously recorded answer.
func (q *QuizScreen) prepareInput() tea.Cmd {
	questions := q.store.QuizData()
	if q.current >= len(questions) {
		return nil
	}
	question := questions[q.current]

	if question.Type.HasOptions() {
		q.optCursor = 0
		if prev := q.store.Answer(q.current); prev != "" {
			for i, opt := range question.Options {
				if opt == prev {
					q.optCursor = i
				}
			}
		}
		return nil
	}

	q.input = components.NewTextInput("Your answer", "Type your answer...", false)
	if prev := q.store.Answer(q.current); prev != "" {
		q.input.SetValue(prev)
	}
	return tea.Batch(q.input.Init(), q.input.Focus())
}
