package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/markdown"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	answeredDot   = lipgloss.NewStyle().Foreground(theme.Success)
	pendingDot    = lipgloss.NewStyle().Foreground(theme.TextDim)
	currentDot    = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	kindTagStyle  = lipgloss.NewStyle().Foreground(theme.Accent)
)

func (q *QuizScreen) View(width, height int) string {
	if q.loading || q.submitting {
		return q.loader.View(width, height)
	}
	if q.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render(q.errMsg))
	}

	questions := q.store.QuizData()
	if len(questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No quiz loaded."))
	}

	bodyWidth := min(width-6, 84)
	question := questions[q.current]

	parts := []string{
		q.renderProgressDots(questions),
		"",
		kindTagStyle.Render(kindLabel(question.Type)) + "  " +
			pendingDot.Render(fmt.Sprintf("Question %d of %d", q.current+1, len(questions))),
		"",
		questionStyle.Width(bodyWidth).Render(markdown.RenderInline(question.Question)),
		"",
	}

	if question.Type.HasOptions() {
		parts = append(parts, q.renderOptions(question, bodyWidth))
	} else {
		parts = append(parts, q.input.View())
	}

	if _, ok := q.store.Answers(); ok {
		parts = append(parts, "",
			lipgloss.NewStyle().Foreground(theme.Success).
				Render("All questions answered. Ctrl+S to submit."))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderProgressDots shows one dot per question: answered, current, or
// still open.
func (q *QuizScreen) renderProgressDots(questions []api.Question) string {
	var dots []string
	for i := range questions {
		switch {
		case i == q.current:
			dots = append(dots, currentDot.Render("◉"))
		case q.store.Answer(i) != "":
			dots = append(dots, answeredDot.Render("●"))
		default:
			dots = append(dots, pendingDot.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}

func (q *QuizScreen) renderOptions(question api.Question, width int) string {
	recorded := q.store.Answer(q.current)
	var lines []string
	for i, opt := range question.Options {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == q.optCursor {
			cursor = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		mark := "○"
		if opt == recorded {
			mark = "●"
			if i != q.optCursor {
				style = lipgloss.NewStyle().Foreground(theme.Secondary)
			}
		}
		lines = append(lines, style.Width(width).Render(fmt.Sprintf("%s%s %s", cursor, mark, opt)))
	}
	return strings.Join(lines, "\n")
}

func kindLabel(k api.QuestionKind) string {
	switch k {
	case api.QuestionScenario:
		return "💭 Scenario"
	case api.QuestionCodeAnalysis:
		return "💻 Code Analysis"
	case api.QuestionMCQ:
		return "📝 Multiple Choice"
	default:
		return "📝 Question"
	}
}
