// Package feedback implements the evaluation results screen shown
// after quiz submission, with the post-quiz actions: retake, revision,
// flashcards, and moving to the next topic.
package feedback

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/markdown"
	"github.com/learnsphere/learnsphere-cli/internal/router"
	"github.com/learnsphere/learnsphere-cli/internal/screen"
	"github.com/learnsphere/learnsphere-cli/internal/state"
	"github.com/learnsphere/learnsphere-cli/internal/ui/components"
	"github.com/learnsphere/learnsphere-cli/internal/ui/layout"
	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// CelebrationThreshold is the percentage at and above which the result
// gets the confetti treatment.
const CelebrationThreshold = 70.0

// FeedbackScreen shows the evaluation verdict and routes to follow-up
// activities.
type FeedbackScreen struct {
	store    *state.Store
	confetti components.Confetti
	offset   int
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)

// New creates the feedback screen.
func New(store *state.Store) *FeedbackScreen {
	return &FeedbackScreen{store: store}
}

func (f *FeedbackScreen) Init() tea.Cmd {
	f.offset = 0
	if fb := f.store.Feedback(); fb != nil && fb.Percentage >= CelebrationThreshold {
		return f.confetti.Start()
	}
	return nil
}

func (f *FeedbackScreen) Title() string {
	return "Your Results"
}

func (f *FeedbackScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Scroll"},
		{Key: "R", Description: "Retake"},
		{Key: "V", Description: "Revision"},
		{Key: "F", Description: "Flashcards"},
	}
	if _, ok := f.store.NextTopic(); ok {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Next topic"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "Roadmap"})
	}
	return hints
}

func (f *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd := f.confetti.Update(msg); cmd != nil {
		return f, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if f.offset > 0 {
			f.offset--
		}
	case "down", "j":
		f.offset++
	case "r", "R":
		f.store.ResetQuiz()
		return f, router.GoTo(router.SectionQuiz)
	case "v", "V":
		return f, router.GoTo(router.SectionRevision)
	case "f", "F":
		return f, router.GoTo(router.SectionFlashcards)
	case "n", "N":
		if next, ok := f.store.NextTopic(); ok {
			f.store.SelectTopic(next.ID, next.Title)
			f.store.ResetQuiz()
			return f, router.GoTo(router.SectionContent)
		}
		return f, router.GoTo(router.SectionRoadmap)
	}
	return f, nil
}

func (f *FeedbackScreen) View(width, height int) string {
	fb := f.store.Feedback()
	if fb == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("No quiz results yet. Take a quiz first."))
	}

	bodyWidth := min(width-6, 84)
	lines := strings.Split(f.renderResult(fb, bodyWidth), "\n")

	visible := height - 2
	if f.confetti.Active() {
		visible -= 4
	}
	if visible < 1 {
		visible = 1
	}
	maxOffset := len(lines) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if f.offset > maxOffset {
		f.offset = maxOffset
	}
	end := f.offset + visible
	if end > len(lines) {
		end = len(lines)
	}
	body := strings.Join(lines[f.offset:end], "\n")

	if f.confetti.Active() {
		body = f.confetti.View(width) + "\n" + body
	}
	return lipgloss.NewStyle().Padding(1, 3).Render(body)
}

func (f *FeedbackScreen) renderResult(fb *api.Evaluation, width int) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	verdict := "Great work! 🎉"
	switch {
	case fb.Percentage >= CelebrationThreshold:
	case fb.Percentage >= 40:
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		verdict = "Good effort! 💪 Revision will sharpen the weak spots."
	default:
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		verdict = "Let's revisit the basics. 📚"
	}

	parts := []string{
		scoreStyle.Render(fmt.Sprintf("Score: %d/%d (%.0f%%)", fb.Score, fb.Total, fb.Percentage)),
		lipgloss.NewStyle().Foreground(theme.Text).Render(verdict),
	}
	if fb.XPEarned > 0 {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("⚡ +%d XP earned", fb.XPEarned)))
	}
	parts = append(parts, "")

	if fb.OverallFeedback != "" {
		parts = append(parts, markdown.Render(fb.OverallFeedback, width), "")
	}

	for _, r := range fb.PerQuestion {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✔")
		if !r.IsCorrect {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✘")
		}
		parts = append(parts,
			fmt.Sprintf("%s Question %d", mark, r.QuestionNum),
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(width).PaddingLeft(2).
				Render(r.Feedback),
		)
	}

	if len(fb.StrongAreas) > 0 {
		parts = append(parts, "",
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("💪 Strong areas"),
			lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render("  "+strings.Join(fb.StrongAreas, ", ")))
	}
	if len(fb.WeakAreas) > 0 {
		parts = append(parts, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("🎯 Focus next on"),
			lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render("  "+strings.Join(fb.WeakAreas, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
