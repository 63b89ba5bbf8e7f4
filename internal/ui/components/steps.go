package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/learnsphere/learnsphere-cli/internal/ui/theme"
)

// StepStatus is the derived state of one flow step.
type StepStatus int

const (
	StepPending StepStatus = iota
	StepActive
	StepCompleted
)

// Step is one entry of the flow step indicator.
type Step struct {
	Key    string
	Label  string
	Status StepStatus
}

// StepLabels maps flow step keys to display labels, in flow order.
var stepLabels = []struct{ key, label string }{
	{"level", "Level"},
	{"roadmap", "Roadmap"},
	{"style", "Style"},
	{"content", "Learn"},
	{"quiz", "Quiz"},
	{"feedback", "Review"},
}

// BuildSteps derives the status of each of the six flow steps from the
// current step key: earlier steps are completed, the current one
// active, later ones pending. An unknown key leaves every step pending.
func BuildSteps(current string) []Step {
	currentIdx := -1
	for i, s := range stepLabels {
		if s.key == current {
			currentIdx = i
			break
		}
	}

	steps := make([]Step, len(stepLabels))
	for i, s := range stepLabels {
		status := StepPending
		if currentIdx >= 0 {
			if i < currentIdx {
				status = StepCompleted
			} else if i == currentIdx {
				status = StepActive
			}
		}
		steps[i] = Step{Key: s.key, Label: s.label, Status: status}
	}
	return steps
}

// RenderSteps renders the step indicator as a single centered line:
// numbered dots joined by connector dashes, completed steps showing a
// checkmark.
func RenderSteps(steps []Step, width int) string {
	var parts []string
	for i, step := range steps {
		var dot, label string
		switch step.Status {
		case StepCompleted:
			dot = theme.StepCompleted.Render(" ✓ ")
			label = lipgloss.NewStyle().Foreground(theme.Success).Render(step.Label)
		case StepActive:
			dot = theme.StepActive.Render(fmt.Sprintf(" %d ", i+1))
			label = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(step.Label)
		default:
			dot = theme.StepPending.Render(fmt.Sprintf(" %d ", i+1))
			label = lipgloss.NewStyle().Foreground(theme.TextDim).Render(step.Label)
		}

		parts = append(parts, dot+" "+label)

		if i < len(steps)-1 {
			lineStyle := theme.ProgressEmpty
			if step.Status == StepCompleted {
				lineStyle = theme.ProgressFilled
			}
			parts = append(parts, lineStyle.Render("  "))
		}
	}

	line := strings.Join(parts, " ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
