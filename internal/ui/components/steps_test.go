package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStepsDerivesStatusFromPosition(t *testing.T) {
	steps := BuildSteps("quiz")
	require.Len(t, steps, 6)

	assert.Equal(t, StepCompleted, steps[0].Status) // level
	assert.Equal(t, StepCompleted, steps[1].Status) // roadmap
	assert.Equal(t, StepCompleted, steps[2].Status) // style
	assert.Equal(t, StepCompleted, steps[3].Status) // content
	assert.Equal(t, StepActive, steps[4].Status)    // quiz
	assert.Equal(t, StepPending, steps[5].Status)   // feedback
}

func TestBuildStepsFirstStep(t *testing.T) {
	steps := BuildSteps("level")
	assert.Equal(t, StepActive, steps[0].Status)
	for _, s := range steps[1:] {
		assert.Equal(t, StepPending, s.Status)
	}
}

func TestBuildStepsUnknownKeyAllPending(t *testing.T) {
	for _, s := range BuildSteps("bogus") {
		assert.Equal(t, StepPending, s.Status)
	}
}

func TestRenderStepsMarksCompleted(t *testing.T) {
	out := RenderSteps(BuildSteps("style"), 120)
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Style")
	assert.Contains(t, out, "Review")
}
