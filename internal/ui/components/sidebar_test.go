package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnsphere/learnsphere-cli/internal/api"
)

func TestSidebarMarksProgressAndBadges(t *testing.T) {
	s := Sidebar{
		Topics: []api.Topic{
			{ID: 1, Title: "Variables"},
			{ID: 2, Title: "Loops"},
		},
		IsDone:       func(title string) bool { return title == "Variables" },
		CurrentTitle: "Loops",
		XP:           42,
		Badges:       []string{"🏆", "🔥"},
	}

	out := s.View(28, 20)
	assert.Contains(t, out, "Variables")
	assert.Contains(t, out, "Loops")
	assert.Contains(t, out, "●", "completed topics get a filled mark")
	assert.Contains(t, out, "🏆")
}

func TestSidebarEmptyRoadmap(t *testing.T) {
	out := Sidebar{}.View(28, 20)
	assert.Contains(t, out, "No roadmap yet.")
}
