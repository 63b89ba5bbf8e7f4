package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/state"
)

func TestAudioNoteOnlyWithSavedFile(t *testing.T) {
	c := New(nil, state.New())

	out := c.renderContent(&api.Content{
		Type:      api.ContentAudio,
		Body:      "# Lesson",
		AudioPath: "/tmp/lesson.mp3",
	}, 80)
	assert.Contains(t, out, "narrated version")
	assert.Contains(t, out, "/tmp/lesson.mp3")

	out = c.renderContent(&api.Content{
		Type: api.ContentAudio,
		Body: "# Lesson",
	}, 80)
	assert.NotContains(t, out, "narrated version", "no narration file means no note")
	assert.Contains(t, out, "Lesson")
}

func TestVideoPanelOnlyWithVideos(t *testing.T) {
	c := New(nil, state.New())

	out := c.renderContent(&api.Content{
		Type: api.ContentVisual,
		Body: "# Lesson",
		Videos: []api.Video{
			{Title: "Intro to Slices", URL: "https://youtube.com/watch?v=x"},
		},
	}, 80)
	assert.Contains(t, out, "Recommended videos")
	assert.Contains(t, out, "Intro to Slices")

	out = c.renderContent(&api.Content{Type: api.ContentVisual, Body: "# Lesson"}, 80)
	assert.NotContains(t, out, "Recommended videos")
}
