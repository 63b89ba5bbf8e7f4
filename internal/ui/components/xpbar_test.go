package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelProgressWrapsPerLevel(t *testing.T) {
	assert.Equal(t, 0.0, XPBar{XP: 0}.LevelProgress())
	assert.InDelta(t, 0.5, XPBar{XP: 75}.LevelProgress(), 1e-9)
	assert.Equal(t, 0.0, XPBar{XP: XPPerLevel}.LevelProgress(), "a full level wraps to an empty bar")
	assert.InDelta(t, float64(40)/float64(XPPerLevel), XPBar{XP: XPPerLevel*3 + 40}.LevelProgress(), 1e-9)
}

func TestXPBarShowsRawTotal(t *testing.T) {
	out := XPBar{XP: 420, Width: 40}.View()
	assert.Contains(t, out, "420 XP")
}
