package welcome

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyIgnoredBeforeBanner(t *testing.T) {
	w := New()
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd, "keys do nothing until the banner is shown")
}

func TestKeyFinishesSplashAfterBanner(t *testing.T) {
	w := New()
	for w.elapsed < phase2End {
		w.Update(tickMsg(time.Now()))
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, DoneMsg{}, cmd())

	// A second key press after handoff is a no-op.
	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd)
}
