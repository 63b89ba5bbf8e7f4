package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfettiBurstLifecycle(t *testing.T) {
	var c Confetti
	assert.False(t, c.Active())
	assert.Empty(t, c.View(40))

	require.NotNil(t, c.Start())
	assert.True(t, c.Active())
	assert.NotEmpty(t, c.View(40), "an active burst renders colored pieces")

	for i := 0; i < confettiFrames; i++ {
		c.Update(ConfettiTickMsg(time.Now()))
	}
	assert.False(t, c.Active(), "the burst winds down after its frame budget")
	assert.Nil(t, c.Update(ConfettiTickMsg(time.Now())))
}

func TestConfettiIgnoresOtherMessages(t *testing.T) {
	var c Confetti
	c.Start()
	assert.Nil(t, c.Update("not a tick"))
	assert.True(t, c.Active())
}
