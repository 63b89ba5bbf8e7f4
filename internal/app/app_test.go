package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/config"
)

func TestChatReplyLandsAfterPanelClosed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"answer"}`))
	}))
	defer srv.Close()
	client, err := api.New(srv.URL)
	require.NoError(t, err)

	m := newAppModel(config.DefaultConfig(), client, nil, nil)
	m.phase = phaseFlow

	update := func(msg tea.Msg) tea.Cmd {
		model, cmd := m.Update(msg)
		m = model.(AppModel)
		return cmd
	}

	update(tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	require.True(t, m.store.ChatOpen())

	for _, r := range "hello" {
		update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	cmd := update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, m.chat.Thinking())
	reply := cmd()

	// Close the panel while the reply is still in flight.
	update(tea.KeyPressMsg{Code: 'k', Mod: tea.ModCtrl})
	require.False(t, m.store.ChatOpen())

	update(reply)
	assert.False(t, m.chat.Thinking(), "a reply arriving after close must clear the pending state")

	msgs := m.store.ChatMessages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "answer", msgs[len(msgs)-1].Content)
}
