package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/learnsphere/learnsphere-cli/internal/api"
	"github.com/learnsphere/learnsphere-cli/internal/state"
)

func TestTruncateKeepsShortStrings(t *testing.T) {
	assert.Equal(t, "short", truncate("short", suggestionDisplayLen))

	long := "Explain the difference between slices and arrays in Go"
	out := truncate(long, suggestionDisplayLen)
	assert.Equal(t, suggestionDisplayLen+1, len([]rune(out)))
	assert.Equal(t, "…", string([]rune(out)[suggestionDisplayLen]))
}

func TestOpenSeedsGreetingOnce(t *testing.T) {
	store := state.New()
	m := New(nil, store)

	m.Open()
	m.Open()

	msgs := store.ChatMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, api.RoleAssistant, msgs[0].Role)
}

func TestCycleModeWrapsAround(t *testing.T) {
	store := state.New()
	m := New(nil, store)

	modes := api.AllChatModes()
	for i := 0; i < len(modes); i++ {
		assert.Equal(t, modes[i], store.ChatMode())
		m.cycleMode()
	}
	assert.Equal(t, modes[0], store.ChatMode(), "cycling past the last mode wraps")
}

func TestAskSendsWindowWithoutCurrentQuestion(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"text":"answer"}`))
	}))
	defer srv.Close()
	client, err := api.New(srv.URL)
	require.NoError(t, err)

	store := state.New()
	for i := 0; i < 8; i++ {
		store.AppendChatMessage(api.RoleUser, "older")
	}
	m := New(client, store)

	cmd := m.ask("what is a slice?")
	require.NotNil(t, cmd)
	msg := cmd()
	reply, ok := msg.(replyMsg)
	require.True(t, ok)
	require.NoError(t, reply.Err)

	hist, ok := got["chat_history"].([]any)
	require.True(t, ok)
	assert.Len(t, hist, historyWindow, "only the trailing window travels")
	assert.Equal(t, "what is a slice?", got["question"])

	// The question itself is appended to the transcript, not the window.
	msgs := store.ChatMessages()
	assert.Equal(t, "what is a slice?", msgs[len(msgs)-1].Content)
}

func TestReplyAppendsAssistantMessage(t *testing.T) {
	store := state.New()
	m := New(nil, store)
	m.thinking = true
	m.reqID = 1

	m.Update(replyMsg{ReqID: 1, Reply: &api.ChatReply{
		Text:        "Here you go",
		Suggestions: []string{"a", "b", "c", "d"},
	}})

	assert.False(t, m.Thinking())
	msgs := store.ChatMessages()
	require.NotEmpty(t, msgs)
	assert.Equal(t, "Here you go", msgs[len(msgs)-1].Content)
	assert.Len(t, m.suggestions, 3, "at most three suggestions are offered")
}

func TestStaleReplyIsDropped(t *testing.T) {
	store := state.New()
	m := New(nil, store)
	m.thinking = true
	m.reqID = 2

	m.Update(replyMsg{ReqID: 1, Reply: &api.ChatReply{Text: "stale"}})

	assert.True(t, m.Thinking(), "an older request must not clear the pending state")
	assert.Empty(t, store.ChatMessages())
}
