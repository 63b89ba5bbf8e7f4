package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestRoadmapDecodesTopics(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/roadmap", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NotEmpty(t, r.Header.Get("X-Client-Session"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"roadmap":[
			{"id":1,"title":"Variables","description":"Basics","icon":"📦"},
			{"id":2,"title":"Loops","description":"Repetition","icon":"🔁"}
		]}`))
	})

	topics, err := c.Roadmap(context.Background(), LevelBeginner)
	require.NoError(t, err)
	require.Len(t, topics, 2)
	assert.Equal(t, "Variables", topics[0].Title)
	assert.Equal(t, "Beginner", gotBody["level"])
}

func TestRoadmapRejectsMalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Topics without required fields must not reach the caller.
		_, _ = w.Write([]byte(`{"roadmap":[{"id":"not-a-number"}]}`))
	})

	_, err := c.Roadmap(context.Background(), LevelBeginner)
	require.Error(t, err)
	var payloadErr *ErrInvalidPayload
	assert.True(t, errors.As(err, &payloadErr))
}

func TestServerErrorMapsToErrStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"model overloaded"}`))
	})

	_, err := c.Quiz(context.Background(), "Variables", LevelBeginner)
	require.Error(t, err)
	var statusErr *ErrStatus
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.Status)
	assert.Equal(t, "model overloaded", statusErr.Message)
}

func TestEvaluateEchoesQuizAndAnswers(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{
			"score":2,"total":3,"percentage":66.7,
			"overall_feedback":"Close!",
			"per_question":[{"question_num":1,"is_correct":true,"feedback":"ok"}],
			"strong_areas":["syntax"],"weak_areas":["scoping"],
			"xp_earned":20,"total_xp":120
		}`))
	})

	quiz := []Question{{Type: QuestionMCQ, Question: "q", Options: []string{"a", "b"}}}
	eval, err := c.Evaluate(context.Background(), "Variables", LevelBeginner, quiz, []string{"a"})
	require.NoError(t, err)

	assert.Equal(t, 2, eval.Score)
	assert.Equal(t, 20, eval.XPEarned)
	assert.Len(t, got["quiz_data"], 1)
	assert.Equal(t, []any{"a"}, got["answers"])
}

func TestRevisionSendsEmptyListForNilWeakAreas(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":"# Recap"}`))
	})

	material, err := c.Revision(context.Background(), "Variables", LevelBeginner, nil)
	require.NoError(t, err)
	assert.Equal(t, "# Recap", material)
	assert.Equal(t, []any{}, got["weak_areas"])
}

func TestAuthFailureIsResultNotError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid credentials"}`))
	})

	result, err := c.Login(context.Background(), "dana", "wrong")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Invalid credentials", result.Error)
}

func TestAuthServerFaultIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Login(context.Background(), "dana", "pw")
	require.Error(t, err)
	var statusErr *ErrStatus
	assert.True(t, errors.As(err, &statusErr))
}

func TestChatDefaultsModeAndHistory(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"text":"Hello!","suggestions":["What is a variable?"]}`))
	})

	reply, err := c.Chat(context.Background(), ChatRequest{Question: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Hello!", reply.Text)
	assert.Equal(t, "text", got["mode"])
	assert.Equal(t, []any{}, got["chat_history"])
}

func TestCookieRoundTrip(t *testing.T) {
	logins := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			logins++
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
			_, _ = w.Write([]byte(`{"success":true,"user":{"id":1,"username":"dana"}}`))
		case "/api/progress":
			ck, err := r.Cookie("session")
			if err != nil || ck.Value != "abc123" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"not logged in"}`))
				return
			}
			_, _ = w.Write([]byte(`{"level":"Beginner","xp":42,"badges":[],"topics_completed":[]}`))
		}
	}

	srv := httptest.NewServer(http.HandlerFunc(handler))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "cookies.json")

	first, err := New(srv.URL)
	require.NoError(t, err)
	result, err := first.Login(context.Background(), "dana", "pw")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.NoError(t, first.SaveCookies(path))

	// The server set the cookie without a Path, which default-scopes
	// it to /api; it must still land in the file.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "abc123")

	// A fresh client restores the session from disk.
	second, err := New(srv.URL)
	require.NoError(t, err)
	require.NoError(t, second.LoadCookies(path))

	progress, err := second.Progress(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, progress.XP)
	assert.Equal(t, 1, logins, "no second login needed")
}
