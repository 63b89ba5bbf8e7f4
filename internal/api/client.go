package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client talks to the LearnSphere backend. All generation endpoints are
// JSON-over-HTTP POST; progress and history are GET. The backend keeps
// learner identity in a session cookie, so the client carries a cookie
// jar that can be persisted between runs.
type Client struct {
	baseURL   string
	hc        *http.Client
	jar       *cookiejar.Jar
	sessionID string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero means no timeout, which
// matches the backend's long-running generation endpoints.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client. The cookie jar is
// reattached so session persistence keeps working.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.hc = hc
		c.hc.Jar = c.jar
	}
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		hc:        &http.Client{Jar: jar},
		jar:       jar,
		sessionID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// storedCookie is the on-disk shape of one persisted cookie.
type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Expires time.Time `json:"expires,omitempty"`
}

// SaveCookies writes the session cookies for the server to path.
func (c *Client) SaveCookies(path string) error {
	// A Set-Cookie without an explicit Path is scoped to /api by the
	// default-path rule, so the jar must be asked at an /api/ URL or
	// the session cookie is invisible here.
	u, err := url.Parse(c.baseURL + "/api/")
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}

	var stored []storedCookie
	for _, ck := range c.jar.Cookies(u) {
		stored = append(stored, storedCookie{Name: ck.Name, Value: ck.Value, Expires: ck.Expires})
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("marshal cookies: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cookie dir: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadCookies restores previously saved session cookies. A missing file
// is not an error; the learner simply starts unauthenticated.
func (c *Client) LoadCookies(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cookie file: %w", err)
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("parse cookie file: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, sc := range stored {
		// Path "/" so restored cookies match every endpoint.
		cookies = append(cookies, &http.Cookie{Name: sc.Name, Value: sc.Value, Path: "/", Expires: sc.Expires})
	}
	c.jar.SetCookies(u, cookies)
	return nil
}

// do issues one request and returns the raw body. Non-2xx statuses map
// to *ErrStatus with the server's error string when the body carries one.
func (c *Client) do(ctx context.Context, method, path string, body any, schema *Schema) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, &ErrTransport{Endpoint: path, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Client-Session", c.sessionID)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &ErrTransport{Endpoint: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrTransport{Endpoint: path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrStatus{Endpoint: path, Status: resp.StatusCode, Message: serverError(raw)}
	}

	if err := validatePayload(path, schema, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// serverError extracts the "error" field from a JSON error body.
func serverError(raw []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &body) == nil {
		return body.Error
	}
	return ""
}

func (c *Client) postJSON(ctx context.Context, path string, body any, schema *Schema, out any) error {
	raw, err := c.do(ctx, http.MethodPost, path, body, schema)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidPayload{Endpoint: path, Content: raw, Err: err}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &ErrInvalidPayload{Endpoint: path, Content: raw, Err: err}
	}
	return nil
}

// Roadmap generates a learning roadmap for the given level.
func (c *Client) Roadmap(ctx context.Context, level Level) ([]Topic, error) {
	var resp struct {
		Roadmap []Topic `json:"roadmap"`
	}
	req := map[string]any{"level": level}
	if err := c.postJSON(ctx, "/api/roadmap", req, RoadmapSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Roadmap, nil
}

// Content generates topic content in the given style.
func (c *Client) Content(ctx context.Context, topic string, level Level, style Style) (*Content, error) {
	var resp Content
	req := map[string]any{"topic": topic, "level": level, "style": style}
	if err := c.postJSON(ctx, "/api/content", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Quiz generates quiz questions for the topic.
func (c *Client) Quiz(ctx context.Context, topic string, level Level) ([]Question, error) {
	var resp struct {
		Quiz []Question `json:"quiz"`
	}
	req := map[string]any{"topic": topic, "level": level}
	if err := c.postJSON(ctx, "/api/quiz", req, QuizSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Quiz, nil
}

// Evaluate grades the learner's answers. The quiz questions are echoed
// back so the server can grade statelessly.
func (c *Client) Evaluate(ctx context.Context, topic string, level Level, quiz []Question, answers []string) (*Evaluation, error) {
	var resp Evaluation
	req := map[string]any{
		"topic":     topic,
		"level":     level,
		"quiz_data": quiz,
		"answers":   answers,
	}
	if err := c.postJSON(ctx, "/api/evaluate", req, EvaluationSchema, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Revision generates revision material targeting the given weak areas.
// A nil slice is sent as an empty list.
func (c *Client) Revision(ctx context.Context, topic string, level Level, weakAreas []string) (string, error) {
	if weakAreas == nil {
		weakAreas = []string{}
	}
	var resp struct {
		Content string `json:"content"`
	}
	req := map[string]any{"topic": topic, "level": level, "weak_areas": weakAreas}
	if err := c.postJSON(ctx, "/api/revision", req, nil, &resp); err != nil {
		return "", err
	}
	return resp.Content, nil
}

// Flashcards generates flashcards for the topic.
func (c *Client) Flashcards(ctx context.Context, topic string, level Level) ([]Flashcard, error) {
	var resp struct {
		Cards []Flashcard `json:"cards"`
	}
	req := map[string]any{"topic": topic, "level": level}
	if err := c.postJSON(ctx, "/api/flashcards", req, FlashcardsSchema, &resp); err != nil {
		return nil, err
	}
	return resp.Cards, nil
}

// ChatRequest carries one chat turn to the assistant.
type ChatRequest struct {
	Question     string        `json:"question"`
	Level        Level         `json:"level,omitempty"`
	ContextTopic string        `json:"context_topic,omitempty"`
	History      []ChatMessage `json:"chat_history"`
	Mode         ChatMode      `json:"mode"`
}

// Chat sends one question to the learning assistant.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatReply, error) {
	if req.History == nil {
		req.History = []ChatMessage{}
	}
	if req.Mode == "" {
		req.Mode = ChatModeText
	}
	var resp ChatReply
	if err := c.postJSON(ctx, "/api/chat", req, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Progress fetches the learner's server-side progress record.
func (c *Client) Progress(ctx context.Context) (*Progress, error) {
	var resp Progress
	if err := c.getJSON(ctx, "/api/progress", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// History fetches recent learning history entries.
func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	var resp []HistoryEntry
	if err := c.getJSON(ctx, "/api/history", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// auth posts credentials and decodes the result. The backend answers
// auth failures with a 4xx status and an error body, which maps to a
// non-success AuthResult rather than an error; only transport failures
// and server faults surface as errors.
func (c *Client) auth(ctx context.Context, path string, body any) (*AuthResult, error) {
	raw, err := c.do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		var status *ErrStatus
		if errors.As(err, &status) && status.Status < 500 {
			msg := status.Message
			if msg == "" {
				msg = "Authentication failed"
			}
			return &AuthResult{Success: false, Error: msg}, nil
		}
		return nil, err
	}

	var resp AuthResult
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrInvalidPayload{Endpoint: path, Content: raw, Err: err}
	}
	return &resp, nil
}

// Login authenticates with username and password.
func (c *Client) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	return c.auth(ctx, "/api/login", map[string]any{
		"username": username,
		"password": password,
	})
}

// Register creates a new account. The display name mirrors the
// username, matching the registration form.
func (c *Client) Register(ctx context.Context, username, password, email string) (*AuthResult, error) {
	return c.auth(ctx, "/api/register", map[string]any{
		"username":     username,
		"password":     password,
		"email":        email,
		"display_name": username,
	})
}
