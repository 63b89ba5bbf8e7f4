package state

import (
	"github.com/learnsphere/learnsphere-cli/internal/api"
)

// Store holds the learner's session state for one program run. All
// mutation goes through methods so invariants (topic/title coherence,
// monotonic completion) hold in one place. The Bubble Tea update loop
// is single-threaded, so no locking is needed: every mutation happens
// on the UI goroutine.
type Store struct {
	level           api.Level
	roadmap         []api.Topic
	topicsCompleted []string // insertion order kept for display
	completedSet    map[string]bool
	xp              int
	badges          []string

	currentTopicID    int
	currentTopicSet   bool
	currentTopicTitle string

	learningStyle api.Style
	content       *api.Content
	quizData      []api.Question
	userAnswers   map[int]string
	feedback      *api.Evaluation

	chatMessages  []api.ChatMessage
	chatMode      api.ChatMode
	chatOpen      bool
	sidebarHidden bool
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		completedSet: make(map[string]bool),
		userAnswers:  make(map[int]string),
		chatMode:     api.ChatModeText,
	}
}

// Seed populates the store from a server progress record. Called once
// at startup; a nil progress leaves the store empty.
func (s *Store) Seed(p *api.Progress) {
	if p == nil {
		return
	}
	s.level = p.Level
	s.roadmap = p.Roadmap
	s.xp = p.XP
	s.badges = p.Badges
	for _, title := range p.TopicsCompleted {
		s.CompleteTopic(title)
	}
}

// Level returns the chosen level, or "" if none selected yet.
func (s *Store) Level() api.Level { return s.level }

// SetLevel records the chosen level and invalidates the roadmap, which
// is regenerated per level.
func (s *Store) SetLevel(level api.Level) {
	s.level = level
	s.roadmap = nil
}

// Roadmap returns the current roadmap, nil if none loaded.
func (s *Store) Roadmap() []api.Topic { return s.roadmap }

// SetRoadmap stores a freshly generated roadmap.
func (s *Store) SetRoadmap(topics []api.Topic) { s.roadmap = topics }

// TopicsCompleted returns completed topic titles in completion order.
func (s *Store) TopicsCompleted() []string { return s.topicsCompleted }

// IsCompleted reports whether the titled topic has been completed.
func (s *Store) IsCompleted(title string) bool { return s.completedSet[title] }

// CompleteTopic marks a topic title completed. Idempotent; completion
// never reverses within a session.
func (s *Store) CompleteTopic(title string) {
	if title == "" || s.completedSet[title] {
		return
	}
	s.completedSet[title] = true
	s.topicsCompleted = append(s.topicsCompleted, title)
}

// XP returns the accumulated experience points.
func (s *Store) XP() int { return s.xp }

// SetXP overwrites the XP total with the server's authoritative value.
func (s *Store) SetXP(xp int) {
	if xp >= 0 {
		s.xp = xp
	}
}

// Badges returns earned badge labels.
func (s *Store) Badges() []string { return s.badges }

// CurrentTopic returns the selected topic id, with ok=false when no
// topic is selected.
func (s *Store) CurrentTopic() (int, bool) { return s.currentTopicID, s.currentTopicSet }

// CurrentTopicTitle returns the selected topic's title, "" when none.
func (s *Store) CurrentTopicTitle() string { return s.currentTopicTitle }

// SelectTopic records the current topic and clears any loaded content,
// keeping id and title coherent.
func (s *Store) SelectTopic(id int, title string) {
	s.currentTopicID = id
	s.currentTopicSet = true
	s.currentTopicTitle = title
	s.content = nil
}

// NextTopic returns the roadmap successor of the current topic, with
// ok=false when there is none (end of roadmap, no roadmap, or the
// current topic is not on it).
func (s *Store) NextTopic() (api.Topic, bool) {
	for i, t := range s.roadmap {
		if t.Title == s.currentTopicTitle {
			if i+1 < len(s.roadmap) {
				return s.roadmap[i+1], true
			}
			return api.Topic{}, false
		}
	}
	return api.Topic{}, false
}

// LearningStyle returns the chosen style, "" when none.
func (s *Store) LearningStyle() api.Style { return s.learningStyle }

// SetLearningStyle records the style and clears stale content.
func (s *Store) SetLearningStyle(style api.Style) {
	s.learningStyle = style
	s.content = nil
}

// Content returns the loaded content payload, nil when none.
func (s *Store) Content() *api.Content { return s.content }

// SetContent stores a content payload.
func (s *Store) SetContent(c *api.Content) { s.content = c }

// QuizData returns the loaded quiz questions, nil when none.
func (s *Store) QuizData() []api.Question { return s.quizData }

// SetQuizData stores freshly generated questions and clears answers.
func (s *Store) SetQuizData(questions []api.Question) {
	s.quizData = questions
	s.userAnswers = make(map[int]string)
}

// Answer returns the recorded answer for a question index.
func (s *Store) Answer(idx int) string { return s.userAnswers[idx] }

// SetAnswer records the answer for a question index.
func (s *Store) SetAnswer(idx int, answer string) {
	s.userAnswers[idx] = answer
}

// Answers returns the recorded answers in question order, with
// ok=false when any question in [0,n) has an empty answer. Submission
// is permitted only when ok.
func (s *Store) Answers() ([]string, bool) {
	answers := make([]string, len(s.quizData))
	for i := range s.quizData {
		a := s.userAnswers[i]
		if a == "" {
			return nil, false
		}
		answers[i] = a
	}
	return answers, true
}

// Feedback returns the last evaluation result, nil when none.
func (s *Store) Feedback() *api.Evaluation { return s.feedback }

// SetFeedback stores an evaluation result.
func (s *Store) SetFeedback(fb *api.Evaluation) { s.feedback = fb }

// WeakAreas returns the weak areas from the last evaluation, or an
// empty list when there is none.
func (s *Store) WeakAreas() []string {
	if s.feedback == nil || s.feedback.WeakAreas == nil {
		return []string{}
	}
	return s.feedback.WeakAreas
}

// ResetQuiz clears quiz questions, answers, and feedback ahead of a
// retake.
func (s *Store) ResetQuiz() {
	s.quizData = nil
	s.userAnswers = make(map[int]string)
	s.feedback = nil
}

// ChatMessages returns the full chat transcript.
func (s *Store) ChatMessages() []api.ChatMessage { return s.chatMessages }

// AppendChatMessage appends one message to the transcript.
func (s *Store) AppendChatMessage(role api.Role, content string) {
	s.chatMessages = append(s.chatMessages, api.ChatMessage{Role: role, Content: content})
}

// ChatHistory returns the last n transcript entries for the request
// payload.
func (s *Store) ChatHistory(n int) []api.ChatMessage {
	if len(s.chatMessages) <= n {
		return s.chatMessages
	}
	return s.chatMessages[len(s.chatMessages)-n:]
}

// ChatMode returns the selected chat mode.
func (s *Store) ChatMode() api.ChatMode { return s.chatMode }

// SetChatMode selects how the assistant answers.
func (s *Store) SetChatMode(mode api.ChatMode) { s.chatMode = mode }

// ChatOpen reports whether the chat panel is open.
func (s *Store) ChatOpen() bool { return s.chatOpen }

// ToggleChat flips the chat panel and reports the new state.
func (s *Store) ToggleChat() bool {
	s.chatOpen = !s.chatOpen
	return s.chatOpen
}

// SidebarHidden reports whether the learner dismissed the sidebar.
func (s *Store) SidebarHidden() bool { return s.sidebarHidden }

// ToggleSidebar flips sidebar visibility.
func (s *Store) ToggleSidebar() { s.sidebarHidden = !s.sidebarHidden }
