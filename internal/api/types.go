package api

// Level is the learner's self-reported experience level.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// AllLevels returns the selectable levels in display order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// Style is the learning style governing generated content format.
type Style string

const (
	StyleReading     Style = "Reading"
	StyleAuditory    Style = "Auditory"
	StyleKinesthetic Style = "Kinesthetic"
	StyleVisual      Style = "Visual"
)

// AllStyles returns the selectable styles in display order.
func AllStyles() []Style {
	return []Style{StyleReading, StyleAuditory, StyleKinesthetic, StyleVisual}
}

// Topic is one entry of a generated roadmap. Titles are unique within
// a roadmap and serve as the identity key for completion tracking.
type Topic struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// QuestionKind discriminates quiz question types.
type QuestionKind string

const (
	QuestionScenario     QuestionKind = "scenario"
	QuestionCodeAnalysis QuestionKind = "code_analysis"
	QuestionMCQ          QuestionKind = "mcq"
)

// HasOptions reports whether the kind renders as an exclusive option list.
func (k QuestionKind) HasOptions() bool {
	return k == QuestionMCQ || k == QuestionCodeAnalysis
}

// Question is a single quiz question. Options is present only for
// kinds that render as an option list.
type Question struct {
	Type     QuestionKind `json:"type"`
	Question string       `json:"question"`
	Options  []string     `json:"options,omitempty"`
}

// ContentKind discriminates generated content payloads.
type ContentKind string

const (
	ContentText   ContentKind = "text"
	ContentAudio  ContentKind = "audio"
	ContentVisual ContentKind = "visual"
)

// Video is a video reference in visual content or chat media. Exactly
// one of the two shapes applies: a search link (URL) or an embeddable
// video (VideoID), distinguished by IsSearchLink.
type Video struct {
	IsSearchLink bool   `json:"is_search_link"`
	URL          string `json:"url,omitempty"`
	Title        string `json:"title"`
	VideoID      string `json:"video_id,omitempty"`
}

// Content is the /api/content response.
type Content struct {
	Type      ContentKind `json:"type"`
	Body      string      `json:"content"`
	AudioPath string      `json:"audio_path,omitempty"`
	Videos    []Video     `json:"videos,omitempty"`
}

// QuestionResult is the per-question verdict inside an Evaluation.
type QuestionResult struct {
	QuestionNum int    `json:"question_num"`
	IsCorrect   bool   `json:"is_correct"`
	Feedback    string `json:"feedback"`
}

// Evaluation is the /api/evaluate response. XPEarned and TotalXP are
// set by the server when it awards XP for the attempt.
type Evaluation struct {
	Score           int              `json:"score"`
	Total           int              `json:"total"`
	Percentage      float64          `json:"percentage"`
	OverallFeedback string           `json:"overall_feedback"`
	PerQuestion     []QuestionResult `json:"per_question"`
	StrongAreas     []string         `json:"strong_areas"`
	WeakAreas       []string         `json:"weak_areas"`
	XPEarned        int              `json:"xp_earned"`
	TotalXP         int              `json:"total_xp"`
}

// Flashcard is a two-sided prompt/answer card.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
	Emoji string `json:"emoji,omitempty"`
}

// Role is the chat message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry of the chat transcript.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatMode selects how the assistant answers.
type ChatMode string

const (
	ChatModeText  ChatMode = "text"
	ChatModeFlow  ChatMode = "flow"
	ChatModeImage ChatMode = "image"
	ChatModeAudio ChatMode = "audio"
	ChatModeVideo ChatMode = "video"
)

// AllChatModes returns the selectable chat modes in display order.
func AllChatModes() []ChatMode {
	return []ChatMode{ChatModeText, ChatModeFlow, ChatModeImage, ChatModeAudio, ChatModeVideo}
}

// ChatMedia is an optional media attachment on a chat reply, tagged by
// Type: "image" and "audio" carry Path, "video" carries Videos.
type ChatMedia struct {
	Type   string  `json:"type"`
	Path   string  `json:"path,omitempty"`
	Desc   string  `json:"desc,omitempty"`
	Videos []Video `json:"videos,omitempty"`
}

// ChatReply is the /api/chat response.
type ChatReply struct {
	Text        string     `json:"text"`
	Media       *ChatMedia `json:"media,omitempty"`
	Suggestions []string   `json:"suggestions,omitempty"`
}

// Progress mirrors the server-side progress record.
type Progress struct {
	Level           Level    `json:"level"`
	XP              int      `json:"xp"`
	Badges          []string `json:"badges"`
	TopicsCompleted []string `json:"topics_completed"`
	CurrentTopic    string   `json:"current_topic"`
	LearningStyle   Style    `json:"learning_style"`
	Roadmap         []Topic  `json:"current_roadmap"`
}

// HistoryEntry is one row of the learning history.
type HistoryEntry struct {
	Topic         string `json:"topic"`
	LearningStyle string `json:"learning_style"`
	QuizScore     *int   `json:"quiz_score"`
	QuizTotal     *int   `json:"quiz_total"`
	Timestamp     string `json:"timestamp"`
}

// User identifies an authenticated account.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// AuthResult is the /api/login and /api/register response.
type AuthResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	User    *User  `json:"user,omitempty"`
}
