package api

// Schema pairs a name with a JSON Schema definition for response
// validation. The backend generates most payloads with an LLM, so
// structurally invalid bodies are a real failure mode, not a
// hypothetical one.
type Schema struct {
	Name       string
	Definition map[string]any
}

// RoadmapSchema validates the /api/roadmap response.
var RoadmapSchema = &Schema{
	Name: "roadmap-response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"roadmap": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "integer"},
						"title":       map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string"},
						"icon":        map[string]any{"type": "string"},
					},
					"required": []any{"id", "title"},
				},
			},
		},
		"required": []any{"roadmap"},
	},
}

// QuizSchema validates the /api/quiz response.
var QuizSchema = &Schema{
	Name: "quiz-response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quiz": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type": map[string]any{
							"type": "string",
							"enum": []any{"scenario", "code_analysis", "mcq"},
						},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required": []any{"type", "question"},
				},
			},
		},
		"required": []any{"quiz"},
	},
}

// EvaluationSchema validates the /api/evaluate response.
var EvaluationSchema = &Schema{
	Name: "evaluation-response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":            map[string]any{"type": "number"},
			"total":            map[string]any{"type": "number"},
			"percentage":       map[string]any{"type": "number"},
			"overall_feedback": map[string]any{"type": "string"},
			"per_question": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_num": map[string]any{"type": "integer"},
						"is_correct":   map[string]any{"type": "boolean"},
						"feedback":     map[string]any{"type": "string"},
					},
					"required": []any{"question_num", "is_correct"},
				},
			},
			"strong_areas": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"weak_areas":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required": []any{"score", "total", "percentage"},
	},
}

// FlashcardsSchema validates the /api/flashcards response.
var FlashcardsSchema = &Schema{
	Name: "flashcards-response",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"front": map[string]any{"type": "string", "minLength": 1},
						"back":  map[string]any{"type": "string", "minLength": 1},
						"emoji": map[string]any{"type": "string"},
					},
					"required": []any{"front", "back"},
				},
			},
		},
		"required": []any{"cards"},
	},
}
