package quizgen

import "github.com/chidera/unipal/internal/llm"

// QuizSchema defines the JSON schema for generated practice quizzes.
var QuizSchema = &llm.Schema{
	Name:        "practice-quiz",
	Description: "A set of multiple-choice practice questions for a university course",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the student, in plain text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 answer options where exactly one is correct",
						},
						"correctAnswerIndex": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Zero-based index of the correct option",
						},
					},
					"required":             []any{"question", "options", "correctAnswerIndex"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
