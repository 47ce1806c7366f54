package llm

import (
	"errors"
	"testing"
)

func quizSchema() *Schema {
	return &Schema{
		Name:        "test-quiz",
		Description: "a list of questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
							"options": map[string]any{
								"type":  "array",
								"items": map[string]any{"type": "string"},
							},
							"correctAnswerIndex": map[string]any{"type": "integer"},
						},
						"required": []any{"question", "options", "correctAnswerIndex"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

func TestValidateResponse_NoSchema(t *testing.T) {
	if err := validateResponse(nil, "any plain text at all"); err != nil {
		t.Fatalf("nil schema should accept anything, got: %v", err)
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	text := `{"questions":[{"question":"What is 2+2?","options":["3","4","5","6"],"correctAnswerIndex":1}]}`
	if err := validateResponse(quizSchema(), text); err != nil {
		t.Fatalf("expected valid response, got: %v", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	err := validateResponse(quizSchema(), "Sure! Here are your questions: ...")
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
	if inv.Text == "" {
		t.Fatal("expected offending text to be captured")
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	text := `{"questions":[{"question":"What is 2+2?","options":["3","4"]}]}`
	err := validateResponse(quizSchema(), text)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse for missing field, got %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	text := `{"questions":"not an array"}`
	err := validateResponse(quizSchema(), text)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse for wrong type, got %T", err)
	}
}
