package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chidera/unipal/internal/catalog"
	"github.com/chidera/unipal/internal/llm"
)

// Generator produces practice quizzes via the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM response before validation.
type quizOutput struct {
	Questions []struct {
		Question           string   `json:"question"`
		Options            []string `json:"options"`
		CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	} `json:"questions"`
}

// Generate produces a quiz for the given input. The returned questions
// slot directly into the quiz progression in place of the built-in bank.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]catalog.QuizQuestion, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	if input.Count <= 0 {
		input.Count = 5
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal([]byte(resp.Text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}

	questions := make([]catalog.QuizQuestion, 0, len(raw.Questions))
	for i, q := range raw.Questions {
		cq := catalog.QuizQuestion{
			ID:            i + 1,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswerIndex,
		}
		if err := checkQuestion(cq); err != nil {
			return nil, &llm.ErrInvalidResponse{
				Text: resp.Text,
				Err:  fmt.Errorf("question %d: %w", i+1, err),
			}
		}
		questions = append(questions, cq)
	}

	if len(questions) == 0 {
		return nil, &llm.ErrInvalidResponse{
			Text: resp.Text,
			Err:  fmt.Errorf("model returned no questions"),
		}
	}

	return questions, nil
}

// checkQuestion enforces the structural rules the schema alone can't:
// exactly 4 options and an in-range answer index.
func checkQuestion(q catalog.QuizQuestion) error {
	if q.Question == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != 4 {
		return fmt.Errorf("expected 4 options, got %d", len(q.Options))
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return fmt.Errorf("correct answer index %d out of range", q.CorrectAnswer)
	}
	for i, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	return nil
}
