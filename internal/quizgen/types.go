// Package quizgen generates practice quizzes for a student's course
// using the LLM provider's structured output.
package quizgen

import "github.com/chidera/unipal/internal/catalog"

// GenerateInput describes the quiz to produce.
type GenerateInput struct {
	// Course is the student's course of study, e.g. "Computer Science".
	Course string

	// Subject optionally narrows the quiz to one subject. When set,
	// the subject name and code steer the questions.
	Subject *catalog.Subject

	// Level is the student's level, e.g. "200 Level".
	Level string

	// Count is the number of questions to generate.
	Count int
}

// Config controls generation behavior.
type Config struct {
	// MaxTokens is the token budget for the response.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
