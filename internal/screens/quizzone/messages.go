package quizzone

import "github.com/chidera/unipal/internal/catalog"

// quizReadyMsg is sent when an AI-generated question set arrives.
type quizReadyMsg struct {
	Questions []catalog.QuizQuestion
	Err       error
}

// feedbackDoneMsg advances past the per-question feedback display.
type feedbackDoneMsg struct{}

// resultSavedMsg confirms the completed run was recorded.
type resultSavedMsg struct {
	Err error
}
