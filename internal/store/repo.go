package store

import (
	"context"
	"time"
)

// ProfileKey is the fixed kv key the current profile is stored under.
const ProfileKey = "unipal_user"

// ProfileRepo persists the single active profile as an opaque JSON
// document. Readers must tolerate both an absent record and malformed
// content; decoding is the caller's concern.
type ProfileRepo interface {
	// Save stores the full profile snapshot, replacing any prior one.
	Save(ctx context.Context, raw []byte) error

	// Load returns the stored snapshot, or (nil, nil) when absent.
	Load(ctx context.Context) ([]byte, error)

	// Clear removes the stored snapshot. Clearing an absent record is
	// not an error.
	Clear(ctx context.Context) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QuizResultEventData captures one completed quiz run.
type QuizResultEventData struct {
	Course string
	Score  int
	Total  int
}

// QuizResult is a stored quiz run with its timestamp.
type QuizResult struct {
	Course    string
	Score     int
	Total     int
	Timestamp time.Time
}

// LLMUsage aggregates token consumption for one request purpose.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// EventRepo provides append access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendQuizResult records a completed quiz run.
	AppendQuizResult(ctx context.Context, data QuizResultEventData) error

	// RecentQuizResults returns up to limit runs, newest first.
	RecentQuizResults(ctx context.Context, limit int) ([]QuizResult, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
