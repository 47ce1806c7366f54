package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo with plain SQL over the event tables.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		data.Success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_result_events (course, score, total) VALUES (?, ?, ?)`,
		data.Course, data.Score, data.Total)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentQuizResults(ctx context.Context, limit int) ([]QuizResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT course, score, total, timestamp
		 FROM quiz_result_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query quiz results: %w", err)
	}
	defer rows.Close()

	var out []QuizResult
	for rows.Next() {
		var res QuizResult
		var ts string
		if err := rows.Scan(&res.Course, &res.Score, &res.Total, &ts); err != nil {
			return nil, fmt.Errorf("scan quiz result: %w", err)
		}
		if t, err := time.Parse("2006-01-02T15:04:05.000Z", ts); err == nil {
			res.Timestamp = t
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT purpose, COUNT(*), SUM(input_tokens), SUM(output_tokens),
			CAST(AVG(latency_ms) AS INTEGER)
		 FROM llm_request_events GROUP BY purpose ORDER BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var u LLMUsage
		if err := rows.Scan(&u.Purpose, &u.Calls, &u.InputTokens, &u.OutputTokens, &u.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan LLM usage: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
