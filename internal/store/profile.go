package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// profileRepo implements ProfileRepo over the kv table.
type profileRepo struct {
	db *sql.DB
}

func (r *profileRepo) Save(ctx context.Context, raw []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		ProfileKey, string(raw))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Load(ctx context.Context) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, ProfileKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return []byte(value), nil
}

func (r *profileRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, ProfileKey)
	if err != nil {
		return fmt.Errorf("clear profile: %w", err)
	}
	return nil
}
