package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/chidera/unipal/internal/store"
)

// Store owns the active user profile and its persistence. Every
// mutating operation writes the full profile snapshot through the repo
// before committing it in memory, so a failed write leaves both the
// stored and in-memory state untouched.
type Store struct {
	repo     store.ProfileRepo
	current  *UserProfile
	restored bool
}

// NewStore creates a Store over the given repo. Call Restore once at
// startup before reading Stage or Current.
func NewStore(repo store.ProfileRepo) *Store {
	return &Store{repo: repo}
}

// Current returns a copy of the active profile, or nil when logged out.
func (s *Store) Current() *UserProfile {
	if s.current == nil {
		return nil
	}
	c := *s.current
	return &c
}

// Restore loads the persisted profile. A missing record means "no
// profile"; a corrupt record is discarded with a warning rather than
// failing startup.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore profile: %w", err)
	}

	if raw != nil {
		var p UserProfile
		if err := json.Unmarshal(raw, &p); err != nil {
			fmt.Fprintf(os.Stderr, "warning: discarding corrupt stored profile: %v\n", err)
			if clearErr := s.repo.Clear(ctx); clearErr != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to clear corrupt profile: %v\n", clearErr)
			}
		} else {
			s.current = &p
		}
	}

	s.restored = true
	return nil
}

// Login creates a fresh profile with a new id and persists it. The
// password is checked for presence only; there is no verification.
func (s *Store) Login(ctx context.Context, name, email, password string) (*UserProfile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("email: %w", ErrValidation)
	}
	if strings.TrimSpace(password) == "" {
		return nil, fmt.Errorf("password: %w", ErrValidation)
	}

	p := &UserProfile{
		ID:    uuid.New().String(),
		Name:  strings.TrimSpace(name),
		Email: email,
	}

	if err := s.persist(ctx, p); err != nil {
		return nil, err
	}
	s.current = p
	return s.Current(), nil
}

// UpdateProfile merges the given changes into the active profile,
// recomputes the onboarding flag, and persists the result.
func (s *Store) UpdateProfile(ctx context.Context, ch Changes) (*UserProfile, error) {
	if s.current == nil {
		return nil, ErrNoActiveProfile
	}

	merged := *s.current
	if ch.University != nil {
		merged.University = *ch.University
	}
	if ch.Course != nil {
		merged.Course = *ch.Course
	}
	if ch.Level != nil {
		merged.Level = *ch.Level
	}
	merged.HasCompletedOnboarding = merged.onboardingComplete()

	if err := s.persist(ctx, &merged); err != nil {
		return nil, err
	}
	s.current = &merged
	return s.Current(), nil
}

// Logout clears the active profile and its persisted copy.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.current = nil
	return nil
}

func (s *Store) persist(ctx context.Context, p *UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.repo.Save(ctx, raw); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}
