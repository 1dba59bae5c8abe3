package services

import (
	"context"
	"errors"
	"time"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

type MoodService struct {
	repo domain.MoodRepository
}

func NewMoodService(repo domain.MoodRepository) *MoodService {
	return &MoodService{repo: repo}
}

type LogMoodInput struct {
	UserID    string
	Timestamp time.Time
	Label     string
	Valence   float64
	Energy    float64
	Note      string
}

func (s *MoodService) Log(ctx context.Context, input LogMoodInput) (*domain.MoodEntry, error) {
	at := input.Timestamp
	if at.IsZero() {
		at = time.Now().UTC()
	}

	entry, err := domain.NewMoodEntry(input.UserID, at, input.Label, input.Valence, input.Energy, input.Note)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *MoodService) ListByRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.MoodEntry, error) {
	return s.repo.ListByUserAndRange(ctx, userID, from, to)
}

// LatestForDay returns the day's newest entry, or nil when the day is
// unlogged. Absence is an ordinary state here, not an error: the focus
// engine treats it as the default-midpoint signal.
func (s *MoodService) LatestForDay(ctx context.Context, userID string, day time.Time) (*domain.MoodEntry, error) {
	entry, err := s.repo.LatestForDay(ctx, userID, domain.Day(day))
	if err != nil {
		if errors.Is(err, domain.ErrMoodNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return entry, nil
}
