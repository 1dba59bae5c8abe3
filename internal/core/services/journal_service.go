package services

import (
	"context"
	"time"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

type JournalService struct {
	repo domain.JournalRepository
}

func NewJournalService(repo domain.JournalRepository) *JournalService {
	return &JournalService{repo: repo}
}

type CreateJournalInput struct {
	UserID    string
	Timestamp time.Time
	Decision  string
	Reason    string
	Feeling   string

	MoodValence *float64
	MoodEnergy  *float64
}

func (s *JournalService) Create(ctx context.Context, input CreateJournalInput) (*domain.JournalEntry, error) {
	at := input.Timestamp
	if at.IsZero() {
		at = time.Now().UTC()
	}

	entry, err := domain.NewJournalEntry(input.UserID, at, input.Decision, input.Reason, input.Feeling)
	if err != nil {
		return nil, err
	}

	if input.MoodValence != nil && input.MoodEnergy != nil {
		entry.AttachMood(*input.MoodValence, *input.MoodEnergy)
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *JournalService) ListByRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	return s.repo.ListByUserAndRange(ctx, userID, from, to)
}
