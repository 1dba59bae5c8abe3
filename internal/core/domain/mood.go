package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMoodInvalidUserID = errors.New("invalid user id")
	ErrMoodNoteTooLong   = errors.New("mood note is too long (max 1000 chars)")
)

// Categorical mood labels. The store accepts free-form labels so old
// clients keep working; anything outside this set falls into the low
// scoring tier downstream.
const (
	MoodSad     = "sad"
	MoodNeutral = "neutral"
	MoodHappy   = "happy"
	MoodExcited = "excited"
	MoodCalm    = "calm"

	MaxMoodNoteLen = 1000
)

// MoodEntry is an immutable mood log. It carries both the categorical
// label shown in the simplified UI and the two-dimensional
// valence/energy representation (each in [-1, 1]).
type MoodEntry struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Label     string    `json:"label" db:"label"`
	Valence   float64   `json:"valence" db:"valence"`
	Energy    float64   `json:"energy" db:"energy"`
	Note      string    `json:"note,omitempty" db:"note"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func clampSignal(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func NewMoodEntry(userID string, at time.Time, label string, valence, energy float64, note string) (*MoodEntry, error) {
	if userID == "" {
		return nil, ErrMoodInvalidUserID
	}
	if len(note) > MaxMoodNoteLen {
		return nil, ErrMoodNoteTooLong
	}

	return &MoodEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Timestamp: at.UTC(),
		Label:     strings.ToLower(strings.TrimSpace(label)),
		Valence:   clampSignal(valence),
		Energy:    clampSignal(energy),
		Note:      note,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// KnownMoodLabel reports whether the label belongs to the fixed
// five-value enum.
func KnownMoodLabel(label string) bool {
	switch label {
	case MoodSad, MoodNeutral, MoodHappy, MoodExcited, MoodCalm:
		return true
	}
	return false
}
