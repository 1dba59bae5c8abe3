package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrJournalInvalidUserID = errors.New("invalid user id")
	ErrJournalEmptyDecision = errors.New("decision text cannot be empty")
)

// JournalEntry is an immutable decision-journal record: what was
// decided, why, and how it felt. Entries feed the external insight
// generator and are never aggregated numerically.
type JournalEntry struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Decision  string    `json:"decision" db:"decision"`
	Reason    string    `json:"reason,omitempty" db:"reason"`
	Feeling   string    `json:"feeling,omitempty" db:"feeling"`

	// Optional mood snapshot at the moment of the decision.
	MoodValence *float64 `json:"mood_valence,omitempty" db:"mood_valence"`
	MoodEnergy  *float64 `json:"mood_energy,omitempty" db:"mood_energy"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewJournalEntry(userID string, at time.Time, decision, reason, feeling string) (*JournalEntry, error) {
	if userID == "" {
		return nil, ErrJournalInvalidUserID
	}

	decision = strings.TrimSpace(decision)
	if decision == "" {
		return nil, ErrJournalEmptyDecision
	}

	return &JournalEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Timestamp: at.UTC(),
		Decision:  decision,
		Reason:    strings.TrimSpace(reason),
		Feeling:   strings.TrimSpace(feeling),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AttachMood records the valence/energy snapshot taken when the entry
// was written. Values are clamped like any other mood signal.
func (e *JournalEntry) AttachMood(valence, energy float64) {
	v := clampSignal(valence)
	en := clampSignal(energy)
	e.MoodValence = &v
	e.MoodEnergy = &en
}
