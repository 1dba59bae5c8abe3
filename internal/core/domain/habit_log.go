package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLogInvalidHabitID = errors.New("habit_id is required")
	ErrLogInvalidUserID  = errors.New("user_id is required")
	ErrLogInvalidDate    = errors.New("log date is required")
)

// HabitLog records whether a habit was completed on a given day.
// At most one logical record exists per (habit, day); a second write
// for the same day updates the existing record instead of duplicating it.
type HabitLog struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	HabitID   string    `json:"habit_id" db:"habit_id"`
	Date      time.Time `json:"date" db:"date"`
	Completed bool      `json:"completed" db:"completed"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Day truncates a timestamp to UTC midnight. Time-of-day is irrelevant
// for completion logs, so every date passes through here before storage
// or comparison.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func NewHabitLog(habitID, userID string, date time.Time, completed bool) *HabitLog {
	now := time.Now().UTC()

	return &HabitLog{
		ID:        uuid.New().String(),
		HabitID:   habitID,
		UserID:    userID,
		Date:      Day(date),
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (l *HabitLog) Validate() error {
	if strings.TrimSpace(l.HabitID) == "" {
		return ErrLogInvalidHabitID
	}
	if strings.TrimSpace(l.UserID) == "" {
		return ErrLogInvalidUserID
	}
	if l.Date.IsZero() {
		return ErrLogInvalidDate
	}
	return nil
}
