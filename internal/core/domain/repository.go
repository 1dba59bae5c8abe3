package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrHabitNotFound   = errors.New("habit not found")
	ErrLogNotFound     = errors.New("habit log not found")
	ErrMoodNotFound    = errors.New("mood entry not found")
	ErrTxnNotFound     = errors.New("transaction not found")
	ErrJournalNotFound = errors.New("journal entry not found")
	ErrUnauthorized    = errors.New("record does not belong to user")
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

type HabitRepository interface {
	Create(ctx context.Context, habit *Habit) error

	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID returns the user's non-archived habits.
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)

	Update(ctx context.Context, habit *Habit) error

	Delete(ctx context.Context, id string) error
}

type HabitLogRepository interface {
	// Upsert writes the completion state for (habit, day). A second
	// write for the same day replaces the existing record's Completed
	// flag rather than inserting a duplicate.
	Upsert(ctx context.Context, log *HabitLog) error

	// GetByHabitAndDay returns the single log for a habit on a given
	// day, or ErrLogNotFound.
	GetByHabitAndDay(ctx context.Context, habitID string, day time.Time) (*HabitLog, error)

	// ListByHabitID returns a habit's logs ordered most-recent-first,
	// the order the streak scan consumes them in.
	ListByHabitID(ctx context.Context, habitID string) ([]*HabitLog, error)

	// ListByUserAndDay returns all of a user's logs for one day.
	ListByUserAndDay(ctx context.Context, userID string, day time.Time) ([]*HabitLog, error)
}

type MoodRepository interface {
	Create(ctx context.Context, entry *MoodEntry) error

	// ListByUserAndRange returns entries with timestamp in [from, to),
	// ordered most-recent-first.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*MoodEntry, error)

	// LatestForDay returns the newest entry on the given day, or
	// ErrMoodNotFound when the day is unlogged.
	LatestForDay(ctx context.Context, userID string, day time.Time) (*MoodEntry, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *Transaction) error

	// ListByUserAndRange returns transactions with timestamp in
	// [from, to), ordered most-recent-first.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*Transaction, error)
}

type JournalRepository interface {
	Create(ctx context.Context, entry *JournalEntry) error

	// ListByUserAndRange returns entries with timestamp in [from, to),
	// ordered most-recent-first.
	ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*JournalEntry, error)
}
