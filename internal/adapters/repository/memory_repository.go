package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

// In-memory implementations of every repository interface. They back
// the tests and double as the reference semantics for the persistent
// adapters: same ordering, same sentinel errors, same upsert behavior.

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{store: make(map[string]*domain.User)}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.store {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.store[u.ID] = u
	return nil
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{store: make(map[string]*domain.Habit)}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[habit.ID] = habit
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

func (r *InMemoryHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store {
		if h.UserID == userID && h.ArchivedAt == nil {
			habits = append(habits, h)
		}
	}

	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}

	r.store[habit.ID] = habit
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrHabitNotFound
	}

	delete(r.store, id)
	return nil
}

type InMemoryHabitLogRepository struct {
	store map[string]*domain.HabitLog

	mu sync.RWMutex
}

func NewInMemoryHabitLogRepository() *InMemoryHabitLogRepository {
	return &InMemoryHabitLogRepository{store: make(map[string]*domain.HabitLog)}
}

func logKey(habitID string, day time.Time) string {
	return habitID + "|" + domain.Day(day).Format("2006-01-02")
}

func (r *InMemoryHabitLogRepository) Upsert(ctx context.Context, l *domain.HabitLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := logKey(l.HabitID, l.Date)
	if existing, ok := r.store[key]; ok {
		existing.Completed = l.Completed
		existing.UpdatedAt = l.UpdatedAt
		return nil
	}

	r.store[key] = l
	return nil
}

func (r *InMemoryHabitLogRepository) GetByHabitAndDay(ctx context.Context, habitID string, day time.Time) (*domain.HabitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.store[logKey(habitID, day)]
	if !ok {
		return nil, domain.ErrLogNotFound
	}
	return l, nil
}

func (r *InMemoryHabitLogRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var logs []*domain.HabitLog
	for _, l := range r.store {
		if l.HabitID == habitID {
			logs = append(logs, l)
		}
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})

	return logs, nil
}

func (r *InMemoryHabitLogRepository) ListByUserAndDay(ctx context.Context, userID string, day time.Time) ([]*domain.HabitLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day = domain.Day(day)

	var logs []*domain.HabitLog
	for _, l := range r.store {
		if l.UserID == userID && l.Date.Equal(day) {
			logs = append(logs, l)
		}
	}

	return logs, nil
}

type InMemoryMoodRepository struct {
	entries []*domain.MoodEntry

	mu sync.RWMutex
}

func NewInMemoryMoodRepository() *InMemoryMoodRepository {
	return &InMemoryMoodRepository{}
}

func (r *InMemoryMoodRepository) Create(ctx context.Context, e *domain.MoodEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	return nil
}

func (r *InMemoryMoodRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.MoodEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.MoodEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}

func (r *InMemoryMoodRepository) LatestForDay(ctx context.Context, userID string, day time.Time) (*domain.MoodEntry, error) {
	day = domain.Day(day)

	entries, err := r.ListByUserAndRange(ctx, userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrMoodNotFound
	}

	return entries[0], nil
}

type InMemoryTransactionRepository struct {
	txns []*domain.Transaction

	mu sync.RWMutex
}

func NewInMemoryTransactionRepository() *InMemoryTransactionRepository {
	return &InMemoryTransactionRepository{}
}

func (r *InMemoryTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.txns = append(r.txns, t)
	return nil
}

func (r *InMemoryTransactionRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Transaction
	for _, t := range r.txns {
		if t.UserID == userID && !t.Timestamp.Before(from) && t.Timestamp.Before(to) {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}

type InMemoryJournalRepository struct {
	entries []*domain.JournalEntry

	mu sync.RWMutex
}

func NewInMemoryJournalRepository() *InMemoryJournalRepository {
	return &InMemoryJournalRepository{}
}

func (r *InMemoryJournalRepository) Create(ctx context.Context, e *domain.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	return nil
}

func (r *InMemoryJournalRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.JournalEntry
	for _, e := range r.entries {
		if e.UserID == userID && !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})

	return out, nil
}
