package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/coherence-app/coherence-engine/internal/adapters/ai"
	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockHabitRepo struct{ mock.Mock }

func (m *MockHabitRepo) Create(ctx context.Context, h *domain.Habit) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHabitRepo) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) Update(ctx context.Context, h *domain.Habit) error {
	return m.Called(ctx, h).Error(0)
}

func (m *MockHabitRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockLogRepo struct{ mock.Mock }

func (m *MockLogRepo) Upsert(ctx context.Context, l *domain.HabitLog) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLogRepo) GetByHabitAndDay(ctx context.Context, habitID string, day time.Time) (*domain.HabitLog, error) {
	args := m.Called(ctx, habitID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HabitLog), args.Error(1)
}

func (m *MockLogRepo) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, habitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

func (m *MockLogRepo) ListByUserAndDay(ctx context.Context, userID string, day time.Time) ([]*domain.HabitLog, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HabitLog), args.Error(1)
}

type MockMoodRepo struct{ mock.Mock }

func (m *MockMoodRepo) Create(ctx context.Context, e *domain.MoodEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockMoodRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.MoodEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MoodEntry), args.Error(1)
}

func (m *MockMoodRepo) LatestForDay(ctx context.Context, userID string, day time.Time) (*domain.MoodEntry, error) {
	args := m.Called(ctx, userID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MoodEntry), args.Error(1)
}

type MockTxnRepo struct{ mock.Mock }

func (m *MockTxnRepo) Create(ctx context.Context, t *domain.Transaction) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTxnRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Transaction, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

type MockJournalRepo struct{ mock.Mock }

func (m *MockJournalRepo) Create(ctx context.Context, e *domain.JournalEntry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockJournalRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.JournalEntry), args.Error(1)
}

type MockGenerator struct{ mock.Mock }

func (m *MockGenerator) DailyReview(ctx context.Context, req ai.DailyReviewRequest) (*ai.DailyReviewResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.DailyReviewResponse), args.Error(1)
}

func (m *MockGenerator) DecisionInsights(ctx context.Context, req ai.DecisionInsightsRequest) (*ai.DecisionInsightsResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.DecisionInsightsResponse), args.Error(1)
}
