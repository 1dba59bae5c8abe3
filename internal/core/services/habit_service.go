package services

import (
	"context"
	"errors"
	"time"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
	"github.com/coherence-app/coherence-engine/internal/core/metrics"
)

type HabitService struct {
	repo    domain.HabitRepository
	logRepo domain.HabitLogRepository
}

func NewHabitService(repo domain.HabitRepository, logRepo domain.HabitLogRepository) *HabitService {
	return &HabitService{
		repo:    repo,
		logRepo: logRepo,
	}
}

type CreateHabitInput struct {
	UserID      string
	Name        string
	Description string
	Color       string
	Icon        string
	Frequency   string
	TargetCount int
	Difficulty  int
}

type UpdateHabitInput struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Color       string
	Icon        string
	Frequency   string
	TargetCount int
	Difficulty  int
}

// HabitStatus is a habit with its derived day-level state attached.
type HabitStatus struct {
	*domain.Habit
	CompletedToday bool `json:"completed_today"`
	Streak         int  `json:"streak"`
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.UserID, input.Name, input.Description, input.Color, input.Icon, input.Frequency, input.TargetCount, input.Difficulty)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if habit.UserID != input.UserID {
		return nil, domain.ErrHabitNotFound
	}

	if err := habit.Update(input.Name, input.Description, input.Color, input.Icon, input.Frequency, input.TargetCount, input.Difficulty); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) Archive(ctx context.Context, id, userID string) error {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if habit.UserID != userID {
		return domain.ErrHabitNotFound
	}

	habit.Archive()

	return s.repo.Update(ctx, habit)
}

func (s *HabitService) Delete(ctx context.Context, id, userID string) error {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if habit.UserID != userID {
		return domain.ErrHabitNotFound
	}

	return s.repo.Delete(ctx, id)
}

// ToggleCompletion flips the completion state for (habit, day). The
// first write for a day records a completion; a second write for the
// same day toggles the existing record instead of duplicating it. The
// updated log and the habit's resulting streak are returned.
func (s *HabitService) ToggleCompletion(ctx context.Context, habitID, userID string, day time.Time) (*domain.HabitLog, int, error) {
	habit, err := s.repo.GetByID(ctx, habitID)
	if err != nil {
		return nil, 0, err
	}
	if habit.UserID != userID {
		return nil, 0, domain.ErrHabitNotFound
	}

	day = domain.Day(day)

	logEntry, err := s.logRepo.GetByHabitAndDay(ctx, habitID, day)
	switch {
	case err == nil:
		logEntry.Completed = !logEntry.Completed
		logEntry.UpdatedAt = time.Now().UTC()
	case errors.Is(err, domain.ErrLogNotFound):
		logEntry = domain.NewHabitLog(habitID, userID, day, true)
	default:
		return nil, 0, err
	}

	if err := logEntry.Validate(); err != nil {
		return nil, 0, err
	}

	if err := s.logRepo.Upsert(ctx, logEntry); err != nil {
		return nil, 0, err
	}

	streak, err := s.streakFor(ctx, habitID, day)
	if err != nil {
		return nil, 0, err
	}

	return logEntry, streak, nil
}

// ListWithStatus returns the user's habits with streak and
// completed-today derived from the completion logs, anchored at the
// supplied day.
func (s *HabitService) ListWithStatus(ctx context.Context, userID string, today time.Time) ([]HabitStatus, error) {
	habits, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today = domain.Day(today)

	statuses := make([]HabitStatus, 0, len(habits))
	for _, h := range habits {
		logs, err := s.logRepo.ListByHabitID(ctx, h.ID)
		if err != nil {
			return nil, err
		}

		completedToday := false
		scan := make([]metrics.CompletionDay, 0, len(logs))
		for _, l := range logs {
			if l.Date.Equal(today) && l.Completed {
				completedToday = true
			}
			scan = append(scan, metrics.CompletionDay{Date: l.Date, Completed: l.Completed})
		}

		statuses = append(statuses, HabitStatus{
			Habit:          h,
			CompletedToday: completedToday,
			Streak:         metrics.Streak(scan, today),
		})
	}

	return statuses, nil
}

func (s *HabitService) streakFor(ctx context.Context, habitID string, today time.Time) (int, error) {
	logs, err := s.logRepo.ListByHabitID(ctx, habitID)
	if err != nil {
		return 0, err
	}

	scan := make([]metrics.CompletionDay, 0, len(logs))
	for _, l := range logs {
		scan = append(scan, metrics.CompletionDay{Date: l.Date, Completed: l.Completed})
	}

	return metrics.Streak(scan, today), nil
}
