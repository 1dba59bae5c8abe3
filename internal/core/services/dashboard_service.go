package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
	"github.com/coherence-app/coherence-engine/internal/core/metrics"
)

// DashboardService derives the at-a-glance numbers: the focus score,
// the spending overview, and the mood history series. Store failures
// here degrade to the documented empty-batch defaults instead of
// propagating into the math, so the dashboard always renders.
type DashboardService struct {
	moodRepo  domain.MoodRepository
	habitRepo domain.HabitRepository
	logRepo   domain.HabitLogRepository
	txnRepo   domain.TransactionRepository
}

func NewDashboardService(moodRepo domain.MoodRepository, habitRepo domain.HabitRepository, logRepo domain.HabitLogRepository, txnRepo domain.TransactionRepository) *DashboardService {
	return &DashboardService{
		moodRepo:  moodRepo,
		habitRepo: habitRepo,
		logRepo:   logRepo,
		txnRepo:   txnRepo,
	}
}

// MoodHistoryDays caps the mood series handed to charts.
const MoodHistoryDays = 14

// SpendingOverview is the presentation-ready spending view for the
// calendar month containing now.
type SpendingOverview struct {
	Breakdown    []metrics.LabeledEntry `json:"breakdown"`
	Total        string                 `json:"total"`
	TopCategory  string                 `json:"top_category"`
	WeeklyChange int                    `json:"weekly_change"`
	Income       string                 `json:"income"`
	Expense      string                 `json:"expense"`
	Series       []metrics.DayTotal     `json:"series"`
}

// MoodPoint is one entry of the capped mood history series.
type MoodPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Valence   float64   `json:"valence"`
	Energy    float64   `json:"energy"`
}

// Focus assembles the day's signals and scores them. A failed mood or
// habit fetch is logged and treated as the absent signal.
func (s *DashboardService) Focus(ctx context.Context, userID string, now time.Time) metrics.FocusReport {
	today := domain.Day(now)

	input := metrics.FocusInput{}

	mood, err := s.moodRepo.LatestForDay(ctx, userID, today)
	switch {
	case err == nil:
		input.MoodLabel = mood.Label
		input.HasMood = true
	case errors.Is(err, domain.ErrMoodNotFound):
		// unlogged day, midpoint default
	default:
		log.Printf("dashboard: mood fetch failed for user %s: %v", userID, err)
	}

	habits, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("dashboard: habit fetch failed for user %s: %v", userID, err)
		habits = nil
	}

	input.HabitsTotal = len(habits)

	if len(habits) > 0 {
		logs, err := s.logRepo.ListByUserAndDay(ctx, userID, today)
		if err != nil {
			log.Printf("dashboard: habit log fetch failed for user %s: %v", userID, err)
			logs = nil
		}

		completed := make(map[string]bool, len(logs))
		for _, l := range logs {
			if l.Completed {
				completed[l.HabitID] = true
			}
		}
		for _, h := range habits {
			if completed[h.ID] {
				input.HabitsDone++
			}
		}
	}

	return metrics.Focus(input)
}

// Spending builds the month-to-date overview. The fetch spans whichever
// reaches further back, the month start or the 14-day delta window, and
// the windows are carved out of the one batch.
func (s *DashboardService) Spending(ctx context.Context, userID string, now time.Time) SpendingOverview {
	monthFrom, monthTo := metrics.MonthWindow(now)
	deltaFrom, _ := metrics.LastNDays(now, 14)

	from := monthFrom
	if deltaFrom.Before(from) {
		from = deltaFrom
	}
	to := monthTo
	if now.After(to) {
		to = now
	}

	txns, err := s.txnRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		log.Printf("dashboard: transaction fetch failed for user %s: %v", userID, err)
		txns = nil
	}

	var expenses []metrics.Record
	income := decimal.Zero

	for _, t := range txns {
		if t.Amount.IsNegative() {
			continue
		}
		switch t.Kind {
		case domain.KindIncome:
			if !t.Timestamp.Before(monthFrom) && t.Timestamp.Before(monthTo) {
				income = income.Add(t.Amount)
			}
		case domain.KindExpense:
			expenses = append(expenses, metrics.Record{Key: t.Category, When: t.Timestamp, Value: t.Amount})
		}
	}

	monthExpenses := metrics.Between(expenses, monthFrom, monthTo)
	breakdown := metrics.SumBy(monthExpenses)

	return SpendingOverview{
		Breakdown:    metrics.SortedBreakdown(breakdown),
		Total:        breakdown.Total.StringFixed(2),
		TopCategory:  breakdown.Top(),
		WeeklyChange: metrics.WeeklyDelta(expenses, now),
		Income:       income.StringFixed(2),
		Expense:      breakdown.Total.StringFixed(2),
		Series:       metrics.DailySeries(monthExpenses, now, MoodHistoryDays),
	}
}

// MoodHistory returns the last 14 days of mood entries, newest last,
// shaped for the history chart.
func (s *DashboardService) MoodHistory(ctx context.Context, userID string, now time.Time) []MoodPoint {
	from, to := metrics.LastNDays(now, MoodHistoryDays)

	entries, err := s.moodRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		log.Printf("dashboard: mood history fetch failed for user %s: %v", userID, err)
		return []MoodPoint{}
	}

	points := make([]MoodPoint, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		points = append(points, MoodPoint{
			Timestamp: e.Timestamp,
			Label:     e.Label,
			Valence:   e.Valence,
			Energy:    e.Energy,
		})
	}

	return points
}
