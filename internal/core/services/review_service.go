package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coherence-app/coherence-engine/internal/adapters/ai"
	"github.com/coherence-app/coherence-engine/internal/core/domain"
	"github.com/coherence-app/coherence-engine/internal/core/metrics"
)

// TextGenerator is the external text-generation collaborator as the
// review flows see it.
type TextGenerator interface {
	DailyReview(ctx context.Context, req ai.DailyReviewRequest) (*ai.DailyReviewResponse, error)
	DecisionInsights(ctx context.Context, req ai.DecisionInsightsRequest) (*ai.DecisionInsightsResponse, error)
}

// ReviewService composes the daily review and the decision-pattern
// insights. Store failures degrade to empty slices before the text is
// assembled; collaborator failures propagate so the handler can offer
// a regenerate affordance instead of showing stale text.
type ReviewService struct {
	moodRepo    domain.MoodRepository
	habitRepo   domain.HabitRepository
	logRepo     domain.HabitLogRepository
	txnRepo     domain.TransactionRepository
	journalRepo domain.JournalRepository
	generator   TextGenerator
}

func NewReviewService(moodRepo domain.MoodRepository, habitRepo domain.HabitRepository, logRepo domain.HabitLogRepository, txnRepo domain.TransactionRepository, journalRepo domain.JournalRepository, generator TextGenerator) *ReviewService {
	return &ReviewService{
		moodRepo:    moodRepo,
		habitRepo:   habitRepo,
		logRepo:     logRepo,
		txnRepo:     txnRepo,
		journalRepo: journalRepo,
		generator:   generator,
	}
}

// DecisionInsightsWindowDays bounds how far back the insight flow
// looks for journal entries.
const DecisionInsightsWindowDays = 30

// DailyReview gathers the day's four data slices, shapes them into the
// fixed request contract, and asks the collaborator for a summary.
func (s *ReviewService) DailyReview(ctx context.Context, userID string, now time.Time) (*ai.DailyReviewResponse, error) {
	texts := metrics.BuildReviewTexts(s.gatherDay(ctx, userID, now))

	return s.generator.DailyReview(ctx, ai.DailyReviewRequest{
		Mood:      texts.Mood,
		Habits:    texts.Habits,
		Spending:  texts.Spending,
		Decisions: texts.Decisions,
	})
}

// DecisionInsights sends the recent decision journal to the
// collaborator and returns its pattern/explanation/suggestion triples.
func (s *ReviewService) DecisionInsights(ctx context.Context, userID string, now time.Time) (*ai.DecisionInsightsResponse, error) {
	from, to := metrics.LastNDays(now, DecisionInsightsWindowDays)

	entries, err := s.journalRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		log.Printf("review: journal fetch failed for user %s: %v", userID, err)
		entries = nil
	}

	req := ai.DecisionInsightsRequest{Entries: make([]ai.DecisionEntry, 0, len(entries))}
	for _, e := range entries {
		req.Entries = append(req.Entries, ai.DecisionEntry{
			Decision: e.Decision,
			Reason:   e.Reason,
			Feeling:  e.Feeling,
		})
	}

	return s.generator.DecisionInsights(ctx, req)
}

func (s *ReviewService) gatherDay(ctx context.Context, userID string, now time.Time) metrics.ReviewInput {
	today := domain.Day(now)
	tomorrow := today.AddDate(0, 0, 1)

	in := metrics.ReviewInput{ExpenseTotal: decimal.Zero}

	mood, err := s.moodRepo.LatestForDay(ctx, userID, today)
	switch {
	case err == nil:
		in.MoodLabel = mood.Label
		in.MoodNote = mood.Note
		in.HasMood = true
	case errors.Is(err, domain.ErrMoodNotFound):
	default:
		log.Printf("review: mood fetch failed for user %s: %v", userID, err)
	}

	habits, err := s.habitRepo.ListByUserID(ctx, userID)
	if err != nil {
		log.Printf("review: habit fetch failed for user %s: %v", userID, err)
		habits = nil
	}

	if len(habits) > 0 {
		logs, err := s.logRepo.ListByUserAndDay(ctx, userID, today)
		if err != nil {
			log.Printf("review: habit log fetch failed for user %s: %v", userID, err)
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
				in.CompletedHabits = append(in.CompletedHabits, h.Name)
			}
		}
	}

	txns, err := s.txnRepo.ListByUserAndRange(ctx, userID, today, tomorrow)
	if err != nil {
		log.Printf("review: transaction fetch failed for user %s: %v", userID, err)
		txns = nil
	}
	for _, t := range txns {
		if t.Kind == domain.KindExpense && !t.Amount.IsNegative() {
			in.ExpenseTotal = in.ExpenseTotal.Add(t.Amount)
		}
	}

	decisions, err := s.journalRepo.ListByUserAndRange(ctx, userID, today, tomorrow)
	if err != nil {
		log.Printf("review: journal fetch failed for user %s: %v", userID, err)
		decisions = nil
	}
	if len(decisions) > 0 {
		in.LatestDecision = decisions[0].Decision
		in.HasDecision = true
	}

	return in
}
