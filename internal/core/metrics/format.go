package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LabeledEntry is a breakdown entry shaped for display: amount
// stringified to two decimal places and a ready-made percent label.
type LabeledEntry struct {
	Key     string `json:"key"`
	Amount  string `json:"amount"`
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}

// SortedBreakdown shapes a breakdown for presentation: entries sorted
// descending by total, ties keeping their first-encountered order.
func SortedBreakdown(b Breakdown) []LabeledEntry {
	entries := make([]BreakdownEntry, len(b.Entries))
	copy(entries, b.Entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total.GreaterThan(entries[j].Total)
	})

	out := make([]LabeledEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, LabeledEntry{
			Key:     e.Key,
			Amount:  e.Total.StringFixed(2),
			Percent: e.Percent,
			Label:   fmt.Sprintf("%s (%d%%)", e.Key, e.Percent),
		})
	}
	return out
}

// DayTotal is one day of a zero-filled chart series.
type DayTotal struct {
	Day   string          `json:"day"`
	Total decimal.Decimal `json:"total"`
}

// DailySeries buckets the batch by day over the last n days ending at
// now, oldest first, filling unlogged days with zero so chart axes stay
// continuous. Series longer than n never escape: the window is the cap.
func DailySeries(batch []Record, now time.Time, n int) []DayTotal {
	totals := make(map[string]decimal.Decimal)
	for _, r := range batch {
		if r.Value.IsNegative() {
			continue
		}
		totals[day(r.When).Format("2006-01-02")] = totals[day(r.When).Format("2006-01-02")].Add(r.Value)
	}

	series := make([]DayTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		key := day(now).AddDate(0, 0, -i).Format("2006-01-02")
		total, ok := totals[key]
		if !ok {
			total = decimal.Zero
		}
		series = append(series, DayTotal{Day: key, Total: total})
	}
	return series
}

// ReviewTexts are the four short natural-language strings the daily
// review sends to the external text-generation collaborator. They are
// assembled here, from already-computed aggregates, so no scoring or
// summing ever leaks into prompt construction.
type ReviewTexts struct {
	Mood      string `json:"mood"`
	Habits    string `json:"habits"`
	Spending  string `json:"spending"`
	Decisions string `json:"decisions"`
}

// ReviewInput carries the day's aggregates into text assembly.
type ReviewInput struct {
	MoodLabel       string
	MoodNote        string
	HasMood         bool
	CompletedHabits []string
	ExpenseTotal    decimal.Decimal
	LatestDecision  string
	HasDecision     bool
}

func BuildReviewTexts(in ReviewInput) ReviewTexts {
	mood := "No mood logged today."
	if in.HasMood {
		mood = fmt.Sprintf("Today's mood was %s. Note: %s", in.MoodLabel, in.MoodNote)
	}

	completed := "None"
	if len(in.CompletedHabits) > 0 {
		completed = strings.Join(in.CompletedHabits, ", ")
	}

	decisions := "No major decisions logged today."
	if in.HasDecision {
		decisions = fmt.Sprintf("Made a decision about: %s.", in.LatestDecision)
	}

	return ReviewTexts{
		Mood:      mood,
		Habits:    fmt.Sprintf("Completed habits: %s.", completed),
		Spending:  fmt.Sprintf("Total expenses: $%s.", in.ExpenseTotal.StringFixed(2)),
		Decisions: decisions,
	}
}
