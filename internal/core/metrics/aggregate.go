package metrics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Record is a single aggregatable data point: a grouping key, the
// moment it happened, and its value. Transactions map category or day
// onto Key; mood batches map the label.
type Record struct {
	Key   string
	When  time.Time
	Value decimal.Decimal
}

// BreakdownEntry is one key's slice of a Breakdown.
type BreakdownEntry struct {
	Key     string          `json:"key"`
	Total   decimal.Decimal `json:"total"`
	Percent int             `json:"percent"`
}

// Breakdown is a grouped-and-summed view of a batch. Entries keep the
// insertion order of each key's first occurrence so chart rendering is
// stable across refetches.
type Breakdown struct {
	Entries []BreakdownEntry `json:"entries"`
	Total   decimal.Decimal  `json:"total"`
}

// NoTopKey is reported by Top for an empty breakdown.
const NoTopKey = "none"

// SumBy groups the batch by key and sums values per key and overall.
// Negative values are excluded from the sums rather than corrupting the
// totals; an empty batch yields an empty breakdown and a zero total.
// Percent shares are value/total x 100 rounded half-away-from-zero, the
// one rounding rule used throughout this package.
func SumBy(batch []Record) Breakdown {
	b := Breakdown{Total: decimal.Zero}
	index := make(map[string]int)

	for _, r := range batch {
		if r.Value.IsNegative() {
			continue
		}

		i, seen := index[r.Key]
		if !seen {
			index[r.Key] = len(b.Entries)
			b.Entries = append(b.Entries, BreakdownEntry{Key: r.Key, Total: decimal.Zero})
			i = len(b.Entries) - 1
		}

		b.Entries[i].Total = b.Entries[i].Total.Add(r.Value)
		b.Total = b.Total.Add(r.Value)
	}

	if b.Total.IsPositive() {
		for i := range b.Entries {
			share, _ := b.Entries[i].Total.Div(b.Total).Float64()
			b.Entries[i].Percent = roundPercent(share * 100)
		}
	}

	return b
}

// Top returns the key with the maximum total, ties broken by first
// occurrence. Empty breakdowns report NoTopKey.
func (b Breakdown) Top() string {
	if len(b.Entries) == 0 {
		return NoTopKey
	}

	top := 0
	for i := 1; i < len(b.Entries); i++ {
		if b.Entries[i].Total.GreaterThan(b.Entries[top].Total) {
			top = i
		}
	}
	return b.Entries[top].Key
}

// WeeklyDelta is the percent change between the most recent 7-day
// window [now-7d, now) and the preceding one [now-14d, now-7d). A zero
// previous window reports 0% so a fresh account never divides by zero.
func WeeklyDelta(batch []Record, now time.Time) int {
	current := windowTotal(batch, now.AddDate(0, 0, -7), now)
	previous := windowTotal(batch, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))

	if previous.IsZero() {
		return 0
	}

	change, _ := current.Sub(previous).Div(previous).Float64()
	return roundPercent(change * 100)
}

func windowTotal(batch []Record, from, to time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, r := range batch {
		if r.Value.IsNegative() {
			continue
		}
		if !r.When.Before(from) && r.When.Before(to) {
			total = total.Add(r.Value)
		}
	}
	return total
}

// LastNDays is the half-open interval [now - n days, now).
func LastNDays(now time.Time, n int) (from, to time.Time) {
	return now.AddDate(0, 0, -n), now
}

// MonthWindow is the calendar month containing now, in now's location,
// as the half-open interval [first of month, first of next month).
func MonthWindow(now time.Time) (from, to time.Time) {
	y, m, _ := now.Date()
	from = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 1, 0)
}

// Between filters the batch to records with When in [from, to).
func Between(batch []Record, from, to time.Time) []Record {
	out := make([]Record, 0, len(batch))
	for _, r := range batch {
		if !r.When.Before(from) && r.When.Before(to) {
			out = append(out, r)
		}
	}
	return out
}

// roundPercent rounds half away from zero. Shares may sum to
// 100 +/- one unit per entry; callers display, they do not re-normalize.
func roundPercent(v float64) int {
	return int(math.Round(v))
}
