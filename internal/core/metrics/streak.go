// Package metrics holds the derived-metrics core: streaks, grouped
// aggregates, the focus score, and presentation shaping. Everything in
// here is pure and takes an explicit reference time instead of reading
// the wall clock, so callers own "now" and tests stay deterministic.
package metrics

import "time"

// CompletionDay is one day of a habit's completion log, day
// granularity, as handed over by the record store.
type CompletionDay struct {
	Date      time.Time
	Completed bool
}

// Streak returns the number of consecutive completed days ending at
// today. The log must be ordered most-recent-first. The scan anchors at
// today: an unlogged today terminates immediately at 0 even when an
// unbroken run exists through yesterday. Callers that want a different
// anchor pass a different reference day.
func Streak(log []CompletionDay, today time.Time) int {
	expected := day(today)
	streak := 0

	for _, d := range log {
		date := day(d.Date)

		// Entries dated after the anchor (clock skew, pre-logged
		// days) are ignored rather than breaking the run.
		if date.After(expected) {
			continue
		}

		if !date.Equal(expected) || !d.Completed {
			break
		}

		streak++
		expected = expected.AddDate(0, 0, -1)
	}

	return streak
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
