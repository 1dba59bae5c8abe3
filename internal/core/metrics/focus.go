package metrics

import "math"

// Focus score weights. Each half contributes at most half of the
// 0-100 scale; an absent signal lands on the midpoint of its half.
const (
	focusHalfMax  = 50.0
	moodTierHigh  = 1.0
	moodTierMid   = 0.6
	moodTierLow   = 0.2
	focusMidpoint = 0.5

	// A half below 60% of its maximum triggers its improvement tip.
	tipThreshold = 0.6 * focusHalfMax
)

// FocusInput is the day's signal snapshot: the latest categorical mood
// label (if any) and how many of the user's habits are completed today.
type FocusInput struct {
	MoodLabel   string
	HasMood     bool
	HabitsTotal int
	HabitsDone  int
}

// Tip is a threshold-triggered piece of advice shown next to the score.
type Tip struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FocusReport is the bounded composite score with its two halves and
// the tips that fired, mood tip first.
type FocusReport struct {
	Score      int   `json:"score"`
	MoodScore  int   `json:"mood_score"`
	HabitScore int   `json:"habit_score"`
	Tips       []Tip `json:"tips"`
}

var (
	tipMood = Tip{
		Title:       "Boost Your Mood",
		Description: "Consider activities that lift your spirits, like listening to music, talking to a friend, or spending time in nature.",
	}
	tipHabits = Tip{
		Title:       "Strengthen Your Habits",
		Description: "Focus on completing one small habit today. Consistency builds momentum.",
	}
	tipDefault = Tip{
		Title:       "Keep Up the Great Work!",
		Description: "You're doing great. Continue to be mindful of your mood and consistent with your habits.",
	}
)

// moodTier maps the categorical label to its fraction of the mood half.
// Unknown labels deliberately score as the low tier.
func moodTier(label string) float64 {
	switch label {
	case "happy", "excited":
		return moodTierHigh
	case "calm", "neutral":
		return moodTierMid
	default:
		return moodTierLow
	}
}

// Focus computes the composite 0-100 focus score. Both halves are
// carried as floats and rounded once here, when the report is
// materialized. Tips compare the unrounded halves with a strict
// less-than; an absent signal sits at its midpoint and never fires its
// own improvement tip.
func Focus(in FocusInput) FocusReport {
	mood := focusMidpoint * focusHalfMax
	if in.HasMood {
		mood = moodTier(in.MoodLabel) * focusHalfMax
	}

	habits := focusMidpoint * focusHalfMax
	if in.HabitsTotal > 0 {
		habits = float64(in.HabitsDone) / float64(in.HabitsTotal) * focusHalfMax
	}

	var tips []Tip
	if in.HasMood && mood < tipThreshold {
		tips = append(tips, tipMood)
	}
	if in.HabitsTotal > 0 && habits < tipThreshold {
		tips = append(tips, tipHabits)
	}
	if len(tips) == 0 {
		tips = append(tips, tipDefault)
	}

	return FocusReport{
		Score:      int(math.Round(mood + habits)),
		MoodScore:  int(math.Round(mood)),
		HabitScore: int(math.Round(habits)),
		Tips:       tips,
	}
}
