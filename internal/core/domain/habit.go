package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 100 chars)")
	ErrHabitDescTooLong   = errors.New("habit description is too long (max 500 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
	ErrInvalidColor       = errors.New("invalid color format (must be #RRGGBB)")
	ErrInvalidFrequency   = errors.New("invalid frequency (must be daily, weekly, or monthly)")
	ErrInvalidTarget      = errors.New("target count must be positive")
	ErrInvalidDifficulty  = errors.New("difficulty must be between 1 and 5")
	ErrHabitArchived      = errors.New("cannot update an archived habit")
)

var colorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"

	DefaultIcon     = "circle"
	MaxHabitNameLen = 100
	MaxHabitDescLen = 500
)

type Habit struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"user_id" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description,omitempty" db:"description"`
	Color       string     `json:"color" db:"color"`
	Icon        string     `json:"icon" db:"icon"`
	Frequency   string     `json:"frequency" db:"frequency"`
	TargetCount int        `json:"target_count" db:"target_count"`
	Difficulty  int        `json:"difficulty" db:"difficulty"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	ArchivedAt  *time.Time `json:"archived_at,omitempty" db:"archived_at"`
}

func validateHabit(name, desc, color, frequency string, target, difficulty int) error {
	if strings.TrimSpace(name) == "" {
		return ErrHabitNameEmpty
	}
	if len(strings.TrimSpace(name)) > MaxHabitNameLen {
		return ErrHabitNameTooLong
	}
	if len(strings.TrimSpace(desc)) > MaxHabitDescLen {
		return ErrHabitDescTooLong
	}
	if color != "" && !colorRegex.MatchString(color) {
		return ErrInvalidColor
	}
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
	default:
		return ErrInvalidFrequency
	}
	if target < 1 {
		return ErrInvalidTarget
	}
	if difficulty < 1 || difficulty > 5 {
		return ErrInvalidDifficulty
	}
	return nil
}

func NewHabit(userID, name, description, color, icon, frequency string, targetCount, difficulty int) (*Habit, error) {
	if userID == "" {
		return nil, ErrHabitInvalidUserID
	}

	if frequency == "" {
		frequency = FrequencyDaily
	}
	if targetCount == 0 {
		targetCount = 1
	}
	if difficulty == 0 {
		difficulty = 1
	}

	cleanDesc := strings.TrimSpace(description)

	if err := validateHabit(name, cleanDesc, color, frequency, targetCount, difficulty); err != nil {
		return nil, err
	}

	if icon == "" {
		icon = DefaultIcon
	}

	now := time.Now().UTC()

	return &Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        strings.TrimSpace(name),
		Description: cleanDesc,
		Color:       color,
		Icon:        icon,
		Frequency:   frequency,
		TargetCount: targetCount,
		Difficulty:  difficulty,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (h *Habit) Update(name, description, color, icon, frequency string, targetCount, difficulty int) error {
	if h.ArchivedAt != nil {
		return ErrHabitArchived
	}

	cleanDesc := strings.TrimSpace(description)

	if err := validateHabit(name, cleanDesc, color, frequency, targetCount, difficulty); err != nil {
		return err
	}

	if icon == "" {
		icon = DefaultIcon
	}

	h.Name = strings.TrimSpace(name)
	h.Description = cleanDesc
	h.Color = color
	h.Icon = icon
	h.Frequency = frequency
	h.TargetCount = targetCount
	h.Difficulty = difficulty
	h.UpdatedAt = time.Now().UTC()

	return nil
}

func (h *Habit) Archive() {
	if h.ArchivedAt != nil {
		return
	}

	now := time.Now().UTC()
	h.ArchivedAt = &now
	h.UpdatedAt = now
}

func (h *Habit) Restore() {
	if h.ArchivedAt == nil {
		return
	}
	h.ArchivedAt = nil
	h.UpdatedAt = time.Now().UTC()
}
