package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Success: Creates valid habit with defaults", func(t *testing.T) {
		h, err := domain.NewHabit("u1", "Drink Water", "", "", "", "", 0, 0)

		assert.Nil(t, err)
		assert.NotNil(t, h)
		assert.Equal(t, "Drink Water", h.Name)
		assert.Equal(t, "u1", h.UserID)
		assert.NotEmpty(t, h.ID)

		assert.Equal(t, domain.FrequencyDaily, h.Frequency)
		assert.Equal(t, 1, h.TargetCount)
		assert.Equal(t, 1, h.Difficulty)
		assert.Equal(t, domain.DefaultIcon, h.Icon)

		assert.Nil(t, h.ArchivedAt, "New habits MUST NOT be archived")
		assert.WithinDuration(t, time.Now().UTC(), h.CreatedAt, 2*time.Second)
	})

	t.Run("Error: Empty Name", func(t *testing.T) {
		_, err := domain.NewHabit("u1", "   ", "", "", "", "", 0, 0)
		assert.Equal(t, domain.ErrHabitNameEmpty, err)
	})

	t.Run("Error: Invalid UserID", func(t *testing.T) {
		_, err := domain.NewHabit("", "Name", "", "", "", "", 0, 0)
		assert.Equal(t, domain.ErrHabitInvalidUserID, err)
	})
}

func TestHabit_Validation(t *testing.T) {
	tests := []struct {
		name       string
		habitName  string
		desc       string
		color      string
		frequency  string
		target     int
		difficulty int
		wantErr    error
	}{
		{
			name:      "Success: Short Hex Color",
			habitName: "Read",
			color:     "#ABC",
			frequency: domain.FrequencyWeekly,
			target:    3, difficulty: 2,
		},
		{
			name:      "Error: Bad Color",
			habitName: "Read",
			color:     "blue",
			frequency: domain.FrequencyDaily,
			target:    1, difficulty: 1,
			wantErr: domain.ErrInvalidColor,
		},
		{
			name:      "Error: Unknown Frequency",
			habitName: "Read",
			frequency: "hourly",
			target:    1, difficulty: 1,
			wantErr: domain.ErrInvalidFrequency,
		},
		{
			name:      "Error: Name Too Long",
			habitName: strings.Repeat("x", domain.MaxHabitNameLen+1),
			frequency: domain.FrequencyDaily,
			target:    1, difficulty: 1,
			wantErr: domain.ErrHabitNameTooLong,
		},
		{
			name:      "Error: Negative Target",
			habitName: "Read",
			frequency: domain.FrequencyDaily,
			target:    -3, difficulty: 1,
			wantErr: domain.ErrInvalidTarget,
		},
		{
			name:      "Error: Difficulty Out of Range",
			habitName: "Read",
			frequency: domain.FrequencyDaily,
			target:    1, difficulty: 6,
			wantErr: domain.ErrInvalidDifficulty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewHabit("u1", tt.habitName, tt.desc, tt.color, "", tt.frequency, tt.target, tt.difficulty)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHabit_ArchiveLifecycle(t *testing.T) {
	t.Run("Archive blocks updates, Restore re-enables them", func(t *testing.T) {
		h, err := domain.NewHabit("u1", "Stretch", "", "", "", "", 0, 0)
		assert.NoError(t, err)

		h.Archive()
		assert.NotNil(t, h.ArchivedAt)

		err = h.Update("Stretch More", "", "", "", domain.FrequencyDaily, 1, 1)
		assert.Equal(t, domain.ErrHabitArchived, err)

		h.Restore()
		assert.Nil(t, h.ArchivedAt)

		err = h.Update("Stretch More", "", "", "", domain.FrequencyDaily, 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Stretch More", h.Name)
	})

	t.Run("Archive is idempotent", func(t *testing.T) {
		h, _ := domain.NewHabit("u1", "Sleep", "", "", "", "", 0, 0)

		h.Archive()
		first := *h.ArchivedAt
		h.Archive()

		assert.Equal(t, first, *h.ArchivedAt)
	})
}
