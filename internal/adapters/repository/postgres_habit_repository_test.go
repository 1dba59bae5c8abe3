package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = "coherence_user"
	}
	dbPass := os.Getenv("DB_PASSWORD")
	if dbPass == "" {
		dbPass = "secret"
	}
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}
	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "coherence_db"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		t.Skipf("Skipping integration tests: database connection failed: %v", err)
	}
	return db
}

func cleanup(t *testing.T, db *sqlx.DB) {
	_, err := db.Exec("TRUNCATE TABLE habit_logs, habits, mood_entries, transactions, journal_entries, users CASCADE")
	require.NoError(t, err, "Failed to clean up database")
}

func createUserFixture(t *testing.T, db *sqlx.DB, id string) {
	_, err := db.Exec(`INSERT INTO users (id, email, password_hash, created_at, updated_at)
        VALUES ($1, $2, 'hash', NOW(), NOW())`, id, id+"@example.com")
	require.NoError(t, err, "Failed to create user fixture")
}

func TestPostgresHabitRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cleanup(t, db)
	defer cleanup(t, db)

	repo := NewPostgresHabitRepository(db)
	ctx := context.Background()

	userID := "habit-test-user"
	createUserFixture(t, db, userID)

	habit, err := domain.NewHabit(userID, "Morning Run", "5k before work", "#00AAFF", "shoe", domain.FrequencyDaily, 1, 2)
	require.NoError(t, err)

	t.Run("Create Habit", func(t *testing.T) {
		assert.NoError(t, repo.Create(ctx, habit))
	})

	t.Run("Get By ID", func(t *testing.T) {
		fetched, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, habit.ID, fetched.ID)
		assert.Equal(t, "Morning Run", fetched.Name)
		assert.Nil(t, fetched.ArchivedAt)
	})

	t.Run("Update Habit", func(t *testing.T) {
		require.NoError(t, habit.Update("Evening Run", habit.Description, habit.Color, habit.Icon, habit.Frequency, habit.TargetCount, habit.Difficulty))
		require.NoError(t, repo.Update(ctx, habit))

		updated, err := repo.GetByID(ctx, habit.ID)
		require.NoError(t, err)
		assert.Equal(t, "Evening Run", updated.Name)
	})

	t.Run("List Excludes Archived", func(t *testing.T) {
		archived, err := domain.NewHabit(userID, "Old Habit", "", "", "", domain.FrequencyDaily, 1, 1)
		require.NoError(t, err)
		archived.Archive()
		require.NoError(t, repo.Create(ctx, archived))

		list, err := repo.ListByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, habit.ID, list[0].ID)
	})

	t.Run("Update/Delete Non-Existent ID", func(t *testing.T) {
		ghost, err := domain.NewHabit(userID, "Ghost", "", "", "", domain.FrequencyDaily, 1, 1)
		require.NoError(t, err)
		ghost.ID = uuid.New().String()

		assert.ErrorIs(t, repo.Update(ctx, ghost), domain.ErrHabitNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, uuid.New().String()), domain.ErrHabitNotFound)
	})

	t.Run("Delete Habit", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, habit.ID))

		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestPostgresHabitLogRepository_Integration(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	cleanup(t, db)
	defer cleanup(t, db)

	habitRepo := NewPostgresHabitRepository(db)
	repo := NewPostgresHabitLogRepository(db)
	ctx := context.Background()

	userID := "log-test-user"
	createUserFixture(t, db, userID)

	habit, err := domain.NewHabit(userID, "Journal", "", "", "", domain.FrequencyDaily, 1, 1)
	require.NoError(t, err)
	require.NoError(t, habitRepo.Create(ctx, habit))

	day := domain.Day(time.Now().UTC())

	t.Run("Upsert Creates Then Toggles In Place", func(t *testing.T) {
		first := domain.NewHabitLog(habit.ID, userID, day, true)
		require.NoError(t, repo.Upsert(ctx, first))

		fetched, err := repo.GetByHabitAndDay(ctx, habit.ID, day)
		require.NoError(t, err)
		assert.True(t, fetched.Completed)

		second := domain.NewHabitLog(habit.ID, userID, day, false)
		require.NoError(t, repo.Upsert(ctx, second))

		var count int
		require.NoError(t, db.QueryRow("SELECT count(*) FROM habit_logs WHERE habit_id=$1", habit.ID).Scan(&count))
		assert.Equal(t, 1, count, "a second write for the same day must not add a row")

		fetched, err = repo.GetByHabitAndDay(ctx, habit.ID, day)
		require.NoError(t, err)
		assert.False(t, fetched.Completed)
	})

	t.Run("List By Habit Is Newest First", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, domain.NewHabitLog(habit.ID, userID, day.AddDate(0, 0, -2), true)))
		require.NoError(t, repo.Upsert(ctx, domain.NewHabitLog(habit.ID, userID, day.AddDate(0, 0, -1), true)))

		logs, err := repo.ListByHabitID(ctx, habit.ID)
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.True(t, logs[0].Date.After(logs[1].Date))
		assert.True(t, logs[1].Date.After(logs[2].Date))
	})

	t.Run("Missing Day Maps to Sentinel", func(t *testing.T) {
		_, err := repo.GetByHabitAndDay(ctx, habit.ID, day.AddDate(0, 0, -30))
		assert.ErrorIs(t, err, domain.ErrLogNotFound)
	})
}
