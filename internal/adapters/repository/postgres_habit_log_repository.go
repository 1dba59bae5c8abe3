package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

type PostgresHabitLogRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitLogRepository(db *sqlx.DB) *PostgresHabitLogRepository {
	return &PostgresHabitLogRepository{db: db}
}

// Upsert relies on the (habit_id, date) unique constraint: a second
// write for the same day updates the completion flag in place, which is
// what makes repeated toggles idempotent at the storage level.
func (r *PostgresHabitLogRepository) Upsert(ctx context.Context, l *domain.HabitLog) error {
	query := `
        INSERT INTO habit_logs (id, user_id, habit_id, date, completed, created_at, updated_at)
        VALUES (:id, :user_id, :habit_id, :date, :completed, :created_at, :updated_at)
        ON CONFLICT (habit_id, date) DO UPDATE
        SET completed = EXCLUDED.completed, updated_at = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, l); err != nil {
		return fmt.Errorf("failed to upsert habit log: %w", err)
	}

	return nil
}

func (r *PostgresHabitLogRepository) GetByHabitAndDay(ctx context.Context, habitID string, day time.Time) (*domain.HabitLog, error) {
	var l domain.HabitLog

	err := r.db.GetContext(ctx, &l, `SELECT * FROM habit_logs WHERE habit_id = $1 AND date = $2`, habitID, domain.Day(day))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLogNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return &l, nil
}

func (r *PostgresHabitLogRepository) ListByHabitID(ctx context.Context, habitID string) ([]*domain.HabitLog, error) {
	query := `
        SELECT * FROM habit_logs
        WHERE habit_id = $1
        ORDER BY date DESC`

	var logs []*domain.HabitLog
	if err := r.db.SelectContext(ctx, &logs, query, habitID); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return logs, nil
}

func (r *PostgresHabitLogRepository) ListByUserAndDay(ctx context.Context, userID string, day time.Time) ([]*domain.HabitLog, error) {
	var logs []*domain.HabitLog
	if err := r.db.SelectContext(ctx, &logs, `SELECT * FROM habit_logs WHERE user_id = $1 AND date = $2`, userID, domain.Day(day)); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return logs, nil
}
