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

type PostgresMoodRepository struct {
	db *sqlx.DB
}

func NewPostgresMoodRepository(db *sqlx.DB) *PostgresMoodRepository {
	return &PostgresMoodRepository{db: db}
}

func (r *PostgresMoodRepository) Create(ctx context.Context, e *domain.MoodEntry) error {
	query := `
        INSERT INTO mood_entries (id, user_id, timestamp, label, valence, energy, note, created_at)
        VALUES (:id, :user_id, :timestamp, :label, :valence, :energy, :note, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, e); err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}

	return nil
}

func (r *PostgresMoodRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.MoodEntry, error) {
	query := `
        SELECT * FROM mood_entries
        WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
        ORDER BY timestamp DESC`

	var entries []*domain.MoodEntry
	if err := r.db.SelectContext(ctx, &entries, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return entries, nil
}

func (r *PostgresMoodRepository) LatestForDay(ctx context.Context, userID string, day time.Time) (*domain.MoodEntry, error) {
	day = domain.Day(day)

	query := `
        SELECT * FROM mood_entries
        WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
        ORDER BY timestamp DESC
        LIMIT 1`

	var e domain.MoodEntry
	err := r.db.GetContext(ctx, &e, query, userID, day, day.AddDate(0, 0, 1))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMoodNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return &e, nil
}
