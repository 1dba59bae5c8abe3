package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

type PostgresJournalRepository struct {
	db *sqlx.DB
}

func NewPostgresJournalRepository(db *sqlx.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

func (r *PostgresJournalRepository) Create(ctx context.Context, e *domain.JournalEntry) error {
	query := `
        INSERT INTO journal_entries (
            id, user_id, timestamp, decision, reason, feeling,
            mood_valence, mood_energy, created_at
        ) VALUES (
            :id, :user_id, :timestamp, :decision, :reason, :feeling,
            :mood_valence, :mood_energy, :created_at
        )`

	if _, err := r.db.NamedExecContext(ctx, query, e); err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}

	return nil
}

func (r *PostgresJournalRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.JournalEntry, error) {
	query := `
        SELECT * FROM journal_entries
        WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
        ORDER BY timestamp DESC`

	var entries []*domain.JournalEntry
	if err := r.db.SelectContext(ctx, &entries, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return entries, nil
}
