package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

type PostgresTransactionRepository struct {
	db *sqlx.DB
}

func NewPostgresTransactionRepository(db *sqlx.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	query := `
        INSERT INTO transactions (
            id, user_id, timestamp, kind, category, amount,
            description, emotion_tag, created_at
        ) VALUES (
            :id, :user_id, :timestamp, :kind, :category, :amount,
            :description, :emotion_tag, :created_at
        )`

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

func (r *PostgresTransactionRepository) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Transaction, error) {
	query := `
        SELECT * FROM transactions
        WHERE user_id = $1 AND timestamp >= $2 AND timestamp < $3
        ORDER BY timestamp DESC`

	var txns []*domain.Transaction
	if err := r.db.SelectContext(ctx, &txns, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	return txns, nil
}
