package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coherence-app/coherence-engine/internal/core/domain"
)

type TransactionService struct {
	repo domain.TransactionRepository
}

func NewTransactionService(repo domain.TransactionRepository) *TransactionService {
	return &TransactionService{repo: repo}
}

type CreateTransactionInput struct {
	UserID      string
	Timestamp   time.Time
	Kind        string
	Category    string
	Amount      decimal.Decimal
	Description string
	EmotionTag  string
}

func (s *TransactionService) Create(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	at := input.Timestamp
	if at.IsZero() {
		at = time.Now().UTC()
	}

	txn, err := domain.NewTransaction(input.UserID, at, input.Kind, input.Category, input.Amount, input.Description, input.EmotionTag)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}

func (s *TransactionService) ListByRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Transaction, error) {
	return s.repo.ListByUserAndRange(ctx, userID, from, to)
}

// Totals sums income and expenses over [from, to).
func (s *TransactionService) Totals(ctx context.Context, userID string, from, to time.Time) (income, expense decimal.Decimal, err error) {
	txns, err := s.repo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	income, expense = decimal.Zero, decimal.Zero
	for _, t := range txns {
		if t.Amount.IsNegative() {
			continue
		}
		switch t.Kind {
		case domain.KindIncome:
			income = income.Add(t.Amount)
		case domain.KindExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return income, expense, nil
}
