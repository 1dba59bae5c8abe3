package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTxnInvalidUserID  = errors.New("invalid user id")
	ErrTxnInvalidKind    = errors.New("invalid transaction kind (must be income or expense)")
	ErrTxnEmptyCategory  = errors.New("transaction category cannot be empty")
	ErrTxnNegativeAmount = errors.New("transaction amount cannot be negative")
)

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// SuggestedCategories is the fixed set the UI offers. Category itself is
// free-form; this list is advisory only.
var SuggestedCategories = []string{
	"Food", "Transport", "Entertainment", "Utilities", "Health", "Shopping", "Other",
}

// EmotionTags a transaction may be linked to from the mood side.
var EmotionTags = []string{
	"Stressed", "Happy", "Impulsive", "Planned", "Necessary", "Guilty",
}

// Transaction is an immutable income or expense record. Amounts are
// non-negative decimals; the sign is carried by Kind, never the value.
type Transaction struct {
	ID          string          `json:"id" db:"id"`
	UserID      string          `json:"user_id" db:"user_id"`
	Timestamp   time.Time       `json:"timestamp" db:"timestamp"`
	Kind        string          `json:"kind" db:"kind"`
	Category    string          `json:"category" db:"category"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description,omitempty" db:"description"`
	EmotionTag  string          `json:"emotion_tag,omitempty" db:"emotion_tag"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

func NewTransaction(userID string, at time.Time, kind, category string, amount decimal.Decimal, description, emotionTag string) (*Transaction, error) {
	if userID == "" {
		return nil, ErrTxnInvalidUserID
	}

	switch kind {
	case KindIncome, KindExpense:
	default:
		return nil, ErrTxnInvalidKind
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrTxnEmptyCategory
	}

	if amount.IsNegative() {
		return nil, ErrTxnNegativeAmount
	}

	return &Transaction{
		ID:          uuid.New().String(),
		UserID:      userID,
		Timestamp:   at.UTC(),
		Kind:        kind,
		Category:    category,
		Amount:      amount,
		Description: strings.TrimSpace(description),
		EmotionTag:  emotionTag,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
