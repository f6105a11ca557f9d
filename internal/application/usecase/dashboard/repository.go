// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// TransactionTotals holds the lifetime income and expense sums for a user.
// Income is the sum of positive amounts; Expenses is the absolute sum of
// negative amounts. Both are non-negative.
type TransactionTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// Repository defines the read-side queries the dashboard use cases need.
// The implementation lives in the persistence layer.
type Repository interface {
	// GetTransactionTotals returns the user's income and expense sums across
	// all transactions.
	GetTransactionTotals(ctx context.Context, userID uuid.UUID) (*TransactionTotals, error)

	// SumAccountBalances returns the sum of the user's account balances.
	SumAccountBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// GetRecentTransactions returns the user's transactions with the latest
	// dates, date descending.
	GetRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error)

	// GetSpentByCategory returns, per category, the absolute sum of negative
	// amounts dated within [start, end). Uncategorized spending is excluded.
	GetSpentByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error)
}
