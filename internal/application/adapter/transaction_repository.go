// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// TransactionFilter narrows transaction listings. Nil fields are ignored.
type TransactionFilter struct {
	UserID     uuid.UUID
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionRepository defines the interface for transaction persistence
// operations. Every mutation also adjusts the affected account balances in
// the same database transaction.
type TransactionRepository interface {
	// Create persists a new transaction and credits its amount to the account
	// balance.
	Create(ctx context.Context, txn *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest date first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update persists changes to a transaction. The previously stored amount
	// is reversed from the previously stored account and the new amount is
	// applied to the new account.
	Update(ctx context.Context, txn *entity.Transaction) error

	// Delete removes a transaction and debits its amount from the account
	// balance.
	Delete(ctx context.Context, id uuid.UUID) error
}
