// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository
// interface. Account balances are maintained here: every mutation adjusts
// the affected balances inside the same database transaction, so a crash
// can never leave a balance out of step with its transactions.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a new transaction and credits its amount to the account
// balance.
func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(txn)).Error; err != nil {
			return err
		}
		return applyBalanceDelta(tx, txn.AccountID, txn.Amount)
	})
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txnModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&txnModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return txnModel.ToEntity(), nil
}

// FindByFilter retrieves transactions matching the filter, newest date first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.AccountID != nil {
		query = query.Where("account_id = ?", *filter.AccountID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var txnModels []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txnModels))
	for i := range txnModels {
		transactions[i] = txnModels[i].ToEntity()
	}
	return transactions, nil
}

// Update persists changes to a transaction. The stored amount is reversed
// from the stored account, then the new amount is applied to the new
// account. When neither changed, the two adjustments collapse into a no-op.
func (r *transactionRepository) Update(ctx context.Context, txn *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.TransactionModel
		if err := tx.Where("id = ?", txn.ID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return err
		}

		if err := tx.Save(model.TransactionFromEntity(txn)).Error; err != nil {
			return err
		}

		if err := applyBalanceDelta(tx, current.AccountID, current.Amount.Neg()); err != nil {
			return err
		}
		return applyBalanceDelta(tx, txn.AccountID, txn.Amount)
	})
}

// Delete removes a transaction and debits its amount from the account
// balance.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.TransactionModel
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return err
		}

		if err := tx.Delete(&current).Error; err != nil {
			return err
		}

		return applyBalanceDelta(tx, current.AccountID, current.Amount.Neg())
	})
}

// applyBalanceDelta shifts an account balance by delta. A missing account
// matches zero rows and stays a no-op; ownership is validated before any
// write reaches this layer.
func applyBalanceDelta(tx *gorm.DB, accountID uuid.UUID, delta decimal.Decimal) error {
	if delta.IsZero() {
		return nil
	}
	return tx.Model(&model.AccountModel{}).
		Where("id = ?", accountID).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now().UTC(),
		}).Error
}
