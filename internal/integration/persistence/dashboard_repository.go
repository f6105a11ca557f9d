// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerly/backend/internal/application/usecase/dashboard"
	"github.com/ledgerly/backend/internal/domain/entity"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.Repository interface with
// aggregation pushed down to SQL.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.Repository {
	return &dashboardRepository{
		db: db,
	}
}

// GetTransactionTotals returns the user's income and expense sums across all
// transactions. Income sums positive amounts; expenses sum the absolute
// value of negative amounts.
func (r *dashboardRepository) GetTransactionTotals(ctx context.Context, userID uuid.UUID) (*dashboard.TransactionTotals, error) {
	var row struct {
		Income   decimal.Decimal
		Expenses decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) AS income, " +
			"COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) AS expenses").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &dashboard.TransactionTotals{
		Income:   row.Income,
		Expenses: row.Expenses,
	}, nil
}

// SumAccountBalances returns the sum of the user's account balances.
func (r *dashboardRepository) SumAccountBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("COALESCE(SUM(balance), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// GetRecentTransactions returns the user's transactions with the latest
// dates, date descending.
func (r *dashboardRepository) GetRecentTransactions(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Transaction, error) {
	var txnModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&txnModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(txnModels))
	for i := range txnModels {
		transactions[i] = txnModels[i].ToEntity()
	}
	return transactions, nil
}

// GetSpentByCategory returns, per category, the absolute sum of negative
// amounts dated within [start, end). Uncategorized spending is excluded.
func (r *dashboardRepository) GetSpentByCategory(ctx context.Context, userID uuid.UUID, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	var rows []struct {
		CategoryID uuid.UUID
		Spent      decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, COALESCE(SUM(-amount), 0) AS spent").
		Where("user_id = ? AND amount < 0 AND category_id IS NOT NULL AND date >= ? AND date < ?",
			userID, start, end).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		spent[row.CategoryID] = row.Spent
	}
	return spent, nil
}
