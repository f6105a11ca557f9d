package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backend/internal/domain/entity"
)

func TestDashboardRepository_GetTransactionTotals(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "0.00")

	t.Run("zero totals with no transactions", func(t *testing.T) {
		totals, err := repo.GetTransactionTotals(context.Background(), user.ID)
		require.NoError(t, err)
		assert.True(t, totals.Income.IsZero())
		assert.True(t, totals.Expenses.IsZero())
	})

	t.Run("income and expenses split by sign", func(t *testing.T) {
		createTestTransaction(t, db, user.ID, account.ID, nil, "3000.00", "2026-08-01")
		createTestTransaction(t, db, user.ID, account.ID, nil, "-200.00", "2026-08-03")
		createTestTransaction(t, db, user.ID, account.ID, nil, "-50.50", "2026-08-04")

		totals, err := repo.GetTransactionTotals(context.Background(), user.ID)
		require.NoError(t, err)
		assert.True(t, totals.Income.Equal(decimal.RequireFromString("3000.00")))
		assert.True(t, totals.Expenses.Equal(decimal.RequireFromString("250.50")))
	})
}

func TestDashboardRepository_SumAccountBalances(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	user := createTestUser(t, db)

	createTestAccount(t, db, user.ID, "1000.00")
	createTestAccount(t, db, user.ID, "-250.00")

	total, err := repo.SumAccountBalances(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("750.00")))
}

func TestDashboardRepository_GetRecentTransactions(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "0.00")

	createTestTransaction(t, db, user.ID, account.ID, nil, "-10.00", "2026-08-01")
	createTestTransaction(t, db, user.ID, account.ID, nil, "-20.00", "2026-08-10")
	createTestTransaction(t, db, user.ID, account.ID, nil, "-30.00", "2026-08-05")

	t.Run("latest date first", func(t *testing.T) {
		txns, err := repo.GetRecentTransactions(context.Background(), user.ID, 10)
		require.NoError(t, err)
		require.Len(t, txns, 3)
		assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("-20.00")))
		assert.True(t, txns[2].Amount.Equal(decimal.RequireFromString("-10.00")))
	})

	t.Run("limit caps the result", func(t *testing.T) {
		txns, err := repo.GetRecentTransactions(context.Background(), user.ID, 2)
		require.NoError(t, err)
		assert.Len(t, txns, 2)
	})
}

func TestDashboardRepository_GetSpentByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "0.00")
	food := createTestCategory(t, db, user.ID, "Food", entity.CategoryTypeExpense)
	fun := createTestCategory(t, db, user.ID, "Entertainment", entity.CategoryTypeExpense)

	createTestTransaction(t, db, user.ID, account.ID, &food.ID, "-40.00", "2026-08-10")
	createTestTransaction(t, db, user.ID, account.ID, &food.ID, "-60.00", "2026-08-20")
	createTestTransaction(t, db, user.ID, account.ID, &fun.ID, "-15.00", "2026-08-15")
	// Out of window, income, and uncategorized rows must all be excluded.
	createTestTransaction(t, db, user.ID, account.ID, &food.ID, "-99.00", "2026-07-31")
	createTestTransaction(t, db, user.ID, account.ID, &food.ID, "-99.00", "2026-09-01")
	createTestTransaction(t, db, user.ID, account.ID, &food.ID, "500.00", "2026-08-12")
	createTestTransaction(t, db, user.ID, account.ID, nil, "-12.00", "2026-08-12")

	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	spent, err := repo.GetSpentByCategory(context.Background(), user.ID, start, end)
	require.NoError(t, err)

	require.Len(t, spent, 2)
	assert.True(t, spent[food.ID].Equal(decimal.RequireFromString("100.00")))
	assert.True(t, spent[fun.ID].Equal(decimal.RequireFromString("15.00")))
}
