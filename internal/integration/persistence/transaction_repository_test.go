package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

func TestTransactionRepository_CreateAdjustsBalance(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "1000.00")

	t.Run("income credits the balance", func(t *testing.T) {
		createTestTransaction(t, db, user.ID, account.ID, nil, "500.00", "2026-08-01")
		assert.True(t, accountBalance(t, db, account.ID).Equal(decimal.RequireFromString("1500.00")))
	})

	t.Run("expense debits the balance", func(t *testing.T) {
		createTestTransaction(t, db, user.ID, account.ID, nil, "-200.00", "2026-08-02")
		assert.True(t, accountBalance(t, db, account.ID).Equal(decimal.RequireFromString("1300.00")))
	})
}

func TestTransactionRepository_UpdateReversesAndReapplies(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "1000.00")

	txn := createTestTransaction(t, db, user.ID, account.ID, nil, "-200.00", "2026-08-05")
	require.True(t, accountBalance(t, db, account.ID).Equal(decimal.RequireFromString("800.00")))

	t.Run("changing the amount nets the difference", func(t *testing.T) {
		txn.Amount = decimal.RequireFromString("-300.00")
		require.NoError(t, repo.Update(context.Background(), txn))
		assert.True(t, accountBalance(t, db, account.ID).Equal(decimal.RequireFromString("700.00")))
	})

	t.Run("moving between accounts moves the amount", func(t *testing.T) {
		savings := createTestAccount(t, db, user.ID, "0.00")

		txn.AccountID = savings.ID
		require.NoError(t, repo.Update(context.Background(), txn))

		assert.True(t, accountBalance(t, db, account.ID).Equal(decimal.RequireFromString("1000.00")))
		assert.True(t, accountBalance(t, db, savings.ID).Equal(decimal.RequireFromString("-300.00")))
	})

	t.Run("unchanged amount and account is a no-op on balances", func(t *testing.T) {
		before := accountBalance(t, db, txn.AccountID)

		txn.Description = "renamed"
		require.NoError(t, repo.Update(context.Background(), txn))

		assert.True(t, accountBalance(t, db, txn.AccountID).Equal(before))
	})
}

func TestTransactionRepository_DeleteRestoresBalance(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "1000.00")

	txn := createTestTransaction(t, db, user.ID, account.ID, nil, "-150.00", "2026-08-07")
	require.True(t, accountBalance(t, db, account.ID).Equal(decimal.RequireFromString("850.00")))

	require.NoError(t, repo.Delete(context.Background(), txn.ID))
	assert.True(t, accountBalance(t, db, account.ID).Equal(decimal.RequireFromString("1000.00")))

	t.Run("deleted transaction is gone", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), txn.ID)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})

	t.Run("deleting twice reports not found", func(t *testing.T) {
		err := repo.Delete(context.Background(), txn.ID)
		assert.ErrorIs(t, err, domainerror.ErrTransactionNotFound)
	})
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	user := createTestUser(t, db)
	checking := createTestAccount(t, db, user.ID, "0.00")
	savings := createTestAccount(t, db, user.ID, "0.00")
	food := createTestCategory(t, db, user.ID, "Food", entity.CategoryTypeExpense)

	createTestTransaction(t, db, user.ID, checking.ID, &food.ID, "-10.00", "2026-07-01")
	createTestTransaction(t, db, user.ID, checking.ID, nil, "-20.00", "2026-08-15")
	createTestTransaction(t, db, user.ID, savings.ID, nil, "100.00", "2026-08-20")

	t.Run("by user only", func(t *testing.T) {
		txns, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: user.ID})
		require.NoError(t, err)
		assert.Len(t, txns, 3)
	})

	t.Run("newest date first", func(t *testing.T) {
		txns, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: user.ID})
		require.NoError(t, err)
		require.Len(t, txns, 3)
		assert.True(t, txns[0].Date.After(txns[1].Date) || txns[0].Date.Equal(txns[1].Date))
	})

	t.Run("by account", func(t *testing.T) {
		txns, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: user.ID, AccountID: &savings.ID})
		require.NoError(t, err)
		assert.Len(t, txns, 1)
	})

	t.Run("by category", func(t *testing.T) {
		txns, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: user.ID, CategoryID: &food.ID})
		require.NoError(t, err)
		assert.Len(t, txns, 1)
	})

	t.Run("by date range", func(t *testing.T) {
		start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		txns, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: user.ID, StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		assert.Len(t, txns, 2)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		stranger := entity.NewUser("stranger@example.com", "Stranger", "hash")
		require.NoError(t, NewUserRepository(db).Create(context.Background(), stranger))

		txns, err := repo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: stranger.ID})
		require.NoError(t, err)
		assert.Empty(t, txns)
	})
}
