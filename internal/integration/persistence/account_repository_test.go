package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	user := createTestUser(t, db)

	account := entity.NewAccount(user.ID, "Savings", entity.AccountTypeSavings, decimal.RequireFromString("250.00"))
	require.NoError(t, repo.Create(context.Background(), account))

	t.Run("opening balance becomes the balance", func(t *testing.T) {
		found, err := repo.FindByID(context.Background(), account.ID)
		require.NoError(t, err)
		assert.Equal(t, "Savings", found.Name)
		assert.True(t, found.Balance.Equal(decimal.RequireFromString("250.00")))
	})

	t.Run("listing is scoped to the user", func(t *testing.T) {
		stranger := entity.NewUser("stranger@example.com", "Stranger", "hash")
		require.NoError(t, NewUserRepository(db).Create(context.Background(), stranger))

		accounts, err := repo.FindByUser(context.Background(), stranger.ID)
		require.NoError(t, err)
		assert.Empty(t, accounts)
	})
}

func TestAccountRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "100.00")

	account.Name = "Everyday"
	account.Type = entity.AccountTypeCash
	require.NoError(t, repo.Update(context.Background(), account))

	found, err := repo.FindByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, "Everyday", found.Name)
	assert.Equal(t, entity.AccountTypeCash, found.Type)
}

func TestAccountRepository_DeleteWithTransactions(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	txnRepo := NewTransactionRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "1000.00")
	keeper := createTestAccount(t, db, user.ID, "0.00")

	createTestTransaction(t, db, user.ID, account.ID, nil, "-50.00", "2026-08-01")
	createTestTransaction(t, db, user.ID, account.ID, nil, "-25.00", "2026-08-02")
	survivor := createTestTransaction(t, db, user.ID, keeper.ID, nil, "-5.00", "2026-08-03")

	require.NoError(t, repo.DeleteWithTransactions(context.Background(), account.ID))

	t.Run("account is gone", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), account.ID)
		assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
	})

	t.Run("its transactions are gone with it", func(t *testing.T) {
		txns, err := txnRepo.FindByFilter(context.Background(), adapter.TransactionFilter{UserID: user.ID})
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, survivor.ID, txns[0].ID)
	})

	t.Run("deleting an unknown account reports not found", func(t *testing.T) {
		err := repo.DeleteWithTransactions(context.Background(), account.ID)
		assert.ErrorIs(t, err, domainerror.ErrAccountNotFound)
	})
}
