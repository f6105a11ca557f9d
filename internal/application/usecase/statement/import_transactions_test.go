package statement

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

func TestImportTransactionsUseCase_Execute(t *testing.T) {
	t.Run("imports rows and adjusts the balance", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		output, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    deps.user.ID,
			AccountID: deps.account.ID,
			Data:      "date,amount,description\n2026-08-01,-42.50,Supermarket\n2026-08-02,1200.00,Paycheck\n",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, output.Imported)
		assert.Equal(t, 0, output.Skipped)

		account, err := deps.accountRepo.FindByID(context.Background(), deps.account.ID)
		require.NoError(t, err)
		assert.True(t, account.Balance.Equal(decimal.RequireFromString("2157.50")))
	})

	t.Run("skips rows with bad dates or amounts", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		output, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    deps.user.ID,
			AccountID: deps.account.ID,
			Data:      "date,amount,description\n2026-08-01,-10.00,Valid row\nnot-a-date,-5.00,Bad date\n2026-08-03,not-a-number,Bad amount\n",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Imported)
		assert.Equal(t, 2, output.Skipped)
	})

	t.Run("matches category names case-insensitively", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		food := deps.createCategory(t, "Food & Dining", entity.CategoryTypeExpense)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		output, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    deps.user.ID,
			AccountID: deps.account.ID,
			Data:      "date,amount,description,category\n2026-08-01,-15.00,Groceries,FOOD & DINING\n",
		})
		require.NoError(t, err)
		require.Len(t, output.Transactions, 1)
		require.NotNil(t, output.Transactions[0].CategoryID)
		assert.Equal(t, food.ID, *output.Transactions[0].CategoryID)
	})

	t.Run("unknown category names fall back to Other Expenses", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		deps.createCategory(t, "Food & Dining", entity.CategoryTypeExpense)
		other := deps.createCategory(t, "Other Expenses", entity.CategoryTypeExpense)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		output, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    deps.user.ID,
			AccountID: deps.account.ID,
			Data:      "date,amount,description,category\n2026-08-01,-15.00,Mystery purchase,Wizardry\n",
		})
		require.NoError(t, err)
		require.Len(t, output.Transactions, 1)
		require.NotNil(t, output.Transactions[0].CategoryID)
		assert.Equal(t, other.ID, *output.Transactions[0].CategoryID)
	})

	t.Run("empty category cells stay uncategorized", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		deps.createCategory(t, "Other Expenses", entity.CategoryTypeExpense)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		output, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    deps.user.ID,
			AccountID: deps.account.ID,
			Data:      "date,amount,description,category\n2026-08-01,-15.00,Cash withdrawal,\n",
		})
		require.NoError(t, err)
		require.Len(t, output.Transactions, 1)
		assert.Nil(t, output.Transactions[0].CategoryID)
	})

	t.Run("rejects a header without the required columns", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		_, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    deps.user.ID,
			AccountID: deps.account.ID,
			Data:      "when,how_much\n2026-08-01,-15.00\n",
		})
		assert.ErrorIs(t, err, domainerror.ErrMissingStatementColumns)
	})

	t.Run("rejects a statement with no data rows", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		_, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    deps.user.ID,
			AccountID: deps.account.ID,
			Data:      "date,amount,description\n",
		})
		assert.ErrorIs(t, err, domainerror.ErrEmptyStatement)
	})

	t.Run("rejects another user's account", func(t *testing.T) {
		deps := newStatementTestDeps(t)
		useCase := NewImportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

		_, err := useCase.Execute(context.Background(), ImportTransactionsInput{
			UserID:    uuid.New(),
			AccountID: deps.account.ID,
			Data:      "date,amount,description\n2026-08-01,-15.00,Sneaky\n",
		})
		assert.ErrorIs(t, err, domainerror.ErrAccountNotOwnedByUser)
	})
}
