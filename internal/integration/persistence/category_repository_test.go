package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

func TestCategoryRepository_FindByNameAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	user := createTestUser(t, db)
	createTestCategory(t, db, user.ID, "Food & Dining", entity.CategoryTypeExpense)

	t.Run("exact name", func(t *testing.T) {
		found, err := repo.FindByNameAndUser(context.Background(), "Food & Dining", user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Food & Dining", found.Name)
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		found, err := repo.FindByNameAndUser(context.Background(), "food & dining", user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Food & Dining", found.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := repo.FindByNameAndUser(context.Background(), "Wizardry", user.ID)
		assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)
	})
}

func TestCategoryRepository_ExistsByNameAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	user := createTestUser(t, db)
	createTestCategory(t, db, user.ID, "Salary", entity.CategoryTypeIncome)

	exists, err := repo.ExistsByNameAndUser(context.Background(), "SALARY", user.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByNameAndUser(context.Background(), "Bonus", user.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCategoryRepository_CreateBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	user := createTestUser(t, db)

	categories := make([]*entity.Category, len(entity.DefaultCategorySeeds))
	for i, seed := range entity.DefaultCategorySeeds {
		categories[i] = entity.NewCategory(user.ID, seed.Name, seed.Type, seed.Color, seed.BudgetEnabled)
	}
	require.NoError(t, repo.CreateBatch(context.Background(), categories))

	categories, err := repo.FindByUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Len(t, categories, 14)
}

func TestCategoryRepository_DeleteAndDetach(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	budgetRepo := NewBudgetRepository(db)
	txnRepo := NewTransactionRepository(db)
	user := createTestUser(t, db)
	account := createTestAccount(t, db, user.ID, "0.00")
	category := createTestCategory(t, db, user.ID, "Ephemeral", entity.CategoryTypeExpense)

	txn := createTestTransaction(t, db, user.ID, account.ID, &category.ID, "-30.00", "2026-08-12")
	budget := entity.NewBudget(user.ID, category.ID, 8, 2026, decimal.RequireFromString("100.00"))
	require.NoError(t, budgetRepo.Create(context.Background(), budget))

	require.NoError(t, repo.DeleteAndDetach(context.Background(), category.ID))

	t.Run("category is gone", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), category.ID)
		assert.ErrorIs(t, err, domainerror.ErrCategoryNotFound)
	})

	t.Run("transaction survives uncategorized", func(t *testing.T) {
		found, err := txnRepo.FindByID(context.Background(), txn.ID)
		require.NoError(t, err)
		assert.Nil(t, found.CategoryID)
	})

	t.Run("budget is removed with the category", func(t *testing.T) {
		_, err := budgetRepo.FindByID(context.Background(), budget.ID)
		assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)
	})
}
