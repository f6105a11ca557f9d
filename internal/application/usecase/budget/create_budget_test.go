package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	deps := newBudgetTestDeps(t)
	useCase := NewCreateBudgetUseCase(deps.budgetRepo, deps.categoryRepo)

	input := CreateBudgetInput{
		UserID:     deps.user.ID,
		CategoryID: deps.category.ID,
		Month:      8,
		Year:       2026,
		Amount:     decimal.RequireFromString("500.00"),
	}

	t.Run("creates a budget", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, 8, output.Budget.Month)
		assert.Equal(t, 2026, output.Budget.Year)
		assert.True(t, output.Budget.Amount.Equal(decimal.RequireFromString("500.00")))
	})

	t.Run("rejects a second budget for the same period", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), input)
		assert.ErrorIs(t, err, domainerror.ErrBudgetPeriodTaken)

		var budgetErr *domainerror.BudgetError
		require.True(t, errors.As(err, &budgetErr))
		assert.Equal(t, domainerror.ErrCodeBudgetPeriodTaken, budgetErr.Code)
	})

	t.Run("allows the same category in another month", func(t *testing.T) {
		next := input
		next.Month = 9
		_, err := useCase.Execute(context.Background(), next)
		assert.NoError(t, err)
	})

	t.Run("rejects an invalid month", func(t *testing.T) {
		bad := input
		bad.Month = 13
		_, err := useCase.Execute(context.Background(), bad)
		assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetMonth)
	})

	t.Run("rejects a non four-digit year", func(t *testing.T) {
		bad := input
		bad.Month = 10
		bad.Year = 26
		_, err := useCase.Execute(context.Background(), bad)
		assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetYear)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		bad := input
		bad.Month = 10
		bad.Amount = decimal.RequireFromString("-50.00")
		_, err := useCase.Execute(context.Background(), bad)
		assert.ErrorIs(t, err, domainerror.ErrInvalidBudgetAmount)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		bad := input
		bad.Month = 10
		bad.CategoryID = uuid.New()
		_, err := useCase.Execute(context.Background(), bad)
		assert.ErrorIs(t, err, domainerror.ErrBudgetCategoryNotFound)
	})
}

func TestUpdateBudgetUseCase_Execute(t *testing.T) {
	deps := newBudgetTestDeps(t)
	createUseCase := NewCreateBudgetUseCase(deps.budgetRepo, deps.categoryRepo)
	updateUseCase := NewUpdateBudgetUseCase(deps.budgetRepo)

	created, err := createUseCase.Execute(context.Background(), CreateBudgetInput{
		UserID:     deps.user.ID,
		CategoryID: deps.category.ID,
		Month:      8,
		Year:       2026,
		Amount:     decimal.RequireFromString("500.00"),
	})
	require.NoError(t, err)

	t.Run("updates the amount in place", func(t *testing.T) {
		amount := decimal.RequireFromString("650.00")
		output, err := updateUseCase.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: created.Budget.ID,
			UserID:   deps.user.ID,
			Amount:   &amount,
		})
		require.NoError(t, err)
		assert.True(t, output.Budget.Amount.Equal(amount))
		assert.Equal(t, 8, output.Budget.Month)
	})

	t.Run("moves the budget to a free period", func(t *testing.T) {
		month := 10
		output, err := updateUseCase.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: created.Budget.ID,
			UserID:   deps.user.ID,
			Month:    &month,
		})
		require.NoError(t, err)
		assert.Equal(t, 10, output.Budget.Month)
	})

	t.Run("rejects a move onto an occupied period", func(t *testing.T) {
		_, err := createUseCase.Execute(context.Background(), CreateBudgetInput{
			UserID:     deps.user.ID,
			CategoryID: deps.category.ID,
			Month:      11,
			Year:       2026,
			Amount:     decimal.RequireFromString("100.00"),
		})
		require.NoError(t, err)

		month := 11
		_, err = updateUseCase.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: created.Budget.ID,
			UserID:   deps.user.ID,
			Month:    &month,
		})
		assert.ErrorIs(t, err, domainerror.ErrBudgetPeriodTaken)
	})

	t.Run("rejects another user's budget", func(t *testing.T) {
		month := 12
		_, err := updateUseCase.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: created.Budget.ID,
			UserID:   uuid.New(),
			Month:    &month,
		})
		assert.ErrorIs(t, err, domainerror.ErrNotAuthorizedToModifyBudget)
	})

	t.Run("rejects an unknown budget", func(t *testing.T) {
		_, err := updateUseCase.Execute(context.Background(), UpdateBudgetInput{
			BudgetID: uuid.New(),
			UserID:   deps.user.ID,
		})
		assert.ErrorIs(t, err, domainerror.ErrBudgetNotFound)
	})
}
