package dashboard

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

func TestGetBudgetReportUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	food := entity.NewCategory(userID, "Food", entity.CategoryTypeExpense, "#FF5722", true)
	fun := entity.NewCategory(userID, "Entertainment", entity.CategoryTypeExpense, "#E91E63", true)
	salary := entity.NewCategory(userID, "Salary", entity.CategoryTypeIncome, "#4CAF50", true)
	categoryRepo := &fakeCategoryRepo{categories: []*entity.Category{food, fun, salary}}

	newUseCase := func(budgets []*entity.Budget, spent map[uuid.UUID]decimal.Decimal) *GetBudgetReportUseCase {
		return NewGetBudgetReportUseCase(
			&fakeDashboardRepo{spent: spent},
			&fakeBudgetRepo{budgets: budgets},
			categoryRepo,
		)
	}

	t.Run("computes spent, remaining and percentage per budget", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewBudget(userID, food.ID, 8, 2026, decimal.RequireFromString("500.00")),
		}
		spent := map[uuid.UUID]decimal.Decimal{
			food.ID: decimal.RequireFromString("200.00"),
		}

		output, err := newUseCase(budgets, spent).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 8, Year: 2026,
		})
		require.NoError(t, err)
		require.Len(t, output.Rows, 1)

		row := output.Rows[0]
		assert.Equal(t, "Food", row.CategoryName)
		assert.True(t, row.BudgetAmount.Equal(decimal.RequireFromString("500.00")))
		assert.True(t, row.SpentAmount.Equal(decimal.RequireFromString("200.00")))
		assert.True(t, row.RemainingAmount.Equal(decimal.RequireFromString("300.00")))
		assert.True(t, row.Percentage.Equal(decimal.RequireFromString("40")))
	})

	t.Run("budgeted category without spending shows a zero spent row", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewBudget(userID, food.ID, 8, 2026, decimal.RequireFromString("500.00")),
		}

		output, err := newUseCase(budgets, nil).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 8, Year: 2026,
		})
		require.NoError(t, err)
		require.Len(t, output.Rows, 1)
		assert.True(t, output.Rows[0].SpentAmount.IsZero())
		assert.True(t, output.Rows[0].Percentage.IsZero())
	})

	t.Run("unbudgeted spending appears with a zero budget and zero percentage", func(t *testing.T) {
		spent := map[uuid.UUID]decimal.Decimal{
			fun.ID: decimal.RequireFromString("60.00"),
		}

		output, err := newUseCase(nil, spent).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 8, Year: 2026,
		})
		require.NoError(t, err)
		require.Len(t, output.Rows, 1)

		row := output.Rows[0]
		assert.Equal(t, "Entertainment", row.CategoryName)
		assert.True(t, row.BudgetAmount.IsZero())
		assert.True(t, row.Percentage.IsZero())
		assert.True(t, row.RemainingAmount.Equal(decimal.RequireFromString("-60.00")))
	})

	t.Run("income categories never appear", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewBudget(userID, salary.ID, 8, 2026, decimal.RequireFromString("100.00")),
		}
		spent := map[uuid.UUID]decimal.Decimal{
			salary.ID: decimal.RequireFromString("10.00"),
		}

		output, err := newUseCase(budgets, spent).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 8, Year: 2026,
		})
		require.NoError(t, err)
		assert.Empty(t, output.Rows)
	})

	t.Run("rows are sorted by percentage, highest first", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewBudget(userID, food.ID, 8, 2026, decimal.RequireFromString("500.00")),
			entity.NewBudget(userID, fun.ID, 8, 2026, decimal.RequireFromString("100.00")),
		}
		spent := map[uuid.UUID]decimal.Decimal{
			food.ID: decimal.RequireFromString("100.00"), // 20%
			fun.ID:  decimal.RequireFromString("90.00"),  // 90%
		}

		output, err := newUseCase(budgets, spent).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 8, Year: 2026,
		})
		require.NoError(t, err)
		require.Len(t, output.Rows, 2)
		assert.Equal(t, "Entertainment", output.Rows[0].CategoryName)
		assert.Equal(t, "Food", output.Rows[1].CategoryName)
	})

	t.Run("overspending exceeds one hundred percent", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewBudget(userID, food.ID, 8, 2026, decimal.RequireFromString("100.00")),
		}
		spent := map[uuid.UUID]decimal.Decimal{
			food.ID: decimal.RequireFromString("150.00"),
		}

		output, err := newUseCase(budgets, spent).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 8, Year: 2026,
		})
		require.NoError(t, err)
		require.Len(t, output.Rows, 1)
		assert.True(t, output.Rows[0].Percentage.Equal(decimal.RequireFromString("150")))
		assert.True(t, output.Rows[0].RemainingAmount.IsNegative())
	})

	t.Run("rejects an invalid month", func(t *testing.T) {
		_, err := newUseCase(nil, nil).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 13, Year: 2026,
		})
		assert.ErrorIs(t, err, domainerror.ErrInvalidReportMonth)
	})

	t.Run("rejects an invalid year", func(t *testing.T) {
		_, err := newUseCase(nil, nil).Execute(context.Background(), GetBudgetReportInput{
			UserID: userID, Month: 8, Year: 26,
		})
		assert.ErrorIs(t, err, domainerror.ErrInvalidReportYear)
	})
}
