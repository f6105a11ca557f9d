// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

var oneHundred = decimal.NewFromInt(100)

// GetBudgetReportInput represents the input for the monthly budget report.
type GetBudgetReportInput struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// BudgetReportRow is one category's budget-vs-actual line for the period.
//
// Percentage is 100 * spent / budget. A zero budget pins the percentage to 0
// rather than dividing; the spent and (negative) remaining amounts still
// carry the overrun.
type BudgetReportRow struct {
	CategoryID      uuid.UUID
	CategoryName    string
	CategoryColor   string
	BudgetAmount    decimal.Decimal
	SpentAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	Percentage      decimal.Decimal
}

// GetBudgetReportOutput represents the monthly budget report.
type GetBudgetReportOutput struct {
	Month int
	Year  int
	Rows  []*BudgetReportRow
}

// GetBudgetReportUseCase computes the budget-vs-actual report for one month.
type GetBudgetReportUseCase struct {
	dashboardRepo Repository
	budgetRepo    adapter.BudgetRepository
	categoryRepo  adapter.CategoryRepository
}

// NewGetBudgetReportUseCase creates a new GetBudgetReportUseCase instance.
func NewGetBudgetReportUseCase(
	dashboardRepo Repository,
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *GetBudgetReportUseCase {
	return &GetBudgetReportUseCase{
		dashboardRepo: dashboardRepo,
		budgetRepo:    budgetRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute computes the report. Every budgeted expense category for the
// period gets a row; expense categories with spending but no budget appear
// with a zero budget. Rows are sorted by percentage, highest first.
func (uc *GetBudgetReportUseCase) Execute(ctx context.Context, input GetBudgetReportInput) (*GetBudgetReportOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidReportMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidReportMonth,
		)
	}
	if input.Year < 1000 || input.Year > 9999 {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidReportYear,
			"year must be a four-digit year",
			domainerror.ErrInvalidReportYear,
		)
	}

	periodStart := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	budgets, err := uc.budgetRepo.FindByUserAndPeriod(ctx, input.UserID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	spent, err := uc.dashboardRepo.GetSpentByCategory(ctx, input.UserID, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate spending: %w", err)
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categoryByID := make(map[uuid.UUID]*entity.Category, len(categories))
	for _, cat := range categories {
		categoryByID[cat.ID] = cat
	}

	rows := make([]*BudgetReportRow, 0, len(budgets))
	covered := make(map[uuid.UUID]bool, len(budgets))

	for _, budget := range budgets {
		cat, ok := categoryByID[budget.CategoryID]
		if !ok || cat.Type != entity.CategoryTypeExpense {
			continue
		}
		covered[budget.CategoryID] = true
		rows = append(rows, buildRow(cat, budget.Amount, spent[budget.CategoryID]))
	}

	// Expense categories with spending but no budget show up with zero budget
	for categoryID, spentAmount := range spent {
		if covered[categoryID] || spentAmount.IsZero() {
			continue
		}
		cat, ok := categoryByID[categoryID]
		if !ok || cat.Type != entity.CategoryTypeExpense {
			continue
		}
		rows = append(rows, buildRow(cat, decimal.Zero, spentAmount))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Percentage.GreaterThan(rows[j].Percentage)
	})

	return &GetBudgetReportOutput{
		Month: input.Month,
		Year:  input.Year,
		Rows:  rows,
	}, nil
}

func buildRow(cat *entity.Category, budgetAmount, spentAmount decimal.Decimal) *BudgetReportRow {
	percentage := decimal.Zero
	if budgetAmount.IsPositive() {
		percentage = spentAmount.Mul(oneHundred).Div(budgetAmount)
	}

	return &BudgetReportRow{
		CategoryID:      cat.ID,
		CategoryName:    cat.Name,
		CategoryColor:   cat.Color,
		BudgetAmount:    budgetAmount,
		SpentAmount:     spentAmount,
		RemainingAmount: budgetAmount.Sub(spentAmount),
		Percentage:      percentage,
	}
}
