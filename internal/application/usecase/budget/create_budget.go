// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Month      int
	Year       int
	Amount     decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation. At most one budget may exist per
// (user, category, month, year).
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validatePeriod(input.Month, input.Year); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if err := uc.validateCategory(ctx, input.UserID, input.CategoryID); err != nil {
		return nil, err
	}

	// Reject a second budget for the same category and period
	exists, err := uc.budgetRepo.ExistsForPeriod(ctx, input.UserID, input.CategoryID, input.Month, input.Year, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget period: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetPeriodTaken,
			"a budget already exists for this category and period",
			domainerror.ErrBudgetPeriodTaken,
		)
	}

	budget := entity.NewBudget(input.UserID, input.CategoryID, input.Month, input.Year, input.Amount)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// validateCategory checks that the category exists and belongs to the user.
func (uc *CreateBudgetUseCase) validateCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrBudgetCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotOwned,
			"category does not belong to user",
			domainerror.ErrBudgetCategoryNotOwned,
		)
	}
	return nil
}

// validatePeriod rejects months outside 1-12 and non four-digit years.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	if year < 1000 || year > 9999 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetYear,
			"year must be a four-digit year",
			domainerror.ErrInvalidBudgetYear,
		)
	}
	return nil
}
