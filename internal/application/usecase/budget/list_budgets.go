// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets. Month and Year
// are optional; when both are set the listing is scoped to that period.
type ListBudgetsInput struct {
	UserID uuid.UUID
	Month  *int
	Year   *int
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles budget listing logic.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute retrieves the user's budgets.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	var (
		budgets []*entity.Budget
		err     error
	)

	if input.Month != nil && input.Year != nil {
		if err := validatePeriod(*input.Month, *input.Year); err != nil {
			return nil, err
		}
		budgets, err = uc.budgetRepo.FindByUserAndPeriod(ctx, input.UserID, *input.Month, *input.Year)
	} else {
		budgets, err = uc.budgetRepo.FindByUser(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsOutput{
		Budgets: budgets,
	}, nil
}
