// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
)

// RecentTransactionLimit is how many of the latest transactions the summary carries.
const RecentTransactionLimit = 5

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the dashboard summary.
//
// NetBalance is the sum of account balances. Because balances include opening
// amounts that never passed through a transaction, it is not derivable from
// TotalIncome and TotalExpenses.
type GetSummaryOutput struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetBalance         decimal.Decimal
	Accounts           []*entity.Account
	RecentTransactions []*entity.Transaction
}

// GetSummaryUseCase computes the dashboard summary for a user.
type GetSummaryUseCase struct {
	dashboardRepo Repository
	accountRepo   adapter.AccountRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(dashboardRepo Repository, accountRepo adapter.AccountRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		dashboardRepo: dashboardRepo,
		accountRepo:   accountRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	totals, err := uc.dashboardRepo.GetTransactionTotals(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transaction totals: %w", err)
	}

	netBalance, err := uc.dashboardRepo.SumAccountBalances(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum account balances: %w", err)
	}

	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	recent, err := uc.dashboardRepo.GetRecentTransactions(ctx, input.UserID, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent transactions: %w", err)
	}

	return &GetSummaryOutput{
		TotalIncome:        totals.Income,
		TotalExpenses:      totals.Expenses,
		NetBalance:         netBalance,
		Accounts:           accounts,
		RecentTransactions: recent,
	}, nil
}
