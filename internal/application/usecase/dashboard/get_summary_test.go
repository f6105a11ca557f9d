package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backend/internal/domain/entity"
)

func TestGetSummaryUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	account := entity.NewAccount(userID, "Checking", entity.AccountTypeChecking, decimal.RequireFromString("1000.00"))

	recent := make([]*entity.Transaction, 0, 7)
	for i := 0; i < 7; i++ {
		recent = append(recent, entity.NewTransaction(
			userID, account.ID, nil,
			decimal.RequireFromString("-10.00"),
			time.Date(2026, 8, 20-i, 0, 0, 0, 0, time.UTC),
			"coffee",
		))
	}

	dashboardRepo := &fakeDashboardRepo{
		totals: TransactionTotals{
			Income:   decimal.RequireFromString("3000.00"),
			Expenses: decimal.RequireFromString("200.00"),
		},
		balance: decimal.RequireFromString("3800.00"),
		recent:  recent,
	}
	accountRepo := &fakeAccountRepo{accounts: []*entity.Account{account}}

	useCase := NewGetSummaryUseCase(dashboardRepo, accountRepo)

	output, err := useCase.Execute(context.Background(), GetSummaryInput{UserID: userID})
	require.NoError(t, err)

	t.Run("carries the aggregates", func(t *testing.T) {
		assert.True(t, output.TotalIncome.Equal(decimal.RequireFromString("3000.00")))
		assert.True(t, output.TotalExpenses.Equal(decimal.RequireFromString("200.00")))
		assert.True(t, output.NetBalance.Equal(decimal.RequireFromString("3800.00")))
	})

	t.Run("lists the accounts", func(t *testing.T) {
		require.Len(t, output.Accounts, 1)
		assert.Equal(t, "Checking", output.Accounts[0].Name)
	})

	t.Run("recent transactions are capped", func(t *testing.T) {
		assert.Len(t, output.RecentTransactions, RecentTransactionLimit)
	})
}
