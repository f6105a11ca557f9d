package statement

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/backend/internal/domain/entity"
)

func TestExportTransactionsUseCase_Execute(t *testing.T) {
	deps := newStatementTestDeps(t)
	food := deps.createCategory(t, "Food & Dining", entity.CategoryTypeExpense)
	useCase := NewExportTransactionsUseCase(deps.transactionRepo, deps.accountRepo, deps.categoryRepo)

	older := entity.NewTransaction(deps.user.ID, deps.account.ID, &food.ID,
		decimal.RequireFromString("-42.50"), time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), "Supermarket")
	require.NoError(t, deps.transactionRepo.Create(context.Background(), older))

	newer := entity.NewTransaction(deps.user.ID, deps.account.ID, nil,
		decimal.RequireFromString("1200.00"), time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), "Paycheck")
	require.NoError(t, deps.transactionRepo.Create(context.Background(), newer))

	output, err := useCase.Execute(context.Background(), ExportTransactionsInput{UserID: deps.user.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, output.Count)

	lines := strings.Split(strings.TrimSpace(output.Data), "\n")
	require.Len(t, lines, 3)

	t.Run("fixed header row", func(t *testing.T) {
		assert.Equal(t, "id,date,amount,description,account,category", lines[0])
	})

	t.Run("newest transaction first with display names", func(t *testing.T) {
		assert.Contains(t, lines[1], "2026-08-05,1200,Paycheck,Checking,")
		assert.Contains(t, lines[2], "2026-08-01,-42.5,Supermarket,Checking,Food & Dining")
	})

	t.Run("detached category renders empty", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(lines[1], ","))
	})

	t.Run("empty export still carries the header", func(t *testing.T) {
		other := newStatementTestDeps(t)
		emptyUseCase := NewExportTransactionsUseCase(other.transactionRepo, other.accountRepo, other.categoryRepo)

		output, err := emptyUseCase.Execute(context.Background(), ExportTransactionsInput{UserID: other.user.ID})
		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Equal(t, "id,date,amount,description,account,category", strings.TrimSpace(output.Data))
	})
}
