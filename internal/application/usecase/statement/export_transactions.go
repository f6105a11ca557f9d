// Package statement contains CSV statement import/export use cases.
package statement

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ledgerly/backend/internal/application/adapter"
)

// exportHeader is the fixed column order of exported statements.
var exportHeader = []string{"id", "date", "amount", "description", "account", "category"}

// ExportTransactionsInput represents the input for statement export.
type ExportTransactionsInput struct {
	UserID uuid.UUID
}

// ExportTransactionsOutput represents the exported statement.
type ExportTransactionsOutput struct {
	Data  string // CSV text including the header row
	Count int
}

// ExportTransactionsUseCase renders all of a user's transactions as CSV.
// Account and category columns carry display names; a detached category
// renders as an empty cell.
type ExportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute builds the statement, newest transactions first.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{UserID: input.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	accountNames := make(map[uuid.UUID]string, len(accounts))
	for _, account := range accounts {
		accountNames[account.ID] = account.Name
	}

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write statement header: %w", err)
	}

	for _, txn := range transactions {
		categoryName := ""
		if txn.CategoryID != nil {
			categoryName = categoryNames[*txn.CategoryID]
		}

		row := []string{
			txn.ID.String(),
			txn.Date.Format(DateLayout),
			txn.Amount.String(),
			txn.Description,
			accountNames[txn.AccountID],
			categoryName,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write statement row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush statement: %w", err)
	}

	return &ExportTransactionsOutput{
		Data:  sb.String(),
		Count: len(transactions),
	}, nil
}
