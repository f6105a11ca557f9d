// Package statement contains CSV statement import/export use cases.
package statement

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
)

// DateLayout is the calendar date format used in statements.
const DateLayout = "2006-01-02"

// fallbackCategoryName is tried when a row's category name has no match.
const fallbackCategoryName = "other expenses"

// ImportTransactionsInput represents the input for statement import.
type ImportTransactionsInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
	Data      string // Raw CSV text, header row first
}

// ImportTransactionsOutput represents the outcome of statement import.
// Skipped counts rows dropped for unparseable dates or amounts.
type ImportTransactionsOutput struct {
	Imported     int
	Skipped      int
	Transactions []*entity.Transaction
}

// ImportTransactionsUseCase parses a CSV statement and records each row as a
// transaction on the destination account.
type ImportTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewImportTransactionsUseCase creates a new ImportTransactionsUseCase instance.
func NewImportTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *ImportTransactionsUseCase {
	return &ImportTransactionsUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the import. The header must carry date, amount and
// description columns; a category column is optional. Malformed rows are
// skipped and counted, never fatal. Every imported row passes through the
// account balance maintenance in the repository.
func (uc *ImportTransactionsUseCase) Execute(ctx context.Context, input ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotOwned,
			"account does not belong to user",
			domainerror.ErrAccountNotOwnedByUser,
		)
	}

	reader := csv.NewReader(strings.NewReader(input.Data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeMalformedStatement,
			"statement could not be parsed",
			domainerror.ErrMalformedStatement,
		)
	}
	if len(records) == 0 {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeEmptyStatement,
			"statement contains no data",
			domainerror.ErrEmptyStatement,
		)
	}

	columns, err := mapColumns(records[0])
	if err != nil {
		return nil, err
	}

	rows := records[1:]
	if len(rows) == 0 {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeEmptyStatement,
			"statement contains no data rows",
			domainerror.ErrEmptyStatement,
		)
	}

	resolver, err := uc.newCategoryResolver(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	output := &ImportTransactionsOutput{}
	for _, record := range rows {
		date, err := time.Parse(DateLayout, field(record, columns.date))
		if err != nil {
			output.Skipped++
			continue
		}
		amount, err := decimal.NewFromString(field(record, columns.amount))
		if err != nil {
			output.Skipped++
			continue
		}
		description := field(record, columns.description)

		var categoryID *uuid.UUID
		if columns.category >= 0 {
			categoryID = resolver.resolve(field(record, columns.category))
		}

		txn := entity.NewTransaction(input.UserID, input.AccountID, categoryID, amount, date, description)
		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to record imported transaction: %w", err)
		}

		output.Imported++
		output.Transactions = append(output.Transactions, txn)
	}

	return output, nil
}

// columnIndexes holds the positions of the recognized statement columns.
// category is -1 when the column is absent.
type columnIndexes struct {
	date        int
	amount      int
	description int
	category    int
}

// mapColumns locates the recognized columns in the header, matching names
// case-insensitively.
func mapColumns(header []string) (*columnIndexes, error) {
	columns := &columnIndexes{date: -1, amount: -1, description: -1, category: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			columns.date = i
		case "amount":
			columns.amount = i
		case "description":
			columns.description = i
		case "category":
			columns.category = i
		}
	}
	if columns.date < 0 || columns.amount < 0 || columns.description < 0 {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeMissingStatementColumns,
			"statement header must contain date, amount and description columns",
			domainerror.ErrMissingStatementColumns,
		)
	}
	return columns, nil
}

// field returns the trimmed cell at idx, or "" when the row is short.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// categoryResolver matches statement category names against the user's
// categories. Unmatched names fall back to "Other Expenses", then to the
// user's first category.
type categoryResolver struct {
	byName   map[string]uuid.UUID
	fallback *uuid.UUID
}

func (uc *ImportTransactionsUseCase) newCategoryResolver(ctx context.Context, userID uuid.UUID) (*categoryResolver, error) {
	categories, err := uc.categoryRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	resolver := &categoryResolver{
		byName: make(map[string]uuid.UUID, len(categories)),
	}
	for _, cat := range categories {
		resolver.byName[strings.ToLower(cat.Name)] = cat.ID
	}

	if id, ok := resolver.byName[fallbackCategoryName]; ok {
		resolver.fallback = &id
	} else if len(categories) > 0 {
		resolver.fallback = &categories[0].ID
	}

	return resolver, nil
}

// resolve maps a statement category name to a category id. Empty names stay
// uncategorized; unknown names use the fallback when one exists.
func (r *categoryResolver) resolve(name string) *uuid.UUID {
	if name == "" {
		return nil
	}
	if id, ok := r.byName[strings.ToLower(name)]; ok {
		return &id
	}
	return r.fallback
}
