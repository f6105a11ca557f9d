package dto

import (
	"time"

	"github.com/ledgerly/backend/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  *string `json:"category_id" binding:"omitempty,uuid"`
	Amount      float64 `json:"amount" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"max=255"`
}

// UpdateTransactionRequest represents the request body for transaction
// updates. Omitted fields are left unchanged; clear_category removes the
// category link.
type UpdateTransactionRequest struct {
	AccountID     *string  `json:"account_id" binding:"omitempty,uuid"`
	CategoryID    *string  `json:"category_id" binding:"omitempty,uuid"`
	ClearCategory bool     `json:"clear_category"`
	Amount        *float64 `json:"amount"`
	Date          *string  `json:"date"`
	Description   *string  `json:"description" binding:"omitempty,max=255"`
}

// ListTransactionsRequest represents the query parameters for listing
// transactions.
type ListTransactionsRequest struct {
	AccountID  string `form:"account_id" binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

// TransactionResponse represents the transaction data in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	CategoryID  *string   `json:"category_id"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ImportTransactionsRequest represents the request body for CSV import.
type ImportTransactionsRequest struct {
	AccountID string `json:"account_id" binding:"required,uuid"`
	Data      string `json:"data" binding:"required"`
}

// ImportTransactionsResponse represents the result of a CSV import.
type ImportTransactionsResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	var categoryID *string
	if txn.CategoryID != nil {
		id := txn.CategoryID.String()
		categoryID = &id
	}
	return TransactionResponse{
		ID:          txn.ID.String(),
		AccountID:   txn.AccountID.String(),
		CategoryID:  categoryID,
		Amount:      txn.Amount.String(),
		Date:        txn.Date.Format(dateLayout),
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a slice of transaction entities to a
// list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
		Total:        len(responses),
	}
}
