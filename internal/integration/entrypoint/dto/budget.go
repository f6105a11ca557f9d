package dto

import (
	"time"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID string  `json:"category_id" binding:"required,uuid"`
	Month      int     `json:"month" binding:"required,min=1,max=12"`
	Year       int     `json:"year" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}

// UpdateBudgetRequest represents the request body for budget updates.
// Omitted fields are left unchanged.
type UpdateBudgetRequest struct {
	Month  *int     `json:"month" binding:"omitempty,min=1,max=12"`
	Year   *int     `json:"year"`
	Amount *float64 `json:"amount"`
}

// ListBudgetsRequest represents the query parameters for listing budgets.
type ListBudgetsRequest struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year"`
}

// BudgetResponse represents the budget data in API responses.
type BudgetResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Amount     string    `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BudgetListResponse represents a list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   int              `json:"total"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         budget.ID.String(),
		CategoryID: budget.CategoryID.String(),
		Month:      budget.Month,
		Year:       budget.Year,
		Amount:     budget.Amount.String(),
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a slice of budget entities to a list response.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		responses[i] = ToBudgetResponse(budget)
	}
	return BudgetListResponse{
		Budgets: responses,
		Total:   len(responses),
	}
}
