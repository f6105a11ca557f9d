package dto

import (
	"time"

	"github.com/ledgerly/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=50"`
	Type          string `json:"type" binding:"required"`
	Color         string `json:"color"`
	BudgetEnabled bool   `json:"budget_enabled"`
}

// UpdateCategoryRequest represents the request body for category updates.
// Omitted fields are left unchanged.
type UpdateCategoryRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=50"`
	Type          *string `json:"type"`
	Color         *string `json:"color"`
	BudgetEnabled *bool   `json:"budget_enabled"`
}

// CategoryResponse represents the category data in API responses.
type CategoryResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Color         string    `json:"color"`
	BudgetEnabled bool      `json:"budget_enabled"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CategoryListResponse represents a list of categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:            category.ID.String(),
		Name:          category.Name,
		Type:          string(category.Type),
		Color:         category.Color,
		BudgetEnabled: category.BudgetEnabled,
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

// ToCategoryListResponse converts a slice of category entities to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return CategoryListResponse{
		Categories: responses,
		Total:      len(responses),
	}
}
