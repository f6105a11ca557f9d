// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// Category represents a transaction category owned by a user.
type Category struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          CategoryType
	Color         string
	BudgetEnabled bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Defaulting logic for the color is applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, color string, budgetEnabled bool) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Type:          categoryType,
		Color:         color,
		BudgetEnabled: budgetEnabled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsValidCategoryType reports whether t is a known category type.
func IsValidCategoryType(t CategoryType) bool {
	return t == CategoryTypeExpense || t == CategoryTypeIncome
}

// CategorySeed describes one default category created for every new user.
type CategorySeed struct {
	Name          string
	Type          CategoryType
	Color         string
	BudgetEnabled bool
}

// DefaultCategorySeeds is the starter category set registered users receive.
var DefaultCategorySeeds = []CategorySeed{
	{Name: "Salary", Type: CategoryTypeIncome, Color: "#4CAF50", BudgetEnabled: true},
	{Name: "Food & Dining", Type: CategoryTypeExpense, Color: "#FF5722", BudgetEnabled: true},
	{Name: "Transportation", Type: CategoryTypeExpense, Color: "#2196F3", BudgetEnabled: true},
	{Name: "Housing", Type: CategoryTypeExpense, Color: "#673AB7", BudgetEnabled: true},
	{Name: "Entertainment", Type: CategoryTypeExpense, Color: "#E91E63", BudgetEnabled: false},
	{Name: "Shopping", Type: CategoryTypeExpense, Color: "#9C27B0", BudgetEnabled: true},
	{Name: "Utilities", Type: CategoryTypeExpense, Color: "#FF9800", BudgetEnabled: true},
	{Name: "Healthcare", Type: CategoryTypeExpense, Color: "#00BCD4", BudgetEnabled: true},
	{Name: "Personal Care", Type: CategoryTypeExpense, Color: "#795548", BudgetEnabled: false},
	{Name: "Education", Type: CategoryTypeExpense, Color: "#607D8B", BudgetEnabled: true},
	{Name: "Gifts & Donations", Type: CategoryTypeExpense, Color: "#F44336", BudgetEnabled: false},
	{Name: "Investments", Type: CategoryTypeIncome, Color: "#4CAF50", BudgetEnabled: true},
	{Name: "Other Income", Type: CategoryTypeIncome, Color: "#8BC34A", BudgetEnabled: true},
	{Name: "Other Expenses", Type: CategoryTypeExpense, Color: "#9E9E9E", BudgetEnabled: false},
}
