// Package seed populates the database with demo data for local development.
package seed

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/integration/adapters"
	"github.com/ledgerly/backend/internal/integration/persistence"
)

const (
	demoEmail    = "demo@example.com"
	demoName     = "Demo User"
	demoPassword = "password123"
)

type demoTransaction struct {
	category    string
	amount      string
	daysAgo     int
	description string
}

var demoTransactions = []demoTransaction{
	{"Salary", "3500.00", 25, "Monthly salary"},
	{"Food & Dining", "-82.40", 20, "Grocery store"},
	{"Housing", "-1200.00", 18, "Rent"},
	{"Transportation", "-45.00", 12, "Fuel"},
	{"Food & Dining", "-27.15", 9, "Restaurant"},
	{"Utilities", "-95.30", 6, "Electricity bill"},
	{"Entertainment", "-15.99", 3, "Streaming subscription"},
	{"Shopping", "-64.50", 1, "Clothing"},
}

// DemoData creates a demo user with default categories, a checking account
// and a month of sample transactions. It is a no-op when the demo user
// already exists.
func DemoData(ctx context.Context, db *gorm.DB) error {
	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	passwordService := adapters.NewPasswordService()

	exists, err := userRepo.ExistsByEmail(ctx, demoEmail)
	if err != nil {
		return err
	}
	if exists {
		slog.Info("Demo user already present, skipping seed")
		return nil
	}

	passwordHash, err := passwordService.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	user := entity.NewUser(demoEmail, demoName, passwordHash)
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	categories := make([]*entity.Category, 0, len(entity.DefaultCategorySeeds))
	for _, s := range entity.DefaultCategorySeeds {
		categories = append(categories, entity.NewCategory(user.ID, s.Name, s.Type, s.Color, s.BudgetEnabled))
	}
	if err := categoryRepo.CreateBatch(ctx, categories); err != nil {
		return err
	}

	openingBalance, _ := decimal.NewFromString("2500.00")
	account := entity.NewAccount(user.ID, "Checking", entity.AccountTypeChecking, openingBalance)
	if err := accountRepo.Create(ctx, account); err != nil {
		return err
	}

	if err := seedTransactions(ctx, transactionRepo, categoryRepo, user, account); err != nil {
		return err
	}

	slog.Info("Demo data seeded", "email", demoEmail)
	return nil
}

func seedTransactions(
	ctx context.Context,
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	user *entity.User,
	account *entity.Account,
) error {
	now := time.Now().UTC()
	for _, t := range demoTransactions {
		amount, err := decimal.NewFromString(t.amount)
		if err != nil {
			return err
		}

		category, err := categoryRepo.FindByNameAndUser(ctx, t.category, user.ID)
		if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return err
		}
		var categoryID *uuid.UUID
		if category != nil {
			categoryID = &category.ID
		}

		date := now.AddDate(0, 0, -t.daysAgo)
		txn := entity.NewTransaction(user.ID, account.ID, categoryID, amount, date, t.description)
		if err := transactionRepo.Create(ctx, txn); err != nil {
			return err
		}
	}
	return nil
}
