package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerly/backend/internal/domain/entity"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	user := entity.NewUser("test@example.com", "Test User", "hashed-password")
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func createTestAccount(t *testing.T, db *gorm.DB, userID uuid.UUID, balance string) *entity.Account {
	t.Helper()
	opening, err := decimal.NewFromString(balance)
	require.NoError(t, err)
	account := entity.NewAccount(userID, "Checking", entity.AccountTypeChecking, opening)
	require.NoError(t, NewAccountRepository(db).Create(context.Background(), account))
	return account
}

func createTestCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()
	category := entity.NewCategory(userID, name, categoryType, entity.DefaultCategoryColor, true)
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))
	return category
}

func createTestTransaction(t *testing.T, db *gorm.DB, userID, accountID uuid.UUID, categoryID *uuid.UUID, amount, date string) *entity.Transaction {
	t.Helper()
	value, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	txn := entity.NewTransaction(userID, accountID, categoryID, value, day, "test transaction")
	require.NoError(t, NewTransactionRepository(db).Create(context.Background(), txn))
	return txn
}

func accountBalance(t *testing.T, db *gorm.DB, accountID uuid.UUID) decimal.Decimal {
	t.Helper()
	account, err := NewAccountRepository(db).FindByID(context.Background(), accountID)
	require.NoError(t, err)
	return account.Balance
}
