package statement

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	"github.com/ledgerly/backend/internal/integration/persistence"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

type statementTestDeps struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	user            *entity.User
	account         *entity.Account
}

func newStatementTestDeps(t *testing.T) statementTestDeps {
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
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	))

	user := entity.NewUser("statements@example.com", "Statement User", "hash")
	require.NoError(t, persistence.NewUserRepository(db).Create(context.Background(), user))

	accountRepo := persistence.NewAccountRepository(db)
	account := entity.NewAccount(user.ID, "Checking", entity.AccountTypeChecking, decimal.RequireFromString("1000.00"))
	require.NoError(t, accountRepo.Create(context.Background(), account))

	return statementTestDeps{
		transactionRepo: persistence.NewTransactionRepository(db),
		accountRepo:     accountRepo,
		categoryRepo:    persistence.NewCategoryRepository(db),
		user:            user,
		account:         account,
	}
}

func (d statementTestDeps) createCategory(t *testing.T, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()
	category := entity.NewCategory(d.user.ID, name, categoryType, entity.DefaultCategoryColor, true)
	require.NoError(t, d.categoryRepo.Create(context.Background(), category))
	return category
}
