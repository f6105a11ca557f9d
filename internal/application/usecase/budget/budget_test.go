package budget

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/domain/entity"
	"github.com/ledgerly/backend/internal/integration/persistence"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

type budgetTestDeps struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	user         *entity.User
	category     *entity.Category
}

func newBudgetTestDeps(t *testing.T) budgetTestDeps {
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
		&model.CategoryModel{},
		&model.BudgetModel{},
	))

	user := entity.NewUser("budgets@example.com", "Budget User", "hash")
	require.NoError(t, persistence.NewUserRepository(db).Create(context.Background(), user))

	categoryRepo := persistence.NewCategoryRepository(db)
	category := entity.NewCategory(user.ID, "Food", entity.CategoryTypeExpense, entity.DefaultCategoryColor, true)
	require.NoError(t, categoryRepo.Create(context.Background(), category))

	return budgetTestDeps{
		budgetRepo:   persistence.NewBudgetRepository(db),
		categoryRepo: categoryRepo,
		user:         user,
		category:     category,
	}
}
