package auth

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerly/backend/internal/application/adapter"
	"github.com/ledgerly/backend/internal/integration/adapters"
	"github.com/ledgerly/backend/internal/integration/persistence"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

type authTestDeps struct {
	userRepo        adapter.UserRepository
	categoryRepo    adapter.CategoryRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

func newAuthTestDeps(t *testing.T) authTestDeps {
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
		&model.CategoryModel{},
	))

	return authTestDeps{
		userRepo:        persistence.NewUserRepository(db),
		categoryRepo:    persistence.NewCategoryRepository(db),
		passwordService: adapters.NewPasswordService(),
		tokenService:    adapters.NewTokenService("auth-test-secret", persistence.NewTokenRepository(db)),
	}
}

func (d authTestDeps) register(t *testing.T, email, password string) *RegisterUserOutput {
	t.Helper()
	useCase := NewRegisterUserUseCase(d.userRepo, d.categoryRepo, d.passwordService, d.tokenService)
	output, err := useCase.Execute(context.Background(), RegisterUserInput{
		Email:    email,
		Name:     "Test User",
		Password: password,
	})
	require.NoError(t, err)
	return output
}
