package adapters

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerly/backend/internal/integration/persistence"
	"github.com/ledgerly/backend/internal/integration/persistence/model"
)

const testTokenSecret = "test-secret-key-for-token-service"

func newTestTokenService(t *testing.T) (*tokenService, persistence.TokenRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.RefreshTokenModel{}))

	tokenRepo := persistence.NewTokenRepository(db)
	return NewTokenService(testTokenSecret, tokenRepo).(*tokenService), tokenRepo
}

func TestTokenService_GenerateAndValidate(t *testing.T) {
	service, _ := newTestTokenService(t)
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(context.Background(), userID, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	t.Run("access token round-trips its claims", func(t *testing.T) {
		claims, err := service.ValidateAccessToken(context.Background(), pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("refresh token round-trips its claims", func(t *testing.T) {
		claims, err := service.ValidateRefreshToken(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("refresh token is rejected as an access token", func(t *testing.T) {
		_, err := service.ValidateAccessToken(context.Background(), pair.RefreshToken)
		assert.Error(t, err)
	})

	t.Run("access token is rejected as a refresh token", func(t *testing.T) {
		_, err := service.ValidateRefreshToken(context.Background(), pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := service.ValidateAccessToken(context.Background(), "not-a-token")
		assert.Error(t, err)
	})

	t.Run("tokens signed with another secret are rejected", func(t *testing.T) {
		other, _ := newTestTokenService(t)
		other.secret = []byte("a-different-secret")

		otherPair, err := other.GenerateTokenPair(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		_, err = service.ValidateAccessToken(context.Background(), otherPair.AccessToken)
		assert.Error(t, err)
	})
}

func TestTokenService_RefreshTokenLifecycle(t *testing.T) {
	service, _ := newTestTokenService(t)
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(context.Background(), userID, "user@example.com")
	require.NoError(t, err)

	t.Run("freshly issued refresh token is valid", func(t *testing.T) {
		valid, err := service.IsRefreshTokenValid(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("invalidated refresh token is no longer valid", func(t *testing.T) {
		require.NoError(t, service.InvalidateRefreshToken(context.Background(), pair.RefreshToken))

		valid, err := service.IsRefreshTokenValid(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.False(t, valid)
	})

	t.Run("invalidating all user tokens revokes every session", func(t *testing.T) {
		first, err := service.GenerateTokenPair(context.Background(), userID, "user@example.com")
		require.NoError(t, err)
		second, err := service.GenerateTokenPair(context.Background(), userID, "user@example.com")
		require.NoError(t, err)

		require.NoError(t, service.InvalidateAllUserTokens(context.Background(), userID))

		for _, token := range []string{first.RefreshToken, second.RefreshToken} {
			valid, err := service.IsRefreshTokenValid(context.Background(), token)
			require.NoError(t, err)
			assert.False(t, valid)
		}
	})
}
