package adapters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	t.Run("matching password verifies", func(t *testing.T) {
		assert.NoError(t, service.VerifyPassword(hash, "correct horse battery"))
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		assert.Error(t, service.VerifyPassword(hash, "incorrect horse battery"))
	})

	t.Run("hashes are salted", func(t *testing.T) {
		other, err := service.HashPassword("correct horse battery")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "long enough", password: "password123", wantErr: false},
		{name: "exactly eight characters", password: "12345678", wantErr: false},
		{name: "seven characters", password: "1234567", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
