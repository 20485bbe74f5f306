package auth

import (
	"testing"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	// MinCost keeps the bcrypt rounds cheap for tests.
	hasher := NewBcryptHasher(&config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4, PasswordMinLength: 8},
	})

	return hasher.(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid", password: "Password123", wantErr: false},
		{name: "too short", password: "Pass1", wantErr: true},
		{name: "letters only", password: "PasswordOnly", wantErr: true},
		{name: "digits only", password: "1234567890", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidateStrength(tt.password)
			if tt.wantErr {
				require.Error(t, err)

				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, domainerrors.ErrPasswordStrength.ErrorCode(), appErr.ErrorCode())

				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBcryptHasher_DefaultsWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil).(*bcryptHasher)

	assert.Equal(t, defaultMinPasswordLength, hasher.minLength)
	require.Error(t, hasher.ValidateStrength("short1"))
}
