package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfigDefaults(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("PASSWORD_PEPPER", "")

	cfg, err := NewPasswordConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Empty(t, cfg.Pepper)
}

func TestNewPasswordConfigCostOutOfRange(t *testing.T) {
	t.Setenv("BCRYPT_COST", "9")
	_, err := NewPasswordConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "15")
	_, err = NewPasswordConfig()
	assert.Error(t, err)
}

func TestHashAndVerifyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", hash)

	assert.True(t, cfg.VerifyPassword("Secret#123", hash))
	assert.False(t, cfg.VerifyPassword("wrong", hash))
}

func TestHashPasswordWithPepper(t *testing.T) {
	withPepper := &PasswordConfig{BcryptCost: 10, Pepper: "pepper"}
	noPepper := &PasswordConfig{BcryptCost: 10}

	hash, err := withPepper.HashPassword("Secret#123")
	require.NoError(t, err)

	assert.True(t, withPepper.VerifyPassword("Secret#123", hash))
	assert.False(t, noPepper.VerifyPassword("Secret#123", hash))
}

func TestValidatePasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Secret#123", ""},
		{"too short", "Ab1#", "at least 8 characters"},
		{"no uppercase", "secret#123", "uppercase"},
		{"no lowercase", "SECRET#123", "lowercase"},
		{"no digit", "Secret#abc", "digit"},
		{"no special", "Secret123", "special"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordPolicy(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
