package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "postgres://localhost/resume", cfg.DatabaseURL)
}

func TestLoadExplicitPort(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/resume")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name        string
		port        string
		databaseURL string
	}{
		{"non-numeric port", "abc", "postgres://localhost/resume"},
		{"port out of range", "70000", "postgres://localhost/resume"},
		{"missing database url", "8000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("DATABASE_URL", tt.databaseURL)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewJWTConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "")

		cfg, err := NewJWTConfig()
		require.NoError(t, err)
		assert.Equal(t, "test-secret", cfg.Secret)
		assert.Equal(t, 24, cfg.ExpirationHours)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("invalid expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")

		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}

func TestNewPasswordConfig(t *testing.T) {
	t.Run("default cost", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "")

		cfg, err := NewPasswordConfig()
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.BcryptCost)
	})

	t.Run("cost out of range", func(t *testing.T) {
		t.Setenv("BCRYPT_COST", "4")

		_, err := NewPasswordConfig()
		assert.Error(t, err)
	})
}

func TestPasswordHashAndVerify(t *testing.T) {
	// Minimum cost keeps the test fast.
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, cfg.VerifyPassword("correct horse battery staple", hash))
	assert.False(t, cfg.VerifyPassword("wrong password", hash))
}
