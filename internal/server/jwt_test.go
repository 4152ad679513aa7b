package server

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/config"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_EmptyToken(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-also-32-bytes!",
		ExpirationHours: 24,
	})

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: -1, // already expired
	})

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	svc := NewJWTService(testJWTConfig())
	validator := svc.AsTokenValidator()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	getter, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}

func TestJWTService_TokenCarriesExpiry(t *testing.T) {
	svc := NewJWTService(testJWTConfig())

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}
