package jwt_test

import (
	"testing"
	"time"

	"project-calendar-service/config"
	"project-calendar-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "admin@example.com", 1)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, 1, claims.RoleID)
	require.Equal(t, tokenID, claims.TokenID)
	require.Equal(t, jwt.AccessToken, claims.TokenType)
}

func TestJWTService_Rejects(t *testing.T) {
	t.Parallel()

	issuer := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: time.Minute})
	token, _, err := issuer.GenerateAccessToken(uuid.New(), "user@example.com", 2)
	require.NoError(t, err)

	other := jwt.NewJWTService(config.JWTConfig{Secret: "another", AccessExpiry: time.Minute})
	_, err = other.ValidateToken(token)
	require.Error(t, err)

	expired := jwt.NewJWTService(config.JWTConfig{Secret: "secret", AccessExpiry: -time.Minute})
	token, _, err = expired.GenerateAccessToken(uuid.New(), "user@example.com", 2)
	require.NoError(t, err)
	_, err = expired.ValidateToken(token)
	require.Error(t, err)
}
