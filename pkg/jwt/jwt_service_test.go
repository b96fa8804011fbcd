package jwt

import (
	"FoodBridge-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser(42, []string{"Supplier", "Recipient"})
	require.NotEmpty(t, token)

	userID, roles, err := service.GetUserByToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, userID)
	assert.Equal(t, []string{"Supplier", "Recipient"}, roles)
}

func TestUserTokenInvalid(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail("budi@example.com", time.Hour)
	require.NoError(t, err)

	email, err := service.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", email)
}

func TestVerifyEmailTokenExpired(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail("budi@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
