package jwt

import (
	"Meal-Planner-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenUser("alice")
	require.NoError(t, err)

	username, err := svc.GetUsernameByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateTokenUser("alice")
	require.NoError(t, err)

	_, err = NewJWTService("two").GetUsernameByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestSessionTokenExpired(t *testing.T) {
	svc := &jwtService{
		secretKey: "secret",
		issuer:    "test",
		now:       func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) },
	}

	token, err := svc.GenerateTokenUser("alice")
	require.NoError(t, err)

	_, err = svc.GetUsernameByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenPurposeIsChecked(t *testing.T) {
	svc := NewJWTService("secret")

	reset, err := svc.GenerateTokenResetPassword("alice", time.Hour)
	require.NoError(t, err)

	_, err = svc.GetUsernameByToken(reset)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	username, err := svc.ValidateTokenResetPassword(reset)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)

	session, err := svc.GenerateTokenUser("alice")
	require.NoError(t, err)
	_, err = svc.ValidateTokenResetPassword(session)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestEmptyToken(t *testing.T) {
	_, err := NewJWTService("secret").GetUsernameByToken("")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}
