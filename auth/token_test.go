package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	token, err := GenerateToken(42, secret, time.Hour)
	require.NoError(t, err)

	userID, err := UserIDFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestGenerateToken_FreshPerCall(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	first, err := GenerateToken(1, secret, time.Hour)
	require.NoError(t, err)
	second, err := GenerateToken(1, secret, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUserIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(1, []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, []byte("wrong-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	token, err := GenerateToken(1, secret, -time.Second)
	require.NoError(t, err)

	_, err = UserIDFromToken(token, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserIDFromToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := UserIDFromToken("not.a.jwt", []byte("k"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
