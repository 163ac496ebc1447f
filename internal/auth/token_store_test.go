package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestTokenStore_EmptyStore(t *testing.T) {
	store := NewTokenStore()

	assert.False(t, store.IsLoggedIn())

	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoToken)
}

func TestTokenStore_ValidToken(t *testing.T) {
	store := NewTokenStore()
	raw := signedToken(t, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	store.SetToken(raw)

	assert.True(t, store.IsLoggedIn())

	got, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestTokenStore_ExpiredToken(t *testing.T) {
	store := NewTokenStore()
	store.SetToken(signedToken(t, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}))

	assert.False(t, store.IsLoggedIn())
}

func TestTokenStore_TokenWithoutExpiry(t *testing.T) {
	store := NewTokenStore()
	store.SetToken(signedToken(t, jwt.MapClaims{"sub": "7"}))

	// No expiry claim: treated as logged in, the server decides.
	assert.True(t, store.IsLoggedIn())
}

func TestTokenStore_MalformedToken(t *testing.T) {
	store := NewTokenStore()
	store.SetToken("not-a-jwt")

	assert.False(t, store.IsLoggedIn())
}

func TestTokenStore_Clear(t *testing.T) {
	store := NewTokenStore()
	store.SetToken(signedToken(t, jwt.MapClaims{
		"sub": "7",
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	store.Clear()

	assert.False(t, store.IsLoggedIn())
	_, err := store.Token()
	assert.ErrorIs(t, err, ErrNoToken)
}
