// Package auth holds the client-side session token store.
package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
)

// ErrNoToken is returned when no session token has been set
var ErrNoToken = errors.New("auth: no session token")

// TokenStore keeps the session JWT in memory and answers whether the
// session is still usable. The token is never verified locally; only its
// expiry claim is inspected, signature checks belong to the server.
type TokenStore struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

// NewTokenStore creates an empty token store
func NewTokenStore() *TokenStore {
	return &TokenStore{
		now: time.Now,
	}
}

// SetToken stores the session token; an empty string logs the user out
func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the stored token
func (s *TokenStore) Clear() {
	s.SetToken("")
}

// Token returns the stored token or ErrNoToken
func (s *TokenStore) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// IsLoggedIn reports whether a token is present and not past its "exp"
// claim. A token without an expiry claim counts as logged in; the server
// is the authority and will answer 401 if it disagrees.
func (s *TokenStore) IsLoggedIn() bool {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()

	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return true
	}

	return s.now().Unix() < int64(exp)
}
