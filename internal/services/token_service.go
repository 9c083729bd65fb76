package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// DefaultTokenTTL is the session token lifetime used when no override is
// configured (7 days).
const DefaultTokenTTL = 604800 * time.Second

// TokenService issues and verifies signed session tokens. It is stateless:
// a token embeds only the user's numeric ID plus issued-at and expiry times.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue produces a signed token for the user.
func (s *TokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the token's signature and expiry and returns the embedded
// user ID. Malformed, tampered and expired tokens all collapse to ok=false;
// callers must not distinguish them.
func (s *TokenService) Verify(tokenString string) (uint, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
