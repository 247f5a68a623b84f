package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "userhub/internal/errors"
)

// Claims represents JWT claims carried by issued bearer tokens.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer issues bearer tokens bound to a user id and resolves
// presented tokens back to that id. Every token is unique per call
// (random jti) and must exist in the registry to resolve.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	store  TokenStore
}

// NewTokenIssuer creates an issuer with the given signing secret.
// ttl of zero issues tokens without expiry.
func NewTokenIssuer(secret string, ttl time.Duration, store TokenStore) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

// Issue generates a new signed token for the user and records it in
// the registry.
func (s *TokenIssuer) Issue(userID uint) (string, error) {
	now := time.Now()
	entry := IssuedToken{UserID: userID, IssuedAt: now}

	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		entry.ExpiresAt = now.Add(s.ttl)
		claims.ExpiresAt = jwt.NewNumericDate(entry.ExpiresAt)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	s.store.Save(claims.ID, entry)
	return signed, nil
}

// Resolve validates a presented token and returns the bound user id.
// Absent, malformed, unknown and expired tokens all fail with the same
// ErrInvalidToken.
func (s *TokenIssuer) Resolve(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return 0, apperrors.ErrInvalidToken
	}

	entry, found := s.store.Get(claims.ID)
	if !found || entry.UserID != claims.UserID {
		return 0, apperrors.ErrInvalidToken
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		return 0, apperrors.ErrInvalidToken
	}
	return entry.UserID, nil
}
