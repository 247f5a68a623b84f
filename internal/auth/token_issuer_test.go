package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "userhub/internal/errors"
)

func mustParseClaims(t *testing.T, issuer *TokenIssuer, token string) *Claims {
	t.Helper()
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return issuer.secret, nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(*Claims)
	require.True(t, ok)
	return claims
}

func TestTokenIssuer_IssueAndResolve(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0, NewMemoryTokenStore())

	token, err := issuer.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestTokenIssuer_TokensAreUniquePerCall(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0, NewMemoryTokenStore())

	first, err := issuer.Issue(1)
	require.NoError(t, err)
	second, err := issuer.Issue(1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	for _, token := range []string{first, second} {
		userID, err := issuer.Resolve(token)
		require.NoError(t, err)
		assert.Equal(t, uint(1), userID)
	}
}

func TestTokenIssuer_ResolveRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 0, NewMemoryTokenStore())

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := issuer.Resolve(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	}
}

func TestTokenIssuer_ResolveRejectsForeignSignature(t *testing.T) {
	store := NewMemoryTokenStore()
	issuer := NewTokenIssuer("test-secret", 0, store)
	other := NewTokenIssuer("other-secret", 0, store)

	token, err := other.Issue(7)
	require.NoError(t, err)

	// Signed with the wrong secret, even though the registry knows it.
	_, err = issuer.Resolve(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestTokenIssuer_ResolveRejectsRevokedToken(t *testing.T) {
	store := NewMemoryTokenStore()
	issuer := NewTokenIssuer("test-secret", 0, store)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	// A valid signature alone is not enough; the registry entry must exist.
	fresh := NewTokenIssuer("test-secret", 0, NewMemoryTokenStore())
	_, err = fresh.Resolve(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	_, err = issuer.Resolve(token)
	require.NoError(t, err)
}

func TestTokenIssuer_ExpiryEnforcedWhenConfigured(t *testing.T) {
	store := NewMemoryTokenStore()
	issuer := NewTokenIssuer("test-secret", time.Hour, store)

	token, err := issuer.Issue(7)
	require.NoError(t, err)

	userID, err := issuer.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)

	// Age the registry entry past its expiry.
	claims := mustParseClaims(t, issuer, token)
	entry, ok := store.Get(claims.ID)
	require.True(t, ok)
	assert.False(t, entry.ExpiresAt.IsZero())
	entry.ExpiresAt = time.Now().Add(-time.Minute)
	store.Save(claims.ID, entry)

	_, err = issuer.Resolve(token)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestMemoryTokenStore_Delete(t *testing.T) {
	store := NewMemoryTokenStore()
	store.Save("abc", IssuedToken{UserID: 1, IssuedAt: time.Now()})

	_, ok := store.Get("abc")
	require.True(t, ok)

	store.Delete("abc")
	_, ok = store.Get("abc")
	assert.False(t, ok)
}
