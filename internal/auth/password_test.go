package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	// Salted: a second hash differs but still verifies.
	again, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)

	assert.True(t, CheckPassword("password123", hash))
	assert.True(t, CheckPassword("password123", again))
	assert.False(t, CheckPassword("password124", hash))
	assert.False(t, CheckPassword("password123", "not-a-hash"))
}
