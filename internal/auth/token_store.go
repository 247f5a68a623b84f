package auth

import (
	"sync"
	"time"
)

// IssuedToken is the server-side registry entry for one issued token.
// ExpiresAt is recorded from day one even though enforcement is
// optional, so the data model does not change when expiry lands.
type IssuedToken struct {
	UserID    uint
	IssuedAt  time.Time
	ExpiresAt time.Time // zero means no expiry
}

// TokenStore defines the interface for the issued-token registry.
type TokenStore interface {
	Save(tokenID string, entry IssuedToken)
	Get(tokenID string) (IssuedToken, bool)
	Delete(tokenID string)
}

// MemoryTokenStore keeps issued tokens in process memory, matching the
// lifetime of the rest of the service state.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]IssuedToken
}

// Ensure MemoryTokenStore implements TokenStore
var _ TokenStore = (*MemoryTokenStore)(nil)

// NewMemoryTokenStore creates an empty token registry.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[string]IssuedToken)}
}

// Save records an issued token under its token id.
func (s *MemoryTokenStore) Save(tokenID string, entry IssuedToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenID] = entry
}

// Get returns the registry entry for a token id.
func (s *MemoryTokenStore) Get(tokenID string) (IssuedToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.tokens[tokenID]
	return entry, ok
}

// Delete removes a token from the registry. No request path revokes
// tokens; this exists for sweeping expired entries.
func (s *MemoryTokenStore) Delete(tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenID)
}
