package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"userhub/internal/auth"
	apperrors "userhub/internal/errors"
	"userhub/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	// Login verifies credentials and issues a bearer token. An unknown
	// username and a wrong password fail identically with
	// ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (token string, userID uint, err error)
}

type authService struct {
	repo   repository.UserRepository
	issuer *auth.TokenIssuer
	cache  Cache
	// fallbackHash is compared against when the username is unknown, so
	// both failure causes walk the same code path.
	fallbackHash string
}

// NewAuthService creates a new authentication service. The cache is
// shared with the user service so login can evict the cached record.
func NewAuthService(repo repository.UserRepository, issuer *auth.TokenIssuer, cache Cache) AuthService {
	fallback, _ := auth.HashPassword(uuid.New().String())
	return &authService{
		repo:         repo,
		issuer:       issuer,
		cache:        cache,
		fallbackHash: fallback,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, uint, error) {
	user, lookupErr := s.repo.FindByUsername(ctx, username)

	hash := s.fallbackHash
	if lookupErr == nil {
		hash = user.PasswordHash
	}
	verified := auth.CheckPassword(password, hash)
	if lookupErr != nil || !verified {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	if err := s.repo.RecordLogin(ctx, user.ID, time.Now()); err != nil {
		return "", 0, fmt.Errorf("record login: %w", err)
	}
	// last_login changed; drop the cached record so reads see it.
	if s.cache != nil {
		_ = s.cache.Delete(ctx, userCacheKey(user.ID))
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", 0, fmt.Errorf("issue token: %w", err)
	}
	return token, user.ID, nil
}
