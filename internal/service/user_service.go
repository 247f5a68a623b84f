package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"userhub/internal/auth"
	"userhub/internal/cache"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// Cache is the subset of cache.Client the services need; tests supply
// an in-memory fake.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Ensure the redis-backed client satisfies Cache
var _ Cache = (*cache.Client)(nil)

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Age      int
	Phone    *string
}

// DeletionReceipt reports the outcome of a delete, including whether
// the record was active immediately before removal.
type DeletionReceipt struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	WasActive bool   `json:"was_active"`
}

// UserService exposes the user record lifecycle.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uint, patch repository.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id uint) (*DeletionReceipt, error)
}

type userService struct {
	repo  repository.UserRepository
	cache Cache
}

// NewUserService builds a UserService with repository and cache. A nil
// cache disables caching.
func NewUserService(repo repository.UserRepository, cache Cache) UserService {
	return &userService{repo: repo, cache: cache}
}

func (s *userService) invalidate(ctx context.Context, id uint) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, userCacheKey(id))
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Age <= 0 {
		return nil, fmt.Errorf("%w: username, email, password and age are required", apperrors.ErrValidation)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     strings.ToLower(in.Username),
		Email:        in.Email,
		PasswordHash: hash,
		Age:          in.Age,
		Phone:        in.Phone,
		CreatedAt:    time.Now(),
		IsActive:     true,
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, err
	}
	s.invalidate(ctx, user.ID)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if s.cache != nil {
		if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
			var cached model.User
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(user); err == nil {
			_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
		}
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, id uint, patch repository.UserPatch) (*model.User, error) {
	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) (*DeletionReceipt, error) {
	snapshot, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return &DeletionReceipt{
		ID:        snapshot.ID,
		Username:  snapshot.Username,
		WasActive: snapshot.IsActive,
	}, nil
}
