package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"userhub/internal/auth"
	apperrors "userhub/internal/errors"
	"userhub/internal/model"
	"userhub/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id uint, patch repository.UserPatch) (*model.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func TestAuthService_Login(t *testing.T) {
	storedHash, _ := auth.HashPassword("securepass456")

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedID    uint
	}{
		{
			name:     "successful login",
			username: "jane_smith",
			password: "securepass456",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jane_smith").Return(&model.User{
					ID:           2,
					Username:     "jane_smith",
					PasswordHash: storedHash,
					IsActive:     true,
				}, nil)
				m.On("RecordLogin", mock.Anything, uint(2), mock.AnythingOfType("time.Time")).Return(nil)
			},
			expectedID: 2,
		},
		{
			name:     "wrong password",
			username: "jane_smith",
			password: "securepass456-typo",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "jane_smith").Return(&model.User{
					ID:           2,
					Username:     "jane_smith",
					PasswordHash: storedHash,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "any",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			issuer := auth.NewTokenIssuer("test-secret", 0, auth.NewMemoryTokenStore())
			svc := NewAuthService(mockRepo, issuer, nil)

			token, userID, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Zero(t, userID)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, userID)
				assert.NotEmpty(t, token)

				// The token must resolve back to the same user.
				resolved, err := issuer.Resolve(token)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, resolved)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLoginEvictsCachedUser(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	cached := newFakeCache()
	users := NewUserService(repo, cached)
	issuer := auth.NewTokenIssuer("test-secret", 0, auth.NewMemoryTokenStore())
	svc := NewAuthService(repo, issuer, cached)
	ctx := context.Background()

	created, err := users.Register(ctx, RegisterInput{
		Username: "jane_smith",
		Email:    "jane@example.com",
		Password: "securepass456",
		Age:      25,
	})
	require.NoError(t, err)

	// Prime the cache with the pre-login record.
	before, err := users.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, before.LastLogin)
	require.True(t, cached.has(userCacheKey(created.ID)))

	_, _, err = svc.Login(ctx, "jane_smith", "securepass456")
	require.NoError(t, err)

	// Login evicted the cached record, so the next read sees last_login.
	assert.False(t, cached.has(userCacheKey(created.ID)))
	after, err := users.GetUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, after.LastLogin)
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	storedHash, _ := auth.HashPassword("correct-password")

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "known").Return(&model.User{
		ID:           1,
		Username:     "known",
		PasswordHash: storedHash,
	}, nil)
	mockRepo.On("FindByUsername", mock.Anything, "unknown").Return(nil, apperrors.ErrUserNotFound)

	issuer := auth.NewTokenIssuer("test-secret", 0, auth.NewMemoryTokenStore())
	svc := NewAuthService(mockRepo, issuer, nil)

	_, _, wrongPass := svc.Login(context.Background(), "known", "wrong-password")
	_, _, noUser := svc.Login(context.Background(), "unknown", "wrong-password")

	// Both causes surface as the exact same error value.
	assert.Equal(t, wrongPass, noUser)
	assert.ErrorIs(t, wrongPass, apperrors.ErrInvalidCredentials)
}
