package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	apperrors "userhub/internal/errors"
	"userhub/internal/model"
)

// memoryUserRepository is the default backend: a mutex-guarded map
// keyed by lowercased username. Ids are assigned monotonically and
// never reused after deletion.
type memoryUserRepository struct {
	mu       sync.Mutex
	byName   map[string]*model.User
	nameByID map[uint]string
	nextID   uint
}

// NewMemoryUserRepository builds an empty in-memory repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byName:   make(map[string]*model.User),
		nameByID: make(map[uint]string),
		nextID:   1,
	}
}

func (r *memoryUserRepository) Insert(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(user.Username)
	if _, exists := r.byName[key]; exists {
		return apperrors.ErrUsernameExists
	}
	user.Username = key
	if user.ID == 0 {
		user.ID = r.nextID
	}
	if user.ID >= r.nextID {
		r.nextID = user.ID + 1
	}
	r.byName[key] = user.Clone()
	r.nameByID[user.ID] = key
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

func (r *memoryUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byName[strings.ToLower(username)]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user.Clone(), nil
}

func (r *memoryUserRepository) List(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]model.User, 0, len(r.byName))
	for _, user := range r.byName {
		users = append(users, *user.Clone())
	}
	// Ids are monotonic, so ascending id equals insertion order.
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, id uint, patch UserPatch) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	applyPatch(user, patch)
	return user.Clone(), nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(id)
	if err != nil {
		return nil, err
	}
	snapshot := user.Clone()
	delete(r.byName, r.nameByID[id])
	delete(r.nameByID, id)
	return snapshot, nil
}

func (r *memoryUserRepository) RecordLogin(ctx context.Context, id uint, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, err := r.lookup(id)
	if err != nil {
		return err
	}
	user.LastLogin = &at
	return nil
}

// lookup resolves an id to the live record. Caller must hold the lock.
func (r *memoryUserRepository) lookup(id uint) (*model.User, error) {
	key, ok := r.nameByID[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return r.byName[key], nil
}
