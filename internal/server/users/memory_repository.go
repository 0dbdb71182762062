package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/pixgate/internal/common"
)

// MemoryRepository is a map-backed Repository, safe for concurrent use.
// It serves tests and DSN-less development runs; data does not survive
// a restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.CreatedAt = time.Now()
	r.users[user.Email] = &stored

	result := stored
	return &result, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, common.ErrorNotFound
	}

	result := *user
	return &result, nil
}
