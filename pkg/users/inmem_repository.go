package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryUserRepository implements UserRepository using in-memory storage
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by username
}

// NewInMemoryUserRepository creates a new in-memory user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]User),
	}
}

// GetUserByUsername retrieves a user by username
func (r *InMemoryUserRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// CreateUser persists a new user
func (r *InMemoryUserRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[params.Username]; exists {
		return User{}, ErrUsernameAlreadyExists{Username: params.Username}
	}

	user := User{
		ID:           uuid.New(),
		Username:     params.Username,
		PasswordHash: params.PasswordHash,
		CreatedAt:    time.Now(),
	}
	r.users[params.Username] = user
	return user, nil
}
