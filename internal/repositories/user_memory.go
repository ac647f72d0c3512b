package repositories

import (
	"context"
	"strings"
	"sync"

	"estateBack/internal/models"
)

// UserMemoryRepository backs the mock sign-up/sign-in flow. Nothing here
// survives a restart.
type UserMemoryRepository struct {
	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{
		users:   make(map[string]models.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserMemoryRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return models.User{}, models.ErrDuplicateEmail
	}
	r.users[user.ID] = user
	r.byEmail[email] = user.ID
	return user, nil
}

func (r *UserMemoryRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (r *UserMemoryRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return r.users[id], nil
}
