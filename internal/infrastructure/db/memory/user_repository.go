package memory

import (
	"context"
	"sync"

	"github.com/amk-marketing/landing-api/internal/core/domain"
)

// UserRepository stores legacy accounts in process memory.
type UserRepository struct {
	mu     sync.Mutex
	users  map[int]*domain.User
	nextID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*domain.User),
		nextID: 1,
	}
}

// Create assigns the next id and stores the user. Usernames are unique.
func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}

	user.ID = r.nextID
	r.nextID++

	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
