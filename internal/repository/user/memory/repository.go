package memory

import (
	"context"
	"log/slog"
	"sync"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

// Put seeds a user row; identities are created upstream, so the memory twin
// only needs a way to load fixtures.
func (u *UserRepository) Put(user *model.User) *model.User {
	u.mu.Lock()
	defer u.mu.Unlock()

	stored := *user
	if stored.ID == 0 {
		stored.ID = u.nextID
		u.nextID++
	} else if stored.ID >= u.nextID {
		u.nextID = stored.ID + 1
	}
	u.users[stored.ID] = &stored

	result := stored
	return &result
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	for _, user := range u.users {
		if user.Username == username {
			result := *user
			return &result, nil
		}
	}

	u.log.Debug("User not found by username", slog.String("username", username))
	return nil, custom_errors.ErrUserNotFound
}

func (u *UserRepository) Update(ctx context.Context, id int64, update *model.UpdateProfileDTO) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, exists := u.users[id]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	if update.Username != nil {
		for otherID, other := range u.users {
			if otherID != id && other.Username == *update.Username {
				return nil, custom_errors.ErrUsernameExists
			}
		}
		user.Username = *update.Username
	}
	if update.FirstName != nil {
		user.FirstName = update.FirstName
	}
	if update.LastName != nil {
		user.LastName = update.LastName
	}
	if update.Email != nil {
		user.Email = update.Email
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) Delete(ctx context.Context, id int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.users[id]; !exists {
		return custom_errors.ErrUserNotFound
	}

	delete(u.users, id)
	return nil
}
