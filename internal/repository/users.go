package repository

import (
	"context"
	"encoding/json"
	"fmt"

	apperrors "lerida/internal/errors"
	"lerida/internal/models"
	"lerida/internal/storage"
)

// UserRepository persists the user map (id -> User) as one blob
type UserRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) All(ctx context.Context) (map[string]models.User, error) {
	blob, err := r.store.Load(ctx, storage.CollectionUsers)
	if err == storage.ErrNotFound {
		return map[string]models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	users := map[string]models.User{}
	if err := json.Unmarshal(blob, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

// Save inserts or replaces the user in the stored map
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	users[user.ID] = *user
	return r.saveAll(ctx, users)
}

func (r *UserRepository) saveAll(ctx context.Context, users map[string]models.User) error {
	blob, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := r.store.Save(ctx, storage.CollectionUsers, blob); err != nil {
		if err == storage.ErrCapacityExceeded {
			return apperrors.ErrStorageFull
		}
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
