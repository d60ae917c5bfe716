package repository

import (
	"context"
	"fmt"

	apperrors "lerida/internal/errors"
	"lerida/internal/storage"
)

// SessionRepository persists the single session pointer: the email of
// the currently logged-in user. There is exactly one session per store,
// as in the original localStorage model.
type SessionRepository struct {
	store storage.Store
}

func NewSessionRepository(store storage.Store) *SessionRepository {
	return &SessionRepository{store: store}
}

// Get returns the logged-in email, or "" when nobody is logged in
func (r *SessionRepository) Get(ctx context.Context) (string, error) {
	blob, err := r.store.Load(ctx, storage.CollectionSession)
	if err == storage.ErrNotFound {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return string(blob), nil
}

func (r *SessionRepository) Set(ctx context.Context, email string) error {
	if err := r.store.Save(ctx, storage.CollectionSession, []byte(email)); err != nil {
		if err == storage.ErrCapacityExceeded {
			return apperrors.ErrStorageFull
		}
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, storage.CollectionSession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
