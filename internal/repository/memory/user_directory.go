package memory

import (
	"context"

	"privatemeetups/internal/domain"
)

type userDirectory struct {
	store *Store
}

func NewUserDirectory(store *Store) domain.UserDirectory {
	return &userDirectory{store: store}
}

func (r *userDirectory) GetName(ctx context.Context, userID string) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	name, ok := r.store.userNames[userID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return name, nil
}
