package domain

import "context"

// UserDirectory resolves user display names. The service never manages user
// accounts itself; identities arrive as opaque, already-trusted strings.
type UserDirectory interface {
	// GetName returns the display name for the user, or ErrNotFound.
	GetName(ctx context.Context, userID string) (string, error)
}
