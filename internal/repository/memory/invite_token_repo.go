package memory

import (
	"context"

	"github.com/google/uuid"

	"privatemeetups/internal/domain"
)

type inviteTokenRepository struct {
	store *Store
}

func NewInviteTokenRepository(store *Store) domain.InviteTokenRepository {
	return &inviteTokenRepository{store: store}
}

func (r *inviteTokenRepository) Create(ctx context.Context, tok *domain.InviteToken) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if tok.ID == "" {
		tok.ID = uuid.NewString()
	}
	r.store.tokens[tok.Token] = copyToken(tok)
	return nil
}

// GetByToken returns the raw stored row. Revocation and expiry checks are the
// admission workflow's job, matching remote-mode behavior.
func (r *inviteTokenRepository) GetByToken(ctx context.Context, token string) (*domain.InviteToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	t, ok := r.store.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyToken(t), nil
}
