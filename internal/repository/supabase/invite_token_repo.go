package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"privatemeetups/internal/domain"
)

type inviteTokenRepository struct {
	client *Client
}

func NewInviteTokenRepository(client *Client) domain.InviteTokenRepository {
	return &inviteTokenRepository{client: client}
}

// inviteTokenInsert is the insert payload; the row ID is assigned by the store.
type inviteTokenInsert struct {
	MeetupID  string    `json:"meetup_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *inviteTokenRepository) Create(ctx context.Context, tok *domain.InviteToken) error {
	payload := inviteTokenInsert{
		MeetupID:  tok.MeetupID,
		Token:     tok.Token,
		ExpiresAt: tok.ExpiresAt,
		CreatedBy: tok.CreatedBy,
		CreatedAt: tok.CreatedAt,
	}
	var rows []domain.InviteToken
	err := r.client.do(ctx, "create invite token", http.MethodPost, "invite_tokens", nil,
		"return=representation", payload, &rows)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		tok.ID = rows[0].ID
		tok.CreatedAt = rows[0].CreatedAt
	}
	return nil
}

// GetByToken filters revoked tokens server-side; expiry is left to the
// admission workflow so the comparison lives in one place.
func (r *inviteTokenRepository) GetByToken(ctx context.Context, token string) (*domain.InviteToken, error) {
	query := url.Values{
		"token":      {eq(token)},
		"revoked_at": {"is.null"},
	}
	var rows []domain.InviteToken
	err := r.client.do(ctx, "get invite token", http.MethodGet, "invite_tokens", query, "", nil, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}
