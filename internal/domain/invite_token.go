package domain

import (
	"context"
	"time"
)

// InviteToken is a time-limited credential granting membership in a meetup.
// A token is usable iff RevokedAt is nil and the current time is before
// ExpiresAt. Repositories return the stored row; the expiry comparison itself
// belongs to the admission workflow so it lives in exactly one place.
// swagger:model InviteToken
type InviteToken struct {
	ID        string     `json:"id"`
	MeetupID  string     `json:"meetup_id"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
	CreatedBy string     `json:"created_by"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewInviteToken returns a new InviteToken. ID is typically set by the repository on create.
func NewInviteToken(meetupID, token string, expiresAt time.Time, createdBy string, createdAt time.Time) *InviteToken {
	return &InviteToken{
		MeetupID:  meetupID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedBy: createdBy,
		CreatedAt: createdAt,
	}
}

// InviteTokenRepository defines the interface for invite token storage.
type InviteTokenRepository interface {
	Create(ctx context.Context, tok *InviteToken) error
	// GetByToken looks a token up by its token string. The remote store
	// filters revoked tokens server-side; other backends return the raw row.
	GetByToken(ctx context.Context, token string) (*InviteToken, error)
}
