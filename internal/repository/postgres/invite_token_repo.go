package postgres

import (
	"context"
	"database/sql"
	"errors"

	"privatemeetups/internal/domain"
)

type inviteTokenRepository struct {
	DB *sql.DB
}

func NewInviteTokenRepository(db *sql.DB) domain.InviteTokenRepository {
	return &inviteTokenRepository{
		DB: db,
	}
}

func (r *inviteTokenRepository) Create(ctx context.Context, tok *domain.InviteToken) error {
	query := `
		INSERT INTO invite_tokens (meetup_id, token, expires_at, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		tok.MeetupID, tok.Token, tok.ExpiresAt, tok.CreatedBy, tok.CreatedAt).
		Scan(&tok.ID)
}

// GetByToken returns the raw row; the admission workflow decides what a
// revoked or expired token means.
func (r *inviteTokenRepository) GetByToken(ctx context.Context, token string) (*domain.InviteToken, error) {
	query := `
		SELECT id, meetup_id, token, expires_at, revoked_at, created_by, created_at
		FROM invite_tokens
		WHERE token = $1
	`
	tok := &domain.InviteToken{}
	var revokedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, token).
		Scan(&tok.ID, &tok.MeetupID, &tok.Token, &tok.ExpiresAt, &revokedAt, &tok.CreatedBy, &tok.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if revokedAt.Valid {
		t := revokedAt.Time
		tok.RevokedAt = &t
	}
	return tok, nil
}
