package postgres

import (
	"context"
	"database/sql"
	"errors"

	"privatemeetups/internal/domain"
)

type membershipRepository struct {
	DB *sql.DB
}

func NewMembershipRepository(db *sql.DB) domain.MembershipRepository {
	return &membershipRepository{
		DB: db,
	}
}

func (r *membershipRepository) GetByMeetupAndUser(ctx context.Context, meetupID, userID string) (*domain.Membership, error) {
	query := `
		SELECT meetup_id, user_id, role, soft_banned, soft_ban_reason, joined_at
		FROM memberships
		WHERE meetup_id = $1 AND user_id = $2
	`
	m := &domain.Membership{}
	var reason sql.NullString
	err := r.DB.QueryRowContext(ctx, query, meetupID, userID).
		Scan(&m.MeetupID, &m.UserID, &m.Role, &m.SoftBanned, &reason, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if reason.Valid {
		s := reason.String
		m.SoftBanReason = &s
	}
	return m, nil
}

// Upsert leans on the (meetup_id, user_id) primary key: a conflicting insert
// is dropped, so a retry never yields a second row.
func (r *membershipRepository) Upsert(ctx context.Context, m *domain.Membership) error {
	query := `
		INSERT INTO memberships (meetup_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (meetup_id, user_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, m.MeetupID, m.UserID, m.Role, m.JoinedAt)
	return err
}

func (r *membershipRepository) SetSoftBanned(ctx context.Context, meetupID, userID string, reason *string) error {
	query := `
		UPDATE memberships
		SET soft_banned = true, soft_ban_reason = $3
		WHERE meetup_id = $1 AND user_id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, meetupID, userID, reason)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
