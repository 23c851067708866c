package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"privatemeetups/internal/domain"
)

type membershipRepository struct {
	client *Client
}

func NewMembershipRepository(client *Client) domain.MembershipRepository {
	return &membershipRepository{client: client}
}

func (r *membershipRepository) GetByMeetupAndUser(ctx context.Context, meetupID, userID string) (*domain.Membership, error) {
	query := url.Values{
		"meetup_id": {eq(meetupID)},
		"user_id":   {eq(userID)},
	}
	var rows []domain.Membership
	err := r.client.do(ctx, "get membership", http.MethodGet, "memberships", query, "", nil, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

type membershipInsert struct {
	MeetupID string    `json:"meetup_id"`
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// Upsert relies on PostgREST merge-duplicates resolution against the
// (meetup_id, user_id) primary key, so a retry can never create a second row.
func (r *membershipRepository) Upsert(ctx context.Context, m *domain.Membership) error {
	payload := membershipInsert{
		MeetupID: m.MeetupID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
	return r.client.do(ctx, "upsert membership", http.MethodPost, "memberships", nil,
		"resolution=merge-duplicates", payload, nil)
}

type softBanPatch struct {
	SoftBanned    bool    `json:"soft_banned"`
	SoftBanReason *string `json:"soft_ban_reason"`
}

// SetSoftBanned patches the existing membership row. A patch that matches no
// row returns an empty representation, which maps to ErrNotFound.
func (r *membershipRepository) SetSoftBanned(ctx context.Context, meetupID, userID string, reason *string) error {
	query := url.Values{
		"meetup_id": {eq(meetupID)},
		"user_id":   {eq(userID)},
	}
	var rows []domain.Membership
	err := r.client.do(ctx, "set soft ban", http.MethodPatch, "memberships", query,
		"return=representation", softBanPatch{SoftBanned: true, SoftBanReason: reason}, &rows)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return domain.ErrNotFound
	}
	return nil
}
