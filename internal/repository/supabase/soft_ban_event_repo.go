package supabase

import (
	"context"
	"net/http"
	"time"

	"privatemeetups/internal/domain"
)

type softBanEventRepository struct {
	client *Client
}

func NewSoftBanEventRepository(client *Client) domain.SoftBanEventRepository {
	return &softBanEventRepository{client: client}
}

type softBanEventInsert struct {
	MeetupID     string    `json:"meetup_id"`
	TargetUserID string    `json:"target_user_id"`
	EnactedBy    string    `json:"enacted_by"`
	Reason       *string   `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *softBanEventRepository) Create(ctx context.Context, ev *domain.SoftBanEvent) error {
	payload := softBanEventInsert{
		MeetupID:     ev.MeetupID,
		TargetUserID: ev.TargetUserID,
		EnactedBy:    ev.EnactedBy,
		Reason:       ev.Reason,
		CreatedAt:    ev.CreatedAt,
	}
	return r.client.do(ctx, "create soft-ban event", http.MethodPost, "soft_ban_events", nil, "", payload, nil)
}
