package postgres

import (
	"context"
	"database/sql"

	"privatemeetups/internal/domain"
)

type softBanEventRepository struct {
	DB *sql.DB
}

func NewSoftBanEventRepository(db *sql.DB) domain.SoftBanEventRepository {
	return &softBanEventRepository{
		DB: db,
	}
}

func (r *softBanEventRepository) Create(ctx context.Context, ev *domain.SoftBanEvent) error {
	query := `
		INSERT INTO soft_ban_events (meetup_id, target_user_id, enacted_by, reason, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		ev.MeetupID, ev.TargetUserID, ev.EnactedBy, ev.Reason, ev.CreatedAt).
		Scan(&ev.ID)
}
