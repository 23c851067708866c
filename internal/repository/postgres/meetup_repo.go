package postgres

import (
	"context"
	"database/sql"
	"errors"

	"privatemeetups/internal/domain"
)

type meetupRepository struct {
	DB *sql.DB
}

func NewMeetupRepository(db *sql.DB) domain.MeetupRepository {
	return &meetupRepository{
		DB: db,
	}
}

func (r *meetupRepository) Create(ctx context.Context, meetup *domain.Meetup) error {
	query := `
		INSERT INTO meetups (title, description, start_ts, end_ts, lat, lng, visibility, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		meetup.Title, meetup.Description, meetup.StartTS, meetup.EndTS,
		meetup.Lat, meetup.Lng, meetup.Visibility, meetup.CreatedAt).
		Scan(&meetup.ID)
}

func (r *meetupRepository) GetByID(ctx context.Context, id string) (*domain.Meetup, error) {
	query := `
		SELECT id, title, description, start_ts, end_ts, lat, lng, visibility, ended_at, created_at
		FROM meetups
		WHERE id = $1
	`
	meetup := &domain.Meetup{}
	var description sql.NullString
	var endedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&meetup.ID, &meetup.Title, &description, &meetup.StartTS, &meetup.EndTS,
			&meetup.Lat, &meetup.Lng, &meetup.Visibility, &endedAt, &meetup.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	meetup.Description = description.String
	if endedAt.Valid {
		t := endedAt.Time
		meetup.EndedAt = &t
	}
	return meetup, nil
}
