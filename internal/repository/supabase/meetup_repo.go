package supabase

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"privatemeetups/internal/domain"
)

type meetupRepository struct {
	client *Client
}

func NewMeetupRepository(client *Client) domain.MeetupRepository {
	return &meetupRepository{client: client}
}

// meetupInsert is the insert payload; the row ID is assigned by the store.
type meetupInsert struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTS     time.Time `json:"start_ts"`
	EndTS       time.Time `json:"end_ts"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Visibility  string    `json:"visibility"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *meetupRepository) Create(ctx context.Context, meetup *domain.Meetup) error {
	payload := meetupInsert{
		Title:       meetup.Title,
		Description: meetup.Description,
		StartTS:     meetup.StartTS,
		EndTS:       meetup.EndTS,
		Lat:         meetup.Lat,
		Lng:         meetup.Lng,
		Visibility:  meetup.Visibility,
		CreatedAt:   meetup.CreatedAt,
	}
	var rows []domain.Meetup
	err := r.client.do(ctx, "create meetup", http.MethodPost, "meetups", nil,
		"return=representation", payload, &rows)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		meetup.ID = rows[0].ID
		meetup.CreatedAt = rows[0].CreatedAt
	}
	return nil
}

func (r *meetupRepository) GetByID(ctx context.Context, id string) (*domain.Meetup, error) {
	query := url.Values{"id": {eq(id)}}
	var rows []domain.Meetup
	err := r.client.do(ctx, "get meetup", http.MethodGet, "meetups", query, "", nil, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}
