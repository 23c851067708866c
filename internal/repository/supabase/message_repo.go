package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"privatemeetups/internal/domain"
)

type messageRepository struct {
	client *Client
}

func NewMessageRepository(client *Client) domain.MessageRepository {
	return &messageRepository{client: client}
}

type messageInsert struct {
	MeetupID  string    `json:"meetup_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"message"`
	Type      string    `json:"message_type"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	payload := messageInsert{
		MeetupID:  msg.MeetupID,
		UserID:    msg.UserID,
		Content:   msg.Content,
		Type:      msg.Type,
		Timestamp: msg.Timestamp,
	}
	var rows []domain.Message
	err := r.client.do(ctx, "create message", http.MethodPost, "messages", nil,
		"return=representation", payload, &rows)
	if err != nil {
		return err
	}
	if len(rows) > 0 {
		msg.ID = rows[0].ID
	}
	return nil
}

// ListByMeetup asks PostgREST for an exact count alongside the page; the
// total arrives in the Content-Range header.
func (r *messageRepository) ListByMeetup(ctx context.Context, meetupID string, limit, offset int) ([]*domain.Message, int, error) {
	query := url.Values{
		"meetup_id": {eq(meetupID)},
		"order":     {"timestamp.desc"},
		"limit":     {strconv.Itoa(limit)},
		"offset":    {strconv.Itoa(offset)},
	}
	resp, err := r.client.doRaw(ctx, "list messages", http.MethodGet, "messages", query, "count=exact", nil)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	var rows []*domain.Message
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, 0, &domain.StoreError{Op: "list messages", Body: "decode response: " + err.Error()}
	}
	if rows == nil {
		rows = []*domain.Message{}
	}

	total := len(rows)
	if t, ok := parseContentRangeTotal(resp.Header.Get("Content-Range")); ok {
		total = t
	}
	return rows, total, nil
}
