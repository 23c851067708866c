package postgres

import (
	"context"
	"database/sql"

	"privatemeetups/internal/domain"
)

type messageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) domain.MessageRepository {
	return &messageRepository{
		DB: db,
	}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (meetup_id, user_id, message, message_type, timestamp)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		msg.MeetupID, msg.UserID, msg.Content, msg.Type, msg.Timestamp).
		Scan(&msg.ID)
}

func (r *messageRepository) ListByMeetup(ctx context.Context, meetupID string, limit, offset int) ([]*domain.Message, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM messages WHERE meetup_id = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, meetupID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, meetup_id, user_id, message, message_type, timestamp
		FROM messages
		WHERE meetup_id = $1
		ORDER BY timestamp DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, meetupID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var msgs []*domain.Message
	for rows.Next() {
		msg := &domain.Message{}
		if err := rows.Scan(&msg.ID, &msg.MeetupID, &msg.UserID, &msg.Content, &msg.Type, &msg.Timestamp); err != nil {
			return nil, 0, err
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if msgs == nil {
		msgs = []*domain.Message{}
	}
	return msgs, total, nil
}
