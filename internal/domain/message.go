package domain

import (
	"context"
	"time"
)

// Message types.
const (
	MessageTypeText         = "text"
	MessageTypeAnnouncement = "announcement"
)

// Message is one chat message in a meetup. Messages are append-only and
// immutable once created.
// swagger:model Message
type Message struct {
	ID        string    `json:"id"`
	MeetupID  string    `json:"meetup_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"message"`
	Type      string    `json:"message_type"`
	Timestamp time.Time `json:"timestamp"`
}

// MessageView is a Message enriched for a specific reader: the sender's
// display name resolved at read time, and whether the reader sent it.
// IsOwnMessage is computed per response, never stored.
// swagger:model MessageView
type MessageView struct {
	Message
	UserName     string `json:"user_name"`
	IsOwnMessage bool   `json:"is_own_message"`
}

// MessagePage is one page of a meetup's message log, newest first.
type MessagePage struct {
	Messages   []*MessageView `json:"messages"`
	TotalCount int            `json:"total_count"`
	HasMore    bool           `json:"has_more"`
}

// MessageRepository defines storage operations for chat messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	// ListByMeetup returns one page of messages ordered newest first, plus
	// the total number of messages in the meetup.
	ListByMeetup(ctx context.Context, meetupID string, limit, offset int) ([]*Message, int, error)
}

// MessagingService defines membership-gated chat operations.
type MessagingService interface {
	// SendMessage appends a message to the meetup's log. Fails with
	// ErrNotAMember when the sender has no membership in the meetup.
	SendMessage(ctx context.Context, meetupID, userID, content, msgType string) (string, error)
	// GetMessages returns one page of the meetup's messages, newest first,
	// enriched with sender display names and is_own_message for the caller.
	GetMessages(ctx context.Context, meetupID, userID string, limit, offset int) (*MessagePage, error)
}
