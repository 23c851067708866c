package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"privatemeetups/internal/domain"
)

// Message listing bounds.
const (
	DefaultMessageLimit = 50
	MaxMessageLimit     = 100
)

type messagingService struct {
	membershipRepo domain.MembershipRepository
	messageRepo    domain.MessageRepository
	users          domain.UserDirectory
}

// NewMessagingService creates a MessagingService with the given repositories.
func NewMessagingService(
	membershipRepo domain.MembershipRepository,
	messageRepo domain.MessageRepository,
	users domain.UserDirectory,
) domain.MessagingService {
	return &messagingService{
		membershipRepo: membershipRepo,
		messageRepo:    messageRepo,
		users:          users,
	}
}

func (s *messagingService) SendMessage(ctx context.Context, meetupID, userID, content, msgType string) (string, error) {
	if _, err := s.membershipRepo.GetByMeetupAndUser(ctx, meetupID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotAMember
		}
		return "", fmt.Errorf("get membership: %w", err)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: message cannot be empty", domain.ErrInvalidInput)
	}
	if msgType == "" {
		msgType = domain.MessageTypeText
	}
	if msgType != domain.MessageTypeText && msgType != domain.MessageTypeAnnouncement {
		return "", fmt.Errorf("%w: unknown message type %q", domain.ErrInvalidInput, msgType)
	}

	msg := &domain.Message{
		MeetupID:  meetupID,
		UserID:    userID,
		Content:   content,
		Type:      msgType,
		Timestamp: time.Now().UTC(),
	}
	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}
	return msg.ID, nil
}

func (s *messagingService) GetMessages(ctx context.Context, meetupID, userID string, limit, offset int) (*domain.MessagePage, error) {
	if _, err := s.membershipRepo.GetByMeetupAndUser(ctx, meetupID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAMember
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}

	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	if limit > MaxMessageLimit {
		limit = MaxMessageLimit
	}
	if offset < 0 {
		offset = 0
	}

	msgs, total, err := s.messageRepo.ListByMeetup(ctx, meetupID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	// Resolve display names one by one (N+1). Fine at this scale; a batched
	// lookup would replace this if message volume grows.
	names := make(map[string]string)
	views := make([]*domain.MessageView, 0, len(msgs))
	for _, msg := range msgs {
		name, ok := names[msg.UserID]
		if !ok {
			name = "Unknown User"
			if resolved, err := s.users.GetName(ctx, msg.UserID); err == nil && resolved != "" {
				name = resolved
			}
			names[msg.UserID] = name
		}
		views = append(views, &domain.MessageView{
			Message:      *msg,
			UserName:     name,
			IsOwnMessage: msg.UserID == userID,
		})
	}

	return &domain.MessagePage{
		Messages:   views,
		TotalCount: total,
		HasMore:    offset+len(views) < total,
	}, nil
}
