package domain

import (
	"context"
	"time"
)

// SoftBanEvent is one entry in the append-only moderation audit log. Events
// are never mutated or deleted; the mutable flag lives on the Membership.
// swagger:model SoftBanEvent
type SoftBanEvent struct {
	ID           string    `json:"id"`
	MeetupID     string    `json:"meetup_id"`
	TargetUserID string    `json:"target_user_id"`
	EnactedBy    string    `json:"enacted_by"`
	Reason       *string   `json:"reason"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewSoftBanEvent returns a new SoftBanEvent. ID is typically set by the repository on create.
func NewSoftBanEvent(meetupID, targetUserID, enactedBy string, reason *string, createdAt time.Time) *SoftBanEvent {
	return &SoftBanEvent{
		MeetupID:     meetupID,
		TargetUserID: targetUserID,
		EnactedBy:    enactedBy,
		Reason:       reason,
		CreatedAt:    createdAt,
	}
}

// SoftBanEventRepository defines storage operations for the moderation audit log.
type SoftBanEventRepository interface {
	Create(ctx context.Context, ev *SoftBanEvent) error
}
