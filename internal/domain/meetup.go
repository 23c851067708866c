package domain

import (
	"context"
	"time"
)

// Meetup visibility values.
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// Meetup represents a time- and location-bounded gathering.
// A non-nil EndedAt makes the meetup terminal: no further admission or
// moderation is allowed.
// swagger:model Meetup
type Meetup struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartTS     time.Time  `json:"start_ts"`
	EndTS       time.Time  `json:"end_ts"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	Visibility  string     `json:"visibility"`
	EndedAt     *time.Time `json:"ended_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewMeetup returns a new Meetup with the given fields. ID is typically set by the repository on create.
func NewMeetup(title, description string, startTS, endTS time.Time, lat, lng float64, visibility string, createdAt time.Time) *Meetup {
	return &Meetup{
		Title:       title,
		Description: description,
		StartTS:     startTS,
		EndTS:       endTS,
		Lat:         lat,
		Lng:         lng,
		Visibility:  visibility,
		CreatedAt:   createdAt,
	}
}

// Ended reports whether the meetup has been ended.
func (m *Meetup) Ended() bool {
	return m.EndedAt != nil
}

// MeetupRepository defines the interface for meetup storage
type MeetupRepository interface {
	Create(ctx context.Context, meetup *Meetup) error
	GetByID(ctx context.Context, id string) (*Meetup, error)
}

// CreateMeetupInput carries the validated fields for creating a meetup.
// HostID is the already-trusted caller identity.
type CreateMeetupInput struct {
	Title         string
	Description   string
	StartTS       time.Time
	EndTS         time.Time
	Lat           float64
	Lng           float64
	Visibility    string
	TokenTTLHours int // 0 means the service default
	HostID        string
	InviteEmails  []string
}

// CreateMeetupResult is returned on successful meetup creation. The deep link
// embeds the invite token so the mobile client can join directly.
type CreateMeetupResult struct {
	MeetupID string `json:"meetup_id"`
	Token    string `json:"token"`
	DeepLink string `json:"deep_link"`
}

// MeetupService defines host-facing meetup operations.
type MeetupService interface {
	// CreateMeetup creates the meetup, a host membership, and a time-limited
	// invite token, then best-effort emails the deep link to any invitees.
	CreateMeetup(ctx context.Context, input *CreateMeetupInput) (*CreateMeetupResult, error)
}
