package domain

import (
	"context"
	"time"
)

// Membership roles.
const (
	RoleHost   = "host"
	RoleMember = "member"
)

// Membership ties a user to a meetup. Identity is the (meetup, user) pair;
// at most one row exists per pair.
// swagger:model Membership
type Membership struct {
	MeetupID      string    `json:"meetup_id"`
	UserID        string    `json:"user_id"`
	Role          string    `json:"role"`
	SoftBanned    bool      `json:"soft_banned"`
	SoftBanReason *string   `json:"soft_ban_reason"`
	JoinedAt      time.Time `json:"joined_at"`
}

// NewMembership returns a new Membership with the given fields.
func NewMembership(meetupID, userID, role string, joinedAt time.Time) *Membership {
	return &Membership{
		MeetupID: meetupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: joinedAt,
	}
}

// MembershipRepository defines the interface for membership storage.
type MembershipRepository interface {
	GetByMeetupAndUser(ctx context.Context, meetupID, userID string) (*Membership, error)
	// Upsert stores the membership. It is idempotent: a second call for the
	// same (meetup, user) pair leaves exactly one row and returns no error.
	Upsert(ctx context.Context, m *Membership) error
	// SetSoftBanned flips the soft-ban flag on an existing membership.
	// Returns ErrNotFound when the target has no membership row.
	SetSoftBanned(ctx context.Context, meetupID, userID string, reason *string) error
}

// AdmissionResult is the outcome of a successful invite acceptance. Joined is
// false when the caller was already a member.
type AdmissionResult struct {
	MeetupID string `json:"meetup_id"`
	Message  string `json:"message"`
	Joined   bool   `json:"-"`
}

// AdmissionService orchestrates invite acceptance and soft-ban moderation.
type AdmissionService interface {
	// AcceptInvite validates the token (exists, not revoked, not expired),
	// checks the meetup is still active, and admits the user as a member.
	// Re-accepting with the same (token, user) succeeds without creating a
	// second membership row.
	AcceptInvite(ctx context.Context, token, userID string) (*AdmissionResult, error)
	// SoftBan flags the target's membership and appends an audit event.
	// The audit append is best-effort; its failure does not undo the ban.
	// The enactedBy identity is recorded but not role-checked.
	SoftBan(ctx context.Context, meetupID, targetUserID, enactedBy string, reason *string) (string, error)
}
