// Package memory is the mirror-mode store: a process-scoped stand-in used
// when no remote store is configured. It reproduces the remote store's
// invariants (membership uniqueness, idempotent upsert, append-only logs)
// behind the same repository interfaces; nothing is ever persisted.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"privatemeetups/internal/domain"
)

// Store holds all mirror-mode state. It lives from process start to process
// stop and is shared by the repository types in this package. One mutex
// serializes every mutation; expected concurrency is low.
type Store struct {
	mu          sync.Mutex
	meetups     map[string]*domain.Meetup
	tokens      map[string]*domain.InviteToken  // keyed by token string
	memberships map[string][]*domain.Membership // keyed by meetup ID
	banEvents   map[string][]*domain.SoftBanEvent
	messages    map[string][]*domain.Message
	userNames   map[string]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		meetups:     make(map[string]*domain.Meetup),
		tokens:      make(map[string]*domain.InviteToken),
		memberships: make(map[string][]*domain.Membership),
		banEvents:   make(map[string][]*domain.SoftBanEvent),
		messages:    make(map[string][]*domain.Message),
		userNames:   make(map[string]string),
	}
}

// DemoToken is the well-known invite token seeded by SeedDemo.
const DemoToken = "demo123abc"

// SeedDemo loads the demo fixture: one active meetup, its host membership,
// and the well-known demo invite token, so a fresh mock-mode process can
// serve an end-to-end accept-invite flow immediately.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	meetupID := uuid.NewString()
	s.meetups[meetupID] = &domain.Meetup{
		ID:          meetupID,
		Title:       "Demo Meetup",
		Description: "A demo meetup for testing",
		StartTS:     now.Add(30 * time.Minute),
		EndTS:       now.Add(2 * time.Hour),
		Lat:         39.9526,
		Lng:         -75.1652,
		Visibility:  domain.VisibilityPrivate,
		CreatedAt:   now,
	}
	s.tokens[DemoToken] = &domain.InviteToken{
		ID:        uuid.NewString(),
		MeetupID:  meetupID,
		Token:     DemoToken,
		ExpiresAt: now.Add(2 * time.Hour),
		CreatedBy: "demo-host",
		CreatedAt: now,
	}
	s.memberships[meetupID] = []*domain.Membership{
		{
			MeetupID: meetupID,
			UserID:   "demo-host",
			Role:     domain.RoleHost,
			JoinedAt: now,
		},
	}
	s.userNames["demo-host"] = "Demo Host"
}

// copyMeetup and friends return defensive copies so callers never alias the
// store's own rows.
func copyMeetup(m *domain.Meetup) *domain.Meetup {
	c := *m
	return &c
}

func copyToken(t *domain.InviteToken) *domain.InviteToken {
	c := *t
	return &c
}

func copyMembership(m *domain.Membership) *domain.Membership {
	c := *m
	return &c
}

func copyMessage(m *domain.Message) *domain.Message {
	c := *m
	return &c
}
