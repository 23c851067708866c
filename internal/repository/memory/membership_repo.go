package memory

import (
	"context"

	"privatemeetups/internal/domain"
)

type membershipRepository struct {
	store *Store
}

func NewMembershipRepository(store *Store) domain.MembershipRepository {
	return &membershipRepository{store: store}
}

func (r *membershipRepository) GetByMeetupAndUser(ctx context.Context, meetupID, userID string) (*domain.Membership, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.memberships[meetupID] {
		if m.UserID == userID {
			return copyMembership(m), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Upsert keeps at most one row per (meetup, user) pair; a repeat call for an
// existing pair is a no-op.
func (r *membershipRepository) Upsert(ctx context.Context, m *domain.Membership) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.memberships[m.MeetupID] {
		if existing.UserID == m.UserID {
			return nil
		}
	}
	r.store.memberships[m.MeetupID] = append(r.store.memberships[m.MeetupID], copyMembership(m))
	return nil
}

func (r *membershipRepository) SetSoftBanned(ctx context.Context, meetupID, userID string, reason *string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.memberships[meetupID] {
		if m.UserID == userID {
			m.SoftBanned = true
			m.SoftBanReason = reason
			return nil
		}
	}
	return domain.ErrNotFound
}
