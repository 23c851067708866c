package memory

import (
	"context"

	"github.com/google/uuid"

	"privatemeetups/internal/domain"
)

type softBanEventRepository struct {
	store *Store
}

func NewSoftBanEventRepository(store *Store) domain.SoftBanEventRepository {
	return &softBanEventRepository{store: store}
}

// Create appends to the audit log; prior events are never touched.
func (r *softBanEventRepository) Create(ctx context.Context, ev *domain.SoftBanEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	stored := *ev
	r.store.banEvents[ev.MeetupID] = append(r.store.banEvents[ev.MeetupID], &stored)
	return nil
}
