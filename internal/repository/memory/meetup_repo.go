package memory

import (
	"context"

	"github.com/google/uuid"

	"privatemeetups/internal/domain"
)

type meetupRepository struct {
	store *Store
}

func NewMeetupRepository(store *Store) domain.MeetupRepository {
	return &meetupRepository{store: store}
}

func (r *meetupRepository) Create(ctx context.Context, meetup *domain.Meetup) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if meetup.ID == "" {
		meetup.ID = uuid.NewString()
	}
	r.store.meetups[meetup.ID] = copyMeetup(meetup)
	return nil
}

func (r *meetupRepository) GetByID(ctx context.Context, id string) (*domain.Meetup, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	m, ok := r.store.meetups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyMeetup(m), nil
}
