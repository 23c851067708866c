package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"privatemeetups/internal/domain"
)

type messageRepository struct {
	store *Store
}

func NewMessageRepository(store *Store) domain.MessageRepository {
	return &messageRepository{store: store}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	r.store.messages[msg.MeetupID] = append(r.store.messages[msg.MeetupID], copyMessage(msg))
	return nil
}

func (r *messageRepository) ListByMeetup(ctx context.Context, meetupID string, limit, offset int) ([]*domain.Message, int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	log := r.store.messages[meetupID]
	total := len(log)

	ordered := make([]*domain.Message, total)
	for i, m := range log {
		ordered[i] = copyMessage(m)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})

	if offset >= total {
		return []*domain.Message{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return ordered[offset:end], total, nil
}
