package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"privatemeetups/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeMeetupRepo is an in-memory MeetupRepository for tests.
type fakeMeetupRepo struct {
	byID      map[string]*domain.Meetup
	nextID    int
	createErr error
	getErr    error
}

func newFakeMeetupRepo() *fakeMeetupRepo {
	return &fakeMeetupRepo{byID: make(map[string]*domain.Meetup), nextID: 1}
}

func (f *fakeMeetupRepo) Create(ctx context.Context, m *domain.Meetup) error {
	if f.createErr != nil {
		return f.createErr
	}
	m.ID = fmt.Sprintf("mu-%d", f.nextID)
	f.nextID++
	f.byID[m.ID] = m
	return nil
}

func (f *fakeMeetupRepo) GetByID(ctx context.Context, id string) (*domain.Meetup, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if m, ok := f.byID[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

// fakeTokenRepo is an in-memory InviteTokenRepository for tests.
type fakeTokenRepo struct {
	byToken   map[string]*domain.InviteToken
	nextID    int
	createErr error
	getErr    error
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byToken: make(map[string]*domain.InviteToken), nextID: 1}
}

func (f *fakeTokenRepo) Create(ctx context.Context, tok *domain.InviteToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	tok.ID = fmt.Sprintf("tok-%d", f.nextID)
	f.nextID++
	f.byToken[tok.Token] = tok
	return nil
}

func (f *fakeTokenRepo) GetByToken(ctx context.Context, token string) (*domain.InviteToken, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if tok, ok := f.byToken[token]; ok {
		return tok, nil
	}
	return nil, domain.ErrNotFound
}

// fakeMembershipRepo is an in-memory MembershipRepository for tests.
type fakeMembershipRepo struct {
	byKey       map[string]*domain.Membership
	upsertErr   error
	getErr      error
	setBanErr   error
	upsertCalls int
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{byKey: make(map[string]*domain.Membership)}
}

func membershipKey(meetupID, userID string) string {
	return meetupID + "|" + userID
}

func (f *fakeMembershipRepo) GetByMeetupAndUser(ctx context.Context, meetupID, userID string) (*domain.Membership, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if m, ok := f.byKey[membershipKey(meetupID, userID)]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMembershipRepo) Upsert(ctx context.Context, m *domain.Membership) error {
	f.upsertCalls++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	key := membershipKey(m.MeetupID, m.UserID)
	if _, ok := f.byKey[key]; ok {
		return nil
	}
	f.byKey[key] = m
	return nil
}

func (f *fakeMembershipRepo) SetSoftBanned(ctx context.Context, meetupID, userID string, reason *string) error {
	if f.setBanErr != nil {
		return f.setBanErr
	}
	m, ok := f.byKey[membershipKey(meetupID, userID)]
	if !ok {
		return domain.ErrNotFound
	}
	m.SoftBanned = true
	m.SoftBanReason = reason
	return nil
}

// fakeBanEventRepo is an in-memory SoftBanEventRepository for tests.
type fakeBanEventRepo struct {
	events    []*domain.SoftBanEvent
	createErr error
}

func (f *fakeBanEventRepo) Create(ctx context.Context, ev *domain.SoftBanEvent) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.events = append(f.events, ev)
	return nil
}

// fakeMessageRepo is an in-memory MessageRepository for tests. Messages are
// stored newest-first the way the real repos return them.
type fakeMessageRepo struct {
	messages  []*domain.Message
	nextID    int
	createErr error
	listErr   error
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	msg.ID = fmt.Sprintf("msg-%d", f.nextID)
	f.messages = append([]*domain.Message{msg}, f.messages...)
	return nil
}

func (f *fakeMessageRepo) ListByMeetup(ctx context.Context, meetupID string, limit, offset int) ([]*domain.Message, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	var all []*domain.Message
	for _, m := range f.messages {
		if m.MeetupID == meetupID {
			all = append(all, m)
		}
	}
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// fakeUserDirectory resolves names from a map and counts lookups.
type fakeUserDirectory struct {
	names   map[string]string
	getErr  error
	lookups int
}

func (f *fakeUserDirectory) GetName(ctx context.Context, userID string) (string, error) {
	f.lookups++
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.names[userID], nil
}

// fakeMailer records sent mail.
type fakeMailer struct {
	sentTo  []string
	sendErr error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.sentTo = append(f.sentTo, to)
	return f.sendErr
}
