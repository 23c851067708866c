package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"privatemeetups/internal/domain"
)

// DefaultTokenTTLHours is used when the host does not pick a token lifetime.
const DefaultTokenTTLHours = 24

type meetupService struct {
	meetupRepo     domain.MeetupRepository
	tokenRepo      domain.InviteTokenRepository
	membershipRepo domain.MembershipRepository
	mailer         domain.Mailer
	deepLinkScheme string
	logger         *slog.Logger
}

// NewMeetupService creates a MeetupService. deepLinkScheme is the custom URI
// scheme used for invite deep links (e.g. "meetups" -> meetups://join/<token>).
func NewMeetupService(
	meetupRepo domain.MeetupRepository,
	tokenRepo domain.InviteTokenRepository,
	membershipRepo domain.MembershipRepository,
	mailer domain.Mailer,
	deepLinkScheme string,
	logger *slog.Logger,
) domain.MeetupService {
	return &meetupService{
		meetupRepo:     meetupRepo,
		tokenRepo:      tokenRepo,
		membershipRepo: membershipRepo,
		mailer:         mailer,
		deepLinkScheme: deepLinkScheme,
		logger:         logger,
	}
}

func (s *meetupService) CreateMeetup(ctx context.Context, input *domain.CreateMeetupInput) (*domain.CreateMeetupResult, error) {
	if input.HostID == "" {
		return nil, fmt.Errorf("%w: host is required", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	visibility := input.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	meetup := domain.NewMeetup(input.Title, input.Description, input.StartTS.UTC(), input.EndTS.UTC(), input.Lat, input.Lng, visibility, now)
	if err := s.meetupRepo.Create(ctx, meetup); err != nil {
		return nil, fmt.Errorf("create meetup: %w", err)
	}

	host := domain.NewMembership(meetup.ID, input.HostID, domain.RoleHost, now)
	if err := s.membershipRepo.Upsert(ctx, host); err != nil {
		return nil, fmt.Errorf("create host membership: %w", err)
	}

	token, err := generateInviteToken()
	if err != nil {
		return nil, fmt.Errorf("generate invite token: %w", err)
	}
	ttl := input.TokenTTLHours
	if ttl <= 0 {
		ttl = DefaultTokenTTLHours
	}
	tok := domain.NewInviteToken(meetup.ID, token, now.Add(time.Duration(ttl)*time.Hour), input.HostID, now)
	if err := s.tokenRepo.Create(ctx, tok); err != nil {
		return nil, fmt.Errorf("create invite token: %w", err)
	}

	deepLink := fmt.Sprintf("%s://join/%s", s.deepLinkScheme, token)

	// Invite emails are a courtesy; a bounced address should not undo the
	// meetup that already exists.
	for _, email := range input.InviteEmails {
		if err := s.shareInvite(email, meetup.Title, deepLink); err != nil {
			s.logger.WarnContext(ctx, "could not send invite email",
				"meetup_id", meetup.ID, "to", email, "err", err)
		}
	}

	return &domain.CreateMeetupResult{
		MeetupID: meetup.ID,
		Token:    token,
		DeepLink: deepLink,
	}, nil
}

func (s *meetupService) shareInvite(to, title, deepLink string) error {
	subject := fmt.Sprintf("You're invited to %s", title)
	text := fmt.Sprintf("You've been invited to the meetup %q.\n\nOpen this link on your phone to join:\n%s\n", title, deepLink)
	html := fmt.Sprintf(
		"<p>You've been invited to the meetup <strong>%s</strong>.</p><p><a href=%q>Tap here to join</a> or open %s on your phone.</p>",
		title, deepLink, deepLink,
	)
	return s.mailer.Send(to, subject, html, text)
}

// Invite tokens are 32 lowercase hex characters.
const inviteTokenBytes = 16

func generateInviteToken() (string, error) {
	b := make([]byte, inviteTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
