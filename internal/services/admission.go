package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"privatemeetups/internal/domain"
)

type admissionService struct {
	tokenRepo      domain.InviteTokenRepository
	meetupRepo     domain.MeetupRepository
	membershipRepo domain.MembershipRepository
	banEventRepo   domain.SoftBanEventRepository
	logger         *slog.Logger
}

// NewAdmissionService creates an AdmissionService with the given repositories.
func NewAdmissionService(
	tokenRepo domain.InviteTokenRepository,
	meetupRepo domain.MeetupRepository,
	membershipRepo domain.MembershipRepository,
	banEventRepo domain.SoftBanEventRepository,
	logger *slog.Logger,
) domain.AdmissionService {
	return &admissionService{
		tokenRepo:      tokenRepo,
		meetupRepo:     meetupRepo,
		membershipRepo: membershipRepo,
		banEventRepo:   banEventRepo,
		logger:         logger,
	}
}

func (s *admissionService) AcceptInvite(ctx context.Context, token, userID string) (*domain.AdmissionResult, error) {
	tok, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get invite token: %w", err)
	}
	// Mirror and postgres modes return the raw row; a revoked token is as
	// invalid as a missing one.
	if tok.RevokedAt != nil {
		return nil, domain.ErrNotFound
	}
	// Both sides of the expiry comparison are normalized to UTC. Stored
	// expiries can arrive in any zone representation.
	if !tok.ExpiresAt.IsZero() && time.Now().UTC().After(tok.ExpiresAt.UTC()) {
		return nil, domain.ErrTokenExpired
	}

	meetup, err := s.meetupRepo.GetByID(ctx, tok.MeetupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get meetup: %w", err)
	}
	if meetup.Ended() {
		return nil, domain.ErrMeetupEnded
	}

	// Check membership first so the caller can be told "already a member";
	// the Upsert below would not create a duplicate row either way.
	if _, err := s.membershipRepo.GetByMeetupAndUser(ctx, tok.MeetupID, userID); err == nil {
		return &domain.AdmissionResult{MeetupID: tok.MeetupID, Message: "Already a member"}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get membership: %w", err)
	}

	m := domain.NewMembership(tok.MeetupID, userID, domain.RoleMember, time.Now().UTC())
	if err := s.membershipRepo.Upsert(ctx, m); err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}
	return &domain.AdmissionResult{MeetupID: tok.MeetupID, Message: "Successfully joined meetup", Joined: true}, nil
}

func (s *admissionService) SoftBan(ctx context.Context, meetupID, targetUserID, enactedBy string, reason *string) (string, error) {
	meetup, err := s.meetupRepo.GetByID(ctx, meetupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("get meetup: %w", err)
	}
	if meetup.Ended() {
		return "", domain.ErrMeetupEnded
	}

	if err := s.membershipRepo.SetSoftBanned(ctx, meetupID, targetUserID, reason); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrNotAMember
		}
		return "", fmt.Errorf("set soft ban: %w", err)
	}

	// The flag is already set; a lost audit event is an accepted
	// inconsistency window, not a failure of the ban itself.
	ev := domain.NewSoftBanEvent(meetupID, targetUserID, enactedBy, reason, time.Now().UTC())
	if err := s.banEventRepo.Create(ctx, ev); err != nil {
		s.logger.WarnContext(ctx, "could not record soft-ban event",
			"meetup_id", meetupID, "target_user_id", targetUserID, "err", err)
	}

	return fmt.Sprintf("User %s has been soft-banned in meetup %s", targetUserID, meetupID), nil
}
