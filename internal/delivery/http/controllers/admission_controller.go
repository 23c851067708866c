package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"privatemeetups/internal/delivery/http/helpers"
	"privatemeetups/internal/domain"
)

// inviteTokenRegex matches a production invite token: 32 lowercase hex chars.
// Demo and mock-prefixed tokens are exempt so the client can be exercised
// without a real store.
var inviteTokenRegex = regexp.MustCompile(`^[a-f0-9]{32}$`)

func validInviteToken(token string) bool {
	if token == "demo123abc" || strings.HasPrefix(token, "mock") {
		return true
	}
	return inviteTokenRegex.MatchString(token)
}

type AdmissionController struct {
	Logger  *slog.Logger
	Service domain.AdmissionService
}

func NewAdmissionController(logger *slog.Logger, svc domain.AdmissionService) *AdmissionController {
	return &AdmissionController{
		Logger:  logger,
		Service: svc,
	}
}

// AcceptInviteRequest is the request body for POST /accept_invite.
type AcceptInviteRequest struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// Validate implements helpers.Validator.
func (r *AcceptInviteRequest) Validate() []string {
	var errs []string
	r.Token = strings.TrimSpace(r.Token)
	if r.Token == "" {
		errs = append(errs, "token is required")
	} else if !validInviteToken(r.Token) {
		errs = append(errs, "invalid token format")
	}
	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, "user_id is required")
	}
	return errs
}

// AcceptInviteSuccessResponse is the success response envelope for POST /accept_invite (200).
type AcceptInviteSuccessResponse struct {
	Data  *domain.AdmissionResult `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// AcceptInvite godoc
// @Summary Accept an invite token and join the meetup
// @Description Validates the invite token (exists, not revoked, not expired), checks the meetup is still active, and admits the user as a member. Idempotent: a repeat call for the same (token, user) succeeds with an "Already a member" message.
// @Tags admission
// @Accept json
// @Produce json
// @Param body body controllers.AcceptInviteRequest true "Invite token and user"
// @Success 200 {object} controllers.AcceptInviteSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (invalid or revoked token, or meetup missing)"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (token expired or meetup ended)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /accept_invite [post]
func (c *AdmissionController) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	var req AcceptInviteRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Service.AcceptInvite(r.Context(), req.Token, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Invalid or expired invite token")
		case errors.Is(err, domain.ErrTokenExpired):
			helpers.WriteJSONError(w, http.StatusGone, helpers.ErrCodeGone, "Invite token has expired")
		case errors.Is(err, domain.ErrMeetupEnded):
			helpers.WriteJSONError(w, http.StatusGone, helpers.ErrCodeGone, "Meetup has already ended")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// SoftBanRequest is the request body for POST /soft_ban.
type SoftBanRequest struct {
	MeetupID     string  `json:"meetup_id"`
	TargetUserID string  `json:"target_user_id"`
	EnactedBy    string  `json:"enacted_by"`
	Reason       *string `json:"reason"`
}

// Validate implements helpers.Validator.
func (r *SoftBanRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.MeetupID) == "" {
		errs = append(errs, "meetup_id is required")
	}
	if strings.TrimSpace(r.TargetUserID) == "" {
		errs = append(errs, "target_user_id is required")
	}
	if strings.TrimSpace(r.EnactedBy) == "" {
		errs = append(errs, "enacted_by is required")
	}
	if r.Reason != nil && len(*r.Reason) > 500 {
		errs = append(errs, "reason must be at most 500 characters")
	}
	return errs
}

// SoftBanData is the success payload for POST /soft_ban.
type SoftBanData struct {
	Message string `json:"message"`
}

// SoftBanSuccessResponse is the success response envelope for POST /soft_ban (200).
type SoftBanSuccessResponse struct {
	Data  *SoftBanData      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SoftBan godoc
// @Summary Soft-ban a user in a meetup
// @Description Flags the target's membership as soft-banned and appends an audit event. The enacted_by identity is recorded but not role-checked, and the ban does not revoke the target's read access.
// @Tags admission
// @Accept json
// @Produce json
// @Param body body controllers.SoftBanRequest true "Ban details"
// @Success 200 {object} controllers.SoftBanSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (including target not a member)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (meetup missing)"
// @Failure 410 {object} helpers.APIResponse "error.code: gone (meetup ended)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /soft_ban [post]
func (c *AdmissionController) SoftBan(w http.ResponseWriter, r *http.Request) {
	var req SoftBanRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	message, err := c.Service.SoftBan(r.Context(), req.MeetupID, req.TargetUserID, req.EnactedBy, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Meetup not found")
		case errors.Is(err, domain.ErrMeetupEnded):
			helpers.WriteJSONError(w, http.StatusGone, helpers.ErrCodeGone, "Cannot soft-ban users in ended meetups")
		case errors.Is(err, domain.ErrNotAMember):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "Target user is not a member of this meetup")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, &SoftBanData{Message: message})
}
