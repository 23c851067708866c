package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"privatemeetups/internal/delivery/http/helpers"
	"privatemeetups/internal/domain"
)

type MeetupController struct {
	Logger  *slog.Logger
	Service domain.MeetupService
}

func NewMeetupController(logger *slog.Logger, svc domain.MeetupService) *MeetupController {
	return &MeetupController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateMeetupRequest is the request body for POST /create_meetup.
type CreateMeetupRequest struct {
	Title         string    `json:"title"`
	Desc          string    `json:"desc"`
	StartTS       time.Time `json:"start_ts"`
	EndTS         time.Time `json:"end_ts"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	Visibility    string    `json:"visibility"`
	TokenTTLHours int       `json:"token_ttl_hours"`
	HostID        string    `json:"host_id"`
	InviteEmails  []string  `json:"invite_emails"`
}

// Validate implements helpers.Validator.
func (r *CreateMeetupRequest) Validate() []string {
	var errs []string
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		errs = append(errs, "title is required")
	} else if len(r.Title) > 200 {
		errs = append(errs, "title must be at most 200 characters")
	}
	if len(r.Desc) > 1000 {
		errs = append(errs, "desc must be at most 1000 characters")
	}
	if r.StartTS.IsZero() {
		errs = append(errs, "start_ts is required")
	} else if r.StartTS.UTC().Before(time.Now().UTC()) {
		errs = append(errs, "start time cannot be in the past")
	}
	if r.EndTS.IsZero() {
		errs = append(errs, "end_ts is required")
	} else if !r.StartTS.IsZero() && !r.EndTS.After(r.StartTS) {
		errs = append(errs, "end time must be after start time")
	}
	if r.Lat < -90 || r.Lat > 90 {
		errs = append(errs, "lat must be between -90 and 90")
	}
	if r.Lng < -180 || r.Lng > 180 {
		errs = append(errs, "lng must be between -180 and 180")
	}
	if r.Visibility == "" {
		r.Visibility = domain.VisibilityPrivate
	}
	if r.Visibility != domain.VisibilityPrivate && r.Visibility != domain.VisibilityPublic {
		errs = append(errs, "visibility must be private or public")
	}
	if r.TokenTTLHours != 0 && (r.TokenTTLHours < 1 || r.TokenTTLHours > 168) {
		errs = append(errs, "token_ttl_hours must be between 1 and 168")
	}
	if strings.TrimSpace(r.HostID) == "" {
		errs = append(errs, "host_id is required")
	}
	for _, email := range r.InviteEmails {
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, "invalid invite email: "+email)
		}
	}
	return errs
}

// CreateMeetupSuccessResponse is the success response envelope for POST /create_meetup (201).
type CreateMeetupSuccessResponse struct {
	Data  *domain.CreateMeetupResult `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// CreateMeetup godoc
// @Summary Create a meetup with an invite token
// @Description Creates the meetup, a host membership, and a time-limited invite token, and returns a deep link embedding the token. Any invite_emails receive the deep link best-effort.
// @Tags meetups
// @Accept json
// @Produce json
// @Param body body controllers.CreateMeetupRequest true "Meetup details"
// @Success 201 {object} controllers.CreateMeetupSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /create_meetup [post]
func (c *MeetupController) CreateMeetup(w http.ResponseWriter, r *http.Request) {
	var req CreateMeetupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	result, err := c.Service.CreateMeetup(r.Context(), &domain.CreateMeetupInput{
		Title:         req.Title,
		Description:   req.Desc,
		StartTS:       req.StartTS,
		EndTS:         req.EndTS,
		Lat:           req.Lat,
		Lng:           req.Lng,
		Visibility:    req.Visibility,
		TokenTTLHours: req.TokenTTLHours,
		HostID:        req.HostID,
		InviteEmails:  req.InviteEmails,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}
