package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"privatemeetups/internal/delivery/http/helpers"
	"privatemeetups/internal/domain"
)

// Message page bounds, mirrored from the messaging service defaults.
const (
	defaultMessageLimit = 50
	maxMessageLimit     = 100
)

type MessageController struct {
	Logger  *slog.Logger
	Service domain.MessagingService
}

func NewMessageController(logger *slog.Logger, svc domain.MessagingService) *MessageController {
	return &MessageController{
		Logger:  logger,
		Service: svc,
	}
}

// SendMessageRequest is the request body for POST /send_message.
type SendMessageRequest struct {
	MeetupID    string `json:"meetup_id"`
	UserID      string `json:"user_id"`
	Message     string `json:"message"`
	MessageType string `json:"message_type"`
}

// Validate implements helpers.Validator.
func (r *SendMessageRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.MeetupID) == "" {
		errs = append(errs, "meetup_id is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, "user_id is required")
	}
	r.Message = strings.TrimSpace(r.Message)
	if r.Message == "" {
		errs = append(errs, "message cannot be empty")
	} else if len(r.Message) > 1000 {
		errs = append(errs, "message must be at most 1000 characters")
	}
	if r.MessageType == "" {
		r.MessageType = domain.MessageTypeText
	}
	if r.MessageType != domain.MessageTypeText && r.MessageType != domain.MessageTypeAnnouncement {
		errs = append(errs, "message_type must be text or announcement")
	}
	return errs
}

// SendMessageData is the success payload for POST /send_message.
type SendMessageData struct {
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
}

// SendMessageSuccessResponse is the success response envelope for POST /send_message (201).
type SendMessageSuccessResponse struct {
	Data  *SendMessageData  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// SendMessage godoc
// @Summary Send a chat message to a meetup
// @Description Appends a message to the meetup's chat log. Only members may post.
// @Tags messages
// @Accept json
// @Produce json
// @Param body body controllers.SendMessageRequest true "Message"
// @Success 201 {object} controllers.SendMessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not a member)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /send_message [post]
func (c *MessageController) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	messageID, err := c.Service.SendMessage(r.Context(), req.MeetupID, req.UserID, req.Message, req.MessageType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAMember):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "You are not a member of this meetup")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, &SendMessageData{
		MessageID: messageID,
		Message:   "Message sent successfully",
	})
}

// GetMessagesRequest is the request body for POST /get_messages.
type GetMessagesRequest struct {
	MeetupID string `json:"meetup_id"`
	UserID   string `json:"user_id"`
	Limit    int    `json:"limit"`
	Offset   int    `json:"offset"`
}

// Validate implements helpers.Validator.
func (r *GetMessagesRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.MeetupID) == "" {
		errs = append(errs, "meetup_id is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, "user_id is required")
	}
	if r.Limit == 0 {
		r.Limit = defaultMessageLimit
	}
	if r.Limit < 1 || r.Limit > maxMessageLimit {
		errs = append(errs, "limit must be between 1 and 100")
	}
	if r.Offset < 0 {
		errs = append(errs, "offset must be non-negative")
	}
	return errs
}

// GetMessagesSuccessResponse is the success response envelope for POST /get_messages (200).
type GetMessagesSuccessResponse struct {
	Data  *domain.MessagePage `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// GetMessages godoc
// @Summary Get chat messages for a meetup
// @Description Returns one page of the meetup's messages, newest first, with sender display names and is_own_message computed for the caller. Only members may read.
// @Tags messages
// @Accept json
// @Produce json
// @Param body body controllers.GetMessagesRequest true "Page request"
// @Success 200 {object} controllers.GetMessagesSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (not a member)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /get_messages [post]
func (c *MessageController) GetMessages(w http.ResponseWriter, r *http.Request) {
	var req GetMessagesRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	page, err := c.Service.GetMessages(r.Context(), req.MeetupID, req.UserID, req.Limit, req.Offset)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAMember):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "You are not a member of this meetup")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "internal server error")
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}
