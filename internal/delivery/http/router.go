package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"privatemeetups/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	healthController *controllers.HealthController,
	meetupController *controllers.MeetupController,
	admissionController *controllers.AdmissionController,
	messageController *controllers.MessageController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /{$}", healthController.Root)
	mux.HandleFunc("GET /health", healthController.Health)

	// API Routes
	mux.HandleFunc("POST /create_meetup", meetupController.CreateMeetup)
	mux.HandleFunc("POST /accept_invite", admissionController.AcceptInvite)
	mux.HandleFunc("POST /soft_ban", admissionController.SoftBan)
	mux.HandleFunc("POST /send_message", messageController.SendMessage)
	mux.HandleFunc("POST /get_messages", messageController.GetMessages)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
