package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"privatemeetups/config"
	_ "privatemeetups/docs"
	"privatemeetups/internal/adapters/email"
	delivery "privatemeetups/internal/delivery/http"
	"privatemeetups/internal/delivery/http/controllers"
	"privatemeetups/internal/delivery/http/middleware"
	"privatemeetups/internal/domain"
	"privatemeetups/internal/repository/memory"
	"privatemeetups/internal/repository/postgres"
	"privatemeetups/internal/repository/supabase"
	"privatemeetups/internal/services"
)

// repositories bundles the store-backed interfaces so the service wiring
// does not care which backend was selected.
type repositories struct {
	meetups     domain.MeetupRepository
	tokens      domain.InviteTokenRepository
	memberships domain.MembershipRepository
	banEvents   domain.SoftBanEventRepository
	messages    domain.MessageRepository
	users       domain.UserDirectory
}

// @title Private Meetups API
// @version 1.0
// @description Invite-based private meetup coordination backend.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize store", "mode", cfg.StoreMode(), "err", err)
		os.Exit(1)
	}
	defer cleanup()

	mailer := email.NewMailer(email.MailerConfig{
		FromAddress: cfg.EmailFrom,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	})

	meetupService := services.NewMeetupService(repos.meetups, repos.tokens, repos.memberships, mailer, cfg.DeepLinkScheme, logger)
	admissionService := services.NewAdmissionService(repos.tokens, repos.meetups, repos.memberships, repos.banEvents, logger)
	messagingService := services.NewMessagingService(repos.memberships, repos.messages, repos.users)

	router := delivery.NewRouter(
		controllers.NewHealthController(cfg.MockMode()),
		controllers.NewMeetupController(logger, meetupService),
		controllers.NewAdmissionController(logger, admissionService),
		controllers.NewMessageController(logger, messagingService),
	)

	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, router))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "port", cfg.Port, "store", cfg.StoreMode(), "mock_mode", cfg.MockMode())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
	logger.Info("server stopped")
}

// buildRepositories selects the store backend once at startup. The returned
// cleanup closes whatever the backend holds open.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (*repositories, func(), error) {
	switch cfg.StoreMode() {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return &repositories{
			meetups:     postgres.NewMeetupRepository(db),
			tokens:      postgres.NewInviteTokenRepository(db),
			memberships: postgres.NewMembershipRepository(db),
			banEvents:   postgres.NewSoftBanEventRepository(db),
			messages:    postgres.NewMessageRepository(db),
			users:       postgres.NewUserDirectory(db),
		}, func() { db.Close() }, nil

	case config.StoreSupabase:
		client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
		return &repositories{
			meetups:     supabase.NewMeetupRepository(client),
			tokens:      supabase.NewInviteTokenRepository(client),
			memberships: supabase.NewMembershipRepository(client),
			banEvents:   supabase.NewSoftBanEventRepository(client),
			messages:    supabase.NewMessageRepository(client),
			users:       supabase.NewUserDirectory(client),
		}, func() {}, nil

	default:
		logger.Warn("no store configured, running in mock mode with seeded demo data")
		store := memory.NewStore()
		store.SeedDemo()
		return &repositories{
			meetups:     memory.NewMeetupRepository(store),
			tokens:      memory.NewInviteTokenRepository(store),
			memberships: memory.NewMembershipRepository(store),
			banEvents:   memory.NewSoftBanEventRepository(store),
			messages:    memory.NewMessageRepository(store),
			users:       memory.NewUserDirectory(store),
		}, func() {}, nil
	}
}
