// Summit Coaching assistant API server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/summit-coaching/assistant-api/internal/api"
	"github.com/summit-coaching/assistant-api/internal/booking"
	"github.com/summit-coaching/assistant-api/internal/chat"
	"github.com/summit-coaching/assistant-api/internal/config"
	"github.com/summit-coaching/assistant-api/internal/contact"
	"github.com/summit-coaching/assistant-api/internal/domain"
	"github.com/summit-coaching/assistant-api/internal/mail"
	"github.com/summit-coaching/assistant-api/internal/middleware"
	"github.com/summit-coaching/assistant-api/internal/model"
	"github.com/summit-coaching/assistant-api/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "mock_model", cfg.Model.UseMock)

	// Durable records for bookings and contact submissions.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Model gateway.
	var modelClient domain.ModelClient
	if cfg.Model.UseMock {
		slog.Info("Using mock model client")
		modelClient = model.NewMockClient()
	} else {
		modelClient = model.NewGeminiClient(cfg.Model.APIKey, cfg.Model.Name, cfg.Model.BaseURL)
	}

	// Mail gateway. No SMTP host means notifications are logged only.
	var mailer domain.Mailer
	if cfg.SMTP.Host == "" {
		slog.Info("SMTP not configured, mail notifications disabled")
		mailer = mail.NewLogMailer()
	} else {
		mailer, err = mail.NewSMTPMailer(mail.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		if err != nil {
			slog.Error("Failed to initialize mail gateway", "error", err)
			os.Exit(1)
		}
	}

	// Services. Conversation state is in-memory for the process
	// lifetime; only bookings and contact submissions are persisted.
	chatSvc := chat.NewService(modelClient, chat.NewSessionStore(), chat.NewHistoryStore())
	bookingSvc := booking.NewService(chatSvc, mailer, repo, cfg.SMTP.BusinessEmail, cfg.Booking.SchedulingURL)
	contactSvc := contact.NewService(contact.NewGuard(cfg.ContactWindow), mailer, repo, cfg.SMTP.BusinessEmail)

	handler := api.NewHandler(chatSvc, bookingSvc, contactSvc)
	wsHandler := api.NewWSHandler(chatSvc, cfg.AllowedOrigins)

	// Setup router.
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	handler.RegisterRoutes(r)
	r.Get("/ws/chat", wsHandler.ServeHTTP)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Periodically purge stale duplicate-guard entries.
	go contactSvc.Guard().Run(ctx, cfg.GuardSweepInterval)

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
