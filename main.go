package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/kalokoh/event-management-system/internal/auth"
	"github.com/kalokoh/event-management-system/internal/auth/auth_api"
	"github.com/kalokoh/event-management-system/internal/config"
	"github.com/kalokoh/event-management-system/internal/database"
	"github.com/kalokoh/event-management-system/internal/events"
	eventsdb "github.com/kalokoh/event-management-system/internal/events/db"
	"github.com/kalokoh/event-management-system/internal/events/event_api"
	loggerpkg "github.com/kalokoh/event-management-system/internal/logger"
	"github.com/kalokoh/event-management-system/internal/participants"
	participantsdb "github.com/kalokoh/event-management-system/internal/participants/db"
	"github.com/kalokoh/event-management-system/internal/participants/participant_api"
	"github.com/kalokoh/event-management-system/internal/report"
	"github.com/kalokoh/event-management-system/internal/report/report_api"
)

func main() {
	logger := loggerpkg.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting Event Management Service initialization")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	}

	cfg := config.Load()

	store, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to open SQLite database at %s: %v", cfg.Database.Path, err))
	}
	defer store.Close()
	logger.Info("DATABASE", fmt.Sprintf("SQLite database opened at %s", cfg.Database.Path))

	ctx := context.Background()
	if err := store.EnsureSchema(ctx, cfg.Auth.SeedUsername, cfg.Auth.SeedPassword); err != nil {
		// Schema failures are fatal at startup.
		logger.Fatal("DATABASE", fmt.Sprintf("Schema creation failed: %v", err))
	}
	logger.Info("DATABASE", "Schema ensured and default account seeded")

	eventDB := &eventsdb.DB{Store: store}
	participantDB := &participantsdb.DB{Store: store}

	authService := auth.NewService(&auth.DB{Store: store})
	eventService := events.NewEventService(eventDB)
	participantService := participants.NewParticipantService(participantDB)
	reportService := report.NewService(eventDB, participantDB)

	authHandler := auth_api.NewHandler(authService, logger, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	eventHandler := event_api.NewHandler(eventService, logger)
	participantHandler := participant_api.NewHandler(participantService, logger)
	reportHandler := report_api.NewHandler(reportService, logger)

	logger.Info("HTTP", "Setting up router and middleware")
	r := chi.NewRouter()
	r.Use(loggerpkg.RequestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		// --- Public Routes ---
		authHandler.RegisterRoutes(r)

		// --- Protected Routes ---
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(cfg.Auth.JWTSecret))

			eventHandler.RegisterRoutes(r)
			participantHandler.RegisterRoutes(r)
			reportHandler.RegisterRoutes(r)
		})
	})
	logger.Info("ROUTER", "Routes registered under /api")

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("Event Management Service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server shutdown failed: %v", err))
	} else {
		logger.Info("HTTP", "Event Management Service shutdown complete")
	}
}
