package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"devdiary/internal/auth"
	"devdiary/internal/config"
	"devdiary/internal/http"
	"devdiary/internal/service"
	"devdiary/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API stores developer journal entries with their projects, tags and
// attachments, and answers calendar and mood queries over them.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Dev Diary API
//   description: |
//     Persistence and query API for a personal developer journal.
//     Every request acts on behalf of the signed-in user.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	kv := storage.NewKVRepo(db)
	records := storage.NewRecordRepo(kv)
	if err := records.Load(ctx); err != nil {
		log.Fatalf("Failed to load records: %v", err)
	}
	sessions := storage.NewSessionGate(kv)

	secret := cfg.JWTSecret
	if secret == "" {
		// Local mode still issues tokens at login; they just do not outlive the process.
		secret = uuid.NewString()
		slog.Warn("JWT_SECRET not set, using an ephemeral signing key")
	}
	issuer := auth.NewIssuer(secret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authService := service.NewAuthService(records, sessions, issuer, cfg.VerifyPassword)
	if cfg.SeedDemoUser && records.CountUsers() == 0 {
		if err := authService.SeedDemoUser(ctx); err != nil {
			log.Fatalf("Failed to seed demo user: %v", err)
		}
		slog.Info("Seeded demo user", "email", service.DemoUserEmail)
	}

	deps := &http.Deps{
		AuthService:     authService,
		EntryService:    service.NewEntryService(records),
		ProjectService:  service.NewProjectService(records),
		TagService:      service.NewTagService(records),
		CalendarService: service.NewCalendarService(records),
		InsightsService: service.NewInsightsService(records),
		Health:          kv,
		LocalSessions:   cfg.LocalSessions(),
		CORSOrigins:     cfg.CORSOrigins,
	}

	server := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           http.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Starting API server", "addr", server.Addr, "auth_mode", cfg.AuthMode)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
