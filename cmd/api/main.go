package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/jobflix/jobflix-backend/internal/config"
	"github.com/jobflix/jobflix-backend/internal/database"
	"github.com/jobflix/jobflix-backend/internal/delivery"
	"github.com/jobflix/jobflix-backend/internal/handlers"
	"github.com/jobflix/jobflix-backend/internal/logger"
	"github.com/jobflix/jobflix-backend/internal/middleware"
	"github.com/jobflix/jobflix-backend/internal/server"
	"github.com/jobflix/jobflix-backend/internal/services"
	"github.com/jobflix/jobflix-backend/internal/storage"
)

func main() {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := config.Load()

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer lg.Sync()

	db, err := database.Connect(cfg.DatabaseDSN, lg)
	if err != nil {
		lg.Fatal("database connection failed", "error", err)
	}
	if err := database.Migrate(db); err != nil {
		lg.Fatal("database migration failed", "error", err)
	}

	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			lg.Warn("redis unreachable, match score caching disabled", "addr", cfg.RedisAddr, "error", err)
			cache = nil
		}
	}

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		lg.Fatal("upload storage init failed", "dir", cfg.UploadDir, "error", err)
	}

	var senders []delivery.Sender
	if cfg.SendGridAPIKey != "" {
		senders = append(senders, delivery.NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridFromEmail))
	}
	senders = append(senders, delivery.NewLogPushSender(lg))

	var assistant *services.AssistantService
	if cfg.GeminiAPIKey != "" {
		assistant, err = services.NewAssistantService(context.Background(), cfg.GeminiAPIKey, lg)
		if err != nil {
			lg.Warn("assistant init failed, continuing without it", "error", err)
			assistant = nil
		}
	}

	var scorer services.Scorer = services.NewWeightedScorer()
	if cfg.MatchStrategy == "llm" && assistant != nil {
		scorer = services.NewLLMScorer(assistant, lg)
	}

	authService := services.NewAuthService(db, lg, cfg.JWTSecret, cfg.AccessTokenTTL)
	notifier := services.NewNotificationService(db, lg, senders...)
	jobService := services.NewJobService(db, lg)
	companyService := services.NewCompanyService(db, lg)
	profileService := services.NewProfileService(db, lg)
	savedJobService := services.NewSavedJobService(db, lg)
	appService := services.NewApplicationService(db, lg, store, notifier)
	matcher := services.NewMatcherService(db, lg, scorer, cache)

	r := server.NewRouter(server.RouterConfig{
		Auth:          middleware.NewAuthMiddleware(lg, authService),
		AuthHandler:   handlers.NewAuthHandler(authService),
		Jobs:          handlers.NewJobHandler(jobService),
		Applications:  handlers.NewApplicationHandler(appService),
		Profiles:      handlers.NewProfileHandler(profileService),
		Companies:     handlers.NewCompanyHandler(companyService),
		SavedJobs:     handlers.NewSavedJobHandler(savedJobService),
		Notifications: handlers.NewNotificationHandler(notifier),
		Matches:       handlers.NewMatchHandler(matcher),
		Assistant:     handlers.NewAssistantHandler(assistant),
		UploadDir:     cfg.UploadDir,
	})

	lg.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		lg.Fatal("server exited", "error", err)
	}
}
