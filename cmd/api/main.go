package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Important for Swagger
	"go-portfolio-backend/internal/delivery/http/middleware"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/repository/postgres"
	"go-portfolio-backend/internal/repository/sqlite"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/database"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/security"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form delivery, site profile and contact inbox for a personal portfolio.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init("portfolio-backend", cfg.IsProduction())
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "env", cfg.Environment)

	events := security.NewEventLogger("portfolio-backend", cfg.Environment)
	defer events.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Inbox storage
	inbox, health, closeDB, err := openInbox(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer closeDB()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			defer redisClient.Close()
			health["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		}
	}

	// 5. Setup Mail transport
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Invalid mail configuration", "error", err)
		os.Exit(1)
	}
	if !sender.IsConfigured() {
		logger.Log.Warn("Mail transport not fully configured - contact form will report failures", "provider", sender.Name())
	}

	// 6. Setup UseCases
	contactCfg := usecase.ContactControllerConfig{
		Sender:        sender,
		FallbackEmail: cfg.ContactFallbackEmail,
		Timeout:       cfg.ContactSubmitTimeout,
		Inbox:         inbox,
		Events:        events,
	}
	contactUC, err := usecase.NewContactUsecase(contactCfg, usecase.WithSpamRecording(cfg.ContactRecordSpam))
	if err != nil {
		logger.Log.Error("Failed to setup contact form", "error", err)
		os.Exit(1)
	}
	sessions, err := usecase.NewContactSessions(contactCfg,
		usecase.WithSessionTTL(cfg.ContactSessionTTL),
		usecase.WithMaxSessions(cfg.ContactMaxSessions),
	)
	if err != nil {
		logger.Log.Error("Failed to setup contact sessions", "error", err)
		os.Exit(1)
	}

	var inboxUC domain.InboxUsecase
	if inbox != nil {
		inboxUC = usecase.NewInboxUsecase(inbox)
	}

	var profileUC domain.ProfileUsecase
	if cfg.SiteProfilePath != "" {
		profileUC, err = usecase.NewProfileUsecase(cfg.SiteProfilePath)
		if err != nil {
			logger.Log.Warn("Site profile unavailable", "path", cfg.SiteProfilePath, "error", err)
		}
	}

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		SessionsUC:  sessions,
		InboxUC:     inboxUC,
		ProfileUC:   profileUC,
		HealthUC:    usecase.NewHealthUsecase(health),
		RateLimiter: middleware.NewRateLimiter(redisClient, events),
		Events:      events,
		Config:      cfg,
	})

	// 8. Start Server and session janitor
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return sessions.Run(gctx, time.Minute)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ContactSubmitTimeout+5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Server exiting")
}

// openInbox picks Postgres, then SQLite, then no storage at all.
func openInbox(ctx context.Context, cfg *config.Config) (domain.ContactMessageRepository, map[string]usecase.HealthCheckFunc, func(), error) {
	health := map[string]usecase.HealthCheckFunc{}

	switch {
	case cfg.DBUrl != "":
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, nil, err
		}
		repo := postgres.NewContactMessageRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		health["database"] = pool.Ping
		return repo, health, pool.Close, nil

	case cfg.SQLitePath != "":
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		repo := sqlite.NewContactMessageRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		health["database"] = db.PingContext
		return repo, health, func() { db.Close() }, nil

	default:
		return nil, health, func() {}, nil
	}
}
