package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Relays portfolio contact-form submissions to the owner's mailbox.
// @host            localhost:3001
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 2. Setup Logger
	logger.Init(logger.Options{
		Level:             cfg.LogLevel,
		SentryDSN:         cfg.SentryDSN,
		SentryEnvironment: cfg.SentryEnvironment,
		Extractors:        []logger.ContextExtractor{middleware.RequestIDExtractor()},
	})
	defer logger.Flush(2 * time.Second)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "mail_provider", cfg.MailProvider)

	// 3. Setup Redis (optional, backs the rate limiter)
	var redisPing func(ctx context.Context) error
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		} else {
			redisPing = redis.HealthCheck
		}
		defer func() { _ = redis.Close() }()
	}

	// 4. Setup Email Service
	sender, err := email.NewSender(cfg)
	if err != nil {
		logger.Log.Error("Invalid mail configuration", "error", err)
		os.Exit(1)
	}
	if !sender.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable", "provider", sender.Name())
	}

	layout, err := email.ParseLayout(cfg.ContactTemplate)
	if err != nil {
		logger.Log.Error("Invalid contact template", "error", err)
		os.Exit(1)
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(sender, validation.New(), usecase.ContactConfig{
		From:    email.FormatAddress(cfg.MailFromName, cfg.MailFrom),
		To:      []string{cfg.ContactEmailTo},
		Layout:  layout,
		Timeout: cfg.MailSendTimeout,
	})
	healthUC := usecase.NewHealthUsecase(sender, redisPing)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Log.Info("Server is running", "addr", srv.Addr)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// In-flight sends may take up to MailSendTimeout.
	ctx, cancel := context.WithTimeout(context.Background(), cfg.MailSendTimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
