package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/Ambarubale6061/Event-Management-API/config"
	_ "github.com/Ambarubale6061/Event-Management-API/docs"
	"github.com/Ambarubale6061/Event-Management-API/internal/adapters/email"
	deliveryhttp "github.com/Ambarubale6061/Event-Management-API/internal/delivery/http"
	"github.com/Ambarubale6061/Event-Management-API/internal/delivery/http/controllers"
	"github.com/Ambarubale6061/Event-Management-API/internal/delivery/http/middleware"
	"github.com/Ambarubale6061/Event-Management-API/internal/metrics"
	"github.com/Ambarubale6061/Event-Management-API/internal/repository/postgres"
	"github.com/Ambarubale6061/Event-Management-API/internal/services"
)

const contextTimeout = 5 * time.Second

// @title Event Management API
// @version 1.0
// @description Create events, register attendees against a bounded capacity, and report registration statistics.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("ping database", "error", err)
		os.Exit(1)
	}
	if err := postgres.InitSchema(context.Background(), db); err != nil {
		logger.Error("init schema", "error", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:        cfg.EmailProvider,
		FromAddress:     cfg.EmailFromAddress,
		FromName:        cfg.EmailFromName,
		Region:          cfg.SESRegion,
		AccessKeyID:     cfg.SESAccessKeyID,
		SecretAccessKey: cfg.SESSecretKey,
	})
	if err != nil {
		logger.Error("create mailer", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo, m, contextTimeout)
	registrationService := services.NewRegistrationService(eventRepo, registrationRepo, emailService, m, contextTimeout)
	statsService := services.NewStatsService(eventRepo, registrationRepo, contextTimeout)

	router := deliveryhttp.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewRegistrationController(logger, registrationService),
		controllers.NewStatsController(logger, statsService),
	)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, router))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
