package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"k9-duty-backend/internal/api/routes"
	"k9-duty-backend/internal/config"
	"k9-duty-backend/internal/database"
	applogger "k9-duty-backend/internal/logger"
	"k9-duty-backend/internal/repository"
	"k9-duty-backend/internal/scheduler"
	"k9-duty-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "k9-duty-backend/docs" // This is needed for swag
)

//	@title			K9 Duty Backend API
//	@version		1.0
//	@description	Backend API for K9 unit duty scheduling and report approval: daily schedules, handler reports with multi-stage review, and notifications.

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)
	appLog := applogger.New()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	clock := service.NewSystemClock(cfg.Location())
	validate := validator.New()

	// Notification dispatch: workflow services publish events, the
	// dispatcher persists them on its own goroutine
	notificationRepo := repository.NewNotificationRepository(db)
	notificationService := service.NewNotificationService(notificationRepo, validate, clock)
	dispatcher := service.NewDispatcher(notificationService, 256, appLog)
	dispatcher.Start()

	// Background jobs: nightly auto-lock and weekly retention sweep
	jobs := scheduler.New(
		repository.NewDailyScheduleRepository(db),
		notificationRepo,
		clock,
		scheduler.Options{
			AutoLockHour:    cfg.AutoLockHour,
			AutoLockMinute:  cfg.AutoLockMinute,
			RetentionWindow: cfg.RetentionWindow(),
		},
		appLog,
	)
	if err := jobs.Start(); err != nil {
		logrus.Fatal("Failed to start background jobs:", err)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, dispatcher, notificationService, clock)

	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	// Shut down in order: stop accepting requests, stop the cron jobs,
	// then drain the notification queue
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
	}

	jobs.Stop()
	dispatcher.Stop()
	logrus.Info("Server stopped")
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
