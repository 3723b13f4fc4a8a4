package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zamtransit/vendor-portal-backend/internal/config"
	"github.com/zamtransit/vendor-portal-backend/internal/database"
	"github.com/zamtransit/vendor-portal-backend/internal/handlers"
	"github.com/zamtransit/vendor-portal-backend/internal/services"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
	"github.com/zamtransit/vendor-portal-backend/internal/store/memory"
	"github.com/zamtransit/vendor-portal-backend/pkg/token"
)

var version = "1.0.0"

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Infof("Starting ZamTransit vendor portal backend, version %s", version)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// An empty DATABASE_URL selects the in-memory store, handy for
	// local development and demos.
	var st store.Store
	if cfg.Database.URL == "" {
		logger.Warn("DATABASE_URL not set, using in-memory store; data will not survive restarts")
		st = memory.NewStore()
	} else {
		logger.Info("Connecting to database...")
		db, err := database.NewConnection(cfg.Database)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		logger.Info("Database connection established")

		if err := database.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations applied")

		st = database.NewStore(db)
	}
	defer st.Close()

	sessionService := services.NewSessionService(st, st, cfg.Session.TTL, logger)
	receiptService := services.NewReceiptService(st, logger)
	tokenService := token.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	cleanupService := services.NewCleanupService(sessionService, st, cfg.Session.SweepInterval, logger)
	if err := cleanupService.Start(); err != nil {
		logger.Fatalf("Failed to start background jobs: %v", err)
	}
	defer cleanupService.Stop()

	router := handlers.NewRouter(st, sessionService, receiptService, tokenService, cfg, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Infof("Listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
	logger.Info("Server stopped")
}
