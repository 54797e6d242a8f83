package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "skyfleet-backend/internal/api/http"
	"skyfleet-backend/internal/config"
	"skyfleet-backend/internal/gateway"
	"skyfleet-backend/internal/logger"
	"skyfleet-backend/internal/metrics"
	"skyfleet-backend/internal/repository/postgres"
	"skyfleet-backend/internal/security"
	"skyfleet-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development overrides; missing file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting SkyFleet Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// Initialize Metrics
	metrics.Register()

	// Initialize Payment Gateway
	gw := gateway.NewRazorpay(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.Sendgrid.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Sendgrid.APIKey, cfg.Sendgrid.FromEmail, cfg.Sendgrid.FromName)
	} else {
		logger.Warn("Sendgrid API key not configured, email notifications disabled")
	}

	// Initialize Services
	bookingSvc := service.NewBookingService(
		store,
		store.BookingRepository,
		store.UserRepository,
		emailSvc,
		cfg.Booking.DeliveryLeadDays,
	)
	paymentSvc := service.NewPaymentService(
		store,
		store.PaymentRepository,
		store.BookingRepository,
		store.UserRepository,
		gw,
		cfg.Razorpay.KeySecret,
		emailSvc,
	)
	penaltySvc := service.NewPenaltyService(
		store.PenaltyRepository,
		store.BookingRepository,
		store.DroneRepository,
		store.UserRepository,
		emailSvc,
	)
	undertakingSvc := service.NewUndertakingService(store.UndertakingRepository)
	userSvc := service.NewUserService(store.UserRepository, tokenManager)
	droneSvc := service.NewDroneService(store.DroneRepository)
	ratingSvc := service.NewRatingService(store.RatingRepository, store.BookingRepository)

	// Initialize Router
	router := httpapi.NewRouter(httpapi.Services{
		Bookings:     bookingSvc,
		Payments:     paymentSvc,
		Penalties:    penaltySvc,
		Undertakings: undertakingSvc,
		Users:        userSvc,
		Drones:       droneSvc,
		Ratings:      ratingSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
