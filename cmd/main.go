// This file is for local development.
// For Cloud Functions, the function.go file is used instead.

package main

import (
	"context"
	"log"
	"net/http"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/josejalvarezm/lti-launch-validator/internal/config"
	"github.com/josejalvarezm/lti-launch-validator/internal/handlers"
	"github.com/josejalvarezm/lti-launch-validator/internal/repositories"
	"github.com/josejalvarezm/lti-launch-validator/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.FirebaseDatabaseURL == "" {
		log.Fatalf("FIREBASE_DATABASE_URL environment variable is required")
	}

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.NewApp(ctx, &firebase.Config{
		DatabaseURL: cfg.FirebaseDatabaseURL,
		ProjectID:   cfg.FirebaseProjectID,
	})
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	dbClient, err := firebaseApp.Database(ctx)
	if err != nil {
		log.Fatalf("Failed to get Firebase database client: %v", err)
	}

	// Create dependencies
	logger := services.NewLogger(log.Writer(), cfg.Environment)
	validator := cfg.NewValidator()
	writer := repositories.NewFirebaseRepository(dbClient)

	// Compose service
	launchService := services.NewLaunchService(validator, writer, logger)

	// Create handler
	rateLimiter := handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler := handlers.NewLaunchHandler(launchService, logger, rateLimiter)

	mux := http.NewServeMux()
	mux.Handle("/lti/launch", handler)

	// Start server
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("Starting launch server", "addr", server.Addr, "launchUrl", validator.LaunchURL())

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
