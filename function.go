// Package function contains the Cloud Function entry point for GCP Cloud Functions Gen2
package function

import (
	"context"
	"fmt"
	"net/http"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/josejalvarezm/lti-launch-validator/internal/config"
	"github.com/josejalvarezm/lti-launch-validator/internal/handlers"
	"github.com/josejalvarezm/lti-launch-validator/internal/repositories"
	"github.com/josejalvarezm/lti-launch-validator/internal/services"
)

var launchHandler http.Handler

// ===== CLOUD FUNCTION ENTRY POINT =====

func init() {
	functions.HTTP("LTILaunch", LTILaunch)

	logger := services.NewLogger(os.Stderr, os.Getenv("ENVIRONMENT"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", err)
		return
	}

	handler, err := initializeHandler(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize handler", err)
		return
	}
	launchHandler = handler
}

// LTILaunch is the HTTP Cloud Function entry point
func LTILaunch(w http.ResponseWriter, r *http.Request) {
	if launchHandler == nil {
		http.Error(w, "Handler not initialized", http.StatusInternalServerError)
		return
	}
	launchHandler.ServeHTTP(w, r)
}

func initializeHandler(ctx context.Context, cfg *config.Config, logger *services.SimpleLogger) (http.Handler, error) {
	var fbConfig *firebase.Config
	if cfg.FirebaseProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.FirebaseProjectID}
	}

	firebaseApp, err := firebase.NewApp(ctx, fbConfig)
	if err != nil {
		return nil, fmt.Errorf("initializing Firebase: %w", err)
	}

	firestoreClient, err := firebaseApp.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting Firestore client: %w", err)
	}

	validator := cfg.NewValidator()
	writer := repositories.NewFirestoreRepository(firestoreClient)
	launchService := services.NewLaunchService(validator, writer, logger)

	// Protects against floods while allowing legitimate launch spikes
	rateLimiter := handlers.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	handler := handlers.NewLaunchHandler(launchService, logger, rateLimiter)

	logger.Info("launch handler initialized",
		"environment", cfg.Environment,
		"database", "firestore",
		"launchUrl", validator.LaunchURL(),
		"rateLimit", fmt.Sprintf("%d req/s", cfg.RateLimitRPS))

	return handler, nil
}
