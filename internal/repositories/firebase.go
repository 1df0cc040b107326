package repositories

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/db"
	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
)

// launchPath is the Realtime Database location of accepted launches
const launchPath = "lti/launches"

// FirebaseRepository implements domain.LaunchWriter using Firebase Realtime Database
type FirebaseRepository struct {
	client *db.Client
}

// NewFirebaseRepository creates a new Firebase repository
func NewFirebaseRepository(client *db.Client) *FirebaseRepository {
	return &FirebaseRepository{
		client: client,
	}
}

// Write stores a launch record in Firebase under its launch ID
func (r *FirebaseRepository) Write(ctx context.Context, record domain.LaunchRecord) error {
	ref := r.client.NewRef(launchPath).Child(record.ID)

	if err := ref.Set(ctx, launchDocument(record, time.Now().UnixMilli())); err != nil {
		return fmt.Errorf("failed to write launch: %w", err)
	}

	return nil
}
