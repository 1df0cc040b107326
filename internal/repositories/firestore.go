package repositories

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
)

// launchCollection holds one document per accepted launch
const launchCollection = "lti_launches"

// FirestoreRepository implements domain.LaunchWriter using Firestore
// Uses the launch record ID as document ID for guaranteed idempotency
type FirestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository creates a new Firestore repository
func NewFirestoreRepository(client *firestore.Client) *FirestoreRepository {
	return &FirestoreRepository{
		client: client,
	}
}

// Write stores a launch record in Firestore
// A replayed launch overwrites its own document instead of adding a new one
func (r *FirestoreRepository) Write(ctx context.Context, record domain.LaunchRecord) error {
	docRef := r.client.Collection(launchCollection).Doc(record.ID)

	if _, err := docRef.Set(ctx, launchDocument(record, time.Now().Unix())); err != nil {
		return fmt.Errorf("failed to write launch to Firestore: %w", err)
	}

	return nil
}

// launchDocument flattens a record into the stored field set
func launchDocument(record domain.LaunchRecord, receivedAt int64) map[string]interface{} {
	return map[string]interface{}{
		"id":             record.ID,
		"consumerKey":    record.ConsumerKey,
		"nonce":          record.Nonce,
		"timestamp":      record.Timestamp,
		"userId":         record.UserID,
		"contextId":      record.ContextID,
		"resourceLinkId": record.ResourceLinkID,
		"roles":          record.Roles,
		"messageType":    record.MessageType,
		"ltiVersion":     record.LTIVersion,
		"receivedAt":     receivedAt,
	}
}
