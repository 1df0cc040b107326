package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
)

// LaunchService implements domain.LaunchProcessor
// Orchestrates validation and storage (Business Logic Layer)
type LaunchService struct {
	validator domain.LaunchValidator
	writer    domain.LaunchWriter
	logger    domain.Logger
}

// NewLaunchService creates a new launch service with dependency injection
func NewLaunchService(
	validator domain.LaunchValidator,
	writer domain.LaunchWriter,
	logger domain.Logger,
) *LaunchService {
	return &LaunchService{
		validator: validator,
		writer:    writer,
		logger:    logger,
	}
}

// Process validates the launch and stores a record of it when accepted.
// A rejected launch is reported through the result, not the error.
func (s *LaunchService) Process(ctx context.Context, params domain.Params) (*domain.ValidationResult, error) {
	// Step 1: Verify the OAuth signature
	result := s.validator.Validate(params)
	if !result.IsSuccess() {
		s.logger.Error("launch validation failed", result.Err())
		return result, nil
	}

	// Step 2: Summarize the launch
	record, err := NewLaunchRecord(result.Parameters())
	if err != nil {
		s.logger.Error("failed to build launch record", err)
		return nil, err
	}

	// Step 3: Store in Firebase
	if err := s.writer.Write(ctx, record); err != nil {
		s.logger.Error("failed to write launch", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDatabaseWrite, err)
	}

	s.logger.Info("launch accepted", "launchId", record.ID, "consumerKey", record.ConsumerKey, "resourceLinkId", record.ResourceLinkID)
	return result, nil
}

// NewLaunchRecord summarizes validated launch parameters.
// The ID is derived from consumer key, nonce and timestamp so a replayed launch
// maps onto the same record.
func NewLaunchRecord(params domain.Params) (domain.LaunchRecord, error) {
	ts, err := strconv.ParseInt(params.Get(domain.ParamTimestamp), 10, 64)
	if err != nil {
		return domain.LaunchRecord{}, fmt.Errorf("%w: %s: %v", domain.ErrInvalidPayload, domain.ParamTimestamp, err)
	}

	consumerKey := params.Get(domain.ParamConsumerKey)
	nonce := params.Get(domain.ParamNonce)
	name := strings.Join([]string{consumerKey, nonce, strconv.FormatInt(ts, 10)}, "\n")

	return domain.LaunchRecord{
		ID:             uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String(),
		ConsumerKey:    consumerKey,
		Nonce:          nonce,
		Timestamp:      ts,
		UserID:         params.Get(domain.ParamUserID),
		ContextID:      params.Get(domain.ParamContextID),
		ResourceLinkID: params.Get(domain.ParamResourceLinkID),
		Roles:          strings.Join(params[domain.ParamRoles], ","),
		MessageType:    params.Get(domain.ParamMessageType),
		LTIVersion:     params.Get(domain.ParamLTIVersion),
	}, nil
}
