package domain

import "errors"

// Validation errors. Each maps to a 400 ValidationResult.
var (
	// ErrMissingField returned when a required oauth_* field is absent, empty or malformed
	ErrMissingField = errors.New("missing required field")

	// ErrStaleTimestamp returned when oauth_timestamp is older than the tolerance or in the future
	ErrStaleTimestamp = errors.New("stale timestamp")

	// ErrSignatureMismatch returned when the recomputed signature differs from oauth_signature
	ErrSignatureMismatch = errors.New("signatures do not match")

	// ErrConsumerKeyMismatch returned when oauth_consumer_key is not the configured key
	ErrConsumerKeyMismatch = errors.New("unknown consumer key")

	// ErrNotConfigured returned when the validator has no expected launch URL
	ErrNotConfigured = errors.New("validator not configured")
)

// Programmer and configuration errors
var (
	// ErrUnsupportedSignatureMethod returned for methods other than PLAINTEXT and HMAC-SHA1
	ErrUnsupportedSignatureMethod = errors.New("unsupported signature method")

	// ErrInvalidAction returned when an HTTP method contains anything but letters
	ErrInvalidAction = errors.New("invalid action")

	// ErrInvalidURL returned when a launch URL cannot be used as a base string URI
	ErrInvalidURL = errors.New("invalid launch url")

	// ErrInvalidHeader returned when an OAuth Authorization header cannot be parsed
	ErrInvalidHeader = errors.New("invalid authorization header")
)

// Host errors
var (
	// ErrDatabaseWrite returned when Firebase write fails
	ErrDatabaseWrite = errors.New("failed to write to database")

	// ErrInvalidPayload returned when the launch request body cannot be parsed
	ErrInvalidPayload = errors.New("invalid launch payload")
)
