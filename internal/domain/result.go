package domain

import "net/http"

// Status codes carried by a ValidationResult
const (
	StatusSuccess = http.StatusOK
	StatusFailure = http.StatusBadRequest
)

// SuccessMessage is the message of every successful ValidationResult
const SuccessMessage = "success"

// ValidationResult is the immutable outcome of validating one launch
type ValidationResult struct {
	status  int
	message string
	params  Params
	err     error
}

// NewSuccessResult returns a 200 result echoing params
func NewSuccessResult(params Params) *ValidationResult {
	return &ValidationResult{
		status:  StatusSuccess,
		message: SuccessMessage,
		params:  params.Clone(),
	}
}

// NewFailureResult returns a 400 result whose message is err's text
func NewFailureResult(err error) *ValidationResult {
	return &ValidationResult{
		status:  StatusFailure,
		message: err.Error(),
		err:     err,
	}
}

// StatusCode returns 200 on success and 400 on failure
func (r *ValidationResult) StatusCode() int {
	return r.status
}

// Message returns "success" or the failure reason
func (r *ValidationResult) Message() string {
	return r.message
}

// Parameters returns a copy of the validated parameters; nil for failures
func (r *ValidationResult) Parameters() Params {
	return r.params.Clone()
}

// IsSuccess reports whether StatusCode is 200
func (r *ValidationResult) IsSuccess() bool {
	return r.status == StatusSuccess
}

// Err returns the failure cause, matchable with errors.Is against the sentinel errors.
// It is nil for successful results.
func (r *ValidationResult) Err() error {
	return r.err
}
