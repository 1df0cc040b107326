// Package lti validates LTI 1.x basic launch requests signed with OAuth 1.0 HMAC-SHA1.
//
// A Validator holds one consumer's credentials and the expected launch URL and HTTP
// method. It is built once per consumer and may be shared between goroutines as long
// as its setters are not called while Validate is running.
package lti

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
	"github.com/josejalvarezm/lti-launch-validator/internal/oauth"
)

// Defaults applied by NewValidator
const (
	DefaultAction             = "POST"
	DefaultTimestampTolerance = 24 * time.Hour
)

var errMissingLaunchURL = errors.New("missing launch url")

var requiredFields = []string{
	domain.ParamSignature,
	domain.ParamTimestamp,
	domain.ParamConsumerKey,
}

// Config holds the deployment-specific settings of a Validator
type Config struct {
	// LaunchURL is the absolute URL the consumer posts launches to. There is no
	// default: a Validator without one rejects every launch with ErrNotConfigured.
	LaunchURL string
	// Action is the HTTP method of the launch. Defaults to POST.
	Action string
	// TimestampTolerance is how old oauth_timestamp may be. Defaults to 24h.
	TimestampTolerance time.Duration
	// KeepFileReferences signs "@"-prefixed values instead of skipping them.
	KeepFileReferences bool
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Validator checks launch parameters against one consumer's credentials
type Validator struct {
	creds     domain.Credentials
	launchURL string
	action    string
	tolerance time.Duration
	options   oauth.NormalizeOptions
	now       func() time.Time

	// Errors from the last rejected SetPath/SetAction; either one keeps the
	// validator unconfigured.
	pathErr   error
	actionErr error
}

// NewValidator creates a validator for the given consumer key and shared secret.
// Invalid settings in cfg do not fail construction; they surface as 400 results
// from Validate and from the corresponding setter.
func NewValidator(consumerKey, sharedSecret string, cfg Config) *Validator {
	v := &Validator{
		creds: domain.Credentials{
			ConsumerKey:  consumerKey,
			SharedSecret: sharedSecret,
		},
		action:    DefaultAction,
		tolerance: DefaultTimestampTolerance,
		options:   oauth.NormalizeOptions{KeepFileReferences: cfg.KeepFileReferences},
		now:       time.Now,
	}
	if cfg.Now != nil {
		v.now = cfg.Now
	}
	if cfg.TimestampTolerance > 0 {
		v.tolerance = cfg.TimestampTolerance
	}
	_ = v.SetAction(cfg.Action)
	_ = v.SetPath(cfg.LaunchURL)
	return v
}

// SetPath sets the expected launch URL. The URL is reduced to its base string
// form, so a query string or default port does not affect signatures.
func (v *Validator) SetPath(launchURL string) error {
	v.launchURL = ""
	if launchURL == "" {
		v.pathErr = errMissingLaunchURL
		return v.pathErr
	}
	uri, err := oauth.BaseStringURI(launchURL)
	if err != nil {
		v.pathErr = err
		return err
	}
	v.launchURL = uri
	v.pathErr = nil
	return nil
}

// SetAction sets the expected HTTP method. Empty restores the default.
func (v *Validator) SetAction(action string) error {
	if action == "" {
		v.action = DefaultAction
		v.actionErr = nil
		return nil
	}
	normalized, err := oauth.NormalizeAction(action)
	if err != nil {
		v.actionErr = err
		return err
	}
	v.action = normalized
	v.actionErr = nil
	return nil
}

// SetTimestampTolerance sets how far in the past oauth_timestamp may lie.
// Non-positive values restore the default.
func (v *Validator) SetTimestampTolerance(d time.Duration) {
	if d <= 0 {
		d = DefaultTimestampTolerance
	}
	v.tolerance = d
}

// LaunchURL returns the expected launch URL in base string form
func (v *Validator) LaunchURL() string {
	return v.launchURL
}

// Action returns the expected HTTP method
func (v *Validator) Action() string {
	return v.action
}

// TimestampTolerance returns the accepted age of oauth_timestamp
func (v *Validator) TimestampTolerance() time.Duration {
	return v.tolerance
}

// Validate checks params and reports the outcome. It never panics and does not
// modify params. A success result echoes params.
func (v *Validator) Validate(params domain.Params) *domain.ValidationResult {
	if err := v.validate(params); err != nil {
		return domain.NewFailureResult(err)
	}
	return domain.NewSuccessResult(params)
}

func (v *Validator) validate(params domain.Params) error {
	if v.pathErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotConfigured, v.pathErr)
	}
	if v.actionErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrNotConfigured, v.actionErr)
	}

	for _, field := range requiredFields {
		if params.Get(field) == "" {
			return fmt.Errorf("%w: %s", domain.ErrMissingField, field)
		}
	}

	if err := v.checkTimestamp(params.Get(domain.ParamTimestamp)); err != nil {
		return err
	}

	if params.Get(domain.ParamConsumerKey) != v.creds.ConsumerKey {
		return domain.ErrConsumerKeyMismatch
	}

	return v.checkSignature(params)
}

// checkTimestamp accepts timestamps no older than the tolerance and not in the future.
func (v *Validator) checkTimestamp(raw string) error {
	ts, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %s is not a unix timestamp", domain.ErrMissingField, domain.ParamTimestamp)
	}

	diff := v.now().Unix() - ts
	if diff > int64(v.tolerance/time.Second) || diff < 0 {
		return domain.ErrStaleTimestamp
	}
	return nil
}

func (v *Validator) checkSignature(params domain.Params) error {
	supplied := params.Get(domain.ParamSignature)

	req := oauth.SignatureRequest{
		HTTPMethod: v.action,
		BaseURL:    v.launchURL,
		Params:     withoutSignature(params),
		Options:    v.options,
	}
	expected, err := req.Sign(oauth.HMACSHA1, v.creds.SharedSecret, "")
	if err != nil {
		return err
	}

	if !oauth.SignaturesEqual(supplied, expected) {
		return domain.ErrSignatureMismatch
	}
	return nil
}

func withoutSignature(params domain.Params) domain.Params {
	working := params.Clone()
	working.Del(domain.ParamSignature)
	return working
}
