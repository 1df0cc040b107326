// Package domain contains domain models and interfaces following SOLID principles
package domain

import (
	"context"
	"sort"
)

// Well-known OAuth 1.0 and LTI launch parameter names
const (
	ParamSignature       = "oauth_signature"
	ParamTimestamp       = "oauth_timestamp"
	ParamConsumerKey     = "oauth_consumer_key"
	ParamNonce           = "oauth_nonce"
	ParamSignatureMethod = "oauth_signature_method"
	ParamVersion         = "oauth_version"
	ParamToken           = "oauth_token"

	ParamUserID         = "user_id"
	ParamContextID      = "context_id"
	ParamResourceLinkID = "resource_link_id"
	ParamRoles          = "roles"
	ParamMessageType    = "lti_message_type"
	ParamLTIVersion     = "lti_version"
)

// Params is a flat mapping of parameter names to their values.
// A single-valued parameter holds a one-element slice; repeated names hold every value in
// arrival order. Keys are case-sensitive.
type Params map[string][]string

// Get returns the first value for key, or "" if the key is absent
func (p Params) Get(key string) string {
	if vs := p[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// Set replaces any existing values for key with value
func (p Params) Set(key, value string) {
	p[key] = []string{value}
}

// Add appends value to the values held for key
func (p Params) Add(key, value string) {
	p[key] = append(p[key], value)
}

// Del removes key
func (p Params) Del(key string) {
	delete(p, key)
}

// Has reports whether key is present, even with an empty value
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Keys returns the parameter names in ascending byte order
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy so callers can mutate the result without touching p
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, vs := range p {
		out[k] = append([]string(nil), vs...)
	}
	return out
}

// Credentials identifies a tool consumer. Immutable once constructed.
type Credentials struct {
	ConsumerKey  string
	SharedSecret string
}

// LaunchRecord is the persisted summary of an accepted launch
type LaunchRecord struct {
	ID             string `json:"id"`
	ConsumerKey    string `json:"consumerKey"`
	Nonce          string `json:"nonce"`
	Timestamp      int64  `json:"timestamp"`
	UserID         string `json:"userId"`
	ContextID      string `json:"contextId"`
	ResourceLinkID string `json:"resourceLinkId"`
	Roles          string `json:"roles"`
	MessageType    string `json:"messageType"`
	LTIVersion     string `json:"ltiVersion"`
}

// LaunchValidator interface (Dependency Inversion Principle)
// Separates OAuth verification from transport and storage
type LaunchValidator interface {
	Validate(params Params) *ValidationResult
}

// LaunchWriter interface (Dependency Inversion Principle)
// Allows swapping Firebase for other storage implementations
type LaunchWriter interface {
	Write(ctx context.Context, record LaunchRecord) error
}

// Logger interface (Dependency Inversion Principle)
// Allows swapping logging implementations
type Logger interface {
	Error(msg string, err error)
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

// LaunchProcessor interface (Dependency Inversion Principle)
// Main business logic abstraction
type LaunchProcessor interface {
	Process(ctx context.Context, params Params) (*ValidationResult, error)
}
