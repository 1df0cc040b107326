package oauth

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
)

// SignatureMethod names an oauth_signature_method.
type SignatureMethod string

const (
	// PlainText sends the secret key itself. It offers no protection and exists for
	// completeness and testing.
	PlainText SignatureMethod = "PLAINTEXT"
	// HMACSHA1 signs the base string with HMAC-SHA1 and base64-encodes the digest.
	HMACSHA1 SignatureMethod = "HMAC-SHA1"
)

// ParseSignatureMethod uppercases s and checks it is supported. Empty means HMAC-SHA1.
func ParseSignatureMethod(s string) (SignatureMethod, error) {
	if s == "" {
		return HMACSHA1, nil
	}
	switch m := SignatureMethod(strings.ToUpper(s)); m {
	case PlainText, HMACSHA1:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedSignatureMethod, s)
	}
}

// SecretKey joins the encoded consumer secret and token secret with "&".
// The separator is present even without a token secret.
func SecretKey(sharedSecret, tokenSecret string) string {
	return Encode(sharedSecret) + "&" + Encode(tokenSecret)
}

// BaseString builds the signature base string: the action, the base string URI and
// the normalized parameters, each encoded as a whole and joined with "&".
func BaseString(action, path, normalizedParams string) string {
	return Encode(action) + "&" + Encode(path) + "&" + Encode(normalizedParams)
}

// ComputeSignature returns the oauth_signature for the given inputs.
// PLAINTEXT yields the encoded secret key; HMAC-SHA1 yields the base64 digest of
// the base string keyed by secretKey.
func ComputeSignature(method SignatureMethod, secretKey, action, path, normalizedParams string) (string, error) {
	switch method {
	case PlainText:
		return Encode(secretKey), nil
	case HMACSHA1:
		mac := hmac.New(sha1.New, []byte(secretKey))
		mac.Write([]byte(BaseString(action, path, normalizedParams)))
		return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedSignatureMethod, string(method))
	}
}

// SignaturesEqual compares a supplied oauth_signature with a computed one.
// Both sides are percent-decoded first so a value still carrying transport
// encoding compares equal to its raw form. "+" is kept literally since it is part
// of the base64 alphabet.
func SignaturesEqual(supplied, computed string) bool {
	a, err := url.PathUnescape(supplied)
	if err != nil {
		return false
	}
	b, err := url.PathUnescape(computed)
	if err != nil {
		return false
	}
	return hmac.Equal([]byte(a), []byte(b))
}

// SignatureRequest is everything a signature is computed over.
type SignatureRequest struct {
	// HTTPMethod is the uppercase action, e.g. "POST".
	HTTPMethod string
	// BaseURL is the request URL without query string.
	BaseURL string
	// Params holds the request parameters; oauth_signature is ignored if present.
	Params  domain.Params
	Options NormalizeOptions
}

// NormalizedParameters returns the normalized parameter string of the request.
func (r SignatureRequest) NormalizedParameters() string {
	return r.Options.NormalizedString(r.Params)
}

// BaseString returns the signature base string of the request.
func (r SignatureRequest) BaseString() string {
	return BaseString(r.HTTPMethod, r.BaseURL, r.NormalizedParameters())
}

// Sign computes the signature of the request with the given secrets.
func (r SignatureRequest) Sign(method SignatureMethod, sharedSecret, tokenSecret string) (string, error) {
	return ComputeSignature(method, SecretKey(sharedSecret, tokenSecret), r.HTTPMethod, r.BaseURL, r.NormalizedParameters())
}
