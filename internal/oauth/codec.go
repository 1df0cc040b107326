// Package oauth implements the OAuth 1.0 (RFC 5849) pieces needed to verify a signed
// request: parameter encoding, parameter normalization and signature computation.
//
// Values are handled in their decoded form everywhere except inside the normalized
// parameter string and the signature base string, which are built here.
package oauth

import (
	"net/url"
	"strings"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
)

// QueryEscape encodes space as "+"; OAuth wants "%20" and an unescaped "~".
var escapeFixer = strings.NewReplacer("+", "%20", "%7E", "~")

// Encode percent-encodes s per RFC 5849 §3.6: unreserved characters
// (ALPHA, DIGIT, "-", ".", "_", "~") pass through, everything else becomes %XX.
// Encode("") is "" and Encode("0") is "0".
func Encode(s string) string {
	if s == "" {
		return s
	}
	return escapeFixer.Replace(url.QueryEscape(s))
}

// Decode reverses Encode. It follows form decoding, so "+" is read as a space.
// Malformed escapes are returned untouched.
func Decode(s string) string {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return out
}

// ParseQueryString splits s on "&" and each segment on its first "=".
// Names and values are decoded. A repeated name collects every value in order.
func ParseQueryString(s string) domain.Params {
	params := domain.Params{}
	for _, segment := range strings.Split(strings.TrimPrefix(s, "?"), "&") {
		if segment == "" {
			continue
		}
		key, token, _ := strings.Cut(segment, "=")
		params.Add(Decode(key), Decode(token))
	}
	return params
}

// EncodeQueryString serializes params with Encode, names in ascending order and
// repeated values in their stored order.
func EncodeQueryString(params domain.Params) string {
	var b strings.Builder
	for _, key := range params.Keys() {
		for _, v := range params[key] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(Encode(key))
			b.WriteByte('=')
			b.WriteString(Encode(v))
		}
	}
	return b.String()
}
