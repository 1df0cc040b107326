package oauth

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
)

// NormalizeAction uppercases an HTTP method and rejects anything but letters.
func NormalizeAction(action string) (string, error) {
	upper := strings.ToUpper(action)
	if upper == "" {
		return "", fmt.Errorf("%w: empty", domain.ErrInvalidAction)
	}
	for i := 0; i < len(upper); i++ {
		if upper[i] < 'A' || upper[i] > 'Z' {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidAction, action)
		}
	}
	return upper, nil
}

// BaseStringURI reduces raw to the form used in the signature base string
// (RFC 5849 §3.4.1.2): lowercase scheme and host, no default port, no query or
// fragment. An empty path becomes "/".
func BaseStringURI(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute url", domain.ErrInvalidURL, raw)
	}

	scheme := strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Host)
	switch {
	case scheme == "http" && u.Port() == "80":
		host = strings.TrimSuffix(host, ":80")
	case scheme == "https" && u.Port() == "443":
		host = strings.TrimSuffix(host, ":443")
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	return scheme + "://" + host + path, nil
}

// ParseAuthorizationHeader reads the parameters of an "OAuth" Authorization header
// (RFC 5849 §3.5.1). Values are percent-decoded; realm is dropped.
func ParseAuthorizationHeader(header string) (domain.Params, error) {
	scheme, rest, _ := strings.Cut(strings.TrimSpace(header), " ")
	if !strings.EqualFold(scheme, "OAuth") {
		return nil, fmt.Errorf("%w: scheme %q", domain.ErrInvalidHeader, scheme)
	}

	params := domain.Params{}
	for _, part := range strings.Split(rest, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, quoted, ok := strings.Cut(part, "=")
		if !ok || len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
			return nil, fmt.Errorf("%w: malformed parameter %q", domain.ErrInvalidHeader, part)
		}
		name = strings.TrimSpace(name)
		if name == "realm" {
			continue
		}
		key, err := url.PathUnescape(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidHeader, err)
		}
		value, err := url.PathUnescape(quoted[1 : len(quoted)-1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidHeader, err)
		}
		params.Add(key, value)
	}
	return params, nil
}
