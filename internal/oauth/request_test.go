package oauth

import (
	"testing"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAction(t *testing.T) {
	got, err := NormalizeAction("post")
	require.NoError(t, err)
	assert.Equal(t, "POST", got)

	for _, bad := range []string{"", "PO ST", "GET1", "M-SEARCH"} {
		_, err := NormalizeAction(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidAction, bad)
	}
}

func TestBaseStringURI(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://example.com/App/", "https://example.com/App/"},
		{"HTTP://Example.COM:80/r%20v/X?id=123", "http://example.com/r%20v/X"},
		{"https://www.example.net:8080/?q=1", "https://www.example.net:8080/"},
		{"https://example.com:443/lti#frag", "https://example.com/lti"},
		{"http://example.com:443/", "http://example.com:443/"},
		{"https://example.com", "https://example.com/"},
	}
	for _, tt := range tests {
		got, err := BaseStringURI(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestBaseStringURIRejectsRelative(t *testing.T) {
	for _, bad := range []string{"", "/lti/launch", "example.com/lti", "://x"} {
		_, err := BaseStringURI(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidURL, bad)
	}
}

func TestParseAuthorizationHeader(t *testing.T) {
	header := `OAuth realm="Example",
		oauth_consumer_key="9djdj82h48djs9d2",
		oauth_token="kkk9d7dh3k39sjv7",
		oauth_signature_method="HMAC-SHA1",
		oauth_timestamp="137131201",
		oauth_nonce="7d8f3e4a",
		oauth_signature="bYT5CMsGcbgUdFHObYMEfcx6bsw%3D"`

	params, err := ParseAuthorizationHeader(header)
	require.NoError(t, err)

	assert.False(t, params.Has("realm"))
	assert.Equal(t, "9djdj82h48djs9d2", params.Get("oauth_consumer_key"))
	assert.Equal(t, "bYT5CMsGcbgUdFHObYMEfcx6bsw=", params.Get("oauth_signature"))
	assert.Len(t, params, 6)
}

func TestParseAuthorizationHeaderKeepsPlus(t *testing.T) {
	params, err := ParseAuthorizationHeader(`oauth oauth_signature="a+b%2Bc"`)
	require.NoError(t, err)
	assert.Equal(t, "a+b+c", params.Get("oauth_signature"))
}

func TestParseAuthorizationHeaderErrors(t *testing.T) {
	for _, bad := range []string{
		`Bearer abc`,
		`OAuth oauth_nonce=unquoted`,
		`OAuth oauth_nonce="%zz"`,
		`OAuth oauth_nonce`,
	} {
		_, err := ParseAuthorizationHeader(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidHeader, bad)
	}
}
