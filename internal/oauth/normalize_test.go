package oauth

import (
	"testing"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
	"github.com/stretchr/testify/assert"
)

// Parameters from RFC 5849 §3.4.1.3, with the decoded values a server sees.
func rfcExampleParams() domain.Params {
	return domain.Params{
		"b5":                     {"=%3D"},
		"a3":                     {"a", "2 q"},
		"c@":                     {""},
		"a2":                     {"r b"},
		"c2":                     {""},
		"oauth_consumer_key":     {"9djdj82h48djs9d2"},
		"oauth_token":            {"kkk9d7dh3k39sjv7"},
		"oauth_signature_method": {"HMAC-SHA1"},
		"oauth_timestamp":        {"137131201"},
		"oauth_nonce":            {"7d8f3e4a"},
	}
}

func TestNormalizedStringRFCExample(t *testing.T) {
	want := "a2=r%20b&a3=2%20q&a3=a&b5=%3D%253D&c%40=&c2=" +
		"&oauth_consumer_key=9djdj82h48djs9d2&oauth_nonce=7d8f3e4a" +
		"&oauth_signature_method=HMAC-SHA1&oauth_timestamp=137131201&oauth_token=kkk9d7dh3k39sjv7"

	assert.Equal(t, want, NormalizedString(rfcExampleParams()))
}

func TestNormalizedStringExcludesSignatureAndSecrets(t *testing.T) {
	params := domain.Params{
		"oauth_signature":    {"abc="},
		"oauth_token_secret": {"s1"},
		"client_secret":      {"s2"},
		"secret":             {"kept"},
		"a":                  {"1"},
	}

	assert.Equal(t, "a=1&secret=kept", NormalizedString(params))
}

func TestNormalizedStringFileReferences(t *testing.T) {
	params := domain.Params{
		"a":      {"1"},
		"upload": {"@/tmp/file.txt"},
		"list":   {"@skip", "keep"},
		"email":  {"user@example.com"},
	}

	assert.Equal(t, "a=1&email=user%40example.com&list=keep", NormalizedString(params))

	keep := NormalizeOptions{KeepFileReferences: true}
	assert.Equal(t,
		"a=1&email=user%40example.com&list=%40skip&list=keep&upload=%40%2Ftmp%2Ffile.txt",
		keep.NormalizedString(params))
}

func TestNormalizedStringListValuesSorted(t *testing.T) {
	params := domain.Params{"k": {"c", "a", "b"}, "j": {"z"}}

	assert.Equal(t, "j=z&k=a&k=b&k=c", NormalizedString(params))
}

func TestNormalizedStringOrderIndependent(t *testing.T) {
	a := domain.Params{}
	a.Add("oauth_nonce", "n")
	a.Add("z", "last")
	a.Add("m", "2")
	a.Add("m", "1")
	a.Add("A", "upper")

	b := domain.Params{}
	b.Add("A", "upper")
	b.Add("m", "1")
	b.Add("m", "2")
	b.Add("z", "last")
	b.Add("oauth_nonce", "n")

	assert.Equal(t, NormalizedString(a), NormalizedString(b))
	assert.Equal(t, "A=upper&m=1&m=2&oauth_nonce=n&z=last", NormalizedString(a))
}

func TestNormalizedStringEmpty(t *testing.T) {
	assert.Equal(t, "", NormalizedString(nil))
	assert.Equal(t, "", NormalizedString(domain.Params{"oauth_signature": {"x"}}))
}
