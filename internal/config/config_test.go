package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("LTI_CONSUMER_KEY", "mykey")
	t.Setenv("LTI_SHARED_SECRET", "mysecretcode")
	t.Setenv("LTI_LAUNCH_URL", "https://tool.example.com/lti/launch")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "POST", cfg.HTTPMethod)
	assert.Equal(t, 24*time.Hour, cfg.TimestampTolerance)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 100, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.False(t, cfg.KeepFileReferences)

	v := cfg.NewValidator()
	assert.Equal(t, "https://tool.example.com/lti/launch", v.LaunchURL())
	assert.Equal(t, "POST", v.Action())
}

func TestLoadConfigOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LTI_HTTP_METHOD", "get")
	t.Setenv("LTI_TIMESTAMP_TOLERANCE", "5m")
	t.Setenv("LTI_KEEP_FILE_REFERENCES", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "GET", cfg.HTTPMethod)
	assert.Equal(t, 5*time.Minute, cfg.TimestampTolerance)
	assert.True(t, cfg.ValidatorConfig().KeepFileReferences)
}

func TestLoadConfigRequired(t *testing.T) {
	for _, name := range []string{"LTI_CONSUMER_KEY", "LTI_SHARED_SECRET", "LTI_LAUNCH_URL"} {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(name, "")

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := map[string]string{
		"LTI_LAUNCH_URL":          "/relative",
		"LTI_HTTP_METHOD":         "P0ST",
		"LTI_TIMESTAMP_TOLERANCE": "-1h",
		"RATE_LIMIT_RPS":          "0",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(name, value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
