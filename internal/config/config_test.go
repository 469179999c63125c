package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "EMAIL_PROVIDER", "AWS_REGION", "AWS_LAMBDA_FUNCTION_NAME", "CORS_ALLOWED_ORIGINS", "DISPATCH_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ProviderAuto, cfg.EmailProvider)
	assert.Equal(t, "eu-north-1", cfg.AWSRegion)
	assert.Equal(t, "index.html", cfg.IndexFile)
	assert.Equal(t, 10*time.Second, cfg.DispatchTimeout)
	assert.Nil(t, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.Serverless())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("EMAIL_PROVIDER", " SendGrid ")
	t.Setenv("AWS_LAMBDA_FUNCTION_NAME", "portfolio")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("METRICS_ENABLED", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, ProviderSendGrid, cfg.EmailProvider)
	assert.True(t, cfg.Serverless())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("DISPATCH_TIMEOUT", "soon")
	assert.Equal(t, time.Minute, getEnvAsDuration("DISPATCH_TIMEOUT", time.Minute))
}

func TestServerless_NilConfig(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.Serverless())
}
