package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port            string
	Env             string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Static site
	PublicDir string
	IndexFile string

	// Deployment marker. Set by the Lambda runtime.
	LambdaFunctionName string

	// AWS
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Contact form
	EmailProvider    string
	ContactRecipient string
	ContactFromEmail string
	ContactFromName  string
	SiteName         string
	SiteURL          string
	DispatchTimeout  time.Duration

	// SendGrid Email Configuration
	SendGridAPIKey string

	CORSAllowedOrigins []string
	MetricsEnabled     bool
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		PublicDir: getEnv("PUBLIC_DIR", ""),
		IndexFile: getEnv("INDEX_FILE", "index.html"),

		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		AWSRegion:           getEnv("AWS_REGION", "eu-north-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		EmailProvider:    strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", ProviderAuto))),
		ContactRecipient: getEnv("CONTACT_RECIPIENT", "rajankit749@gmail.com"),
		ContactFromEmail: getEnv("CONTACT_FROM_EMAIL", "contact@ankitraj.cloud"),
		ContactFromName:  getEnv("CONTACT_FROM_NAME", "Ankit Raj Portfolio"),
		SiteName:         getEnv("SITE_NAME", "ankitraj.cloud"),
		SiteURL:          getEnv("SITE_URL", "https://www.ankitraj.cloud"),
		DispatchTimeout:  getEnvAsDuration("DISPATCH_TIMEOUT", 10*time.Second),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", false),
	}
}

// Email provider names accepted by EMAIL_PROVIDER.
const (
	ProviderAuto     = "auto"
	ProviderSES      = "ses"
	ProviderSendGrid = "sendgrid"
	ProviderLog      = "log"
)

// Serverless reports whether the process runs inside AWS Lambda.
func (c *Config) Serverless() bool {
	return c != nil && strings.TrimSpace(c.LambdaFunctionName) != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
