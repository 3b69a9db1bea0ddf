package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values. Optional
// integrations (database, email, analytics) are disabled when their keys are
// absent.
type Config struct {
	Port            string
	BaseURL         string
	DatasetPath     string
	CityIndexPath   string
	SiteConfigPath  string
	SubmissionsPath string

	DatabaseURL  string
	ResendAPIKey string
	PosthogKey   string
	PosthogHost  string

	AdminEmail        string
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration

	RateLimitIntake RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		BaseURL:         os.Getenv("BASE_URL"),
		DatasetPath:     getEnv("DATASET_PATH", "data/companies.json"),
		CityIndexPath:   getEnv("CITY_INDEX_PATH", "data/cities-index.json"),
		SiteConfigPath:  getEnv("SITE_CONFIG_PATH", "site.yaml"),
		SubmissionsPath: getEnv("SUBMISSIONS_PATH", "data/submissions.json"),

		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		PosthogKey:   os.Getenv("POSTHOG_KEY"),
		PosthogHost:  getEnv("POSTHOG_HOST", "https://us.i.posthog.com"),

		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:          parseDuration(getEnv("JWT_TTL", "24h")),
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_INTAKE", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_INTAKE value: %w", err)
	}
	cfg.RateLimitIntake = rl

	return cfg, nil
}

// EmailEnabled reports whether outbound notifications are configured.
func (c *Config) EmailEnabled() bool {
	return c.ResendAPIKey != ""
}

// AdminEnabled reports whether the admin surface can issue logins.
func (c *Config) AdminEnabled() bool {
	return c.AdminEmail != "" && c.AdminPasswordHash != ""
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
