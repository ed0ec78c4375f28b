// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port           string
	AllowedOrigins []string
	DBPath         string

	Model   ModelConfig
	SMTP    SMTPConfig
	Booking BookingConfig

	// ContactWindow is the duplicate-submission window for the
	// contact form; GuardSweepInterval is how often stale guard
	// entries are purged.
	ContactWindow      time.Duration
	GuardSweepInterval time.Duration
}

// ModelConfig configures the generative model gateway.
type ModelConfig struct {
	APIKey  string
	Name    string
	BaseURL string
	UseMock bool
}

// SMTPConfig configures the mail gateway. An empty Host disables
// sending; notifications are logged instead.
type SMTPConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	BusinessEmail string
}

// BookingConfig configures the booking workflow.
type BookingConfig struct {
	SchedulingURL string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		DBPath:         getEnv("DB_PATH", "./data/assistant.db"),
		Model: ModelConfig{
			APIKey:  getEnv("MODEL_API_KEY", ""),
			Name:    getEnv("MODEL_NAME", "gemini-2.0-flash"),
			BaseURL: getEnv("MODEL_BASE_URL", ""),
			UseMock: getEnvBool("MODEL_USE_MOCK", false),
		},
		SMTP: SMTPConfig{
			Host:          getEnv("SMTP_HOST", ""),
			Port:          getEnvInt("SMTP_PORT", 587),
			Username:      getEnv("SMTP_USERNAME", ""),
			Password:      getEnv("SMTP_PASSWORD", ""),
			From:          getEnv("SMTP_FROM", "hello@summitcoaching.example"),
			BusinessEmail: getEnv("BUSINESS_EMAIL", "team@summitcoaching.example"),
		},
		Booking: BookingConfig{
			SchedulingURL: getEnv("SCHEDULING_URL", "https://calendly.com/summit-coaching"),
		},
		ContactWindow:      getEnvDuration("CONTACT_DUPLICATE_WINDOW", 5*time.Minute),
		GuardSweepInterval: getEnvDuration("GUARD_SWEEP_INTERVAL", 10*time.Minute),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if !c.Model.UseMock && c.Model.APIKey == "" {
		return fmt.Errorf("MODEL_API_KEY is required unless MODEL_USE_MOCK is set")
	}
	if c.SMTP.Host != "" && (c.SMTP.Username == "" || c.SMTP.Password == "") {
		return fmt.Errorf("SMTP_USERNAME and SMTP_PASSWORD are required when SMTP_HOST is set")
	}
	if c.ContactWindow <= 0 {
		return fmt.Errorf("CONTACT_DUPLICATE_WINDOW must be > 0")
	}
	if c.GuardSweepInterval <= 0 {
		return fmt.Errorf("GUARD_SWEEP_INTERVAL must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
