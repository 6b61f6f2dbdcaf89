package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Env                string
	Port               string
	DBURL              string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int

	// Throttling policy: one window and threshold shared by every throttled
	// endpoint.
	ThrottleWindowSec   int
	ThrottleMaxAttempts int

	ConfirmationExpiryHours int
	RecoveryExpiryHours     int
	ResendMaxEmails         int
	ResendCooldownMin       int

	ResendAPIKey    string
	EmailFromName   string
	EmailFrom       string
	ConfirmationURL string
	RecoveryURL     string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		DBURL:              mustGetEnv("DB_URL"),
		AccessTokenSecret:  mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    getEnvAsInt("ACCESS_TOKEN_EXPIRY", 15),
		RefreshExpiryMin:   getEnvAsInt("REFRESH_TOKEN_EXPIRY", 10080),

		ThrottleWindowSec:   getEnvAsInt("THROTTLE_WINDOW_SEC", 10),
		ThrottleMaxAttempts: getEnvAsInt("THROTTLE_MAX_ATTEMPTS", 5),

		ConfirmationExpiryHours: getEnvAsInt("CONFIRMATION_EXPIRY_HOURS", 24),
		RecoveryExpiryHours:     getEnvAsInt("RECOVERY_EXPIRY_HOURS", 24),
		ResendMaxEmails:         getEnvAsInt("RESEND_MAX_EMAILS", 10),
		ResendCooldownMin:       getEnvAsInt("RESEND_COOLDOWN_MIN", 5),

		ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
		EmailFromName:   getEnv("EMAIL_FROM_NAME", "Blogger Platform"),
		EmailFrom:       getEnv("EMAIL_FROM", ""),
		ConfirmationURL: getEnv("CONFIRMATION_URL", "https://localhost/confirm-email"),
		RecoveryURL:     getEnv("RECOVERY_URL", "https://localhost/password-recovery"),
	}
}

func (c *Config) ThrottleWindow() time.Duration {
	return time.Duration(c.ThrottleWindowSec) * time.Second
}

func (c *Config) ConfirmationExpiry() time.Duration {
	return time.Duration(c.ConfirmationExpiryHours) * time.Hour
}

func (c *Config) RecoveryExpiry() time.Duration {
	return time.Duration(c.RecoveryExpiryHours) * time.Hour
}

func (c *Config) ResendCooldown() time.Duration {
	return time.Duration(c.ResendCooldownMin) * time.Minute
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatal().Msgf("missing required environment variable: %s", key)

	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Warn().Msgf("invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}

	return val
}
