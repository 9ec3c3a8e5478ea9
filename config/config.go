package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBUrl       string
	Environment string
	Port        string

	JWTSecret   string
	TokenExpiry time.Duration

	CORSAllowedOrigins []string

	Email EmailConfig
}

// EmailConfig holds mailer configuration. Provider "ses" sends via AWS SES;
// "noop" (the default) logs instead of sending.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	InsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist; we rely on system environment
	// variables there, so a missing file is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		DBUrl:       os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenExpiry: 24 * time.Hour,
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:          os.Getenv("AWS_REGION"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			InsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}
	if s := os.Getenv("TOKEN_EXPIRY"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.TokenExpiry = d
		} else {
			log.Printf("Warning: invalid TOKEN_EXPIRY %q, using default: %v", s, err)
		}
	}
	if s := os.Getenv("CORS_ALLOWED_ORIGINS"); s != "" {
		for _, o := range strings.Split(s, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	// DATABASE_URL has no default: the server cannot run without its
	// database, so main exits when it is empty.
	return cfg, nil
}
