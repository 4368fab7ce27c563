package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type R2Config struct {
	AccountID       string `env:"ACCOUNT_ID"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Bucket          string `env:"BUCKET"`
	PublicURL       string `env:"PUBLIC_URL"`
}

type EmailConfig struct {
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromAddress  string `env:"EMAIL_FROM_ADDRESS" envDefault:"notifications@myweddingdream.co"`
	FromName     string `env:"EMAIL_FROM_NAME" envDefault:"Wedding Dream"`
	HelpInbox    string `env:"HELP_INBOX" envDefault:"info@myweddingdream.co"`
}

type Config struct {
	Port           string `env:"PORT" envDefault:"8080"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"postgres"`
	DatabaseURL    string `env:"DATABASE_URL"`
	JWTSecret      string `env:"JWT_SECRET"`
	CORSOrigins    string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173"`

	R2    R2Config `envPrefix:"R2_"`
	Email EmailConfig
}

func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.StorageBackend == BackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
	}

	return &cfg, nil
}
