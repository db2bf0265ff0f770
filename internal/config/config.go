package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	// Telegram
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN,required"`

	// Mail.tm provider
	MailTmBase  string        `env:"MAILTM_BASE" envDefault:"https://api.mail.tm"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"20s"`

	// Database
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/tempmail.db"`

	// Service classification rules (optional JSON file)
	ServiceRulesPath string `env:"SERVICE_RULES_PATH"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.MailTmBase = strings.TrimRight(strings.TrimSpace(cfg.MailTmBase), "/")
	if cfg.MailTmBase == "" {
		return nil, fmt.Errorf("MAILTM_BASE must not be empty")
	}

	return cfg, nil
}
