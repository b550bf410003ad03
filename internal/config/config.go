// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type ServerConfig struct {
	Port        int           `yaml:"port"`
	PublicURL   string        `yaml:"public_url"` // externally reachable base URL for redirect construction
	CallTimeout time.Duration `yaml:"call_timeout"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type SlackConfig struct {
	BotToken           string `yaml:"bot_token"`
	APIBaseURL         string `yaml:"api_base_url"`
	ShortcutCallbackID string `yaml:"shortcut_callback_id"`
}

type StripeConfig struct {
	SecretKey      string `yaml:"secret_key"`
	PublishableKey string `yaml:"publishable_key"`
	APIBaseURL     string `yaml:"api_base_url"`
	Currency       string `yaml:"currency"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Slack  SlackConfig  `yaml:"slack"`
	Stripe StripeConfig `yaml:"stripe"`

	Runtime RuntimeConfig `yaml:"-"`
}

func LoadConfig(path string, dev bool) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	// defaults
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.CallTimeout <= 0 {
		cfg.Server.CallTimeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Slack.APIBaseURL == "" {
		cfg.Slack.APIBaseURL = "https://slack.com/api"
	}
	if cfg.Slack.ShortcutCallbackID == "" {
		cfg.Slack.ShortcutCallbackID = "ryman_charity_donate"
	}
	if cfg.Stripe.APIBaseURL == "" {
		cfg.Stripe.APIBaseURL = "https://api.stripe.com"
	}
	if cfg.Stripe.Currency == "" {
		cfg.Stripe.Currency = "nzd"
	}

	// Minimal validation
	if cfg.Slack.BotToken == "" {
		return nil, errors.New("slack.bot_token is required")
	}
	if cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe.secret_key is required")
	}
	if cfg.Stripe.PublishableKey == "" {
		return nil, errors.New("stripe.publishable_key is required")
	}
	if cfg.Server.PublicURL == "" {
		return nil, errors.New("server.public_url is required")
	}
	if _, err := url.Parse(cfg.Server.PublicURL); err != nil {
		return nil, fmt.Errorf("server.public_url: %w", err)
	}
	cfg.Server.PublicURL = strings.TrimRight(cfg.Server.PublicURL, "/")

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
