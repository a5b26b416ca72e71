package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	TelegramToken   string `yaml:"telegram_token"`
	SupportUsername string `yaml:"support_username"`
	TestMode        bool   `yaml:"test_mode"`
	CardsDir        string `yaml:"cards_dir"`
	DBPath          string `yaml:"db_path"`
	Timezone        string `yaml:"timezone"`
	LogLevel        string `yaml:"log_level"`
	MetricsAddr     string `yaml:"metrics_addr"`
	SendRatePerSec  int    `yaml:"send_rate_per_sec"`
	RevealDelayMs   int    `yaml:"reveal_delay_ms"`
}

// Load reads configuration from a YAML file, applies defaults and environment
// overrides, and validates the result. A missing file is treated as empty so
// the bot can be configured from the environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	applyDefaults(cfg)
	applyEnvironmentOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// GetConfigPath returns the config file path from environment or default.
func GetConfigPath() string {
	if path := os.Getenv("TAROT_BOT_CONFIG"); path != "" {
		return path
	}
	return "./config.yaml"
}

// Location returns the calendar used for daily limits.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// RevealDelay is the pause between the messages of a reading.
func (c *Config) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMs) * time.Millisecond
}

func applyDefaults(cfg *Config) {
	if cfg.SupportUsername == "" {
		cfg.SupportUsername = "@supor_service"
	}
	if cfg.CardsDir == "" {
		cfg.CardsDir = "./cards"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "./usage.db"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SendRatePerSec == 0 {
		cfg.SendRatePerSec = 20
	}
	if cfg.RevealDelayMs == 0 {
		cfg.RevealDelayMs = 350
	}
}

func applyEnvironmentOverrides(cfg *Config) {
	if token := strings.TrimSpace(os.Getenv("BOT_TOKEN")); token != "" {
		cfg.TelegramToken = token
	}
	if support := strings.TrimSpace(os.Getenv("SUPPORT_USERNAME")); support != "" {
		cfg.SupportUsername = support
	}
	if mode := strings.TrimSpace(os.Getenv("TEST_MODE")); mode != "" {
		cfg.TestMode = mode == "1"
	}
	if dir := os.Getenv("TAROT_BOT_CARDS"); dir != "" {
		cfg.CardsDir = dir
	}
	if dbPath := os.Getenv("TAROT_BOT_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.TelegramToken) == "" {
		return fmt.Errorf("telegram_token is required (or set BOT_TOKEN)")
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", cfg.LogLevel)
	}
	if cfg.SendRatePerSec < 0 {
		return fmt.Errorf("send_rate_per_sec must not be negative, got %d", cfg.SendRatePerSec)
	}
	if cfg.RevealDelayMs < 0 {
		return fmt.Errorf("reveal_delay_ms must not be negative, got %d", cfg.RevealDelayMs)
	}
	return nil
}
