// Package common provides shared utilities for StockDeck
package common

import (
	"fmt"
	"os"
	"strconv"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for StockDeck
type Config struct {
	Environment string        `toml:"environment"`
	Server      ServerConfig  `toml:"server"`
	Gateway     GatewayConfig `toml:"gateway"`
	Chat        ChatConfig    `toml:"chat"`
	Charts      ChartsConfig  `toml:"charts"`
	Logging     LoggingConfig `toml:"logging"`
}

// ServerConfig holds the local HTTP host configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// GatewayConfig holds the backend agent-gateway client configuration.
// APIKey is optional; when set it is attached to every outbound request.
type GatewayConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	RateLimit      int    `toml:"rate_limit"`
	Timeout        string `toml:"timeout"`
	RiskLimit      int    `toml:"risk_limit"`
	InventoryLimit int    `toml:"inventory_limit"`
}

// GetTimeout parses and returns the gateway timeout duration
func (c *GatewayConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// ChatConfig holds conversation defaults
type ChatConfig struct {
	DefaultAgent string `toml:"default_agent"`
}

// ChartsConfig holds chart rendering configuration
type ChartsConfig struct {
	Dir  string `toml:"dir"`
	TopN int    `toml:"top_n"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `toml:"level"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 4850,
		},
		Gateway: GatewayConfig{
			BaseURL:        "http://localhost:8000",
			RateLimit:      10,
			Timeout:        "30s",
			RiskLimit:      100,
			InventoryLimit: 100,
		},
		Chat: ChatConfig{
			DefaultAgent: "stockout_sentinel",
		},
		Charts: ChartsConfig{
			Dir:  "data/images",
			TopN: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides.
// Missing files are skipped; later files override earlier ones.
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("STOCKDECK_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("STOCKDECK_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("STOCKDECK_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if url := os.Getenv("STOCKDECK_GATEWAY_URL"); url != "" {
		config.Gateway.BaseURL = url
	}

	if key := os.Getenv("STOCKDECK_GATEWAY_API_KEY"); key != "" {
		config.Gateway.APIKey = key
	}

	if level := os.Getenv("STOCKDECK_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if agent := os.Getenv("STOCKDECK_DEFAULT_AGENT"); agent != "" {
		config.Chat.DefaultAgent = agent
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
