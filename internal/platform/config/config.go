// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds all application configuration.
type Config struct {
	// HTTP
	HTTPAddr string `koanf:"http_addr"`

	// Database
	DBHost     string `koanf:"db_host"`
	DBPort     string `koanf:"db_port"`
	DBUser     string `koanf:"db_user"`
	DBPassword string `koanf:"db_password"`
	DBName     string `koanf:"db_name"`

	// Redis (optional; the server degrades to in-process fan-out and
	// uncached ban lookups without it)
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`

	// Auth
	JWTSecret string `koanf:"jwt_secret"`

	// Local storage (bbolt session store)
	DataDir string `koanf:"data_dir"`

	// Pub/sub channel for chat change notifications
	ChatChannel string `koanf:"chat_channel"`
}

// Load reads configuration from environment variables. Env var names
// map directly to koanf tags: HTTP_ADDR → http_addr, and so on.
func Load() (*Config, error) {
	// "." as delimiter keeps env vars with "_" as flat keys instead of
	// nested paths.
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.DBHost == "" {
		c.DBHost = "localhost"
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBUser == "" {
		c.DBUser = "manassa"
	}
	if c.DBName == "" {
		c.DBName = "manassa"
	}
	if c.DataDir == "" {
		c.DataDir = "./data"
	}
	if c.ChatChannel == "" {
		c.ChatChannel = "chat:events"
	}
}
