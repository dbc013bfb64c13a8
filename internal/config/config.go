package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultDSN           = "salon.db"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultExpireMinutes = 60
	defaultPort          = "8080"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTExpiry   time.Duration
	ServerPort  string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDSN),
		JWTSecret:   getEnv("JWT_SECRET", defaultJWTSecret),
		ServerPort:  getEnv("SERVER_PORT", defaultPort),
	}

	minutes := defaultExpireMinutes
	if raw := os.Getenv("JWT_EXPIRE_MINUTES"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRE_MINUTES: %q", raw)
		}
		minutes = v
	}
	cfg.JWTExpiry = time.Duration(minutes) * time.Minute

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
