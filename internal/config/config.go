package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	DefaultSessionTTL  = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost  string
	ServerPort  string
	SessionTTL  time.Duration
	MaxSessions int
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:  getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:  getEnvMust("REVERSI_SERVER_PORT"),
		SessionTTL:  getEnvDuration("REVERSI_SESSION_TTL", DefaultSessionTTL),
		MaxSessions: getEnvInt("REVERSI_MAX_SESSIONS", DefaultMaxSessions),
	}
}

// Address returns the address the server listens on.
func (c *ServerConfig) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive duration", "key", key, "value", value)
		os.Exit(1)
	}

	return duration
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive integer", "key", key, "value", value)
		os.Exit(1)
	}

	return n
}
