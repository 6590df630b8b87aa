package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    slog.Level

	// RedisURL enables the durable session snapshot. Empty disables
	// persistence; the service then starts every run with no session.
	RedisURL           string
	SessionSnapshotKey string

	// LoginDelay simulates upstream auth latency. Zero in tests.
	LoginDelay time.Duration

	// ChatSeed seeds the canned-response picker. Zero means a
	// time-derived seed.
	ChatSeed int64
}

func LoadConfig() (*Config, error) {
	// .env is optional; real env vars win.
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		RedisURL:           getEnv("REDIS_URL", ""),
		SessionSnapshotKey: getEnv("SESSION_SNAPSHOT_KEY", "ai-buddy-user"),
		LoginDelay:         time.Second,
	}

	switch getEnv("LOG_LEVEL", "info") {
	case "debug":
		cfg.LogLevel = slog.LevelDebug
	case "warn":
		cfg.LogLevel = slog.LevelWarn
	case "error":
		cfg.LogLevel = slog.LevelError
	default:
		cfg.LogLevel = slog.LevelInfo
	}

	if v := os.Getenv("LOGIN_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid LOGIN_DELAY_MS: %q", v)
		}
		cfg.LoginDelay = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("CHAT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CHAT_SEED: %q", v)
		}
		cfg.ChatSeed = seed
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
