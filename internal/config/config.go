package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
type Config struct {
	HTTPPort    string
	StoragePath string
	DBPath      string
	Workers     int
	QueueSize   int
	ProgressTTL time.Duration
}

// Load reads an optional .env file and then the environment, falling
// back to defaults that work for local development.
func Load() (Config, error) {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()

	cfg := Config{
		HTTPPort:    envString("HTTP_PORT", ":8080"),
		StoragePath: envString("STORAGE_PATH", "./data"),
		DBPath:      envString("DB_PATH", "students.db"),
	}

	var err error
	if cfg.Workers, err = envInt("WORKERS", 4); err != nil {
		return Config{}, err
	}
	if cfg.QueueSize, err = envInt("QUEUE_SIZE", 100); err != nil {
		return Config{}, err
	}
	if cfg.ProgressTTL, err = envDuration("PROGRESS_TTL", time.Hour); err != nil {
		return Config{}, err
	}

	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("WORKERS must be at least 1, got %d", cfg.Workers)
	}
	if cfg.QueueSize < 1 {
		return Config{}, fmt.Errorf("QUEUE_SIZE must be at least 1, got %d", cfg.QueueSize)
	}
	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
