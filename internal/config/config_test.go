package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPPort)
	assert.Equal(t, "./data", cfg.StoragePath)
	assert.Equal(t, "students.db", cfg.DBPath)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 100, cfg.QueueSize)
	assert.Equal(t, time.Hour, cfg.ProgressTTL)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("STORAGE_PATH", "/var/data")
	t.Setenv("DB_PATH", "/var/db/students.db")
	t.Setenv("WORKERS", "8")
	t.Setenv("QUEUE_SIZE", "50")
	t.Setenv("PROGRESS_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPPort)
	assert.Equal(t, "/var/data", cfg.StoragePath)
	assert.Equal(t, "/var/db/students.db", cfg.DBPath)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 50, cfg.QueueSize)
	assert.Equal(t, 30*time.Minute, cfg.ProgressTTL)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("non-numeric workers", func(t *testing.T) {
		t.Setenv("WORKERS", "many")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("WORKERS", "0")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("PROGRESS_TTL", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero queue", func(t *testing.T) {
		t.Setenv("QUEUE_SIZE", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
