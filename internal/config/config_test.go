package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("API_BASE_URL", "http://localhost:8000/api")
		t.Setenv("SESSION_SECRET", "session_secret")
		t.Setenv("DATA_DIR", "/tmp/restofresh")
		t.Setenv("POLL_INTERVAL", "10s")
		t.Setenv("ADMIN_ORIGIN", "http://localhost:3000")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
		assert.Equal(t, "session_secret", cfg.SessionSecret)
		assert.Equal(t, "/tmp/restofresh", cfg.DataDir)
		assert.Equal(t, 10*time.Second, cfg.PollInterval)
		assert.Equal(t, "http://localhost:3000", cfg.AdminOrigin)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://localhost:8000/api")
		t.Setenv("APP_PORT", "")
		t.Setenv("DATA_DIR", "")
		t.Setenv("POLL_INTERVAL", "")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "./data", cfg.DataDir)
		assert.Equal(t, 30*time.Second, cfg.PollInterval)
	})

	t.Run("Invalid poll interval falls back", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://localhost:8000/api")
		t.Setenv("POLL_INTERVAL", "not-a-duration")

		cfg := LoadConfig()

		assert.Equal(t, 30*time.Second, cfg.PollInterval)
	})
}
