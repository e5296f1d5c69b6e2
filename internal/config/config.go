package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AppEnv        string
	APIBaseURL    string
	SessionSecret string
	DataDir       string
	PollInterval  time.Duration
	AdminOrigin   string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getEnv("APP_PORT", "8080"),
		AppEnv:        os.Getenv("APP_ENV"),
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DataDir:       getEnv("DATA_DIR", "./data"),
		PollInterval:  getDuration("POLL_INTERVAL", 30*time.Second),
		AdminOrigin:   os.Getenv("ADMIN_ORIGIN"),
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is not set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}
