package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultAPIURL = "https://ignitia-1.onrender.com"

type Config struct {
	APIURL      string
	HTTPTimeout time.Duration

	// StateFile holds the persisted token and profile snapshot when no
	// Redis backend is configured.
	StateFile string

	RedisAddr     string
	RedisPassword string

	WebAddr string
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIURL:        getenv("IGNITIA_API_URL", defaultAPIURL),
		StateFile:     os.Getenv("IGNITIA_STATE_FILE"),
		RedisAddr:     os.Getenv("IGNITIA_REDIS_ADDR"),
		RedisPassword: os.Getenv("IGNITIA_REDIS_PASSWORD"),
		WebAddr:       getenv("IGNITIA_WEB_ADDR", "127.0.0.1:8787"),
	}

	timeoutSec, err := getenvInt("IGNITIA_HTTP_TIMEOUT_SEC", 30)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTPTimeout = time.Duration(timeoutSec) * time.Second

	if cfg.StateFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.StateFile = filepath.Join(dir, "ignitia", "session.json")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}
