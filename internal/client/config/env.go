package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, after
// loading a .env file when one exists in the working directory. The file
// is optional; in production the variables come from the environment.
//
// Variables:
//
//	BASEURL          base URL of the notes backend (required overall)
//	HTTP_TIMEOUT     request timeout in seconds
//	LOG_FORMAT       "json" or "text"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("BASEURL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("HTTP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
