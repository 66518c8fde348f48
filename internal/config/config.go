// Package config reads the client's environment configuration. A .env file
// in the working directory is honored when present.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the client can be configured with.
type Config struct {
	// StreamURL is the event stream endpoint.
	StreamURL string
	// PrefsPath is the local preference database file.
	PrefsPath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
	// UserID identifies the signed-in user for stream authentication when
	// no user record is persisted yet.
	UserID string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() *Config {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	return &Config{
		StreamURL: getEnv("BETHERE_STREAM_URL", "ws://localhost:3001"),
		PrefsPath: getEnv("BETHERE_PREFS_PATH", "bethere.db"),
		LogLevel:  getEnv("BETHERE_LOG_LEVEL", "info"),
		UserID:    getEnv("BETHERE_USER_ID", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
