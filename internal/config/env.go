package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files (default ".env") into the
// process environment. Missing files are not an error; variables already set
// in the environment win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("config: loading %s: %w", f, err)
		}
	}
	return nil
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvDuration parses the variable as a time.Duration ("90s", "5m").
// Unset or malformed values yield fallback.
func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
