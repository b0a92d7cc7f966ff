// Package config loads server settings from the environment.
package config

import "os"

const (
	// DefaultAddr is the address the HTTP server listens on.
	DefaultAddr = "0.0.0.0:8080"

	// DefaultListTitle is the title of the served list.
	DefaultListTitle = "Tasks"
)

// Config holds runtime settings.
type Config struct {
	Addr      string
	ListTitle string
	LogLevel  string
	LogFormat string
}

// Load reads TODO_ADDR, TODO_LIST_TITLE, TODO_LOG_LEVEL and TODO_LOG_FORMAT,
// applying defaults for unset variables.
func Load() *Config {
	return &Config{
		Addr:      getenv("TODO_ADDR", DefaultAddr),
		ListTitle: getenv("TODO_LIST_TITLE", DefaultListTitle),
		LogLevel:  getenv("TODO_LOG_LEVEL", "info"),
		LogFormat: getenv("TODO_LOG_FORMAT", "json"),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
