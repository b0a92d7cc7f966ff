package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // restores the original value on cleanup
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "TODO_ADDR", "TODO_LIST_TITLE", "TODO_LOG_LEVEL", "TODO_LOG_FORMAT")

	cfg := Load()
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultListTitle, cfg.ListTitle)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EmptyTitleIsKept(t *testing.T) {
	t.Setenv("TODO_LIST_TITLE", "")
	assert.Equal(t, "", Load().ListTitle)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TODO_ADDR", "127.0.0.1:9000")
	t.Setenv("TODO_LIST_TITLE", "Groceries")
	t.Setenv("TODO_LOG_LEVEL", "debug")
	t.Setenv("TODO_LOG_FORMAT", "text")

	cfg := Load()
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "Groceries", cfg.ListTitle)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}
