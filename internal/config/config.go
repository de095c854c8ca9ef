package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds runtime configuration for cps.
type Config struct {
	LogLevel     slog.Level
	HTTPAddr     string
	BusinessDays bool
	ExportDir    string
}

// Default returns a Config with sensible defaults. Logging defaults to warn
// so that command output is not interleaved with log lines.
func Default() Config {
	return Config{
		LogLevel:     slog.LevelWarn,
		HTTPAddr:     "127.0.0.1:8080",
		BusinessDays: false,
		ExportDir:    ".",
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or invalid values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("CPS_LOG_LEVEL"); v != "" {
		if lvl, ok := parseLevel(v); ok {
			cfg.LogLevel = lvl
		}
	}
	if v := os.Getenv("CPS_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("CPS_BUSINESS_DAYS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.BusinessDays = b
		}
	}
	if v := os.Getenv("CPS_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}

	return cfg
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
