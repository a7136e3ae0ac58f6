// Package config loads docstruct settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/tsawler/docstruct/layout"
)

// Environment variables read by Load.
const (
	EnvColumnGapThreshold = "DOCSTRUCT_COLUMN_GAP_THRESHOLD"
	EnvMinColumnWidth     = "DOCSTRUCT_MIN_COLUMN_WIDTH"
	EnvHeadingSizeRatio   = "DOCSTRUCT_HEADING_SIZE_RATIO"
	EnvMinHeadingSize     = "DOCSTRUCT_MIN_HEADING_SIZE"
	EnvWorkers            = "DOCSTRUCT_WORKERS"
	EnvLogLevel           = "DOCSTRUCT_LOG_LEVEL"
)

type Config struct {
	// Layout holds the analysis thresholds
	Layout layout.Config

	// Workers bounds concurrent page layout
	Workers int

	LogLevel slog.Level
}

// LoadEnvFile reads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from the environment. Unset or unparsable
// values fall back to the defaults.
func Load() Config {
	def := layout.DefaultConfig()
	cfg := Config{
		Layout: layout.Config{
			ColumnGapThreshold: envFloat(EnvColumnGapThreshold, def.ColumnGapThreshold),
			MinColumnWidth:     envFloat(EnvMinColumnWidth, def.MinColumnWidth),
			HeadingSizeRatio:   envFloat(EnvHeadingSizeRatio, def.HeadingSizeRatio),
			MinHeadingSize:     envFloat(EnvMinHeadingSize, def.MinHeadingSize),
		},
		Workers:  envInt(EnvWorkers, runtime.GOMAXPROCS(0)),
		LogLevel: slog.LevelInfo,
	}

	if lvl, err := ParseLevel(envOr(EnvLogLevel, "info")); err == nil {
		cfg.LogLevel = lvl
	}
	cfg.Layout = cfg.Layout.Normalized()
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	return cfg
}

// ParseLevel parses a log level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return lvl, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return fallback
}
