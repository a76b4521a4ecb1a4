// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/computare/computare-gen/internal/log"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables read by the loader.
const (
	EnvLogLevel      = "COMPUTARE_LOG_LEVEL"
	EnvLogFormat     = "COMPUTARE_LOG_FORMAT"
	EnvNamespace     = "COMPUTARE_NAMESPACE"
	EnvIncludePrefix = "COMPUTARE_INCLUDE_PREFIX"
	EnvEscapeMode    = "COMPUTARE_ESCAPE_MODE"
	EnvCollisions    = "COMPUTARE_COLLISIONS"
	EnvStrict        = "COMPUTARE_STRICT"
	EnvConfigPath    = "COMPUTARE_CONFIG"
)

// EnvPrefix is shared by every variable the loader consumes.
const EnvPrefix = "COMPUTARE_"

// LoadDotEnv merges dir/.env into the process environment. Variables that are
// already set win. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	logger := log.WithComponent("config")
	logger.Debug().Str(log.FieldPath, path).Msg("loaded .env")
	return nil
}

// ParseString reads a string from environment variable or returns default value.
// It logs the source (environment or default) for observability.
func ParseString(key, defaultValue string) string {
	return parseStringWithLogger(log.WithComponent("config"), key, defaultValue)
}

func parseStringWithLogger(logger zerolog.Logger, key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		if value == "" {
			logger.Debug().
				Str("key", key).
				Str("default", defaultValue).
				Str("source", "default").
				Msg("using default value (environment variable is empty)")
			return defaultValue
		}
		logger.Debug().
			Str("key", key).
			Str("value", value).
			Str("source", "environment").
			Msg("using environment variable")
		return value
	}
	logger.Debug().
		Str("key", key).
		Str("default", defaultValue).
		Str("source", "default").
		Msg("using default value")
	return defaultValue
}

// ParseBool reads a boolean from environment variable or returns default value.
// It accepts "true", "false", "1", "0", "yes", "no" (case-insensitive).
func ParseBool(key string, defaultValue bool) bool {
	logger := log.WithComponent("config")
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logger.Debug().
			Str("key", key).
			Bool("default", defaultValue).
			Str("source", "default").
			Msg("using default value")
		return defaultValue
	}
	switch strings.ToLower(v) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		logger.Warn().
			Str("key", key).
			Str("value", v).
			Bool("default", defaultValue).
			Msg("invalid boolean in environment variable, using default")
		return defaultValue
	}
}
