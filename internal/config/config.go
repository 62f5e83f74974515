// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvGeminiAPIKey   = "GEMINI_API_KEY"
	EnvGoogleAPIKey   = "GOOGLE_API_KEY"
	EnvModel          = "LUARENAME_MODEL"
	EnvMaxFileBytes   = "LUARENAME_MAX_FILE_BYTES"
	EnvSuggestTimeout = "LUARENAME_SUGGEST_TIMEOUT"
)

// Defaults used when a variable is unset.
const (
	DefaultModel                = "gemini-2.5-flash"
	DefaultMaxFileBytes   int64 = 500_000
	DefaultSuggestTimeout       = 60 * time.Second
)

// Config holds the settings shared by every command.
type Config struct {
	APIKey         string
	Model          string
	MaxFileBytes   int64
	SuggestTimeout time.Duration
}

// HasCredentials reports whether an AI suggestion source can be built.
func (c Config) HasCredentials() bool {
	return c.APIKey != ""
}

// Load reads .env from the working directory when present, then the process
// environment. Variables already set in the environment win over .env.
func Load() (Config, error) {
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		APIKey:         strings.TrimSpace(getenv(EnvGeminiAPIKey)),
		Model:          strings.TrimSpace(getenv(EnvModel)),
		MaxFileBytes:   DefaultMaxFileBytes,
		SuggestTimeout: DefaultSuggestTimeout,
	}

	if cfg.APIKey == "" {
		cfg.APIKey = strings.TrimSpace(getenv(EnvGoogleAPIKey))
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	if raw := strings.TrimSpace(getenv(EnvMaxFileBytes)); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a positive integer", EnvMaxFileBytes, raw)
		}

		cfg.MaxFileBytes = n
	}

	if raw := strings.TrimSpace(getenv(EnvSuggestTimeout)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a positive duration", EnvSuggestTimeout, raw)
		}

		cfg.SuggestTimeout = d
	}

	return cfg, nil
}
