package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FOLIO_"

// Load layers configuration, lowest precedence first:
//  1. defaults (New)
//  2. PORT, as most PaaS hosts set it
//  3. YAML file named by FOLIO_CONFIG
//  4. FOLIO_* environment variables
func Load() (*Config, error) {
	cfg := New()
	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// FOLIO_SESSION_TTL -> session_ttl
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.TransitionMS <= 0:
		return fmt.Errorf("%w: transition_ms must be positive", ErrInvalidConfig)
	case c.TypingIntervalMS <= 0:
		return fmt.Errorf("%w: typing_interval_ms must be positive", ErrInvalidConfig)
	case c.TypingPauseMS <= 0:
		return fmt.Errorf("%w: typing_pause_ms must be positive", ErrInvalidConfig)
	case c.CursorBlinkMS <= 0:
		return fmt.Errorf("%w: cursor_blink_ms must be positive", ErrInvalidConfig)
	case c.InboxRetention <= 0:
		return fmt.Errorf("%w: inbox_retention must be positive", ErrInvalidConfig)
	case c.SessionTTL <= 0 || c.SessionSweep <= 0:
		return fmt.Errorf("%w: session_ttl and session_sweep must be positive", ErrInvalidConfig)
	}
	return nil
}
