// Package config holds the process configuration for the portfolio server
// and the terminal client.
package config

import (
	"errors"
	"time"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// Config contains every tunable of the site.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// GinMode is passed to gin.SetMode: debug, release or test.
	GinMode string `koanf:"gin_mode"`

	// ContentDir overrides the embedded profile/projects data when set.
	ContentDir string `koanf:"content_dir"`

	// InboxDSN is the sqlite DSN for recorded contact messages.
	InboxDSN string `koanf:"inbox_dsn"`

	// InboxRetention is how long recorded contact messages are kept.
	InboxRetention time.Duration `koanf:"inbox_retention"`

	// ResumeURL is the external resume link shown in the navbar.
	ResumeURL string `koanf:"resume_url"`

	SessionTTL   time.Duration `koanf:"session_ttl"`
	SessionSweep time.Duration `koanf:"session_sweep"`

	TransitionMS     int `koanf:"transition_ms"`
	TypingIntervalMS int `koanf:"typing_interval_ms"`
	TypingPauseMS    int `koanf:"typing_pause_ms"`
	CursorBlinkMS    int `koanf:"cursor_blink_ms"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		Addr:             ":8080",
		LogLevel:         "info",
		GinMode:          "release",
		InboxDSN:         "file:inbox?mode=memory&cache=shared",
		InboxRetention:   365 * 24 * time.Hour,
		SessionTTL:       30 * time.Minute,
		SessionSweep:     time.Minute,
		TransitionMS:     1100,
		TypingIntervalMS: 100,
		TypingPauseMS:    2000,
		CursorBlinkMS:    500,
	}
}

// Transition is the carousel lock duration.
func (c *Config) Transition() time.Duration {
	return time.Duration(c.TransitionMS) * time.Millisecond
}

// TypingInterval is the delay between revealed characters.
func (c *Config) TypingInterval() time.Duration {
	return time.Duration(c.TypingIntervalMS) * time.Millisecond
}

// TypingPause is how long a finished phrase stays on screen.
func (c *Config) TypingPause() time.Duration {
	return time.Duration(c.TypingPauseMS) * time.Millisecond
}

// CursorBlink is the cursor toggle period.
func (c *Config) CursorBlink() time.Duration {
	return time.Duration(c.CursorBlinkMS) * time.Millisecond
}
