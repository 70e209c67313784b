package uploads

import (
	"errors"
	"os"
)

// Config validation errors
var (
	// ErrMissingMediaRoot is returned when MediaRoot is empty
	ErrMissingMediaRoot = errors.New("MediaRoot is required")
	// ErrMissingMediaURL is returned when MediaURL is empty
	ErrMissingMediaURL = errors.New("MediaURL is required")
)

// Config holds the configuration for the upload resolver.
// Media settings are passed in explicitly rather than read from ambient
// global state.
type Config struct {
	// MediaRoot is the filesystem directory uploads are written under.
	MediaRoot string

	// MediaURL is the public base URL uploads are served from
	// (e.g. "/media" or "https://cdn.example.com/media").
	MediaURL string
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.MediaRoot == "" {
		return ErrMissingMediaRoot
	}
	if c.MediaURL == "" {
		return ErrMissingMediaURL
	}
	return nil
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		MediaRoot: "./media",
		MediaURL:  "/media",
	}
}

// ConfigFromEnv creates a Config from environment variables, falling back
// to defaults for any that are unset.
//
// Environment variables:
//   - MEDIA_ROOT: filesystem directory for uploads (default: "./media")
//   - MEDIA_URL: public base URL for uploads (default: "/media")
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("MEDIA_ROOT"); v != "" {
		cfg.MediaRoot = v
	}
	if v := os.Getenv("MEDIA_URL"); v != "" {
		cfg.MediaURL = v
	}

	return cfg
}
