package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Hard limits the dictionary loader enforces regardless of configuration.
const (
	MaxFetchTimeout       = 10 * time.Second
	MaxDictionaryBytes    = 10 << 20
	maxServerPort         = 65535
	minWatchDebounceValue = 10 * time.Millisecond
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}
	if err := c.Dictionary.validate(); err != nil {
		errs = append(errs, fmt.Errorf("dictionary: %w", err))
	}
	if err := c.Log.validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) validate() error {
	if s.Port <= 0 || s.Port > maxServerPort {
		return fmt.Errorf("port must be in 1..%d (got %d)", maxServerPort, s.Port)
	}
	if s.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be > 0 (got %d)", s.MaxBodyBytes)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	if strings.TrimSpace(d.Source) == "" {
		return errors.New("source is required")
	}
	if d.FetchTimeout <= 0 || d.FetchTimeout > MaxFetchTimeout {
		return fmt.Errorf("fetch_timeout must be in (0, %s] (got %s)", MaxFetchTimeout, d.FetchTimeout)
	}
	if d.MaxBytes <= 0 || d.MaxBytes > MaxDictionaryBytes {
		return fmt.Errorf("max_bytes must be in (0, %d] (got %d)", MaxDictionaryBytes, d.MaxBytes)
	}
	if d.RetryAfter < 0 {
		return fmt.Errorf("retry_after must be >= 0 (got %s)", d.RetryAfter)
	}
	if d.Watch && d.WatchDebounce < minWatchDebounceValue {
		return fmt.Errorf("watch_debounce must be >= %s (got %s)", minWatchDebounceValue, d.WatchDebounce)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(validLogLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %v (got %q)", validLogLevels, l.Level)
	}
	if !slices.Contains(validLogFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %v (got %q)", validLogFormats, l.Format)
	}
	return nil
}

// IsRemote reports whether the dictionary source is an HTTP(S) URL.
func (d DictionaryConfig) IsRemote() bool {
	s := strings.ToLower(d.Source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
