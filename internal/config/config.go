package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// Global option keys
const (
	KeyColumns        = "columns"
	KeyClean          = "clean"
	KeyShowAccelKeyNo = "showAccelKeyNo"
	KeyScreen         = "screen"
)

// AppConfig holds the global launcher options
type AppConfig struct {
	MaxColumns     int
	CleanDefault   bool
	ShowAccelBadge bool
	ScreenIndex    int
}

var DefaultConfig = AppConfig{
	MaxColumns:     6,
	CleanDefault:   false,
	ShowAccelBadge: true,
	ScreenIndex:    0,
}

// OptionError describes a global option with an unusable value
type OptionError struct {
	Key    string
	Value  string
	Reason string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid %s: %q (%s)", e.Key, e.Value, e.Reason)
}

// Config is everything read from one config file
type Config struct {
	Path    string
	App     AppConfig
	Entries []Entry
}

// ParseAppConfig reads the global options. Invalid values keep their default
// and are returned as errors.
func ParseAppConfig(p *Properties) (AppConfig, []error) {
	cfg := DefaultConfig
	var errs []error

	if v, ok := p.Get(KeyColumns); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		switch {
		case err != nil:
			errs = append(errs, &OptionError{Key: KeyColumns, Value: v, Reason: "not a number"})
		case n < 1:
			errs = append(errs, &OptionError{Key: KeyColumns, Value: v, Reason: "must be >= 1"})
		default:
			cfg.MaxColumns = n
		}
	}

	if v, ok := p.Get(KeyScreen); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		switch {
		case err != nil:
			errs = append(errs, &OptionError{Key: KeyScreen, Value: v, Reason: "not a number"})
		case n < 0:
			errs = append(errs, &OptionError{Key: KeyScreen, Value: v, Reason: "must be >= 0"})
		default:
			cfg.ScreenIndex = n
		}
	}

	if v, ok := p.Get(KeyClean); ok {
		cfg.CleanDefault = parseBool(v)
	}
	if v, ok := p.Get(KeyShowAccelKeyNo); ok {
		cfg.ShowAccelBadge = parseBool(v)
	}

	return cfg, errs
}

// parseBool is true only for "true" in any case; everything else is false.
func parseBool(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// LoadConfig loads the file at path and assembles the launcher configuration
func LoadConfig(path string) (*Config, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}

	app, errs := ParseAppConfig(p)
	for _, err := range errs {
		log.Printf("[CONFIG] %v, using default", err)
	}

	entries := AssembleEntries(p)
	log.Printf("[CONFIG] %d entries, columns=%d clean=%v showAccelKeyNo=%v screen=%d",
		len(entries), app.MaxColumns, app.CleanDefault, app.ShowAccelBadge, app.ScreenIndex)

	return &Config{
		Path:    ExpandPath(path),
		App:     app,
		Entries: entries,
	}, nil
}

// ValidateConfig loads the file at path and returns all issues found in it
func ValidateConfig(path string) ([]Issue, error) {
	p, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Check(p), nil
}
