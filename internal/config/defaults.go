package config

import (
	"github.com/footprint-tools/sealion/internal/log"
	"github.com/footprint-tools/sealion/internal/paths"
)

// Defaults holds values used when a key is not in the config file.
var Defaults = map[string]func() string{
	"routes_file":   func() string { return paths.RoutesFilePath() },
	"suggestions":   func() string { return "3" },
	"theme":         func() string { return "default" },
	"pager":         func() string { return "less -FRSX" },
	"display_date":  func() string { return "yyyy-mm-dd" },
	"display_time":  func() string { return "24h" },
	"enable_log":    func() string { return "true" },
	"log_level":     func() string { return "warn" },
	"history":       func() string { return "true" },
	"history_limit": func() string { return "500" },
	"color_success": func() string { return "" }, // uses theme default
	"color_warning": func() string { return "" }, // uses theme default
	"color_error":   func() string { return "" }, // uses theme default
	"color_info":    func() string { return "" }, // uses theme default
	"color_muted":   func() string { return "" }, // uses theme default
	"color_header":  func() string { return "" }, // uses theme default
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	cfg, err := load()
	if err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values (user overrides merged with defaults).
// A missing or unreadable file yields the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, valueFn := range Defaults {
		result[key] = valueFn()
	}

	cfg, err := load()
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

func load() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		log.Warn("config: read: %v", err)
		return nil, err
	}
	cfg, err := Parse(lines)
	if err != nil {
		log.Warn("%v; using defaults", err)
		return nil, err
	}
	return cfg, nil
}
