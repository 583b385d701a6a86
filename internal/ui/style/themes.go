package style

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds the configurable colors. Values are ANSI color
// numbers (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// BaseThemeNames lists theme bases; the dark or light variant is picked
// from the terminal background.
var BaseThemeNames = []string{"default", "mono", "ocean"}

// Themes contains the built-in color themes. Dark variants use bright
// colors and light variants use dark ones.
var Themes = map[string]ColorConfig{
	"default-dark": {
		Success: "10",
		Warning: "11",
		Error:   "9",
		Info:    "14",
		Muted:   "245",
		Header:  "bold",
	},
	"default-light": {
		Success: "28",
		Warning: "130",
		Error:   "124",
		Info:    "27",
		Muted:   "242",
		Header:  "bold",
	},
	// Grayscale only.
	"mono-dark": {
		Success: "255",
		Warning: "250",
		Error:   "bold",
		Info:    "252",
		Muted:   "242",
		Header:  "bold",
	},
	"mono-light": {
		Success: "232",
		Warning: "238",
		Error:   "bold",
		Info:    "235",
		Muted:   "246",
		Header:  "bold",
	},
	"ocean-dark": {
		Success: "79",
		Warning: "222",
		Error:   "204",
		Info:    "117",
		Muted:   "67",
		Header:  "45",
	},
	"ocean-light": {
		Success: "29",
		Warning: "136",
		Error:   "161",
		Info:    "25",
		Muted:   "66",
		Header:  "24",
	},
}

// colorConfigKeys maps config keys to their ColorConfig field.
var colorConfigKeys = map[string]func(*ColorConfig) *string{
	"color_success": func(c *ColorConfig) *string { return &c.Success },
	"color_warning": func(c *ColorConfig) *string { return &c.Warning },
	"color_error":   func(c *ColorConfig) *string { return &c.Error },
	"color_info":    func(c *ColorConfig) *string { return &c.Info },
	"color_muted":   func(c *ColorConfig) *string { return &c.Muted },
	"color_header":  func(c *ColorConfig) *string { return &c.Header },
}

// isDarkBackground is replaced in tests; termenv reports dark when it
// cannot tell.
var isDarkBackground = termenv.HasDarkBackground

// ResolveThemeName appends -dark or -light to a base name.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if isDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from cfg.
// Resolution priority:
//  1. SEALION_COLOR_* environment variable
//  2. color_* config value
//  3. theme from SEALION_THEME or the "theme" config key
//  4. default theme
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := "default"
	if envTheme := os.Getenv("SEALION_THEME"); envTheme != "" {
		themeName = envTheme
	} else if cfgTheme := cfg["theme"]; cfgTheme != "" {
		themeName = cfgTheme
	}

	result, ok := Themes[ResolveThemeName(themeName)]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, field := range colorConfigKeys {
		if v := os.Getenv("SEALION_" + strings.ToUpper(key)); v != "" {
			*field(&result) = v
			continue
		}
		if v := cfg[key]; v != "" {
			*field(&result) = v
		}
	}

	return result
}
