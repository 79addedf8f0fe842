package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cast"
)

// OutputEnv lists the variables a bar may use to name its output, in
// lookup order. They are aliases of a single setting.
var OutputEnv = []string{
	"WAYBAR_OUTPUT",
	"WAYBAR_BAR_OUTPUT",
	"WAYBAR_MONITOR",
	"WAYBAR_OUTPUT_NAME",
}

const (
	DebugEnv      = "HYPR_WINDOW_DEBUG"
	LogFileEnv    = "HYPR_WINDOW_LOG_FILE"
	HyprctlEnv    = "HYPR_WINDOW_HYPRCTL"
	FocusOrderEnv = "HYPR_WINDOW_FOCUS_ORDER"

	DefaultHyprctl = "hyprctl"
)

// FocusOrder decides which end of the focusHistoryID range wins.
type FocusOrder string

const (
	FocusHighest FocusOrder = "highest"
	FocusLowest  FocusOrder = "lowest"
)

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config is resolved once at startup and passed down explicitly.
type Config struct {
	output       string
	outputSource string
	debug        bool
	logFile      string
	hyprctl      string
	focusOrder   FocusOrder

	// Problems found while loading. They never abort startup.
	warnings []string
}

// Load resolves the configuration from lookup. Invalid values fall back to
// their defaults and are reported through Warnings.
func Load(lookup LookupFunc) *Config {
	c := &Config{
		hyprctl:    DefaultHyprctl,
		focusOrder: FocusHighest,
	}

	c.output, c.outputSource = firstNonEmpty(lookup, OutputEnv)

	if v, ok := lookup(DebugEnv); ok && strings.TrimSpace(v) != "" {
		debug, err := cast.ToBoolE(strings.TrimSpace(v))
		if err != nil {
			c.warn("ignoring invalid %s=%q", DebugEnv, v)
		} else {
			c.debug = debug
		}
	}

	if v, ok := lookup(LogFileEnv); ok {
		c.logFile = strings.TrimSpace(v)
	}

	if v, ok := lookup(HyprctlEnv); ok && strings.TrimSpace(v) != "" {
		c.hyprctl = strings.TrimSpace(v)
	}

	if v, ok := lookup(FocusOrderEnv); ok && strings.TrimSpace(v) != "" {
		switch order := FocusOrder(strings.ToLower(strings.TrimSpace(v))); order {
		case FocusHighest, FocusLowest:
			c.focusOrder = order
		default:
			c.warn("ignoring invalid %s=%q, using %s", FocusOrderEnv, v, FocusHighest)
		}
	}

	return c
}

func firstNonEmpty(lookup LookupFunc, keys []string) (value, source string) {
	for _, key := range keys {
		if v, ok := lookup(key); ok && v != "" {
			return v, key
		}
	}
	return "", ""
}

func (c *Config) warn(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// GetOutput returns the requested output name, or "" for the global view.
func (c *Config) GetOutput() string {
	return c.output
}

// GetOutputSource names the variable the output was read from.
func (c *Config) GetOutputSource() string {
	return c.outputSource
}

func (c *Config) IsDebug() bool {
	return c.debug
}

// GetLogLevel maps the debug switch to a zerolog level.
func (c *Config) GetLogLevel(fallback zerolog.Level) zerolog.Level {
	if c.debug {
		return zerolog.DebugLevel
	}
	return fallback
}

func (c *Config) GetLogFile() string {
	return c.logFile
}

// GetHyprctl returns the hyprctl binary name or path.
func (c *Config) GetHyprctl() string {
	return c.hyprctl
}

func (c *Config) GetFocusOrder() FocusOrder {
	return c.focusOrder
}

// Warnings returns a copy of the problems found by Load.
func (c *Config) Warnings() []string {
	return append([]string{}, c.warnings...)
}
