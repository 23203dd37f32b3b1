// Package config holds the command line settings and resolves them from
// config files, environment variables and defaults.
package config

import (
	"fmt"
	"strings"
)

// Output formats for the parse and concrete commands.
const (
	OutputJSON    = "json"
	OutputYAML    = "yaml"
	OutputMsgpack = "msgpack"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Unicode normalization forms applied to input before parsing.
const (
	NormalizeNone = "none"
	NormalizeNFC  = "nfc"
	NormalizeNFD  = "nfd"
)

// Config is the resolved set of settings.
type Config struct {
	// Output is the encoding used by parse and concrete.
	Output string `yaml:"output" toml:"output"`

	// Indent is the number of spaces fmt indents nested lines with.
	Indent int `yaml:"indent" toml:"indent"`

	// Width is the display width fmt tries to keep lists within.
	Width int `yaml:"width" toml:"width"`

	Color string `yaml:"color" toml:"color"`

	// MaxDepth limits nesting; zero disables the limit.
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`

	Normalize string `yaml:"normalize" toml:"normalize"`

	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Output:    OutputJSON,
		Indent:    2,
		Width:     80,
		Color:     ColorAuto,
		MaxDepth:  0,
		Normalize: NormalizeNone,
		LogLevel:  "warn",
	}
}

// ValidationError represents an invalid setting.
type ValidationError struct {
	// Field is the config key (e.g., "output").
	Field string

	// Value is the invalid value.
	Value any

	Message string

	// FilePath is the config file the value came from, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	parts = append(parts, e.Field, fmt.Sprintf("%s (got %v)", e.Message, e.Value))
	return strings.Join(parts, ": ")
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// Validate checks every field and returns the first invalid one.
func (c *Config) Validate() error {
	switch {
	case !oneOf(c.Output, OutputJSON, OutputYAML, OutputMsgpack):
		return &ValidationError{Field: "output", Value: c.Output, Message: "must be one of json, yaml, msgpack"}
	case c.Indent < 0:
		return &ValidationError{Field: "indent", Value: c.Indent, Message: "must not be negative"}
	case c.Width < 1:
		return &ValidationError{Field: "width", Value: c.Width, Message: "must be positive"}
	case !oneOf(c.Color, ColorAuto, ColorAlways, ColorNever):
		return &ValidationError{Field: "color", Value: c.Color, Message: "must be one of auto, always, never"}
	case c.MaxDepth < 0:
		return &ValidationError{Field: "max_depth", Value: c.MaxDepth, Message: "must not be negative"}
	case !oneOf(c.Normalize, NormalizeNone, NormalizeNFC, NormalizeNFD):
		return &ValidationError{Field: "normalize", Value: c.Normalize, Message: "must be one of none, nfc, nfd"}
	case !oneOf(strings.ToLower(c.LogLevel), "debug", "info", "warn", "warning", "error"):
		return &ValidationError{Field: "log_level", Value: c.LogLevel, Message: "must be one of debug, info, warn, error"}
	}
	return nil
}
