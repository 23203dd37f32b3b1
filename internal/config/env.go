package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
)

// envVarPrefix is the prefix for all sexpr environment variables.
const envVarPrefix = "SEXPR_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
)

type envMapping struct {
	typ         envFieldType
	description string
	str         func(*Config) *string
	num         func(*Config) *int
}

var envMappings = map[string]envMapping{
	"OUTPUT": {
		typ: envTypeString, description: "Output format: json, yaml or msgpack",
		str: func(c *Config) *string { return &c.Output },
	},
	"INDENT": {
		typ: envTypeInt, description: "Spaces per indentation level used by fmt",
		num: func(c *Config) *int { return &c.Indent },
	},
	"WIDTH": {
		typ: envTypeInt, description: "Display width used by fmt",
		num: func(c *Config) *int { return &c.Width },
	},
	"COLOR": {
		typ: envTypeString, description: "Colorize output: auto, always or never",
		str: func(c *Config) *string { return &c.Color },
	},
	"MAX_DEPTH": {
		typ: envTypeInt, description: "Maximum nesting depth (0 = unlimited)",
		num: func(c *Config) *int { return &c.MaxDepth },
	},
	"NORMALIZE": {
		typ: envTypeString, description: "Unicode normalization of input: none, nfc or nfd",
		str: func(c *Config) *string { return &c.Normalize },
	},
	"LOG_LEVEL": {
		typ: envTypeString, description: "Log level: debug, info, warn or error",
		str: func(c *Config) *string { return &c.LogLevel },
	},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with SEXPR_ (e.g., SEXPR_OUTPUT).
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, mapping := range envMappings {
		envVar := envVarPrefix + suffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		switch mapping.typ {
		case envTypeString:
			*mapping.str(cfg) = value
		case envTypeInt:
			i, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer for %s: %q", envVar, value)
			}
			*mapping.num(cfg) = i
		}
	}

	return nil
}

// ListEnvVars returns every supported environment variable, sorted, with
// its description.
func ListEnvVars() [][2]string {
	names := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		names = append(names, suffix)
	}
	sort.Strings(names)

	out := make([][2]string, 0, len(names))
	for _, suffix := range names {
		out = append(out, [2]string{envVarPrefix + suffix, envMappings[suffix].description})
	}
	return out
}
