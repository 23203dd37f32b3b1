package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither YAML nor
// TOML.
var ErrUnknownFormat = errors.New("unknown config file format")

// configFiles are the file names searched for, in order of preference.
var configFiles = []string{
	".sexpr.yaml",
	".sexpr.yml",
	".sexpr.toml",
}

var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is the directory to search from for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is a config file given with --config. If set, discovery
	// is skipped.
	ExplicitPath string

	// IgnoreEnv skips SEXPR_* environment variables.
	IgnoreEnv bool
}

// LoadResult holds the resolved configuration.
type LoadResult struct {
	Config *Config

	// LoadedFrom is the config file that was read, if any.
	LoadedFrom string
}

// Resolve merges defaults, a config file and the environment, in that
// order of increasing precedence. Command line flags are applied by the
// caller on top of the result.
func Resolve(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Config: Default()}

	path := opts.ExplicitPath
	if path == "" {
		found, err := FindProjectConfig(ctx, opts.WorkingDir)
		if err != nil {
			return nil, err
		}
		path = found
	}

	if path != "" {
		if err := LoadFile(path, result.Config); err != nil {
			return nil, err
		}
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if err := result.Config.Validate(); err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			vErr.FilePath = result.LoadedFrom
		}
		return nil, err
	}

	return result, nil
}

// LoadFile decodes the config file at path over cfg. The format is chosen
// by extension. Unknown keys are rejected.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("parse %s: unknown key %q", path, undecoded[0].String())
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	return nil
}

// FindProjectConfig searches upward from startDir for a config file.
// Returns an empty string if none is found. The search stops at VCS roots
// and at the filesystem root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		for _, name := range configFiles {
			path := filepath.Join(currentDir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(currentDir) {
			return "", nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
