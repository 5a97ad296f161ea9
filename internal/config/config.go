// Package config handles the completion engine's per-request configuration:
// defaults merged with caller overrides, optional config files for the CLI,
// and expansion of path-mapping target templates.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/pathvana/pathvana/internal/perrors"
)

// SupportedConfigNames contains supported configuration file names (in order
// of preference)
var SupportedConfigNames = []string{
	".pathvana.yml",
	".pathvana.yaml",
	".pathvana.toml",
	".pathvana.json",
}

// CwdProvider computes the base directory for relative path prefixes. It
// receives the identifier of the originating buffer.
type CwdProvider func(buffer string) (string, error)

// Config holds the immutable per-request settings.
type Config struct {
	// TrailingSlash appends the separator to a directory's inserted text.
	TrailingSlash bool `koanf:"trailing_slash" json:"trailing_slash"`
	// LabelTrailingSlash shows the separator on a directory's label.
	// Cosmetic only.
	LabelTrailingSlash bool `koanf:"label_trailing_slash" json:"label_trailing_slash"`
	// PathMappings maps alias tokens to target-path templates. Templates
	// may reference ${folder} for the process working directory.
	PathMappings map[string]string `koanf:"path_mappings" json:"path_mappings"`
	// Cwd provides the base directory for relative prefixes. Defaults to
	// the directory of the originating buffer.
	Cwd CwdProvider `koanf:"-" json:"-"`
}

// Default returns the configuration with all defaults applied.
func Default() *Config {
	return &Config{
		TrailingSlash:      false,
		LabelTrailingSlash: true,
		PathMappings:       map[string]string{},
		Cwd:                BufferRelativeCwd,
	}
}

// BufferRelativeCwd is the default CwdProvider: the directory containing
// the buffer's file, falling back to the process working directory for
// unnamed buffers.
func BufferRelativeCwd(buffer string) (string, error) {
	if buffer != "" {
		return filepath.Dir(buffer), nil
	}
	return os.Getwd()
}

// Merge builds a Config from defaults overlaid with caller overrides. The
// overrides are schema-validated first; a wrong-shaped value is a host
// integration bug and fails loudly with a ConfigurationError.
func Merge(overrides map[string]interface{}) (*Config, error) {
	cfg := Default()
	if len(overrides) == 0 {
		return cfg, nil
	}

	if err := validateShape(overrides); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(overrides)
	if err != nil {
		return nil, perrors.NewConfigurationError("", "failed to encode overrides", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaultsJSON()), kjson.Parser()); err != nil {
		return nil, perrors.NewConfigurationError("", "failed to load defaults", err)
	}
	if err := k.Load(rawbytes.Provider(raw), kjson.Parser()); err != nil {
		return nil, perrors.NewConfigurationError("", "failed to load overrides", err)
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, perrors.NewConfigurationError("", "failed to unmarshal config", err)
	}
	if cfg.PathMappings == nil {
		cfg.PathMappings = map[string]string{}
	}
	cfg.Cwd = BufferRelativeCwd
	return cfg, nil
}

func defaultsJSON() []byte {
	raw, _ := json.Marshal(Default())
	return raw
}

// Load reads and parses a configuration file, merging it over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Determine parser based on file extension
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser

	switch ext {
	case ".yml", ".yaml":
		parser = kyaml.Parser()
	case ".toml":
		parser = toml.Parser()
	case ".json":
		parser = kjson.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := validateShape(k.Raw()); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, perrors.NewConfigurationError("", "failed to unmarshal config", err)
	}
	if cfg.PathMappings == nil {
		cfg.PathMappings = map[string]string{}
	}
	cfg.Cwd = BufferRelativeCwd
	return cfg, nil
}

// HasLocalConfig checks if a directory has a configuration file
func HasLocalConfig(dir string) bool {
	return FindConfig(dir) != ""
}

// FindConfig returns the path of the directory's configuration file, or ""
// when none exists.
func FindConfig(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
