// File: discovery.go
// Title: Configuration File Discovery and Environment Loading
// Description: Implements automatic configuration file discovery in standard
//              locations and loading configuration from environment variables.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-14 v0.1.0: Initial implementation with file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	rwstringx "github.com/msto63/mRW/foundation/utils/stringx"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Search paths (default: standard locations)
	Filenames  []string // Base filenames to look for (default: mrw, config)
	Extensions []string // File extensions to try (default: .toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix
	Defaults   map[string]interface{}
	Watch      bool
}

// DefaultDiscoveryOptions returns the standard discovery options
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths: []string{
			".",
			"./config",
			"/etc/mrw",
			"/usr/local/etc/mrw",
		},
		Filenames:  []string{"mrw", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Discover searches for a configuration file in standard locations and loads it
func Discover() (*Config, error) {
	return DiscoverWithOptions(DefaultDiscoveryOptions())
}

// DiscoverWithOptions searches for a configuration file using custom options
func DiscoverWithOptions(options DiscoveryOptions) (*Config, error) {
	filePath, err := FindConfigFile(options)
	if err != nil {
		return nil, err
	}

	return LoadWithOptions(filePath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
		Watch:     options.Watch,
	})
}

// FindConfigFile searches for a configuration file in the specified locations
func FindConfigFile(options DiscoveryOptions) (string, error) {
	if len(options.Paths) == 0 {
		options.Paths = DefaultDiscoveryOptions().Paths
	}
	if len(options.Filenames) == 0 {
		options.Filenames = DefaultDiscoveryOptions().Filenames
	}
	if len(options.Extensions) == 0 {
		options.Extensions = DefaultDiscoveryOptions().Extensions
	}

	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(path, filename+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, nil
				}
			}
		}
	}

	return "", rwerror.New("no configuration file found in search paths").
		WithCode(rwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("paths", strings.Join(options.Paths, ", ")).
		WithDetail("filenames", strings.Join(options.Filenames, ", "))
}

// ListPossibleConfigFiles returns all candidate file paths that would be checked
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	if len(options.Paths) == 0 {
		options.Paths = DefaultDiscoveryOptions().Paths
	}
	if len(options.Filenames) == 0 {
		options.Filenames = DefaultDiscoveryOptions().Filenames
	}
	if len(options.Extensions) == 0 {
		options.Extensions = DefaultDiscoveryOptions().Extensions
	}

	var candidates []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				candidates = append(candidates, filepath.Join(path, filename+ext))
			}
		}
	}
	return candidates
}

// LoadFromEnv creates a configuration from environment variables only.
// All variables with the given prefix are collected, the prefix is stripped,
// and underscores become dots: MRW_SERVER_PORT becomes server.port.
func LoadFromEnv(prefix string) (*Config, error) {
	if rwstringx.IsBlank(prefix) {
		return nil, rwerror.New("environment prefix cannot be empty").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.LoadFromEnv")
	}

	envPrefix := strings.ToUpper(prefix) + "_"
	data := make(map[string]interface{})

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key, value := parts[0], parts[1]
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}

		// Strip prefix and convert to dot notation
		configKey := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		configKey = strings.ReplaceAll(configKey, "_", ".")

		setNestedValue(data, configKey, parseEnvValue(value))
	}

	return &Config{
		data:         data,
		format:       FormatTOML,
		envPrefix:    prefix,
		watchers:     make([]ChangeHandler, 0),
		envCache:     make(map[string]string),
		cacheTimeout: 5 * time.Minute,
		pathCache:    make(map[string][]string),
	}, nil
}

// parseEnvValue attempts to parse an environment value into a typed value
func parseEnvValue(value string) interface{} {
	// Try bool first
	if boolVal, err := strconv.ParseBool(value); err == nil {
		return boolVal
	}

	// Try int
	if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
		return intVal
	}

	// Try float
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}

	// Fall back to string
	return value
}

// setNestedValue sets a value in a nested map using dot notation
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			next = make(map[string]interface{})
			current[k] = next
			current = next
		}
	}
}

// LoadWithWatch loads a configuration file and enables change watching
func LoadWithWatch(filePath string, handler ChangeHandler) (*Config, error) {
	config, err := LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
		Watch:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config with watch: %w", err)
	}

	if handler != nil {
		config.OnChange(handler)
	}

	return config, nil
}
