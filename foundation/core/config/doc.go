// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for mRW
//              applications with support for TOML and YAML formats, file
//              discovery, environment variable overrides, validation,
//              hot-reloading, and type-safe access.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-14 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for mRW applications.

Package: config
Title: Core Configuration Management
Description: Provides configuration management for mRW applications with
             support for TOML and YAML formats, environment variable
             overrides, hot-reloading, and type-safe access patterns.
Version: v0.1.0
Created: 2026-07-14
Modified: 2026-07-14

Change History:
- 2026-07-14 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Automatic file discovery in standard locations
  • Environment variable overrides with configurable prefix
  • Configuration validation with structured rules
  • Hot-reloading with change notification callbacks
  • Thread-safe concurrent access
  • mRW error integration with structured error codes

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := rwconfig.Load("mrw.toml")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Type-safe value access with defaults
	level := cfg.GetString("logging.level", "info")
	port := cfg.GetInt("server.port", 8372)
	timeout := cfg.GetDuration("server.timeout", 30*time.Second)

# Advanced Configuration Options

Load with custom options:

	cfg, err := rwconfig.LoadWithOptions("mrw.toml", rwconfig.LoadOptions{
		Format:    rwconfig.FormatAuto,
		EnvPrefix: "MRW",
		Defaults: map[string]interface{}{
			"logging.level":           "info",
			"server.port":             8372,
			"engine.max_input_length": 4096,
		},
		Watch: true, // Enable hot-reloading
	})

# Environment Variable Integration

Configuration values are overridden by environment variables following a
consistent naming convention:

	# mrw.toml
	[engine]
	max_input_length = 4096

	[server]
	bind = "0.0.0.0"
	port = 8372

	# Environment variables (with optional prefix)
	export MRW_SERVER_BIND="127.0.0.1"
	export MRW_SERVER_PORT="9000"

	cfg, _ := rwconfig.LoadWithOptions("mrw.toml", rwconfig.LoadOptions{
		EnvPrefix: "MRW",
	})

	// Environment variables take precedence
	bind := cfg.GetString("server.bind") // Returns "127.0.0.1"
	port := cfg.GetInt("server.port")    // Returns 9000

# Configuration Validation

Validate configuration structure and constraints:

	rules := rwconfig.ValidationRules{
		"server.port": {
			Required: true,
			Type:     "int",
			Min:      1,
			Max:      65535,
		},
		"logging.level": {
			Type:    "string",
			Pattern: `^(trace|debug|info|warn|error|fatal)$`,
			Default: "info",
		},
		"engine.max_input_length": {
			Type: "int",
			Min:  1,
		},
	}

	result := cfg.Validate(rules)
	if !result.Valid {
		for _, msg := range result.Errors {
			log.Error("config validation failed", rwlog.String("error", msg))
		}
	}

# File Discovery

Find configuration files in standard locations without hardcoding paths:

	// Searches ., ./config, /etc/mrw, /usr/local/etc/mrw
	// for mrw.toml, mrw.yaml, config.toml, ...
	cfg, err := rwconfig.Discover()

# Struct Binding

Bind configuration sections directly to structs:

	type ServerConfig struct {
		Bind    string        `config:"bind"`
		Port    int           `config:"port"`
		Timeout time.Duration `config:"timeout"`
	}

	var srv ServerConfig
	if err := cfg.BindToStruct("server", &srv); err != nil {
		return err
	}

# Hot-Reloading

Watch configuration files for changes:

	cfg, err := rwconfig.LoadWithWatch("mrw.toml", func(old, new *rwconfig.Config) {
		log.Info("configuration reloaded",
			rwlog.String("level", new.GetString("logging.level")))
	})
	defer cfg.StopWatching()

All accessors are safe for concurrent use. Set applies runtime-only changes
that are not persisted back to the file and are replaced on the next reload.
*/
package config
