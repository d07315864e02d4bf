// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for the config module covering TOML/YAML parsing,
//              environment variable overrides, validation, discovery, struct
//              binding, and core configuration management functionality.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-14 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Create temporary directory for test files
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.toml")
		configContent := `
[engine]
max_input_length = 4096

[server]
bind = "0.0.0.0"
port = 8372
timeout = "30s"
allowed_origins = ["http://localhost:3000", "app://mrw"]

[repl]
show_positions = true
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// Test string values
		if bind := cfg.GetString("server.bind"); bind != "0.0.0.0" {
			t.Errorf("Expected bind '0.0.0.0', got '%s'", bind)
		}

		// Test integer values
		if port := cfg.GetInt("server.port"); port != 8372 {
			t.Errorf("Expected port 8372, got %d", port)
		}

		// Test boolean values
		if show := cfg.GetBool("repl.show_positions"); !show {
			t.Errorf("Expected show_positions true, got %v", show)
		}

		// Test duration values
		if timeout := cfg.GetDuration("server.timeout"); timeout != 30*time.Second {
			t.Errorf("Expected timeout 30s, got %v", timeout)
		}

		// Test string slice values
		origins := cfg.GetStringSlice("server.allowed_origins")
		expectedOrigins := []string{"http://localhost:3000", "app://mrw"}
		if len(origins) != len(expectedOrigins) {
			t.Errorf("Expected %d origins, got %d", len(expectedOrigins), len(origins))
		}
		for i, origin := range origins {
			if origin != expectedOrigins[i] {
				t.Errorf("Expected origin '%s', got '%s'", expectedOrigins[i], origin)
			}
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "test.yaml")
		configContent := `
engine:
  max_input_length: 4096

server:
  bind: 0.0.0.0
  port: 8372
  timeout: 30s
  allowed_origins:
    - http://localhost:3000
    - app://mrw
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// Test values same as TOML test
		if bind := cfg.GetString("server.bind"); bind != "0.0.0.0" {
			t.Errorf("Expected bind '0.0.0.0', got '%s'", bind)
		}

		if port := cfg.GetInt("server.port"); port != 8372 {
			t.Errorf("Expected port 8372, got %d", port)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := Load("nonexistent.toml")
		if err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if err == nil {
			t.Error("Expected error for blank path")
		}
	})
}

func TestEnvironmentVariables(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `
[server]
bind = "0.0.0.0"
port = 8372
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Set environment variables
	os.Setenv("MRW_SERVER_BIND", "127.0.0.1")
	os.Setenv("MRW_SERVER_PORT", "9000")
	defer func() {
		os.Unsetenv("MRW_SERVER_BIND")
		os.Unsetenv("MRW_SERVER_PORT")
	}()

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		EnvPrefix: "MRW",
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Environment variables should override config values
	if bind := cfg.GetString("server.bind"); bind != "127.0.0.1" {
		t.Errorf("Expected bind '127.0.0.1' from env var, got '%s'", bind)
	}

	if port := cfg.GetInt("server.port"); port != 9000 {
		t.Errorf("Expected port 9000 from env var, got %d", port)
	}
}

func TestDefaults(t *testing.T) {
	t.Run("with default values", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.toml")
		configContent := `
[server]
bind = "0.0.0.0"
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := Load(configPath)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		// Test default values for missing keys
		if port := cfg.GetInt("server.port", 8372); port != 8372 {
			t.Errorf("Expected default port 8372, got %d", port)
		}

		if show := cfg.GetBool("repl.show_positions", true); !show {
			t.Errorf("Expected default show_positions true, got %v", show)
		}

		if timeout := cfg.GetDuration("server.timeout", 30*time.Second); timeout != 30*time.Second {
			t.Errorf("Expected default timeout 30s, got %v", timeout)
		}

		if scale := cfg.GetFloat("engine.scale", 1.0); scale != 1.0 {
			t.Errorf("Expected default scale 1.0, got %v", scale)
		}
	})

	t.Run("load options defaults", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "test.toml")
		configContent := `
[logging]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadWithOptions(configPath, LoadOptions{
			Defaults: map[string]interface{}{
				"fallback": "value",
			},
		})
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if v := cfg.GetString("fallback"); v != "value" {
			t.Errorf("Expected default 'value', got '%s'", v)
		}

		// File values win over defaults
		if level := cfg.GetString("logging.level"); level != "debug" {
			t.Errorf("Expected level 'debug' from file, got '%s'", level)
		}
	})
}

func TestHasAndSet(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `
[server]
bind = "0.0.0.0"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	// Test Has method
	if !cfg.Has("server.bind") {
		t.Error("Expected server.bind to exist")
	}

	if cfg.Has("server.port") {
		t.Error("Expected server.port to not exist")
	}

	// Test Set method
	cfg.Set("server.port", 8372)
	if !cfg.Has("server.port") {
		t.Error("Expected server.port to exist after Set")
	}

	if port := cfg.GetInt("server.port"); port != 8372 {
		t.Errorf("Expected port 8372 after Set, got %d", port)
	}

	// Test nested Set
	cfg.Set("repl.theme.prompt.color", "blue")
	if value := cfg.GetString("repl.theme.prompt.color"); value != "blue" {
		t.Errorf("Expected nested value 'blue', got '%s'", value)
	}
}

func TestGetAll(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `
[server]
bind = "0.0.0.0"
port = 8372

[engine]
max_input_length = 4096
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	all := cfg.GetAll()

	// Check that data structure is preserved
	if server, ok := all["server"].(map[string]interface{}); ok {
		if bind, ok := server["bind"].(string); !ok || bind != "0.0.0.0" {
			t.Errorf("Expected bind '0.0.0.0', got '%v'", server["bind"])
		}
	} else {
		t.Error("Expected server section to be a map")
	}

	// The copy must not alias internal state
	all["server"].(map[string]interface{})["bind"] = "tampered"
	if bind := cfg.GetString("server.bind"); bind != "0.0.0.0" {
		t.Errorf("GetAll copy aliases internal state, bind changed to '%s'", bind)
	}
}

func TestLoadFromString(t *testing.T) {
	t.Run("TOML string", func(t *testing.T) {
		configContent := `
[server]
bind = "0.0.0.0"
port = 8372
`
		cfg, err := LoadFromString(configContent, FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config from string: %v", err)
		}

		if bind := cfg.GetString("server.bind"); bind != "0.0.0.0" {
			t.Errorf("Expected bind '0.0.0.0', got '%s'", bind)
		}
	})

	t.Run("YAML string", func(t *testing.T) {
		configContent := `
server:
  bind: 0.0.0.0
  port: 8372
`
		cfg, err := LoadFromString(configContent, FormatYAML)
		if err != nil {
			t.Fatalf("Failed to load config from string: %v", err)
		}

		if bind := cfg.GetString("server.bind"); bind != "0.0.0.0" {
			t.Errorf("Expected bind '0.0.0.0', got '%s'", bind)
		}
	})

	t.Run("invalid TOML", func(t *testing.T) {
		_, err := LoadFromString("[server\nbind = ", FormatTOML)
		if err == nil {
			t.Error("Expected error for malformed TOML")
		}
	})
}

func TestFormatDetection(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"mrw.toml", FormatTOML},
		{"mrw.yaml", FormatYAML},
		{"mrw.yml", FormatYAML},
		{"mrw.txt", FormatTOML}, // Default fallback
		{"mrw", FormatTOML},     // Default fallback
	}

	for _, test := range tests {
		t.Run(test.filename, func(t *testing.T) {
			format := detectFormat(test.filename)
			if format != test.expected {
				t.Errorf("Expected format %v for %s, got %v", test.expected, test.filename, format)
			}
		})
	}
}

func TestFilePathAndFormat(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test.toml")
	configContent := `[test]
value = "test"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.FilePath() != configPath {
		t.Errorf("Expected file path '%s', got '%s'", configPath, cfg.FilePath())
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("Expected format TOML, got %v", cfg.Format())
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(`
[server]
port = 8372
bind = "0.0.0.0"

[logging]
level = "info"
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	t.Run("valid configuration", func(t *testing.T) {
		rules := ValidationRules{
			"server.port": {
				Required: true,
				Type:     "int",
				Min:      1,
				Max:      65535,
			},
			"logging.level": {
				Type:    "string",
				Pattern: `^(trace|debug|info|warn|error|fatal)$`,
			},
		}

		result := cfg.Validate(rules)
		if !result.Valid {
			t.Errorf("Expected valid config, got errors: %v", result.Errors)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		rules := ValidationRules{
			"server.tls_cert": {
				Required: true,
				Type:     "string",
			},
		}

		result := cfg.Validate(rules)
		if result.Valid {
			t.Error("Expected validation to fail for missing required field")
		}
		if len(result.Errors) != 1 {
			t.Errorf("Expected 1 error, got %d", len(result.Errors))
		}
	})

	t.Run("out of range value", func(t *testing.T) {
		outOfRange, err := LoadFromString(`
[server]
port = 70000
`, FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"server.port": {
				Type: "int",
				Min:  1,
				Max:  65535,
			},
		}

		result := outOfRange.Validate(rules)
		if result.Valid {
			t.Error("Expected validation to fail for port 70000")
		}
	})

	t.Run("pattern mismatch", func(t *testing.T) {
		badLevel, err := LoadFromString(`
[logging]
level = "loud"
`, FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"logging.level": {
				Type:    "string",
				Pattern: `^(trace|debug|info|warn|error|fatal)$`,
			},
		}

		result := badLevel.Validate(rules)
		if result.Valid {
			t.Error("Expected validation to fail for level 'loud'")
		}
	})

	t.Run("default applied for missing field", func(t *testing.T) {
		sparse, err := LoadFromString(`
[server]
port = 8372
`, FormatTOML)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		rules := ValidationRules{
			"logging.level": {
				Type:    "string",
				Default: "info",
			},
		}

		result := sparse.Validate(rules)
		if !result.Valid {
			t.Errorf("Expected valid config, got errors: %v", result.Errors)
		}

		if level := sparse.GetString("logging.level"); level != "info" {
			t.Errorf("Expected default 'info' applied, got '%s'", level)
		}
	})
}

func TestBindToStruct(t *testing.T) {
	type serverConfig struct {
		Bind           string        `config:"bind"`
		Port           int           `config:"port"`
		Timeout        time.Duration `config:"timeout"`
		Debug          bool          `config:"debug"`
		AllowedOrigins []string      `config:"allowed_origins"`
	}

	cfg, err := LoadFromString(`
[server]
bind = "127.0.0.1"
port = 8372
timeout = "45s"
debug = true
allowed_origins = ["http://localhost:3000"]
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var srv serverConfig
	if err := cfg.BindToStruct("server", &srv); err != nil {
		t.Fatalf("Failed to bind struct: %v", err)
	}

	if srv.Bind != "127.0.0.1" {
		t.Errorf("Expected bind '127.0.0.1', got '%s'", srv.Bind)
	}
	if srv.Port != 8372 {
		t.Errorf("Expected port 8372, got %d", srv.Port)
	}
	if srv.Timeout != 45*time.Second {
		t.Errorf("Expected timeout 45s, got %v", srv.Timeout)
	}
	if !srv.Debug {
		t.Errorf("Expected debug true, got %v", srv.Debug)
	}
	if len(srv.AllowedOrigins) != 1 || srv.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("Expected one allowed origin, got %v", srv.AllowedOrigins)
	}

	t.Run("non-pointer target", func(t *testing.T) {
		var bad serverConfig
		if err := cfg.BindToStruct("server", bad); err == nil {
			t.Error("Expected error for non-pointer target")
		}
	})

	t.Run("missing section leaves zero values", func(t *testing.T) {
		var missing serverConfig
		if err := cfg.BindToStruct("nonexistent", &missing); err != nil {
			t.Errorf("Expected no error for missing section, got %v", err)
		}
		if missing.Port != 0 {
			t.Errorf("Expected zero port, got %d", missing.Port)
		}
	})
}

func TestFindConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "mrw.toml")
	if err := os.WriteFile(configPath, []byte("[server]\nport = 8372\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Run("file found", func(t *testing.T) {
		found, err := FindConfigFile(DiscoveryOptions{
			Paths: []string{tempDir},
		})
		if err != nil {
			t.Fatalf("Expected config file to be found: %v", err)
		}
		if found != configPath {
			t.Errorf("Expected '%s', got '%s'", configPath, found)
		}
	})

	t.Run("no file found", func(t *testing.T) {
		emptyDir := t.TempDir()
		_, err := FindConfigFile(DiscoveryOptions{
			Paths: []string{emptyDir},
		})
		if err == nil {
			t.Error("Expected error when no config file exists")
		}
	})

	t.Run("candidate listing", func(t *testing.T) {
		candidates := ListPossibleConfigFiles(DiscoveryOptions{
			Paths:      []string{"."},
			Filenames:  []string{"mrw"},
			Extensions: []string{".toml", ".yaml"},
		})
		if len(candidates) != 2 {
			t.Errorf("Expected 2 candidates, got %d", len(candidates))
		}
	})
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("MRWTEST_LOGGING_LEVEL", "debug")
	os.Setenv("MRWTEST_SERVER_PORT", "9000")
	os.Setenv("MRWTEST_REPL_COLOR", "true")
	defer func() {
		os.Unsetenv("MRWTEST_LOGGING_LEVEL")
		os.Unsetenv("MRWTEST_SERVER_PORT")
		os.Unsetenv("MRWTEST_REPL_COLOR")
	}()

	cfg, err := LoadFromEnv("MRWTEST")
	if err != nil {
		t.Fatalf("Failed to load config from env: %v", err)
	}

	if level := cfg.GetString("logging.level"); level != "debug" {
		t.Errorf("Expected level 'debug', got '%s'", level)
	}
	if port := cfg.GetInt("server.port"); port != 9000 {
		t.Errorf("Expected port 9000, got %d", port)
	}
	if color := cfg.GetBool("repl.color"); !color {
		t.Errorf("Expected color true, got %v", color)
	}

	t.Run("empty prefix rejected", func(t *testing.T) {
		if _, err := LoadFromEnv("  "); err == nil {
			t.Error("Expected error for blank prefix")
		}
	})
}

func BenchmarkGetString(b *testing.B) {
	tempDir := b.TempDir()
	configPath := filepath.Join(tempDir, "bench.toml")
	configContent := `
[server]
bind = "0.0.0.0"
port = 8372
timeout = "30s"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		b.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetString("server.bind")
	}
}

func BenchmarkGetInt(b *testing.B) {
	tempDir := b.TempDir()
	configPath := filepath.Join(tempDir, "bench.toml")
	configContent := `
[server]
bind = "0.0.0.0"
port = 8372
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		b.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		b.Fatalf("Failed to load config: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.GetInt("server.port")
	}
}
