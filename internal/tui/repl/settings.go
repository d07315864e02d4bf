// ============================================================================
// meinRECHENWERK (mRW) - Lokale Rechenplattform
// ============================================================================
//
// Package:     repl
// Description: Settings persistence for the REPL input history
// Created:     2026-07-23
// License:     MIT
// ============================================================================

package repl

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds persistent REPL settings. Variable bindings are not part
// of the settings; the environment lives only for the session.
type Settings struct {
	InputHistory []string `json:"input_history,omitempty"`
}

// settingsDir returns the directory for settings files
func settingsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mrw"
	}
	return filepath.Join(home, ".mrw")
}

// settingsFile returns the path to the settings file
func settingsFile() string {
	return filepath.Join(settingsDir(), "repl.json")
}

// LoadSettings loads settings from disk
func LoadSettings() (*Settings, error) {
	data, err := os.ReadFile(settingsFile())
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, err
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return &Settings{}, nil
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(settings *Settings) error {
	dir := settingsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(settingsFile(), data, 0644)
}

// SaveInputHistory saves the input history
func SaveInputHistory(history []string) error {
	settings, _ := LoadSettings()
	// Maximal 100 Einträge speichern
	if len(history) > 100 {
		history = history[len(history)-100:]
	}
	settings.InputHistory = history
	return SaveSettings(settings)
}

// LoadInputHistory loads the input history
func LoadInputHistory() []string {
	settings, err := LoadSettings()
	if err != nil || len(settings.InputHistory) == 0 {
		return []string{}
	}
	return settings.InputHistory
}
