// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot-reloading and automatic configuration updates.
// Version: v0.1.0
// Created: 2026-07-14
// Modified: 2026-07-14
//
// Change History:
// - 2026-07-14 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"time"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	rwstringx "github.com/msto63/mRW/foundation/utils/stringx"
)

// startWatching starts monitoring the configuration file for changes
func (c *Config) startWatching() error {
	if rwstringx.IsBlank(c.filePath) {
		return rwerror.New("file path required for watching").
			WithCode(rwerror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	// Simple polling-based watcher (can be enhanced with fsnotify later)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if !c.IsWatching() {
			break
		}

		// Check if file was modified
		fileInfo, err := os.Stat(c.filePath)
		if err != nil {
			// File might have been deleted or moved
			continue
		}

		c.mu.RLock()
		lastModified := c.lastModified
		c.mu.RUnlock()

		if fileInfo.ModTime().After(lastModified) {
			// File was modified, reload configuration
			if err := c.reload(); err != nil {
				// Keep the previous configuration and continue watching
				continue
			}
		}
	}

	return nil
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	// Read and parse the updated file
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return rwerror.Wrap(err, "failed to read config file during reload").
			WithCode(rwerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return rwerror.Wrap(err, "failed to parse config file during reload").
			WithCode(rwerror.CodeInvalidInput).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	c.mu.Lock()
	oldConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	// Update the configuration
	c.data = newData
	fileInfo, _ := os.Stat(c.filePath)
	if fileInfo != nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Snapshot the new state and handlers while the lock is held
	newConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)
	c.mu.Unlock()

	// Notify all watchers outside the lock
	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
