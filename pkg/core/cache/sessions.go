package cache

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// SessionCache is a specialized cache for evaluation sessions. Idle sessions
// expire after the configured TTL; every access renews the deadline.
type SessionCache struct {
	cache      *Cache
	sessionTTL time.Duration
}

// SessionConfig holds configuration for the session cache
type SessionConfig struct {
	SessionTTL  time.Duration // TTL for idle sessions (default: 30 minutes)
	MaxSessions int           // Max concurrent sessions (default: 1000)
}

// DefaultSessionConfig returns default session cache configuration
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		SessionTTL:  30 * time.Minute,
		MaxSessions: 1000,
	}
}

// NewSessionCache creates a new session cache
func NewSessionCache(cfg SessionConfig) *SessionCache {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}

	return &SessionCache{
		cache: New(Config{
			MaxItems: cfg.MaxSessions,
			TTL:      cfg.SessionTTL,
		}),
		sessionTTL: cfg.SessionTTL,
	}
}

// sessionKey namespaces session identifiers within the underlying cache
func sessionKey(id string) string {
	return "session:" + id
}

// Get retrieves a session and renews its idle deadline
func (c *SessionCache) Get(id string) (interface{}, bool) {
	val, ok := c.cache.Get(sessionKey(id))
	if ok {
		// Touch is a no-op if the session was removed in between, so a
		// concurrent Remove cannot be undone by the renewal.
		c.cache.Touch(sessionKey(id), c.sessionTTL)
	}
	return val, ok
}

// Put stores a session under its identifier
func (c *SessionCache) Put(id string, session interface{}) {
	c.cache.SetWithTTL(sessionKey(id), session, c.sessionTTL)
}

// GetOrCreate returns the session for id, creating it through fn when absent
func (c *SessionCache) GetOrCreate(id string, fn func() (interface{}, error)) (interface{}, error) {
	if val, ok := c.Get(id); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		return nil, err
	}

	c.Put(id, val)
	return val, nil
}

// Remove deletes a session
func (c *SessionCache) Remove(id string) {
	c.cache.Delete(sessionKey(id))
}

// Has reports whether a session exists without renewing its deadline
func (c *SessionCache) Has(id string) bool {
	return c.cache.Touch(sessionKey(id), 0)
}

// ActiveSessions returns the identifiers of all live sessions in sorted order
func (c *SessionCache) ActiveSessions() []string {
	keys := c.cache.Keys()
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, "session:") {
			ids = append(ids, strings.TrimPrefix(key, "session:"))
		}
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of live sessions
func (c *SessionCache) Count() int {
	return c.cache.Size()
}

// Stats returns session cache statistics
func (c *SessionCache) Stats() map[string]interface{} {
	hits, misses, rate := c.cache.Stats()

	return map[string]interface{}{
		"session_count":    c.cache.Size(),
		"session_hits":     hits,
		"session_misses":   misses,
		"session_hit_rate": rate,
	}
}

// Clear removes all sessions
func (c *SessionCache) Clear() {
	c.cache.Clear()
}

// Close stops the underlying cache's cleanup goroutine
func (c *SessionCache) Close() {
	c.cache.Close()
}

// Global session cache singleton
var (
	globalSessionCache     *SessionCache
	globalSessionCacheOnce sync.Once
)

// GetSessionCache returns the global session cache
func GetSessionCache() *SessionCache {
	globalSessionCacheOnce.Do(func() {
		globalSessionCache = NewSessionCache(DefaultSessionConfig())
	})
	return globalSessionCache
}
