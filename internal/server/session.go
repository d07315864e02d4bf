package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	rwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/foundation/expr"
	"github.com/msto63/mRW/pkg/core/cache"
	"github.com/msto63/mRW/pkg/core/logging"
)

// Session binds an expression engine to a session identifier. The engine
// keeps the session's variable environment alive across requests. Engines
// are not safe for concurrent use, so every engine access funnels through
// the session mutex.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	engine   *expr.Engine
	preseeds map[string]float64
}

// Evaluate runs an expression against the session environment
func (s *Session) Evaluate(ctx context.Context, expression string) (*expr.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Evaluate(ctx, expression)
}

// Variables returns a snapshot of the session's variable bindings
func (s *Session) Variables() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Environment().Snapshot()
}

// Reset restores the session environment to the default constants plus the
// configured preseeds. User-defined variables are discarded.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.ResetEnvironment()
	for name, value := range s.preseeds {
		s.engine.Environment().Set(name, value)
	}
}

// SessionOptions configures the session manager
type SessionOptions struct {
	// TTL is the sliding idle lifetime of a session (default 30m)
	TTL time.Duration

	// MaxSessions bounds the number of concurrent sessions (default 1000)
	MaxSessions int

	// MaxInputLength limits expression length per request (default 4096)
	MaxInputLength int

	// Preseeds are extra variables seeded into every fresh session,
	// merged over the engine's default constants
	Preseeds map[string]float64

	// Logger for session lifecycle events (optional)
	Logger *logging.Logger
}

// SessionManager creates, looks up, and expires evaluation sessions. The
// manager itself is safe for concurrent use; individual sessions serialize
// their engine access internally.
type SessionManager struct {
	store  *cache.SessionCache
	logger *logging.Logger
	opts   SessionOptions
}

// NewSessionManager creates a session manager backed by the TTL cache
func NewSessionManager(opts SessionOptions) *SessionManager {
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 1000
	}
	if opts.Logger == nil {
		opts.Logger = logging.New("mrw-sessions")
	}

	store := cache.NewSessionCache(cache.SessionConfig{
		SessionTTL:  opts.TTL,
		MaxSessions: opts.MaxSessions,
	})

	return &SessionManager{
		store:  store,
		logger: opts.Logger,
		opts:   opts,
	}
}

// GetOrCreate returns the session for id, creating one when the id is blank
// or unknown. A blank id gets a fresh uuid. An unknown id occurs when an
// idle session expired; the caller gets a fresh environment under the same
// id rather than a hard error.
func (m *SessionManager) GetOrCreate(id string) (*Session, error) {
	if id == "" {
		id = uuid.NewString()
	}

	cached, err := m.store.GetOrCreate(id, func() (interface{}, error) {
		if m.store.Count() >= m.opts.MaxSessions {
			return nil, rwerror.New("session limit reached").
				WithCode(rwerror.CodeSessionLimit).
				WithOperation("sessions.GetOrCreate").
				WithDetail("maxSessions", m.opts.MaxSessions)
		}

		sess, err := m.newSession(id)
		if err != nil {
			return nil, err
		}

		m.logger.Info("Session created", "session", id)
		return sess, nil
	})
	if err != nil {
		return nil, err
	}

	return cached.(*Session), nil
}

// Lookup returns the session for id without creating one
func (m *SessionManager) Lookup(id string) (*Session, error) {
	if cached, ok := m.store.Get(id); ok {
		return cached.(*Session), nil
	}

	return nil, rwerror.New("session not found").
		WithCode(rwerror.CodeSessionNotFound).
		WithOperation("sessions.Lookup").
		WithDetail("session", id)
}

// Remove drops a session from the store
func (m *SessionManager) Remove(id string) error {
	if !m.store.Has(id) {
		return rwerror.New("session not found").
			WithCode(rwerror.CodeSessionNotFound).
			WithOperation("sessions.Remove").
			WithDetail("session", id)
	}

	m.store.Remove(id)
	m.logger.Info("Session removed", "session", id)
	return nil
}

// NewDetachedSession creates a session that is not tracked by the store.
// WebSocket connections use one each; its lifetime is the connection's.
func (m *SessionManager) NewDetachedSession() (*Session, error) {
	return m.newSession(uuid.NewString())
}

// newSession builds a session with its own engine and preseeded variables.
// Engine-internal logging is raised to warn; request logging is the
// handler's concern.
func (m *SessionManager) newSession(id string) (*Session, error) {
	engine, err := expr.NewEngine(expr.Options{
		Logger:              m.logger.Logger.WithLevel(rwlog.LevelWarn),
		MaxExpressionLength: m.opts.MaxInputLength,
	})
	if err != nil {
		return nil, err
	}

	for name, value := range m.opts.Preseeds {
		engine.Environment().Set(name, value)
	}

	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		engine:    engine,
		preseeds:  m.opts.Preseeds,
	}, nil
}

// Store exposes the underlying session cache for health checks
func (m *SessionManager) Store() *cache.SessionCache {
	return m.store
}

// Count returns the number of live sessions
func (m *SessionManager) Count() int {
	return m.store.Count()
}

// ActiveSessions returns the identifiers of all live sessions in sorted order
func (m *SessionManager) ActiveSessions() []string {
	return m.store.ActiveSessions()
}

// Stats returns session store statistics
func (m *SessionManager) Stats() map[string]interface{} {
	return m.store.Stats()
}

// Close stops the session store's cleanup loop
func (m *SessionManager) Close() {
	m.store.Close()
}
