package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/msto63/mRW/pkg/core/health"
	"github.com/msto63/mRW/pkg/core/logging"
	"github.com/msto63/mRW/pkg/core/version"
)

// Server is the mRW evaluation server
type Server struct {
	httpServer *http.Server
	handler    *Handler
	ws         *WSHandler
	sessions   *SessionManager
	health     *health.Registry
	logger     *logging.Logger
	config     Config
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Version      string

	// Session settings
	SessionTTL  time.Duration
	MaxSessions int

	// Engine settings
	MaxInputLength int
	Variables      map[string]float64

	// Logging settings; empty values fall back to info/json
	LogLevel  string
	LogFormat string
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8372,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		Version:      version.Server,

		SessionTTL:  30 * time.Minute,
		MaxSessions: 1000,

		MaxInputLength: 4096,
	}
}

// New creates a new mRW server
func New(cfg Config) (*Server, error) {
	cfg = cfg.withDefaults()
	logger := logging.NewWithConfig(logging.LoggerConfig{
		ComponentName: "mrw-server",
		Level:         cfg.LogLevel,
		Format:        cfg.LogFormat,
	})

	// Create session manager
	sessions := NewSessionManager(SessionOptions{
		TTL:            cfg.SessionTTL,
		MaxSessions:    cfg.MaxSessions,
		MaxInputLength: cfg.MaxInputLength,
		Preseeds:       cfg.Variables,
		Logger:         logger,
	})

	// Create health registry
	healthRegistry := health.NewRegistry("mrw-server", cfg.Version)
	healthRegistry.Register(health.EngineCheck("engine"))
	healthRegistry.Register(health.SessionStoreCheck("sessions", sessions.Store(), cfg.MaxSessions))

	// Create handlers
	h := NewHandler(cfg.Version, sessions, healthRegistry)
	ws := NewWSHandler(sessions)

	// Create HTTP server
	mux := http.NewServeMux()

	// WebSocket route
	mux.Handle("/api/v1/ws", ws)

	// API routes
	mux.Handle("/", h)
	mux.Handle("/api/", h)
	mux.Handle("/api/v1/", h)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    h,
		ws:         ws,
		sessions:   sessions,
		health:     healthRegistry,
		logger:     logger,
		config:     cfg,
	}, nil
}

// withDefaults fills unset fields from the default configuration
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Host == "" {
		c.Host = def.Host
	}
	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = def.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = def.WriteTimeout
	}
	if c.Version == "" {
		c.Version = def.Version
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = def.SessionTTL
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = def.MaxSessions
	}
	if c.MaxInputLength <= 0 {
		c.MaxInputLength = def.MaxInputLength
	}
	return c
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Wrap response writer to capture status code
		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapper.statusCode,
			"duration", time.Since(start),
		)
	})
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack forwards to the underlying writer so the WebSocket upgrade works
// through the logging middleware
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hj.Hijack()
}

// Start starts the server
func (s *Server) Start() error {
	s.logger.Info("Starting mRW evaluation server",
		"host", s.config.Host,
		"port", s.config.Port,
	)
	return s.httpServer.ListenAndServe()
}

// StartAsync starts the server asynchronously
func (s *Server) StartAsync() error {
	s.logger.Info("Starting mRW evaluation server (async)",
		"host", s.config.Host,
		"port", s.config.Port,
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server error", "error", err)
		}
	}()

	return nil
}

// Stop gracefully stops the server and releases the session store
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping mRW evaluation server")

	err := s.httpServer.Shutdown(ctx)
	s.sessions.Close()
	return err
}

// Address returns the server address
func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// HealthRegistry returns the health check registry
func (s *Server) HealthRegistry() *health.Registry {
	return s.health
}

// Sessions returns the session manager
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// Logger returns the server logger, e.g. for runtime level changes
func (s *Server) Logger() *logging.Logger {
	return s.logger
}
