package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/expr"
	rwmapx "github.com/msto63/mRW/foundation/utils/mapx"
	rwmathx "github.com/msto63/mRW/foundation/utils/mathx"
	rwstringx "github.com/msto63/mRW/foundation/utils/stringx"
	"github.com/msto63/mRW/pkg/core/health"
	"github.com/msto63/mRW/pkg/core/logging"
	"github.com/msto63/mRW/pkg/core/version"
)

// EvalRequest is the evaluation request envelope
type EvalRequest struct {
	Expression string `json:"expression"`
	SessionID  string `json:"session_id,omitempty"`
}

// EvalResponse is the evaluation result envelope. Value is omitted for
// non-finite results, which JSON cannot represent as numbers; Formatted
// always carries the rendered value.
type EvalResponse struct {
	Value      *float64 `json:"value,omitempty"`
	Formatted  string   `json:"formatted"`
	RequestID  string   `json:"request_id"`
	SessionID  string   `json:"session_id"`
	DurationMS float64  `json:"duration_ms"`
}

// ErrorBody is a structured API error. Line and Column are pointers because
// zero is a valid location in the zero-based position scheme.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"`
	Column  *int   `json:"column,omitempty"`
}

// ErrorResponse wraps an API error
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// VarsResponse lists a session's variable bindings
type VarsResponse struct {
	SessionID string            `json:"session_id"`
	Variables map[string]string `json:"variables"`
	Count     int               `json:"count"`
}

// SessionResponse confirms a session deletion
type SessionResponse struct {
	SessionID string `json:"session_id"`
	Deleted   bool   `json:"deleted"`
}

// SessionsResponse lists active sessions
type SessionsResponse struct {
	Sessions []string               `json:"sessions"`
	Count    int                    `json:"count"`
	Stats    map[string]interface{} `json:"stats,omitempty"`
}

// VersionResponse reports component versions
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Engine  string `json:"engine"`
	Server  string `json:"server"`
}

// Handler handles HTTP requests for the evaluation API
type Handler struct {
	sessions *SessionManager
	health   *health.Registry
	logger   *logging.Logger
	version  string
}

// NewHandler creates a new API handler
func NewHandler(version string, sessions *SessionManager, registry *health.Registry) *Handler {
	return &Handler{
		sessions: sessions,
		health:   registry,
		logger:   logging.New("mrw-handler"),
		version:  version,
	}
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Add CORS headers
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	// Route requests
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "" || path == "/":
		h.handleRoot(w, r)
	case path == "health" || path == "health/":
		h.handleHealth(w, r)
	case path == "eval" || path == "eval/":
		h.handleEval(w, r)
	case path == "vars" || path == "vars/":
		h.handleVars(w, r)
	case path == "session" || path == "session/":
		h.handleSession(w, r)
	case path == "sessions" || path == "sessions/":
		h.handleSessions(w, r)
	case path == "version" || path == "version/":
		h.handleVersion(w, r)
	default:
		h.writeError(w, http.StatusNotFound, string(rwerror.CodeNotFound), "Endpoint not found")
	}
}

// handleRoot handles the root endpoint
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":    "meinRECHENWERK API",
		"version": h.version,
		"endpoints": map[string][]string{
			"core": {
				"GET  /health",
				"GET  /api/v1/version",
			},
			"eval": {
				"POST /api/v1/eval",
				"GET  /api/v1/ws",
			},
			"session": {
				"GET  /api/v1/vars?session_id={id}",
				"GET  /api/v1/sessions",
				"DELETE /api/v1/session?session_id={id}",
			},
		},
	}
	h.writeJSON(w, http.StatusOK, info)
}

// handleHealth runs the registered health checks and reports the result.
// An unhealthy report answers 503 so load balancers take the instance out.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use GET")
		return
	}

	report := h.health.Check(r.Context())

	status := http.StatusOK
	if report.Status == health.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

// handleEval evaluates an expression within a session
func (h *Handler) handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use POST")
		return
	}

	var req EvalRequest
	if err := h.readJSON(r, &req); err != nil {
		h.writeError(w, http.StatusBadRequest, string(rwerror.CodeInvalidInput), "Invalid request body: "+err.Error())
		return
	}

	if rwstringx.IsBlank(req.Expression) {
		h.writeError(w, http.StatusBadRequest, string(rwerror.CodeInvalidInput), "Expression is required")
		return
	}
	if req.SessionID != "" {
		if err := rwstringx.ValidateLength(req.SessionID, 1, 128); err != nil {
			h.writeStructuredError(w, err)
			return
		}
	}

	sess, err := h.sessions.GetOrCreate(req.SessionID)
	if err != nil {
		h.writeStructuredError(w, err)
		return
	}

	requestID := uuid.NewString()
	ctx := context.WithValue(r.Context(), "requestId", requestID)

	res, err := sess.Evaluate(ctx, req.Expression)
	if err != nil {
		h.logger.Warn("Evaluation failed",
			"session", sess.ID,
			"expression", rwstringx.Truncate(req.Expression, 80, "..."),
			"error", err,
		)
		h.writeStructuredError(w, err)
		return
	}

	h.logger.Info("Expression evaluated",
		"session", sess.ID,
		"expression", rwstringx.Truncate(req.Expression, 80, "..."),
		"result", res.FormattedValue(),
		"duration", res.ExecutionTime,
	)

	h.writeJSON(w, http.StatusOK, evalResponse(res, sess.ID))
}

// handleVars lists the variable bindings of a session
func (h *Handler) handleVars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use GET")
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if rwstringx.IsBlank(sessionID) {
		h.writeError(w, http.StatusBadRequest, string(rwerror.CodeInvalidInput), "session_id query parameter is required")
		return
	}

	sess, err := h.sessions.Lookup(sessionID)
	if err != nil {
		h.writeStructuredError(w, err)
		return
	}

	vars := sess.Variables()
	h.writeJSON(w, http.StatusOK, VarsResponse{
		SessionID: sess.ID,
		Variables: rwmapx.TransformValues(vars, rwmathx.FormatValue),
		Count:     len(vars),
	})
}

// handleSession drops a session
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use DELETE")
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	if rwstringx.IsBlank(sessionID) {
		h.writeError(w, http.StatusBadRequest, string(rwerror.CodeInvalidInput), "session_id query parameter is required")
		return
	}

	if err := h.sessions.Remove(sessionID); err != nil {
		h.writeStructuredError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, SessionResponse{
		SessionID: sessionID,
		Deleted:   true,
	})
}

// handleSessions lists the active sessions with store statistics
func (h *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use GET")
		return
	}

	h.writeJSON(w, http.StatusOK, SessionsResponse{
		Sessions: h.sessions.ActiveSessions(),
		Count:    h.sessions.Count(),
		Stats:    h.sessions.Stats(),
	})
}

// handleVersion reports component versions
func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Use GET")
		return
	}

	h.writeJSON(w, http.StatusOK, VersionResponse{
		Name:    "meinRECHENWERK",
		Version: h.version,
		Engine:  version.Engine,
		Server:  version.Server,
	})
}

// evalResponse converts an engine result into the wire format
func evalResponse(res *expr.Result, sessionID string) EvalResponse {
	resp := EvalResponse{
		Formatted:  res.FormattedValue(),
		RequestID:  res.RequestID,
		SessionID:  sessionID,
		DurationMS: float64(res.ExecutionTime) / float64(time.Millisecond),
	}
	if rwmathx.IsFinite(res.Value) {
		value := res.Value
		resp.Value = &value
	}
	return resp
}

// errorPosition extracts the source position from a foundation error.
// Lexer, parser, and evaluator errors all carry line and column details.
func errorPosition(err error) (line, column *int) {
	var rwErr *rwerror.Error
	if !errors.As(err, &rwErr) {
		return nil, nil
	}

	details := rwErr.Details()
	if v, ok := details["line"].(int); ok {
		line = &v
	}
	if v, ok := details["column"].(int); ok {
		column = &v
	}
	return line, column
}

// Helper methods

func (h *Handler) readJSON(r *http.Request, v interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// writeStructuredError maps a foundation error onto the error contract.
// The HTTP status derives from the error code; expression errors answer
// 422 with their source position.
func (h *Handler) writeStructuredError(w http.ResponseWriter, err error) {
	var rwErr *rwerror.Error
	if !errors.As(err, &rwErr) {
		h.writeError(w, http.StatusInternalServerError, string(rwerror.CodeInternal), err.Error())
		return
	}

	body := ErrorBody{
		Code:    string(rwErr.Code()),
		Message: rwErr.Error(),
	}
	body.Line, body.Column = errorPosition(err)

	h.writeJSON(w, rwErr.Code().HTTPStatus(), ErrorResponse{Error: body})
}
