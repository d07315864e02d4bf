package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	rwmapx "github.com/msto63/mRW/foundation/utils/mapx"
	rwmathx "github.com/msto63/mRW/foundation/utils/mathx"
	rwstringx "github.com/msto63/mRW/foundation/utils/stringx"
	"github.com/msto63/mRW/pkg/core/logging"
)

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// readDeadline is the idle limit for a WebSocket connection. Any inbound
// frame, pong or message, extends it.
const readDeadline = 120 * time.Second

// WSHandler handles WebSocket connections for interactive evaluation
type WSHandler struct {
	sessions *SessionManager
	logger   *logging.Logger
}

// NewWSHandler creates a new WebSocket handler
func NewWSHandler(sessions *SessionManager) *WSHandler {
	return &WSHandler{
		sessions: sessions,
		logger:   logging.New("mrw-websocket"),
	}
}

// WSMessage represents a WebSocket message
type WSMessage struct {
	Type    string          `json:"type"`              // "eval", "vars", "reset", "ping"
	Payload json.RawMessage `json:"payload,omitempty"` // Message-specific payload
}

// WSEvalPayload carries the expression to evaluate
type WSEvalPayload struct {
	Expression string `json:"expression"`
}

// WSResponse represents a WebSocket response
type WSResponse struct {
	Type    string      `json:"type"`              // "result", "vars", "ok", "pong", "error"
	Payload interface{} `json:"payload,omitempty"` // Response-specific payload
}

// WSResultPayload carries an evaluation result. Value is omitted for
// non-finite results; Formatted always carries the rendered value.
type WSResultPayload struct {
	Value      *float64 `json:"value,omitempty"`
	Formatted  string   `json:"formatted"`
	DurationMS float64  `json:"duration_ms"`
}

// WSVarsPayload lists the connection's variable bindings
type WSVarsPayload struct {
	Variables map[string]string `json:"variables"`
	Count     int               `json:"count"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"`
	Column  *int   `json:"column,omitempty"`
}

// ServeHTTP handles WebSocket upgrade and connections
func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", "error", err)
		return
	}

	sess, err := h.sessions.NewDetachedSession()
	if err != nil {
		h.logger.Error("WebSocket session setup failed", "error", err)
		conn.Close()
		return
	}

	h.handleConnection(conn, sess)
}

// handleConnection runs a single WebSocket connection. The connection owns
// a detached session; evaluations run sequentially in the read loop, so the
// session engine never sees concurrent use and variables persist for the
// lifetime of the connection.
func (h *WSHandler) handleConnection(conn *websocket.Conn, sess *Session) {
	defer conn.Close()

	h.logger.Info("WebSocket connection established",
		"remote", conn.RemoteAddr().String(),
		"session", sess.ID,
	)

	// Set read deadline for ping/pong
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				h.logger.Error("WebSocket read error", "error", err)
			} else {
				h.logger.Info("WebSocket connection closed", "session", sess.ID)
			}
			return
		}

		conn.SetReadDeadline(time.Now().Add(readDeadline))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, WSResponse{Type: "pong"})

		case "eval":
			h.handleEval(conn, sess, msg.Payload)

		case "vars":
			vars := sess.Variables()
			h.sendResponse(conn, WSResponse{
				Type: "vars",
				Payload: WSVarsPayload{
					Variables: rwmapx.TransformValues(vars, rwmathx.FormatValue),
					Count:     len(vars),
				},
			})

		case "reset":
			sess.Reset()
			h.sendResponse(conn, WSResponse{Type: "ok"})

		default:
			h.sendError(conn, string(rwerror.CodeInvalidInput), "Unknown message type: "+msg.Type)
		}
	}
}

// handleEval evaluates an expression from the read loop
func (h *WSHandler) handleEval(conn *websocket.Conn, sess *Session, raw json.RawMessage) {
	var payload WSEvalPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(conn, string(rwerror.CodeInvalidInput), "Invalid eval payload")
		return
	}
	if rwstringx.IsBlank(payload.Expression) {
		h.sendError(conn, string(rwerror.CodeInvalidInput), "Expression is required")
		return
	}

	res, err := sess.Evaluate(context.Background(), payload.Expression)
	if err != nil {
		h.sendExprError(conn, err)
		return
	}

	result := WSResultPayload{
		Formatted:  res.FormattedValue(),
		DurationMS: float64(res.ExecutionTime) / float64(time.Millisecond),
	}
	if rwmathx.IsFinite(res.Value) {
		value := res.Value
		result.Value = &value
	}

	h.sendResponse(conn, WSResponse{Type: "result", Payload: result})
}

// sendResponse sends a response message via WebSocket
func (h *WSHandler) sendResponse(conn *websocket.Conn, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		h.logger.Error("WebSocket send error", "error", err)
	}
}

// sendError sends an error response via WebSocket
func (h *WSHandler) sendError(conn *websocket.Conn, code, message string) {
	h.sendResponse(conn, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}

// sendExprError sends an expression error with its source position
func (h *WSHandler) sendExprError(conn *websocket.Conn, err error) {
	payload := WSErrorPayload{
		Code:    string(rwerror.GetCode(err)),
		Message: err.Error(),
	}
	payload.Line, payload.Column = errorPosition(err)

	h.sendResponse(conn, WSResponse{Type: "error", Payload: payload})
}
