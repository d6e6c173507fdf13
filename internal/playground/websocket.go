// File: websocket.go
// Title: Playground WebSocket Handler
// Description: Implements the websocket endpoint that receives
//              transpile and run requests as JSON messages, answers
//              with results or structured errors, and keeps the
//              connection alive with read deadlines and pong handling.
// Author: brahmic-lang maintainers
// Version: v0.1.1
// Created: 2026-06-20
// Modified: 2026-08-29
//
// Change History:
// - 2026-06-20 v0.1.0: Initial implementation
// - 2026-08-29 v0.1.1: Per-connection transpiler instances

package playground

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/internal/runner"
	"github.com/brahmic-lang/brahmic/pkg/teng"
)

// readTimeout is the per-connection read deadline; the pong handler
// extends it so idle but live connections survive.
const readTimeout = 120 * time.Second

// WebSocket upgrader with permissive settings for local development
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSMessage represents an incoming websocket message
type WSMessage struct {
	Type    string          `json:"type"`    // "transpile", "run", "ping"
	Payload json.RawMessage `json:"payload"` // message-specific payload
}

// WSSourcePayload carries the Tenglish source for transpile and run
// requests.
type WSSourcePayload struct {
	Source string `json:"source"`
}

// WSResponse represents an outgoing websocket message
type WSResponse struct {
	Type    string      `json:"type"`    // "result", "error", "pong"
	Payload interface{} `json:"payload"` // response-specific payload
}

// WSResultPayload carries a successful transpilation, plus captured
// output when the program was run.
type WSResultPayload struct {
	Python string `json:"python"`
	Stdout string `json:"stdout,omitempty"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketHandler handles websocket connections for the playground.
// The transpiler keeps per-call parse state, so each connection gets its
// own instance; the runner builds a fresh interpreter per run and is
// shared.
type WebSocketHandler struct {
	runner *runner.Runner
	logger *corelog.Logger
}

// NewWebSocketHandler creates a websocket handler backed by the given
// runner.
func NewWebSocketHandler(run *runner.Runner, logger *corelog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = corelog.GetDefault()
	}
	return &WebSocketHandler{
		runner: run,
		logger: logger.WithField("component", "playground-ws"),
	}
}

// ServeHTTP handles the websocket upgrade and connection
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.ErrorWithErr("WebSocket upgrade failed", err)
		return
	}
	h.handleConnection(conn)
}

// handleConnection runs the read loop for a single connection
func (h *WebSocketHandler) handleConnection(conn *websocket.Conn) {
	defer conn.Close()

	logger := h.logger.WithFields(corelog.Fields{
		"session": uuid.NewString(),
		"remote":  conn.RemoteAddr().String(),
	})
	logger.Info("WebSocket connection established")

	transpiler, err := teng.New(teng.Options{Logger: logger})
	if err != nil {
		logger.ErrorWithErr("Cannot create transpiler", err)
		return
	}

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.ErrorWithErr("WebSocket read error", err)
			} else {
				logger.Info("WebSocket connection closed")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		switch msg.Type {
		case "ping":
			h.sendResponse(conn, logger, WSResponse{Type: "pong"})

		case "transpile":
			source, ok := h.decodeSource(conn, logger, msg.Payload)
			if !ok {
				continue
			}
			h.handleTranspile(conn, logger, transpiler, source)

		case "run":
			source, ok := h.decodeSource(conn, logger, msg.Payload)
			if !ok {
				continue
			}
			h.handleRun(conn, logger, transpiler, source)

		default:
			h.sendError(conn, logger, "unknown_type", "Unknown message type: "+msg.Type)
		}
	}
}

// decodeSource unpacks a source payload, reporting malformed or empty
// requests to the client.
func (h *WebSocketHandler) decodeSource(conn *websocket.Conn, logger *corelog.Logger, raw json.RawMessage) (string, bool) {
	var payload WSSourcePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		h.sendError(conn, logger, "invalid_payload", "Invalid source payload")
		return "", false
	}
	if payload.Source == "" {
		h.sendError(conn, logger, "invalid_request", "Source required")
		return "", false
	}
	return payload.Source, true
}

// handleTranspile answers a transpile request with the rendered Python
func (h *WebSocketHandler) handleTranspile(conn *websocket.Conn, logger *corelog.Logger, transpiler *teng.Transpiler, source string) {
	python, err := transpiler.Transpile(source)
	if err != nil {
		h.sendError(conn, logger, errorCode(err), err.Error())
		return
	}

	h.sendResponse(conn, logger, WSResponse{
		Type:    "result",
		Payload: WSResultPayload{Python: python},
	})
}

// handleRun transpiles and executes, answering with the Python and the
// captured program output.
func (h *WebSocketHandler) handleRun(conn *websocket.Conn, logger *corelog.Logger, transpiler *teng.Transpiler, source string) {
	python, err := transpiler.Transpile(source)
	if err != nil {
		h.sendError(conn, logger, errorCode(err), err.Error())
		return
	}

	res, err := h.runner.Run(python, runner.Options{Desc: "<playground>", Capture: true})
	if err != nil {
		h.sendError(conn, logger, errorCode(err), err.Error())
		return
	}

	h.sendResponse(conn, logger, WSResponse{
		Type: "result",
		Payload: WSResultPayload{
			Python: python,
			Stdout: res.Stdout,
		},
	})
}

// errorCode maps an error onto a wire-level code string
func errorCode(err error) string {
	return string(coreerror.GetCode(err))
}

// sendResponse writes a response message to the connection
func (h *WebSocketHandler) sendResponse(conn *websocket.Conn, logger *corelog.Logger, resp WSResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		logger.ErrorWithErr("WebSocket send error", err)
	}
}

// sendError writes an error response to the connection
func (h *WebSocketHandler) sendError(conn *websocket.Conn, logger *corelog.Logger, code, message string) {
	h.sendResponse(conn, logger, WSResponse{
		Type: "error",
		Payload: WSErrorPayload{
			Code:    code,
			Message: message,
		},
	})
}
