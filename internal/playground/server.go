// File: server.go
// Title: Playground HTTP Server
// Description: Wires the websocket handler and the health endpoint
//              into an HTTP server with request logging, asynchronous
//              startup, and graceful shutdown.
// Author: brahmic-lang maintainers
// Version: v0.1.1
// Created: 2026-06-20
// Modified: 2026-08-29
//
// Change History:
// - 2026-06-20 v0.1.0: Initial implementation
// - 2026-08-29 v0.1.1: Hijack/Flush passthrough on the logging wrapper

package playground

import (
	"bufio"
	"context"
	"net"
	"net/http"
	"time"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/internal/runner"
)

// Config holds server configuration
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Logger       *corelog.Logger
}

// DefaultConfig returns default server configuration
func DefaultConfig() Config {
	return Config{
		Addr:         ":8089",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
}

// Server is the playground HTTP server
type Server struct {
	httpServer *http.Server
	handler    *WebSocketHandler
	logger     *corelog.Logger
	config     Config
}

// New creates a playground server around a fresh transpiler and runner
func New(cfg Config) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = corelog.GetDefault()
	}
	logger = logger.WithField("component", "playground-server")

	if cfg.Addr == "" {
		cfg.Addr = DefaultConfig().Addr
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = DefaultConfig().ReadTimeout
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = DefaultConfig().WriteTimeout
	}

	wsHandler := NewWebSocketHandler(runner.New(logger), logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    wsHandler,
		logger:     logger,
		config:     cfg,
	}, nil
}

// loggingMiddleware adds request logging
func loggingMiddleware(logger *corelog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		logger.Info("HTTP request", corelog.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapper.statusCode,
			"duration": time.Since(start).String(),
		})
	})
}

// responseWrapper wraps http.ResponseWriter to capture the status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (w *responseWrapper) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Hijack implements http.Hijacker so the websocket upgrade works through
// the logging middleware.
func (w *responseWrapper) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	return hijacker.Hijack()
}

// Flush implements http.Flusher
func (w *responseWrapper) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Handler returns the server's HTTP handler. Exposed for tests that
// drive the server through httptest.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting playground server", corelog.Fields{"addr": s.config.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return coreerror.Wrap(err, "playground server failed").
			WithCode(coreerror.CodeNetworkError).
			WithOperation("playground.Server.Start")
	}
	return nil
}

// StartAsync starts the server in a background goroutine
func (s *Server) StartAsync() {
	s.logger.Info("Starting playground server (async)", corelog.Fields{"addr": s.config.Addr})
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.ErrorWithErr("Playground server error", err)
		}
	}()
}

// Stop gracefully stops the server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping playground server")
	return s.httpServer.Shutdown(ctx)
}

// Address returns the configured listen address
func (s *Server) Address() string {
	return s.config.Addr
}
