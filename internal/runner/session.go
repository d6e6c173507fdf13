// File: session.go
// Title: Persistent Interpreter Session
// Description: Keeps a single interpreter context and module alive
//              across evaluations so REPL inputs can build on earlier
//              definitions. Captures print output per evaluation and
//              echoes bare expression results through a sentinel
//              global.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-17
// Modified: 2026-06-17
//
// Change History:
// - 2026-06-17 v0.1.0: Initial implementation

package runner

import (
	"bytes"
	"sync"
	"time"

	"github.com/go-python/gpython/py"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
)

const sessionDesc = "<repl>"

// Session evaluates Python sources against a persistent module, so
// names defined by one evaluation stay visible to the next. Safe for
// concurrent use.
type Session struct {
	mu     sync.Mutex
	ctx    py.Context
	module *py.Module
	buf    bytes.Buffer
	logger *corelog.Logger
	closed bool
}

// NewSession creates a session with a fresh interpreter context.
func NewSession(logger *corelog.Logger) (*Session, error) {
	if logger == nil {
		logger = corelog.GetDefault()
	}

	ctxOpts := py.DefaultContextOpts()
	ctxOpts.SysArgs = []string{}

	s := &Session{
		ctx:    py.NewContext(ctxOpts),
		logger: logger.WithField("component", "runner-session"),
	}

	module, err := s.ctx.ModuleInit(&py.ModuleImpl{
		Info: py.ModuleInfo{Name: "__main__", FileDesc: sessionDesc},
	})
	if err != nil {
		s.ctx.Close()
		return nil, coreerror.Wrap(err, "failed to initialize interpreter session").
			WithCode(coreerror.CodeInternal).
			WithOperation("runner.NewSession")
	}
	s.module = module
	redirectPrint(module, &s.buf)

	return s, nil
}

// Eval executes the given Python source in the session module. The
// result carries the output printed during this evaluation; when the
// source assigned the ResultName sentinel, its repr is returned as the
// value and the sentinel is cleared. On runtime errors the returned
// result still carries any output produced before the failure.
func (s *Session) Eval(src string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, coreerror.New("session is closed").
			WithCode(coreerror.CodeInvalidInput).
			WithOperation("runner.Session.Eval")
	}

	if err := validate(src, sessionDesc, "runner.Session.Eval"); err != nil {
		return nil, err
	}

	code, err := py.Compile(src+"\n", sessionDesc, py.ExecMode, 0, true)
	if err != nil {
		return nil, compileError(err, "runner.Session.Eval", sessionDesc)
	}

	start := time.Now()
	s.buf.Reset()

	_, err = s.ctx.RunCode(code, s.module.Globals, s.module.Globals, nil)
	result := &Result{
		Stdout:   s.buf.String(),
		Duration: time.Since(start),
	}
	if err != nil {
		return result, runtimeError(err, "runner.Session.Eval", sessionDesc)
	}

	if v, ok := s.module.Globals[ResultName]; ok {
		delete(s.module.Globals, ResultName)
		if v != py.None {
			repr, err := py.ReprAsString(v)
			if err != nil {
				return result, runtimeError(err, "runner.Session.Eval", sessionDesc)
			}
			result.Value = repr
		}
	}

	s.logger.Debug("evaluation finished", corelog.Fields{
		"duration_ms": float64(result.Duration.Microseconds()) / 1000.0,
	})

	return result, nil
}

// Close releases the interpreter context. Further Eval calls fail.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.ctx.Close()
}
