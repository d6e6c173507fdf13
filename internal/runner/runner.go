// File: runner.go
// Title: Embedded Python Runner
// Description: Executes rendered Python programs in an embedded
//              gpython interpreter. Each run uses a fresh interpreter
//              context with optional output capture and sys.argv
//              injection.
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
	"strings"
	"time"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"

	// Registers the compiler, VM, and core modules with py at init time.
	_ "github.com/go-python/gpython/stdlib"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
)

// DefaultDesc is the source description used when none is provided.
const DefaultDesc = "<brahmic>"

// ResultName is the module global a REPL assigns a bare expression to
// so its repr can be echoed after evaluation. Eval clears it.
const ResultName = "_brahmic_last"

// Runner executes rendered Python programs. Each Run call builds a
// fresh interpreter context, so a single Runner is safe for concurrent
// use.
type Runner struct {
	logger *corelog.Logger
}

// Options configures a single Run call.
type Options struct {
	Desc    string   // source description for error reporting
	Args    []string // values exposed to the program as sys.argv
	Capture bool     // capture print output instead of writing to stdout
}

// Result holds the outcome of an executed program.
type Result struct {
	Stdout   string        // captured print output, when capture was requested
	Value    string        // repr of the expression result, set by Session.Eval
	Duration time.Duration
}

// New creates a Runner. A nil logger falls back to the default logger.
func New(logger *corelog.Logger) *Runner {
	if logger == nil {
		logger = corelog.GetDefault()
	}
	return &Runner{
		logger: logger.WithField("component", "runner"),
	}
}

// Run executes the given Python source to completion and returns the
// result. On runtime errors the returned result still carries any
// output produced before the failure.
func (r *Runner) Run(src string, opts Options) (*Result, error) {
	desc := opts.Desc
	if desc == "" {
		desc = DefaultDesc
	}

	if err := validate(src, desc, "runner.Run"); err != nil {
		return nil, err
	}

	timer := r.logger.StartTimer("python run").WithField("source", desc)

	ctxOpts := py.DefaultContextOpts()
	ctxOpts.SysArgs = opts.Args
	if ctxOpts.SysArgs == nil {
		// A nil value would expose the host process arguments.
		ctxOpts.SysArgs = []string{}
	}

	ctx := py.NewContext(ctxOpts)
	defer ctx.Close()

	module, err := ctx.ModuleInit(&py.ModuleImpl{
		Info: py.ModuleInfo{Name: "__main__", FileDesc: desc},
	})
	if err != nil {
		return nil, coreerror.Wrap(err, "failed to initialize interpreter module").
			WithCode(coreerror.CodeInternal).
			WithOperation("runner.Run").
			WithSource(desc)
	}

	var buf bytes.Buffer
	if opts.Capture {
		redirectPrint(module, &buf)
	}

	code, err := py.Compile(src+"\n", desc, py.ExecMode, 0, true)
	if err != nil {
		return nil, compileError(err, "runner.Run", desc)
	}

	_, err = ctx.RunCode(code, module.Globals, module.Globals, nil)
	if err != nil {
		return &Result{Stdout: buf.String(), Duration: timer.Elapsed()},
			runtimeError(err, "runner.Run", desc)
	}

	return &Result{Stdout: buf.String(), Duration: timer.Stop()}, nil
}

// Validate checks that the given source is syntactically valid Python
// without executing it.
func (r *Runner) Validate(src, desc string) error {
	if desc == "" {
		desc = DefaultDesc
	}
	return validate(src, desc, "runner.Validate")
}

// validate runs the Python parser over the source as a syntax check
func validate(src, desc, operation string) error {
	if _, err := parser.Parse(strings.NewReader(src+"\n"), desc, py.ExecMode); err != nil {
		return coreerror.Wrap(err, "python syntax error").
			WithCode(coreerror.CodeExecParse).
			WithOperation(operation).
			WithSource(desc)
	}
	return nil
}

func compileError(err error, operation, desc string) error {
	return coreerror.Wrap(err, "python compile error").
		WithCode(coreerror.CodeExecCompile).
		WithOperation(operation).
		WithSource(desc)
}

func runtimeError(err error, operation, desc string) error {
	wrapped := coreerror.Wrap(err, "python runtime error").
		WithCode(coreerror.CodeExecRuntime).
		WithOperation(operation).
		WithSource(desc)
	if exc, ok := err.(*py.Exception); ok {
		wrapped = wrapped.WithDetail("exception", exc.Type().Name)
	}
	return wrapped
}
