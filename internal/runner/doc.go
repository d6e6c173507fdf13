// File: doc.go
// Title: Runner Package Documentation
// Description: Package runner executes rendered Python programs in an
//              embedded interpreter with output capture and persistent
//              REPL sessions.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-17
// Modified: 2026-06-17
//
// Change History:
// - 2026-06-17 v0.1.0: Initial implementation

/*
Package runner executes rendered Python programs in-process.

# One-Shot Execution

Run builds a fresh interpreter context per call, so results are fully
isolated between programs:

	r := runner.New(logger)
	res, err := r.Run(python, runner.Options{
		Desc:    "examples/factorial.teng",
		Args:    []string{"examples/factorial.teng"},
		Capture: true,
	})

With Capture set, print output lands in the result instead of process
stdout, which is what the REPL and the playground need. Without it,
programs print straight to the terminal.

# Persistent Sessions

Session keeps one interpreter module alive across evaluations so a
REPL can build on earlier definitions:

	s, err := runner.NewSession(logger)
	defer s.Close()
	res, err := s.Eval("x = 2")
	res, err = s.Eval("print(x + 3)")

Errors carry codes separating syntax errors in the rendered source,
compilation failures, and runtime exceptions.
*/
package runner
