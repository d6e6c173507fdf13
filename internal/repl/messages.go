// File: messages.go
// Title: REPL Message Types
// Description: Message types for asynchronous Bubbletea commands in
//              the REPL: evaluation results and history loading.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-21
// Modified: 2026-06-21
//
// Change History:
// - 2026-06-21 v0.1.0: Initial implementation

package repl

// evalDoneMsg is sent when an input has been transpiled and evaluated
type evalDoneMsg struct {
	source string // the submitted Tenglish input
	python string // rendered Python, empty when transpilation failed
	tokens string // token dump, only in debug mode
	tree   string // tree dump, only in debug mode
	stdout string // captured program output
	value  string // repr of a bare expression result
	err    error
}

// historyLoadedMsg is sent when stored inputs have been read from the
// history store
type historyLoadedMsg struct {
	inputs []string
	err    error
}
