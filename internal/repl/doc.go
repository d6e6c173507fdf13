// File: doc.go
// Title: REPL Package Documentation
// Description: Package repl implements the interactive Tenglish
//              read-eval-print loop as a Bubbletea terminal UI.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-21
// Modified: 2026-06-21
//
// Change History:
// - 2026-06-21 v0.1.0: Initial implementation

/*
Package repl is the interactive Tenglish shell.

Each submitted input is transpiled to Python and evaluated in a
persistent interpreter session, so definitions carry over between
inputs. Block headers (lines ending in ':') switch the prompt into
continuation mode; an empty line submits the collected block.

Commands start with a colon:

	:debug    toggle token and tree dumps for each input
	:history  show the most recent stored inputs
	:help     show key bindings
	:quit     leave the REPL

Inputs are recorded in the SQLite history store when one is
configured, and the up and down arrows recall stored inputs into the
prompt. Run starts the program:

	err := repl.Run(repl.DefaultConfig())
*/
package repl
