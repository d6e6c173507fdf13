// File: doc.go
// Title: Package Documentation for Core Logging
// Description: Package documentation for the brahmic structured logging
//              package used by the transpiler, the REPL, the playground
//              server and the command line tools.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial package documentation

/*
Package log provides structured logging for the brahmic toolchain.

The package supports:

• Structured logging with custom fields

• Multiple output formats (JSON, text, colored console)

• Log levels from trace to fatal

• Contextual loggers carrying a source name, so every entry produced
while transpiling a file names that file

• Performance timers for measuring transpile and execution phases

Loggers are immutable: the With* methods return clones, so a logger can
be shared across goroutines and specialized per component.

Basic usage:

	logger := log.New().WithField("component", "teng-parser")
	logger.Info("Parse completed", log.Fields{"statements": 12})

Contextual usage:

	fileLogger := logger.WithSource("examples/factorial.teng")
	timer := fileLogger.StartTimer("transpile")
	defer timer.Stop()
*/
package log
