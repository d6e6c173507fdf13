// File: doc.go
// Title: Package Documentation for Core Error Handling
// Description: Package documentation for the brahmic structured error
//              package used across the transpiler and its tools.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial package documentation

/*
Package error provides structured error handling for the brahmic
toolchain.

Errors carry a classification code, a severity, the source unit and
position they refer to, arbitrary details and a captured stack trace,
while staying compatible with the standard error interface and
errors.Is/As/Unwrap chains.

Basic usage:

	err := coreerror.New("unterminated string").
		WithCode(coreerror.CodeTengLexical).
		WithSource("examples/factorial.teng").
		WithPosition(3, 12)

Wrapping:

	if err != nil {
		return coreerror.Wrap(err, "Transpilation failed").
			WithCode(coreerror.CodeTengSyntax)
	}

Error codes map to severities and HTTP status codes, which the
playground server uses when reporting transpile failures to clients.
*/
package error
