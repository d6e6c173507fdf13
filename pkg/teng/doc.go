// File: doc.go
// Title: Package Documentation for the Tenglish Transpiler
// Description: Package documentation for teng, the public facade of the
//              brahmic Tenglish to Python transpiler.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-07-18
//
// Change History:
// - 2026-06-15 v0.1.0: Initial package documentation
// - 2026-07-18 v0.1.1: Documented debug helpers and encoding fallback

/*
Package teng transpiles Tenglish source code into executable Python 3.

Tenglish is Telugu written in Latin script with Python-like structure.
Keywords are Telugu words, often in postfix position the way Telugu
places its verbs:

	okavela x > 5 aite:        →  if x > 5:
	lekapothe:                 →  else:
	vidhanam adugu(a, b):      →  def adugu(a, b):
	x ivvu                     →  return x
	("namaste")cheppu          →  print("namaste")
	numbers lo num ki:         →  for num in numbers:
	x < 10 unnanta varaku:     →  while x < 10:

The package provides:

• Transpile for converting Tenglish text into Python text

• TranspileFile for converting files, with encoding fallback from UTF-8
through Latin-1 to Windows-1252

• DebugTokens and DebugTree for inspecting the token stream and the
parse tree

Basic usage:

	t, err := teng.New(teng.Options{})
	if err != nil {
		return err
	}
	python, err := t.Transpile(source)

A Transpiler keeps per-call parse state and is not safe for concurrent
use. The package-level Transpile function creates a fresh instance per
call and may be used from multiple goroutines.
*/
package teng
