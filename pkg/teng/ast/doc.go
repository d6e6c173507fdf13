// File: doc.go
// Title: Tenglish Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes for representing
//              parsed Tenglish programs. Every node knows how to render
//              itself as Python 3 source text. Provides visitor patterns
//              and tree inspection utilities.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-14 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for Tenglish programs.

This package provides the node definitions, the Python rendering rules, and
the visitor utilities for working with parsed Tenglish source as structured
data.

The AST enables:
  • Structured representation of Tenglish programs
  • Deterministic rendering to Python 3 source text
  • Tree inspection for debugging tooling
  • Static validation of node shapes

Rendering is pure: a validly constructed tree always renders, and rendering
the same tree twice yields identical output.
*/
package ast
