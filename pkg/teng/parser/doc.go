// File: doc.go
// Title: Tenglish Parser Package Documentation
// Description: Implements the lexical analyzer and parser for Tenglish
//              source code. Converts Tenglish programs into AST
//              representations with comprehensive error reporting.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-14 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for Tenglish source.

This package implements a recursive descent parser that converts Tenglish
programs into Abstract Syntax Tree (AST) representations. It includes:

  • Lexical analyzer (tokenizer) for Tenglish syntax
  • Keyword table translating Telugu words to their Python meanings
  • Recursive descent parser with speculative lookahead for the postfix
    print, postfix return, for and while constructs
  • Indentation-based block parsing
  • Comprehensive error reporting with position information

Lexical errors are not fatal: the offending character is reported and
skipped, and tokenization continues. Syntax errors abort the parse.
*/
package parser
