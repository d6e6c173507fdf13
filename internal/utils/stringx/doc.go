// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the string utilities shared by the
//              brahmic CLI, REPL, and playground beyond what the standard
//              library offers.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-16
// Modified: 2026-06-16
//
// Change History:
// - 2026-06-16 v0.1.0: Initial implementation

// Package stringx provides string utilities for the brahmic toolchain.
//
// The helpers here are deliberately small: blank checks used by the
// configuration loader, Unicode-safe truncation for history previews,
// and line splitting that tolerates the mixed line endings found in
// Tenglish sources written on different platforms.
package stringx
