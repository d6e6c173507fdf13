// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string operations the brahmic
//              toolchain needs beyond the standard library, with Unicode
//              safety for Tenglish sources that mix scripts.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-16
// Modified: 2026-06-16
//
// Change History:
// - 2026-06-16 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified rune length, adding an
// ellipsis if truncated. Multi-byte characters are never split, which
// matters for Tenglish identifiers outside ASCII.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// SplitLines splits a string into lines, handling \n, \r\n, and \r
// line ending conventions.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	return strings.Split(s, "\n")
}

// FirstNonBlank returns the first non-blank string from the provided
// strings. Useful for resolving a value through a chain of fallbacks.
func FirstNonBlank(strings ...string) string {
	for _, s := range strings {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
