// File: stringx_test.go
// Title: Unit Tests for String Utilities
// Description: Tests for the string utility functions covering edge
//              cases and Unicode handling.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-16
// Modified: 2026-06-16
//
// Change History:
// - 2026-06-16 v0.1.0: Initial test implementation

package stringx

import (
	"reflect"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", false},
		{"normal string", "cheppu", false},
		{"unicode string", "నమస్తే", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsEmpty(tt.input)
			if result != tt.expected {
				t.Errorf("IsEmpty(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"multiple spaces", "   ", true},
		{"tab and spaces", " \t ", true},
		{"newline", "\n", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "okavela", false},
		{"string with spaces around", " okavela ", false},
		{"unicode content", "నమస్తే", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsBlank(tt.input)
			if result != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsNotEmpty(t *testing.T) {
	if IsNotEmpty("") {
		t.Error("IsNotEmpty(\"\") = true; want false")
	}

	if !IsNotEmpty("x") {
		t.Error("IsNotEmpty(\"x\") = false; want true")
	}
}

func TestIsNotBlank(t *testing.T) {
	if IsNotBlank("  \t ") {
		t.Error("IsNotBlank(\"  \\t \") = true; want false")
	}

	if !IsNotBlank(" x ") {
		t.Error("IsNotBlank(\" x \") = false; want true")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"no truncation needed", "short", 10, "...", "short"},
		{"exact length", "exact", 5, "...", "exact"},
		{"simple truncation", "this is a long string", 10, "...", "this is..."},
		{"zero max length", "anything", 0, "...", ""},
		{"negative max length", "anything", -1, "...", ""},
		{"ellipsis longer than max", "hello world", 2, "...", "he"},
		{"empty ellipsis", "hello world", 5, "", "hello"},
		{"unicode safe", "నమస్తే ప్రపంచం", 8, "…", "నమస్తే …"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen, tt.ellipsis)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d, %q) = %q; want %q",
					tt.input, tt.maxLen, tt.ellipsis, result, tt.expected)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"unix endings", "a\nb\nc", []string{"a", "b", "c"}},
		{"windows endings", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"old mac endings", "a\rb\rc", []string{"a", "b", "c"}},
		{"mixed endings", "a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"trailing newline", "a\n", []string{"a", ""}},
		{"empty string", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SplitLines(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []string
		expected string
	}{
		{"first wins", []string{"a", "b"}, "a"},
		{"skips empty", []string{"", "b"}, "b"},
		{"skips blank", []string{"  ", "\t", "c"}, "c"},
		{"all blank", []string{"", "  "}, ""},
		{"no inputs", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FirstNonBlank(tt.inputs...)
			if result != tt.expected {
				t.Errorf("FirstNonBlank(%v) = %q; want %q", tt.inputs, result, tt.expected)
			}
		})
	}
}

func BenchmarkIsBlank(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = IsBlank("   \t  content  ")
	}
}

func BenchmarkTruncate(b *testing.B) {
	input := "cheppu(\"the quick brown fox jumps over the lazy dog\")"
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Truncate(input, 20, "...")
	}
}
