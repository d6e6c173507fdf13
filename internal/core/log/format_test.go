// File: format_test.go
// Title: Format Tests
// Description: Tests for log formatting functionality including JSON,
//              text, and console formatters.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation with format tests

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{FormatConsole, "console"},
		{Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("Format.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"text", FormatText, false},
		{"console", FormatConsole, false},
		{"JSON", FormatJSON, false},     // Case insensitive
		{"  text  ", FormatText, false}, // Trimming
		{"invalid", FormatJSON, true},   // Returns default with error
		{"", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelInfo, "test message")
	entry.Logger = "test-logger"
	entry.Source = "main.teng"
	entry.Fields = Fields{"key": "value", "count": 42}
	entry.Error = errors.New("test error")
	entry.Duration = time.Millisecond * 100

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("JSONFormatter.Format() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	expectedFields := map[string]interface{}{
		"level":       "info",
		"message":     "test message",
		"logger":      "test-logger",
		"source":      "main.teng",
		"key":         "value",
		"count":       float64(42), // JSON numbers are float64
		"error":       "test error",
		"duration_ms": float64(100),
	}

	for key, expected := range expectedFields {
		if actual, exists := result[key]; !exists {
			t.Errorf("JSON output missing field %s", key)
		} else if actual != expected {
			t.Errorf("JSON field %s = %v, want %v", key, actual, expected)
		}
	}

	// Check timestamp is present and valid
	if timestamp, exists := result["timestamp"]; !exists {
		t.Error("JSON output missing timestamp")
	} else if _, ok := timestamp.(string); !ok {
		t.Error("JSON timestamp should be a string")
	}

	// A plain error contributes no structured details
	if _, exists := result["error_details"]; exists {
		t.Error("JSON output should not contain error_details for plain errors")
	}
}

func TestJSONFormatter_StructuredError(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelWarn, "transpile failed")
	entry.Error = coreerror.New("unexpected token").WithCode(coreerror.CodeTengSyntax)

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("JSONFormatter.Format() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	if result["error"] != "unexpected token" {
		t.Errorf("JSON error = %v, want \"unexpected token\"", result["error"])
	}

	details, ok := result["error_details"].(map[string]interface{})
	if !ok {
		t.Fatal("JSON output should contain structured error_details")
	}

	if details["message"] != "unexpected token" {
		t.Errorf("error_details.message = %v, want \"unexpected token\"", details["message"])
	}

	if details["code"] != "TENG_SYNTAX" {
		t.Errorf("error_details.code = %v, want \"TENG_SYNTAX\"", details["code"])
	}

	if details["severity"] != "low" {
		t.Errorf("error_details.severity = %v, want \"low\"", details["severity"])
	}
}

func TestJSONFormatter_PrettyPrint(t *testing.T) {
	formatter := &JSONFormatter{PrettyPrint: true, TimestampFormat: time.RFC3339}

	entry := NewEntry(LevelInfo, "test message")
	entry.Fields = Fields{"key": "value"}

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("JSONFormatter.Format() error = %v", err)
	}

	output := string(data)
	if !strings.Contains(output, "\n") {
		t.Error("Pretty printed JSON should contain newlines")
	}

	if !strings.Contains(output, "  ") {
		t.Error("Pretty printed JSON should contain indentation")
	}
}

func TestJSONFormatter_OmitsEmptyFields(t *testing.T) {
	formatter := NewJSONFormatter()

	entry := NewEntry(LevelDebug, "plain message")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("JSONFormatter.Format() error = %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v", err)
	}

	for _, key := range []string{"logger", "source", "error", "error_details", "duration_ms"} {
		if _, exists := result[key]; exists {
			t.Errorf("JSON output should omit %q for a bare entry", key)
		}
	}

	if result["level"] != "debug" {
		t.Errorf("JSON level = %v, want \"debug\"", result["level"])
	}
}

func TestTextFormatter_Format(t *testing.T) {
	formatter := NewTextFormatter()

	entry := NewEntry(LevelInfo, "compile finished")
	entry.Timestamp = time.Date(2026, 6, 14, 10, 30, 0, 0, time.UTC)
	entry.Logger = "test"
	entry.Source = "main.teng"
	entry.Fields = Fields{"count": 3}
	entry.Error = errors.New("boom")
	entry.Duration = 1500 * time.Millisecond

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("TextFormatter.Format() error = %v", err)
	}

	want := "10:30:00 [INF] {test} (main.teng) compile finished [count=3] error=\"boom\" duration=1.5s\n"
	if got := string(data); got != want {
		t.Errorf("TextFormatter.Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_Minimal(t *testing.T) {
	formatter := NewTextFormatter()

	entry := NewEntry(LevelWarn, "hello")
	entry.Timestamp = time.Date(2026, 6, 14, 10, 30, 0, 0, time.UTC)

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("TextFormatter.Format() error = %v", err)
	}

	want := "10:30:00 [WRN] hello\n"
	if got := string(data); got != want {
		t.Errorf("TextFormatter.Format() = %q, want %q", got, want)
	}
}

func TestTextFormatter_FullTimestamp(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.FullTimestamp = true

	entry := NewEntry(LevelInfo, "hello")
	entry.Timestamp = time.Date(2026, 6, 14, 10, 30, 0, 0, time.UTC)

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("TextFormatter.Format() error = %v", err)
	}

	if !strings.HasPrefix(string(data), "2026-06-14T10:30:00Z") {
		t.Errorf("TextFormatter with FullTimestamp should use RFC3339, got %q", string(data))
	}
}

func TestTextFormatter_DisableTimestamp(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	entry := NewEntry(LevelError, "hello")

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("TextFormatter.Format() error = %v", err)
	}

	want := "[ERR] hello\n"
	if got := string(data); got != want {
		t.Errorf("TextFormatter.Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatter_Format(t *testing.T) {
	formatter := NewConsoleFormatter()

	entry := NewEntry(LevelInfo, "hello")
	entry.Timestamp = time.Date(2026, 6, 14, 10, 30, 0, 0, time.UTC)

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("ConsoleFormatter.Format() error = %v", err)
	}

	want := "\033[32m10:30:00 [INF] hello\033[0m\n"
	if got := string(data); got != want {
		t.Errorf("ConsoleFormatter.Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatter_DisableColors(t *testing.T) {
	formatter := NewConsoleFormatter()
	formatter.DisableColors = true

	entry := NewEntry(LevelInfo, "hello")
	entry.Timestamp = time.Date(2026, 6, 14, 10, 30, 0, 0, time.UTC)

	data, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("ConsoleFormatter.Format() error = %v", err)
	}

	want := "10:30:00 [INF] hello\n"
	if got := string(data); got != want {
		t.Errorf("ConsoleFormatter.Format() = %q, want %q", got, want)
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return a JSONFormatter")
	}

	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) should return a TextFormatter")
	}

	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("GetFormatter(FormatConsole) should return a ConsoleFormatter")
	}

	// Unknown formats fall back to JSON
	if _, ok := GetFormatter(Format(999)).(*JSONFormatter); !ok {
		t.Error("GetFormatter() should fall back to JSONFormatter")
	}
}

// Benchmark tests
func BenchmarkJSONFormatter(b *testing.B) {
	formatter := NewJSONFormatter()
	entry := NewEntry(LevelInfo, "benchmark message")
	entry.Fields = Fields{"key": "value", "count": 42}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = formatter.Format(entry)
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	formatter := NewTextFormatter()
	entry := NewEntry(LevelInfo, "benchmark message")
	entry.Fields = Fields{"key": "value"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = formatter.Format(entry)
	}
}
