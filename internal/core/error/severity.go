// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and log level selection.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates an error in user input, such as a syntax
	// error in a Tenglish program
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but
	// has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts
	// functionality
	SeverityHigh

	// SeverityCritical indicates an error that makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an
// error code. User-facing transpile errors are low severity: they are
// expected in normal operation and reported, not alerted on.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical

	case CodeDatabaseError, CodeConnectionFailed, CodeFileWrite, CodeInternal:
		return SeverityHigh

	case CodeExecRuntime, CodeNetworkError, CodeTimeout,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeFileRead, CodeEncoding, CodeTengRender:
		return SeverityMedium

	case CodeTengLexical, CodeTengSyntax, CodeTengIncomplete,
		CodeExecParse, CodeExecCompile,
		CodeInvalidInput, CodeNotFound, CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
