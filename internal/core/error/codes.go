// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the brahmic toolchain. The codes
//              drive severity defaults, log levels, and the HTTP status
//              codes reported by the playground server.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-06-14
//
// Change History:
// - 2026-06-14 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the brahmic toolchain
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Tenglish transpilation
	CodeTengLexical    Code = "TENG_LEXICAL"
	CodeTengSyntax     Code = "TENG_SYNTAX"
	CodeTengIncomplete Code = "TENG_INCOMPLETE"
	CodeTengRender     Code = "TENG_RENDER"

	// Python execution
	CodeExecParse   Code = "EXEC_PARSE"
	CodeExecCompile Code = "EXEC_COMPILE"
	CodeExecRuntime Code = "EXEC_RUNTIME"

	// Files and encodings
	CodeFileRead  Code = "FILE_READ"
	CodeFileWrite Code = "FILE_WRITE"
	CodeEncoding  Code = "ENCODING"

	// History storage
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Playground service
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError       Code = "NETWORK_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeTengLexical, CodeTengSyntax, CodeTengIncomplete, CodeTengRender,
		CodeExecParse, CodeExecCompile, CodeExecRuntime,
		CodeFileRead, CodeFileWrite, CodeEncoding,
		CodeDatabaseError, CodeConnectionFailed,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeServiceUnavailable, CodeNetworkError,
		CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeTengLexical, CodeTengSyntax, CodeTengIncomplete, CodeTengRender:
		return "transpiler"
	case CodeExecParse, CodeExecCompile, CodeExecRuntime:
		return "execution"
	case CodeFileRead, CodeFileWrite, CodeEncoding:
		return "io"
	case CodeDatabaseError, CodeConnectionFailed:
		return "storage"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeServiceUnavailable, CodeNetworkError:
		return "service"
	case CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeInvalidInput, CodeValidationFailed,
		CodeTengLexical, CodeTengSyntax, CodeTengIncomplete,
		CodeExecParse, CodeExecCompile:
		return 400
	case CodeExecRuntime:
		return 422
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeDatabaseError, CodeConnectionFailed:
		return 503
	default:
		return 500
	}
}
