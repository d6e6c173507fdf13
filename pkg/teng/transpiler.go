// File: transpiler.go
// Title: Tenglish Transpiler Facade
// Description: Implements the Transpiler type tying the lexer, parser,
//              and renderer together. Handles file reading with encoding
//              fallback, newline normalization, error classification,
//              and debug access to tokens and trees.
// Author: brahmic-lang maintainers
// Version: v0.1.2
// Created: 2026-06-15
// Modified: 2026-08-29
//
// Change History:
// - 2026-06-15 v0.1.0: Initial implementation
// - 2026-07-18 v0.1.1: Encoding fallback chain for TranspileFile
// - 2026-08-29 v0.1.2: DebugTokens reports lexical errors with
//                      CodeTengLexical

package teng

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	"github.com/brahmic-lang/brahmic/pkg/teng/ast"
	"github.com/brahmic-lang/brahmic/pkg/teng/parser"
)

// SourceExtension is the canonical file extension for Tenglish sources
const SourceExtension = ".teng"

// Transpiler converts Tenglish source code into Python 3 source code.
// It keeps per-call parse state and is not safe for concurrent use.
type Transpiler struct {
	parser  *parser.Parser
	logger  *corelog.Logger
	options Options
}

// Options configures transpiler behavior
type Options struct {
	Logger         *corelog.Logger
	MaxInputLength int
}

// New creates a new Transpiler with the given options
func New(opts Options) (*Transpiler, error) {
	if opts.Logger == nil {
		opts.Logger = corelog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 1 << 20
	}

	p, err := parser.New(parser.Options{
		Logger:         opts.Logger,
		MaxInputLength: opts.MaxInputLength,
	})
	if err != nil {
		return nil, fmt.Errorf("creating parser: %w", err)
	}

	return &Transpiler{
		parser:  p,
		logger:  opts.Logger.WithField("component", "teng-transpiler"),
		options: opts,
	}, nil
}

// Transpile converts Tenglish source text into Python source text
func (t *Transpiler) Transpile(source string) (string, error) {
	return t.transpile(source, "<string>")
}

// TranspileFile reads a Tenglish source file and converts it into
// Python source text. Files are decoded as UTF-8, falling back to
// Latin-1 and then Windows-1252, and newlines are normalized before
// transpilation.
func (t *Transpiler) TranspileFile(path string) (string, error) {
	if !strings.HasSuffix(path, SourceExtension) {
		t.logger.Debug("Source file does not use the .teng extension",
			corelog.Fields{"path": path})
	}

	source, err := t.ReadSource(path)
	if err != nil {
		return "", err
	}

	return t.transpile(source, path)
}

// ReadSource reads a Tenglish source file using the same encoding
// fallback and newline normalization as TranspileFile, without
// transpiling it. Used by callers that want the raw source, such as
// token and tree inspection.
func (t *Transpiler) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", coreerror.Wrap(err, fmt.Sprintf("cannot read %s", path)).
			WithCode(coreerror.CodeFileRead).
			WithSource(path)
	}

	source, encoding := decodeSource(data)
	if encoding != "utf-8" {
		t.logger.Debug("Decoded source with fallback encoding",
			corelog.Fields{"path": path, "encoding": encoding})
	}

	return normalizeNewlines(source), nil
}

// DebugTokens tokenizes Tenglish source and returns the token stream
// together with any lexical error messages. When lexical errors were
// found the returned error carries CodeTengLexical; the tokens and the
// messages are still returned so callers can show them.
func (t *Transpiler) DebugTokens(source string) ([]parser.Token, []string, error) {
	if len(source) > t.options.MaxInputLength {
		return nil, nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(source), t.options.MaxInputLength)
	}

	lexer := parser.NewLexer(source)
	tokens, lexErrs := lexer.Tokenize()
	if len(lexErrs) > 0 {
		err := coreerror.Newf("lexical errors: %s", strings.Join(lexErrs, "; ")).
			WithCode(coreerror.CodeTengLexical)
		return tokens, lexErrs, err
	}
	return tokens, lexErrs, nil
}

// DebugTree parses Tenglish source and returns the program tree without
// rendering it
func (t *Transpiler) DebugTree(source string) (*ast.Program, error) {
	return t.parser.Parse(source)
}

func (t *Transpiler) transpile(source, name string) (string, error) {
	logger := t.logger.WithSource(name)
	timer := logger.StartTimer("transpile")

	program, err := t.parser.Parse(source)
	if err != nil {
		timer.StopWithError(err)
		return "", classifyParseError(err, name)
	}

	python := program.Render(0)
	timer.WithField("statements", len(program.Statements)).Stop()

	return python, nil
}

// classifyParseError wraps a parse error with the matching error code
// and the source position it refers to
func classifyParseError(err error, source string) error {
	wrapped := coreerror.Wrap(err, "Transpilation failed").WithSource(source)

	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		return wrapped.WithCode(coreerror.CodeInvalidInput)
	}

	wrapped = wrapped.WithPosition(parseErr.Line, parseErr.Column)
	if parseErr.Incomplete {
		return wrapped.WithCode(coreerror.CodeTengIncomplete)
	}
	return wrapped.WithCode(coreerror.CodeTengSyntax)
}

// decodeSource decodes raw file bytes, trying UTF-8 first and falling
// back to Latin-1 and then Windows-1252. Latin-1 accepts every byte
// value, so the chain terminates there in practice.
func decodeSource(data []byte) (string, string) {
	if utf8.Valid(data) {
		return string(data), "utf-8"
	}

	if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
		return string(decoded), "latin-1"
	}

	decoded, _ := charmap.Windows1252.NewDecoder().Bytes(data)
	return string(decoded), "cp1252"
}

// normalizeNewlines converts Windows and bare-CR line endings to \n
func normalizeNewlines(source string) string {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return strings.ReplaceAll(source, "\r", "\n")
}

// Transpile converts Tenglish source text into Python source text using
// a fresh default transpiler. Safe for concurrent use.
func Transpile(source string) (string, error) {
	t, err := New(Options{})
	if err != nil {
		return "", err
	}
	return t.Transpile(source)
}

// TranspileFile converts a Tenglish source file into Python source text
// using a fresh default transpiler. Safe for concurrent use.
func TranspileFile(path string) (string, error) {
	t, err := New(Options{})
	if err != nil {
		return "", err
	}
	return t.TranspileFile(path)
}
