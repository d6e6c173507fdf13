// File: stream.go
// Title: Token Stream Cursor
// Description: Provides a cursor over the flat token list produced by the
//              lexer. Supports lookahead, consumption, expectation with
//              error reporting, and save/restore marks so statement
//              detection scans never disturb the parse position.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-15
// Modified: 2026-07-18
//
// Change History:
// - 2026-06-15 v0.1.0: Initial token stream implementation

package parser

// TokenStream is a cursor over a token slice
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a stream positioned at the first token
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// AtEnd reports whether all tokens have been consumed
func (ts *TokenStream) AtEnd() bool {
	return ts.pos >= len(ts.tokens)
}

// Current returns the token at the cursor, or an EOF token past the end
func (ts *TokenStream) Current() Token {
	return ts.Peek(0)
}

// Peek returns the token at the given offset from the cursor without
// moving it. Offsets past the end return an EOF token.
func (ts *TokenStream) Peek(offset int) Token {
	idx := ts.pos + offset
	if idx < 0 || idx >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[idx]
}

// Consume returns the current token and advances the cursor
func (ts *TokenStream) Consume() Token {
	tok := ts.Current()
	if !ts.AtEnd() {
		ts.pos++
	}
	return tok
}

// Match consumes the current token if its type is one of the given types
// and reports whether it did
func (ts *TokenStream) Match(types ...TokenType) bool {
	current := ts.Current()
	for _, t := range types {
		if current.Type == t {
			ts.Consume()
			return true
		}
	}
	return false
}

// Expect consumes and returns the current token if it has the given type;
// otherwise it reports what was found instead
func (ts *TokenStream) Expect(tokenType TokenType) (Token, error) {
	if ts.AtEnd() {
		return Token{Type: TokenEOF}, &ParseError{
			Message: "Expected " + tokenType.String() + ", got EOF",
			Token:   Token{Type: TokenEOF},
		}
	}

	current := ts.Current()
	if current.Type != tokenType {
		return current, &ParseError{
			Message: "Expected " + tokenType.String() + ", got " + current.Type.String(),
			Line:    current.Line,
			Column:  current.Column,
			Token:   current,
		}
	}

	return ts.Consume(), nil
}

// Save returns a mark for the current cursor position
func (ts *TokenStream) Save() int {
	return ts.pos
}

// Restore moves the cursor back to a previously saved mark
func (ts *TokenStream) Restore(mark int) {
	ts.pos = mark
}

// Remaining returns the number of unconsumed tokens
func (ts *TokenStream) Remaining() int {
	if ts.AtEnd() {
		return 0
	}
	return len(ts.tokens) - ts.pos
}
