// File: lexer.go
// Title: Tenglish Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of Tenglish parsing.
//              Converts Tenglish source text into a flat token stream,
//              translating Telugu keywords to their Python values on the
//              way. Handles multi-word keywords, the packed for-loop
//              header form, and newline tokens with position information.
// Author: brahmic-lang maintainers
// Version: v0.1.2
// Created: 2026-06-14
// Modified: 2026-08-29
//
// Change History:
// - 2026-06-14 v0.1.0: Initial lexer implementation
// - 2026-08-02 v0.1.1: Newline suppression inside parentheses moved into
//                      Tokenize
// - 2026-08-29 v0.1.2: Backslash escapes in string literals; single
//                      quotes and newlines inside strings rejected

package parser

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers, literals and keywords
	TokenIdentifier // counter, factorial, field_name
	TokenString     // "string literal"
	TokenNumber     // 123
	TokenKeyword    // Telugu keyword, Value carries the Python form
	TokenIn         // English "in" in expression position
	TokenNewline    // run of newlines, Value preserves the run

	// Operators
	TokenPlus      // +
	TokenMinus     // -
	TokenTimes     // *
	TokenDivide    // /
	TokenModulo    // %
	TokenEquals    // ==
	TokenNotEquals // !=
	TokenLess      // <
	TokenLessEq    // <=
	TokenGreater   // >
	TokenGreaterEq // >=
	TokenAssign    // =

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenComma        // ,
	TokenDot          // .
	TokenColon        // :
	TokenSemicolon    // ;
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text (Python value for keywords)
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	case TokenNewline:
		return fmt.Sprintf("NEWLINE(%q)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
	}
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenNumber:
		return "NUMBER"
	case TokenKeyword:
		return "KEYWORD"
	case TokenIn:
		return "IN"
	case TokenNewline:
		return "NEWLINE"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenTimes:
		return "TIMES"
	case TokenDivide:
		return "DIVIDE"
	case TokenModulo:
		return "MODULO"
	case TokenEquals:
		return "EQUALS"
	case TokenNotEquals:
		return "NE"
	case TokenLess:
		return "LT"
	case TokenLessEq:
		return "LE"
	case TokenGreater:
		return "GT"
	case TokenGreaterEq:
		return "GE"
	case TokenAssign:
		return "ASSIGN"
	case TokenLeftParen:
		return "LPAREN"
	case TokenRightParen:
		return "RPAREN"
	case TokenLeftBracket:
		return "LBRACKET"
	case TokenRightBracket:
		return "RBRACKET"
	case TokenLeftBrace:
		return "LBRACE"
	case TokenRightBrace:
		return "RBRACE"
	case TokenComma:
		return "COMMA"
	case TokenDot:
		return "DOT"
	case TokenColon:
		return "COLON"
	case TokenSemicolon:
		return "SEMICOLON"
	default:
		return "UNKNOWN"
	}
}

// Lexer performs lexical analysis of Tenglish input
type Lexer struct {
	input    string   // Input string
	lines    []string // Input split into lines, for indentation lookups
	position int      // Current position in input (points to current char)
	readPos  int      // Current reading position (after current char)
	ch       byte     // Current char under examination
	line     int      // Current line number (1-based)
	column   int      // Current column number (1-based)
}

// lexerState captures the cursor so speculative multi-word matches can
// be rolled back
type lexerState struct {
	position int
	readPos  int
	ch       byte
	line     int
	column   int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		lines:  strings.Split(input, "\n"),
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// Lines returns the raw source split into lines. The parser uses this to
// measure the indentation of a token's line.
func (l *Lexer) Lines() []string {
	return l.lines
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipSpaces()

	// Save current position for token
	pos := l.position
	line := l.line
	column := l.column

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Value: "", Position: pos, Line: line, Column: column}

	case l.ch == '\n':
		return Token{Type: TokenNewline, Value: l.readNewlineRun(), Position: pos, Line: line, Column: column}

	case isDigit(l.ch):
		return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos, Line: line, Column: column}

	case l.ch == '"':
		return l.lexString(pos, line, column)

	case isLetter(l.ch):
		return l.lexWord(pos, line, column)
	}

	var tok Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenEquals, Value: "==", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenAssign, l.ch, pos, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenNotEquals, Value: "!=", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenLessEq, Value: "<=", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenLess, l.ch, pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGreaterEq, Value: ">=", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenGreater, l.ch, pos, line, column)
		}
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, line, column)
	case '*':
		tok = newToken(TokenTimes, l.ch, pos, line, column)
	case '/':
		tok = newToken(TokenDivide, l.ch, pos, line, column)
	case '%':
		tok = newToken(TokenModulo, l.ch, pos, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case '[':
		tok = newToken(TokenLeftBracket, l.ch, pos, line, column)
	case ']':
		tok = newToken(TokenRightBracket, l.ch, pos, line, column)
	case '{':
		tok = newToken(TokenLeftBrace, l.ch, pos, line, column)
	case '}':
		tok = newToken(TokenRightBrace, l.ch, pos, line, column)
	case ',':
		tok = newToken(TokenComma, l.ch, pos, line, column)
	case '.':
		tok = newToken(TokenDot, l.ch, pos, line, column)
	case ':':
		tok = newToken(TokenColon, l.ch, pos, line, column)
	case ';':
		tok = newToken(TokenSemicolon, l.ch, pos, line, column)
	default:
		tok = newToken(TokenIllegal, l.ch, pos, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize scans the whole input and returns the significant tokens plus
// any lexical error messages. Lexical errors are not fatal: the offending
// character is skipped and scanning continues. Newline tokens inside
// parentheses are suppressed so expressions may span lines. The EOF token
// is not included in the result.
func (l *Lexer) Tokenize() ([]Token, []string) {
	var tokens []Token
	var errs []string
	depth := 0

	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			break
		}

		switch tok.Type {
		case TokenIllegal:
			errs = append(errs, fmt.Sprintf("Illegal character '%s' at line %d", tok.Value, tok.Line))
			continue
		case TokenNewline:
			if depth > 0 {
				continue
			}
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			if depth > 0 {
				depth--
			}
		}

		tokens = append(tokens, tok)
	}

	return tokens, errs
}

// lexWord scans a word and applies the keyword rules in priority order:
// cheppu, multi-word keywords, the packed for-loop header, then the
// single-word keyword table.
func (l *Lexer) lexWord(pos, line, column int) Token {
	word := l.readWord()

	if word == "cheppu" {
		return Token{Type: TokenKeyword, Value: kwPrint, Position: pos, Line: line, Column: column}
	}

	if multiWordStart(word) {
		state := l.saveState()
		if l.skipInlineSpaces() && isLetter(l.ch) {
			second := l.readWord()
			if value, ok := lookupMultiWord(word, second); ok {
				return Token{Type: TokenKeyword, Value: value, Position: pos, Line: line, Column: column}
			}
		}
		l.restoreState(state)
	}

	// Packed for-loop header: "iterable lo var ki" becomes one keyword
	// token with value "for var in iterable"
	if packed, ok := l.tryForPattern(word); ok {
		return Token{Type: TokenKeyword, Value: packed, Position: pos, Line: line, Column: column}
	}

	if value, ok := LookupKeyword(word); ok {
		return Token{Type: TokenKeyword, Value: value, Position: pos, Line: line, Column: column}
	}

	if word == "in" {
		return Token{Type: TokenIn, Value: "in", Position: pos, Line: line, Column: column}
	}

	return Token{Type: TokenIdentifier, Value: word, Position: pos, Line: line, Column: column}
}

// tryForPattern attempts to match " lo <var> ki" after an already-read
// word. On success the cursor sits past the closing ki and the packed
// keyword value is returned; on failure the cursor is rolled back.
func (l *Lexer) tryForPattern(iterable string) (string, bool) {
	state := l.saveState()

	if !l.skipInlineSpaces() || !isLetter(l.ch) {
		l.restoreState(state)
		return "", false
	}
	if l.readWord() != "lo" {
		l.restoreState(state)
		return "", false
	}

	if !l.skipInlineSpaces() || !isWordChar(l.ch) {
		l.restoreState(state)
		return "", false
	}
	variable := l.readWord()

	if !l.skipInlineSpaces() || !isLetter(l.ch) {
		l.restoreState(state)
		return "", false
	}
	if l.readWord() != "ki" {
		l.restoreState(state)
		return "", false
	}

	return fmt.Sprintf("for %s in %s", variable, iterable), true
}

// lexString scans a double-quoted string literal. A backslash escapes
// the character after it, so \" does not close the literal; the token
// value is the raw text between the quotes with the escape sequences
// kept verbatim. A literal cannot span a newline. An unterminated
// string yields an illegal token for the quote character and scanning
// resumes after it.
func (l *Lexer) lexString(pos, line, column int) Token {
	end := -1
scan:
	for i := l.readPos; i < len(l.input); i++ {
		switch l.input[i] {
		case '\\':
			if i+1 >= len(l.input) || l.input[i+1] == '\n' {
				break scan
			}
			i++
		case '\n':
			break scan
		case '"':
			end = i
			break scan
		}
	}
	if end < 0 {
		l.readChar() // skip the orphan quote
		return Token{Type: TokenIllegal, Value: `"`, Position: pos, Line: line, Column: column}
	}

	l.readChar() // consume opening quote
	start := l.position
	for l.position < end {
		l.readChar()
	}
	value := l.input[start:end]
	l.readChar() // consume closing quote

	return Token{Type: TokenString, Value: value, Position: pos, Line: line, Column: column}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL represents EOF
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) saveState() lexerState {
	return lexerState{
		position: l.position,
		readPos:  l.readPos,
		ch:       l.ch,
		line:     l.line,
		column:   l.column,
	}
}

func (l *Lexer) restoreState(s lexerState) {
	l.position = s.position
	l.readPos = s.readPos
	l.ch = s.ch
	l.line = s.line
	l.column = s.column
}

// readWord reads a run of word characters (letters, digits, underscores)
func (l *Lexer) readWord() string {
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads an integer literal
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNewlineRun reads consecutive newline characters as one run. The
// run length is significant: a value containing "\n\n" marks a blank
// line, which terminates indented blocks.
func (l *Lexer) readNewlineRun() string {
	start := l.position
	for l.ch == '\n' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipSpaces skips spaces and tabs. Newlines are significant and are
// never skipped here.
func (l *Lexer) skipSpaces() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

// skipInlineSpaces skips at least one space or tab, reporting whether
// any was skipped
func (l *Lexer) skipInlineSpaces() bool {
	if l.ch != ' ' && l.ch != '\t' {
		return false
	}
	l.skipSpaces()
	return true
}

// Utility functions

// newToken creates a new token with the given parameters
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the character can start a word
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isWordChar checks if the character can continue a word
func isWordChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch)
}

// TokenizeInput is a convenience function that tokenizes input and
// returns the significant tokens plus any lexical error messages
func TokenizeInput(input string) ([]Token, []string) {
	lexer := NewLexer(input)
	return lexer.Tokenize()
}
