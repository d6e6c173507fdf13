// File: lexer_test.go
// Title: Tenglish Lexer Unit Tests
// Description: Unit tests for the Tenglish lexical analyzer. Tests cover
//              keyword translation, multi-word keywords, the packed
//              for-loop header, string literals, newline handling, error
//              recovery, and position tracking.
// Author: brahmic-lang maintainers
// Version: v0.1.1
// Created: 2026-06-14
// Modified: 2026-08-29
//
// Change History:
// - 2026-06-14 v0.1.0: Initial test suite
// - 2026-08-29 v0.1.1: Backslash escape and string restriction cases

package parser

import (
	"testing"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token // only Type and Value are compared
	}{
		{
			name:  "Simple assignment",
			input: "x = 5",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenNumber, Value: "5"},
			},
		},
		{
			name:  "If header with then marker",
			input: "okavela x aite:",
			expected: []Token{
				{Type: TokenKeyword, Value: "if"},
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenKeyword, Value: ""},
				{Type: TokenColon, Value: ":"},
			},
		},
		{
			name:  "If header with negation marker",
			input: "okavela flag avvakapote:",
			expected: []Token{
				{Type: TokenKeyword, Value: "if"},
				{Type: TokenIdentifier, Value: "flag"},
				{Type: TokenKeyword, Value: "not"},
				{Type: TokenColon, Value: ":"},
			},
		},
		{
			name:  "Multi-word continue",
			input: "munduku vellu",
			expected: []Token{
				{Type: TokenKeyword, Value: "continue"},
			},
		},
		{
			name:  "Multi-word while header",
			input: "x < 10 unnanta varaku:",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenLess, Value: "<"},
				{Type: TokenNumber, Value: "10"},
				{Type: TokenKeyword, Value: "while"},
				{Type: TokenColon, Value: ":"},
			},
		},
		{
			name:  "Multi-word elif",
			input: "lekapothe okavela x aite:",
			expected: []Token{
				{Type: TokenKeyword, Value: "elif"},
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenKeyword, Value: ""},
				{Type: TokenColon, Value: ":"},
			},
		},
		{
			name:  "Else alone",
			input: "lekapothe:",
			expected: []Token{
				{Type: TokenKeyword, Value: "else"},
				{Type: TokenColon, Value: ":"},
			},
		},
		{
			name:  "Packed for loop header",
			input: "numbers lo num ki:",
			expected: []Token{
				{Type: TokenKeyword, Value: "for num in numbers"},
				{Type: TokenColon, Value: ":"},
			},
		},
		{
			name:  "For pattern wins over single keywords",
			input: "okavela lo x ki",
			expected: []Token{
				{Type: TokenKeyword, Value: "for x in okavela"},
			},
		},
		{
			name:  "Call iterable does not pack",
			input: "range(5) lo i ki:",
			expected: []Token{
				{Type: TokenIdentifier, Value: "range"},
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenNumber, Value: "5"},
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenKeyword, Value: "in"},
				{Type: TokenIdentifier, Value: "i"},
				{Type: TokenKeyword, Value: ""},
				{Type: TokenColon, Value: ":"},
			},
		},
		{
			name:  "cheppu wins over for pattern",
			input: "cheppu lo x ki",
			expected: []Token{
				{Type: TokenKeyword, Value: "print"},
				{Type: TokenKeyword, Value: "in"},
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenKeyword, Value: ""},
			},
		},
		{
			name:  "Booleans and logical keywords",
			input: "Nijam mariyu Abaddam leda avvakapote",
			expected: []Token{
				{Type: TokenKeyword, Value: "True"},
				{Type: TokenKeyword, Value: "and"},
				{Type: TokenKeyword, Value: "False"},
				{Type: TokenKeyword, Value: "or"},
				{Type: TokenKeyword, Value: "not"},
			},
		},
		{
			name:  "Builtins stay identifiers",
			input: "range len append str",
			expected: []Token{
				{Type: TokenIdentifier, Value: "range"},
				{Type: TokenIdentifier, Value: "len"},
				{Type: TokenIdentifier, Value: "append"},
				{Type: TokenIdentifier, Value: "str"},
			},
		},
		{
			name:  "English in for membership",
			input: "x in y",
			expected: []Token{
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenIn, Value: "in"},
				{Type: TokenIdentifier, Value: "y"},
			},
		},
		{
			name:  "Double quoted string",
			input: `name = "Ravi"`,
			expected: []Token{
				{Type: TokenIdentifier, Value: "name"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenString, Value: "Ravi"},
			},
		},
		{
			name:  "Escaped quote does not close the string",
			input: `msg = "say \"hi\""`,
			expected: []Token{
				{Type: TokenIdentifier, Value: "msg"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenString, Value: `say \"hi\"`},
			},
		},
		{
			name:  "Escaped backslash before the closing quote",
			input: `p = "dir\\"`,
			expected: []Token{
				{Type: TokenIdentifier, Value: "p"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenString, Value: `dir\\`},
			},
		},
		{
			name:  "Arithmetic operators",
			input: "a + b - c * d / e % f",
			expected: []Token{
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenPlus, Value: "+"},
				{Type: TokenIdentifier, Value: "b"},
				{Type: TokenMinus, Value: "-"},
				{Type: TokenIdentifier, Value: "c"},
				{Type: TokenTimes, Value: "*"},
				{Type: TokenIdentifier, Value: "d"},
				{Type: TokenDivide, Value: "/"},
				{Type: TokenIdentifier, Value: "e"},
				{Type: TokenModulo, Value: "%"},
				{Type: TokenIdentifier, Value: "f"},
			},
		},
		{
			name:  "Comparison operators",
			input: "a == b != c <= d >= e < f > g",
			expected: []Token{
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenEquals, Value: "=="},
				{Type: TokenIdentifier, Value: "b"},
				{Type: TokenNotEquals, Value: "!="},
				{Type: TokenIdentifier, Value: "c"},
				{Type: TokenLessEq, Value: "<="},
				{Type: TokenIdentifier, Value: "d"},
				{Type: TokenGreaterEq, Value: ">="},
				{Type: TokenIdentifier, Value: "e"},
				{Type: TokenLess, Value: "<"},
				{Type: TokenIdentifier, Value: "f"},
				{Type: TokenGreater, Value: ">"},
				{Type: TokenIdentifier, Value: "g"},
			},
		},
		{
			name:  "kite does not close a for pattern",
			input: "numbers lo num kite",
			expected: []Token{
				{Type: TokenIdentifier, Value: "numbers"},
				{Type: TokenKeyword, Value: "in"},
				{Type: TokenIdentifier, Value: "num"},
				{Type: TokenIdentifier, Value: "kite"},
			},
		},
		{
			name:  "Digit-led loop variable packs",
			input: "items lo 2x ki",
			expected: []Token{
				{Type: TokenKeyword, Value: "for 2x in items"},
			},
		},
		{
			name:  "Tab separated multi-word keyword",
			input: "unnanta\tvaraku",
			expected: []Token{
				{Type: TokenKeyword, Value: "while"},
			},
		},
		{
			name:  "Newline run is one token",
			input: "a\n\n\nb",
			expected: []Token{
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenNewline, Value: "\n\n\n"},
				{Type: TokenIdentifier, Value: "b"},
			},
		},
		{
			name:  "Space breaks a newline run",
			input: "a\n \nb",
			expected: []Token{
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenNewline, Value: "\n"},
				{Type: TokenNewline, Value: "\n"},
				{Type: TokenIdentifier, Value: "b"},
			},
		},
		{
			name:  "Newlines suppressed inside parentheses",
			input: "f(1,\n2)",
			expected: []Token{
				{Type: TokenIdentifier, Value: "f"},
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenNumber, Value: "1"},
				{Type: TokenComma, Value: ","},
				{Type: TokenNumber, Value: "2"},
				{Type: TokenRightParen, Value: ")"},
			},
		},
		{
			name:  "Unmatched close paren keeps newlines",
			input: ")\na",
			expected: []Token{
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenNewline, Value: "\n"},
				{Type: TokenIdentifier, Value: "a"},
			},
		},
		{
			name:  "Postfix print",
			input: `("namaste")cheppu`,
			expected: []Token{
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenString, Value: "namaste"},
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenKeyword, Value: "print"},
			},
		},
		{
			name:  "Function definition header",
			input: "vidhanam adugu(a, b):",
			expected: []Token{
				{Type: TokenKeyword, Value: "def"},
				{Type: TokenIdentifier, Value: "adugu"},
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenComma, Value: ","},
				{Type: TokenIdentifier, Value: "b"},
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenColon, Value: ":"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := TokenizeInput(tt.input)

			if len(errs) != 0 {
				t.Errorf("Unexpected lexical errors: %v", errs)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d: %v", len(tt.expected), len(tokens), tokens)
			}
			for i, want := range tt.expected {
				if tokens[i].Type != want.Type {
					t.Errorf("Token %d: expected type %s, got %s", i, want.Type, tokens[i].Type)
				}
				if tokens[i].Value != want.Value {
					t.Errorf("Token %d: expected value %q, got %q", i, want.Value, tokens[i].Value)
				}
			}
		})
	}
}

func TestLexer_LexicalErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantTokens []Token // only Type and Value are compared
		wantErrs   []string
	}{
		{
			name:  "Illegal character is skipped",
			input: "x @ y",
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenIdentifier, Value: "y"},
			},
			wantErrs: []string{"Illegal character '@' at line 1"},
		},
		{
			name:  "Carriage return is illegal",
			input: "a\r",
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "a"},
			},
			wantErrs: []string{"Illegal character '\r' at line 1"},
		},
		{
			name:  "Bare exclamation mark is illegal",
			input: "a ! b",
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenIdentifier, Value: "b"},
			},
			wantErrs: []string{"Illegal character '!' at line 1"},
		},
		{
			name:  "Unterminated string resumes after the quote",
			input: `x = "abc`,
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenIdentifier, Value: "abc"},
			},
			wantErrs: []string{`Illegal character '"' at line 1`},
		},
		{
			name:  "Single quote is illegal",
			input: `msg = 'hi'`,
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "msg"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenIdentifier, Value: "hi"},
			},
			wantErrs: []string{
				"Illegal character ''' at line 1",
				"Illegal character ''' at line 1",
			},
		},
		{
			name:  "String cannot span a newline",
			input: "\"a\nb\"",
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenNewline, Value: "\n"},
				{Type: TokenIdentifier, Value: "b"},
			},
			wantErrs: []string{
				`Illegal character '"' at line 1`,
				`Illegal character '"' at line 2`,
			},
		},
		{
			name:  "Backslash at end of input leaves the string unterminated",
			input: `x = "abc\`,
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "x"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenIdentifier, Value: "abc"},
			},
			wantErrs: []string{
				`Illegal character '"' at line 1`,
				`Illegal character '\' at line 1`,
			},
		},
		{
			name:  "Error on later line reports its line",
			input: "a = 1\nb ? 2",
			wantTokens: []Token{
				{Type: TokenIdentifier, Value: "a"},
				{Type: TokenAssign, Value: "="},
				{Type: TokenNumber, Value: "1"},
				{Type: TokenNewline, Value: "\n"},
				{Type: TokenIdentifier, Value: "b"},
				{Type: TokenNumber, Value: "2"},
			},
			wantErrs: []string{"Illegal character '?' at line 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := TokenizeInput(tt.input)

			if len(errs) != len(tt.wantErrs) {
				t.Fatalf("Expected %d errors, got %d: %v", len(tt.wantErrs), len(errs), errs)
			}
			for i, want := range tt.wantErrs {
				if errs[i] != want {
					t.Errorf("Error %d: expected %q, got %q", i, want, errs[i])
				}
			}
			if len(tokens) != len(tt.wantTokens) {
				t.Fatalf("Expected %d tokens, got %d: %v", len(tt.wantTokens), len(tokens), tokens)
			}
			for i, want := range tt.wantTokens {
				if tokens[i].Type != want.Type || tokens[i].Value != want.Value {
					t.Errorf("Token %d: expected %s(%q), got %s(%q)",
						i, want.Type, want.Value, tokens[i].Type, tokens[i].Value)
				}
			}
		})
	}
}

func TestLexer_PositionTracking(t *testing.T) {
	lexer := NewLexer("x = 5\ny")

	expected := []Token{
		{Type: TokenIdentifier, Value: "x", Position: 0, Line: 1, Column: 1},
		{Type: TokenAssign, Value: "=", Position: 2, Line: 1, Column: 3},
		{Type: TokenNumber, Value: "5", Position: 4, Line: 1, Column: 5},
		{Type: TokenNewline, Value: "\n", Position: 5, Line: 2, Column: 0},
		{Type: TokenIdentifier, Value: "y", Position: 6, Line: 2, Column: 1},
		{Type: TokenEOF, Value: "", Position: 7, Line: 2, Column: 2},
	}

	for i, want := range expected {
		got := lexer.NextToken()
		if got != want {
			t.Errorf("Token %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestLexer_Lines(t *testing.T) {
	lexer := NewLexer("a = 1\n    b = 2")

	lines := lexer.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a = 1" {
		t.Errorf("Expected first line %q, got %q", "a = 1", lines[0])
	}
	if lines[1] != "    b = 2" {
		t.Errorf("Expected second line %q, got %q", "    b = 2", lines[1])
	}
}

func TestToken_String(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name:     "Keyword token",
			token:    Token{Type: TokenKeyword, Value: "if"},
			expected: "KEYWORD(if)",
		},
		{
			name:     "Newline token quotes its run",
			token:    Token{Type: TokenNewline, Value: "\n\n"},
			expected: `NEWLINE("\n\n")`,
		},
		{
			name:     "EOF token",
			token:    Token{Type: TokenEOF},
			expected: "EOF",
		},
		{
			name:     "Illegal token",
			token:    Token{Type: TokenIllegal, Value: "@"},
			expected: "ILLEGAL(@)",
		},
		{
			name:     "Identifier token",
			token:    Token{Type: TokenIdentifier, Value: "counter"},
			expected: "IDENTIFIER(counter)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		word      string
		want      string
		isKeyword bool
	}{
		{"okavela", "if", true},
		{"lekapothe", "else", true},
		{"aite", "", true},
		{"vidhanam", "def", true},
		{"ivvu", "return", true},
		{"lo", "in", true},
		{"ki", "", true},
		{"mariyu", "and", true},
		{"leda", "or", true},
		{"avvakapote", "not", true},
		{"Nijam", "True", true},
		{"Abaddam", "False", true},
		{"aagipo", "break", true},
		{"cheppu", "print", true},
		{"range", "", false},
		{"counter", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, ok := LookupKeyword(tt.word)
			if ok != tt.isKeyword {
				t.Fatalf("LookupKeyword(%q): expected ok=%v, got %v", tt.word, tt.isKeyword, ok)
			}
			if ok && got != tt.want {
				t.Errorf("LookupKeyword(%q): expected %q, got %q", tt.word, tt.want, got)
			}
		})
	}
}

func TestIsBuiltin(t *testing.T) {
	for _, name := range []string{"range", "len", "append", "str", "int", "float", "list", "dict"} {
		if !IsBuiltin(name) {
			t.Errorf("Expected %q to be a builtin", name)
		}
	}
	if IsBuiltin("okavela") {
		t.Error("Keywords are not builtins")
	}
	if IsBuiltin("counter") {
		t.Error("Plain identifiers are not builtins")
	}
}

// Benchmarks

func BenchmarkLexer_Tokenize(b *testing.B) {
	input := `vidhanam factorial(n):
    okavela n == 0 aite:
        1 ivvu
    n * factorial(n - 1) ivvu

(factorial(5))cheppu
`

	for i := 0; i < b.N; i++ {
		tokens, errs := TokenizeInput(input)
		if len(errs) != 0 {
			b.Fatal(errs)
		}
		if len(tokens) == 0 {
			b.Fatal("no tokens")
		}
	}
}

func BenchmarkLexer_ForPattern(b *testing.B) {
	input := "numbers lo num ki:"

	for i := 0; i < b.N; i++ {
		tokens, _ := TokenizeInput(input)
		if len(tokens) != 2 {
			b.Fatalf("expected 2 tokens, got %d", len(tokens))
		}
	}
}
