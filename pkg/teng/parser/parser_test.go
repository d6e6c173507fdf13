// File: parser_test.go
// Title: Tenglish Parser Unit Tests
// Description: Unit tests for the Tenglish parser. Tests cover statement
//              dispatch, postfix print and return forms, both for-loop
//              shapes, while loops, if/elif/else chains, function
//              definitions, expression precedence, block indentation
//              rules, and the exact error messages reported for
//              malformed input.
// Author: brahmic-lang maintainers
// Version: v0.1.2
// Created: 2026-06-14
// Modified: 2026-08-29
//
// Change History:
// - 2026-06-14 v0.1.0: Initial test suite
// - 2026-07-19 v0.1.1: Depth-aware postfix return cases
// - 2026-08-29 v0.1.2: Escaped string literal input follows the lexer's
//                      double-quote rule

package parser

import (
	"errors"
	"testing"

	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	tengast "github.com/brahmic-lang/brahmic/pkg/teng/ast"
)

// newTestParser builds a parser whose logger stays quiet below error level
func newTestParser(t *testing.T) *Parser {
	t.Helper()

	p, err := New(Options{Logger: corelog.New().WithLevel(corelog.LevelError)})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return p
}

func parseSource(t *testing.T, input string) (*tengast.Program, error) {
	t.Helper()
	return newTestParser(t).Parse(input)
}

func TestParser_New(t *testing.T) {
	p, err := New(Options{})
	if err != nil {
		t.Fatalf("New() with defaults failed: %v", err)
	}
	if p == nil {
		t.Fatal("New() returned nil parser")
	}
	if p.options.MaxInputLength != 1<<20 {
		t.Errorf("Expected default max input length %d, got %d", 1<<20, p.options.MaxInputLength)
	}
}

func TestParser_Statements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, program *tengast.Program)
	}{
		{
			name:  "Number assignment",
			input: "x = 5",
			check: func(t *testing.T, program *tengast.Program) {
				if len(program.Statements) != 1 {
					t.Fatalf("Expected 1 statement, got %d", len(program.Statements))
				}
				assign, ok := program.Statements[0].(*tengast.AssignStmt)
				if !ok {
					t.Fatalf("Expected *AssignStmt, got %T", program.Statements[0])
				}
				if assign.Name != "x" {
					t.Errorf("Expected name %q, got %q", "x", assign.Name)
				}
				num, ok := assign.Value.(*tengast.NumberLiteral)
				if !ok {
					t.Fatalf("Expected *NumberLiteral, got %T", assign.Value)
				}
				if num.Value != 5 {
					t.Errorf("Expected value 5, got %d", num.Value)
				}
			},
		},
		{
			name:  "String assignment",
			input: `name = "Ravi"`,
			check: func(t *testing.T, program *tengast.Program) {
				if got := program.Render(0); got != `name = "Ravi"` {
					t.Errorf("Expected %q, got %q", `name = "Ravi"`, got)
				}
			},
		},
		{
			name:  "Boolean assignment",
			input: "flag = Nijam",
			check: func(t *testing.T, program *tengast.Program) {
				if got := program.Render(0); got != "flag = True" {
					t.Errorf("Expected %q, got %q", "flag = True", got)
				}
			},
		},
		{
			name:  "List assignment",
			input: "nums = [1, 2, 3]",
			check: func(t *testing.T, program *tengast.Program) {
				if got := program.Render(0); got != "nums = [1, 2, 3]" {
					t.Errorf("Expected %q, got %q", "nums = [1, 2, 3]", got)
				}
			},
		},
		{
			name:  "Empty list assignment",
			input: "xs = []",
			check: func(t *testing.T, program *tengast.Program) {
				if got := program.Render(0); got != "xs = []" {
					t.Errorf("Expected %q, got %q", "xs = []", got)
				}
			},
		},
		{
			name:  "Call expression statement",
			input: "f(1, 2)",
			check: func(t *testing.T, program *tengast.Program) {
				stmt, ok := program.Statements[0].(*tengast.ExprStmt)
				if !ok {
					t.Fatalf("Expected *ExprStmt, got %T", program.Statements[0])
				}
				call, ok := stmt.Expression.(*tengast.CallExpr)
				if !ok {
					t.Fatalf("Expected *CallExpr, got %T", stmt.Expression)
				}
				if call.Name != "f" || len(call.Args) != 2 {
					t.Errorf("Expected f with 2 args, got %s with %d", call.Name, len(call.Args))
				}
			},
		},
		{
			name:  "Method call statement",
			input: "items.append(4)",
			check: func(t *testing.T, program *tengast.Program) {
				if got := program.Render(0); got != "items.append(4)" {
					t.Errorf("Expected %q, got %q", "items.append(4)", got)
				}
			},
		},
		{
			name:  "Attribute access",
			input: "x = obj.value",
			check: func(t *testing.T, program *tengast.Program) {
				if got := program.Render(0); got != "x = obj.value" {
					t.Errorf("Expected %q, got %q", "x = obj.value", got)
				}
			},
		},
		{
			name:  "Chained attribute and method",
			input: "x = a.b.c(1)",
			check: func(t *testing.T, program *tengast.Program) {
				if got := program.Render(0); got != "x = a.b.c(1)" {
					t.Errorf("Expected %q, got %q", "x = a.b.c(1)", got)
				}
			},
		},
		{
			name:  "Escaped quotes in string value",
			input: `msg = "He said \"hello\""`,
			check: func(t *testing.T, program *tengast.Program) {
				want := `msg = "He said \\\"hello\\\""`
				if got := program.Render(0); got != want {
					t.Errorf("Expected %q, got %q", want, got)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			tt.check(t, program)
		})
	}
}

func TestParser_Expressions(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "Precedence needs no parentheses",
			input:  "x = 2 + 3 * 4 - 1",
			expect: "x = 2 + 3 * 4 - 1",
		},
		{
			name:   "Grouping against precedence is kept",
			input:  "x = (2 + 3) * 4",
			expect: "x = (2 + 3) * 4",
		},
		{
			name:   "Right association is kept",
			input:  "x = 2 - (3 - 4)",
			expect: "x = 2 - (3 - 4)",
		},
		{
			name:   "Redundant grouping folds away",
			input:  "x = (2 * 3) + 4",
			expect: "x = 2 * 3 + 4",
		},
		{
			name:   "Logical operators translate",
			input:  "x = a leda b mariyu c",
			expect: "x = a or b and c",
		},
		{
			name:   "Unary minus binds tight",
			input:  "x = -y",
			expect: "x = -y",
		},
		{
			name:   "Unary minus over a binary operand",
			input:  "x = -(a + b)",
			expect: "x = -(a + b)",
		},
		{
			name:   "Prefix not",
			input:  "x = avvakapote flag",
			expect: "x = not flag",
		},
		{
			name:   "Comparison in arithmetic context",
			input:  "x = n % 2 == 0",
			expect: "x = n % 2 == 0",
		},
		{
			name:   "Division and modulo",
			input:  "x = a / b % c",
			expect: "x = a / b % c",
		},
		{
			name:   "Membership nested under and is parenthesized",
			input:  `x = user in ["admin", "mod"] mariyu active`,
			expect: `x = (user in ["admin", "mod"]) and active`,
		},
		{
			name:   "Plain membership keeps no parentheses",
			input:  "x = item in items",
			expect: "x = item in items",
		},
		{
			name:   "Call arguments are full expressions",
			input:  "x = f(a + 1, g(b))",
			expect: "x = f(a + 1, g(b))",
		},
		{
			name:   "Nested list literals",
			input:  "x = [[1, 2], [3]]",
			expect: "x = [[1, 2], [3]]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := program.Render(0); got != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestParser_IfStatements(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "Simple if with then marker",
			input:  "okavela x > 5 aite:\n    (\"big\")cheppu",
			expect: "if x > 5:\n    print(\"big\")",
		},
		{
			name:   "Negation marker wraps the condition",
			input:  "okavela flag avvakapote:\n    (\"off\")cheppu",
			expect: "if not flag:\n    print(\"off\")",
		},
		{
			name:   "Negation marker over a compound condition",
			input:  "okavela a mariyu b avvakapote:\n    (\"no\")cheppu",
			expect: "if not (a and b):\n    print(\"no\")",
		},
		{
			name:   "If else",
			input:  "okavela x aite:\n    y = 1\nlekapothe:\n    y = 2",
			expect: "if x:\n    y = 1\nelse:\n    y = 2",
		},
		{
			name:   "If elif else chain",
			input:  "okavela x < 0 aite:\n    (\"neg\")cheppu\nlekapothe okavela x == 0 aite:\n    (\"zero\")cheppu\nlekapothe:\n    (\"pos\")cheppu",
			expect: "if x < 0:\n    print(\"neg\")\nelif x == 0:\n    print(\"zero\")\nelse:\n    print(\"pos\")",
		},
		{
			name:   "Nested if",
			input:  "okavela a aite:\n    okavela b aite:\n        c = 1",
			expect: "if a:\n    if b:\n        c = 1",
		},
		{
			name:   "Marker is optional",
			input:  "okavela x > 0:\n    y = 1",
			expect: "if x > 0:\n    y = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := program.Render(0); got != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestParser_Loops(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
		check  func(t *testing.T, program *tengast.Program)
	}{
		{
			name:   "Packed for loop over an identifier",
			input:  "numbers lo num ki:\n    (num)cheppu",
			expect: "for num in numbers:\n    print(num)",
			check: func(t *testing.T, program *tengast.Program) {
				loop, ok := program.Statements[0].(*tengast.ForStmt)
				if !ok {
					t.Fatalf("Expected *ForStmt, got %T", program.Statements[0])
				}
				if loop.Variable != "num" {
					t.Errorf("Expected variable %q, got %q", "num", loop.Variable)
				}
				iter, ok := loop.Iterable.(*tengast.Identifier)
				if !ok {
					t.Fatalf("Expected *Identifier iterable, got %T", loop.Iterable)
				}
				if iter.Name != "numbers" {
					t.Errorf("Expected iterable %q, got %q", "numbers", iter.Name)
				}
			},
		},
		{
			name:   "For loop over a call",
			input:  "range(5) lo i ki:\n    (i)cheppu",
			expect: "for i in range(5):\n    print(i)",
			check: func(t *testing.T, program *tengast.Program) {
				loop, ok := program.Statements[0].(*tengast.ForStmt)
				if !ok {
					t.Fatalf("Expected *ForStmt, got %T", program.Statements[0])
				}
				if _, ok := loop.Iterable.(*tengast.CallExpr); !ok {
					t.Fatalf("Expected *CallExpr iterable, got %T", loop.Iterable)
				}
			},
		},
		{
			name:   "For loop over a method call",
			input:  "data.items() lo pair ki:\n    (pair)cheppu",
			expect: "for pair in data.items():\n    print(pair)",
		},
		{
			name:   "For loop over a parenthesized identifier",
			input:  "(xs) lo i ki:\n    (i)cheppu",
			expect: "for i in xs:\n    print(i)",
		},
		{
			name:   "While loop",
			input:  "x < 3 unnanta varaku:\n    x = x + 1",
			expect: "while x < 3:\n    x = x + 1",
		},
		{
			name:   "While with compound condition",
			input:  "x < 10 mariyu running unnanta varaku:\n    x = x + 1",
			expect: "while x < 10 and running:\n    x = x + 1",
		},
		{
			name:   "Break and continue in a loop body",
			input:  "items lo it ki:\n    okavela it == 2 aite:\n        aagipo\n    munduku vellu",
			expect: "for it in items:\n    if it == 2:\n        break\n    continue",
		},
		{
			name:   "Nested loops",
			input:  "rows lo r ki:\n    cols lo c ki:\n        (r, c)cheppu",
			expect: "for r in rows:\n    for c in cols:\n        print(r, c)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := program.Render(0); got != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, got)
			}
			if tt.check != nil {
				tt.check(t, program)
			}
		})
	}
}

func TestParser_Functions(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
		check  func(t *testing.T, program *tengast.Program)
	}{
		{
			name:   "Definition without parameters",
			input:  "vidhanam hello():\n    (\"hi\")cheppu",
			expect: "def hello():\n    print(\"hi\")",
			check: func(t *testing.T, program *tengast.Program) {
				def, ok := program.Statements[0].(*tengast.FuncDef)
				if !ok {
					t.Fatalf("Expected *FuncDef, got %T", program.Statements[0])
				}
				if def.Name != "hello" || len(def.Params) != 0 {
					t.Errorf("Expected hello(), got %s with %d params", def.Name, len(def.Params))
				}
			},
		},
		{
			name:   "Definition with parameters",
			input:  "vidhanam add(a, b):\n    (a + b) ivvu",
			expect: "def add(a, b):\n    return a + b",
			check: func(t *testing.T, program *tengast.Program) {
				def := program.Statements[0].(*tengast.FuncDef)
				if len(def.Params) != 2 || def.Params[0] != "a" || def.Params[1] != "b" {
					t.Errorf("Expected params [a b], got %v", def.Params)
				}
			},
		},
		{
			name:   "Bare prefix return",
			input:  "vidhanam f():\n    ivvu",
			expect: "def f():\n    return",
		},
		{
			name:   "Prefix return with a value",
			input:  "vidhanam f():\n    ivvu 5",
			expect: "def f():\n    return 5",
		},
		{
			name:   "Postfix return",
			input:  "vidhanam f(n):\n    n * 2 ivvu",
			expect: "def f(n):\n    return n * 2",
		},
		{
			name:   "Recursive call in a return",
			input:  "vidhanam fib(n):\n    fib(n - 1) + fib(n - 2) ivvu",
			expect: "def fib(n):\n    return fib(n - 1) + fib(n - 2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := program.Render(0); got != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, got)
			}
			if tt.check != nil {
				tt.check(t, program)
			}
		})
	}
}

func TestParser_PrintStatements(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "Single argument",
			input:  `("namaste")cheppu`,
			expect: `print("namaste")`,
		},
		{
			name:   "Multiple arguments",
			input:  `("x =", x)cheppu`,
			expect: `print("x =", x)`,
		},
		{
			name:   "No arguments",
			input:  "()cheppu",
			expect: "print()",
		},
		{
			name:   "Nested call argument",
			input:  "(factorial(5))cheppu",
			expect: "print(factorial(5))",
		},
		{
			name:   "Expression argument",
			input:  "(a + b * c)cheppu",
			expect: "print(a + b * c)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := program.Render(0); got != tt.expect {
				t.Errorf("Expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestParser_PostfixReturnDepth(t *testing.T) {
	// A parenthesized expression before the return keyword must stay one
	// statement even though the line starts at depth one
	program, err := parseSource(t, "vidhanam f(a, b):\n    (a + b) * 2 ivvu")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := "def f(a, b):\n    return (a + b) * 2"
	if got := program.Render(0); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	// A return keyword inside an argument list is not a postfix return
	_, err = parseSource(t, "f(ivvu)")
	if err == nil {
		t.Fatal("Expected error for return keyword inside argument list")
	}
	if !containsString(err.Error(), "Unexpected token: KEYWORD ('return')") {
		t.Errorf("Expected unexpected-token error, got %q", err.Error())
	}
}

func TestParser_Programs(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name: "Factorial",
			input: `vidhanam factorial(n):
    okavela n == 0 aite:
        1 ivvu
    n * factorial(n - 1) ivvu

(factorial(5))cheppu
`,
			expect: "def factorial(n):\n    if n == 0:\n        return 1\n    return n * factorial(n - 1)\n\nprint(factorial(5))",
		},
		{
			name: "While with break",
			input: `x = 10
x < 20 unnanta varaku:
    x = x + 5
    okavela x == 15 aite:
        aagipo

(x)cheppu
`,
			expect: "x = 10\nwhile x < 20:\n    x = x + 5\n    if x == 15:\n        break\n\nprint(x)",
		},
		{
			name: "Membership with logical operator",
			input: `okavela user in ["admin", "mod"] mariyu active aite:
    ("access")cheppu
`,
			expect: "if (user in [\"admin\", \"mod\"]) and active:\n    print(\"access\")",
		},
		{
			name: "Loop accumulating a total",
			input: `total = 0
[1, 2, 3] lo n ki:
    total = total + n

(total)cheppu
`,
			expect: "total = 0\nfor n in [1, 2, 3]:\n    total = total + n\n\nprint(total)",
		},
		{
			name: "Blank line ends a block",
			input: `items lo it ki:
    (it)cheppu

("done")cheppu
`,
			expect: "for it in items:\n    print(it)\n\nprint(\"done\")",
		},
		{
			name: "Consecutive blocks each get a separating blank line",
			input: `vidhanam a():
    1 ivvu

vidhanam b():
    2 ivvu

(a() + b())cheppu
`,
			expect: "def a():\n    return 1\n\ndef b():\n    return 2\n\nprint(a() + b())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := parseSource(t, tt.input)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := program.Render(0); got != tt.expect {
				t.Errorf("Expected:\n%s\nGot:\n%s", tt.expect, got)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "Statement-initial while keyword",
			input:  "unnanta varaku:",
			errMsg: "Unexpected keyword: 'while'",
		},
		{
			name:   "Statement-initial else keyword",
			input:  "lekapothe:",
			errMsg: "Unexpected keyword: 'else'",
		},
		{
			name:   "Statement-initial boolean keyword",
			input:  "Nijam mariyu x",
			errMsg: "Unexpected keyword: 'True'",
		},
		{
			name:   "Statement-initial iterable marker",
			input:  "lo x",
			errMsg: "Unexpected keyword: 'in'",
		},
		{
			name:   "Missing colon after if header",
			input:  "okavela x aite\ny = 1",
			errMsg: "Expected COLON, got NEWLINE",
		},
		{
			name:   "Missing colon after packed for header",
			input:  "numbers lo num ki",
			errMsg: "Expected COLON, got EOF",
		},
		{
			name:   "Incomplete for loop",
			input:  "numbers lo num\n",
			errMsg: "Incomplete for loop: missing 'ki' or ':'",
		},
		{
			name:   "Empty if body",
			input:  "okavela x aite:\ny = 1",
			errMsg: "If statement cannot have empty body. Expected indented statements after ':'.",
		},
		{
			name:   "Body on the header line",
			input:  "okavela x aite: y = 1",
			errMsg: "If statement cannot have empty body. Expected indented statements after ':'.",
		},
		{
			name:   "Empty elif body",
			input:  "okavela a aite:\n    b = 1\nlekapothe okavela c aite:\nd = 1",
			errMsg: "If statement cannot have empty body. Expected indented statements after ':'.",
		},
		{
			name:   "Empty else body",
			input:  "okavela a aite:\n    b = 1\nlekapothe:\nc = 1",
			errMsg: "If statement cannot have empty body. Expected indented statements after ':'.",
		},
		{
			name:   "Empty for body",
			input:  "numbers lo num ki:\nx = 1",
			errMsg: "For loop cannot have empty body. Expected indented statements after ':'.",
		},
		{
			name:   "Empty while body",
			input:  "x < 3 unnanta varaku:\ny = 1",
			errMsg: "While loop cannot have empty body. Expected indented statements after ':'.",
		},
		{
			name:   "Empty function body",
			input:  "vidhanam f():\nx = 1",
			errMsg: "Function cannot have empty body. Expected indented statements after ':'.",
		},
		{
			name:   "Function without parameter list",
			input:  "vidhanam f:",
			errMsg: "Expected LPAREN, got COLON",
		},
		{
			name:   "Malformed parameter list",
			input:  "vidhanam f(a b):",
			errMsg: "Expected ',' or ')' in parameter list",
		},
		{
			name:   "Malformed print arguments",
			input:  `("a" "b")cheppu`,
			errMsg: "Expected ',' or ')' in print statement",
		},
		{
			name:   "Malformed call arguments",
			input:  "f(1 2)",
			errMsg: "Expected ',' or ')' in function call",
		},
		{
			name:   "Malformed method call arguments",
			input:  "obj.m(1 2)",
			errMsg: "Expected ',' or ')' in method call",
		},
		{
			name:   "Malformed list literal",
			input:  "xs = [1 2]",
			errMsg: "Expected ',' or ']' in list literal",
		},
		{
			name:   "Unclosed parenthesis",
			input:  "x = (1 + 2",
			errMsg: "Expected RPAREN, got EOF",
		},
		{
			name:   "Assignment without a value",
			input:  "x =",
			errMsg: "Unexpected end of input",
		},
		{
			name:   "Statement starting with an operator",
			input:  "= 5",
			errMsg: "Unexpected token: ASSIGN ('=')",
		},
		{
			name:   "Number literal overflow",
			input:  "x = 99999999999999999999",
			errMsg: "Invalid number literal: 99999999999999999999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSource(t, tt.input)
			if err == nil {
				t.Fatalf("Expected error containing %q, got none", tt.errMsg)
			}
			if !containsString(err.Error(), tt.errMsg) {
				t.Errorf("Expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestParser_IncompleteFlag(t *testing.T) {
	_, err := parseSource(t, "numbers lo num\n")
	if err == nil {
		t.Fatal("Expected error for incomplete for loop")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if !parseErr.Incomplete {
		t.Error("Expected Incomplete to be set for a cut-off for loop")
	}

	// Ordinary syntax errors do not set the flag
	_, err = parseSource(t, "= 5")
	if err == nil {
		t.Fatal("Expected error")
	}
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if parseErr.Incomplete {
		t.Error("Expected Incomplete to be unset for a plain syntax error")
	}
}

func TestParser_ErrorPositions(t *testing.T) {
	_, err := parseSource(t, "x = 1\ny = [1 2]")
	if err == nil {
		t.Fatal("Expected error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if parseErr.Line != 2 {
		t.Errorf("Expected error on line 2, got line %d", parseErr.Line)
	}
	if !containsString(err.Error(), "parse error at line 2") {
		t.Errorf("Expected positioned message, got %q", err.Error())
	}
}

func TestParser_LexicalErrorsAreSkipped(t *testing.T) {
	// Illegal characters are dropped by the lexer; the parser sees the
	// surviving tokens
	program, err := parseSource(t, "x = 5 @")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := program.Render(0); got != "x = 5" {
		t.Errorf("Expected %q, got %q", "x = 5", got)
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	p, err := New(Options{
		Logger:         corelog.New().WithLevel(corelog.LevelError),
		MaxInputLength: 10,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	_, err = p.Parse("x = 111111111111")
	if err == nil {
		t.Fatal("Expected error for oversized input")
	}
	if !containsString(err.Error(), "input exceeds maximum length: 16 > 10") {
		t.Errorf("Expected length error, got %q", err.Error())
	}

	if _, err := p.Parse("x = 1"); err != nil {
		t.Errorf("Input within the limit failed: %v", err)
	}
}

func TestParser_ParseTokens(t *testing.T) {
	p := newTestParser(t)

	tokens := []Token{
		{Type: TokenIdentifier, Value: "x"},
		{Type: TokenAssign, Value: "="},
		{Type: TokenNumber, Value: "5"},
	}
	program, err := p.ParseTokens(tokens)
	if err != nil {
		t.Fatalf("ParseTokens failed: %v", err)
	}
	if got := program.Render(0); got != "x = 5" {
		t.Errorf("Expected %q, got %q", "x = 5", got)
	}

	// Without source lines the parser falls back to simple blocks that
	// end at a blank line
	tokens = []Token{
		{Type: TokenKeyword, Value: "if"},
		{Type: TokenIdentifier, Value: "x"},
		{Type: TokenKeyword, Value: ""},
		{Type: TokenColon, Value: ":"},
		{Type: TokenNewline, Value: "\n"},
		{Type: TokenIdentifier, Value: "y"},
		{Type: TokenAssign, Value: "="},
		{Type: TokenNumber, Value: "1"},
		{Type: TokenNewline, Value: "\n\n"},
		{Type: TokenIdentifier, Value: "z"},
		{Type: TokenAssign, Value: "="},
		{Type: TokenNumber, Value: "2"},
	}
	program, err = p.ParseTokens(tokens)
	if err != nil {
		t.Fatalf("ParseTokens failed: %v", err)
	}
	want := "if x:\n    y = 1\n\nz = 2"
	if got := program.Render(0); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		expected string
	}{
		{
			name: "Position and token",
			err: &ParseError{
				Message: "test error",
				Line:    2,
				Column:  5,
				Token:   Token{Value: "TEST"},
			},
			expected: "parse error at line 2, column 5: test error (near 'TEST')",
		},
		{
			name:     "Message only",
			err:      &ParseError{Message: "Unexpected end of input"},
			expected: "Unexpected end of input",
		},
		{
			name:     "Position without token",
			err:      &ParseError{Message: "missing colon", Line: 3, Column: 7},
			expected: "parse error at line 3, column 7: missing colon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

// containsString reports whether substr occurs within s
func containsString(s, substr string) bool {
	if len(substr) == 0 {
		return true
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// Benchmarks

func BenchmarkParser_Parse(b *testing.B) {
	p, err := New(Options{Logger: corelog.New().WithLevel(corelog.LevelError)})
	if err != nil {
		b.Fatal(err)
	}

	input := `vidhanam factorial(n):
    okavela n == 0 aite:
        1 ivvu
    n * factorial(n - 1) ivvu

(factorial(5))cheppu
`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParser_ParseExpression(b *testing.B) {
	p, err := New(Options{Logger: corelog.New().WithLevel(corelog.LevelError)})
	if err != nil {
		b.Fatal(err)
	}

	input := "x = (a + b) * c - d / e % f mariyu g leda avvakapote h"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
