// File: parser.go
// Title: Tenglish Recursive Descent Parser
// Description: Converts token streams into Abstract Syntax Trees using
//              recursive descent parsing. Statement forms that are only
//              recognizable by their trailing keyword (postfix print,
//              postfix return, for and while headers) are detected with
//              speculative scans over the current logical line before
//              committing to a parse.
// Author: brahmic-lang maintainers
// Version: v0.1.2
// Created: 2026-06-15
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-15 v0.1.0: Initial parser implementation
// - 2026-07-18 v0.1.1: Empty-body validation on every block construct
// - 2026-08-02 v0.1.2: Postfix return detection is parenthesis-depth aware

package parser

import (
	"fmt"
	"strconv"
	"strings"

	corelog "github.com/brahmic-lang/brahmic/internal/core/log"
	tengast "github.com/brahmic-lang/brahmic/pkg/teng/ast"
)

// Parser implements recursive descent parsing for Tenglish
type Parser struct {
	stream  *TokenStream
	lines   []string // raw source lines; nil when parsing bare token slices
	logger  *corelog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *corelog.Logger
	MaxInputLength int
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message    string
	Line       int
	Column     int
	Token      Token
	Incomplete bool // true for construct headers cut off mid-form
}

func (pe *ParseError) Error() string {
	msg := pe.Message
	if pe.Line > 0 {
		msg = fmt.Sprintf("parse error at line %d, column %d: %s", pe.Line, pe.Column, pe.Message)
	}
	if pe.Token.Value != "" {
		msg += fmt.Sprintf(" (near '%s')", pe.Token.Value)
	}
	return msg
}

// New creates a new Tenglish parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = corelog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 1 << 20
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "teng-parser"),
		options: opts,
	}, nil
}

// Parse parses Tenglish source text and returns the program tree.
// Lexical errors are reported through the logger and do not abort the
// parse; syntax errors do.
func (p *Parser) Parse(input string) (*tengast.Program, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)
	}

	lexer := NewLexer(input)
	tokens, lexErrs := lexer.Tokenize()
	for _, msg := range lexErrs {
		p.logger.Warn("Lexical error", corelog.Fields{"error": msg})
	}

	p.lines = lexer.Lines()
	p.stream = NewTokenStream(tokens)

	p.logger.Debug("Starting parse", corelog.Fields{
		"length": len(input),
		"tokens": len(tokens),
	})

	program, err := p.parseProgram()
	if err != nil {
		p.logger.Warn("Parse failed", corelog.Fields{"error": err.Error()})
		return nil, err
	}

	p.logger.Debug("Parse completed", corelog.Fields{
		"statements": len(program.Statements),
	})

	return program, nil
}

// ParseTokens parses an already-tokenized program. Without raw source
// lines no indentation information is available, so blocks extend until
// a dedent cannot be detected: an else/elif keyword, a blank line, or
// the end of input.
func (p *Parser) ParseTokens(tokens []Token) (*tengast.Program, error) {
	p.lines = nil
	p.stream = NewTokenStream(tokens)
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*tengast.Program, error) {
	program := &tengast.Program{}

	for !p.stream.AtEnd() {
		if p.stream.Current().Type == TokenNewline {
			p.stream.Consume()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
	}

	return program, nil
}

// parseStatement dispatches on the statement's shape. Order matters:
// keyword-led statements first, then the postfix detections (print before
// return), then the loop header scans, then assignment, and finally a
// bare expression.
func (p *Parser) parseStatement() (tengast.Stmt, error) {
	token := p.stream.Current()

	if token.Type == TokenKeyword {
		switch {
		case token.Value == kwIf:
			return p.parseIfStatement()
		case token.Value == kwDef:
			return p.parseFunctionDefinition()
		case token.Value == kwReturn:
			return p.parsePrefixReturn()
		case token.Value == kwBreak:
			p.stream.Consume()
			return &tengast.BreakStmt{Pos: position(token)}, nil
		case token.Value == kwContinue:
			p.stream.Consume()
			return &tengast.ContinueStmt{Pos: position(token)}, nil
		case strings.HasPrefix(token.Value, "for "):
			return p.parsePackedForLoop()
		default:
			p.stream.Consume()
			return nil, p.syntaxError(token, fmt.Sprintf("Unexpected keyword: '%s'", token.Value))
		}
	}

	if p.isPrintStatement() {
		return p.parsePrintStatement()
	}

	if p.isPostfixReturn() {
		return p.parsePostfixReturn()
	}

	if p.isTeluguForLoop() {
		return p.parseForLoop()
	}

	if p.isTeluguWhileLoop() {
		return p.parseWhileLoop()
	}

	if token.Type == TokenIdentifier && p.stream.Peek(1).Type == TokenAssign {
		return p.parseAssignment()
	}

	if p.isIncompleteForLoop() {
		return nil, p.incompleteError(token, "Incomplete for loop: missing 'ki' or ':'")
	}

	return p.parseExpressionStatement()
}

// ============================================================================
// STATEMENT DETECTION SCANS
// ============================================================================

// isPrintStatement reports whether the statement is a postfix print:
// a parenthesized argument list whose closing parenthesis is directly
// followed by the print keyword.
func (p *Parser) isPrintStatement() bool {
	if p.stream.Current().Type != TokenLeftParen {
		return false
	}

	mark := p.stream.Save()
	defer p.stream.Restore(mark)

	depth := 0
	for !p.stream.AtEnd() {
		tok := p.stream.Consume()
		switch tok.Type {
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
			if depth == 0 {
				next := p.stream.Current()
				return next.Type == TokenKeyword && next.Value == kwPrint
			}
		case TokenNewline:
			return false
		}
	}
	return false
}

// isPostfixReturn reports whether the current logical line carries a
// return keyword at parenthesis depth 0. A return marker inside an
// argument list belongs to the expression, not the statement.
func (p *Parser) isPostfixReturn() bool {
	mark := p.stream.Save()
	defer p.stream.Restore(mark)

	depth := 0
	for !p.stream.AtEnd() {
		tok := p.stream.Current()
		switch tok.Type {
		case TokenNewline:
			return false
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
		case TokenKeyword:
			if tok.Value == kwReturn && depth == 0 {
				return true
			}
		}
		p.stream.Consume()
	}
	return false
}

// isTeluguForLoop reports whether the current logical line is a for-loop
// header: a depth-0 iterable marker followed by the loop variable, the
// variable marker and a colon. Only the first candidate marker counts.
func (p *Parser) isTeluguForLoop() bool {
	mark := p.stream.Save()
	defer p.stream.Restore(mark)

	depth := 0
	for !p.stream.AtEnd() {
		tok := p.stream.Current()
		switch tok.Type {
		case TokenNewline:
			return false
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
		case TokenKeyword:
			if tok.Value == kwIn && depth == 0 {
				return p.stream.Peek(1).Type == TokenIdentifier &&
					p.stream.Peek(2).Type == TokenKeyword &&
					p.stream.Peek(3).Type == TokenColon
			}
		}
		p.stream.Consume()
	}
	return false
}

// isIncompleteForLoop reports whether the line starts a for-loop header
// but is missing the variable marker or the colon
func (p *Parser) isIncompleteForLoop() bool {
	mark := p.stream.Save()
	defer p.stream.Restore(mark)

	depth := 0
	for !p.stream.AtEnd() {
		tok := p.stream.Current()
		switch tok.Type {
		case TokenNewline:
			return false
		case TokenLeftParen:
			depth++
		case TokenRightParen:
			depth--
		case TokenKeyword:
			if tok.Value == kwIn && depth == 0 {
				if p.stream.Peek(1).Type != TokenIdentifier {
					return false
				}
				return p.stream.Peek(2).Type != TokenKeyword ||
					p.stream.Peek(3).Type != TokenColon
			}
		}
		p.stream.Consume()
	}
	return false
}

// isTeluguWhileLoop reports whether the current logical line carries a
// while keyword directly followed by a colon
func (p *Parser) isTeluguWhileLoop() bool {
	mark := p.stream.Save()
	defer p.stream.Restore(mark)

	for !p.stream.AtEnd() {
		tok := p.stream.Current()
		if tok.Type == TokenNewline {
			return false
		}
		if tok.Type == TokenKeyword && tok.Value == kwWhile {
			return p.stream.Peek(1).Type == TokenColon
		}
		p.stream.Consume()
	}
	return false
}

// ============================================================================
// STATEMENT PARSERS
// ============================================================================

func (p *Parser) parseIfStatement() (tengast.Stmt, error) {
	ifTok := p.stream.Consume() // 'okavela'

	condition, err := p.parseExpression(p.stream)
	if err != nil {
		return nil, err
	}

	// Optional then-marker: aite is consumed silently, avvakapote
	// negates the condition
	cur := p.stream.Current()
	if cur.Type == TokenKeyword && cur.Value == kwMarker {
		p.stream.Consume()
	} else if cur.Type == TokenKeyword && cur.Value == kwNot {
		p.stream.Consume()
		condition = &tengast.UnaryExpr{Op: "not", Operand: condition, Pos: position(cur)}
	}

	if _, err := p.stream.Expect(TokenColon); err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if len(then) == 0 {
		return nil, p.syntaxError(ifTok, "If statement cannot have empty body. Expected indented statements after ':'.")
	}

	var elifs []*tengast.ElifClause
	for {
		cur := p.stream.Current()
		if cur.Type != TokenKeyword || cur.Value != kwElif {
			break
		}
		elifTok := p.stream.Consume()

		elifCond, err := p.parseExpression(p.stream)
		if err != nil {
			return nil, err
		}
		if marker := p.stream.Current(); marker.Type == TokenKeyword && marker.Value == kwMarker {
			p.stream.Consume()
		}
		if _, err := p.stream.Expect(TokenColon); err != nil {
			return nil, err
		}

		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if len(body) == 0 {
			return nil, p.syntaxError(elifTok, "If statement cannot have empty body. Expected indented statements after ':'.")
		}

		elifs = append(elifs, &tengast.ElifClause{Condition: elifCond, Body: body, Pos: position(elifTok)})
	}

	var elseBlock []tengast.Stmt
	if cur := p.stream.Current(); cur.Type == TokenKeyword && cur.Value == kwElse {
		elseTok := p.stream.Consume()
		if _, err := p.stream.Expect(TokenColon); err != nil {
			return nil, err
		}

		elseBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
		if len(elseBlock) == 0 {
			return nil, p.syntaxError(elseTok, "If statement cannot have empty body. Expected indented statements after ':'.")
		}
	}

	return &tengast.IfStmt{
		Condition: condition,
		Then:      then,
		Elifs:     elifs,
		Else:      elseBlock,
		Pos:       position(ifTok),
	}, nil
}

func (p *Parser) parseFunctionDefinition() (tengast.Stmt, error) {
	defTok := p.stream.Consume() // 'vidhanam'

	nameTok, err := p.stream.Expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.stream.Expect(TokenLeftParen); err != nil {
		return nil, err
	}

	var params []string
	if p.stream.Current().Type != TokenRightParen {
		for {
			paramTok, err := p.stream.Expect(TokenIdentifier)
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Value)

			if p.stream.Current().Type == TokenComma {
				p.stream.Consume()
				continue
			}
			if p.stream.Current().Type == TokenRightParen {
				break
			}
			return nil, p.syntaxError(p.stream.Current(), "Expected ',' or ')' in parameter list")
		}
	}

	if _, err := p.stream.Expect(TokenRightParen); err != nil {
		return nil, err
	}
	if _, err := p.stream.Expect(TokenColon); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, p.syntaxError(defTok, "Function cannot have empty body. Expected indented statements after ':'.")
	}

	return &tengast.FuncDef{
		Name:   nameTok.Value,
		Params: params,
		Body:   body,
		Pos:    position(defTok),
	}, nil
}

// parsePrefixReturn parses "ivvu [value]" at statement start
func (p *Parser) parsePrefixReturn() (tengast.Stmt, error) {
	retTok := p.stream.Consume() // 'ivvu'

	if p.stream.AtEnd() || p.stream.Current().Type == TokenNewline {
		return &tengast.ReturnStmt{Pos: position(retTok)}, nil
	}

	value, err := p.parseExpression(p.stream)
	if err != nil {
		return nil, err
	}
	return &tengast.ReturnStmt{Value: value, Pos: position(retTok)}, nil
}

// parsePostfixReturn parses "value ivvu"
func (p *Parser) parsePostfixReturn() (tengast.Stmt, error) {
	first := p.stream.Current()

	value, err := p.parseExpression(p.stream)
	if err != nil {
		return nil, err
	}

	cur := p.stream.Current()
	if cur.Type != TokenKeyword || cur.Value != kwReturn {
		got := cur.Value
		if p.stream.AtEnd() {
			got = "EOF"
		}
		return nil, p.syntaxError(cur, fmt.Sprintf("Expected 'ivvu' (return), got '%s'", got))
	}
	p.stream.Consume()

	return &tengast.ReturnStmt{Value: value, Pos: position(first)}, nil
}

// parsePrintStatement parses "(args)cheppu"
func (p *Parser) parsePrintStatement() (tengast.Stmt, error) {
	first := p.stream.Current()

	if _, err := p.stream.Expect(TokenLeftParen); err != nil {
		return nil, err
	}

	var args []tengast.Expr
	if p.stream.Current().Type != TokenRightParen {
		for {
			arg, err := p.parseExpression(p.stream)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.stream.Current().Type == TokenComma {
				p.stream.Consume()
				continue
			}
			if p.stream.Current().Type == TokenRightParen {
				break
			}
			return nil, p.syntaxError(p.stream.Current(), "Expected ',' or ')' in print statement")
		}
	}

	if _, err := p.stream.Expect(TokenRightParen); err != nil {
		return nil, err
	}

	cur := p.stream.Current()
	if cur.Type != TokenKeyword || cur.Value != kwPrint {
		got := cur.Value
		if p.stream.AtEnd() {
			got = "EOF"
		}
		return nil, p.syntaxError(cur, fmt.Sprintf("Expected 'cheppu' (print), got '%s'", got))
	}
	p.stream.Consume()

	return &tengast.PrintStmt{Args: args, Pos: position(first)}, nil
}

// parseForLoop parses "iterable lo var ki:" where the iterable is a
// full expression
func (p *Parser) parseForLoop() (tengast.Stmt, error) {
	first := p.stream.Current()

	iterable, err := p.parseExpression(p.stream)
	if err != nil {
		return nil, err
	}

	cur := p.stream.Current()
	if cur.Type != TokenKeyword || cur.Value != kwIn {
		return nil, p.syntaxError(cur, fmt.Sprintf("Expected 'lo' keyword, got '%s'", cur.Value))
	}
	p.stream.Consume()

	varTok, err := p.stream.Expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	// The ki marker: any keyword token, its value is not checked
	if _, err := p.stream.Expect(TokenKeyword); err != nil {
		return nil, err
	}
	if _, err := p.stream.Expect(TokenColon); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, p.syntaxError(first, "For loop cannot have empty body. Expected indented statements after ':'.")
	}

	return &tengast.ForStmt{
		Variable: varTok.Value,
		Iterable: iterable,
		Body:     body,
		Pos:      position(first),
	}, nil
}

// parsePackedForLoop parses a for-loop header the lexer packed into one
// keyword token of the form "for var in iterable"
func (p *Parser) parsePackedForLoop() (tengast.Stmt, error) {
	kwTok := p.stream.Consume()

	parts := strings.Split(kwTok.Value, " ")
	if len(parts) != 4 || parts[0] != "for" || parts[2] != "in" {
		return nil, p.syntaxError(kwTok, fmt.Sprintf("Invalid for loop format: %s", kwTok.Value))
	}
	variable := parts[1]
	iterable := &tengast.Identifier{Name: parts[3], Pos: position(kwTok)}

	if _, err := p.stream.Expect(TokenColon); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, p.syntaxError(kwTok, "For loop cannot have empty body. Expected indented statements after ':'.")
	}

	return &tengast.ForStmt{
		Variable: variable,
		Iterable: iterable,
		Body:     body,
		Pos:      position(kwTok),
	}, nil
}

// parseWhileLoop parses "condition unnanta varaku:". The condition
// tokens before the while keyword are parsed as their own stream.
func (p *Parser) parseWhileLoop() (tengast.Stmt, error) {
	first := p.stream.Current()

	var condTokens []Token
	for !p.stream.AtEnd() {
		cur := p.stream.Current()
		if cur.Type == TokenKeyword && cur.Value == kwWhile {
			break
		}
		condTokens = append(condTokens, p.stream.Consume())
	}

	if len(condTokens) == 0 {
		return nil, p.syntaxError(first, "Missing condition in while loop")
	}

	condition, err := p.parseExpression(NewTokenStream(condTokens))
	if err != nil {
		return nil, err
	}

	if _, err := p.stream.Expect(TokenKeyword); err != nil { // the while keyword
		return nil, err
	}
	if _, err := p.stream.Expect(TokenColon); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, p.syntaxError(first, "While loop cannot have empty body. Expected indented statements after ':'.")
	}

	return &tengast.WhileStmt{Condition: condition, Body: body, Pos: position(first)}, nil
}

func (p *Parser) parseAssignment() (tengast.Stmt, error) {
	nameTok := p.stream.Consume()

	if _, err := p.stream.Expect(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(p.stream)
	if err != nil {
		return nil, err
	}

	return &tengast.AssignStmt{Name: nameTok.Value, Value: value, Pos: position(nameTok)}, nil
}

func (p *Parser) parseExpressionStatement() (tengast.Stmt, error) {
	first := p.stream.Current()

	expr, err := p.parseExpression(p.stream)
	if err != nil {
		return nil, err
	}

	return &tengast.ExprStmt{Expression: expr, Pos: position(first)}, nil
}

// ============================================================================
// BLOCK PARSING
// ============================================================================

// parseBlock parses the indented statements following a construct
// header. The block extends while statement lines are indented deeper
// than the header line; a dedent, an else/elif keyword, or a blank line
// terminates it.
func (p *Parser) parseBlock() ([]tengast.Stmt, error) {
	if p.lines == nil {
		return p.parseSimpleBlock()
	}

	baseIndent := p.currentLineIndent()

	// Step over the newline that follows the header's colon
	if p.stream.Current().Type == TokenNewline {
		p.stream.Consume()
	}

	var statements []tengast.Stmt
	for !p.stream.AtEnd() {
		tok := p.stream.Current()

		if tok.Type == TokenNewline {
			if strings.Contains(tok.Value, "\n\n") {
				p.stream.Consume()
				break // blank line ends the block
			}
			p.stream.Consume()
			continue
		}

		if tok.Type == TokenKeyword && (tok.Value == kwElse || tok.Value == kwElif) {
			break
		}

		if p.lineIndent(tok) <= baseIndent {
			break // dedent, token belongs to an outer block
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

// parseSimpleBlock consumes statements without indentation information,
// stopping at an else/elif keyword, a blank line, or the end of input
func (p *Parser) parseSimpleBlock() ([]tengast.Stmt, error) {
	if p.stream.Current().Type == TokenNewline {
		p.stream.Consume()
	}

	var statements []tengast.Stmt
	for !p.stream.AtEnd() {
		tok := p.stream.Current()

		if tok.Type == TokenNewline {
			if strings.Contains(tok.Value, "\n\n") {
				p.stream.Consume()
				break
			}
			p.stream.Consume()
			continue
		}

		if tok.Type == TokenKeyword && (tok.Value == kwElse || tok.Value == kwElif) {
			break
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

// currentLineIndent returns the indentation of the line holding the
// construct header, measured at the last token before the next newline
func (p *Parser) currentLineIndent() int {
	for i := 0; ; i++ {
		tok := p.stream.Peek(i)
		if tok.Type == TokenNewline || tok.Type == TokenEOF {
			return p.lineIndent(p.stream.Peek(i - 1))
		}
	}
}

// lineIndent measures the leading whitespace of the token's source line.
// A space counts 1, a tab counts 8.
func (p *Parser) lineIndent(tok Token) int {
	if tok.Line <= 0 || tok.Line > len(p.lines) {
		return 0
	}

	line := p.lines[tok.Line-1]
	indent := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case ' ':
			indent++
		case '\t':
			indent += 8
		default:
			return indent
		}
	}
	return indent
}

// ============================================================================
// EXPRESSION PARSING
// ============================================================================

// parseExpression parses a full expression from the given stream. The
// while-loop condition is parsed from its own sub-stream, so the stream
// is always passed explicitly.
func (p *Parser) parseExpression(ts *TokenStream) (tengast.Expr, error) {
	return p.parseLogicalOr(ts)
}

func (p *Parser) parseLogicalOr(ts *TokenStream) (tengast.Expr, error) {
	left, err := p.parseLogicalAnd(ts)
	if err != nil {
		return nil, err
	}

	for {
		cur := ts.Current()
		if cur.Type != TokenKeyword || cur.Value != kwOr {
			break
		}
		ts.Consume()

		right, err := p.parseLogicalAnd(ts)
		if err != nil {
			return nil, err
		}
		left = &tengast.BinaryExpr{Left: left, Op: "or", Right: right, Pos: position(cur)}
	}

	return left, nil
}

func (p *Parser) parseLogicalAnd(ts *TokenStream) (tengast.Expr, error) {
	left, err := p.parseEquality(ts)
	if err != nil {
		return nil, err
	}

	for {
		cur := ts.Current()
		if cur.Type != TokenKeyword || cur.Value != kwAnd {
			break
		}
		ts.Consume()

		right, err := p.parseEquality(ts)
		if err != nil {
			return nil, err
		}
		left = &tengast.BinaryExpr{Left: left, Op: "and", Right: right, Pos: position(cur)}
	}

	return left, nil
}

func (p *Parser) parseEquality(ts *TokenStream) (tengast.Expr, error) {
	left, err := p.parseComparison(ts)
	if err != nil {
		return nil, err
	}

	for ts.Current().Type == TokenEquals || ts.Current().Type == TokenNotEquals {
		op := ts.Consume()

		right, err := p.parseComparison(ts)
		if err != nil {
			return nil, err
		}
		left = &tengast.BinaryExpr{Left: left, Op: op.Value, Right: right, Pos: position(op)}
	}

	return left, nil
}

func (p *Parser) parseComparison(ts *TokenStream) (tengast.Expr, error) {
	left, err := p.parseAdditive(ts)
	if err != nil {
		return nil, err
	}

	for isComparisonOp(ts.Current().Type) {
		op := ts.Consume()

		right, err := p.parseAdditive(ts)
		if err != nil {
			return nil, err
		}
		left = &tengast.BinaryExpr{Left: left, Op: op.Value, Right: right, Pos: position(op)}
	}

	return left, nil
}

func isComparisonOp(t TokenType) bool {
	switch t {
	case TokenLess, TokenLessEq, TokenGreater, TokenGreaterEq, TokenIn:
		return true
	}
	return false
}

func (p *Parser) parseAdditive(ts *TokenStream) (tengast.Expr, error) {
	left, err := p.parseMultiplicative(ts)
	if err != nil {
		return nil, err
	}

	for ts.Current().Type == TokenPlus || ts.Current().Type == TokenMinus {
		op := ts.Consume()

		right, err := p.parseMultiplicative(ts)
		if err != nil {
			return nil, err
		}
		left = &tengast.BinaryExpr{Left: left, Op: op.Value, Right: right, Pos: position(op)}
	}

	return left, nil
}

func (p *Parser) parseMultiplicative(ts *TokenStream) (tengast.Expr, error) {
	left, err := p.parseUnary(ts)
	if err != nil {
		return nil, err
	}

	for ts.Current().Type == TokenTimes || ts.Current().Type == TokenDivide || ts.Current().Type == TokenModulo {
		op := ts.Consume()

		right, err := p.parseUnary(ts)
		if err != nil {
			return nil, err
		}
		left = &tengast.BinaryExpr{Left: left, Op: op.Value, Right: right, Pos: position(op)}
	}

	return left, nil
}

func (p *Parser) parseUnary(ts *TokenStream) (tengast.Expr, error) {
	cur := ts.Current()

	if cur.Type == TokenMinus || cur.Type == TokenPlus {
		ts.Consume()
		operand, err := p.parseUnary(ts)
		if err != nil {
			return nil, err
		}
		return &tengast.UnaryExpr{Op: cur.Value, Operand: operand, Pos: position(cur)}, nil
	}

	if cur.Type == TokenKeyword && cur.Value == kwNot {
		ts.Consume()
		operand, err := p.parseUnary(ts)
		if err != nil {
			return nil, err
		}
		return &tengast.UnaryExpr{Op: "not", Operand: operand, Pos: position(cur)}, nil
	}

	return p.parsePrimary(ts)
}

func (p *Parser) parsePrimary(ts *TokenStream) (tengast.Expr, error) {
	if ts.AtEnd() {
		return nil, &ParseError{Message: "Unexpected end of input"}
	}

	tok := ts.Current()

	switch tok.Type {
	case TokenNumber:
		ts.Consume()
		n, err := strconv.ParseInt(tok.Value, 10, 64)
		if err != nil {
			return nil, p.syntaxError(tok, fmt.Sprintf("Invalid number literal: %s", tok.Value))
		}
		return &tengast.NumberLiteral{Value: n, Pos: position(tok)}, nil

	case TokenString:
		ts.Consume()
		return &tengast.StringLiteral{Value: tok.Value, Pos: position(tok)}, nil

	case TokenIdentifier:
		ts.Consume()
		return p.parsePostfixChain(ts, &tengast.Identifier{Name: tok.Value, Pos: position(tok)})

	case TokenKeyword:
		if tok.Value == kwTrue || tok.Value == kwFalse {
			ts.Consume()
			return &tengast.BooleanLiteral{Value: tok.Value == kwTrue, Pos: position(tok)}, nil
		}

	case TokenLeftParen:
		ts.Consume()
		expr, err := p.parseExpression(ts)
		if err != nil {
			return nil, err
		}
		if _, err := ts.Expect(TokenRightParen); err != nil {
			return nil, err
		}
		// Grouping affects parse shape only; no wrapper node
		return expr, nil

	case TokenLeftBracket:
		return p.parseListLiteral(ts)
	}

	return nil, p.syntaxError(tok, fmt.Sprintf("Unexpected token: %s ('%s')", tok.Type.String(), tok.Value))
}

// parsePostfixChain parses trailing attribute access, method calls and
// function calls after a primary expression
func (p *Parser) parsePostfixChain(ts *TokenStream, expr tengast.Expr) (tengast.Expr, error) {
	for {
		cur := ts.Current()

		if cur.Type == TokenDot {
			ts.Consume()
			nameTok, err := ts.Expect(TokenIdentifier)
			if err != nil {
				return nil, err
			}

			if ts.Current().Type == TokenLeftParen {
				ts.Consume()
				args, err := p.parseCallArgs(ts, "Expected ',' or ')' in method call")
				if err != nil {
					return nil, err
				}
				if _, err := ts.Expect(TokenRightParen); err != nil {
					return nil, err
				}
				expr = &tengast.MethodCallExpr{Object: expr, Method: nameTok.Value, Args: args, Pos: position(cur)}
			} else {
				expr = &tengast.AttributeExpr{Object: expr, Attribute: nameTok.Value, Pos: position(cur)}
			}
			continue
		}

		if cur.Type == TokenLeftParen {
			ts.Consume()
			args, err := p.parseCallArgs(ts, "Expected ',' or ')' in function call")
			if err != nil {
				return nil, err
			}
			if _, err := ts.Expect(TokenRightParen); err != nil {
				return nil, err
			}

			name := ""
			if id, ok := expr.(*tengast.Identifier); ok {
				name = id.Name
			} else {
				name = expr.String()
			}
			expr = &tengast.CallExpr{Name: name, Args: args, Pos: expr.Position()}
			continue
		}

		return expr, nil
	}
}

// parseCallArgs parses a comma-separated argument list up to (but not
// consuming) the closing parenthesis
func (p *Parser) parseCallArgs(ts *TokenStream, errMsg string) ([]tengast.Expr, error) {
	var args []tengast.Expr

	if ts.Current().Type == TokenRightParen {
		return args, nil
	}

	for {
		arg, err := p.parseExpression(ts)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		if ts.Current().Type == TokenComma {
			ts.Consume()
			continue
		}
		if ts.Current().Type == TokenRightParen {
			return args, nil
		}
		return nil, p.syntaxError(ts.Current(), errMsg)
	}
}

func (p *Parser) parseListLiteral(ts *TokenStream) (tengast.Expr, error) {
	openTok := ts.Consume() // '['

	var elements []tengast.Expr
	if ts.Current().Type != TokenRightBracket {
		for {
			elem, err := p.parseExpression(ts)
			if err != nil {
				return nil, err
			}
			elements = append(elements, elem)

			if ts.Current().Type == TokenComma {
				ts.Consume()
				continue
			}
			if ts.Current().Type == TokenRightBracket {
				break
			}
			return nil, p.syntaxError(ts.Current(), "Expected ',' or ']' in list literal")
		}
	}

	if _, err := ts.Expect(TokenRightBracket); err != nil {
		return nil, err
	}

	return &tengast.ListLiteral{Elements: elements, Pos: position(openTok)}, nil
}

// ============================================================================
// HELPERS
// ============================================================================

func position(tok Token) tengast.Position {
	return tengast.Position{Line: tok.Line, Column: tok.Column, Offset: tok.Position}
}

func (p *Parser) syntaxError(tok Token, msg string) *ParseError {
	return &ParseError{Message: msg, Line: tok.Line, Column: tok.Column, Token: tok}
}

func (p *Parser) incompleteError(tok Token, msg string) *ParseError {
	err := p.syntaxError(tok, msg)
	err.Incomplete = true
	return err
}
