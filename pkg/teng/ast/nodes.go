// File: nodes.go
// Title: Tenglish AST Node Definitions
// Description: Defines all AST node types for representing Tenglish
//              programs including statements, expressions, and literals.
//              Every node renders itself as Python 3 source text and
//              supports validation and visitor traversal.
// Author: brahmic-lang maintainers
// Version: v0.1.1
// Created: 2026-06-14
// Modified: 2026-08-02
//
// Change History:
// - 2026-06-14 v0.1.0: Initial AST node definitions
// - 2026-08-02 v0.1.1: Membership expressions always parenthesized under
//                      other operators

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns the Python rendering of the node at indent level 0
	String() string

	// Render returns the Python rendering at the given indent level.
	// One indent level is four spaces. Rendering is pure and never
	// mutates the node.
	Render(indent int) string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// Expr represents the base interface for all expression nodes
type Expr interface {
	Node
	exprNode() // marker method
}

// Stmt represents the base interface for all statement nodes
type Stmt interface {
	Node
	stmtNode() // marker method
}

// operatorPrecedence drives parenthesization when rendering nested binary
// expressions. Higher number binds tighter. Membership ("in") has no entry,
// so a membership test nested under any other operator is always wrapped
// in parentheses.
var operatorPrecedence = map[string]int{
	"or":         1,
	"leda":       1,
	"and":        2,
	"mariyu":     2,
	"not":        3,
	"avvakapote": 3,
	"==":         4,
	"!=":         4,
	"<":          4,
	"<=":         4,
	">":          4,
	">=":         4,
	"+":          5,
	"-":          5,
	"*":          6,
	"/":          6,
	"%":          6,
}

func precedenceOf(op string) int {
	return operatorPrecedence[op]
}

func indentString(level int) string {
	return strings.Repeat("    ", level)
}

// renderBody renders block statements one per line at the given indent
// and returns the text right-trimmed of trailing whitespace.
func renderBody(header string, body []Stmt, indent int) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, stmt := range body {
		sb.WriteString(stmt.Render(indent + 1))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), " \t\n")
}

// ============================================================================
// PROGRAM
// ============================================================================

// Program is the root node representing a complete Tenglish program
type Program struct {
	Statements []Stmt
	Pos        Position
}

func (p *Program) String() string {
	return p.Render(0)
}

func (p *Program) Render(indent int) string {
	if len(p.Statements) == 0 {
		return ""
	}

	var lines []string
	for i, stmt := range p.Statements {
		code := stmt.Render(indent)
		if strings.TrimSpace(code) == "" {
			continue
		}
		lines = append(lines, code)

		// Block statements get a separating blank line unless they
		// close the program
		if i < len(p.Statements)-1 {
			switch stmt.(type) {
			case *ForStmt, *WhileStmt, *IfStmt, *FuncDef:
				lines = append(lines, "")
			}
		}
	}

	return strings.Join(lines, "\n")
}

func (p *Program) Accept(visitor Visitor) interface{} {
	return visitor.VisitProgram(p)
}

func (p *Program) Position() Position {
	return p.Pos
}

func (p *Program) Validate() error {
	for i, stmt := range p.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// ============================================================================
// LITERAL AND NAME EXPRESSIONS
// ============================================================================

// Identifier represents a variable or function name
type Identifier struct {
	Name string
	Pos  Position
}

func (id *Identifier) String() string { return id.Render(0) }

func (id *Identifier) Render(indent int) string {
	return id.Name
}

func (id *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(id)
}

func (id *Identifier) Position() Position { return id.Pos }

func (id *Identifier) Validate() error {
	if id.Name == "" {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

func (id *Identifier) exprNode() {}

// StringLiteral represents a string literal. Value holds the raw text
// between the quotes; quoting and escaping happen at render time only.
type StringLiteral struct {
	Value string
	Pos   Position
}

func (sl *StringLiteral) String() string { return sl.Render(0) }

func (sl *StringLiteral) Render(indent int) string {
	escaped := strings.ReplaceAll(sl.Value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

func (sl *StringLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitStringLiteral(sl)
}

func (sl *StringLiteral) Position() Position { return sl.Pos }

func (sl *StringLiteral) Validate() error { return nil }

func (sl *StringLiteral) exprNode() {}

// NumberLiteral represents an integer literal
type NumberLiteral struct {
	Value int64
	Pos   Position
}

func (nl *NumberLiteral) String() string { return nl.Render(0) }

func (nl *NumberLiteral) Render(indent int) string {
	return strconv.FormatInt(nl.Value, 10)
}

func (nl *NumberLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumberLiteral(nl)
}

func (nl *NumberLiteral) Position() Position { return nl.Pos }

func (nl *NumberLiteral) Validate() error { return nil }

func (nl *NumberLiteral) exprNode() {}

// BooleanLiteral represents a boolean literal (Nijam/Abaddam)
type BooleanLiteral struct {
	Value bool
	Pos   Position
}

func (bl *BooleanLiteral) String() string { return bl.Render(0) }

func (bl *BooleanLiteral) Render(indent int) string {
	if bl.Value {
		return "True"
	}
	return "False"
}

func (bl *BooleanLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitBooleanLiteral(bl)
}

func (bl *BooleanLiteral) Position() Position { return bl.Pos }

func (bl *BooleanLiteral) Validate() error { return nil }

func (bl *BooleanLiteral) exprNode() {}

// ListLiteral represents a list literal [a, b, c]
type ListLiteral struct {
	Elements []Expr
	Pos      Position
}

func (ll *ListLiteral) String() string { return ll.Render(0) }

func (ll *ListLiteral) Render(indent int) string {
	if len(ll.Elements) == 0 {
		return "[]"
	}

	parts := make([]string, 0, len(ll.Elements))
	for _, elem := range ll.Elements {
		parts = append(parts, elem.Render(0))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (ll *ListLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitListLiteral(ll)
}

func (ll *ListLiteral) Position() Position { return ll.Pos }

func (ll *ListLiteral) Validate() error {
	for i, elem := range ll.Elements {
		if elem == nil {
			return fmt.Errorf("element %d is nil", i)
		}
		if err := elem.Validate(); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (ll *ListLiteral) exprNode() {}

// ============================================================================
// OPERATION EXPRESSIONS
// ============================================================================

// BinaryExpr represents a binary operation (arithmetic, comparison, logical)
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
	Pos   Position
}

func (be *BinaryExpr) String() string { return be.Render(0) }

func (be *BinaryExpr) Render(indent int) string {
	left := be.Left.Render(0)
	right := be.Right.Render(0)

	if child, ok := be.Left.(*BinaryExpr); ok && be.needsParens(child, true) {
		left = "(" + left + ")"
	}
	if child, ok := be.Right.(*BinaryExpr); ok && be.needsParens(child, false) {
		right = "(" + right + ")"
	}

	return left + " " + be.Op + " " + right
}

// needsParens reports whether a nested binary child must be wrapped.
// Lower-precedence children always wrap; equal precedence wraps on the
// right side to preserve left-associative grouping.
func (be *BinaryExpr) needsParens(child *BinaryExpr, isLeft bool) bool {
	parent := precedenceOf(be.Op)
	childPrec := precedenceOf(child.Op)

	if childPrec < parent {
		return true
	}
	if childPrec == parent && !isLeft {
		return true
	}
	return false
}

func (be *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(be)
}

func (be *BinaryExpr) Position() Position { return be.Pos }

func (be *BinaryExpr) Validate() error {
	if be.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if be.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if be.Op == "" {
		return fmt.Errorf("operator is required")
	}

	if err := be.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := be.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}
	return nil
}

func (be *BinaryExpr) exprNode() {}

// UnaryExpr represents a unary operation (not, -, +)
type UnaryExpr struct {
	Op      string
	Operand Expr
	Pos     Position
}

func (ue *UnaryExpr) String() string { return ue.Render(0) }

func (ue *UnaryExpr) Render(indent int) string {
	operand := ue.Operand.Render(0)

	// A binary operand always binds looser than the unary operator
	if _, ok := ue.Operand.(*BinaryExpr); ok {
		operand = "(" + operand + ")"
	}

	if ue.Op == "-" || ue.Op == "+" {
		return ue.Op + operand
	}
	return ue.Op + " " + operand
}

func (ue *UnaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryExpr(ue)
}

func (ue *UnaryExpr) Position() Position { return ue.Pos }

func (ue *UnaryExpr) Validate() error {
	if ue.Operand == nil {
		return fmt.Errorf("operand is required")
	}
	if ue.Op == "" {
		return fmt.Errorf("operator is required")
	}
	return ue.Operand.Validate()
}

func (ue *UnaryExpr) exprNode() {}

// CallExpr represents a function call by name
type CallExpr struct {
	Name string
	Args []Expr
	Pos  Position
}

func (ce *CallExpr) String() string { return ce.Render(0) }

func (ce *CallExpr) Render(indent int) string {
	if len(ce.Args) == 0 {
		return ce.Name + "()"
	}

	parts := make([]string, 0, len(ce.Args))
	for _, arg := range ce.Args {
		parts = append(parts, arg.Render(0))
	}
	return ce.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (ce *CallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitCallExpr(ce)
}

func (ce *CallExpr) Position() Position { return ce.Pos }

func (ce *CallExpr) Validate() error {
	if ce.Name == "" {
		return fmt.Errorf("function name is required")
	}
	for i, arg := range ce.Args {
		if arg == nil {
			return fmt.Errorf("argument %d is nil", i)
		}
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}

func (ce *CallExpr) exprNode() {}

// MethodCallExpr represents a method call like object.method(args)
type MethodCallExpr struct {
	Object Expr
	Method string
	Args   []Expr
	Pos    Position
}

func (mc *MethodCallExpr) String() string { return mc.Render(0) }

func (mc *MethodCallExpr) Render(indent int) string {
	parts := make([]string, 0, len(mc.Args))
	for _, arg := range mc.Args {
		parts = append(parts, arg.Render(0))
	}
	return mc.Object.Render(0) + "." + mc.Method + "(" + strings.Join(parts, ", ") + ")"
}

func (mc *MethodCallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitMethodCallExpr(mc)
}

func (mc *MethodCallExpr) Position() Position { return mc.Pos }

func (mc *MethodCallExpr) Validate() error {
	if mc.Object == nil {
		return fmt.Errorf("method receiver is required")
	}
	if mc.Method == "" {
		return fmt.Errorf("method name is required")
	}
	if err := mc.Object.Validate(); err != nil {
		return fmt.Errorf("receiver: %w", err)
	}
	for i, arg := range mc.Args {
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}

func (mc *MethodCallExpr) exprNode() {}

// AttributeExpr represents attribute access like object.attribute
type AttributeExpr struct {
	Object    Expr
	Attribute string
	Pos       Position
}

func (ae *AttributeExpr) String() string { return ae.Render(0) }

func (ae *AttributeExpr) Render(indent int) string {
	return ae.Object.Render(0) + "." + ae.Attribute
}

func (ae *AttributeExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitAttributeExpr(ae)
}

func (ae *AttributeExpr) Position() Position { return ae.Pos }

func (ae *AttributeExpr) Validate() error {
	if ae.Object == nil {
		return fmt.Errorf("attribute receiver is required")
	}
	if ae.Attribute == "" {
		return fmt.Errorf("attribute name is required")
	}
	return ae.Object.Validate()
}

func (ae *AttributeExpr) exprNode() {}

// ============================================================================
// STATEMENTS
// ============================================================================

// AssignStmt represents a variable assignment
type AssignStmt struct {
	Name  string
	Value Expr
	Pos   Position
}

func (as *AssignStmt) String() string { return as.Render(0) }

func (as *AssignStmt) Render(indent int) string {
	return indentString(indent) + as.Name + " = " + as.Value.Render(0)
}

func (as *AssignStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignStmt(as)
}

func (as *AssignStmt) Position() Position { return as.Pos }

func (as *AssignStmt) Validate() error {
	if as.Name == "" {
		return fmt.Errorf("assignment target is required")
	}
	if as.Value == nil {
		return fmt.Errorf("assignment value is required")
	}
	return as.Value.Validate()
}

func (as *AssignStmt) stmtNode() {}

// PrintStmt represents the postfix print construct: (args)cheppu
type PrintStmt struct {
	Args []Expr
	Pos  Position
}

func (ps *PrintStmt) String() string { return ps.Render(0) }

func (ps *PrintStmt) Render(indent int) string {
	if len(ps.Args) == 0 {
		return indentString(indent) + "print()"
	}

	parts := make([]string, 0, len(ps.Args))
	for _, arg := range ps.Args {
		parts = append(parts, arg.Render(0))
	}
	return indentString(indent) + "print(" + strings.Join(parts, ", ") + ")"
}

func (ps *PrintStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrintStmt(ps)
}

func (ps *PrintStmt) Position() Position { return ps.Pos }

func (ps *PrintStmt) Validate() error {
	for i, arg := range ps.Args {
		if arg == nil {
			return fmt.Errorf("argument %d is nil", i)
		}
		if err := arg.Validate(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}

func (ps *PrintStmt) stmtNode() {}

// ElifClause represents one elif branch of a conditional
type ElifClause struct {
	Condition Expr
	Body      []Stmt
	Pos       Position
}

func (ec *ElifClause) String() string { return ec.Render(0) }

func (ec *ElifClause) Render(indent int) string {
	header := indentString(indent) + "elif " + ec.Condition.Render(0) + ":"
	return renderBody(header, ec.Body, indent)
}

func (ec *ElifClause) Accept(visitor Visitor) interface{} {
	return visitor.VisitElifClause(ec)
}

func (ec *ElifClause) Position() Position { return ec.Pos }

func (ec *ElifClause) Validate() error {
	if ec.Condition == nil {
		return fmt.Errorf("elif condition is required")
	}
	if len(ec.Body) == 0 {
		return fmt.Errorf("elif body cannot be empty")
	}
	if err := ec.Condition.Validate(); err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	for i, stmt := range ec.Body {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", i, err)
		}
	}
	return nil
}

// IfStmt represents a conditional: okavela ... aite
type IfStmt struct {
	Condition Expr
	Then      []Stmt
	Elifs     []*ElifClause
	Else      []Stmt
	Pos       Position
}

func (is *IfStmt) String() string { return is.Render(0) }

func (is *IfStmt) Render(indent int) string {
	var sb strings.Builder
	sb.WriteString(indentString(indent))
	sb.WriteString("if ")
	sb.WriteString(is.Condition.Render(0))
	sb.WriteString(":\n")

	for _, stmt := range is.Then {
		sb.WriteString(stmt.Render(indent + 1))
		sb.WriteString("\n")
	}

	for _, clause := range is.Elifs {
		sb.WriteString(clause.Render(indent))
		sb.WriteString("\n")
	}

	if len(is.Else) > 0 {
		sb.WriteString(indentString(indent))
		sb.WriteString("else:\n")
		for _, stmt := range is.Else {
			sb.WriteString(stmt.Render(indent + 1))
			sb.WriteString("\n")
		}
	}

	return strings.TrimRight(sb.String(), " \t\n")
}

func (is *IfStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitIfStmt(is)
}

func (is *IfStmt) Position() Position { return is.Pos }

func (is *IfStmt) Validate() error {
	if is.Condition == nil {
		return fmt.Errorf("if condition is required")
	}
	if len(is.Then) == 0 {
		return fmt.Errorf("if body cannot be empty")
	}
	if err := is.Condition.Validate(); err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	for i, stmt := range is.Then {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("then statement %d: %w", i, err)
		}
	}
	for i, clause := range is.Elifs {
		if err := clause.Validate(); err != nil {
			return fmt.Errorf("elif %d: %w", i, err)
		}
	}
	for i, stmt := range is.Else {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("else statement %d: %w", i, err)
		}
	}
	return nil
}

func (is *IfStmt) stmtNode() {}

// ForStmt represents a Tenglish for loop: iterable lo var ki
type ForStmt struct {
	Variable string
	Iterable Expr
	Body     []Stmt
	Pos      Position
}

func (fs *ForStmt) String() string { return fs.Render(0) }

func (fs *ForStmt) Render(indent int) string {
	header := indentString(indent) + "for " + fs.Variable + " in " + fs.Iterable.Render(0) + ":"
	return renderBody(header, fs.Body, indent)
}

func (fs *ForStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitForStmt(fs)
}

func (fs *ForStmt) Position() Position { return fs.Pos }

func (fs *ForStmt) Validate() error {
	if fs.Variable == "" {
		return fmt.Errorf("loop variable is required")
	}
	if fs.Iterable == nil {
		return fmt.Errorf("loop iterable is required")
	}
	if len(fs.Body) == 0 {
		return fmt.Errorf("for body cannot be empty")
	}
	if err := fs.Iterable.Validate(); err != nil {
		return fmt.Errorf("iterable: %w", err)
	}
	for i, stmt := range fs.Body {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", i, err)
		}
	}
	return nil
}

func (fs *ForStmt) stmtNode() {}

// WhileStmt represents a Tenglish while loop: condition unnanta varaku
type WhileStmt struct {
	Condition Expr
	Body      []Stmt
	Pos       Position
}

func (ws *WhileStmt) String() string { return ws.Render(0) }

func (ws *WhileStmt) Render(indent int) string {
	header := indentString(indent) + "while " + ws.Condition.Render(0) + ":"
	return renderBody(header, ws.Body, indent)
}

func (ws *WhileStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitWhileStmt(ws)
}

func (ws *WhileStmt) Position() Position { return ws.Pos }

func (ws *WhileStmt) Validate() error {
	if ws.Condition == nil {
		return fmt.Errorf("while condition is required")
	}
	if len(ws.Body) == 0 {
		return fmt.Errorf("while body cannot be empty")
	}
	if err := ws.Condition.Validate(); err != nil {
		return fmt.Errorf("condition: %w", err)
	}
	for i, stmt := range ws.Body {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", i, err)
		}
	}
	return nil
}

func (ws *WhileStmt) stmtNode() {}

// FuncDef represents a function definition: vidhanam name(params)
type FuncDef struct {
	Name   string
	Params []string
	Body   []Stmt
	Pos    Position
}

func (fd *FuncDef) String() string { return fd.Render(0) }

func (fd *FuncDef) Render(indent int) string {
	header := indentString(indent) + "def " + fd.Name + "(" + strings.Join(fd.Params, ", ") + "):"
	return renderBody(header, fd.Body, indent)
}

func (fd *FuncDef) Accept(visitor Visitor) interface{} {
	return visitor.VisitFuncDef(fd)
}

func (fd *FuncDef) Position() Position { return fd.Pos }

func (fd *FuncDef) Validate() error {
	if fd.Name == "" {
		return fmt.Errorf("function name is required")
	}
	if len(fd.Body) == 0 {
		return fmt.Errorf("function body cannot be empty")
	}
	for i, param := range fd.Params {
		if param == "" {
			return fmt.Errorf("parameter %d is empty", i)
		}
	}
	for i, stmt := range fd.Body {
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("body statement %d: %w", i, err)
		}
	}
	return nil
}

func (fd *FuncDef) stmtNode() {}

// ReturnStmt represents a return: value ivvu or ivvu value.
// A nil Value renders a bare return.
type ReturnStmt struct {
	Value Expr
	Pos   Position
}

func (rs *ReturnStmt) String() string { return rs.Render(0) }

func (rs *ReturnStmt) Render(indent int) string {
	if rs.Value == nil {
		return indentString(indent) + "return"
	}
	return indentString(indent) + "return " + rs.Value.Render(0)
}

func (rs *ReturnStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitReturnStmt(rs)
}

func (rs *ReturnStmt) Position() Position { return rs.Pos }

func (rs *ReturnStmt) Validate() error {
	if rs.Value != nil {
		return rs.Value.Validate()
	}
	return nil
}

func (rs *ReturnStmt) stmtNode() {}

// BreakStmt represents aagipo
type BreakStmt struct {
	Pos Position
}

func (bs *BreakStmt) String() string { return bs.Render(0) }

func (bs *BreakStmt) Render(indent int) string {
	return indentString(indent) + "break"
}

func (bs *BreakStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitBreakStmt(bs)
}

func (bs *BreakStmt) Position() Position { return bs.Pos }

func (bs *BreakStmt) Validate() error { return nil }

func (bs *BreakStmt) stmtNode() {}

// ContinueStmt represents munduku vellu
type ContinueStmt struct {
	Pos Position
}

func (cs *ContinueStmt) String() string { return cs.Render(0) }

func (cs *ContinueStmt) Render(indent int) string {
	return indentString(indent) + "continue"
}

func (cs *ContinueStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitContinueStmt(cs)
}

func (cs *ContinueStmt) Position() Position { return cs.Pos }

func (cs *ContinueStmt) Validate() error { return nil }

func (cs *ContinueStmt) stmtNode() {}

// ExprStmt represents a bare expression used as a statement
type ExprStmt struct {
	Expression Expr
	Pos        Position
}

func (es *ExprStmt) String() string { return es.Render(0) }

func (es *ExprStmt) Render(indent int) string {
	return indentString(indent) + es.Expression.Render(0)
}

func (es *ExprStmt) Accept(visitor Visitor) interface{} {
	return visitor.VisitExprStmt(es)
}

func (es *ExprStmt) Position() Position { return es.Pos }

func (es *ExprStmt) Validate() error {
	if es.Expression == nil {
		return fmt.Errorf("expression is required")
	}
	return es.Expression.Validate()
}

func (es *ExprStmt) stmtNode() {}
