// File: visitor.go
// Title: Tenglish AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing and processing
//              Tenglish AST nodes. Provides a base visitor, a tree dump
//              visitor for debugging tooling, and a validation visitor.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-14
// Modified: 2026-07-21
//
// Change History:
// - 2026-06-14 v0.1.0: Initial visitor pattern implementation

package ast

import (
	"fmt"
	"strings"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	VisitProgram(p *Program) interface{}

	// Expression nodes
	VisitIdentifier(expr *Identifier) interface{}
	VisitStringLiteral(expr *StringLiteral) interface{}
	VisitNumberLiteral(expr *NumberLiteral) interface{}
	VisitBooleanLiteral(expr *BooleanLiteral) interface{}
	VisitListLiteral(expr *ListLiteral) interface{}
	VisitBinaryExpr(expr *BinaryExpr) interface{}
	VisitUnaryExpr(expr *UnaryExpr) interface{}
	VisitCallExpr(expr *CallExpr) interface{}
	VisitMethodCallExpr(expr *MethodCallExpr) interface{}
	VisitAttributeExpr(expr *AttributeExpr) interface{}

	// Statement nodes
	VisitAssignStmt(stmt *AssignStmt) interface{}
	VisitPrintStmt(stmt *PrintStmt) interface{}
	VisitIfStmt(stmt *IfStmt) interface{}
	VisitElifClause(clause *ElifClause) interface{}
	VisitForStmt(stmt *ForStmt) interface{}
	VisitWhileStmt(stmt *WhileStmt) interface{}
	VisitFuncDef(stmt *FuncDef) interface{}
	VisitReturnStmt(stmt *ReturnStmt) interface{}
	VisitBreakStmt(stmt *BreakStmt) interface{}
	VisitContinueStmt(stmt *ContinueStmt) interface{}
	VisitExprStmt(stmt *ExprStmt) interface{}
}

// BaseVisitor provides default implementations for all visitor methods.
// Embed this in concrete visitors to only override needed methods.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitProgram(p *Program) interface{} {
	for _, stmt := range p.Statements {
		stmt.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIdentifier(expr *Identifier) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitStringLiteral(expr *StringLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitBooleanLiteral(expr *BooleanLiteral) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitListLiteral(expr *ListLiteral) interface{} {
	for _, elem := range expr.Elements {
		elem.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(bv)
	}
	if expr.Right != nil {
		expr.Right.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	if expr.Operand != nil {
		return expr.Operand.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitCallExpr(expr *CallExpr) interface{} {
	for _, arg := range expr.Args {
		arg.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitMethodCallExpr(expr *MethodCallExpr) interface{} {
	if expr.Object != nil {
		expr.Object.Accept(bv)
	}
	for _, arg := range expr.Args {
		arg.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitAttributeExpr(expr *AttributeExpr) interface{} {
	if expr.Object != nil {
		return expr.Object.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitAssignStmt(stmt *AssignStmt) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitPrintStmt(stmt *PrintStmt) interface{} {
	for _, arg := range stmt.Args {
		arg.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitIfStmt(stmt *IfStmt) interface{} {
	if stmt.Condition != nil {
		stmt.Condition.Accept(bv)
	}
	for _, s := range stmt.Then {
		s.Accept(bv)
	}
	for _, clause := range stmt.Elifs {
		clause.Accept(bv)
	}
	for _, s := range stmt.Else {
		s.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitElifClause(clause *ElifClause) interface{} {
	if clause.Condition != nil {
		clause.Condition.Accept(bv)
	}
	for _, s := range clause.Body {
		s.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitForStmt(stmt *ForStmt) interface{} {
	if stmt.Iterable != nil {
		stmt.Iterable.Accept(bv)
	}
	for _, s := range stmt.Body {
		s.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitWhileStmt(stmt *WhileStmt) interface{} {
	if stmt.Condition != nil {
		stmt.Condition.Accept(bv)
	}
	for _, s := range stmt.Body {
		s.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitFuncDef(stmt *FuncDef) interface{} {
	for _, s := range stmt.Body {
		s.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitReturnStmt(stmt *ReturnStmt) interface{} {
	if stmt.Value != nil {
		return stmt.Value.Accept(bv)
	}
	return nil
}

func (bv *BaseVisitor) VisitBreakStmt(stmt *BreakStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitContinueStmt(stmt *ContinueStmt) interface{} {
	return nil // Terminal node
}

func (bv *BaseVisitor) VisitExprStmt(stmt *ExprStmt) interface{} {
	if stmt.Expression != nil {
		return stmt.Expression.Accept(bv)
	}
	return nil
}

// TreeVisitor builds an indented textual dump of the AST for debugging
type TreeVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree dump visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// String returns the built tree representation
func (tv *TreeVisitor) String() string {
	return tv.buffer.String()
}

// Reset clears the internal buffer
func (tv *TreeVisitor) Reset() {
	tv.buffer.Reset()
	tv.indent = 0
}

func (tv *TreeVisitor) writeLine(format string, args ...interface{}) {
	for i := 0; i < tv.indent; i++ {
		tv.buffer.WriteString("  ")
	}
	tv.buffer.WriteString(fmt.Sprintf(format, args...))
	tv.buffer.WriteString("\n")
}

func (tv *TreeVisitor) VisitProgram(p *Program) interface{} {
	tv.writeLine("Program (%d statements)", len(p.Statements))
	tv.indent++
	for _, stmt := range p.Statements {
		stmt.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitIdentifier(expr *Identifier) interface{} {
	tv.writeLine("Identifier(%s)", expr.Name)
	return nil
}

func (tv *TreeVisitor) VisitStringLiteral(expr *StringLiteral) interface{} {
	tv.writeLine("String(%q)", expr.Value)
	return nil
}

func (tv *TreeVisitor) VisitNumberLiteral(expr *NumberLiteral) interface{} {
	tv.writeLine("Number(%d)", expr.Value)
	return nil
}

func (tv *TreeVisitor) VisitBooleanLiteral(expr *BooleanLiteral) interface{} {
	tv.writeLine("Boolean(%v)", expr.Value)
	return nil
}

func (tv *TreeVisitor) VisitListLiteral(expr *ListLiteral) interface{} {
	tv.writeLine("List (%d elements)", len(expr.Elements))
	tv.indent++
	for _, elem := range expr.Elements {
		elem.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	tv.writeLine("BinaryExpr(%s)", expr.Op)
	tv.indent++
	expr.Left.Accept(tv)
	expr.Right.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	tv.writeLine("UnaryExpr(%s)", expr.Op)
	tv.indent++
	expr.Operand.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitCallExpr(expr *CallExpr) interface{} {
	tv.writeLine("Call(%s)", expr.Name)
	tv.indent++
	for _, arg := range expr.Args {
		arg.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitMethodCallExpr(expr *MethodCallExpr) interface{} {
	tv.writeLine("MethodCall(%s)", expr.Method)
	tv.indent++
	expr.Object.Accept(tv)
	for _, arg := range expr.Args {
		arg.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitAttributeExpr(expr *AttributeExpr) interface{} {
	tv.writeLine("Attribute(%s)", expr.Attribute)
	tv.indent++
	expr.Object.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitAssignStmt(stmt *AssignStmt) interface{} {
	tv.writeLine("Assign(%s)", stmt.Name)
	tv.indent++
	stmt.Value.Accept(tv)
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitPrintStmt(stmt *PrintStmt) interface{} {
	tv.writeLine("Print (%d args)", len(stmt.Args))
	tv.indent++
	for _, arg := range stmt.Args {
		arg.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitIfStmt(stmt *IfStmt) interface{} {
	tv.writeLine("If")
	tv.indent++
	tv.writeLine("Condition:")
	tv.indent++
	stmt.Condition.Accept(tv)
	tv.indent--
	tv.writeLine("Then:")
	tv.indent++
	for _, s := range stmt.Then {
		s.Accept(tv)
	}
	tv.indent--
	for _, clause := range stmt.Elifs {
		clause.Accept(tv)
	}
	if len(stmt.Else) > 0 {
		tv.writeLine("Else:")
		tv.indent++
		for _, s := range stmt.Else {
			s.Accept(tv)
		}
		tv.indent--
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitElifClause(clause *ElifClause) interface{} {
	tv.writeLine("Elif:")
	tv.indent++
	clause.Condition.Accept(tv)
	for _, s := range clause.Body {
		s.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitForStmt(stmt *ForStmt) interface{} {
	tv.writeLine("For(%s)", stmt.Variable)
	tv.indent++
	tv.writeLine("Iterable:")
	tv.indent++
	stmt.Iterable.Accept(tv)
	tv.indent--
	tv.writeLine("Body:")
	tv.indent++
	for _, s := range stmt.Body {
		s.Accept(tv)
	}
	tv.indent--
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitWhileStmt(stmt *WhileStmt) interface{} {
	tv.writeLine("While")
	tv.indent++
	tv.writeLine("Condition:")
	tv.indent++
	stmt.Condition.Accept(tv)
	tv.indent--
	tv.writeLine("Body:")
	tv.indent++
	for _, s := range stmt.Body {
		s.Accept(tv)
	}
	tv.indent--
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitFuncDef(stmt *FuncDef) interface{} {
	tv.writeLine("FuncDef %s(%s)", stmt.Name, strings.Join(stmt.Params, ", "))
	tv.indent++
	for _, s := range stmt.Body {
		s.Accept(tv)
	}
	tv.indent--
	return nil
}

func (tv *TreeVisitor) VisitReturnStmt(stmt *ReturnStmt) interface{} {
	tv.writeLine("Return")
	if stmt.Value != nil {
		tv.indent++
		stmt.Value.Accept(tv)
		tv.indent--
	}
	return nil
}

func (tv *TreeVisitor) VisitBreakStmt(stmt *BreakStmt) interface{} {
	tv.writeLine("Break")
	return nil
}

func (tv *TreeVisitor) VisitContinueStmt(stmt *ContinueStmt) interface{} {
	tv.writeLine("Continue")
	return nil
}

func (tv *TreeVisitor) VisitExprStmt(stmt *ExprStmt) interface{} {
	tv.writeLine("ExprStmt")
	tv.indent++
	stmt.Expression.Accept(tv)
	tv.indent--
	return nil
}

// ValidationVisitor validates AST nodes and collects errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

// HasErrors returns true if any validation errors were found
func (vv *ValidationVisitor) HasErrors() bool {
	return len(vv.errors) > 0
}

// Reset clears all collected errors
func (vv *ValidationVisitor) Reset() {
	vv.errors = vv.errors[:0]
}

func (vv *ValidationVisitor) addError(err error) {
	vv.errors = append(vv.errors, err)
}

func (vv *ValidationVisitor) VisitProgram(p *Program) interface{} {
	if err := p.Validate(); err != nil {
		vv.addError(fmt.Errorf("program validation failed: %w", err))
	}
	return nil
}

// Utility functions for working with visitors

// ValidateTree validates an AST node and returns any validation errors
func ValidateTree(node Node) []error {
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// TreeString converts an AST node to an indented tree dump for debugging
func TreeString(node Node) string {
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.String()
}
