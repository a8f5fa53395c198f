package ast

import (
	"cminus/symtab"
	"cminus/types"
)

// Expr is an expression.  Every Expr carries a computed Type, filled in by
// the type-check walk; before that pass runs the Type is nil.
type Expr interface {
	Node
	exprNode()

	// Type returns the type computed for this expression by the type-check
	// walk.  It is nil until that pass visits this node.
	Type() types.Type

	// SetType is called exactly once per node by the type-check walk.
	SetType(types.Type)
}

// exprBase is embedded by every concrete expression node.
type exprBase struct {
	base
	typ types.Type
}

func (e *exprBase) Type() types.Type     { return e.typ }
func (e *exprBase) SetType(t types.Type) { e.typ = t }

// IntLit is an integer literal.
type IntLit struct {
	exprBase
	Value int
}

func NewIntLit(pos Pos, value int) *IntLit {
	return &IntLit{exprBase: exprBase{base: base{pos}}, Value: value}
}

func (*IntLit) exprNode() {}

// StringLit is a string literal.
type StringLit struct {
	exprBase
	Value string
}

func NewStringLit(pos Pos, value string) *StringLit {
	return &StringLit{exprBase: exprBase{base: base{pos}}, Value: value}
}

func (*StringLit) exprNode() {}

// BoolLit is a `true` or `false` literal.
type BoolLit struct {
	exprBase
	Value bool
}

func NewBoolLit(pos Pos, value bool) *BoolLit {
	return &BoolLit{exprBase: exprBase{base: base{pos}}, Value: value}
}

func (*BoolLit) exprNode() {}

// DotAccess is a struct field access: Loc.Field.
type DotAccess struct {
	exprBase

	Loc   Expr
	Field *Id

	// FieldScope is the field table the access resolved through, set by
	// name analysis.  It lets a further dot-access chain off of this node
	// (`a.b.c`) without re-deriving the struct type of `a.b`.
	FieldScope *symtab.Table

	// BadAccess marks this node (and, transitively, anything chained off
	// of it) as the tail of a diagnostic that has already been reported,
	// suppressing further cascading diagnostics (SPEC_FULL.md §4.2).
	BadAccess bool
}

func NewDotAccess(pos Pos, loc Expr, field *Id) *DotAccess {
	return &DotAccess{exprBase: exprBase{base: base{pos}}, Loc: loc, Field: field}
}

func (*DotAccess) exprNode() {}

// AssignExpr is an assignment expression `Lhs = Rhs`.  It is an expression
// (not just a statement) because the spec's statement grammar wraps it:
// AssignStmt holds one of these.
type AssignExpr struct {
	exprBase

	Lhs, Rhs Expr
}

func NewAssignExpr(pos Pos, lhs, rhs Expr) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{base: base{pos}}, Lhs: lhs, Rhs: rhs}
}

func (*AssignExpr) exprNode() {}

// CallExpr is a function call expression `Callee(Args...)`.
type CallExpr struct {
	exprBase

	Callee *Id
	Args   []Expr
}

func NewCallExpr(pos Pos, callee *Id, args []Expr) *CallExpr {
	return &CallExpr{exprBase: exprBase{base: base{pos}}, Callee: callee, Args: args}
}

func (*CallExpr) exprNode() {}

// UnaryOp distinguishes the two unary operators.
type UnaryOp int

const (
	UnaryMinus UnaryOp = iota
	UnaryNot
)

// UnaryExpr is a unary operator application.
type UnaryExpr struct {
	exprBase

	Op      UnaryOp
	Operand Expr
}

func NewUnaryExpr(pos Pos, op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{base: base{pos}}, Op: op, Operand: operand}
}

func (*UnaryExpr) exprNode() {}

// BinaryOp enumerates the binary operators.
type BinaryOp int

const (
	Plus BinaryOp = iota
	Minus
	Times
	Divide
	And
	Or
	Eq
	NotEq
	Lt
	Gt
	LtEq
	GtEq
)

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	exprBase

	Op       BinaryOp
	Lhs, Rhs Expr
}

func NewBinaryExpr(pos Pos, op BinaryOp, lhs, rhs Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{base: base{pos}}, Op: op, Lhs: lhs, Rhs: rhs}
}

func (*BinaryExpr) exprNode() {}
