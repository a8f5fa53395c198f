// Package typecheck implements the type-check walk described in
// SPEC_FULL.md §4.3: a top-down recursion over an already name-analyzed
// AST that derives a types.Type for every expression and a success
// boolean for every statement, diagnosing every operator and statement
// rule the language defines.
//
// Like resolve, this is a single synchronous tree-walk (SPEC_FULL.md §5):
// no goroutines, no shared mutable state beyond the sink.
package typecheck

import (
	"cminus/ast"
	"cminus/report"
	"cminus/symtab"
	"cminus/types"
)

// Checker carries the state threaded through one type-check run.
type Checker struct {
	sink *report.Sink

	// retType is the declared return type of the function whose body is
	// currently being checked. It is nil outside of any function body,
	// where a Return statement cannot occur in a well-formed program.
	retType types.Type
}

// NewChecker creates a Checker reporting through sink.
func NewChecker(sink *report.Sink) *Checker {
	return &Checker{sink: sink}
}

// TypeCheck type-checks every function body in prog and returns whether
// the whole program checked cleanly. Top-level variable and struct
// declarations have nothing left to check here: their types were already
// validated by name analysis (SPEC_FULL.md §9, open-question resolution on
// the elided top-level variable check).
func TypeCheck(prog *ast.Program, sink *report.Sink) bool {
	c := NewChecker(sink)

	ok := true
	for _, decl := range prog.Decls {
		if fd, isFn := decl.(*ast.FnDecl); isFn {
			if !c.checkFnDecl(fd) {
				ok = false
			}
		}
	}

	return ok
}

func (c *Checker) checkFnDecl(fd *ast.FnDecl) bool {
	saved := c.retType
	c.retType = c.typeRefType(fd.RetType)
	ok := c.checkBlock(fd.Body)
	c.retType = saved
	return ok
}

// typeRefType derives the semantic type a syntactic type reference denotes,
// reading the struct link name analysis already attached to a *ast.StructT
// rather than re-resolving it.
func (c *Checker) typeRefType(tr ast.TypeRef) types.Type {
	switch v := tr.(type) {
	case *ast.IntT:
		return types.Int
	case *ast.BoolT:
		return types.Bool
	case *ast.VoidT:
		return types.Void
	case *ast.StructT:
		if v.Name.Sym == nil {
			return types.Error{}
		}
		return &types.Struct{Name: v.Name.Sym.Name}
	default:
		c.sink.ICE("typecheck: unexpected type reference %T", tr)
		return types.Error{}
	}
}

// -----------------------------------------------------------------------------
// Blocks and statements

func (c *Checker) checkBlock(b *ast.Block) bool {
	ok := true
	for _, stmt := range b.Stmts {
		if !c.checkStmt(stmt) {
			ok = false
		}
	}
	return ok
}

func (c *Checker) checkStmt(s ast.Stmt) bool {
	switch v := s.(type) {
	case *ast.AssignStmt:
		return !types.IsError(c.checkExpr(v.Assign))
	case *ast.IncDecStmt:
		t := c.checkExpr(v.Operand)
		return c.requireType(v.Operand.Pos(), t, types.Int, "Arithmetic operator applied to non-numeric operand")
	case *ast.ReadStmt:
		return c.checkReadWrite(v.Operand, "read", false)
	case *ast.WriteStmt:
		return c.checkReadWrite(v.Operand, "write", true)
	case *ast.IfStmt:
		condOk := c.checkCond(v.Cond, "Non-bool expression used as an if condition")
		bodyOk := c.checkBlock(v.Then)
		return condOk && bodyOk
	case *ast.IfElseStmt:
		condOk := c.checkCond(v.Cond, "Non-bool expression used as an if condition")
		thenOk := c.checkBlock(v.Then)
		elseOk := c.checkBlock(v.Else)
		return condOk && thenOk && elseOk
	case *ast.WhileStmt:
		condOk := c.checkCond(v.Cond, "Non-bool expression used as a while condition")
		bodyOk := c.checkBlock(v.Body)
		return condOk && bodyOk
	case *ast.RepeatStmt:
		t := c.checkExpr(v.Count)
		countOk := c.requireType(v.Count.Pos(), t, types.Int, "Non-integer expression used as a repeat clause")
		bodyOk := c.checkBlock(v.Body)
		return countOk && bodyOk
	case *ast.CallStmt:
		return !types.IsError(c.checkExpr(v.Call))
	case *ast.ReturnStmt:
		return c.checkReturnStmt(v)
	default:
		c.sink.ICE("typecheck: unexpected statement %T", s)
		return false
	}
}

func (c *Checker) checkCond(cond ast.Expr, message string) bool {
	t := c.checkExpr(cond)
	return c.requireType(cond.Pos(), t, types.Bool, message)
}

// checkReadWrite implements the shared body of the Read and Write rules: an
// operand of function, struct-name, or struct-variable type is always
// rejected; Write additionally rejects Void.  String is accepted by both.
func (c *Checker) checkReadWrite(operand ast.Expr, verb string, forbidVoid bool) bool {
	t := c.checkExpr(operand)

	if types.IsError(t) {
		return false
	}

	switch {
	case isFn(t):
		c.sink.Fatal(operand.Pos(), "Attempt to %s a function", verb)
		return false
	case isStructDef(t):
		c.sink.Fatal(operand.Pos(), "Attempt to %s a struct name", verb)
		return false
	case isStruct(t):
		c.sink.Fatal(operand.Pos(), "Attempt to %s a struct variable", verb)
		return false
	}

	if forbidVoid && types.Equals(t, types.Void) {
		c.sink.Fatal(operand.Pos(), "Attempt to write void")
		return false
	}

	return true
}

// checkReturnStmt implements SPEC_FULL.md §4.3's Return rule, including the
// "Missing return value" diagnostic's fixed (0,0) position (see
// DESIGN.md, "Open-question resolutions").
func (c *Checker) checkReturnStmt(r *ast.ReturnStmt) bool {
	if r.Value == nil {
		if types.Equals(c.retType, types.Void) {
			return true
		}
		c.sink.Fatal(report.ZeroPosition, "Missing return value")
		return false
	}

	t := c.checkExpr(r.Value)

	if types.Equals(c.retType, types.Void) {
		c.sink.Fatal(r.Value.Pos(), "Return with a value in a void function")
		return false
	}

	if types.IsError(t) || types.IsError(c.retType) {
		return false
	}

	if !types.Equals(t, c.retType) {
		c.sink.Fatal(r.Value.Pos(), "Bad return value")
		return false
	}

	return true
}

// -----------------------------------------------------------------------------
// Expressions

func (c *Checker) checkExpr(e ast.Expr) types.Type {
	switch v := e.(type) {
	case *ast.IntLit:
		v.SetType(types.Int)
		return types.Int
	case *ast.StringLit:
		v.SetType(types.String)
		return types.String
	case *ast.BoolLit:
		v.SetType(types.Bool)
		return types.Bool
	case *ast.Id:
		return c.checkId(v)
	case *ast.DotAccess:
		return c.checkDotAccess(v)
	case *ast.AssignExpr:
		return c.checkAssignExpr(v)
	case *ast.CallExpr:
		return c.checkCallExpr(v)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(v)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(v)
	default:
		c.sink.ICE("typecheck: unexpected expression %T", e)
		return types.Error{}
	}
}

// checkId derives an *ast.Id's type from its linked symbol.  An unlinked Id
// here means name analysis already reported "Undeclared identifier" for
// this occurrence (SPEC_FULL.md §8's linking invariant); it is treated as
// an already-diagnosed error rather than raised again, so that a program
// with name errors can still be run through the type-check walk as a
// best-effort pass -- see DESIGN.md, "Open-question resolutions".
func (c *Checker) checkId(id *ast.Id) types.Type {
	if id.Sym == nil {
		id.SetType(types.Error{})
		return types.Error{}
	}

	var t types.Type
	switch id.Sym.Kind {
	case symtab.KindFunc:
		t = id.Sym.FnType()
	case symtab.KindStructDef:
		t = &types.StructDef{Name: id.Sym.Name}
	default:
		t = id.Sym.Type
	}

	id.SetType(t)
	return t
}

// checkDotAccess derives a DotAccess's type from the field symbol name
// analysis linked onto it.  A BadAccess node absorbs into Error without a
// new diagnostic, since resolve already reported one for this chain.
func (c *Checker) checkDotAccess(d *ast.DotAccess) types.Type {
	c.checkExpr(d.Loc)

	if d.BadAccess || d.Field.Sym == nil {
		d.SetType(types.Error{})
		return types.Error{}
	}

	t := d.Field.Sym.Type
	d.Field.SetType(t)
	d.SetType(t)
	return t
}

func (c *Checker) checkAssignExpr(a *ast.AssignExpr) types.Type {
	lhs := c.checkExpr(a.Lhs)
	rhs := c.checkExpr(a.Rhs)
	pos := a.Lhs.Pos()

	switch {
	case isFn(lhs) && isFn(rhs):
		c.sink.Fatal(pos, "Function assignment")
		a.SetType(types.Error{})
		return types.Error{}
	case isStructDef(lhs) && isStructDef(rhs):
		c.sink.Fatal(pos, "Struct name assignment")
		a.SetType(types.Error{})
		return types.Error{}
	case isStruct(lhs) && isStruct(rhs):
		c.sink.Fatal(pos, "Struct variable assignment")
		a.SetType(types.Error{})
		return types.Error{}
	case types.IsError(lhs) || types.IsError(rhs):
		a.SetType(types.Error{})
		return types.Error{}
	case !types.Equals(lhs, rhs):
		c.sink.Fatal(pos, "Type mismatch")
		a.SetType(types.Error{})
		return types.Error{}
	default:
		a.SetType(lhs)
		return lhs
	}
}

func (c *Checker) checkCallExpr(call *ast.CallExpr) types.Type {
	calleeType := c.checkId(call.Callee)

	argTypes := make([]types.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = c.checkExpr(arg)
	}

	fn, ok := calleeType.(*types.Fn)
	if !ok {
		if !types.IsError(calleeType) {
			c.sink.Fatal(call.Callee.Pos(), "Attempt to call a non-function")
		}
		call.SetType(types.Error{})
		return types.Error{}
	}

	if len(argTypes) != len(fn.Formals) {
		c.sink.Fatal(call.Callee.Pos(), "Function call with wrong number of args")
		call.SetType(types.Error{})
		return types.Error{}
	}

	clean := true
	for i, argType := range argTypes {
		if types.IsError(argType) {
			continue
		}
		if !types.Equals(argType, fn.Formals[i]) {
			c.sink.Fatal(call.Args[i].Pos(), "Type of actual does not match type of formal")
			clean = false
		}
	}

	if !clean {
		call.SetType(types.Error{})
		return types.Error{}
	}

	call.SetType(fn.Ret)
	return fn.Ret
}

func (c *Checker) checkUnaryExpr(u *ast.UnaryExpr) types.Type {
	operand := c.checkExpr(u.Operand)

	var t types.Type
	switch u.Op {
	case ast.UnaryMinus:
		if c.requireType(u.Operand.Pos(), operand, types.Int, "Arithmetic operator applied to non-numeric operand") {
			t = types.Int
		} else {
			t = types.Error{}
		}
	case ast.UnaryNot:
		if c.requireType(u.Operand.Pos(), operand, types.Bool, "Logical operator applied to non-bool operand") {
			t = types.Bool
		} else {
			t = types.Error{}
		}
	}

	u.SetType(t)
	return t
}

var arithmeticOps = map[ast.BinaryOp]bool{ast.Plus: true, ast.Minus: true, ast.Times: true, ast.Divide: true}
var relationalOps = map[ast.BinaryOp]bool{ast.Lt: true, ast.Gt: true, ast.LtEq: true, ast.GtEq: true}
var logicalOps = map[ast.BinaryOp]bool{ast.And: true, ast.Or: true}

func (c *Checker) checkBinaryExpr(b *ast.BinaryExpr) types.Type {
	lhs := c.checkExpr(b.Lhs)
	rhs := c.checkExpr(b.Rhs)

	var t types.Type
	switch {
	case arithmeticOps[b.Op]:
		t = c.checkNumericPair(b, lhs, rhs, types.Int, "Arithmetic operator applied to non-numeric operand", types.Int)
	case relationalOps[b.Op]:
		t = c.checkNumericPair(b, lhs, rhs, types.Int, "Relational operator applied to non-numeric operand", types.Bool)
	case logicalOps[b.Op]:
		t = c.checkNumericPair(b, lhs, rhs, types.Bool, "Logical operator applied to non-bool operand", types.Bool)
	case b.Op == ast.Eq || b.Op == ast.NotEq:
		t = c.checkEquality(b, lhs, rhs)
	default:
		c.sink.ICE("typecheck: unexpected binary operator %v", b.Op)
		t = types.Error{}
	}

	b.SetType(t)
	return t
}

// checkNumericPair implements the shared body of the arithmetic,
// relational, and logical binary rules: each operand is checked
// independently against operandType, and the result is resultType only if
// both operands matched.
func (c *Checker) checkNumericPair(b *ast.BinaryExpr, lhs, rhs, operandType types.Type, message string, resultType types.Type) types.Type {
	lhsOk := c.requireType(b.Lhs.Pos(), lhs, operandType, message)
	rhsOk := c.requireType(b.Rhs.Pos(), rhs, operandType, message)

	if lhsOk && rhsOk {
		return resultType
	}
	return types.Error{}
}

// checkEquality implements SPEC_FULL.md §4.3's fixed diagnostic priority
// for `==`/`!=`.
func (c *Checker) checkEquality(b *ast.BinaryExpr, lhs, rhs types.Type) types.Type {
	pos := b.Lhs.Pos()

	switch {
	case types.Equals(lhs, types.Void) && types.Equals(rhs, types.Void):
		c.sink.Fatal(pos, "Equality operator applied to void functions")
		return types.Error{}
	case isFn(lhs) && isFn(rhs):
		c.sink.Fatal(pos, "Equality operator applied to functions")
		return types.Error{}
	case isStructDef(lhs) && isStructDef(rhs):
		c.sink.Fatal(pos, "Equality operator applied to struct names")
		return types.Error{}
	case isStruct(lhs) && isStruct(rhs):
		c.sink.Fatal(pos, "Equality operator applied to struct variables")
		return types.Error{}
	case types.IsError(lhs) || types.IsError(rhs):
		return types.Error{}
	case !types.Equals(lhs, rhs):
		c.sink.Fatal(pos, "Type mismatch")
		return types.Error{}
	default:
		return types.Bool
	}
}

// requireType reports message at pos unless t is target or the absorbing
// Error type, and reports whether t actually matched target (Error counts
// as a failure too, just a silent one -- the caller's own result should
// propagate the failure without emitting a second diagnostic).
func (c *Checker) requireType(pos report.Position, t, target types.Type, message string) bool {
	if types.Equals(t, target) {
		return true
	}
	if !types.IsError(t) {
		c.sink.Fatal(pos, message)
	}
	return false
}

func isFn(t types.Type) bool {
	_, ok := t.(*types.Fn)
	return ok
}

func isStructDef(t types.Type) bool {
	_, ok := t.(*types.StructDef)
	return ok
}

func isStruct(t types.Type) bool {
	_, ok := t.(*types.Struct)
	return ok
}
