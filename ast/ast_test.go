package ast

import (
	"testing"

	"github.com/go-test/deep"

	"cminus/report"
	"cminus/types"
)

func TestIdPos(t *testing.T) {
	id := NewId(report.Position{Line: 4, Col: 2}, "x")
	if id.Pos() != (report.Position{Line: 4, Col: 2}) {
		t.Errorf("Pos() = %v, want {4 2}", id.Pos())
	}
	if id.Name != "x" {
		t.Errorf("Name = %q, want %q", id.Name, "x")
	}
	if id.Sym != nil {
		t.Errorf("a freshly built Id should start unlinked")
	}
}

func TestExprTypeStartsNilThenSettable(t *testing.T) {
	lit := NewIntLit(report.Position{Line: 1, Col: 1}, 7)
	if lit.Type() != nil {
		t.Fatalf("Type() = %v before type-check, want nil", lit.Type())
	}

	lit.SetType(types.Int)
	if !types.Equals(lit.Type(), types.Int) {
		t.Errorf("Type() after SetType(Int) = %v, want Int", lit.Type())
	}
}

func TestBinaryExprHoldsOperandsAndOperator(t *testing.T) {
	lhs := NewIntLit(report.Position{Line: 1, Col: 1}, 1)
	rhs := NewIntLit(report.Position{Line: 1, Col: 5}, 2)
	b := NewBinaryExpr(report.Position{Line: 1, Col: 3}, Plus, lhs, rhs)

	want := &BinaryExpr{
		exprBase: exprBase{base: base{report.Position{Line: 1, Col: 3}}},
		Op:       Plus,
		Lhs:      lhs,
		Rhs:      rhs,
	}

	if diff := deep.Equal(b, want); diff != nil {
		t.Error(diff)
	}
}

func TestDotAccessStartsWithNoFieldScopeOrBadAccess(t *testing.T) {
	loc := NewId(report.Position{Line: 2, Col: 1}, "s")
	field := NewId(report.Position{Line: 2, Col: 3}, "a")
	dot := NewDotAccess(report.Position{Line: 2, Col: 1}, loc, field)

	if dot.FieldScope != nil {
		t.Errorf("a freshly built DotAccess should have no field scope yet")
	}
	if dot.BadAccess {
		t.Errorf("a freshly built DotAccess should not be a bad access")
	}
}
