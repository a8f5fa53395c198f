package symtab

import (
	"errors"
	"testing"

	"github.com/go-test/deep"

	"cminus/types"
)

func TestAddDeclRequiresScope(t *testing.T) {
	tbl := NewTable()
	sym := &Symbol{Name: "x", Kind: KindValue, Type: types.Int}

	if err := tbl.AddDecl("x", sym); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("AddDecl on an empty table = %v, want ErrEmptyTable", err)
	}
}

func TestAddDeclRejectsInvalidArgument(t *testing.T) {
	tbl := NewTable()
	tbl.AddScope()

	if err := tbl.AddDecl("", &Symbol{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AddDecl(\"\", ...) = %v, want ErrInvalidArgument", err)
	}
	if err := tbl.AddDecl("x", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("AddDecl(\"x\", nil) = %v, want ErrInvalidArgument", err)
	}
}

func TestAddDeclDuplicate(t *testing.T) {
	tbl := NewTable()
	tbl.AddScope()

	sym := &Symbol{Name: "x", Kind: KindValue, Type: types.Int}
	if err := tbl.AddDecl("x", sym); err != nil {
		t.Fatalf("first AddDecl failed: %v", err)
	}

	if err := tbl.AddDecl("x", sym); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second AddDecl(\"x\", ...) = %v, want ErrDuplicate", err)
	}
}

func TestLookupLocalDoesNotSeeOuterScope(t *testing.T) {
	tbl := NewTable()
	tbl.AddScope()

	outer := &Symbol{Name: "x", Kind: KindValue, Type: types.Int}
	if err := tbl.AddDecl("x", outer); err != nil {
		t.Fatalf("AddDecl failed: %v", err)
	}

	tbl.AddScope()

	if _, ok := tbl.LookupLocal("x"); ok {
		t.Errorf("LookupLocal found an outer-scope binding; it should only see the innermost scope")
	}
}

func TestShadowing(t *testing.T) {
	tbl := NewTable()
	tbl.AddScope()

	outer := &Symbol{Name: "x", Kind: KindValue, Type: types.Int}
	if err := tbl.AddDecl("x", outer); err != nil {
		t.Fatalf("AddDecl failed: %v", err)
	}

	tbl.AddScope()
	inner := &Symbol{Name: "x", Kind: KindValue, Type: types.Bool}
	if err := tbl.AddDecl("x", inner); err != nil {
		t.Fatalf("AddDecl failed: %v", err)
	}

	sym, ok, err := tbl.LookupGlobal("x")
	if err != nil || !ok {
		t.Fatalf("LookupGlobal(\"x\") = %v, %v, %v", sym, ok, err)
	}
	if sym != inner {
		t.Errorf("LookupGlobal found the outer binding; shadowing should prefer the innermost one")
	}

	if err := tbl.RemoveScope(); err != nil {
		t.Fatalf("RemoveScope failed: %v", err)
	}

	sym, ok, err = tbl.LookupGlobal("x")
	if err != nil || !ok || sym != outer {
		t.Errorf("after popping the inner scope, LookupGlobal(\"x\") = %v, %v, %v, want the outer binding", sym, ok, err)
	}
}

func TestLookupGlobalOnEmptyTable(t *testing.T) {
	tbl := NewTable()

	if _, _, err := tbl.LookupGlobal("x"); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("LookupGlobal on an empty table = %v, want ErrEmptyTable", err)
	}
}

func TestRemoveScopeOnEmptyTable(t *testing.T) {
	tbl := NewTable()

	if err := tbl.RemoveScope(); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("RemoveScope on an empty table = %v, want ErrEmptyTable", err)
	}
}

func TestPopScopeIsolatesFields(t *testing.T) {
	tbl := NewTable()
	tbl.AddScope() // global scope, holds the struct-typed field's target

	other := &Symbol{Name: "Other", Kind: KindStructDef, Fields: NewTable()}
	if err := tbl.AddDecl("Other", other); err != nil {
		t.Fatalf("AddDecl failed: %v", err)
	}

	tbl.AddScope() // field scope
	field := &Symbol{Name: "a", Kind: KindValue, Type: types.Int}
	if err := tbl.AddDecl("a", field); err != nil {
		t.Fatalf("AddDecl failed: %v", err)
	}

	// The field scope can still see the global scope while it's being built.
	if sym, ok, err := tbl.LookupGlobal("Other"); err != nil || !ok || sym != other {
		t.Fatalf("field scope could not see the global scope: %v, %v, %v", sym, ok, err)
	}

	fields, err := tbl.PopScope()
	if err != nil {
		t.Fatalf("PopScope failed: %v", err)
	}

	if sym, ok := fields.LookupLocal("a"); !ok || sym != field {
		t.Errorf("popped field table does not contain the field that was declared in it")
	}

	// The popped table is its own standalone stack: it cannot see the scope
	// the field scope used to be nested under.
	if _, ok, err := fields.LookupGlobal("Other"); err != nil {
		t.Fatalf("LookupGlobal on the popped table errored: %v", err)
	} else if ok {
		t.Errorf("popped field table should not retain visibility into the scope it was carved out of")
	}

	// And the original table no longer has the field scope on its stack.
	if _, ok := tbl.LookupLocal("a"); ok {
		t.Errorf("original table still exposes the field after PopScope")
	}
}

func TestPopScopeOnEmptyTable(t *testing.T) {
	tbl := NewTable()

	if _, err := tbl.PopScope(); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("PopScope on an empty table = %v, want ErrEmptyTable", err)
	}
}

func TestFnType(t *testing.T) {
	sym := &Symbol{
		Name:    "add",
		Kind:    KindFunc,
		Formals: []types.Type{types.Int, types.Int},
		Ret:     types.Int,
	}

	ft := sym.FnType()
	want := &types.Fn{Formals: []types.Type{types.Int, types.Int}, Ret: types.Int}

	if !types.Equals(ft, want) {
		t.Errorf("FnType() = %s, want %s", ft.Repr(), want.Repr())
	}
}

func TestTwoSymbolsWithTheSameFieldsAreDeepEqual(t *testing.T) {
	sym := &Symbol{Name: "x", Kind: KindValue, Type: types.Int}
	other := &Symbol{Name: "x", Kind: KindValue, Type: types.Int}

	if diff := deep.Equal(sym, other); diff != nil {
		t.Error(diff)
	}
}
