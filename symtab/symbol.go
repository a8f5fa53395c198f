// Package symtab implements the symbol record and symbol table regime
// described in SPEC_FULL.md §3 and §4.1: a stack of scopes, plus a separate
// per-struct field table reachable only through the struct's declaration
// symbol.
package symtab

import (
	"cminus/report"
	"cminus/types"
)

// Kind tags which of the four symbol shapes a Symbol is.
type Kind int

const (
	// KindValue is an ordinary value binding (a variable or formal) carrying
	// a Type.
	KindValue Kind = iota

	// KindFunc is a function binding carrying an ordered formals list and a
	// return type.
	KindFunc

	// KindStructVar is a struct-variable binding carrying a reference to the
	// struct's declaration symbol.
	KindStructVar

	// KindStructDef is a struct-definition binding owning a per-struct field
	// scope.
	KindStructDef
)

// Symbol is a single binding in the symbol table.  Which fields are
// meaningful depends on Kind:
//
//	KindValue:     Type
//	KindFunc:      Formals, Ret
//	KindStructVar: Type, StructDef
//	KindStructDef: Fields
type Symbol struct {
	Name string

	// DefPos is the position of the identifier that introduced this symbol.
	DefPos report.Position

	Kind Kind

	// Type is the declared type of a KindValue or KindStructVar symbol.
	Type types.Type

	// Formals and Ret describe a KindFunc symbol.  Formals is populated
	// exactly once, after the function's formals have been name-analyzed
	// (see SPEC_FULL.md §3 invariants).
	Formals []types.Type
	Ret     types.Type

	// StructDef is the declaration symbol a KindStructVar symbol refers to.
	StructDef *Symbol

	// Fields is the field scope owned by a KindStructDef symbol.  It is
	// reachable from outside only through this symbol, never via
	// unqualified lookup (see SPEC_FULL.md §3 invariants).
	Fields *Table
}

// FnType returns the Fn type this function symbol denotes.
func (s *Symbol) FnType() *types.Fn {
	return &types.Fn{Formals: s.Formals, Ret: s.Ret}
}
