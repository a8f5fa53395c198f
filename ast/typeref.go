package ast

// TypeRef is a syntactic reference to a type, as written in source: IntT,
// BoolT, VoidT, or StructT(id).  It is distinct from types.Type, which is
// the semantic type computed/checked during analysis.
type TypeRef interface {
	Node
	typeRefNode()
}

// IntT is the syntactic `int` type reference.
type IntT struct{ base }

func NewIntT(pos Pos) *IntT { return &IntT{base{pos}} }

func (*IntT) typeRefNode() {}

// BoolT is the syntactic `bool` type reference.
type BoolT struct{ base }

func NewBoolT(pos Pos) *BoolT { return &BoolT{base{pos}} }

func (*BoolT) typeRefNode() {}

// VoidT is the syntactic `void` type reference.  It is well-formed only as a
// function's return type; see SPEC_FULL.md §4.2 ("Non-function declared
// void").
type VoidT struct{ base }

func NewVoidT(pos Pos) *VoidT { return &VoidT{base{pos}} }

func (*VoidT) typeRefNode() {}

// StructT is a syntactic reference to a named struct type.  It is
// well-formed only if Name resolves to a StructDef symbol in the global
// scope (SPEC_FULL.md §3 invariants).
type StructT struct {
	base

	Name *Id
}

func NewStructT(pos Pos, name *Id) *StructT {
	return &StructT{base: base{pos}, Name: name}
}

func (*StructT) typeRefNode() {}
