// Package ast defines the abstract syntax tree node taxonomy described in
// SPEC_FULL.md §3: declarations, type references, statements, and
// expressions, each as a tagged sum of concrete node types rather than a
// class hierarchy (see DESIGN.md, "Polymorphism over AST node kinds").
//
// Every node carries its own source position so that the name-analysis and
// type-check walks can attribute diagnostics precisely.  After a successful
// name-analysis pass, every reachable *Id node is mutated in place to carry
// a resolved *symtab.Symbol.
package ast

import (
	"cminus/report"
	"cminus/symtab"
)

// Pos is a source coordinate; aliased here so the rest of this package can
// write it without repeating the report import at every call site.
type Pos = report.Position

// Node is implemented by every AST node.
type Node interface {
	Pos() report.Position
}

// base is embedded by every concrete node to provide its source position.
type base struct {
	Position report.Position
}

func (b base) Pos() report.Position { return b.Position }

// Id is an identifier occurrence: a declared name, a declaration's own
// name, or a reference to one.  After name analysis it is linked to the
// symbol it resolved to, unless resolution failed, in which case Sym stays
// nil: a use that named nothing has had exactly one "Undeclared identifier"
// diagnostic reported for it, a rejected declaration, struct type name or
// struct field name has had its own diagnostic, and a field in a dot-access
// chain whose root already failed is left unlinked with no further one.
type Id struct {
	exprBase

	Name string

	// Sym is filled in by the name-analysis walk.  It is intentionally not
	// exported via a constructor: both passes read/write it directly, the
	// way the teacher's ast.Identifier is mutated in place by its walker.
	Sym *symtab.Symbol
}

func NewId(pos report.Position, name string) *Id {
	return &Id{exprBase: exprBase{base: base{pos}}, Name: name}
}

func (id *Id) exprNode() {}
