// Package types implements the closed set of static types for the C--
// language: Int, Bool, Void, String, Fn, Struct, StructDef, and the
// absorbing Error type.
package types

import "strings"

// Type is the interface implemented by every static type in the language.
// The set of implementations is closed: Int, Bool, Void, String, *Fn,
// *Struct, *StructDef, Error.
type Type interface {
	// Repr returns the human-readable representation of the type, used in
	// diagnostics.
	Repr() string

	// equals reports whether this type is identical to other.  It is only
	// meant to be called through Equals.
	equals(other Type) bool
}

// Equals reports whether a and b are the same type.  Two types are equal iff
// they are the same variant with equal payloads.  Error does equal Error, but
// callers that need Error to silently absorb a comparison (rather than
// compare as a type like any other) must check IsError before calling
// Equals.
func Equals(a, b Type) bool {
	return a.equals(b)
}

// IsError reports whether t is the absorbing Error type.
func IsError(t Type) bool {
	_, ok := t.(Error)
	return ok
}

// -----------------------------------------------------------------------------

// primitive is the base for the handful of types with no payload.
type primitive struct {
	name string
}

func (p primitive) Repr() string { return p.name }

func (p primitive) equals(other Type) bool {
	op, ok := other.(primitive)
	return ok && p.name == op.name
}

var (
	// Int is the integer type.
	Int Type = primitive{"int"}

	// Bool is the boolean type.
	Bool Type = primitive{"bool"}

	// Void is the type of a function that returns no value.  It is never a
	// declarable variable type.
	Void Type = primitive{"void"}

	// String is the type of string literals.  It participates only in
	// string literals and write statements: it is never a declarable
	// variable type.
	String Type = primitive{"string"}
)

// Error is the absorbing type.  Any operation that consumes an Error operand
// yields Error silently: no new diagnostic is produced.
type Error struct{}

func (Error) Repr() string { return "<error>" }

func (Error) equals(other Type) bool {
	_, ok := other.(Error)
	return ok
}

// -----------------------------------------------------------------------------

// Fn is the type of a function symbol: its ordered formal parameter types
// and its return type.
type Fn struct {
	Formals []Type
	Ret     Type
}

func (ft *Fn) equals(other Type) bool {
	oft, ok := other.(*Fn)
	if !ok || len(ft.Formals) != len(oft.Formals) {
		return false
	}

	for i, formal := range ft.Formals {
		if !Equals(formal, oft.Formals[i]) {
			return false
		}
	}

	return Equals(ft.Ret, oft.Ret)
}

func (ft *Fn) Repr() string {
	sb := strings.Builder{}
	sb.WriteRune('(')

	for i, formal := range ft.Formals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formal.Repr())
	}

	sb.WriteString(") -> ")
	sb.WriteString(ft.Ret.Repr())

	return sb.String()
}

// -----------------------------------------------------------------------------

// Struct is the type of a variable declared with a struct type: it refers to
// the struct's definition by name.  Two Struct types are equal iff they name
// the same struct.
type Struct struct {
	Name string
}

func (st *Struct) equals(other Type) bool {
	ost, ok := other.(*Struct)
	return ok && st.Name == ost.Name
}

func (st *Struct) Repr() string {
	return "struct " + st.Name
}

// -----------------------------------------------------------------------------

// StructDef is the type of a struct's own name: the thing you get from
// looking up the struct declaration itself, as opposed to a variable of that
// struct type.  It never appears as the type of a declarable variable; it
// exists so that operations like `S == S` (comparing struct names) can be
// diagnosed distinctly from comparing struct variables.
type StructDef struct {
	Name string
}

func (sd *StructDef) equals(other Type) bool {
	osd, ok := other.(*StructDef)
	return ok && sd.Name == osd.Name
}

func (sd *StructDef) Repr() string {
	return "struct-def " + sd.Name
}
