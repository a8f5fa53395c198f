package symtab

import "errors"

// Failure modes for the table operations.  These are internal-analyzer
// errors (SPEC_FULL.md §7): EmptyTable and InvalidArgument should be
// unreachable on any correct analyzer path and are reported as internal
// compiler errors by their callers, never surfaced as a diagnostic about
// the analyzed program.  Duplicate is the one kind callers translate into a
// user-visible diagnostic ("Multiply declared identifier").
var (
	ErrEmptyTable      = errors.New("symtab: no scope on the stack")
	ErrInvalidArgument = errors.New("symtab: nil name or symbol")
	ErrDuplicate       = errors.New("symtab: name already bound in current scope")
)

// scope is a single level of the symbol-table stack: a mapping from
// identifier name (case-sensitive) to symbol record.
type scope map[string]*Symbol

// Table is a stack of scopes, following SPEC_FULL.md §4.1.  A fresh Table
// starts out empty (no scopes pushed); the caller is responsible for
// calling AddScope before the first AddDecl, mirroring the teacher's
// src/walk/symbol_table.go convention of an explicit outermost scope pushed
// by the walker rather than an implicit one baked into the constructor.
type Table struct {
	scopes []scope
}

// NewTable creates a new, empty symbol table with no scopes pushed.
func NewTable() *Table {
	return &Table{}
}

// Empty reports whether the table has no scopes on its stack.
func (t *Table) Empty() bool {
	return len(t.scopes) == 0
}

// AddScope pushes a new, empty scope.
func (t *Table) AddScope() {
	t.scopes = append(t.scopes, make(scope))
}

// RemoveScope pops the innermost scope.  It returns ErrEmptyTable if there
// is no scope to pop.
func (t *Table) RemoveScope() error {
	if t.Empty() {
		return ErrEmptyTable
	}

	t.scopes = t.scopes[:len(t.scopes)-1]
	return nil
}

// AddDecl inserts sym under name in the innermost scope.  It fails with
// ErrInvalidArgument if name is empty or sym is nil, ErrEmptyTable if there
// is no scope, and ErrDuplicate if name is already bound in that scope.
func (t *Table) AddDecl(name string, sym *Symbol) error {
	if name == "" || sym == nil {
		return ErrInvalidArgument
	}

	if t.Empty() {
		return ErrEmptyTable
	}

	innermost := t.scopes[len(t.scopes)-1]
	if _, ok := innermost[name]; ok {
		return ErrDuplicate
	}

	innermost[name] = sym
	return nil
}

// LookupLocal returns the binding for name in the innermost scope only, or
// (nil, false) if there is none -- even if an outer scope has a match.
func (t *Table) LookupLocal(name string) (*Symbol, bool) {
	if t.Empty() {
		return nil, false
	}

	sym, ok := t.scopes[len(t.scopes)-1][name]
	return sym, ok
}

// PopScope pops the innermost scope and returns it as a freshly allocated,
// single-scope Table of its own.  This is how a StructDef symbol's field
// scope is carved out of the table stack used to resolve it: the fields are
// declared with the enclosing scope still on the stack (so a struct-typed
// field can resolve another struct's name globally), but the resulting
// Table exposes only the fields themselves to later dot-access lookups.
func (t *Table) PopScope() (*Table, error) {
	if t.Empty() {
		return nil, ErrEmptyTable
	}

	innermost := t.scopes[len(t.scopes)-1]
	t.scopes = t.scopes[:len(t.scopes)-1]
	return &Table{scopes: []scope{innermost}}, nil
}

// LookupGlobal searches innermost-to-outermost and returns the first match,
// implementing shadowing: a binding in a more deeply nested scope hides a
// same-named binding in an enclosing scope.  It returns ErrEmptyTable if the
// table has no scopes at all.
func (t *Table) LookupGlobal(name string) (*Symbol, bool, error) {
	if t.Empty() {
		return nil, false, ErrEmptyTable
	}

	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i][name]; ok {
			return sym, true, nil
		}
	}

	return nil, false, nil
}
