// Package resolve implements the name-analysis walk described in
// SPEC_FULL.md §4.2: it links every *ast.Id to the symtab.Symbol it
// denotes, populating a symtab.Table as it goes, and reports a diagnostic
// for every identifier that cannot be linked.
//
// The walk is a single synchronous recursive descent over the AST (see
// SPEC_FULL.md §5): there is exactly one translation unit, so there is
// nothing to farm out to goroutines the way the teacher's package-level
// walker does.
package resolve

import (
	"cminus/ast"
	"cminus/report"
	"cminus/symtab"
	"cminus/types"
)

// Resolver carries the state threaded through one name-analysis run: the
// diagnostic sink and the symbol-table stack being built up.
type Resolver struct {
	sink  *report.Sink
	table *symtab.Table
}

// NewResolver creates a Resolver reporting through sink, with an empty
// table.  Use Resolve for the common case of resolving a whole program.
func NewResolver(sink *report.Sink) *Resolver {
	return &Resolver{sink: sink, table: symtab.NewTable()}
}

// Resolve name-analyzes an entire program and returns the populated global
// symbol table.  The returned table's outermost scope is left on the stack
// (it is never popped), since the global scope's bindings must remain
// reachable for the type-check walk and for any later phase.
func Resolve(prog *ast.Program, sink *report.Sink) *symtab.Table {
	r := NewResolver(sink)
	r.table.AddScope()

	for _, decl := range prog.Decls {
		r.resolveTopDecl(decl)
	}

	return r.table
}

func (r *Resolver) resolveTopDecl(decl ast.Decl) {
	switch v := decl.(type) {
	case *ast.VarDecl:
		r.resolveVarDecl(v)
	case *ast.FnDecl:
		r.resolveFnDecl(v)
	case *ast.StructDecl:
		r.resolveStructDecl(v)
	default:
		r.sink.ICE("resolve: unexpected top-level declaration %T", decl)
	}
}

// -----------------------------------------------------------------------------
// Declarations

// resolveTypeRef derives the semantic type denoted by a syntactic type
// reference.  It does not enforce any context-specific restriction (e.g.
// that Void may only appear as a function's return type) -- that is the
// caller's job. For a *ast.StructT it also links the struct name to its
// definition symbol.
func (r *Resolver) resolveTypeRef(tr ast.TypeRef) (types.Type, bool) {
	switch v := tr.(type) {
	case *ast.IntT:
		return types.Int, true
	case *ast.BoolT:
		return types.Bool, true
	case *ast.VoidT:
		return types.Void, true
	case *ast.StructT:
		sym, ok, err := r.table.LookupGlobal(v.Name.Name)
		if err != nil {
			r.sink.ICE("resolve: %v", err)
			return types.Error{}, false
		}

		if !ok || sym.Kind != symtab.KindStructDef {
			r.sink.Fatal(v.Name.Pos(), "Invalid name of struct type")
			return types.Error{}, false
		}

		v.Name.Sym = sym
		return &types.Struct{Name: sym.Name}, true
	default:
		r.sink.ICE("resolve: unexpected type reference %T", tr)
		return types.Error{}, false
	}
}

// resolveVarDecl name-analyzes a VarDecl, following SPEC_FULL.md §4.2's
// "Variable declaration" rule.
func (r *Resolver) resolveVarDecl(vd *ast.VarDecl) {
	r.declareVarLike(vd.Type, vd.Name)
}

// declareVarLike implements the declaration rule shared by VarDecl and
// FormalDecl: reject Void, derive and link the declared type, check for a
// local duplicate, and on success insert a KindValue or KindStructVar
// symbol. It returns the derived type (types.Error{} if the declaration was
// rejected), which callers that need a formals list use to keep that list
// aligned with the source regardless of per-formal errors.
func (r *Resolver) declareVarLike(typ ast.TypeRef, name *ast.Id) types.Type {
	bad := false

	if _, isVoid := typ.(*ast.VoidT); isVoid {
		r.sink.Fatal(name.Pos(), "Non-function declared void")
		bad = true
	}

	derived, ok := r.resolveTypeRef(typ)
	if !ok {
		bad = true
	}

	if _, dup := r.table.LookupLocal(name.Name); dup {
		r.sink.Fatal(name.Pos(), "Multiply declared identifier")
		bad = true
	}

	if bad {
		return types.Error{}
	}

	sym := &symtab.Symbol{Name: name.Name, DefPos: name.Pos(), Type: derived}
	if st, isStruct := typ.(*ast.StructT); isStruct {
		sym.Kind = symtab.KindStructVar
		sym.StructDef = st.Name.Sym
	} else {
		sym.Kind = symtab.KindValue
	}

	if err := r.table.AddDecl(name.Name, sym); err != nil {
		r.sink.ICE("resolve: %v", err)
		return derived
	}

	name.Sym = sym
	return derived
}

// resolveFnDecl name-analyzes a function declaration, following
// SPEC_FULL.md §4.2's "Function declaration" rule.
func (r *Resolver) resolveFnDecl(fd *ast.FnDecl) {
	var sym *symtab.Symbol

	if _, dup := r.table.LookupLocal(fd.Name.Name); dup {
		r.sink.Fatal(fd.Name.Pos(), "Multiply declared identifier")
	} else {
		retType, ok := r.resolveTypeRef(fd.RetType)
		if !ok {
			retType = types.Error{}
		}

		sym = &symtab.Symbol{
			Name:   fd.Name.Name,
			DefPos: fd.Name.Pos(),
			Kind:   symtab.KindFunc,
			Ret:    retType,
		}

		if err := r.table.AddDecl(fd.Name.Name, sym); err != nil {
			r.sink.ICE("resolve: %v", err)
		} else {
			fd.Name.Sym = sym
		}
	}

	r.table.AddScope()

	formals := make([]types.Type, len(fd.Formals))
	for i, formal := range fd.Formals {
		formals[i] = r.declareVarLike(formal.Type, formal.Name)
	}

	if sym != nil {
		sym.Formals = formals
	}

	r.resolveBlock(fd.Body)

	if err := r.table.RemoveScope(); err != nil {
		r.sink.ICE("resolve: %v", err)
	}
}

// resolveStructDecl name-analyzes a struct declaration, following
// SPEC_FULL.md §4.2's "Struct declaration" rule.
func (r *Resolver) resolveStructDecl(sd *ast.StructDecl) {
	_, dup := r.table.LookupLocal(sd.Name.Name)
	if dup {
		r.sink.Fatal(sd.Name.Pos(), "Multiply declared identifier")
	}

	// Fields are declared with the global scope still on the stack, so a
	// struct-typed field can resolve another struct's name globally, but
	// the field names themselves land in their own scope.
	r.table.AddScope()
	for _, field := range sd.Fields {
		r.resolveVarDecl(field)
	}

	fieldScope, err := r.table.PopScope()
	if err != nil {
		r.sink.ICE("resolve: %v", err)
		return
	}

	if dup {
		return
	}

	sym := &symtab.Symbol{
		Name:   sd.Name.Name,
		DefPos: sd.Name.Pos(),
		Kind:   symtab.KindStructDef,
		Fields: fieldScope,
	}

	if err := r.table.AddDecl(sd.Name.Name, sym); err != nil {
		r.sink.ICE("resolve: %v", err)
		return
	}

	sd.Name.Sym = sym
}

// -----------------------------------------------------------------------------
// Blocks and statements

// resolveBlock name-analyzes a function body or a control-flow arm,
// following SPEC_FULL.md §4.2's "Block constructs" rule: push a scope,
// analyze inner declarations then statements, pop the scope.
func (r *Resolver) resolveBlock(b *ast.Block) {
	r.table.AddScope()

	for _, decl := range b.Decls {
		r.resolveVarDecl(decl)
	}

	for _, stmt := range b.Stmts {
		r.resolveStmt(stmt)
	}

	if err := r.table.RemoveScope(); err != nil {
		r.sink.ICE("resolve: %v", err)
	}
}

func (r *Resolver) resolveStmt(s ast.Stmt) {
	switch v := s.(type) {
	case *ast.AssignStmt:
		r.resolveExpr(v.Assign)
	case *ast.IncDecStmt:
		r.resolveExpr(v.Operand)
	case *ast.ReadStmt:
		r.resolveExpr(v.Operand)
	case *ast.WriteStmt:
		r.resolveExpr(v.Operand)
	case *ast.IfStmt:
		r.resolveExpr(v.Cond)
		r.resolveBlock(v.Then)
	case *ast.IfElseStmt:
		r.resolveExpr(v.Cond)
		r.resolveBlock(v.Then)
		r.resolveBlock(v.Else)
	case *ast.WhileStmt:
		r.resolveExpr(v.Cond)
		r.resolveBlock(v.Body)
	case *ast.RepeatStmt:
		r.resolveExpr(v.Count)
		r.resolveBlock(v.Body)
	case *ast.CallStmt:
		r.resolveExpr(v.Call)
	case *ast.ReturnStmt:
		if v.Value != nil {
			r.resolveExpr(v.Value)
		}
	default:
		r.sink.ICE("resolve: unexpected statement %T", s)
	}
}

// -----------------------------------------------------------------------------
// Expressions

// resolveId links id to the symbol name resolves to in the current scope
// stack, or reports "Undeclared identifier" and leaves it unlinked.
func (r *Resolver) resolveId(id *ast.Id) {
	sym, ok, err := r.table.LookupGlobal(id.Name)
	if err != nil {
		r.sink.ICE("resolve: %v", err)
		return
	}

	if !ok {
		r.sink.Fatal(id.Pos(), "Undeclared identifier")
		return
	}

	id.Sym = sym
}

func (r *Resolver) resolveExpr(e ast.Expr) {
	switch v := e.(type) {
	case *ast.IntLit, *ast.StringLit, *ast.BoolLit:
		// Literals carry no identifiers to resolve.
	case *ast.Id:
		r.resolveId(v)
	case *ast.DotAccess:
		r.resolveDotAccess(v)
	case *ast.AssignExpr:
		r.resolveExpr(v.Lhs)
		r.resolveExpr(v.Rhs)
	case *ast.CallExpr:
		r.resolveId(v.Callee)
		for _, arg := range v.Args {
			r.resolveExpr(arg)
		}
	case *ast.UnaryExpr:
		r.resolveExpr(v.Operand)
	case *ast.BinaryExpr:
		r.resolveExpr(v.Lhs)
		r.resolveExpr(v.Rhs)
	default:
		r.sink.ICE("resolve: unexpected expression %T", e)
	}
}

// resolveDotAccess implements SPEC_FULL.md §4.2's dot-access rule: the
// left-hand location determines which field scope the right-hand id is
// resolved in, and a failure anywhere in the chain marks the node (and
// everything chained off of it) as a "bad access" so the diagnostic does
// not cascade.
func (r *Resolver) resolveDotAccess(d *ast.DotAccess) {
	r.resolveExpr(d.Loc)

	var fieldScope *symtab.Table

	switch loc := d.Loc.(type) {
	case *ast.Id:
		if loc.Sym == nil {
			// The LHS was undeclared; resolveExpr already reported that.
			d.BadAccess = true
			return
		}

		if loc.Sym.Kind != symtab.KindStructVar {
			r.sink.Fatal(loc.Pos(), "Dot-access of non-struct type")
			d.BadAccess = true
			return
		}

		fieldScope = loc.Sym.StructDef.Fields
	case *ast.DotAccess:
		if loc.BadAccess {
			d.BadAccess = true
			return
		}

		if loc.FieldScope == nil {
			r.sink.Fatal(loc.Pos(), "Dot-access of non-struct type")
			d.BadAccess = true
			return
		}

		fieldScope = loc.FieldScope
	default:
		r.sink.Fatal(loc.Pos(), "Dot-access of non-struct type")
		d.BadAccess = true
		return
	}

	sym, ok := fieldScope.LookupLocal(d.Field.Name)
	if !ok {
		r.sink.Fatal(d.Field.Pos(), "Invalid struct field name")
		d.BadAccess = true
		return
	}

	d.Field.Sym = sym

	if sym.Kind == symtab.KindStructVar {
		d.FieldScope = sym.StructDef.Fields
	}
}
