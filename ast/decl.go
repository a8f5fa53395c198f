package ast

// Decl is a top-level or nested declaration: Var, Fn, Formal, or StructDef.
type Decl interface {
	Node
	declNode()
}

// VarDecl is a variable declaration: `<Type> <Id>;`.
type VarDecl struct {
	base

	Type TypeRef
	Name *Id
}

func NewVarDecl(pos Pos, typ TypeRef, name *Id) *VarDecl {
	return &VarDecl{base: base{pos}, Type: typ, Name: name}
}

func (*VarDecl) declNode() {}

// FormalDecl is a function formal parameter declaration.  It is
// name-analyzed by the same rule as VarDecl: a void type is rejected, and a
// struct-typed formal is bound as a struct variable.
type FormalDecl struct {
	base

	Type TypeRef
	Name *Id
}

func NewFormalDecl(pos Pos, typ TypeRef, name *Id) *FormalDecl {
	return &FormalDecl{base: base{pos}, Type: typ, Name: name}
}

func (*FormalDecl) declNode() {}

// FnDecl is a function declaration: return type, name, formals, and body.
type FnDecl struct {
	base

	RetType TypeRef
	Name    *Id
	Formals []*FormalDecl
	Body    *Block
}

func NewFnDecl(pos Pos, retType TypeRef, name *Id, formals []*FormalDecl, body *Block) *FnDecl {
	return &FnDecl{base: base{pos}, RetType: retType, Name: name, Formals: formals, Body: body}
}

func (*FnDecl) declNode() {}

// StructDecl is a struct type declaration: a name and an ordered list of
// field declarations.
type StructDecl struct {
	base

	Name   *Id
	Fields []*VarDecl
}

func NewStructDecl(pos Pos, name *Id, fields []*VarDecl) *StructDecl {
	return &StructDecl{base: base{pos}, Name: name, Fields: fields}
}

func (*StructDecl) declNode() {}
