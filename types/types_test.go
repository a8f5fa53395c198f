package types

import "testing"

func TestEqualsPrimitives(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"int equals int", Int, Int, true},
		{"bool equals bool", Bool, Bool, true},
		{"int not equal bool", Int, Bool, false},
		{"void not equal string", Void, String, false},
		{"error equals error", Error{}, Error{}, true},
		{"error not equal int", Error{}, Int, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.a, tt.b); got != tt.want {
				t.Errorf("Equals(%v, %v) = %v, want %v", tt.a.Repr(), tt.b.Repr(), got, tt.want)
			}
		})
	}
}

func TestEqualsFn(t *testing.T) {
	a := &Fn{Formals: []Type{Int, Bool}, Ret: Int}
	b := &Fn{Formals: []Type{Int, Bool}, Ret: Int}
	c := &Fn{Formals: []Type{Int}, Ret: Int}
	d := &Fn{Formals: []Type{Int, Bool}, Ret: Bool}

	if !Equals(a, b) {
		t.Errorf("expected identical Fn types to be equal")
	}
	if Equals(a, c) {
		t.Errorf("expected Fn types with different arity to be unequal")
	}
	if Equals(a, d) {
		t.Errorf("expected Fn types with different return type to be unequal")
	}
	if Equals(a, Int) {
		t.Errorf("expected Fn type to be unequal to a primitive")
	}
}

func TestEqualsStructAndStructDef(t *testing.T) {
	s1 := &Struct{Name: "Point"}
	s2 := &Struct{Name: "Point"}
	s3 := &Struct{Name: "Line"}
	d1 := &StructDef{Name: "Point"}

	if !Equals(s1, s2) {
		t.Errorf("expected Struct types naming the same struct to be equal")
	}
	if Equals(s1, s3) {
		t.Errorf("expected Struct types naming different structs to be unequal")
	}
	if Equals(s1, d1) {
		t.Errorf("expected a Struct type to be unequal to a StructDef type of the same name")
	}
}

func TestIsError(t *testing.T) {
	if !IsError(Error{}) {
		t.Errorf("expected IsError(Error{}) to be true")
	}
	if IsError(Int) {
		t.Errorf("expected IsError(Int) to be false")
	}
}

func TestRepr(t *testing.T) {
	tests := []struct {
		t    Type
		want string
	}{
		{Int, "int"},
		{Bool, "bool"},
		{Void, "void"},
		{String, "string"},
		{Error{}, "<error>"},
		{&Struct{Name: "Point"}, "struct Point"},
		{&StructDef{Name: "Point"}, "struct-def Point"},
		{&Fn{Formals: []Type{Int, Bool}, Ret: Int}, "(int, bool) -> int"},
		{&Fn{Formals: nil, Ret: Void}, "() -> void"},
	}

	for _, tt := range tests {
		if got := tt.t.Repr(); got != tt.want {
			t.Errorf("Repr() = %q, want %q", got, tt.want)
		}
	}
}
