package ast

import (
	"iter"
	"slices"
)

// Type marks a subtree that denotes a type rather than a value.
// `List<T>` is stored as an Ident expression with generic arguments,
// `a::B<T>` as a NamespaceAccess.
type Type struct {
	node Node
}

func NewType(n Node) Type {
	return Type{node: n}
}

// Node returns the wrapped subtree.
func (t Type) Node() Node {
	return t.node
}

// GenericDecl is one generic parameter: `T: A + B = D`.
type GenericDecl struct {
	Name    string
	Impls   []Type
	Default *Type
}

// ClassMember is a named field with exactly one type.
type ClassMember struct {
	Name string
	Type Type
}

// FuncArgs maps argument names to types and keeps declaration order.
type FuncArgs struct {
	names []string
	types map[string]Type
}

// Add appends an argument. It returns false and leaves the mapping
// unchanged when name is already present.
func (a *FuncArgs) Add(name string, t Type) bool {
	if _, dup := a.types[name]; dup {
		return false
	}
	if a.types == nil {
		a.types = make(map[string]Type)
	}
	a.names = append(a.names, name)
	a.types[name] = t
	return true
}

func (a FuncArgs) Get(name string) (Type, bool) {
	t, ok := a.types[name]
	return t, ok
}

func (a FuncArgs) Len() int {
	return len(a.names)
}

// Names returns argument names in declaration order.
func (a FuncArgs) Names() []string {
	return slices.Clone(a.names)
}

// All iterates arguments in declaration order.
func (a FuncArgs) All() iter.Seq2[string, Type] {
	return func(yield func(string, Type) bool) {
		for _, name := range a.names {
			if !yield(name, a.types[name]) {
				return
			}
		}
	}
}
