package ast

// Type is a type reference.
type Type interface {
	Node
	typeNode()
}

// ClassOrInterfaceType is a possibly scoped, possibly parameterized class
// or interface type such as java.util.Map<K, V>.
type ClassOrInterfaceType struct {
	NodeBase
	Scope       *ClassOrInterfaceType
	Annotations []AnnotationExpr
	Name        string
	TypeArgs    []Type

	// Diamond marks an inferred type argument list, printed as <>.
	Diamond bool
}

func (t *ClassOrInterfaceType) Children() []Node {
	var out []Node
	if t.Scope != nil {
		out = append(out, t.Scope)
	}
	out = appendAll(out, t.Annotations)
	out = appendAll(out, t.TypeArgs)
	return t.withOrphans(out)
}

// PrimitiveType is one of the eight primitive types.
type PrimitiveType struct {
	NodeBase
	Annotations []AnnotationExpr
	Kind        Primitive
}

func (t *PrimitiveType) Children() []Node {
	return t.withOrphans(appendAll(nil, t.Annotations))
}

// ArrayType is one array dimension over Component, which may itself be an
// ArrayType.
type ArrayType struct {
	NodeBase
	Component   Type
	Annotations []AnnotationExpr
}

func (t *ArrayType) Children() []Node {
	out := []Node{t.Component}
	out = appendAll(out, t.Annotations)
	return t.withOrphans(out)
}

// ArrayOf wraps elem in dims array levels.
func ArrayOf(elem Type, dims int) Type {
	for range dims {
		elem = &ArrayType{Component: elem}
	}
	return elem
}

// ArrayBracketPair is a [] written after a declarator name or parameter list.
type ArrayBracketPair struct {
	NodeBase
	Annotations []AnnotationExpr
}

func (p *ArrayBracketPair) Children() []Node {
	return p.withOrphans(appendAll(nil, p.Annotations))
}

// VoidType is the void return type.
type VoidType struct {
	NodeBase
	Annotations []AnnotationExpr
}

func (t *VoidType) Children() []Node {
	return t.withOrphans(appendAll(nil, t.Annotations))
}

// WildcardType is a ? type argument with an optional bound.
type WildcardType struct {
	NodeBase
	Annotations []AnnotationExpr
	Extends     Type
	Super       Type
}

func (t *WildcardType) Children() []Node {
	out := appendAll(nil, t.Annotations)
	if t.Extends != nil {
		out = append(out, t.Extends)
	}
	if t.Super != nil {
		out = append(out, t.Super)
	}
	return t.withOrphans(out)
}

// UnknownType is the absent type of an implicitly typed lambda parameter.
type UnknownType struct {
	NodeBase
}

func (t *UnknownType) Children() []Node {
	return t.withOrphans(nil)
}

// IntersectionType is A & B, as found in casts.
type IntersectionType struct {
	NodeBase
	Annotations []AnnotationExpr
	Elements    []Type
}

func (t *IntersectionType) Children() []Node {
	out := appendAll(nil, t.Annotations)
	out = appendAll(out, t.Elements)
	return t.withOrphans(out)
}

// UnionType is A | B, as found in multi-catch parameters.
type UnionType struct {
	NodeBase
	Annotations []AnnotationExpr
	Elements    []Type
}

func (t *UnionType) Children() []Node {
	out := appendAll(nil, t.Annotations)
	out = appendAll(out, t.Elements)
	return t.withOrphans(out)
}

// TypeParameter declares a type variable with optional bounds.
type TypeParameter struct {
	NodeBase
	Annotations []AnnotationExpr
	Name        string
	Bounds      []*ClassOrInterfaceType
}

func (t *TypeParameter) Children() []Node {
	out := appendAll(nil, t.Annotations)
	out = appendAll(out, t.Bounds)
	return t.withOrphans(out)
}

func (*ClassOrInterfaceType) typeNode() {}
func (*PrimitiveType) typeNode()        {}
func (*ArrayType) typeNode()            {}
func (*VoidType) typeNode()             {}
func (*WildcardType) typeNode()         {}
func (*UnknownType) typeNode()          {}
func (*IntersectionType) typeNode()     {}
func (*UnionType) typeNode()            {}
