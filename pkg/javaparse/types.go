package javaparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vito/jfmt/pkg/ast"
)

func isAnnotationKind(kind string) bool {
	return kind == "marker_annotation" || kind == "annotation"
}

func (l *lowerer) typ(n *sitter.Node) ast.Type {
	switch n.Type() {
	case "type_identifier", "identifier":
		return at(l, n, &ast.ClassOrInterfaceType{Name: l.text(n)})
	case "scoped_type_identifier":
		return l.classType(n)
	case "generic_type":
		return l.classType(n)
	case "integral_type", "floating_point_type", "boolean_type":
		kind, ok := ast.ParsePrimitive(l.text(n))
		if !ok {
			l.unexpected(n, "primitive type")
		}
		return at(l, n, &ast.PrimitiveType{Kind: kind})
	case "void_type":
		return at(l, n, &ast.VoidType{})
	case "array_type":
		elem := l.typ(field(n, "element"))
		return l.arrayLevels(n, elem, field(n, "dimensions"))
	case "annotated_type":
		var anns []ast.AnnotationExpr
		var inner ast.Type
		for _, c := range named(n) {
			if isAnnotationKind(c.Type()) {
				anns = append(anns, l.annotation(c))
				continue
			}
			inner = l.typ(c)
		}
		annotate(inner, anns)
		inner.Base().Range = l.rangeOf(n)
		return inner
	case "wildcard":
		return l.wildcard(n)
	}
	l.unexpected(n, "type")
	return nil
}

// annotate prefixes anns onto the annotations of t, or of its element
// type when t is an array.
func annotate(t ast.Type, anns []ast.AnnotationExpr) {
	for {
		arr, ok := t.(*ast.ArrayType)
		if !ok {
			break
		}
		t = arr.Component
	}
	switch t := t.(type) {
	case *ast.ClassOrInterfaceType:
		t.Annotations = append(anns, t.Annotations...)
	case *ast.PrimitiveType:
		t.Annotations = append(anns, t.Annotations...)
	case *ast.VoidType:
		t.Annotations = append(anns, t.Annotations...)
	}
}

func (l *lowerer) classType(n *sitter.Node) *ast.ClassOrInterfaceType {
	switch n.Type() {
	case "type_identifier", "identifier":
		return at(l, n, &ast.ClassOrInterfaceType{Name: l.text(n)})

	case "scoped_type_identifier":
		t := at(l, n, &ast.ClassOrInterfaceType{})
		kids := named(n)
		t.Scope = l.classType(kids[0])
		for _, c := range kids[1:] {
			if isAnnotationKind(c.Type()) {
				t.Annotations = append(t.Annotations, l.annotation(c))
				continue
			}
			t.Name = l.text(c)
		}
		return t

	case "generic_type":
		var base *ast.ClassOrInterfaceType
		var args *sitter.Node
		for _, c := range named(n) {
			if c.Type() == "type_arguments" {
				args = c
				continue
			}
			base = l.classType(c)
		}
		base.Base().Range = l.rangeOf(n)
		base.TypeArgs = l.typeArgs(args)
		base.Diamond = len(base.TypeArgs) == 0
		return base

	case "annotated_type":
		t, ok := l.typ(n).(*ast.ClassOrInterfaceType)
		if !ok {
			l.unexpected(n, "class type")
		}
		return t
	}
	l.unexpected(n, "class type")
	return nil
}

func (l *lowerer) typeArgs(n *sitter.Node) []ast.Type {
	if n == nil {
		return nil
	}
	var out []ast.Type
	for _, c := range named(n) {
		out = append(out, l.typ(c))
	}
	return out
}

func (l *lowerer) wildcard(n *sitter.Node) *ast.WildcardType {
	w := at(l, n, &ast.WildcardType{})
	super := false
	for _, c := range children(n) {
		switch {
		case isAnnotationKind(c.Type()):
			w.Annotations = append(w.Annotations, l.annotation(c))
		case c.Type() == "super":
			super = true
		case c.IsNamed():
			if super {
				w.Super = l.typ(c)
			} else {
				w.Extends = l.typ(c)
			}
		}
	}
	return w
}

// bracketAnnotations splits a dimensions node into the annotations of
// each [] pair, in source order.
func (l *lowerer) bracketAnnotations(dims *sitter.Node) [][]ast.AnnotationExpr {
	var levels [][]ast.AnnotationExpr
	var pending []ast.AnnotationExpr
	for _, c := range children(dims) {
		switch {
		case isAnnotationKind(c.Type()):
			pending = append(pending, l.annotation(c))
		case c.Type() == "[":
			levels = append(levels, pending)
			pending = nil
		}
	}
	return levels
}

// arrayLevels wraps elem in one ArrayType per [] in dims, the first pair
// being outermost.
func (l *lowerer) arrayLevels(n *sitter.Node, elem ast.Type, dims *sitter.Node) ast.Type {
	levels := l.bracketAnnotations(dims)
	t := elem
	for i := len(levels) - 1; i >= 0; i-- {
		t = at(l, n, &ast.ArrayType{Component: t, Annotations: levels[i]})
	}
	return t
}

func (l *lowerer) brackets(dims *sitter.Node) []*ast.ArrayBracketPair {
	if dims == nil {
		return nil
	}
	var out []*ast.ArrayBracketPair
	for _, anns := range l.bracketAnnotations(dims) {
		out = append(out, at(l, dims, &ast.ArrayBracketPair{Annotations: anns}))
	}
	return out
}

func (l *lowerer) typeParams(n *sitter.Node) []*ast.TypeParameter {
	if n == nil {
		return nil
	}
	var out []*ast.TypeParameter
	for _, c := range named(n) {
		tp := at(l, c, &ast.TypeParameter{})
		for _, k := range named(c) {
			switch k.Type() {
			case "marker_annotation", "annotation":
				tp.Annotations = append(tp.Annotations, l.annotation(k))
			case "type_bound":
				for _, b := range named(k) {
					tp.Bounds = append(tp.Bounds, l.classType(b))
				}
			default:
				tp.Name = l.text(k)
			}
		}
		out = append(out, tp)
	}
	return out
}

// typeList lowers the types of a type_list, or of the node wrapping one
// such as superclass or super_interfaces.
func (l *lowerer) typeList(n *sitter.Node) []*ast.ClassOrInterfaceType {
	if n == nil {
		return nil
	}
	var out []*ast.ClassOrInterfaceType
	for _, c := range named(n) {
		if c.Type() == "type_list" {
			out = append(out, l.typeList(c)...)
			continue
		}
		out = append(out, l.classType(c))
	}
	return out
}

func (l *lowerer) throws(n *sitter.Node) []ast.Type {
	for _, c := range named(n) {
		if c.Type() != "throws" {
			continue
		}
		var out []ast.Type
		for _, t := range named(c) {
			out = append(out, l.typ(t))
		}
		return out
	}
	return nil
}
