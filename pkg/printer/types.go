package printer

import (
	"github.com/vito/jfmt/pkg/ast"
)

func (p *printer) classOrInterfaceType(n *ast.ClassOrInterfaceType) {
	if n.Scope != nil {
		p.node(n.Scope)
		p.write(".")
	}
	for _, a := range n.Annotations {
		p.node(a)
		p.write(" ")
	}
	p.write(n.Name)
	if n.Diamond {
		p.write("<>")
		return
	}
	p.typeArgs(n.TypeArgs)
}

// arrayType unwinds nested array levels so the element type is printed
// once, followed by one bracket pair per level, outermost first.
func (p *printer) arrayType(n *ast.ArrayType) {
	var levels []*ast.ArrayType
	var elem ast.Type = n
	for {
		at, ok := elem.(*ast.ArrayType)
		if !ok {
			break
		}
		levels = append(levels, at)
		elem = at.Component
	}

	p.node(elem)
	for i, level := range levels {
		if i > 0 {
			// inner levels are never dispatched on their own
			p.comment(level.Comment)
		}
		p.annotations(level.Annotations, true)
		p.write("[]")
		if i > 0 {
			p.orphansEnding(level)
		}
	}
}

func (p *printer) wildcardType(n *ast.WildcardType) {
	p.annotations(n.Annotations, false)
	p.write("?")
	if n.Extends != nil {
		p.write(" extends ")
		p.node(n.Extends)
	}
	if n.Super != nil {
		p.write(" super ")
		p.node(n.Super)
	}
}

func (p *printer) typeParameter(n *ast.TypeParameter) {
	for _, a := range n.Annotations {
		p.node(a)
		p.write(" ")
	}
	p.write(n.Name)
	if len(n.Bounds) > 0 {
		p.write(" extends ")
		printList(p, n.Bounds, " & ")
	}
}
