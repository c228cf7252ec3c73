package printer

import (
	"github.com/vito/jfmt/pkg/ast"
)

func (p *printer) compilationUnit(n *ast.CompilationUnit) {
	if n.Package != nil {
		p.node(n.Package)
	}

	for _, imp := range n.Imports {
		p.node(imp)
	}
	if len(n.Imports) > 0 {
		p.newline()
	}

	for i, t := range n.Types {
		p.node(t)
		p.newline()
		if i < len(n.Types)-1 {
			p.newline()
		}
	}

	p.orphansEnding(n)
}

func (p *printer) packageDecl(n *ast.PackageDecl) {
	p.annotations(n.Annotations, false)
	p.write("package ")
	p.node(n.Name)
	p.writeLine(";")
	p.newline()
}

func (p *printer) importDecl(n *ast.ImportDecl) {
	p.write("import ")
	if n.Static {
		p.write("static ")
	}
	p.node(n.Name)
	if n.Asterisk {
		p.write(".*")
	}
	p.writeLine(";")
}

func (p *printer) classOrInterfaceDecl(n *ast.ClassOrInterfaceDecl) {
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	if n.Interface {
		p.write("interface ")
	} else {
		p.write("class ")
	}
	p.write(n.Name)
	p.typeParams(n.TypeParams)

	if len(n.Extends) > 0 {
		p.write(" extends ")
		printList(p, n.Extends, ", ")
	}
	if len(n.Implements) > 0 {
		p.write(" implements ")
		printList(p, n.Implements, ", ")
	}

	p.writeLine(" {")
	p.indented(func() {
		p.members(n.Members)
		p.orphansEnding(n)
	})
	p.write("}")
}

func (p *printer) enumDecl(n *ast.EnumDecl) {
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.write("enum ")
	p.write(n.Name)

	if len(n.Implements) > 0 {
		p.write(" implements ")
		printList(p, n.Implements, ", ")
	}

	p.writeLine(" {")
	p.indented(func() {
		p.newline()
		printList(p, n.Entries, ", ")
		if len(n.Members) > 0 {
			p.writeLine(";")
			p.members(n.Members)
		} else if len(n.Entries) > 0 {
			p.newline()
		}
		p.orphansEnding(n)
	})
	p.write("}")
}

func (p *printer) enumConstantDecl(n *ast.EnumConstantDecl) {
	p.memberAnnotations(n.Annotations)
	p.write(n.Name)

	if len(n.Args) > 0 {
		p.arguments(n.Args)
	}

	if len(n.Body) == 0 {
		p.orphansEnding(n)
		return
	}

	p.writeLine(" {")
	p.indented(func() {
		p.members(n.Body)
		p.orphansEnding(n)
	})
	p.writeLine("}")
}

func (p *printer) annotationDecl(n *ast.AnnotationDecl) {
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.write("@interface ")
	p.write(n.Name)
	p.writeLine(" {")
	p.indented(func() {
		p.members(n.Members)
		p.orphansEnding(n)
	})
	p.write("}")
}

func (p *printer) annotationMemberDecl(n *ast.AnnotationMemberDecl) {
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.node(n.Type)
	p.write(" ")
	p.write(n.Name)
	p.write("()")
	if n.Default != nil {
		p.write(" default ")
		p.node(n.Default)
	}
	p.closing(n, ";")
}

func (p *printer) fieldDecl(n *ast.FieldDecl) {
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.node(n.Type)
	p.write(" ")
	printList(p, n.Vars, ", ")
	p.closing(n, ";")
}

func (p *printer) variableDeclarator(n *ast.VariableDeclarator) {
	p.write(n.Name)
	for _, b := range n.Brackets {
		p.node(b)
	}
	if n.Init != nil {
		p.write(" = ")
		p.node(n.Init)
	}
}

func (p *printer) constructorDecl(n *ast.ConstructorDecl) {
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.typeParams(n.TypeParams)
	if len(n.TypeParams) > 0 {
		p.write(" ")
	}
	p.write(n.Name)
	p.write("(")
	printList(p, n.Params, ", ")
	p.write(")")
	p.throws(n.Throws)
	p.write(" ")
	p.node(n.Body)
}

func (p *printer) methodDecl(n *ast.MethodDecl) {
	p.memberAnnotations(n.Annotations)
	p.modifiers(n.Modifiers)
	p.typeParams(n.TypeParams)
	if len(n.TypeParams) > 0 {
		p.write(" ")
	}
	p.node(n.Type)
	p.write(" ")
	p.write(n.Name)
	p.write("(")
	printList(p, n.Params, ", ")
	p.write(")")
	for _, b := range n.Brackets {
		p.node(b)
	}
	p.throws(n.Throws)

	if n.Body == nil {
		p.closing(n, ";")
		return
	}
	p.write(" ")
	p.node(n.Body)
	p.orphansEnding(n)
}

func (p *printer) throws(types []ast.Type) {
	if len(types) == 0 {
		return
	}
	p.write(" throws ")
	printList(p, types, ", ")
}

func (p *printer) parameter(n *ast.Parameter) {
	p.annotations(n.Annotations, false)
	p.modifiers(n.Modifiers)
	p.node(n.Type)
	if n.VarArgs {
		p.write("...")
	}
	// implicitly typed lambda parameters print only their name
	if _, implicit := n.Type.(*ast.UnknownType); !implicit {
		p.write(" ")
	}
	p.write(n.Name)
	for _, b := range n.Brackets {
		p.node(b)
	}
}

func (p *printer) initializerDecl(n *ast.InitializerDecl) {
	if n.Static {
		p.write("static ")
	}
	p.node(n.Body)
}
