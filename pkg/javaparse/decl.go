package javaparse

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/vito/jfmt/pkg/ast"
)

func (l *lowerer) compilationUnit(root *sitter.Node) *ast.CompilationUnit {
	cu := &ast.CompilationUnit{}
	cu.Range = ast.Range{
		Begin: ast.Position{Line: 1, Column: 1},
		End:   position(root.EndByte(), root.EndPoint()),
	}
	cu.Range.End.Offset = len(l.src)

	for _, c := range children(root) {
		switch c.Type() {
		case "package_declaration":
			cu.Package = l.packageDecl(c)
		case "import_declaration":
			cu.Imports = append(cu.Imports, l.importDecl(c))
		case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration":
			cu.Types = append(cu.Types, l.typeDecl(c))
		case ";":
			cu.Types = append(cu.Types, at(l, c, &ast.EmptyTypeDecl{}))
		case "module_declaration":
			l.unsupported(c, "module declaration")
		case "record_declaration":
			l.unsupported(c, "record declaration")
		default:
			l.unsupported(c, "top-level "+c.Type())
		}
	}
	return cu
}

func (l *lowerer) packageDecl(n *sitter.Node) *ast.PackageDecl {
	p := at(l, n, &ast.PackageDecl{})
	for _, c := range named(n) {
		if isAnnotationKind(c.Type()) {
			p.Annotations = append(p.Annotations, l.annotation(c))
			continue
		}
		p.Name = l.name(c)
	}
	return p
}

func (l *lowerer) importDecl(n *sitter.Node) *ast.ImportDecl {
	imp := at(l, n, &ast.ImportDecl{Static: hasToken(n, "static")})
	for _, c := range named(n) {
		if c.Type() == "asterisk" {
			imp.Asterisk = true
			continue
		}
		imp.Name = l.name(c)
	}
	return imp
}

// name lowers an identifier or scoped_identifier to a qualified name.
func (l *lowerer) name(n *sitter.Node) *ast.NameExpr {
	switch n.Type() {
	case "identifier", "type_identifier":
		return at(l, n, &ast.NameExpr{Name: l.text(n)})
	case "scoped_identifier":
		return at(l, n, &ast.NameExpr{
			Qualifier: l.name(field(n, "scope")),
			Name:      l.text(field(n, "name")),
		})
	}
	l.unexpected(n, "name")
	return nil
}

// modifiers splits an optional modifiers child of n into annotations and
// keyword modifiers.
func (l *lowerer) modifiers(n *sitter.Node) ([]ast.AnnotationExpr, ast.Modifiers) {
	var anns []ast.AnnotationExpr
	var mods ast.Modifiers
	for _, c := range named(n) {
		if c.Type() != "modifiers" {
			continue
		}
		for _, m := range children(c) {
			if isAnnotationKind(m.Type()) {
				anns = append(anns, l.annotation(m))
				continue
			}
			mod, ok := ast.ParseModifier(l.text(m))
			if !ok {
				l.unsupported(m, "modifier "+l.text(m))
			}
			mods = mods.With(mod)
		}
	}
	return anns, mods
}

func (l *lowerer) typeDecl(n *sitter.Node) ast.TypeDecl {
	switch n.Type() {
	case "class_declaration", "interface_declaration":
		return l.classOrInterfaceDecl(n)
	case "enum_declaration":
		return l.enumDecl(n)
	case "annotation_type_declaration":
		return l.annotationDecl(n)
	case "record_declaration":
		l.unsupported(n, "record declaration")
	}
	l.unexpected(n, "type declaration")
	return nil
}

func (l *lowerer) classOrInterfaceDecl(n *sitter.Node) *ast.ClassOrInterfaceDecl {
	d := at(l, n, &ast.ClassOrInterfaceDecl{
		Interface:  n.Type() == "interface_declaration",
		Name:       l.text(field(n, "name")),
		TypeParams: l.typeParams(field(n, "type_parameters")),
	})
	d.Annotations, d.Modifiers = l.modifiers(n)
	for _, c := range named(n) {
		switch c.Type() {
		case "superclass", "extends_interfaces":
			d.Extends = l.typeList(c)
		case "super_interfaces":
			d.Implements = l.typeList(c)
		case "permits":
			l.unsupported(c, "permits clause")
		}
	}
	d.Members = l.members(field(n, "body"))
	return d
}

func (l *lowerer) members(body *sitter.Node) []ast.BodyDecl {
	out := []ast.BodyDecl{}
	for i, c := range children(body) {
		switch c.Type() {
		case "{", "}":
		case ";":
			if i == 0 && body.Type() == "enum_body_declarations" {
				// separates the constants from the members
				continue
			}
			out = append(out, at(l, c, &ast.EmptyMemberDecl{}))
		default:
			out = append(out, l.member(c))
		}
	}
	return out
}

func (l *lowerer) member(n *sitter.Node) ast.BodyDecl {
	switch n.Type() {
	case "field_declaration", "constant_declaration":
		return l.fieldDecl(n)
	case "method_declaration":
		return l.methodDecl(n)
	case "constructor_declaration":
		return l.constructorDecl(n)
	case "block":
		return at(l, n, &ast.InitializerDecl{Body: l.block(n)})
	case "static_initializer":
		return at(l, n, &ast.InitializerDecl{Static: true, Body: l.block(named(n)[0])})
	case "annotation_type_element_declaration":
		return l.annotationMemberDecl(n)
	case "class_declaration", "interface_declaration", "enum_declaration", "annotation_type_declaration", "record_declaration":
		return l.typeDecl(n)
	case "compact_constructor_declaration":
		l.unsupported(n, "compact constructor")
	}
	l.unexpected(n, "type body")
	return nil
}

func (l *lowerer) fieldDecl(n *sitter.Node) *ast.FieldDecl {
	d := at(l, n, &ast.FieldDecl{Type: l.typ(field(n, "type"))})
	d.Annotations, d.Modifiers = l.modifiers(n)
	d.Vars = l.declarators(n)
	return d
}

func (l *lowerer) declarators(n *sitter.Node) []*ast.VariableDeclarator {
	var out []*ast.VariableDeclarator
	for _, c := range named(n) {
		if c.Type() == "variable_declarator" {
			out = append(out, l.declarator(c))
		}
	}
	return out
}

func (l *lowerer) declarator(n *sitter.Node) *ast.VariableDeclarator {
	v := at(l, n, &ast.VariableDeclarator{
		Name:     l.text(field(n, "name")),
		Brackets: l.brackets(field(n, "dimensions")),
	})
	if init := field(n, "value"); init != nil {
		v.Init = l.initializer(init)
	}
	return v
}

func (l *lowerer) initializer(n *sitter.Node) ast.Expression {
	if n.Type() == "array_initializer" {
		return l.arrayInitializer(n)
	}
	return l.expr(n)
}

func (l *lowerer) methodDecl(n *sitter.Node) *ast.MethodDecl {
	d := at(l, n, &ast.MethodDecl{
		TypeParams: l.typeParams(field(n, "type_parameters")),
		Type:       l.typ(field(n, "type")),
		Name:       l.text(field(n, "name")),
		Params:     l.params(field(n, "parameters")),
		Brackets:   l.brackets(field(n, "dimensions")),
		Throws:     l.throws(n),
	})
	d.Annotations, d.Modifiers = l.modifiers(n)
	// annotations between type parameters and the return type
	seenParams := false
	for _, c := range named(n) {
		switch {
		case c.Type() == "type_parameters":
			seenParams = true
		case seenParams && isAnnotationKind(c.Type()):
			d.Annotations = append(d.Annotations, l.annotation(c))
		}
	}
	if body := field(n, "body"); body != nil {
		d.Body = l.block(body)
	}
	return d
}

func (l *lowerer) constructorDecl(n *sitter.Node) *ast.ConstructorDecl {
	d := at(l, n, &ast.ConstructorDecl{
		TypeParams: l.typeParams(field(n, "type_parameters")),
		Name:       l.text(field(n, "name")),
		Params:     l.params(field(n, "parameters")),
		Throws:     l.throws(n),
		Body:       l.block(field(n, "body")),
	})
	d.Annotations, d.Modifiers = l.modifiers(n)
	return d
}

func (l *lowerer) params(n *sitter.Node) []*ast.Parameter {
	var out []*ast.Parameter
	for _, c := range named(n) {
		switch c.Type() {
		case "formal_parameter":
			out = append(out, l.param(c))
		case "spread_parameter":
			out = append(out, l.spreadParam(c))
		case "receiver_parameter":
			l.unsupported(c, "receiver parameter")
		default:
			l.unexpected(c, "parameter list")
		}
	}
	return out
}

func (l *lowerer) param(n *sitter.Node) *ast.Parameter {
	p := at(l, n, &ast.Parameter{
		Type:     l.typ(field(n, "type")),
		Name:     l.text(field(n, "name")),
		Brackets: l.brackets(field(n, "dimensions")),
	})
	p.Annotations, p.Modifiers = l.modifiers(n)
	return p
}

// spreadParam lowers a varargs parameter, whose name sits in a nested
// variable_declarator.
func (l *lowerer) spreadParam(n *sitter.Node) *ast.Parameter {
	p := at(l, n, &ast.Parameter{VarArgs: true})
	p.Annotations, p.Modifiers = l.modifiers(n)
	for _, c := range named(n) {
		switch c.Type() {
		case "modifiers":
		case "variable_declarator":
			p.Name = l.text(field(c, "name"))
			p.Brackets = l.brackets(field(c, "dimensions"))
		default:
			if p.Type == nil {
				p.Type = l.typ(c)
			}
		}
	}
	return p
}

func (l *lowerer) enumDecl(n *sitter.Node) *ast.EnumDecl {
	d := at(l, n, &ast.EnumDecl{
		Name:       l.text(field(n, "name")),
		Implements: l.typeList(field(n, "interfaces")),
	})
	d.Annotations, d.Modifiers = l.modifiers(n)
	d.Members = []ast.BodyDecl{}
	for _, c := range named(field(n, "body")) {
		switch c.Type() {
		case "enum_constant":
			d.Entries = append(d.Entries, l.enumConstant(c))
		case "enum_body_declarations":
			d.Members = l.members(c)
		}
	}
	return d
}

func (l *lowerer) enumConstant(n *sitter.Node) *ast.EnumConstantDecl {
	e := at(l, n, &ast.EnumConstantDecl{Name: l.text(field(n, "name"))})
	e.Annotations, _ = l.modifiers(n)
	if args := field(n, "arguments"); args != nil {
		e.Args = l.arguments(args)
	}
	if body := field(n, "body"); body != nil {
		e.Body = l.members(body)
	}
	return e
}

func (l *lowerer) annotationDecl(n *sitter.Node) *ast.AnnotationDecl {
	d := at(l, n, &ast.AnnotationDecl{Name: l.text(field(n, "name"))})
	d.Annotations, d.Modifiers = l.modifiers(n)
	d.Members = l.members(field(n, "body"))
	return d
}

func (l *lowerer) annotationMemberDecl(n *sitter.Node) *ast.AnnotationMemberDecl {
	d := at(l, n, &ast.AnnotationMemberDecl{
		Type: l.typ(field(n, "type")),
		Name: l.text(field(n, "name")),
	})
	if dims := field(n, "dimensions"); dims != nil {
		d.Type = l.arrayLevels(dims, d.Type, dims)
	}
	d.Annotations, d.Modifiers = l.modifiers(n)
	if def := field(n, "value"); def != nil {
		d.Default = l.elementValue(def)
	}
	return d
}
